/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package requester

import (
	"fmt"

	liberr "github.com/sabouaram/hammerload/errors"
)

// Kind is the closed domain error taxonomy every Requester reports through.
type Kind uint8

const (
	KindNetwork Kind = iota
	KindTimeout
	KindConfigError
	KindConnectionError
	KindInvalidRequest
	KindRequestFailed
	KindServerError
	KindGrpcError
	KindInternalError
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "Network"
	case KindTimeout:
		return "Timeout"
	case KindConfigError:
		return "ConfigError"
	case KindConnectionError:
		return "ConnectionError"
	case KindInvalidRequest:
		return "InvalidRequest"
	case KindRequestFailed:
		return "RequestFailed"
	case KindServerError:
		return "ServerError"
	case KindGrpcError:
		return "GrpcError"
	case KindInternalError:
		return "InternalError"
	default:
		return "Unknown"
	}
}

// code offsets claimed in MinAvailable, the teacher's reserved namespace
// for downstream packages (errors.MinAvailable == 4000).
const (
	codeNetwork liberr.CodeError = iota + liberr.MinAvailable
	codeTimeout
	codeConfigError
	codeConnectionError
	codeInvalidRequest
	codeRequestFailed
	codeServerError
	codeGrpcError
	codeInternalError
)

func init() {
	if liberr.ExistInMapMessage(codeNetwork) {
		panic(fmt.Errorf("error code collision with package requester"))
	}
	liberr.RegisterIdFctMessage(codeNetwork, getMessage)
}

func getMessage(code liberr.CodeError) string {
	switch code {
	case codeNetwork:
		return "network error contacting target"
	case codeTimeout:
		return "request exceeded the configured timeout"
	case codeConfigError:
		return "requester configuration is invalid"
	case codeConnectionError:
		return "failed to establish or maintain the connection"
	case codeInvalidRequest:
		return "request parameters are invalid"
	case codeRequestFailed:
		return "request failed"
	case codeServerError:
		return "server returned an error response"
	case codeGrpcError:
		return "gRPC call failed"
	case codeInternalError:
		return "internal requester error"
	}

	return liberr.NullMessage
}

func (k Kind) code() liberr.CodeError {
	switch k {
	case KindNetwork:
		return codeNetwork
	case KindTimeout:
		return codeTimeout
	case KindConfigError:
		return codeConfigError
	case KindConnectionError:
		return codeConnectionError
	case KindInvalidRequest:
		return codeInvalidRequest
	case KindRequestFailed:
		return codeRequestFailed
	case KindServerError:
		return codeServerError
	case KindGrpcError:
		return codeGrpcError
	default:
		return codeInternalError
	}
}

// WrapError builds a liberr.Error of the given Kind, carrying parent as its
// parent error (nil is accepted — the Kind alone is still a valid error).
func WrapError(k Kind, parent error) liberr.Error {
	if parent == nil {
		return k.code().Error(nil)
	}
	return k.code().Error(parent)
}

// KindOf reports which Kind a requester error carries, for callers (the
// scheduler's logging, tests) that need to classify a failure without
// string-matching its message.
func KindOf(err error) (Kind, bool) {
	for _, k := range []Kind{
		KindNetwork, KindTimeout, KindConfigError, KindConnectionError,
		KindInvalidRequest, KindRequestFailed, KindServerError, KindGrpcError,
		KindInternalError,
	} {
		if liberr.IsCode(err, k.code()) {
			return k, true
		}
	}

	return KindInternalError, false
}
