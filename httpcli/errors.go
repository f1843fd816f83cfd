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

package httpcli

import (
	"fmt"

	liberr "github.com/sabouaram/hammerload/errors"
)

// Error codes for HTTP client operations.
// These errors are registered with the errors package for consistent error handling.
const (
	ErrorParamsInvalid        liberr.CodeError = iota + liberr.MinPkgHttpCli // request has no method or no URL set
	ErrorCreateRequest                                                       // failed building the *http.Request
	ErrorSendRequest                                                         // transport-level failure on Do()
	ErrorResponseInvalid                                                     // Do() returned a nil response without error
	ErrorResponseLoadBody                                                    // failed reading the response body
	ErrorResponseStatus                                                     // response status code not in the accepted set
	ErrorResponseUnmarshall                                                 // failed decoding the response body as JSON
)

func init() {
	if liberr.ExistInMapMessage(ErrorParamsInvalid) {
		panic(fmt.Errorf("error code collision with package httpcli"))
	}
	liberr.RegisterIdFctMessage(ErrorParamsInvalid, getMessage)
}

func getMessage(code liberr.CodeError) (message string) {
	switch code {
	case ErrorParamsInvalid:
		return "request method or url is empty"
	case ErrorCreateRequest:
		return "error on creating a new http request"
	case ErrorSendRequest:
		return "error on sending a http request"
	case ErrorResponseInvalid:
		return "no response received from the http client"
	case ErrorResponseLoadBody:
		return "error on reading response body"
	case ErrorResponseStatus:
		return "response status code is not in the accepted set"
	case ErrorResponseUnmarshall:
		return "error on unmarshalling response body"
	}

	return liberr.NullMessage
}
