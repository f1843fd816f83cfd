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

// Package params holds the closed set of per-protocol request parameters a
// scheduler clones once per worker.
package params

import libval "github.com/go-playground/validator/v10"

// Protocol names the wire protocol a Params value drives.
type Protocol uint8

const (
	ProtocolHTTP Protocol = iota
	ProtocolGRPC
	ProtocolWebSocket
)

func (p Protocol) String() string {
	switch p {
	case ProtocolHTTP:
		return "http"
	case ProtocolGRPC:
		return "grpc"
	case ProtocolWebSocket:
		return "websocket"
	default:
		return "unknown"
	}
}

// Params is implemented by every protocol's parameter struct. Clone must
// return a deep copy safe to hand to a single worker goroutine — no two
// workers may share a mutable field.
type Params interface {
	Protocol() Protocol
	Clone() Params
	Validate() error
}

var validate = libval.New()

// HeaderField is one ordered, case-insensitive-keyed HTTP header.
// Kept as an ordered slice, not a map, so repeated --header flags preserve
// the order the user passed them on the command line.
type HeaderField struct {
	Name  string `validate:"required"`
	Value string
}

// FormField is one ordered URL-encoded form field.
type FormField struct {
	Name  string `validate:"required"`
	Value string
}

// HTTPParams drives the HTTP requester.
type HTTPParams struct {
	URL     string `validate:"required,url"`
	Method  string `validate:"required,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
	Body    *string
	Headers []HeaderField
	Form    []FormField
}

func (p *HTTPParams) Protocol() Protocol { return ProtocolHTTP }

func (p *HTTPParams) Clone() Params {
	n := &HTTPParams{
		URL:    p.URL,
		Method: p.Method,
	}

	if p.Body != nil {
		b := *p.Body
		n.Body = &b
	}

	if len(p.Headers) > 0 {
		n.Headers = make([]HeaderField, len(p.Headers))
		copy(n.Headers, p.Headers)
	}

	if len(p.Form) > 0 {
		n.Form = make([]FormField, len(p.Form))
		copy(n.Form, p.Form)
	}

	return n
}

func (p *HTTPParams) Validate() error {
	return validate.Struct(p)
}

// GRPCParams drives the dynamic gRPC requester. Method is accepted as
// either "Service.Method" or "Service/Method" — the requester normalizes it.
type GRPCParams struct {
	Address   string `validate:"required"`
	ProtoPath string `validate:"required"`
	Method    string `validate:"required"`
	Data      *string
}

func (p *GRPCParams) Protocol() Protocol { return ProtocolGRPC }

func (p *GRPCParams) Clone() Params {
	n := &GRPCParams{
		Address:   p.Address,
		ProtoPath: p.ProtoPath,
		Method:    p.Method,
	}

	if p.Data != nil {
		d := *p.Data
		n.Data = &d
	}

	return n
}

func (p *GRPCParams) Validate() error {
	return validate.Struct(p)
}

// WebSocketParams drives the WebSocket requester. One connection is opened
// per worker during Initialize; Data is the text payload sent on each Request.
type WebSocketParams struct {
	URL  string `validate:"required,url"`
	Data string
}

func (p *WebSocketParams) Protocol() Protocol { return ProtocolWebSocket }

func (p *WebSocketParams) Clone() Params {
	return &WebSocketParams{
		URL:  p.URL,
		Data: p.Data,
	}
}

func (p *WebSocketParams) Validate() error {
	return validate.Struct(p)
}
