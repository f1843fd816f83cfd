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
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/jhump/protoreflect/desc"
	"github.com/jhump/protoreflect/desc/protoparse"
	"github.com/jhump/protoreflect/dynamic"
	"github.com/jhump/protoreflect/dynamic/grpcdynamic"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
)

// grpcRequester drives dynamic unary gRPC calls resolved at runtime from a
// .proto file, with no protoc-generated client code involved.
type grpcRequester struct {
	p    *params.GRPCParams
	sink *metrics.Sink

	conn   *grpc.ClientConn
	stub   grpcdynamic.Stub
	method *desc.MethodDescriptor
	data   string
}

// NewGRPC builds a gRPC Requester factory.
func NewGRPC() Factory {
	return func(p params.Params, sink *metrics.Sink) (Requester, error) {
		gp, ok := p.(*params.GRPCParams)
		if !ok {
			return nil, WrapError(KindInternalError, nil)
		}

		data := ""
		if gp.Data != nil {
			data = *gp.Data
		}

		return &grpcRequester{p: gp, sink: sink, data: data}, nil
	}
}

// splitGRPCMethod accepts "Service.Method" or "Service/Method".
func splitGRPCMethod(method string) (service, name string, ok bool) {
	if idx := strings.LastIndexByte(method, '/'); idx >= 0 {
		return method[:idx], method[idx+1:], true
	}
	if idx := strings.LastIndexByte(method, '.'); idx >= 0 {
		return method[:idx], method[idx+1:], true
	}
	return "", "", false
}

func (r *grpcRequester) Initialize(ctx context.Context) error {
	if r.conn != nil {
		return nil
	}

	parser := protoparse.Parser{
		ImportPaths: []string{filepath.Dir(r.p.ProtoPath)},
	}

	fds, err := parser.ParseFiles(filepath.Base(r.p.ProtoPath))
	if err != nil || len(fds) == 0 {
		return WrapError(KindConfigError, err)
	}

	svcName, methodName, ok := splitGRPCMethod(r.p.Method)
	if !ok {
		return WrapError(KindInvalidRequest, nil)
	}

	var sd *desc.ServiceDescriptor
	for _, fd := range fds {
		for _, s := range fd.GetServices() {
			if s.GetName() == svcName || s.GetFullyQualifiedName() == svcName {
				sd = s
				break
			}
		}
		if sd != nil {
			break
		}
	}
	if sd == nil {
		return WrapError(KindConfigError, nil)
	}

	md := sd.FindMethodByName(methodName)
	if md == nil {
		return WrapError(KindConfigError, nil)
	}
	r.method = md

	conn, err := grpc.DialContext(ctx, r.p.Address,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		return WrapError(KindConnectionError, err)
	}

	r.conn = conn
	r.stub = grpcdynamic.NewStub(conn)
	return nil
}

func (r *grpcRequester) Request(ctx context.Context) error {
	start := time.Now()

	req := dynamic.NewMessage(r.method.GetInputType())
	if r.data != "" {
		if err := req.UnmarshalJSON([]byte(r.data)); err != nil {
			r.sink.RecordLatency(time.Since(start))
			return WrapError(KindInvalidRequest, err)
		}
	}

	sent := uint64(len(r.data))
	r.sink.AddBytesSent(sent)

	rsp, err := r.stub.InvokeRpc(ctx, r.method, req)

	r.sink.RecordLatency(time.Since(start))

	if err != nil {
		if ctx.Err() != nil {
			return WrapError(KindTimeout, err)
		}
		return WrapError(KindGrpcError, err)
	}

	// An empty response message is tolerated and counted as a success.
	if dm, ok := rsp.(*dynamic.Message); ok {
		if b, err := dm.MarshalJSON(); err == nil {
			r.sink.AddBytesReceived(uint64(len(b)))
		}
	}

	return nil
}

func (r *grpcRequester) Close() error {
	if r.conn != nil {
		return r.conn.Close()
	}
	return nil
}
