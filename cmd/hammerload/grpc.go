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

package main

import (
	"github.com/spf13/cobra"

	"github.com/sabouaram/hammerload/internal/params"
	"github.com/sabouaram/hammerload/internal/requester"
)

func newGRPCCommand() *cobra.Command {
	var (
		address string
		proto   string
		method  string
		data    string
	)

	cmd := &cobra.Command{
		Use:     "grpc --address HOST:PORT --proto FILE --method Service.Method",
		Short:   "load-test a unary gRPC method resolved dynamically from a .proto file",
		Example: "hammerload grpc --address localhost:9090 --proto svc.proto --method Greeter.SayHello --data '{\"name\":\"hammerload\"}'",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := &params.GRPCParams{
				Address:   address,
				ProtoPath: proto,
				Method:    method,
			}
			if cmd.Flags().Changed("data") {
				p.Data = &data
			}

			return runBenchmark(p, requester.NewGRPC())
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "target host:port")
	cmd.Flags().StringVar(&proto, "proto", "", "path to the .proto file declaring the method")
	cmd.Flags().StringVar(&method, "method", "", `method as "Service.Method" or "Service/Method"`)
	cmd.Flags().StringVar(&data, "data", "", "JSON payload unmarshaled onto the request message")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("proto")
	_ = cmd.MarkFlagRequired("method")

	return cmd
}
