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

func newWebSocketCommand() *cobra.Command {
	var (
		url  string
		data string
	)

	cmd := &cobra.Command{
		Use:     "websocket --url URL --data TEXT",
		Short:   "load-test a WebSocket endpoint with repeated text frames",
		Example: "hammerload websocket --url ws://localhost:8080/ws --data ping",
		RunE: func(_ *cobra.Command, _ []string) error {
			p := &params.WebSocketParams{URL: url, Data: data}
			return runBenchmark(p, requester.NewWebSocket())
		},
	}

	cmd.Flags().StringVar(&url, "url", "", "target WebSocket URL")
	cmd.Flags().StringVar(&data, "data", "", "text payload sent on every request")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
