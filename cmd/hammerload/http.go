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

	"github.com/sabouaram/hammerload/internal/log"
	"github.com/sabouaram/hammerload/internal/params"
	"github.com/sabouaram/hammerload/internal/requester"
)

func newHTTPCommand() *cobra.Command {
	var (
		method  string
		url     string
		body    string
		headers []string
		forms   []string
	)

	cmd := &cobra.Command{
		Use:     "http --url URL --method METHOD",
		Short:   "load-test an HTTP endpoint",
		Example: "hammerload http --url http://localhost:8080/ --method GET",
		RunE: func(cmd *cobra.Command, _ []string) error {
			headerFields, badHeaders := params.ParseHeaderLines(headers)
			for _, line := range badHeaders {
				log.L().WithField("line", line).Warn("skipping malformed --header")
			}

			formFields, badForms := params.ParseFormLines(forms)
			for _, line := range badForms {
				log.L().WithField("line", line).Warn("skipping malformed --form")
			}

			p := &params.HTTPParams{
				URL:     url,
				Method:  method,
				Headers: headerFields,
				Form:    formFields,
			}
			if cmd.Flags().Changed("body") {
				p.Body = &body
			}

			timeout, err := parseDurationFlag(flagTimeout)
			if err != nil {
				return err
			}

			return runBenchmark(p, requester.NewHTTP(timeout))
		},
	}

	cmd.Flags().StringVar(&method, "method", "GET", "HTTP method")
	cmd.Flags().StringVar(&url, "url", "", "target URL")
	cmd.Flags().StringVar(&body, "body", "", "request body (ignored if --form is given)")
	cmd.Flags().StringArrayVar(&headers, "header", nil, `header line "Name: value", repeatable`)
	cmd.Flags().StringArrayVar(&forms, "form", nil, `form field "key=value", repeatable`)
	_ = cmd.MarkFlagRequired("url")

	return cmd
}
