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

package requester_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
	"github.com/sabouaram/hammerload/internal/requester"
)

var _ = Describe("HTTP requester", func() {
	var srv *httptest.Server

	AfterEach(func() {
		if srv != nil {
			srv.Close()
		}
	})

	It("records latency and byte counts on a successful round trip", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(body)
		}))

		p := &params.HTTPParams{URL: srv.URL, Method: "POST"}
		body := "hello"
		p.Body = &body

		sink := metrics.New()
		factory := requester.NewHTTP(2 * time.Second)
		req, err := factory(p, sink)
		Expect(err).ToNot(HaveOccurred())

		ctx := context.Background()
		Expect(req.Initialize(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())

		Expect(sink.BytesSent()).To(Equal(uint64(len(body))))
		Expect(sink.BytesReceived()).To(Equal(uint64(len(body))))
		Expect(sink.MaxLatency()).To(BeNumerically(">", 0))
	})

	It("treats a non-2xx status as a successful Request call", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))

		p := &params.HTTPParams{URL: srv.URL, Method: "GET"}
		sink := metrics.New()
		factory := requester.NewHTTP(2 * time.Second)
		req, _ := factory(p, sink)

		ctx := context.Background()
		Expect(req.Initialize(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())
	})

	It("classifies a slow handler past the timeout as Timeout", func() {
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.WriteHeader(http.StatusOK)
		}))

		p := &params.HTTPParams{URL: srv.URL, Method: "GET"}
		sink := metrics.New()
		factory := requester.NewHTTP(20 * time.Millisecond)
		req, _ := factory(p, sink)

		ctx := context.Background()
		Expect(req.Initialize(ctx)).To(Succeed())

		err := req.Request(ctx)
		Expect(err).To(HaveOccurred())
		kind, ok := requester.KindOf(err)
		Expect(ok).To(BeTrue())
		Expect(kind).To(Equal(requester.KindTimeout))
	})

	It("sends repeated requests correctly (body reader is not exhausted across calls)", func() {
		var received []string
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b, _ := io.ReadAll(r.Body)
			received = append(received, string(b))
			w.WriteHeader(http.StatusOK)
		}))

		p := &params.HTTPParams{URL: srv.URL, Method: "POST"}
		body := "payload"
		p.Body = &body

		sink := metrics.New()
		factory := requester.NewHTTP(2 * time.Second)
		req, _ := factory(p, sink)

		ctx := context.Background()
		Expect(req.Initialize(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())

		Expect(received).To(Equal([]string{"payload", "payload", "payload"}))
	})

	It("sends ordered headers and form fields", func() {
		var gotHeader, gotForm string
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotHeader = r.Header.Get("X-Test")
			_ = r.ParseForm()
			gotForm = r.FormValue("k")
			w.WriteHeader(http.StatusOK)
		}))

		p := &params.HTTPParams{
			URL:     srv.URL,
			Method:  "POST",
			Headers: []params.HeaderField{{Name: "X-Test", Value: "abc"}},
			Form:    []params.FormField{{Name: "k", Value: "v"}},
		}

		sink := metrics.New()
		factory := requester.NewHTTP(2 * time.Second)
		req, _ := factory(p, sink)

		ctx := context.Background()
		Expect(req.Initialize(ctx)).To(Succeed())
		Expect(req.Request(ctx)).To(Succeed())

		Expect(gotHeader).To(Equal("abc"))
		Expect(gotForm).To(Equal("v"))

		// bytes sent = header name+value octets ("X-Test"+"abc") plus form
		// field name+value octets ("k"+"v"), not the urlencoded body length.
		wantSent := uint64(len("X-Test") + len("abc") + len("k") + len("v"))
		Expect(sink.BytesSent()).To(Equal(wantSent))
	})
})
