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

package params_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sabouaram/hammerload/internal/params"
)

var _ = Describe("Header and form line parsing", func() {
	It("splits on the first ':' and trims both sides", func() {
		f, ok := params.ParseHeaderLine("  Content-Type : application/json  ")
		Expect(ok).To(BeTrue())
		Expect(f.Name).To(Equal("Content-Type"))
		Expect(f.Value).To(Equal("application/json"))
	})

	It("keeps later colons as part of the value", func() {
		f, ok := params.ParseHeaderLine("X-Time: 10:30:00")
		Expect(ok).To(BeTrue())
		Expect(f.Value).To(Equal("10:30:00"))
	})

	It("rejects a header line with no colon", func() {
		_, ok := params.ParseHeaderLine("not-a-header")
		Expect(ok).To(BeFalse())
	})

	It("splits form fields on the first '='", func() {
		f, ok := params.ParseFormLine("redirect=https://example.com?x=1")
		Expect(ok).To(BeTrue())
		Expect(f.Name).To(Equal("redirect"))
		Expect(f.Value).To(Equal("https://example.com?x=1"))
	})

	It("rejects a form line with no '='", func() {
		_, ok := params.ParseFormLine("not-a-form-field")
		Expect(ok).To(BeFalse())
	})

	It("is idempotent: parsing the same lines twice gives identical results", func() {
		lines := []string{"A: 1", "B: 2", "bad", "C: 3"}

		f1, i1 := params.ParseHeaderLines(lines)
		f2, i2 := params.ParseHeaderLines(lines)

		Expect(f1).To(Equal(f2))
		Expect(i1).To(Equal(i2))
		Expect(i1).To(ConsistOf("bad"))
	})

	It("preserves CLI order for repeated flags", func() {
		fields, invalid := params.ParseFormLines([]string{"z=1", "a=2", "m=3"})
		Expect(invalid).To(BeEmpty())
		Expect(fields).To(HaveLen(3))
		Expect(fields[0].Name).To(Equal("z"))
		Expect(fields[1].Name).To(Equal("a"))
		Expect(fields[2].Name).To(Equal("m"))
	})
})

var _ = Describe("HTTPParams", func() {
	It("clones deeply, including headers/form/body", func() {
		body := "payload"
		p := &params.HTTPParams{
			URL:     "http://example.com",
			Method:  "POST",
			Body:    &body,
			Headers: []params.HeaderField{{Name: "A", Value: "1"}},
			Form:    []params.FormField{{Name: "x", Value: "y"}},
		}

		c := p.Clone().(*params.HTTPParams)
		c.Headers[0].Value = "mutated"
		*c.Body = "mutated"

		Expect(p.Headers[0].Value).To(Equal("1"))
		Expect(*p.Body).To(Equal("payload"))
	})

	It("rejects a missing method", func() {
		p := &params.HTTPParams{URL: "http://example.com"}
		Expect(p.Validate()).To(HaveOccurred())
	})

	It("accepts a valid GET", func() {
		p := &params.HTTPParams{URL: "http://example.com", Method: "GET"}
		Expect(p.Validate()).ToNot(HaveOccurred())
	})
})

var _ = Describe("GRPCParams and WebSocketParams", func() {
	It("reports their protocol", func() {
		Expect((&params.GRPCParams{}).Protocol()).To(Equal(params.ProtocolGRPC))
		Expect((&params.WebSocketParams{}).Protocol()).To(Equal(params.ProtocolWebSocket))
		Expect((&params.HTTPParams{}).Protocol()).To(Equal(params.ProtocolHTTP))
	})

	It("clones GRPCParams data independently", func() {
		d := `{"x":1}`
		p := &params.GRPCParams{Address: "localhost:9000", ProtoPath: "svc.proto", Method: "Svc.Method", Data: &d}
		c := p.Clone().(*params.GRPCParams)
		*c.Data = "mutated"
		Expect(*p.Data).To(Equal(`{"x":1}`))
	})
})
