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

// White-box test: splitGRPCMethod is unexported, so this file lives in
// package requester rather than requester_test.
package requester

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("splitGRPCMethod", func() {
	It("resolves dot and slash spellings to the same service/method pair", func() {
		dotSvc, dotMethod, dotOK := splitGRPCMethod("Greeter.SayHello")
		slashSvc, slashMethod, slashOK := splitGRPCMethod("Greeter/SayHello")

		Expect(dotOK).To(BeTrue())
		Expect(slashOK).To(BeTrue())
		Expect(dotSvc).To(Equal(slashSvc))
		Expect(dotMethod).To(Equal(slashMethod))
		Expect(dotSvc).To(Equal("Greeter"))
		Expect(dotMethod).To(Equal("SayHello"))
	})

	It("resolves a fully-qualified package.Service/Method using the slash as the split point", func() {
		svc, method, ok := splitGRPCMethod("pkg.Greeter/SayHello")
		Expect(ok).To(BeTrue())
		Expect(svc).To(Equal("pkg.Greeter"))
		Expect(method).To(Equal("SayHello"))
	})

	It("rejects a method string with no separator", func() {
		_, _, ok := splitGRPCMethod("SayHello")
		Expect(ok).To(BeFalse())
	})
})
