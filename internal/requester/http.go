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
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sabouaram/hammerload/httpcli"
	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
)

// httpRequester drives one HTTP connection's worth of requests. A non-2xx
// response is still a successful Request from the scheduler's point of
// view — only a transport-level failure (Do erroring, or the deadline
// passed down through ctx firing) counts as a failure. See SPEC_FULL.md's
// Design Decisions for why this policy was kept.
type httpRequester struct {
	p      *params.HTTPParams
	sink   *metrics.Sink
	client *http.Client
	req    httpcli.Request
}

// NewHTTP builds an HTTP Requester from the given cloned params. timeout is
// the per-request timeout configured on the scheduler; it is applied to the
// underlying *http.Client rather than solely to ctx, so a hung dial or a
// slow-drip body still aborts ±timeout regardless of caller cancellation.
func NewHTTP(timeout time.Duration) Factory {
	return func(p params.Params, sink *metrics.Sink) (Requester, error) {
		hp, ok := p.(*params.HTTPParams)
		if !ok {
			return nil, WrapError(KindInternalError, nil)
		}

		return &httpRequester{
			p:      hp,
			sink:   sink,
			client: &http.Client{Timeout: timeout},
		}, nil
	}
}

func (r *httpRequester) Initialize(_ context.Context) error {
	req := httpcli.New(func() *http.Client { return r.client })

	if err := req.Endpoint(r.p.URL); err != nil {
		return WrapError(KindConfigError, err)
	}

	req.Method(r.p.Method)

	for _, h := range r.p.Headers {
		req.Header(h.Name, h.Value)
	}

	if len(r.p.Form) > 0 {
		req.ContentType("application/x-www-form-urlencoded")
	}

	// Body is NOT set on this template: httpcli's Clone() copies the body
	// io.Reader by reference, so a reader consumed by one request would come
	// back empty on every subsequent clone. Request() attaches a fresh reader
	// to each clone instead.
	r.req = req
	return nil
}

func (r *httpRequester) Request(ctx context.Context) error {
	start := time.Now()

	req := r.req.Clone()

	var body string
	var formOctets int
	if len(r.p.Form) > 0 {
		form := url.Values{}
		for _, f := range r.p.Form {
			form.Add(f.Name, f.Value)
			formOctets += len(f.Name) + len(f.Value)
		}
		body = form.Encode()
	} else if r.p.Body != nil {
		body = *r.p.Body
	}

	if body != "" {
		req.RequestReader(strings.NewReader(body))
	}

	// bytes sent counts every octet the request actually puts on the wire
	// as the caller's input: the body (or, for form submissions, the raw
	// field name/value octets rather than the urlencoded body, matching
	// the original tool's request_size accounting) plus every header's
	// name and value.
	sent := uint64(formOctets)
	if len(r.p.Form) == 0 {
		sent = uint64(len(body))
	}
	for _, h := range r.p.Headers {
		sent += uint64(len(h.Name) + len(h.Value))
	}

	rsp, err := req.Do(ctx)
	defer r.sink.RecordLatency(time.Since(start))
	r.sink.AddBytesSent(sent)

	if err != nil {
		if ctx.Err() != nil || (r.client.Timeout > 0 && time.Since(start) >= r.client.Timeout) {
			return WrapError(KindTimeout, err)
		}
		return WrapError(KindNetwork, err)
	}
	defer func() {
		if rsp.Body != nil {
			_ = rsp.Body.Close()
		}
	}()

	received := uint64(0)
	if rsp.Body != nil {
		n, _ := io.Copy(io.Discard, rsp.Body)
		received = uint64(n)
	}
	r.sink.AddBytesReceived(received)

	return nil
}

func (r *httpRequester) Close() error {
	return nil
}
