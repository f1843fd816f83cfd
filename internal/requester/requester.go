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

// Package requester implements the two-phase Initialize/Request contract
// every protocol driver satisfies, plus one concrete driver per supported
// protocol (HTTP, gRPC, WebSocket).
package requester

import (
	"context"

	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
)

// Requester is built fresh per worker from one cloned Params and a shared
// metrics sink. Initialize is called exactly once before the request loop;
// Request is called once per loop iteration.
//
// Request must record latency and sent/received bytes into the sink before
// returning, success or failure. It must never touch the sink's
// total/successful/failed counters — the scheduler owns those exclusively.
type Requester interface {
	Initialize(ctx context.Context) error
	Request(ctx context.Context) error
	Close() error
}

// Factory builds a Requester from one worker's cloned Params and the shared
// sink. A per-request timeout, for drivers that use one, is bound when the
// factory itself is made (see NewHTTP).
type Factory func(p params.Params, sink *metrics.Sink) (Requester, error)
