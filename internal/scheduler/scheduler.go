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

// Package scheduler drives the fixed-duration, fixed-concurrency worker pool
// that exercises one Requester against one endpoint and feeds the results
// into a shared metrics.Sink.
package scheduler

import (
	"context"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sabouaram/hammerload/internal/log"
	"github.com/sabouaram/hammerload/internal/metrics"
	"github.com/sabouaram/hammerload/internal/params"
	"github.com/sabouaram/hammerload/internal/progress"
	"github.com/sabouaram/hammerload/internal/report"
	"github.com/sabouaram/hammerload/internal/requester"
)

// Config holds every run-shaping value taken from CLI flags.
type Config struct {
	Concurrency  int
	Duration     time.Duration
	Rate         uint64        // requests/sec across all workers combined; 0 = unbounded
	Timeout      time.Duration // per-request timeout; 0 = no deadline beyond ctx
	ShowProgress bool
}

// Scheduler owns one benchmark run: C workers against one cloned Params,
// driven by one Factory, reporting into one Sink.
type Scheduler struct {
	cfg     Config
	params  params.Params
	factory requester.Factory
	sink    *metrics.Sink
}

// New builds a Scheduler. The sink must be freshly constructed — its start
// time doubles as the run's elapsed-time origin.
func New(cfg Config, p params.Params, factory requester.Factory, sink *metrics.Sink) *Scheduler {
	return &Scheduler{cfg: cfg, params: p, factory: factory, sink: sink}
}

// Run spawns Concurrency workers, lets them race to the wall-clock deadline,
// joins every worker and the progress goroutine, and prints the report. It
// returns only on an unrecoverable setup error (never a per-request error —
// those are all absorbed into the sink's failed counter).
func (s *Scheduler) Run(ctx context.Context, w io.Writer) error {
	start := time.Now()
	deadline := start.Add(s.cfg.Duration)

	workers, wctx := errgroup.WithContext(ctx)
	for i := 0; i < s.cfg.Concurrency; i++ {
		workers.Go(func() error {
			s.runWorker(wctx, deadline)
			return nil
		})
	}

	if s.cfg.ShowProgress {
		done := make(chan struct{})
		var progressGroup errgroup.Group
		progressGroup.Go(func() error {
			progress.Run(ctx, done, s.sink, s.cfg.Duration)
			return nil
		})

		_ = workers.Wait()
		close(done)
		_ = progressGroup.Wait()
	} else {
		_ = workers.Wait()
	}

	report.Print(w, s.sink, s.cfg.Concurrency)
	return nil
}

// runWorker clones one set of Params, builds one Requester, and loops
// Request calls until the deadline has passed, pacing itself against the
// configured aggregate rate when one is set. It never returns an error to
// the caller: a failed Initialize is counted and logged, and the worker
// exits cleanly without affecting any other worker.
func (s *Scheduler) runWorker(ctx context.Context, deadline time.Time) {
	p := s.params.Clone()

	req, err := s.factory(p, s.sink)
	if err != nil {
		s.sink.IncrTotal()
		s.sink.IncrFailed()
		log.L().WithError(err).Error("failed to build requester")
		return
	}
	defer func() { _ = req.Close() }()

	if err := req.Initialize(ctx); err != nil {
		s.sink.IncrTotal()
		s.sink.IncrFailed()
		log.L().WithError(err).Debug("worker initialize failed")
		return
	}

	interval := s.pacingInterval()

	for {
		loopStart := time.Now()

		reqCtx := ctx
		var cancel context.CancelFunc
		if s.cfg.Timeout > 0 {
			reqCtx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		}

		reqErr := req.Request(reqCtx)
		if cancel != nil {
			cancel()
		}

		s.sink.IncrTotal()
		if reqErr != nil {
			s.sink.IncrFailed()
			log.L().WithError(reqErr).Debug("request failed")
		} else {
			s.sink.IncrSuccessful()
		}

		if !time.Now().Before(deadline) {
			return
		}

		if interval > 0 {
			if sleep := interval - time.Since(loopStart); sleep > 0 {
				time.Sleep(sleep)
			}
		}
	}
}

// pacingInterval returns the per-worker sleep target that makes the
// aggregate request rate across all Concurrency workers converge on Rate.
// Zero means unbounded: workers loop as fast as Request allows.
func (s *Scheduler) pacingInterval() time.Duration {
	if s.cfg.Rate == 0 {
		return 0
	}
	return time.Duration(float64(time.Second) * float64(s.cfg.Concurrency) / float64(s.cfg.Rate))
}
