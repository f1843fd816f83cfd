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

// Package progress drives the best-effort 1-second-tick progress bar shown
// while a benchmark run is in flight. Nothing here may ever abort the run:
// every failure is recovered and logged, never propagated.
package progress

import (
	"context"
	"fmt"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/sabouaram/hammerload/internal/log"
	"github.com/sabouaram/hammerload/internal/metrics"
)

// Run renders a progress bar ticking once per second against duration, and
// returns once done is closed or ctx is canceled, whichever comes first.
// sink is read only for the total request count shown alongside the
// elapsed-time bar; Run never writes to it.
//
// A panic anywhere in mpb (seen in practice when stdout is not a TTY) is
// recovered here and logged at warn level rather than crashing the run.
func Run(ctx context.Context, done <-chan struct{}, sink *metrics.Sink, duration time.Duration) {
	defer func() {
		if r := recover(); r != nil {
			log.L().WithField("panic", r).Warn("progress bar disabled after a panic")
		}
	}()

	total := int64(duration / time.Second)
	if total <= 0 {
		total = 1
	}

	p := mpb.NewWithContext(ctx)
	bar := p.New(total,
		mpb.BarStyle(),
		mpb.PrependDecorators(
			decor.Name("hammerload "),
			decor.CountersNoUnit("%d / %d s"),
		),
		mpb.AppendDecorators(
			decor.Any(func(st decor.Statistics) string {
				return requestsLabel(sink)
			}),
		),
	)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	var elapsed int64
	for {
		select {
		case <-done:
			bar.SetCurrent(total)
			p.Wait()
			return
		case <-ctx.Done():
			bar.Abort(true)
			p.Wait()
			return
		case <-ticker.C:
			elapsed++
			if elapsed > total {
				elapsed = total
			}
			bar.SetCurrent(elapsed)
		}
	}
}

func requestsLabel(sink *metrics.Sink) string {
	return fmt.Sprintf("%d reqs", sink.Total())
}
