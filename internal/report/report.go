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

// Package report prints the fixed-width console summary of a finished
// benchmark run. It is written straight to an io.Writer with fmt.Fprintf, not
// through internal/log, so piping hammerload's stdout stays script-parseable.
package report

import (
	"fmt"
	"io"

	"github.com/sabouaram/hammerload/internal/metrics"
)

const labelWidth = 30

// line dot-pads label out to labelWidth and writes value after a single
// space; values are not right-aligned to a common column.
func line(w io.Writer, label string, value string) {
	padded := label
	for len(padded) < labelWidth {
		padded += "."
	}
	fmt.Fprintf(w, "%s %s\n", padded, value)
}

// Print writes the fixed-field benchmark report to w. It must only be called
// after every worker has joined (see the scheduler's errgroup.Wait), so every
// counter and the histogram reflect the run's final state.
func Print(w io.Writer, sink *metrics.Sink, concurrency int) {
	line(w, "Concurrency", fmt.Sprintf("%d", concurrency))
	line(w, "Duration (s)", fmt.Sprintf("%.2f", sink.Elapsed().Seconds()))
	line(w, "Total requests", fmt.Sprintf("%d", sink.Total()))
	line(w, "Successful", fmt.Sprintf("%d (%.2f%%)", sink.Successful(), sink.SuccessRate()))
	line(w, "Failed", fmt.Sprintf("%d (%.2f%%)", sink.Failed(), sink.FailureRate()))
	line(w, "Requests/sec", fmt.Sprintf("%.2f", sink.RequestsPerSecond()))
	line(w, "Bytes sent", fmt.Sprintf("%s (%s/s)", metrics.FormatBytes(sink.BytesSent()), metrics.FormatBytes(uint64(sink.SendThroughput()))))
	line(w, "Bytes received", fmt.Sprintf("%s (%s/s)", metrics.FormatBytes(sink.BytesReceived()), metrics.FormatBytes(uint64(sink.ReceiveThroughput()))))

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Latency (min/p50/p90/p95/p99/p99.9/p99.99/max):")
	line(w, "  Min", metrics.FormatMicros(sink.MinLatency()))
	line(w, "  p50", metrics.FormatMicros(sink.Quantile(50)))
	line(w, "  p90", metrics.FormatMicros(sink.Quantile(90)))
	line(w, "  p95", metrics.FormatMicros(sink.Quantile(95)))
	line(w, "  p99", metrics.FormatMicros(sink.Quantile(99)))
	line(w, "  p99.9", metrics.FormatMicros(sink.Quantile(99.9)))
	line(w, "  p99.99", metrics.FormatMicros(sink.Quantile(99.99)))
	line(w, "  Max", metrics.FormatMicros(sink.MaxLatency()))
}
