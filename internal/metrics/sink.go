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

// Package metrics implements the benchmark sink: request counters, byte
// totals and a latency histogram shared by every worker of a run.
package metrics

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	histogramMinValue = int64(1)                     // 1 microsecond
	histogramMaxValue = int64(time.Hour / time.Microsecond) // 1 hour, in microseconds
	histogramSigFigs  = 3
)

// Sink is the thread-safe counters/histogram/byte-totals a scheduler run
// writes into and a report reads back out of once every worker has joined.
//
// total/successful/failed are owned exclusively by the scheduler. Requesters
// must never write them; they only call RecordLatency and AddBytesSent /
// AddBytesReceived.
type Sink struct {
	total      atomic.Uint64
	successful atomic.Uint64
	failed     atomic.Uint64

	bytesSent     atomic.Uint64
	bytesReceived atomic.Uint64

	minLatencyUs atomic.Uint64 // 0 means "no sample recorded yet"
	maxLatencyUs atomic.Uint64

	mu   sync.Mutex
	hist *hdrhistogram.Histogram

	start time.Time
}

// New returns a freshly zeroed Sink. start is stamped the moment the sink is
// created, which the scheduler always does immediately before spawning
// workers, so it doubles as the run's elapsed-time origin.
func New() *Sink {
	return &Sink{
		hist:  hdrhistogram.New(histogramMinValue, histogramMaxValue, histogramSigFigs),
		start: time.Now(),
	}
}

// IncrTotal is called exactly once by the scheduler per completed Request call.
func (s *Sink) IncrTotal() {
	s.total.Add(1)
}

// IncrSuccessful is called by the scheduler when a worker's Request call returns nil.
func (s *Sink) IncrSuccessful() {
	s.successful.Add(1)
}

// IncrFailed is called by the scheduler when a worker's Request (or Initialize) call fails.
func (s *Sink) IncrFailed() {
	s.failed.Add(1)
}

// RecordLatency records one completed request's latency and updates min/max.
// Requesters call this directly; it must never be skipped, even on failure,
// so the histogram reflects every attempt.
func (s *Sink) RecordLatency(d time.Duration) {
	us := uint64(d.Microseconds())
	if us < 1 {
		us = 1
	}

	hv := int64(us)
	if hv > histogramMaxValue {
		hv = histogramMaxValue
	}

	s.mu.Lock()
	_ = s.hist.RecordValue(hv)
	s.mu.Unlock()

	// 0 doubles as "unset" here: a recorded latency is clamped to >=1us
	// above, so 0 never legitimately ties a real sample.
	for {
		cur := s.minLatencyUs.Load()
		if cur != 0 && cur <= us {
			break
		}
		if s.minLatencyUs.CompareAndSwap(cur, us) {
			break
		}
	}

	for {
		cur := s.maxLatencyUs.Load()
		if cur >= us {
			break
		}
		if s.maxLatencyUs.CompareAndSwap(cur, us) {
			break
		}
	}
}

// AddBytesSent credits the byte total a requester wrote on the wire for one request.
func (s *Sink) AddBytesSent(n uint64) {
	s.bytesSent.Add(n)
}

// AddBytesReceived credits the byte total a requester read off the wire for one request.
func (s *Sink) AddBytesReceived(n uint64) {
	s.bytesReceived.Add(n)
}

// Total, Successful, Failed return the raw counters. Safe to call only after
// every worker has joined (see the scheduler's errgroup.Wait barrier).
func (s *Sink) Total() uint64      { return s.total.Load() }
func (s *Sink) Successful() uint64 { return s.successful.Load() }
func (s *Sink) Failed() uint64     { return s.failed.Load() }

func (s *Sink) BytesSent() uint64     { return s.bytesSent.Load() }
func (s *Sink) BytesReceived() uint64 { return s.bytesReceived.Load() }

// Elapsed returns the wall-clock time since the sink (and therefore the run) started.
func (s *Sink) Elapsed() time.Duration {
	return time.Since(s.start)
}

// SuccessRate returns successful/total as a percentage, 0 when total is zero.
func (s *Sink) SuccessRate() float64 {
	t := s.Total()
	if t == 0 {
		return 0
	}
	return float64(s.Successful()) / float64(t) * 100
}

// FailureRate returns failed/total as a percentage, 0 when total is zero.
func (s *Sink) FailureRate() float64 {
	t := s.Total()
	if t == 0 {
		return 0
	}
	return float64(s.Failed()) / float64(t) * 100
}

// RequestsPerSecond divides total requests by elapsed float seconds, never
// integer milliseconds, so short runs don't lose precision to truncation.
func (s *Sink) RequestsPerSecond() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.Total()) / secs
}

// SendThroughput returns bytes sent per elapsed second.
func (s *Sink) SendThroughput() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.BytesSent()) / secs
}

// ReceiveThroughput returns bytes received per elapsed second.
func (s *Sink) ReceiveThroughput() float64 {
	secs := s.Elapsed().Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(s.BytesReceived()) / secs
}

// MinLatency returns the smallest recorded latency, zero if nothing has been recorded yet.
func (s *Sink) MinLatency() time.Duration {
	return time.Duration(s.minLatencyUs.Load()) * time.Microsecond
}

// MaxLatency returns the largest recorded latency, zero if nothing has been recorded yet.
func (s *Sink) MaxLatency() time.Duration {
	return time.Duration(s.maxLatencyUs.Load()) * time.Microsecond
}

// Quantile returns the latency at the given quantile (0..100), as a time.Duration.
func (s *Sink) Quantile(q float64) time.Duration {
	s.mu.Lock()
	v := s.hist.ValueAtQuantile(q)
	s.mu.Unlock()
	return time.Duration(v) * time.Microsecond
}
