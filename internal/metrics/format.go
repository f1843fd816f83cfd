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

package metrics

import (
	"fmt"
	"time"
)

// FormatMicros renders a duration given in microseconds using the greatest
// unit among µs/ms/s/m/h that does not exceed the value, truncating (never
// rounding) to an integer in that unit.
func FormatMicros(d time.Duration) string {
	us := d.Microseconds()

	switch {
	case us < 1_000:
		return fmt.Sprintf("%dµs", us)
	case us < 1_000_000:
		return fmt.Sprintf("%dms", us/1_000)
	case us < 60_000_000:
		return fmt.Sprintf("%ds", us/1_000_000)
	case us < 3_600_000_000:
		return fmt.Sprintf("%dm", us/60_000_000)
	default:
		return fmt.Sprintf("%dh", us/3_600_000_000)
	}
}

const (
	sizeKilo = 1024
	sizeMega = sizeKilo * 1024
	sizeGiga = sizeMega * 1024
	sizeTera = sizeGiga * 1024
	sizePeta = sizeTera * 1024
	sizeExa  = sizePeta * 1024
)

// FormatBytes renders a byte count in base-1024 units (B/KB/MB/GB/TB/PB/EB).
// B is shown with no decimals; every other unit is shown with 2 decimals,
// space-separated from the number (e.g. "1.20 MB"), matching the original
// tool's `{:.2} {}` formatting.
func FormatBytes(n uint64) string {
	switch {
	case n < sizeKilo:
		return fmt.Sprintf("%dB", n)
	case n < sizeMega:
		return fmt.Sprintf("%.2f KB", float64(n)/sizeKilo)
	case n < sizeGiga:
		return fmt.Sprintf("%.2f MB", float64(n)/sizeMega)
	case n < sizeTera:
		return fmt.Sprintf("%.2f GB", float64(n)/sizeGiga)
	case n < sizePeta:
		return fmt.Sprintf("%.2f TB", float64(n)/sizeTera)
	case n < sizeExa:
		return fmt.Sprintf("%.2f PB", float64(n)/sizePeta)
	default:
		return fmt.Sprintf("%.2f EB", float64(n)/sizeExa)
	}
}
