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

package params

import "strings"

// ParseHeaderLine splits a "--header" flag value on its first ':', trims
// both sides. A line with no ':' is not a valid header and ok is false.
func ParseHeaderLine(line string) (field HeaderField, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return HeaderField{}, false
	}

	return HeaderField{
		Name:  strings.TrimSpace(line[:idx]),
		Value: strings.TrimSpace(line[idx+1:]),
	}, true
}

// ParseFormLine splits a "--form" flag value on its first '=', trims both sides.
// A line with no '=' is not a valid form field and ok is false.
func ParseFormLine(line string) (field FormField, ok bool) {
	idx := strings.IndexByte(line, '=')
	if idx < 0 {
		return FormField{}, false
	}

	return FormField{
		Name:  strings.TrimSpace(line[:idx]),
		Value: strings.TrimSpace(line[idx+1:]),
	}, true
}

// ParseHeaderLines parses every line, returning the valid fields in order
// and the raw lines that failed to parse (for the caller to log and skip).
func ParseHeaderLines(lines []string) (fields []HeaderField, invalid []string) {
	for _, l := range lines {
		if f, ok := ParseHeaderLine(l); ok {
			fields = append(fields, f)
		} else {
			invalid = append(invalid, l)
		}
	}
	return fields, invalid
}

// ParseFormLines parses every line, returning the valid fields in order and
// the raw lines that failed to parse (for the caller to log and skip).
func ParseFormLines(lines []string) (fields []FormField, invalid []string) {
	for _, l := range lines {
		if f, ok := ParseFormLine(l); ok {
			fields = append(fields, f)
		} else {
			invalid = append(invalid, l)
		}
	}
	return fields, invalid
}
