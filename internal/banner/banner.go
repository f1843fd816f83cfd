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

// Package banner prints the startup name/version banner, suppressed by
// --no-logo. This is a supplemented feature carried from the original Rust
// CLI (see SPEC_FULL.md), not part of the distilled spec's original modules.
package banner

import (
	"io"

	"github.com/fatih/color"
)

// Info is the static identity printed in the banner.
type Info struct {
	Name    string
	Version string
	Author  string
}

// Print writes the banner to w unless disabled is set, in which case it is a
// no-op. Color output follows fatih/color's own terminal-detection default.
func Print(w io.Writer, info Info, disabled bool) {
	if disabled {
		return
	}

	title := color.New(color.FgCyan, color.Bold)
	subtitle := color.New(color.FgHiBlack)

	title.Fprintf(w, "%s %s\n", info.Name, info.Version)
	subtitle.Fprintf(w, "%s\n\n", info.Author)
}
