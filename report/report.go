// seehuhn.de/go/wpd - read WordPerfect files and recover raw byte encodings
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package report renders reconciliation results.
package report

import (
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/wpd/collect"
	"seehuhn.de/go/wpd/reconcile"
)

// Sink consumes one reconciliation outcome per collected run.
// [Writer] and [JSONWriter] implement this interface.
type Sink interface {
	Record(run collect.Run, m reconcile.Match) error
}

// Writer renders results as text.  Every occurrence of a run becomes
// one line:
//
//	000001a4: 48 65 6c 6c 6f [font:Times Roman]
//
// Runs whose bytes do not occur in the file produce a single line with
// a dash sentinel in place of the offset:
//
//	----------: 47 61 72 c3 a7 6f 6e [font:default]
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer which writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Record implements the [Sink] interface.
func (r *Writer) Record(run collect.Run, m reconcile.Match) error {
	pattern := hexBytes(m.Bytes)
	if m.Kind == reconcile.None {
		_, err := fmt.Fprintf(r.w, "----------: %s [font:%s]\n", pattern, run.Font)
		return err
	}
	for _, off := range m.Offsets {
		_, err := fmt.Fprintf(r.w, "%08x: %s [font:%s]\n", off, pattern, run.Font)
		if err != nil {
			return err
		}
	}
	return nil
}

// hexBytes formats b as space-separated hex octets.
func hexBytes(b []byte) string {
	sb := &strings.Builder{}
	for i, c := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(sb, "%02x", c)
	}
	return sb.String()
}
