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

package report

import (
	"encoding/hex"
	"io"

	"github.com/bytedance/sonic"

	"seehuhn.de/go/wpd/collect"
	"seehuhn.de/go/wpd/reconcile"
)

// Record is one reconciliation outcome in machine-readable form.
type Record struct {
	// Seq is the sequence number of the run.
	Seq int `json:"seq"`

	// Font is the font label of the run.
	Font string `json:"font"`

	// Kind is "direct", "multi" or "none".
	Kind string `json:"kind"`

	// Bytes is the byte pattern searched for, in hex.
	Bytes string `json:"bytes"`

	// Offsets lists the file offsets where the pattern occurs.
	Offsets []int64 `json:"offsets,omitempty"`
}

// JSONWriter renders results as newline-delimited JSON, one [Record]
// per run.
type JSONWriter struct {
	w io.Writer
}

// NewJSONWriter returns a JSONWriter which writes to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{w: w}
}

// Record implements the [Sink] interface.
func (j *JSONWriter) Record(run collect.Run, m reconcile.Match) error {
	rec := Record{
		Seq:     run.Seq,
		Font:    run.Font,
		Kind:    m.Kind.String(),
		Bytes:   hex.EncodeToString(m.Bytes),
		Offsets: m.Offsets,
	}
	buf, err := sonic.Marshal(rec)
	if err != nil {
		return err
	}
	buf = append(buf, '\n')
	_, err = j.w.Write(buf)
	return err
}
