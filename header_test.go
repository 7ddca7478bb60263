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

package wpd

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadHeader(t *testing.T) {
	data := []byte{
		0xff, 'W', 'P', 'C', // signature
		0x30, 0x02, 0x00, 0x00, // document area at 0x230
		0x01,       // product
		0x0a,       // file type
		0x00, 0x01, // version 5.1
		0x34, 0x12, // checksum
		0x10, 0x00, // prefix index at 0x10
	}
	h, err := readHeader(data)
	if err != nil {
		t.Fatal(err)
	}

	want := &Header{
		DocumentStart: 0x230,
		Product:       1,
		FileType:      0x0a,
		MajorVersion:  0,
		MinorVersion:  1,
		Checksum:      0x1234,
		IndexStart:    0x10,
	}
	if diff := cmp.Diff(want, h); diff != "" {
		t.Errorf("header mismatch (-want +got):\n%s", diff)
	}
	if !h.Encrypted() {
		t.Error("checksum set, but Encrypted() is false")
	}
	if v := h.Version(); v != "5.1" {
		t.Errorf("wrong version: %q", v)
	}
}

var probeTestCases = []struct {
	name string
	data []byte
	want Confidence
}{
	{
		name: "plain WP5",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 1, 0x0a, 0, 1, 0, 0, 0, 0},
		want: ConfidenceExcellent,
	},
	{
		name: "plain WP6",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 1, 0x0a, 2, 0, 0, 0, 0, 0},
		want: ConfidenceExcellent,
	},
	{
		name: "encrypted WP5",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 1, 0x0a, 0, 1, 0x34, 0x12, 0, 0},
		want: ConfidenceSupportedEncryption,
	},
	{
		name: "encrypted WP6",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 1, 0x0a, 2, 0, 0x34, 0x12, 0, 0},
		want: ConfidenceUnsupportedEncryption,
	},
	{
		name: "wrong signature",
		data: []byte{0xff, 'W', 'P', 'D', 16, 0, 0, 0, 1, 0x0a, 0, 1, 0, 0, 0, 0},
		want: ConfidenceNone,
	},
	{
		name: "wrong product",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 9, 0x0a, 0, 1, 0, 0, 0, 0},
		want: ConfidenceNone,
	},
	{
		name: "wrong file type",
		data: []byte{0xff, 'W', 'P', 'C', 16, 0, 0, 0, 1, 0x0b, 0, 1, 0, 0, 0, 0},
		want: ConfidenceNone,
	},
	{
		name: "truncated",
		data: []byte{0xff, 'W', 'P'},
		want: ConfidenceNone,
	},
	{
		name: "empty",
		data: nil,
		want: ConfidenceNone,
	},
}

func TestProbe(t *testing.T) {
	for _, tc := range probeTestCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Probe(tc.data); got != tc.want {
				t.Errorf("Probe() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHeaderErrors(t *testing.T) {
	for _, tc := range probeTestCases {
		if tc.want != ConfidenceNone {
			continue
		}
		t.Run(tc.name, func(t *testing.T) {
			_, err := readHeader(tc.data)
			if err == nil {
				t.Fatal("readHeader succeeded on invalid input")
			}
			if !IsMalformed(err) {
				t.Errorf("error is not a MalformedFileError: %v", err)
			}
		})
	}
}
