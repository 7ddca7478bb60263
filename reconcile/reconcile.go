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

// Package reconcile locates the bytes which encode a run of text
// inside the raw image of a file.
//
// Legacy files store text in single-byte encodings, while decoded text
// arrives as UTF-8.  For each run two byte patterns are considered:
// the Latin-1 rendering, one byte per character (candidate A), and the
// UTF-8 rendering (candidate B).  Candidate A is searched first; where
// the two renderings agree, as for plain ASCII, a match is then
// reported as a direct match.
package reconcile

import (
	"bytes"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Kind describes which byte pattern of a text run was found.
type Kind int

const (
	// None means neither candidate pattern occurs in the file.
	None Kind = iota

	// Direct means the single-byte Latin-1 pattern was found.
	Direct

	// Multi means the multi-byte UTF-8 pattern was found.
	Multi
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Direct:
		return "direct"
	case Multi:
		return "multi"
	default:
		return "invalid"
	}
}

// Match describes where a text run appears in the raw bytes of a file.
type Match struct {
	// Kind says which candidate pattern was found.
	Kind Kind

	// Bytes is the pattern that was searched for.  For Kind None this
	// is the UTF-8 candidate, which could not be found.
	Bytes []byte

	// Offsets holds the offset of every occurrence of Bytes in the
	// file, in increasing order.  Occurrences may overlap.  For Kind
	// None the slice is empty.
	Offsets []int64
}

// Reconcile searches buf for the bytes encoding text.
//
// The Latin-1 candidate is tried first.  Text containing characters
// above U+00FF has no Latin-1 rendering; for such text only the UTF-8
// candidate is searched.  If neither pattern occurs in buf, Reconcile
// returns a Match of Kind None carrying the UTF-8 candidate.
//
// The second return value is false if the run is unsuitable for
// matching: runs of fewer than two characters and all-whitespace runs
// would produce too many false positives and must be skipped.
func Reconcile(text string, buf []byte) (Match, bool) {
	if utf8.RuneCountInString(text) < 2 {
		return Match{}, false
	}
	onlySpace := true
	for _, r := range text {
		if !unicode.IsSpace(r) {
			onlySpace = false
			break
		}
	}
	if onlySpace {
		return Match{}, false
	}

	direct, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte(text))
	if err == nil {
		if offsets := findAll(buf, direct); offsets != nil {
			return Match{Kind: Direct, Bytes: direct, Offsets: offsets}, true
		}
	}

	multi := []byte(text)
	if offsets := findAll(buf, multi); offsets != nil {
		return Match{Kind: Multi, Bytes: multi, Offsets: offsets}, true
	}
	return Match{Kind: None, Bytes: multi}, true
}

// findAll returns the offset of every occurrence of needle in
// haystack, in increasing order.  Occurrences may overlap.
func findAll(haystack, needle []byte) []int64 {
	if len(needle) == 0 || len(needle) > len(haystack) {
		return nil
	}
	var offsets []int64
	pos := 0
	for {
		idx := bytes.Index(haystack[pos:], needle)
		if idx < 0 {
			break
		}
		offsets = append(offsets, int64(pos+idx))
		pos += idx + 1
	}
	return offsets
}
