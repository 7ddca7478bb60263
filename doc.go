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

// Package wpd reads WordPerfect 5.x documents.
//
// A file consists of a fixed header, a prefix area holding resource
// packets (font names, embedded font programs), and a document area
// which mixes printable text with function codes.  This package parses
// all three and reports the document structure through the [Handler]
// callback interface:
//
//	data, err := os.ReadFile("in.wpd")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	doc, err := wpd.Open(data, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	res := doc.Parse(handler)
//	... res describes how far the parser got ...
//
// Parsing is best-effort.  Damaged or unsupported constructs stop the
// walk with a descriptive [Result], and all events delivered until
// then remain valid.  This makes the package suitable for auditing
// tools which need to recover as much text as possible from old files.
//
// Documents encrypted with the WordPerfect 5.x password scheme can be
// deciphered by passing the password in [Options].
//
// Subpackages turn the event stream into text runs and reconcile the
// runs against the raw bytes of the file.
package wpd
