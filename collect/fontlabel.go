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

package collect

import (
	"bytes"
	"strings"

	pstype1 "seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/wpd"
)

// fontNameKeys lists the property keys which may hold a font name, in
// lookup order.  Different producers use different keys.
var fontNameKeys = []string{
	"font",
	"fontname",
	"Name",
	"FaceName",
	"PostScriptName",
	"Family",
	"typeface",
	"typefaceName",
}

// fontNameMarkers are searched for in the textual form of a property
// set when none of the fontNameKeys is present.
var fontNameMarkers = []string{
	"font-name:",
	"style:font-name:",
}

// resolveFontName extracts a font name from the properties of a
// style-defining event.  Candidate keys are tried first, then the
// name stored inside an embedded font program, then a scan of the
// textual form of the property set.  It returns "" if no name can be
// found.
func resolveFontName(props wpd.Properties) string {
	for _, key := range fontNameKeys {
		if v, ok := props.Str(key); ok && v != "" {
			return v
		}
	}
	if data, ok := props.Bytes("font-data"); ok {
		if name := fontProgramName(data); name != "" {
			return name
		}
	}
	return scanForFontName(props.String())
}

// scanForFontName searches s for a font name marker and returns the
// value following it.  The value ends at the first comma, semicolon,
// closing parenthesis or newline.
func scanForFontName(s string) string {
	for _, marker := range fontNameMarkers {
		idx := strings.Index(s, marker)
		if idx < 0 {
			continue
		}
		v := s[idx+len(marker):]
		if end := strings.IndexAny(v, ",;)\n"); end >= 0 {
			v = v[:end]
		}
		v = strings.TrimSpace(v)
		if v != "" {
			return v
		}
	}
	return ""
}

// fontProgramName reads the family name out of an embedded font
// program.  TrueType/OpenType and Type 1 font programs are recognized.
// Damaged programs yield "".
func fontProgramName(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	switch {
	case bytes.HasPrefix(data, []byte{0, 1, 0, 0}),
		bytes.HasPrefix(data, []byte("OTTO")),
		bytes.HasPrefix(data, []byte("true")),
		bytes.HasPrefix(data, []byte("ttcf")):
		f, err := sfnt.Read(bytes.NewReader(data))
		if err != nil {
			return ""
		}
		return f.FamilyName
	case data[0] == 0x80, bytes.HasPrefix(data, []byte("%!")):
		// a PFB segment header, or a bare PostScript font
		f, err := pstype1.Read(bytes.NewReader(data))
		if err != nil {
			return ""
		}
		if f.FontInfo.FamilyName != "" {
			return f.FontInfo.FamilyName
		}
		return f.FontInfo.FontName
	}
	return ""
}
