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
	"encoding/binary"
	"strings"
)

// The document area mixes printable text with function codes:
//
//   - 0x00-0x1f: control codes, of which only the returns and page
//     breaks are meaningful here
//   - 0x20-0x7e: printable ASCII, stored as-is
//   - 0x80-0xbf: single-byte functions
//   - 0xc0-0xcf: fixed-length functions, repeating the function code
//     as the final byte
//   - 0xd0-0xff: variable-length function groups of the form
//     [code, subfunction, 16-bit size, payload, code]
//
// Text accumulates across extended characters and hard hyphens and is
// flushed as one InsertText event at the next function boundary.
const (
	ctrlHardReturn = 0x0a
	ctrlSoftPage   = 0x0b
	ctrlHardPage   = 0x0c
	ctrlSoftReturn = 0x0d

	fnHardSpace  = 0x81
	fnHardHyphen = 0xa9

	fnExtendedChar = 0xc0
	fnTab          = 0xc1
	fnAttributeOn  = 0xc2
	fnAttributeOff = 0xc3

	fnFontGroup = 0xd1
)

// Subfunctions of the font group.
const (
	fontSubChange = 0x00
	fontSubStyle  = 0x01
)

// fixedSize gives the total size of fixed-length functions, including
// the leading and the trailing function code.
var fixedSize = map[byte]int{
	fnExtendedChar: 4,
	fnTab:          5,
	fnAttributeOn:  3,
	fnAttributeOff: 3,
}

type parser struct {
	data []byte
	hdr  *Header
	h    Handler

	text     strings.Builder
	fonts    []string
	spanOpen bool
}

func (p *parser) run() Result {
	if p.hdr.MajorVersion != majorWP5 {
		return ResultUnsupported
	}
	if err := p.readPrefix(); err != nil {
		return ResultParseError
	}
	return p.document()
}

// document walks the document area and turns it into handler events.
// Parsing stops at the first structural problem; events emitted up to
// that point remain valid.
func (p *parser) document() Result {
	data := p.data
	start := int(p.hdr.DocumentStart)
	if start < headerSize || start > len(data) {
		return ResultParseError
	}

	pos := start
	for pos < len(data) {
		b := data[pos]
		switch {
		case b == ctrlHardReturn:
			p.flush()
			p.h.InsertLineBreak()
			pos++
		case b == ctrlSoftReturn:
			p.flush()
			p.h.InsertSpace()
			pos++
		case b == ctrlSoftPage || b == ctrlHardPage:
			p.flush()
			pos++
		case b < 0x20:
			// unassigned control codes act as padding
			p.flush()
			pos++
		case b < 0x7f:
			p.text.WriteByte(b)
			pos++
		case b == 0x7f:
			p.flush()
			pos++
		case b == fnHardHyphen:
			// rendered as a hyphen, stored as a function code
			p.text.WriteByte('-')
			pos++
		case b == fnHardSpace:
			p.flush()
			p.h.InsertSpace()
			pos++
		case b < 0xc0:
			// other single-byte functions carry no text
			p.flush()
			pos++
		case b == fnExtendedChar:
			// [code, char, set, code], continues the current text run
			if pos+4 > len(data) || data[pos+3] != fnExtendedChar {
				p.flush()
				return ResultParseError
			}
			p.text.WriteRune(extendedChar(data[pos+2], data[pos+1]))
			pos += 4
		case b < 0xd0:
			p.flush()
			size, ok := fixedSize[b]
			if !ok {
				return ResultUnsupported
			}
			if pos+size > len(data) || data[pos+size-1] != b {
				return ResultParseError
			}
			if b == fnTab {
				p.h.InsertTab()
			}
			pos += size
		default:
			p.flush()
			if pos+5 > len(data) {
				return ResultParseError
			}
			sub := data[pos+1]
			size := int(binary.LittleEndian.Uint16(data[pos+2:]))
			total := size + 4
			if size < 1 || pos+total > len(data) || data[pos+total-1] != b {
				return ResultParseError
			}
			if b == fnFontGroup {
				p.fontGroup(sub, data[pos+4:pos+total-1])
			}
			pos += total
		}
	}
	p.flush()
	return ResultOK
}

// flush emits any accumulated text as a single InsertText event.
func (p *parser) flush() {
	if p.text.Len() == 0 {
		return
	}
	p.h.InsertText(p.text.String())
	p.text.Reset()
}

// fontGroup dispatches the subfunctions of the font group.  Damaged
// payloads are skipped rather than treated as parse errors, since a
// missing style event only affects labelling, not the text itself.
func (p *parser) fontGroup(sub byte, payload []byte) {
	switch sub {
	case fontSubChange:
		// payload: font pool index, point size in half-points
		if len(payload) < 3 {
			return
		}
		props := Properties{}
		if idx := int(payload[0]); idx < len(p.fonts) {
			props["style:font-name"] = p.fonts[idx]
		}
		props["style:font-size"] = float64(binary.LittleEndian.Uint16(payload[1:3])) / 2
		if p.spanOpen {
			p.h.CloseSpan()
		}
		p.h.OpenSpan(props)
		p.spanOpen = true
	case fontSubStyle:
		// payload: style name and font face, both length-prefixed
		props := Properties{}
		name, rest, ok := readString(payload)
		if ok && name != "" {
			props["Name"] = name
		}
		if font, _, ok := readString(rest); ok && font != "" {
			props["font"] = font
		}
		p.h.DefineCharacterStyle(props)
	}
}

// readString decodes a length-prefixed string from the start of buf.
func readString(buf []byte) (string, []byte, bool) {
	if len(buf) < 1 {
		return "", nil, false
	}
	n := int(buf[0])
	if 1+n > len(buf) {
		return "", nil, false
	}
	return string(buf[1 : 1+n]), buf[1+n:], true
}
