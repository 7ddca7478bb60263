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
	"errors"
)

// Prefix packet types understood by this library.  Packets of other
// types are present in most real-world files and are skipped.
const (
	packetFontName     = 0x000b
	packetEmbeddedFont = 0x000f
)

// indexEntrySize is the size of one entry in the prefix packet index:
// a 16-bit packet type, a 32-bit data offset and a 32-bit data length.
const indexEntrySize = 10

// readPrefix walks the prefix packet index.  Font name packets fill
// the font pool referenced by font change functions in the document
// area.  Embedded font packets are reported to the handler right away,
// before any content events.
func (p *parser) readPrefix() error {
	base := int(p.hdr.IndexStart)
	if base == 0 {
		return nil
	}
	data := p.data
	if base < headerSize || base+2 > len(data) {
		return &MalformedFileError{Pos: 14, Err: errors.New("prefix index outside file")}
	}
	count := int(binary.LittleEndian.Uint16(data[base:]))
	pos := base + 2
	for i := 0; i < count; i++ {
		if pos+indexEntrySize > len(data) {
			return &MalformedFileError{Pos: int64(pos), Err: errors.New("prefix index truncated")}
		}
		typ := binary.LittleEndian.Uint16(data[pos:])
		off := int(binary.LittleEndian.Uint32(data[pos+2:]))
		length := int(binary.LittleEndian.Uint32(data[pos+6:]))
		pos += indexEntrySize

		if off < headerSize || off+length > len(data) {
			return &MalformedFileError{
				Pos: int64(pos - indexEntrySize),
				Err: errors.New("prefix packet outside file"),
			}
		}
		payload := data[off : off+length]
		switch typ {
		case packetFontName:
			p.fonts = append(p.fonts, string(payload))
		case packetEmbeddedFont:
			p.h.DefineEmbeddedFont(Properties{"font-data": payload})
		}
	}
	return nil
}
