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

// Package testdoc assembles synthetic WordPerfect 5.x files for use in
// unit tests.
package testdoc

import (
	"bytes"
	"encoding/binary"
	"strings"
)

type packet struct {
	typ  uint16
	data []byte
}

// Builder assembles a WordPerfect 5.x file piece by piece.
type Builder struct {
	packets  []packet
	numFonts int
	body     bytes.Buffer

	major byte
	minor byte
}

// New returns an empty Builder for a WordPerfect 5.1 document.
func New() *Builder {
	return &Builder{major: 0, minor: 1}
}

// SetVersion overrides the format version stored in the file header.
func (b *Builder) SetVersion(major, minor byte) {
	b.major = major
	b.minor = minor
}

// PoolFont adds a font name packet to the prefix area and returns its
// pool index.
func (b *Builder) PoolFont(name string) int {
	b.packets = append(b.packets, packet{0x000b, []byte(name)})
	b.numFonts++
	return b.numFonts - 1
}

// EmbedFont adds an embedded font packet to the prefix area.
func (b *Builder) EmbedFont(data []byte) {
	b.packets = append(b.packets, packet{0x000f, data})
}

// Packet adds a prefix packet with an arbitrary type.
func (b *Builder) Packet(typ uint16, data []byte) {
	b.packets = append(b.packets, packet{typ, data})
}

// Text appends printable ASCII text to the document area.  Text panics
// if s contains other characters.
func (b *Builder) Text(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			panic("testdoc: text must be printable ASCII")
		}
	}
	b.body.WriteString(s)
}

// ExtChar appends an extended character function.
func (b *Builder) ExtChar(set, code byte) {
	b.body.Write([]byte{0xc0, code, set, 0xc0})
}

// Tab appends a tab function.
func (b *Builder) Tab() {
	b.body.Write([]byte{0xc1, 0, 0, 0, 0xc1})
}

// AttrOn appends an attribute-on function.
func (b *Builder) AttrOn(attr byte) {
	b.body.Write([]byte{0xc2, attr, 0xc2})
}

// AttrOff appends an attribute-off function.
func (b *Builder) AttrOff(attr byte) {
	b.body.Write([]byte{0xc3, attr, 0xc3})
}

// HardReturn appends a hard return.
func (b *Builder) HardReturn() {
	b.body.WriteByte(0x0a)
}

// SoftReturn appends a soft return.
func (b *Builder) SoftReturn() {
	b.body.WriteByte(0x0d)
}

// HardPage appends a hard page break.
func (b *Builder) HardPage() {
	b.body.WriteByte(0x0c)
}

// HardSpace appends a hard space function.
func (b *Builder) HardSpace() {
	b.body.WriteByte(0x81)
}

// HardHyphen appends a hard hyphen function.
func (b *Builder) HardHyphen() {
	b.body.WriteByte(0xa9)
}

// FontChange appends a font group function selecting a font from the
// prefix pool.  size is the point size.
func (b *Builder) FontChange(poolIndex int, size float64) {
	payload := []byte{byte(poolIndex), 0, 0}
	binary.LittleEndian.PutUint16(payload[1:], uint16(size*2))
	b.Group(0xd1, 0x00, payload)
}

// DefineStyle appends a character style definition.
func (b *Builder) DefineStyle(name, font string) {
	var payload []byte
	payload = append(payload, byte(len(name)))
	payload = append(payload, name...)
	payload = append(payload, byte(len(font)))
	payload = append(payload, font...)
	b.Group(0xd1, 0x01, payload)
}

// Group appends a variable-length function group with the given code,
// subfunction and payload.
func (b *Builder) Group(code, sub byte, payload []byte) {
	hdr := []byte{code, sub, 0, 0}
	binary.LittleEndian.PutUint16(hdr[2:], uint16(len(payload)+1))
	b.body.Write(hdr)
	b.body.Write(payload)
	b.body.WriteByte(code)
}

// Raw appends arbitrary bytes to the document area.  Tests use this to
// construct malformed input.
func (b *Builder) Raw(data ...byte) {
	b.body.Write(data)
}

// Build assembles the file.  Build does not consume the Builder, so a
// test can assemble the same document more than once.
func (b *Builder) Build() []byte {
	return b.build(0)
}

// BuildEncrypted assembles the file and enciphers the body using the
// WordPerfect 5.x password scheme.  The cipher here is written
// independently of the implementation under test.  The password must
// be ASCII.
func (b *Builder) BuildEncrypted(password string) []byte {
	key := []byte(strings.ToUpper(password))
	var checksum uint16
	for _, c := range key {
		checksum = (checksum>>1 | checksum<<15) ^ (uint16(c) << 8)
	}
	data := b.build(checksum)
	for i := 16; i < len(data); i++ {
		n := i - 16
		data[i] ^= key[n%len(key)] + byte(n) + 1
	}
	return data
}

func (b *Builder) build(checksum uint16) []byte {
	indexStart := 0
	indexSize := 0
	if len(b.packets) > 0 {
		indexStart = 16
		indexSize = 2 + 10*len(b.packets)
	}
	payloadStart := 16 + indexSize
	docStart := payloadStart
	for _, p := range b.packets {
		docStart += len(p.data)
	}

	buf := &bytes.Buffer{}
	var tmp [4]byte

	buf.Write([]byte{0xff, 'W', 'P', 'C'})
	binary.LittleEndian.PutUint32(tmp[:], uint32(docStart))
	buf.Write(tmp[:])
	buf.WriteByte(1)    // product
	buf.WriteByte(0x0a) // file type
	buf.WriteByte(b.major)
	buf.WriteByte(b.minor)
	binary.LittleEndian.PutUint16(tmp[:2], checksum)
	buf.Write(tmp[:2])
	binary.LittleEndian.PutUint16(tmp[:2], uint16(indexStart))
	buf.Write(tmp[:2])

	if len(b.packets) > 0 {
		binary.LittleEndian.PutUint16(tmp[:2], uint16(len(b.packets)))
		buf.Write(tmp[:2])
		off := payloadStart
		for _, p := range b.packets {
			binary.LittleEndian.PutUint16(tmp[:2], p.typ)
			buf.Write(tmp[:2])
			binary.LittleEndian.PutUint32(tmp[:], uint32(off))
			buf.Write(tmp[:])
			binary.LittleEndian.PutUint32(tmp[:], uint32(len(p.data)))
			buf.Write(tmp[:])
			off += len(p.data)
		}
		for _, p := range b.packets {
			buf.Write(p.data)
		}
	}

	buf.Write(b.body.Bytes())
	return buf.Bytes()
}
