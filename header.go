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
	"strconv"
)

// headerSize is the length of the fixed file header.  Everything after
// this point belongs to the prefix area or the document area.
const headerSize = 16

const (
	productWordPerfect = 0x01
	fileTypeDocument   = 0x0a

	majorWP5 = 0x00
	majorWP6 = 0x02
)

// magic is the signature at the start of every WordPerfect file.
var magic = []byte{0xff, 'W', 'P', 'C'}

// Header holds the fixed-size header found at the start of a
// WordPerfect file.
type Header struct {
	// DocumentStart is the file offset of the document area.
	DocumentStart int64

	// Product identifies the WordPerfect Corporation product which
	// wrote the file.  Word processing documents use product 1.
	Product byte

	// FileType distinguishes documents from the other file types
	// sharing the same container format.
	FileType byte

	// MajorVersion is 0 for WordPerfect 5.x files and 2 for
	// WordPerfect 6 and later.
	MajorVersion byte

	// MinorVersion refines MajorVersion, e.g. 1 for WordPerfect 5.1.
	MinorVersion byte

	// Checksum is the password verification value.  A value of zero
	// means the file is not encrypted.
	Checksum uint16

	// IndexStart is the file offset of the prefix packet index, or
	// zero if the file has no prefix area.
	IndexStart int64
}

// Encrypted reports whether the document body is enciphered with a
// password.
func (h *Header) Encrypted() bool {
	return h.Checksum != 0
}

// Version returns a human-readable form of the file format revision,
// for example "5.1".
func (h *Header) Version() string {
	switch h.MajorVersion {
	case majorWP5:
		return "5." + strconv.Itoa(int(h.MinorVersion))
	case majorWP6:
		return "6.x"
	default:
		return "unknown (" + strconv.Itoa(int(h.MajorVersion)) + "." +
			strconv.Itoa(int(h.MinorVersion)) + ")"
	}
}

// readHeader decodes the fixed file header.  The returned error, if
// any, is a *MalformedFileError.
func readHeader(data []byte) (*Header, error) {
	if len(data) < headerSize {
		return nil, &MalformedFileError{Err: errHeaderTooShort}
	}
	for i, b := range magic {
		if data[i] != b {
			return nil, &MalformedFileError{Pos: int64(i), Err: errNoMagic}
		}
	}
	h := &Header{
		DocumentStart: int64(binary.LittleEndian.Uint32(data[4:8])),
		Product:       data[8],
		FileType:      data[9],
		MajorVersion:  data[10],
		MinorVersion:  data[11],
		Checksum:      binary.LittleEndian.Uint16(data[12:14]),
		IndexStart:    int64(binary.LittleEndian.Uint16(data[14:16])),
	}
	if h.Product != productWordPerfect {
		return nil, &MalformedFileError{Pos: 8, Err: errWrongProduct}
	}
	if h.FileType != fileTypeDocument {
		return nil, &MalformedFileError{Pos: 9, Err: errWrongFileType}
	}
	return h, nil
}

// Confidence describes how well a file can be expected to parse.
type Confidence int

const (
	// ConfidenceNone means the file is not a WordPerfect document.
	ConfidenceNone Confidence = iota

	// ConfidenceUnsupportedEncryption means the file is a WordPerfect
	// document, but uses an encryption scheme this library cannot
	// decipher.
	ConfidenceUnsupportedEncryption

	// ConfidenceSupportedEncryption means the file is encrypted with a
	// scheme this library understands, and a password is required.
	ConfidenceSupportedEncryption

	// ConfidenceExcellent means the file is an unencrypted WordPerfect
	// document.
	ConfidenceExcellent
)

func (c Confidence) String() string {
	switch c {
	case ConfidenceNone:
		return "none"
	case ConfidenceUnsupportedEncryption:
		return "unsupported encryption"
	case ConfidenceSupportedEncryption:
		return "supported encryption"
	case ConfidenceExcellent:
		return "excellent"
	default:
		return "Confidence(" + strconv.Itoa(int(c)) + ")"
	}
}

// Probe inspects the start of data and reports whether it looks like a
// WordPerfect document.  Probe never returns an error; unrecognizable
// input yields ConfidenceNone.
func Probe(data []byte) Confidence {
	h, err := readHeader(data)
	if err != nil {
		return ConfidenceNone
	}
	if h.Encrypted() {
		if h.MajorVersion == majorWP5 {
			return ConfidenceSupportedEncryption
		}
		return ConfidenceUnsupportedEncryption
	}
	return ConfidenceExcellent
}
