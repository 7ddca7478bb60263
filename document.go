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

import "strconv"

// Result reports the outcome of parsing a document.  Any value other
// than ResultOK means the event stream is incomplete; events delivered
// before the parser stopped remain valid.
type Result int

const (
	// ResultOK means the whole document was parsed.
	ResultOK Result = iota

	// ResultUnsupported means the parser met a construct this library
	// does not model.
	ResultUnsupported

	// ResultParseError means the file structure is damaged.
	ResultParseError

	// ResultPasswordRequired means the document is encrypted and no
	// password was given.
	ResultPasswordRequired

	// ResultBadPassword means the given password does not match the
	// checksum in the file header.
	ResultBadPassword

	// ResultUnsupportedEncryption means the document uses an
	// encryption scheme this library cannot decipher.
	ResultUnsupportedEncryption
)

func (r Result) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultUnsupported:
		return "unsupported construct"
	case ResultParseError:
		return "parse error"
	case ResultPasswordRequired:
		return "password required"
	case ResultBadPassword:
		return "bad password"
	case ResultUnsupportedEncryption:
		return "unsupported encryption"
	default:
		return "Result(" + strconv.Itoa(int(r)) + ")"
	}
}

// Success reports whether parsing completed without problems.
func (r Result) Success() bool {
	return r == ResultOK
}

// Options holds the optional arguments of [Open].
type Options struct {
	// Password deciphers encrypted documents.  It is ignored for
	// unencrypted files.
	Password string
}

// Document is a WordPerfect file which has been opened for parsing.
type Document struct {
	// Header is the decoded file header.
	Header *Header

	data   []byte
	denied Result
}

// Open prepares a WordPerfect document for parsing.  The data slice
// must contain the complete file.  Open returns an error (of type
// *MalformedFileError) only if data is not a WordPerfect document at
// all; problems with encryption or file structure are reported later,
// by the [Document.Parse] method.
//
// opt may be nil.
func Open(data []byte, opt *Options) (*Document, error) {
	h, err := readHeader(data)
	if err != nil {
		return nil, err
	}

	doc := &Document{Header: h, data: data}
	if !h.Encrypted() {
		return doc, nil
	}

	switch {
	case h.MajorVersion != majorWP5:
		doc.denied = ResultUnsupportedEncryption
	case opt == nil || opt.Password == "":
		doc.denied = ResultPasswordRequired
	default:
		key, err := passwordKey(opt.Password)
		if err != nil || passwordChecksum(key) != h.Checksum {
			doc.denied = ResultBadPassword
		} else {
			doc.data = decryptBody(data, key)
		}
	}
	return doc, nil
}

// Raw returns the plaintext image of the file.  For encrypted
// documents opened with the correct password this is the deciphered
// copy; otherwise it is the data slice passed to [Open].  All file
// offsets used during parsing refer to this slice.
//
// The caller must not modify the returned slice.
func (d *Document) Raw() []byte {
	return d.data
}

// Parse walks the document and reports its structure to h.  It can be
// called any number of times; each call walks the document from the
// start.
//
// If the document could not be deciphered, Parse reports the reason
// without emitting any events.
func (d *Document) Parse(h Handler) Result {
	if h == nil {
		h = NopHandler{}
	}
	if d.denied != ResultOK {
		return d.denied
	}

	p := &parser{data: d.data, hdr: d.Header, h: h}
	h.SetDocumentMetaData(Properties{
		"version":   d.Header.Version(),
		"encrypted": d.Header.Encrypted(),
	})
	h.StartDocument(nil)
	res := p.run()
	if p.spanOpen {
		h.CloseSpan()
	}
	h.EndDocument()
	return res
}
