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
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// Handler receives the events emitted while parsing a document.
// The methods are called in document order.
//
// Property values passed to a handler are only valid until the
// callback returns.  Handlers which need to keep a value must copy it.
//
// Use NopHandler to implement only the methods of interest:
//
//	type textOnly struct {
//		wpd.NopHandler
//	}
//
//	func (h *textOnly) InsertText(s string) { ... }
type Handler interface {
	// SetDocumentMetaData is called once, before StartDocument, with
	// information from the file header.
	SetDocumentMetaData(props Properties)

	// StartDocument marks the beginning of the document body.
	StartDocument(props Properties)

	// EndDocument is called after the last content event, even if
	// parsing stopped early.
	EndDocument()

	// OpenSpan starts a region of text with new character properties.
	OpenSpan(props Properties)

	// CloseSpan ends the region started by the matching OpenSpan.
	CloseSpan()

	// DefineCharacterStyle announces a named character style.
	DefineCharacterStyle(props Properties)

	// DefineEmbeddedFont announces a font program stored in the file.
	DefineEmbeddedFont(props Properties)

	// InsertText delivers a chunk of decoded document text.
	InsertText(text string)

	// InsertSpace inserts an explicit (non-breaking) space.
	InsertSpace()

	// InsertTab inserts a horizontal tab.
	InsertTab()

	// InsertLineBreak ends the current line.
	InsertLineBreak()
}

// NopHandler implements Handler with methods that do nothing.
type NopHandler struct{}

// SetDocumentMetaData implements the [Handler] interface.
func (NopHandler) SetDocumentMetaData(Properties) {}

// StartDocument implements the [Handler] interface.
func (NopHandler) StartDocument(Properties) {}

// EndDocument implements the [Handler] interface.
func (NopHandler) EndDocument() {}

// OpenSpan implements the [Handler] interface.
func (NopHandler) OpenSpan(Properties) {}

// CloseSpan implements the [Handler] interface.
func (NopHandler) CloseSpan() {}

// DefineCharacterStyle implements the [Handler] interface.
func (NopHandler) DefineCharacterStyle(Properties) {}

// DefineEmbeddedFont implements the [Handler] interface.
func (NopHandler) DefineEmbeddedFont(Properties) {}

// InsertText implements the [Handler] interface.
func (NopHandler) InsertText(string) {}

// InsertSpace implements the [Handler] interface.
func (NopHandler) InsertSpace() {}

// InsertTab implements the [Handler] interface.
func (NopHandler) InsertTab() {}

// InsertLineBreak implements the [Handler] interface.
func (NopHandler) InsertLineBreak() {}

// Properties is the set of key/value pairs attached to an event.
type Properties map[string]any

// Str returns the value for the given key.  The second return value is
// false if the key is absent or the value is not a string.
func (p Properties) Str(key string) (string, bool) {
	s, ok := p[key].(string)
	return s, ok
}

// Bytes returns the value for the given key.  The second return value
// is false if the key is absent or the value is not a byte slice.
func (p Properties) Bytes(key string) ([]byte, bool) {
	b, ok := p[key].([]byte)
	return b, ok
}

// String returns a textual form of the property set.  Keys are listed
// in sorted order, each as "key:value", separated by commas.
func (p Properties) String() string {
	keys := maps.Keys(p)
	slices.Sort(keys)

	b := &strings.Builder{}
	for i, key := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(key)
		b.WriteByte(':')
		switch v := p[key].(type) {
		case string:
			b.WriteString(v)
		case bool:
			b.WriteString(strconv.FormatBool(v))
		case int:
			b.WriteString(strconv.Itoa(v))
		case float64:
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		case []byte:
			b.WriteString("(" + strconv.Itoa(len(v)) + " bytes)")
		default:
			fmt.Fprintf(b, "%v", v)
		}
	}
	return b.String()
}
