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
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/wpd/internal/testdoc"
)

func TestOpenRejectsGarbage(t *testing.T) {
	inputs := [][]byte{
		nil,
		[]byte("WPC"),
		[]byte("%PDF-1.7\nthis is a different file format"),
		bytes.Repeat([]byte{0xff}, 32),
	}
	for i, data := range inputs {
		doc, err := Open(data, nil)
		if doc != nil || err == nil {
			t.Errorf("input %d: expected an error", i)
			continue
		}
		if !IsMalformed(err) {
			t.Errorf("input %d: error %v is not a *MalformedFileError", i, err)
		}
	}
}

func TestRaw(t *testing.T) {
	b := testdoc.New()
	b.Text("abc")
	data := b.Build()

	doc, err := Open(data, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(doc.Raw(), data) {
		t.Error("Raw() does not return the file contents")
	}
}

func TestEncryptedDocument(t *testing.T) {
	b := testdoc.New()
	b.PoolFont("Times Roman")
	b.FontChange(0, 12)
	b.Text("Attack at dawn.")
	b.HardReturn()

	plain := b.Build()
	enc := b.BuildEncrypted("SECRET")

	if bytes.Equal(enc[headerSize:], plain[headerSize:]) {
		t.Fatal("encryption did not change the document body")
	}
	if c := Probe(enc); c != ConfidenceSupportedEncryption {
		t.Errorf("wrong confidence %q for the encrypted file", c)
	}

	// Without a password, parsing must not leak any events.
	doc, err := Open(enc, nil)
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	if res := doc.Parse(rec); res != ResultPasswordRequired {
		t.Errorf("wrong result %q, expected %q", res, ResultPasswordRequired)
	}
	if len(rec.events) != 0 {
		t.Errorf("unexpected events: %v", rec.events)
	}

	// The same holds for a wrong password.
	doc, err = Open(enc, &Options{Password: "geheim"})
	if err != nil {
		t.Fatal(err)
	}
	rec = &recorder{}
	if res := doc.Parse(rec); res != ResultBadPassword {
		t.Errorf("wrong result %q, expected %q", res, ResultBadPassword)
	}
	if len(rec.events) != 0 {
		t.Errorf("unexpected events: %v", rec.events)
	}

	// WordPerfect passwords are case-insensitive.
	doc, err = Open(enc, &Options{Password: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	rec = &recorder{}
	if res := doc.Parse(rec); res != ResultOK {
		t.Errorf("wrong result %q, expected %q", res, ResultOK)
	}

	plainDoc, err := Open(plain, nil)
	if err != nil {
		t.Fatal(err)
	}
	plainRec := &recorder{}
	if res := plainDoc.Parse(plainRec); res != ResultOK {
		t.Fatalf("wrong result %q for the plaintext file", res)
	}

	if len(rec.events) == 0 || rec.events[0] != "meta{encrypted:true, version:5.1}" {
		t.Errorf("wrong metadata event in %v", rec.events)
	}
	if diff := cmp.Diff(plainRec.events[1:], rec.events[1:]); diff != "" {
		t.Errorf("wrong events (-plain +deciphered):\n%s", diff)
	}

	// Raw must return the deciphered image, at unchanged offsets.
	if !bytes.Equal(doc.Raw()[headerSize:], plain[headerSize:]) {
		t.Error("Raw() does not return the deciphered document body")
	}
}

func TestPasswordIgnoredForPlaintext(t *testing.T) {
	b := testdoc.New()
	b.Text("abc")
	data := b.Build()

	doc, err := Open(data, &Options{Password: "unneeded"})
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	if res := doc.Parse(rec); res != ResultOK {
		t.Errorf("wrong result %q, expected %q", res, ResultOK)
	}
	want := []string{metaWP51, "start", "text{abc}", "end"}
	if diff := cmp.Diff(want, rec.events); diff != "" {
		t.Errorf("wrong events (-want +got):\n%s", diff)
	}
}

func TestUnsupportedEncryption(t *testing.T) {
	b := testdoc.New()
	b.SetVersion(2, 0)
	b.Text("x")
	enc := b.BuildEncrypted("pw")

	if c := Probe(enc); c != ConfidenceUnsupportedEncryption {
		t.Errorf("wrong confidence %q", c)
	}

	doc, err := Open(enc, &Options{Password: "pw"})
	if err != nil {
		t.Fatal(err)
	}
	rec := &recorder{}
	if res := doc.Parse(rec); res != ResultUnsupportedEncryption {
		t.Errorf("wrong result %q, expected %q", res, ResultUnsupportedEncryption)
	}
	if len(rec.events) != 0 {
		t.Errorf("unexpected events: %v", rec.events)
	}
}

// rawHeader assembles a file header by hand, for tests which need
// field values the testdoc builder refuses to produce.
func rawHeader(docStart uint32, indexStart uint16) []byte {
	buf := make([]byte, headerSize)
	copy(buf, magic)
	binary.LittleEndian.PutUint32(buf[4:], docStart)
	buf[8] = productWordPerfect
	buf[9] = fileTypeDocument
	buf[10] = majorWP5
	buf[11] = 1
	binary.LittleEndian.PutUint16(buf[14:], indexStart)
	return buf
}

func TestStructuralDamage(t *testing.T) {
	type testCase struct {
		name string
		data []byte
	}
	cases := []testCase{
		{
			name: "document start beyond end of file",
			data: rawHeader(0x200, 0),
		},
		{
			name: "document start inside header",
			data: rawHeader(8, 0),
		},
		{
			name: "prefix index beyond end of file",
			data: rawHeader(16, 16),
		},
		{
			name: "prefix index inside header",
			data: rawHeader(16, 8),
		},
		{
			name: "prefix index truncated",
			data: append(rawHeader(18, 16), 0x02, 0x00),
		},
		{
			name: "prefix packet outside file",
			data: append(rawHeader(28, 16),
				0x01, 0x00, // one packet
				0x0b, 0x00, // font name
				100, 0, 0, 0, // offset beyond end of file
				50, 0, 0, 0),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc, err := Open(tc.data, nil)
			if err != nil {
				t.Fatal(err)
			}
			rec := &recorder{}
			if res := doc.Parse(rec); res != ResultParseError {
				t.Errorf("wrong result %q, expected %q", res, ResultParseError)
			}
			want := []string{metaWP51, "start", "end"}
			if diff := cmp.Diff(want, rec.events); diff != "" {
				t.Errorf("wrong events (-want +got):\n%s", diff)
			}
		})
	}
}
