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
	"testing"
)

func TestPasswordKey(t *testing.T) {
	key, err := passwordKey("secret")
	if err != nil {
		t.Fatal(err)
	}
	if string(key) != "SECRET" {
		t.Errorf("wrong key: %q", key)
	}

	_, err = passwordKey("")
	if err == nil {
		t.Error("empty password accepted")
	}
}

func TestPasswordChecksum(t *testing.T) {
	// hand-computed reference values
	cases := []struct {
		key  string
		want uint16
	}{
		{"A", 0x4100},
		{"AB", 0x6280},
	}
	for _, c := range cases {
		if got := passwordChecksum([]byte(c.key)); got != c.want {
			t.Errorf("checksum(%q) = %#06x, want %#06x", c.key, got, c.want)
		}
	}

	// case-insensitive match via passwordKey
	k1, _ := passwordKey("Secret")
	k2, _ := passwordKey("sECRET")
	if passwordChecksum(k1) != passwordChecksum(k2) {
		t.Error("checksum depends on password case")
	}
}

func TestDecryptBody(t *testing.T) {
	plain := make([]byte, 64)
	for i := range plain {
		plain[i] = byte(i * 7)
	}
	key := []byte("TEST")

	enc := make([]byte, len(plain))
	copy(enc, plain[:headerSize])
	for i := headerSize; i < len(plain); i++ {
		n := i - headerSize
		enc[i] = plain[i] ^ (key[n%len(key)] + byte(n) + 1)
	}

	got := decryptBody(enc, key)
	if !bytes.Equal(got, plain) {
		t.Error("decryptBody does not invert the cipher")
	}
	if bytes.Equal(enc[headerSize:], plain[headerSize:]) {
		t.Error("cipher is a no-op")
	}

	// the header is stored in the clear
	if !bytes.Equal(enc[:headerSize], plain[:headerSize]) {
		t.Error("header bytes were modified")
	}
}
