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
	"errors"
	"strings"

	"github.com/xdg-go/stringprep"
)

var errInvalidPassword = errors.New("invalid password")

// passwordKey converts a user-supplied password into the key bytes
// used by the WordPerfect 5.x cipher.  WordPerfect compared passwords
// case-insensitively, so the key uses the upper-case form.
func passwordKey(passwd string) ([]byte, error) {
	prepped, err := stringprep.SASLprep.Prepare(passwd)
	if err != nil {
		return nil, errInvalidPassword
	}
	key := []byte(strings.ToUpper(prepped))
	if len(key) == 0 {
		return nil, errInvalidPassword
	}
	return key, nil
}

// passwordChecksum computes the 16-bit verification value stored in
// the file header.  For each key byte the checksum is rotated right by
// one bit and xor-ed with the byte shifted into the high half.
func passwordChecksum(key []byte) uint16 {
	var sum uint16
	for _, c := range key {
		sum = (sum>>1 | sum<<15) ^ (uint16(c) << 8)
	}
	return sum
}

// decryptBody returns a copy of data with the body deciphered.  The
// first headerSize bytes are stored in the clear and are copied
// unchanged, so all file offsets remain valid in the returned slice.
func decryptBody(data []byte, key []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data[:min(headerSize, len(data))])
	for i := headerSize; i < len(data); i++ {
		n := i - headerSize
		out[i] = data[i] ^ (key[n%len(key)] + byte(n) + 1)
	}
	return out
}
