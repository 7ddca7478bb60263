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

import "unicode"

// WordPerfect character sets referenced by the extended character
// function.  Characters outside plain ASCII are stored as a pair
// (set, code).
const (
	charsetASCII         = 0
	charsetMultinational = 1
	charsetTypographic   = 4
	charsetGreek         = 8
)

// multinationalBase is the code of the first letter pair in the
// multinational character set.  Codes below this hold spacing
// diacritics, which have no use in document text.
const multinationalBase = 26

// multinationalPairs lists the multinational set in code order,
// starting at multinationalBase.
var multinationalPairs = []rune("ÁáÂâÄäÀàÅåÆæÇçÉéÊêËëÈèÍíÎîÏïÌìÑñÓóÔôÖöÒòÚúÛûÜüÙù")

// greekPairs lists the Greek character set in code order.  Upper and
// lower case letters alternate, starting at code 0.
var greekPairs = []rune("ΑαΒβΓγΔδΕεΖζΗηΘθΙιΚκΛλΜμΝνΞξΟοΠπΡρΣσΤτΥυΦφΧχΨψΩω")

// typographic maps codes from the typographic symbol set to runes.
var typographic = map[byte]rune{
	0:  '●',
	1:  '○',
	2:  '■',
	3:  '•',
	4:  '—',
	5:  '–',
	6:  '†',
	7:  '‡',
	8:  '™',
	9:  '¶',
	10: '§',
	11: '¡',
	12: '¿',
	13: '«',
	14: '»',
	28: '“',
	29: '”',
	30: '‘',
	31: '’',
	56: '…',
}

// extendedChar maps a WordPerfect (character set, code) pair to a
// rune.  Pairs outside the supported sets map to the Unicode
// replacement character, so that the presence of unmapped characters
// remains visible in the extracted text.
func extendedChar(set, code byte) rune {
	switch set {
	case charsetASCII:
		if code >= 0x20 && code < 0x7f {
			return rune(code)
		}
	case charsetMultinational:
		idx := int(code) - multinationalBase
		if idx >= 0 && idx < len(multinationalPairs) {
			return multinationalPairs[idx]
		}
	case charsetTypographic:
		if r, ok := typographic[code]; ok {
			return r
		}
	case charsetGreek:
		if int(code) < len(greekPairs) {
			return greekPairs[code]
		}
	}
	return unicode.ReplacementChar
}
