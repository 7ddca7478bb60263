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
	"strconv"
)

var (
	errHeaderTooShort = errors.New("file too short for header")
	errNoMagic        = errors.New("wrong file signature")
	errWrongProduct   = errors.New("not written by WordPerfect")
	errWrongFileType  = errors.New("not a word processing document")
)

// MalformedFileError indicates that a file is not a WordPerfect document,
// or that its structure is damaged beyond what the parser tolerates.
type MalformedFileError struct {
	// Pos is the file offset where the problem was detected,
	// or 0 if the position is unknown.
	Pos int64

	Err error
}

func (err *MalformedFileError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Pos > 0 {
		tail = " (at byte " + strconv.FormatInt(err.Pos, 10) + ")"
	}
	return "not a valid WordPerfect file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// IsMalformed reports whether err indicates a malformed input file.
func IsMalformed(err error) bool {
	var mfe *MalformedFileError
	return errors.As(err, &mfe)
}
