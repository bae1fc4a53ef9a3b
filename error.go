// seehuhn.de/go/ppm - reading and viewing binary PPM images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

package ppm

import (
	"errors"
	"strconv"
)

var (
	// ErrTruncated indicates that the pixel data ended before the last pixel.
	ErrTruncated = errors.New("pixel data truncated")

	// ErrTrailingData indicates that there are bytes after the last pixel.
	ErrTrailingData = errors.New("unexpected data after the last pixel")

	errMagic     = errors.New("not a binary PPM (P6) file")
	errSize      = errors.New("image width and height must be positive")
	errMaxVal    = errors.New("only 8-bit channels (maximum value 255) are supported")
	errDimLine   = errors.New("malformed dimension line")
	errHeaderEOF = errors.New("unexpected end of file in header")
	errConsumed  = errors.New("pixel data already consumed")
)

// MalformedFileError indicates that the PPM file could not be parsed.
type MalformedFileError struct {
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
	return "not a valid PPM file" + middle + tail
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}
