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
	"io"
	"math"
	"strings"
)

// ReaderOptions control how a PPM file is read.
// A nil *ReaderOptions is equivalent to the zero value.
type ReaderOptions struct {
	// Strict enables validation of the header and of the pixel data length.
	// If Strict is false, the reader is lenient: invalid headers and short
	// pixel data are tolerated and read as zeros.
	Strict bool

	// Echo, if non-nil, receives a copy of every header line as it is read.
	Echo io.Writer
}

// Header describes the four text lines at the start of a P6 file.
type Header struct {
	// Magic is the first line, without the line terminator.
	// For valid files this is "P6".
	Magic string

	// Comment is the text of the second line, without the line terminator.
	Comment string

	// Width and Height are the image dimensions in pixels.
	// In lenient mode these can be zero or negative.
	Width, Height int

	// MaxVal is the maximum channel value from the fourth line.
	// The value is parsed but, in lenient mode, not checked.
	MaxVal int

	// Size is the length of the header in bytes.
	// This is the offset of the first pixel in the file.
	Size int64
}

// PixelBytes returns the number of pixel bytes which should follow the
// header.
func (h *Header) PixelBytes() int64 {
	if h.Width <= 0 || h.Height <= 0 {
		return 0
	}
	return int64(h.Width) * int64(h.Height) * 3
}

// Offset returns the file offset of the red channel of pixel (x, y).
// The green and blue channels follow at Offset+1 and Offset+2.
func (h *Header) Offset(x, y int) int64 {
	return h.Size + 3*(int64(y)*int64(h.Width)+int64(x))
}

// ReadHeader reads the header of a P6 file from r.
// Since r may be read beyond the end of the header, use [NewDecoder] if the
// pixel data is needed.
func ReadHeader(r io.Reader, opt *ReaderOptions) (*Header, error) {
	dec, err := NewDecoder(r, opt)
	if err != nil {
		return nil, err
	}
	return dec.Header, nil
}

func readHeader(r *reader, strict bool) (*Header, error) {
	var lines [4]string
	var starts [4]int64
	for i := range lines {
		starts[i] = r.pos
		line, err := r.readLine()
		if err != nil {
			if strict {
				if err == io.EOF {
					err = errHeaderEOF
				}
				return nil, &MalformedFileError{Pos: r.pos, Err: err}
			}
			// In lenient mode a failed read is an empty or partial line.
		}
		lines[i] = line
	}

	hdr := &Header{
		Magic:   trimEOL(lines[0]),
		Comment: trimEOL(lines[1]),
		Size:    r.pos,
	}

	w, h, n, rest := scanDimensions(lines[2])
	hdr.Width = w
	hdr.Height = h

	maxVal, maxRest, maxOK := scanInt(lines[3])
	if maxOK {
		hdr.MaxVal = maxVal
	}

	if !strict {
		return hdr, nil
	}

	if strings.TrimRight(lines[0], " \t\r\n") != "P6" {
		return nil, &MalformedFileError{Pos: starts[0], Err: errMagic}
	}
	if n != 2 || !isBlank(rest) {
		return nil, &MalformedFileError{Pos: starts[2], Err: errDimLine}
	}
	if hdr.Width <= 0 || hdr.Height <= 0 {
		return nil, &MalformedFileError{Pos: starts[2], Err: errSize}
	}
	if !maxOK || hdr.MaxVal != 255 || !isBlank(maxRest) {
		return nil, &MalformedFileError{Pos: starts[3], Err: errMaxVal}
	}
	return hdr, nil
}

// scanDimensions scans two integers from line, in the way sscanf("%d %d")
// does.  The number of successfully scanned values is returned in n;
// missing values are zero.
func scanDimensions(line string) (w, h, n int, rest string) {
	rest = line
	w, tail, ok := scanInt(rest)
	if !ok {
		return 0, 0, 0, rest
	}
	rest = tail
	h, tail, ok = scanInt(rest)
	if !ok {
		return w, 0, 1, rest
	}
	return w, h, 2, tail
}

// scanInt skips leading white space and then scans an optionally signed
// decimal integer.  Values outside the 32-bit range are not accepted.
func scanInt(s string) (int, string, bool) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	neg := false
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		neg = s[i] == '-'
		i++
	}
	start := i
	var val int64
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		val = 10*val + int64(s[i]-'0')
		if val > math.MaxInt32+1 {
			return 0, s, false
		}
		i++
	}
	if i == start {
		return 0, s, false
	}
	if neg {
		val = -val
	}
	if val > math.MaxInt32 || val < math.MinInt32 {
		return 0, s, false
	}
	return int(val), s[i:], true
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func isBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}
