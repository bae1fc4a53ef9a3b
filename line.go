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
	"bufio"
	"io"
)

// reader wraps the input stream and keeps track of the current offset.
// Header lines and pixel data must be read through the same reader,
// since the buffer may already hold the first pixels.
type reader struct {
	r    *bufio.Reader
	pos  int64
	echo io.Writer
}

func newReader(r io.Reader, echo io.Writer) *reader {
	br, ok := r.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(r)
	}
	return &reader{r: br, echo: echo}
}

// readLine returns the next line, including the terminating newline.
// The line length is not limited.  At the end of the stream the partial
// line is returned together with io.EOF.
func (r *reader) readLine() (string, error) {
	line, err := r.r.ReadString('\n')
	r.pos += int64(len(line))
	if r.echo != nil && line != "" {
		// The echo is diagnostic output only, write errors are ignored.
		io.WriteString(r.echo, line)
	}
	return line, err
}

// readFull fills buf from the stream and returns the number of bytes read.
func (r *reader) readFull(buf []byte) (int, error) {
	n, err := io.ReadFull(r.r, buf)
	r.pos += int64(n)
	return n, err
}

// atEOF reports whether the stream has been consumed completely.
func (r *reader) atEOF() (bool, error) {
	_, err := r.r.Peek(1)
	if err == io.EOF {
		return true, nil
	} else if err != nil {
		return false, err
	}
	return false, nil
}
