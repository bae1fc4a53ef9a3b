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
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strings"
)

// WriterOptions control how a PPM file is written.
type WriterOptions struct {
	// Comment is written on the second header line, after "# ".
	// It must not contain a newline.
	Comment string
}

var errComment = errors.New("PPM comment must not contain a newline")

// Encode writes src to w as a P6 file with the four-line header
// understood by [NewDecoder].  Alpha is discarded.
func Encode(w io.Writer, src image.Image, opt *WriterOptions) error {
	if opt == nil {
		opt = &WriterOptions{}
	}
	if strings.ContainsAny(opt.Comment, "\r\n") {
		return errComment
	}

	b := src.Bounds()
	bw := bufio.NewWriter(w)
	_, err := fmt.Fprintf(bw, "P6\n# %s\n%d %d\n255\n", opt.Comment, b.Dx(), b.Dy())
	if err != nil {
		return err
	}

	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
			i := 3 * (x - b.Min.X)
			row[i] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
		}
		_, err = bw.Write(row)
		if err != nil {
			return err
		}
	}
	return bw.Flush()
}
