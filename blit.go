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
	"image"
	"io"

	"seehuhn.de/go/ppm/surface"
)

// Decoder reads a P6 image from a stream.
// The header is read by [NewDecoder]; the pixel data must then be read
// exactly once, using either [Decoder.Blit] or [Decoder.ReadFrame].
type Decoder struct {
	// Header is the parsed file header.
	Header *Header

	r        *reader
	strict   bool
	consumed bool
}

// NewDecoder reads the header from r and returns a decoder which is
// positioned at the first pixel.
func NewDecoder(r io.Reader, opt *ReaderOptions) (*Decoder, error) {
	if opt == nil {
		opt = &ReaderOptions{}
	}
	rd := newReader(r, opt.Echo)
	hdr, err := readHeader(rd, opt.Strict)
	if err != nil {
		return nil, err
	}
	return &Decoder{
		Header: hdr,
		r:      rd,
		strict: opt.Strict,
	}, nil
}

// Blit draws the image into dst, one 1x1 rectangle per pixel.
// Rows are drawn top to bottom, and pixels within a row left to right.
//
// In lenient mode, pixels beyond the end of the stream are drawn black.
// Images exceeding the limits of [surface.CheckSize] are rejected before
// any pixel data is read.
func (d *Decoder) Blit(dst surface.Surface) error {
	if err := d.checkSize(); err != nil {
		return err
	}
	return d.readPixels(func(x, y int, r, g, b uint8) {
		dst.FillRect(image.Rect(x, y, x+1, y+1), dst.MapRGB(r, g, b))
	})
}

// ReadFrame reads the pixel data into a new image.
// The result is the same as drawing with [Decoder.Blit] into an empty
// surface, but all pixels are staged in memory first.
//
// Images exceeding the limits of [surface.CheckSize] are rejected before
// any memory is allocated.
func (d *Decoder) ReadFrame() (*image.RGBA, error) {
	if err := d.checkSize(); err != nil {
		return nil, err
	}
	w, h := max(d.Header.Width, 0), max(d.Header.Height, 0)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	err := d.readPixels(func(x, y int, r, g, b uint8) {
		i := img.PixOffset(x, y)
		px := img.Pix[i : i+4 : i+4]
		px[0] = r
		px[1] = g
		px[2] = b
		px[3] = 0xFF
	})
	if err != nil {
		return nil, err
	}
	return img, nil
}

// checkSize rejects images too large to be drawn.  Empty images are
// accepted, since they read no pixel data.
func (d *Decoder) checkSize() error {
	w, h := d.Header.Width, d.Header.Height
	if w <= 0 || h <= 0 {
		return nil
	}
	return surface.CheckSize(w, h)
}

// readPixels reads the pixel stream in row-major order and calls set for
// every pixel.
func (d *Decoder) readPixels(set func(x, y int, r, g, b uint8)) error {
	if d.consumed {
		return errConsumed
	}
	d.consumed = true

	width, height := d.Header.Width, d.Header.Height
	if width <= 0 || height <= 0 {
		return d.checkEOF()
	}

	row := make([]byte, 3*width)
	for y := 0; y < height; y++ {
		n, err := d.r.readFull(row)
		if err != nil {
			if d.strict {
				if err == io.ErrUnexpectedEOF || err == io.EOF {
					err = ErrTruncated
				}
				return &MalformedFileError{Pos: d.r.pos, Err: err}
			}
			// Bytes past the end of the stream read as zero.
			clear(row[n:])
		}
		for x := 0; x < width; x++ {
			set(x, y, row[3*x], row[3*x+1], row[3*x+2])
		}
	}

	return d.checkEOF()
}

// checkEOF verifies, in strict mode, that no data follows the last pixel.
func (d *Decoder) checkEOF() error {
	if !d.strict {
		return nil
	}
	eof, err := d.r.atEOF()
	if err != nil {
		return err
	}
	if !eof {
		return &MalformedFileError{Pos: d.r.pos, Err: ErrTrailingData}
	}
	return nil
}
