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

// Package surface implements drawable pixel buffers for image display.
//
// A [Surface] is the buffer a display backend shows on screen.  Callers
// convert colours into the surface's native pixel encoding with
// [Surface.MapRGB] and write them with [Surface.FillRect].
package surface

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Pixel is a colour in the native encoding of a surface.
type Pixel uint32

// Surface is a mutable two-dimensional pixel buffer.
type Surface interface {
	// Bounds returns the area covered by the surface.
	// The top-left pixel is at (0, 0).
	Bounds() image.Rectangle

	// MapRGB converts an opaque RGB colour into the native pixel encoding.
	MapRGB(r, g, b uint8) Pixel

	// FillRect sets all pixels in rect to p.  The rectangle is clipped to
	// the surface bounds.
	FillRect(rect image.Rectangle, p Pixel)
}

// RGBA is an in-memory surface using the RGBA8888 pixel encoding.
// Pixel values have red in the most significant byte and alpha in the
// least significant byte.
//
// RGBA implements [draw.Image].
type RGBA struct {
	*image.RGBA
}

var _ draw.Image = (*RGBA)(nil)

// NewRGBA allocates a black, opaque surface of the given size.
func NewRGBA(width, height int) *RGBA {
	s := &RGBA{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
	s.FillRect(s.Rect, s.MapRGB(0, 0, 0))
	return s
}

// MapRGB implements the [Surface] interface.
func (s *RGBA) MapRGB(r, g, b uint8) Pixel {
	return Pixel(r)<<24 | Pixel(g)<<16 | Pixel(b)<<8 | 0xFF
}

// FillRect implements the [Surface] interface.
func (s *RGBA) FillRect(rect image.Rectangle, p Pixel) {
	rect = rect.Intersect(s.Rect)
	if rect.Empty() {
		return
	}
	c := [4]byte{byte(p >> 24), byte(p >> 16), byte(p >> 8), byte(p)}
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		i := s.PixOffset(rect.Min.X, y)
		for x := rect.Min.X; x < rect.Max.X; x++ {
			copy(s.Pix[i:i+4], c[:])
			i += 4
		}
	}
}

// Pixel returns the native pixel value at (x, y).
// Points outside the surface read as zero.
func (s *RGBA) Pixel(x, y int) Pixel {
	if !(image.Point{x, y}.In(s.Rect)) {
		return 0
	}
	i := s.PixOffset(x, y)
	px := s.Pix[i : i+4 : i+4]
	return Pixel(px[0])<<24 | Pixel(px[1])<<16 | Pixel(px[2])<<8 | Pixel(px[3])
}

// RGB splits an RGBA8888 pixel value into its colour channels.
func (p Pixel) RGB() (r, g, b uint8) {
	return uint8(p >> 24), uint8(p >> 16), uint8(p >> 8)
}

// Load copies src into dst, with the top-left corner of src placed at
// (0, 0).  Surfaces which implement [draw.Image] receive the whole image in
// a single copy; other surfaces are filled pixel by pixel.
func Load(dst Surface, src image.Image) {
	sb := src.Bounds()
	if img, ok := dst.(draw.Image); ok {
		xdraw.Copy(img, image.Point{}, src, sb, xdraw.Src, nil)
		return
	}

	db := dst.Bounds()
	for y := 0; y < sb.Dy() && y < db.Dy(); y++ {
		for x := 0; x < sb.Dx() && x < db.Dx(); x++ {
			c := color.RGBAModel.Convert(src.At(sb.Min.X+x, sb.Min.Y+y)).(color.RGBA)
			dst.FillRect(image.Rect(x, y, x+1, y+1), dst.MapRGB(c.R, c.G, c.B))
		}
	}
}
