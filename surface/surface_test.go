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

package surface

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewRGBAIsBlack(t *testing.T) {
	s := NewRGBA(3, 2)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := s.RGBAAt(x, y); got != (color.RGBA{0, 0, 0, 255}) {
				t.Errorf("pixel (%d, %d) = %v", x, y, got)
			}
		}
	}
}

func TestMapRGB(t *testing.T) {
	s := NewRGBA(1, 1)
	p := s.MapRGB(0x12, 0x34, 0x56)
	if p != 0x123456FF {
		t.Errorf("MapRGB = %08x, want 123456ff", uint32(p))
	}
	r, g, b := p.RGB()
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = %02x %02x %02x", r, g, b)
	}
}

func TestFillRect(t *testing.T) {
	s := NewRGBA(4, 4)
	p := s.MapRGB(200, 100, 50)

	// partly outside the surface
	s.FillRect(image.Rect(2, -1, 10, 2), p)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := s.MapRGB(0, 0, 0)
			if x >= 2 && y < 2 {
				want = p
			}
			if got := s.Pixel(x, y); got != want {
				t.Errorf("pixel (%d, %d) = %08x, want %08x", x, y, uint32(got), uint32(want))
			}
		}
	}

	if got := s.Pixel(10, 10); got != 0 {
		t.Errorf("pixel outside surface = %08x", uint32(got))
	}
}

// fillOnly hides the draw.Image methods of RGBA, so that Load has to use
// FillRect.
type fillOnly struct {
	s *RGBA
}

func (f fillOnly) Bounds() image.Rectangle                { return f.s.Bounds() }
func (f fillOnly) MapRGB(r, g, b uint8) Pixel             { return f.s.MapRGB(r, g, b) }
func (f fillOnly) FillRect(rect image.Rectangle, p Pixel) { f.s.FillRect(rect, p) }

func TestLoad(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 8, 7))
	for y := 5; y < 7; y++ {
		for x := 5; x < 8; x++ {
			src.SetRGBA(x, y, color.RGBA{uint8(10 * x), uint8(20 * y), 7, 255})
		}
	}

	direct := NewRGBA(3, 2)
	Load(direct, src)
	slow := NewRGBA(3, 2)
	Load(fillOnly{slow}, src)

	if d := cmp.Diff(src.Pix, direct.Pix); d != "" {
		t.Errorf("direct copy differs (-want +got):\n%s", d)
	}
	if d := cmp.Diff(src.Pix, slow.Pix); d != "" {
		t.Errorf("per-pixel copy differs (-want +got):\n%s", d)
	}
}

func TestCheckSize(t *testing.T) {
	cases := []struct {
		w, h int
		err  error
	}{
		{1, 1, nil},
		{640, 480, nil},
		{MaxDimension, 1, nil},
		{0, 10, ErrEmpty},
		{10, -1, ErrEmpty},
		{MaxDimension + 1, 1, ErrTooLarge},
		{MaxDimension, MaxDimension, ErrTooLarge},
	}
	for _, c := range cases {
		err := CheckSize(c.w, c.h)
		if !errors.Is(err, c.err) {
			t.Errorf("CheckSize(%d, %d) = %v, want %v", c.w, c.h, err, c.err)
		}
	}
}
