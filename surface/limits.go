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
	"fmt"
)

const (
	// MaxDimension is the largest width or height of a surface.
	MaxDimension = 32768

	// MaxPixels bounds the pixel count of a surface, keeping RGBA
	// buffers under 256 MB.
	MaxPixels int64 = 64 * 1024 * 1024
)

var (
	// ErrEmpty is returned by CheckSize for zero-area surfaces.
	ErrEmpty = errors.New("surface has zero area")

	// ErrTooLarge is returned by CheckSize for surfaces exceeding the limits.
	ErrTooLarge = errors.New("surface too large")
)

// CheckSize verifies that a surface of the given size can be allocated.
func CheckSize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%dx%d: %w", width, height, ErrEmpty)
	}
	if width > MaxDimension || height > MaxDimension ||
		int64(width)*int64(height) > MaxPixels {
		return fmt.Errorf("%dx%d: %w", width, height, ErrTooLarge)
	}
	return nil
}
