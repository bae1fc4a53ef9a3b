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

// Package ppm reads binary PPM (P6) images.
//
// A P6 file starts with four text lines, each terminated by a newline:
// the magic number "P6", a comment, the image width and height, and the
// maximum channel value.  The header is followed by width*height RGB
// triples, one byte per channel, in row-major order starting at the
// top-left corner.
//
// The package has two modes.  By default the reader is lenient, for
// compatibility with files written by careless tools: nothing in the
// header is validated, unparseable dimensions become zero, and pixels past
// the end of the file are black.  In strict mode (see [ReaderOptions]) malformed
// headers and short or over-long pixel data are reported as
// [*MalformedFileError].
//
// Typical use:
//
//	dec, err := ppm.NewDecoder(f, nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, err := dec.ReadFrame()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A [Decoder] can also draw directly into a [surface.Surface], one pixel
// at a time, using [Decoder.Blit].
package ppm
