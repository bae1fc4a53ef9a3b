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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadHeaderLenient(t *testing.T) {
	cases := []struct {
		in   string
		want Header
	}{
		{
			in:   "P6\n# comment\n2 2\n255\n",
			want: Header{Magic: "P6", Comment: "# comment", Width: 2, Height: 2, MaxVal: 255, Size: 21},
		},
		{
			in:   "P6\n#\nabc def\n255\n",
			want: Header{Magic: "P6", Comment: "#", MaxVal: 255, Size: 17},
		},
		{
			in:   "P6\n#\n12 abc\n255\n",
			want: Header{Magic: "P6", Comment: "#", Width: 12, MaxVal: 255, Size: 16},
		},
		{
			in:   "P3\nx\n-4 +7\n15\n",
			want: Header{Magic: "P3", Comment: "x", Width: -4, Height: 7, MaxVal: 15, Size: 14},
		},
		{
			in:   "P6\n\n  3\t4  extra\n255\n",
			want: Header{Magic: "P6", Width: 3, Height: 4, MaxVal: 255, Size: 21},
		},
		{
			in:   "P6\n#\n99999999999 1\n255\n",
			want: Header{Magic: "P6", Comment: "#", MaxVal: 255, Size: 23},
		},
		{
			in:   "P6\r\n# c\r\n1 1\r\n255\r\n",
			want: Header{Magic: "P6", Comment: "# c", Width: 1, Height: 1, MaxVal: 255, Size: 19},
		},
		{
			in:   "P6\n# comment",
			want: Header{Magic: "P6", Comment: "# comment", Size: 12},
		},
		{
			in:   "",
			want: Header{},
		},
	}

	for i, c := range cases {
		hdr, err := ReadHeader(strings.NewReader(c.in), nil)
		if err != nil {
			t.Errorf("%d: unexpected error: %v", i, err)
			continue
		}
		if d := cmp.Diff(&c.want, hdr); d != "" {
			t.Errorf("%d: %q: header mismatch (-want +got):\n%s", i, c.in, d)
		}
	}
}

func TestReadHeaderStrict(t *testing.T) {
	cases := []struct {
		in  string
		err error
		pos int64
	}{
		{"P3\n#\n2 2\n255\n", errMagic, 0},
		{"P6 x\n#\n2 2\n255\n", errMagic, 0},
		{"P6\n#\nabc def\n255\n", errDimLine, 5},
		{"P6\n#\n2\n255\n", errDimLine, 5},
		{"P6\n#\n2 2 2\n255\n", errDimLine, 5},
		{"P6\n#\n0 5\n255\n", errSize, 5},
		{"P6\n#\n5 -1\n255\n", errSize, 5},
		{"P6\n#\n2 2\n65535\n", errMaxVal, 9},
		{"P6\n#\n2 2\n255 1\n", errMaxVal, 9},
		{"P6\n#\n2 2\n", errHeaderEOF, 9},
		{"P6\n#\n2 2\n255", errHeaderEOF, 12},
	}

	opt := &ReaderOptions{Strict: true}
	for _, c := range cases {
		_, err := ReadHeader(strings.NewReader(c.in), opt)
		if !errors.Is(err, c.err) {
			t.Errorf("%q: got error %v, want %v", c.in, err, c.err)
			continue
		}
		var mf *MalformedFileError
		if !errors.As(err, &mf) {
			t.Errorf("%q: error %v is not a MalformedFileError", c.in, err)
		} else if mf.Pos != c.pos {
			t.Errorf("%q: error at byte %d, want %d", c.in, mf.Pos, c.pos)
		}
	}

	hdr, err := ReadHeader(strings.NewReader("P6\n# ok\n640 480\n255\n"), opt)
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Width != 640 || hdr.Height != 480 {
		t.Errorf("got %dx%d, want 640x480", hdr.Width, hdr.Height)
	}
}

// TestLongComment checks that header lines are not truncated.
func TestLongComment(t *testing.T) {
	comment := "# " + strings.Repeat("x", 5000)
	in := "P6\n" + comment + "\n3 5\n255\n"

	hdr, err := ReadHeader(strings.NewReader(in), &ReaderOptions{Strict: true})
	if err != nil {
		t.Fatal(err)
	}
	if hdr.Comment != comment {
		t.Errorf("comment has length %d, want %d", len(hdr.Comment), len(comment))
	}
	if hdr.Width != 3 || hdr.Height != 5 {
		t.Errorf("got %dx%d, want 3x5", hdr.Width, hdr.Height)
	}
	if hdr.Size != int64(len(in)) {
		t.Errorf("header size %d, want %d", hdr.Size, len(in))
	}
}

func TestHeaderEcho(t *testing.T) {
	header := "P6\n# echo test\n1 1\n255\n"
	in := header + "\x01\x02\x03"

	buf := &bytes.Buffer{}
	dec, err := NewDecoder(strings.NewReader(in), &ReaderOptions{Echo: buf})
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != header {
		t.Errorf("echo = %q, want %q", buf.String(), header)
	}

	_, err = dec.ReadFrame()
	if err != nil {
		t.Fatal(err)
	}
	if buf.String() != header {
		t.Errorf("pixel data was echoed: %q", buf.String())
	}
}

func TestHeaderOffset(t *testing.T) {
	hdr := &Header{Width: 4, Height: 3, Size: 15}
	if got := hdr.Offset(0, 0); got != 15 {
		t.Errorf("Offset(0, 0) = %d, want 15", got)
	}
	if got := hdr.Offset(3, 2); got != 15+3*11 {
		t.Errorf("Offset(3, 2) = %d, want %d", got, 15+3*11)
	}
	if got := hdr.PixelBytes(); got != 36 {
		t.Errorf("PixelBytes() = %d, want 36", got)
	}

	hdr = &Header{Width: -1, Height: 3}
	if got := hdr.PixelBytes(); got != 0 {
		t.Errorf("PixelBytes() = %d, want 0", got)
	}
}

func FuzzReadHeader(f *testing.F) {
	f.Add([]byte("P6\n# comment\n2 2\n255\n"))
	f.Add([]byte("P6\n#\nabc def\n255\n"))
	f.Add([]byte("P6\n#\n1 1\n255\n\xff\x00\x00"))
	f.Add([]byte(""))
	f.Add([]byte("\n\n\n\n"))

	f.Fuzz(func(t *testing.T, data []byte) {
		lenient, err := ReadHeader(bytes.NewReader(data), nil)
		if err != nil {
			t.Fatalf("lenient mode failed: %v", err)
		}
		if lenient.Size > int64(len(data)) {
			t.Fatalf("header size %d exceeds input size %d", lenient.Size, len(data))
		}

		strict, err := ReadHeader(bytes.NewReader(data), &ReaderOptions{Strict: true})
		if err != nil {
			return
		}
		if d := cmp.Diff(lenient, strict); d != "" {
			t.Errorf("strict and lenient headers differ (-lenient +strict):\n%s", d)
		}
		if strict.Width <= 0 || strict.Height <= 0 || strict.MaxVal != 255 {
			t.Errorf("strict mode accepted invalid header %+v", strict)
		}
	})
}
