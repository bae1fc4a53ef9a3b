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

// Package terminal shows surfaces in a text terminal.
//
// Images are drawn with 24-bit ANSI colour escape sequences, using the
// upper half block character so that every text cell shows two pixels.
// The image must fit into the width of the terminal.
package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/ppm/display"
	"seehuhn.de/go/ppm/surface"
)

// Backend writes images to a terminal.
type Backend struct {
	// In is read for key presses while the image is shown.
	// If In is nil or not a terminal, Run returns immediately.
	In *os.File

	// Out receives the image.  If Out is nil, os.Stdout is used.
	Out io.Writer
}

var _ display.Backend = (*Backend)(nil)

// Open implements the [display.Backend] interface.
func (b *Backend) Open(title string, width, height int) (display.Session, error) {
	err := surface.CheckSize(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", display.ErrCreateWindow, err)
	}

	out := b.Out
	if out == nil {
		out = os.Stdout
	}
	if fd, ok := terminalFD(out); ok {
		cols, _, err := term.GetSize(fd)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", display.ErrInit, err)
		}
		if width > cols {
			return nil, fmt.Errorf("%w: image is %d pixels wide, terminal has %d columns",
				display.ErrCreateWindow, width, cols)
		}
	}

	return &Session{
		title: title,
		in:    b.In,
		out:   out,
		surf:  surface.NewRGBA(width, height),
	}, nil
}

// terminalFD returns the file descriptor of w, if w is a terminal.
func terminalFD(w any) (int, bool) {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}

// Session is an image shown in a terminal.
type Session struct {
	title string
	in    *os.File
	out   io.Writer
	surf  *surface.RGBA

	// lines is the number of text lines between the top of the image and
	// the cursor.
	lines int
}

// Surface implements the [display.Session] interface.
func (s *Session) Surface() surface.Surface {
	return s.surf
}

// Present implements the [display.Session] interface.
// The first call writes the image at the cursor position.  Later calls move
// the cursor back up and draw over the previous output.
func (s *Session) Present() error {
	w := bufio.NewWriter(s.out)
	if s.lines > 0 {
		fmt.Fprintf(w, "\x1b[%dA\r", s.lines)
	}
	b := s.surf.Bounds()
	rows := 0
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := s.surf.Pixel(x, y).RGB()
			fmt.Fprintf(w, "\x1b[38;2;%d;%d;%dm", r, g, bl)
			if y+1 < b.Max.Y {
				r, g, bl = s.surf.Pixel(x, y+1).RGB()
				fmt.Fprintf(w, "\x1b[48;2;%d;%d;%dm", r, g, bl)
			} else {
				w.WriteString("\x1b[49m")
			}
			w.WriteString("▀")
		}
		// raw mode needs the explicit carriage return
		w.WriteString("\x1b[0m\r\n")
		rows++
	}
	s.lines = rows
	return w.Flush()
}

// Run implements the [display.Session] interface.
// It waits until q, Escape, Ctrl-C or Ctrl-D is pressed, or until ctx is
// cancelled.  Any other key presents the surface again.
func (s *Session) Run(ctx context.Context) error {
	if s.in == nil {
		return nil
	}
	fd, ok := terminalFD(s.in)
	if !ok {
		return nil
	}
	return s.loop(ctx, s.in, func() (func(), error) {
		old, err := term.MakeRaw(fd)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", display.ErrInit, err)
		}
		return func() { term.Restore(fd, old) }, nil
	})
}

// loop runs the event loop, reading key presses from in.  The terminal is
// set up by raw, which returns a function to restore the previous state.
func (s *Session) loop(ctx context.Context, in io.Reader, raw func() (func(), error)) error {
	if s.title != "" {
		fmt.Fprintf(s.out, "%s: press q to quit\r\n", s.title)
		s.lines++
	}

	restore, err := raw()
	if err != nil {
		return err
	}
	defer restore()

	// The reader is left blocked in Read when ctx is cancelled; it ends
	// with the process.
	keys := make(chan byte)
	readErr := make(chan error, 1)
	go func() {
		buf := make([]byte, 1)
		for {
			_, err := in.Read(buf)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case keys <- buf[0]:
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-readErr:
			if err == io.EOF {
				return nil
			}
			return err
		case c := <-keys:
			if isQuitKey(c) {
				return nil
			}
			err := s.Present()
			if err != nil {
				return err
			}
		}
	}
}

func isQuitKey(c byte) bool {
	switch c {
	case 'q', 'Q', 0x1b, 0x03, 0x04:
		return true
	}
	return false
}

// Close implements the [display.Session] interface.
func (s *Session) Close() error {
	return nil
}
