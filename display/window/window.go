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

// Package window shows surfaces in a desktop window, using Ebitengine.
//
// Ebitengine runs its event loop on the main goroutine, and only once per
// process.  Consequently a program can show at most one [Session] and
// [Session.Run] must be called from the main goroutine.
package window

import (
	"context"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"seehuhn.de/go/ppm/display"
	"seehuhn.de/go/ppm/surface"
)

// Backend opens Ebitengine windows.
type Backend struct{}

var _ display.Backend = Backend{}

var (
	errRunning = errors.New("window event loop already started")
	errClosed  = errors.New("window closed")
)

// Open implements the [display.Backend] interface.
//
// The window is not shown before [Session.Run] is called.
func (Backend) Open(title string, width, height int) (display.Session, error) {
	err := surface.CheckSize(width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", display.ErrCreateWindow, err)
	}

	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetWindowClosingHandled(true)

	s := &Session{
		surf:   surface.NewRGBA(width, height),
		width:  width,
		height: height,
	}
	s.front = make([]byte, len(s.surf.Pix))
	return s, nil
}

// Session is an Ebitengine window.
type Session struct {
	surf          *surface.RGBA
	front         []byte
	width, height int

	started bool
	closed  bool
}

// Surface implements the [display.Session] interface.
func (s *Session) Surface() surface.Surface {
	return s.surf
}

// Present implements the [display.Session] interface.
// The surface is copied into the front buffer, which is drawn on the
// screen on the next frame.
func (s *Session) Present() error {
	copy(s.front, s.surf.Pix)
	return nil
}

// Run implements the [display.Session] interface.
func (s *Session) Run(ctx context.Context) error {
	if s.closed {
		return errClosed
	}
	if s.started {
		return errRunning
	}
	s.started = true

	err := ebiten.RunGame(&game{ctx: ctx, s: s})
	if err != nil {
		return fmt.Errorf("%w: %w", display.ErrInit, err)
	}
	return nil
}

// Close implements the [display.Session] interface.
func (s *Session) Close() error {
	s.closed = true
	return nil
}

// game adapts a Session to the ebiten.Game interface.
type game struct {
	ctx context.Context
	s   *Session
}

// Update is called once per tick and implements the event loop.
func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	return g.s.Present()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.WritePixels(g.s.front)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.s.width, g.s.height
}
