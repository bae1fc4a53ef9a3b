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

// Package display defines the interface between the viewer and the
// component which shows a surface to the user.
//
// A [Backend] is the display subsystem.  [Backend.Open] initializes the
// subsystem and creates a window of the requested size; the returned
// [Session] owns the window and its [surface.Surface] until
// [Session.Close] is called.
package display

import (
	"context"
	"errors"

	"seehuhn.de/go/ppm/surface"
)

var (
	// ErrInit indicates that the display subsystem could not be initialized.
	ErrInit = errors.New("failed to initialize display")

	// ErrCreateWindow indicates that the window could not be created.
	ErrCreateWindow = errors.New("failed to create window")
)

// Backend is a display subsystem which can show images.
type Backend interface {
	// Open creates a window with a drawable surface of exactly width x height
	// pixels.  Errors wrap ErrInit or ErrCreateWindow.
	Open(title string, width, height int) (Session, error)
}

// Session is an open window.
type Session interface {
	// Surface returns the drawable surface of the window.
	Surface() surface.Surface

	// Present copies the current contents of the surface to the visible
	// window.
	Present() error

	// Run shows the window and blocks until the user closes it or ctx is
	// cancelled.  The surface is presented again on every iteration of the
	// event loop.
	Run(ctx context.Context) error

	// Close destroys the window.  Close may be called more than once.
	Close() error
}
