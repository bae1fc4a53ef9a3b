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

// Package viewer shows a PPM image on a display backend.
//
// Showing an image proceeds through the states Uninitialized,
// HeaderParsed, PixelsBlitted, EventLoopRunning and Terminated, in this
// order.  A failure stops the viewer in the state it had reached.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"seehuhn.de/go/ppm"
	"seehuhn.de/go/ppm/display"
	"seehuhn.de/go/ppm/surface"
)

// State is the lifecycle state of a [Viewer].
type State int

// These are the states of a [Viewer].
const (
	Uninitialized State = iota
	HeaderParsed
	PixelsBlitted
	EventLoopRunning
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case HeaderParsed:
		return "HeaderParsed"
	case PixelsBlitted:
		return "PixelsBlitted"
	case EventLoopRunning:
		return "EventLoopRunning"
	case Terminated:
		return "Terminated"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configure a [Viewer].
type Options struct {
	// Title is the window title.
	Title string

	// Strict enables validation of the input file.
	Strict bool

	// PerPixel selects drawing the image with one fill operation per pixel,
	// instead of staging the whole frame and copying it in one operation.
	PerPixel bool

	// Echo receives the header lines as they are read.
	Echo io.Writer

	// Log, if non-nil, receives a trace of the state transitions.
	Log *log.Logger
}

// Viewer shows one image.
type Viewer struct {
	backend display.Backend
	opt     Options
	state   State
}

var errUsed = errors.New("viewer already used")

// New returns a viewer which uses the given backend.
func New(backend display.Backend, opt *Options) *Viewer {
	v := &Viewer{backend: backend}
	if opt != nil {
		v.opt = *opt
	}
	return v
}

// State returns the current state of the viewer.
func (v *Viewer) State() State {
	return v.state
}

func (v *Viewer) setState(s State) {
	if v.opt.Log != nil {
		v.opt.Log.Printf("%s -> %s", v.state, s)
	}
	v.state = s
}

// Show reads an image from r and displays it until the window is closed or
// ctx is cancelled.  The window is always destroyed before Show returns.
func (v *Viewer) Show(ctx context.Context, r io.Reader) (err error) {
	if v.state != Uninitialized {
		return errUsed
	}

	dec, err := ppm.NewDecoder(r, &ppm.ReaderOptions{
		Strict: v.opt.Strict,
		Echo:   v.opt.Echo,
	})
	if err != nil {
		return err
	}
	v.setState(HeaderParsed)

	hdr := dec.Header
	sess, err := v.backend.Open(v.opt.Title, hdr.Width, hdr.Height)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, sess.Close())
	}()

	err = v.draw(dec, sess.Surface())
	if err != nil {
		return err
	}
	err = sess.Present()
	if err != nil {
		return err
	}
	v.setState(PixelsBlitted)

	v.setState(EventLoopRunning)
	err = sess.Run(ctx)
	if err != nil {
		return err
	}
	v.setState(Terminated)
	return nil
}

func (v *Viewer) draw(dec *ppm.Decoder, dst surface.Surface) error {
	if v.opt.PerPixel {
		return dec.Blit(dst)
	}
	img, err := dec.ReadFrame()
	if err != nil {
		return err
	}
	surface.Load(dst, img)
	return nil
}
