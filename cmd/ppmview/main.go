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

// Ppmview shows a binary PPM (P6) image in a window.
//
// The header lines of the file are echoed to standard output as they are
// read.  The program exits with status 0 when the window is closed, and
// with status -1 if the window cannot be opened.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"seehuhn.de/go/ppm/display"
	"seehuhn.de/go/ppm/display/terminal"
	"seehuhn.de/go/ppm/display/window"
	"seehuhn.de/go/ppm/internal/buildinfo"
	"seehuhn.de/go/ppm/internal/config"
	"seehuhn.de/go/ppm/internal/profile"
	"seehuhn.de/go/ppm/viewer"
)

// exitDisplayFailure is the exit status used when the display cannot be
// initialized or the window cannot be created.
const exitDisplayFailure = -1

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "ppmview \u2014 show a binary PPM image\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("ppmview"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  ppmview [options] [file.ppm]\n\n")
		fmt.Fprintf(os.Stderr, "Arguments:\n")
		fmt.Fprintf(os.Stderr, "  file.ppm   the image to show (default %s)\n\n", config.DefaultFile)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  ppmview photo.ppm\n")
		fmt.Fprintf(os.Stderr, "  ppmview -strict -backend terminal icon.ppm\n")
	}

	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		flag.Usage()
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Println(buildinfo.Short("ppmview"))
		return
	}

	err = run(cfg)
	os.Exit(exitCode(err, os.Stdout, os.Stderr))
}

func run(cfg *config.Config) (err error) {
	prof, err := profile.Start(cfg.CPUProfile, cfg.MemProfile)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, prof.Stop())
	}()

	in, err := openInput(cfg.Input, cfg.Strict, os.Stderr)
	if err != nil {
		return err
	}
	defer in.Close()

	opt := &viewer.Options{
		Title:    cfg.Title,
		Strict:   cfg.Strict,
		PerPixel: cfg.PerPixel,
	}
	if !cfg.Quiet {
		opt.Echo = os.Stdout
	}
	if cfg.Verbose {
		opt.Log = log.New(os.Stderr, "ppmview: ", 0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := viewer.New(newBackend(cfg.Backend), opt)
	return v.Show(ctx, in)
}

func newBackend(name string) display.Backend {
	switch name {
	case config.BackendTerminal:
		return &terminal.Backend{In: os.Stdin, Out: os.Stdout}
	default:
		return window.Backend{}
	}
}

// openInput opens the image file.  In lenient mode a file which cannot be
// opened reads as an empty stream, after a warning on warn.
func openInput(fname string, strict bool, warn io.Writer) (io.ReadCloser, error) {
	f, err := os.Open(fname)
	if err == nil {
		return f, nil
	}
	if strict {
		return nil, err
	}
	fmt.Fprintf(warn, "warning: %v\n", err)
	return io.NopCloser(strings.NewReader("")), nil
}

// exitCode reports err and returns the exit status for it.  Display
// failures are reported on stdout, all other errors on stderr.
func exitCode(err error, stdout, stderr io.Writer) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, display.ErrInit) || errors.Is(err, display.ErrCreateWindow) {
		fmt.Fprintln(stdout, err)
		return exitDisplayFailure
	}
	fmt.Fprintln(stderr, "error:", err)
	return 1
}
