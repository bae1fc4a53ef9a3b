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

// Package config holds the settings of the ppmview command.
//
// Settings are taken from command line flags and, optionally, from a YAML
// file given with -config.  Flags given on the command line take
// precedence over values in the file.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// DefaultFile is the image shown when no file name is given.
const DefaultFile = "grandCanyon.ppm"

// Backend names.
const (
	BackendWindow   = "window"
	BackendTerminal = "terminal"
)

// Config holds the ppmview settings.
type Config struct {
	Backend  string `yaml:"backend"`
	Title    string `yaml:"title"`
	Strict   bool   `yaml:"strict"`
	Quiet    bool   `yaml:"quiet"`
	PerPixel bool   `yaml:"per_pixel"`
	Verbose  bool   `yaml:"verbose"`

	// These are only set from the command line.
	ConfigFile  string `yaml:"-"`
	CPUProfile  string `yaml:"-"`
	MemProfile  string `yaml:"-"`
	ShowVersion bool   `yaml:"-"`

	// Input is the image file name.
	Input string `yaml:"-"`
}

// Default returns the settings used when nothing is configured.
func Default() *Config {
	return &Config{
		Backend: BackendWindow,
		Title:   "Image Viewer",
		Input:   DefaultFile,
	}
}

func (c *Config) register(fs *flag.FlagSet) {
	fs.StringVar(&c.Backend, "backend", c.Backend, "display `backend`: window or terminal")
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.BoolVar(&c.Strict, "strict", c.Strict, "reject malformed files instead of reading them leniently")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "do not echo the header lines")
	fs.BoolVar(&c.PerPixel, "per-pixel", c.PerPixel, "draw one pixel at a time instead of copying the whole frame")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "trace the viewer state on standard error")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "read settings from the YAML `file`")
	fs.StringVar(&c.CPUProfile, "cpuprofile", c.CPUProfile, "write cpu profile to `file`")
	fs.StringVar(&c.MemProfile, "memprofile", c.MemProfile, "write memory profile to `file`")
	fs.BoolVar(&c.ShowVersion, "version", c.ShowVersion, "print version information and exit")
}

// Parse reads the settings from the command line arguments args, which
// should not include the program name.  The flags are registered on fs.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Default()
	c.register(fs)
	err := fs.Parse(args)
	if err != nil {
		return nil, err
	}

	if c.ConfigFile != "" {
		err = c.load(c.ConfigFile)
		if err != nil {
			return nil, err
		}
		// apply the command line again, so that flags override the file
		err = fs.Parse(args)
		if err != nil {
			return nil, err
		}
	}

	switch fs.NArg() {
	case 0:
		// keep the default
	case 1:
		c.Input = fs.Arg(0)
	default:
		return nil, errors.New("too many arguments")
	}

	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) load(fname string) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	err = yaml.UnmarshalStrict(data, c)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return nil
}

// Validate checks the settings for consistency.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendWindow, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.Input == "" {
		return errors.New("no input file given")
	}
	return nil
}
