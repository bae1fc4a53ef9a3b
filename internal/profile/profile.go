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

// Package profile writes CPU and memory profiles for the ppmview command.
package profile

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
)

// Profile is a running profiling session.
type Profile struct {
	cpu     *os.File
	memFile string
}

// Start begins CPU profiling, if cpuFile is non-empty.  If memFile is
// non-empty, a memory profile is written to this file by [Profile.Stop].
func Start(cpuFile, memFile string) (*Profile, error) {
	p := &Profile{memFile: memFile}
	if cpuFile == "" {
		return p, nil
	}

	f, err := os.Create(cpuFile)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	err = pprof.StartCPUProfile(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	p.cpu = f
	return p, nil
}

// Stop ends CPU profiling and writes the memory profile.
func (p *Profile) Stop() error {
	var errs []error
	if p.cpu != nil {
		pprof.StopCPUProfile()
		errs = append(errs, p.cpu.Close())
		p.cpu = nil
	}
	if p.memFile != "" {
		errs = append(errs, writeHeap(p.memFile))
		p.memFile = ""
	}
	return errors.Join(errs...)
}

func writeHeap(fname string) error {
	f, err := os.Create(fname)
	if err != nil {
		return fmt.Errorf("could not create memory profile: %w", err)
	}
	runtime.GC()
	err = pprof.Lookup("allocs").WriteTo(f, 0)
	if err != nil {
		f.Close()
		return fmt.Errorf("could not write memory profile: %w", err)
	}
	return f.Close()
}
