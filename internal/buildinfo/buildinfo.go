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

// Package buildinfo describes the running binary.
package buildinfo

import (
	"runtime/debug"
)

// Short returns a one-line version string for a command, for example
// "ppmview (seehuhn.de/go/ppm v0.2.0)".  Development builds show the VCS
// revision instead of the version.
func Short(command string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return command
	}
	v := version(info)
	if v == "" {
		return command
	}
	return command + " (" + info.Main.Path + " " + v + ")"
}

func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}
	return revision(info.Settings)
}

// revision returns an abbreviated VCS revision, marked "+dirty" if the
// working tree had local modifications.
func revision(settings []debug.BuildSetting) string {
	var rev string
	var modified bool
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if rev == "" {
		return ""
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if modified {
		rev += "+dirty"
	}
	return rev
}
