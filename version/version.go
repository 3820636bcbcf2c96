// This file is part of GLFBO.
//
// GLFBO is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GLFBO is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GLFBO.  If not, see <https://www.gnu.org/licenses/>.

// Package version records the version information of the build.
package version

import (
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GLFBO"

// number is empty unless the project was built with the makefile, which
// stamps the release number in with the linker.
var number string

// Revision contains the vcs revision. If the source had been modified but
// not committed at build time then the revision is suffixed with "+dirty".
var revision string

// Version returns the version string, the revision string and whether this
// is a numbered release version. If release is true then the revision
// information should be used sparingly.
func Version() (string, string, bool) {
	if number != "" {
		return number, revision, true
	}
	return "unreleased", revision, false
}

func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		revision = "no vcs information"
		return
	}

	var vcsRevision string
	var vcsModified bool

	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			vcsRevision = v.Value
		case "vcs.modified":
			vcsModified = v.Value == "true"
		}
	}

	if vcsRevision == "" {
		revision = "no vcs information"
		return
	}

	revision = vcsRevision
	if vcsModified {
		revision += "+dirty"
	}
}
