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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes - and
// sub-modes - along with the flags associated with each mode.
//
// A program mode can be thought of as a command line argument that changes
// what the program does. For example:
//
//	glfbo capabilities
//
// In this instance, the argument "capabilities" indicates that the program
// should run in capabilities mode. Modes can have flags of their own, which
// are only valid for that mode.
//
// The basic pattern of usage is to initialise the Modes struct with the
// command line arguments, define the available sub-modes and flags, and then
// parse:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("CAPABILITIES", "SMOKE", "PERFORMANCE", "VERSION")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		os.Exit(0)
//	case modalflag.ParseError:
//		fmt.Println(err)
//		os.Exit(10)
//	}
//
//	switch md.Mode() {
//		...
//	}
//
// The first sub-mode given to AddSubModes() is the default mode, selected
// when no mode is given on the command line. Once a mode has been selected,
// the NewMode() function starts a new flag set for the flags belonging to
// that mode and the process repeats.
package modalflag
