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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error.
//
// The pattern string doubles as the identity of the error. Packages that
// raise curated errors export their patterns as string constants and callers
// test for them with the Is() function:
//
//	if curated.Is(err, fbo.IncompatibleFormat) {
//		...
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, which is useful when an error has been wrapped by a later
// call to Errorf().
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Errors that are not curated are unexpected by definition and should
// probably be allowed to propagate to the very top of the application.
package curated
