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

// Package logger is the central log for the application. There is only one
// log and it can be accessed from anywhere via the package level functions.
//
// Entries are made up of a tag and a detail string. The tag groups entries
// from the same part of the application. Consecutive identical entries are
// folded into one entry with a repeat count.
//
// The central log keeps a maximum number of entries. When the maximum is
// exceeded the oldest entries are discarded.
package logger

import (
	"io"
	"sync"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central *logger

// maximum number of entries in the central logger.
const maxCentral = 256

// the central logger can be used from more than one goroutine (the statsview
// launcher for example) so access is mutex protected.
var crit sync.Mutex

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger.
func Log(tag, detail string) {
	crit.Lock()
	defer crit.Unlock()
	central.log(tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(tag, detail string, args ...interface{}) {
	crit.Lock()
	defer crit.Unlock()
	central.logf(tag, detail, args...)
}

// Clear all entries from the central logger.
func Clear() {
	crit.Lock()
	defer crit.Unlock()
	central.clear()
}

// Write contents of central logger to io.Writer.
func Write(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.write(output)
}

// WriteRecent writes only the entries added since the last call to
// WriteRecent.
func WriteRecent(output io.Writer) {
	crit.Lock()
	defer crit.Unlock()
	central.writeRecent(output)
}

// Tail writes the last N entries to io.Writer.
func Tail(output io.Writer, number int) {
	crit.Lock()
	defer crit.Unlock()
	central.tail(output, number)
}

// SetEcho to echo new entries to io.Writer as they arrive. A nil io.Writer
// turns the echo off. If writeRecent is true then entries not yet seen by
// WriteRecent() are written out immediately.
func SetEcho(output io.Writer, writeRecent bool) {
	crit.Lock()
	defer crit.Unlock()
	central.setEcho(output, writeRecent)
}
