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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Log("test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test writer and set up a tail of one entry
	tw.Clear()
	logger.Logf("test", "this is a %s", "formatted test")
	logger.Tail(tw, 1)
	test.ExpectedSuccess(t, tw.Compare("test: this is a formatted test\n"))
}

func TestRepeats(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	// identical consecutive entries are folded into one
	logger.Log("test", "this happens twice")
	logger.Log("test", "this happens twice")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this happens twice (repeat x2)\n"))
}

func TestWriteRecent(t *testing.T) {
	logger.Clear()

	tw := &test.Writer{}

	logger.Log("test", "this is a test")
	logger.WriteRecent(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// the entry has been seen so a second call writes nothing
	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectedSuccess(t, tw.Compare(""))
}
