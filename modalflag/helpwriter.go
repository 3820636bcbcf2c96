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

package modalflag

import (
	"fmt"
	"io"
	"strings"
)

// helpWriter catches the output of the flag package so that it can be
// combined with the sub-mode list and written out as one help message.
type helpWriter struct {
	buffer []byte
}

func (hw *helpWriter) Write(p []byte) (n int, err error) {
	hw.buffer = append(hw.buffer, p...)
	return len(p), nil
}

// help writes the complete help message to output. a nil output is allowed
// and means the message is not seen.
func (hw *helpWriter) help(output io.Writer, path string, subModes []string) {
	if output == nil {
		return
	}

	if path != "" {
		io.WriteString(output, fmt.Sprintf("mode: %s\n", path))
	}

	if len(hw.buffer) > 0 {
		io.WriteString(output, "usage:\n")
		output.Write(hw.buffer)
	} else {
		io.WriteString(output, "no help available\n")
	}

	if len(subModes) > 0 {
		io.WriteString(output, fmt.Sprintf("sub-modes: %s\n", strings.Join(subModes, ", ")))
		io.WriteString(output, fmt.Sprintf("default: %s\n", subModes[0]))
	}
}
