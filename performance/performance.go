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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/glfbo/fbo"
	"github.com/jetsetilly/glfbo/texture"
)

// checking the timer channel on every workload iteration is relatively
// expensive so only check every performanceBrake iterations.
const performanceBrake = 64

// Check the performance of the attach/detach path using the supplied
// context and texture.
//
// The workload runs for the specified duration (parsed with
// time.ParseDuration) and will create a cpu and memory profile if the
// profile argument is true. The achieved rate is written to output.
func Check(output io.Writer, ctx fbo.Context, tex texture.Array, profile bool, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return fmt.Errorf("performance: %v", err)
	}

	f, err := fbo.NewFBO(ctx)
	if err != nil {
		return fmt.Errorf("performance: %v", err)
	}
	defer f.Destroy()

	var ops int

	err = cpuProfile(profile, "cpu.profile", func() error {
		// setup trigger that expires when duration has elapsed
		timesUp := make(chan bool)
		time.AfterFunc(dur, func() {
			timesUp <- true
		})

		// the whole workload runs under one bind
		return f.Process(fbo.Draw, func() error {
			brake := 0
			for {
				brake++
				if brake >= performanceBrake {
					brake = 0
					select {
					case <-timesUp:
						return nil
					default:
					}
				}

				err := f.AttachBound(tex, fbo.Color(0), fbo.Draw)
				if err != nil {
					return err
				}

				err = fbo.Detach(ctx, fbo.Color(0))
				if err != nil {
					return err
				}

				ops++
			}
		})
	})
	if err != nil {
		return fmt.Errorf("performance: %v", err)
	}

	rate := float64(ops) / dur.Seconds()
	output.Write([]byte(fmt.Sprintf("%.0f attach/detach pairs per second (%d in %.2f seconds)\n", rate, ops, dur.Seconds())))

	err = memProfile(profile, "mem.profile")
	if err != nil {
		return fmt.Errorf("performance: %v", err)
	}

	return nil
}
