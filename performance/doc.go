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

// Package performance contains the attach/detach workload used by the
// PERFORMANCE mode of the glfbo tool. The Check() function runs the workload
// against a live graphics context for a specified duration and reports the
// achieved rate.
//
// Profiling of the workload with the runtime/pprof package can be requested
// with the profile argument to Check(). The profiles are written to the
// current directory and can be examined with "go tool pprof".
package performance
