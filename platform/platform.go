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

// Package platform creates the SDL window and the OpenGL context that the
// glfbo tool works against. The window is never shown - the tool only needs
// the context that comes with it.
//
// SDL requires that window and context handling happens on the main thread
// so New() locks the calling goroutine to its thread. Call New() from the
// main goroutine and keep all OpenGL work on it.
package platform

import (
	"fmt"
	"runtime"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is an SDL window with a current OpenGL 3.2 core context.
type Platform struct {
	window    *sdl.Window
	glContext sdl.GLContext
}

// New is the preferred method of initialisation for the Platform type.
func New() (*Platform, error) {
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("platform: %v", err)
	}

	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	_ = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	_ = sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	_ = sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	window, err := sdl.CreateWindow("glfbo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED, 640, 480,
		sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("platform: %v", err)
	}

	plt := &Platform{
		window: window,
	}

	plt.glContext, err = window.GLCreateContext()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("platform: %v", err)
	}

	err = window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("platform: %v", err)
	}

	err = gl.Init()
	if err != nil {
		plt.Destroy()
		return nil, fmt.Errorf("platform: %v", err)
	}

	logger.Logf("platform", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("platform", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("platform", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	return plt, nil
}

// Renderer returns the renderer and driver version strings of the OpenGL
// implementation.
func (plt *Platform) Renderer() (string, string) {
	return gl.GoStr(gl.GetString(gl.RENDERER)), gl.GoStr(gl.GetString(gl.VERSION))
}

// Destroy cleans up the window and the OpenGL context.
func (plt *Platform) Destroy() {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}
	if plt.window != nil {
		_ = plt.window.Destroy()
		plt.window = nil
	}
	sdl.Quit()
}
