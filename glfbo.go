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

package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/backend/opengl"
	"github.com/jetsetilly/glfbo/fbo"
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/modalflag"
	"github.com/jetsetilly/glfbo/performance"
	"github.com/jetsetilly/glfbo/platform"
	"github.com/jetsetilly/glfbo/statsview"
	"github.com/jetsetilly/glfbo/texture"
	"github.com/jetsetilly/glfbo/version"
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("CAPABILITIES", "SMOKE", "PERFORMANCE", "VERSION")

	echoLog := md.AddBool("log", false, "echo log entries to stderr as they arrive")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(10)
	}

	if *echoLog {
		logger.SetEcho(os.Stderr, true)
	}

	switch md.Mode() {
	case "VERSION":
		vrs, rev, release := version.Version()
		fmt.Printf("%s %s\n", version.ApplicationName, vrs)
		if !release {
			fmt.Printf("revision: %s\n", rev)
		}

	case "CAPABILITIES":
		err = capabilities(md)

	case "SMOKE":
		err = smoke(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		logger.Tail(os.Stderr, 10)
		os.Exit(10)
	}
}

// capabilities reports what the OpenGL implementation offers the fbo
// package.
func capabilities(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	plt, err := platform.New()
	if err != nil {
		return err
	}
	defer plt.Destroy()

	be := opengl.NewBackend()

	renderer, driver := plt.Renderer()
	fmt.Printf("renderer: %s\n", renderer)
	fmt.Printf("driver: %s\n", driver)
	fmt.Printf("color attachments: %d\n", be.MaxColorAttachments())

	return nil
}

// smoke builds a real framebuffer object, attaches a color and a depth
// image, checks completeness and takes it all apart again.
func smoke(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	plt, err := platform.New()
	if err != nil {
		return err
	}
	defer plt.Destroy()

	be := opengl.NewBackend()

	color := makeTexture2D(texture.RGBA8, 64, 64)
	defer deleteTexture(color)
	depth := makeTexture2D(texture.Depth24, 64, 64)
	defer deleteTexture(depth)

	f, err := fbo.NewFBO(be)
	if err != nil {
		return err
	}
	defer f.Destroy()

	err = f.Process(fbo.Draw, func() error {
		err := f.AttachBound(color, fbo.Color(0), fbo.Draw)
		if err != nil {
			return err
		}

		err = f.AttachBound(depth, fbo.Depth, fbo.Draw)
		if err != nil {
			return err
		}

		err = be.CheckStatus(fbo.Draw)
		if err != nil {
			return err
		}

		err = fbo.Detach(be, fbo.Depth)
		if err != nil {
			return err
		}

		return fbo.Detach(be, fbo.Color(0))
	})
	if err != nil {
		return err
	}

	fmt.Println("smoke test ok")

	return nil
}

// perform runs the attach/detach workload for a period of time.
func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "write cpu and memory profiles")
	stats := md.AddBool("statsview", false, "run a statsview server during the workload")
	duration := md.AddString("duration", "5s", "duration of the workload")

	p, err := md.Parse()
	if p != modalflag.ParseContinue {
		return err
	}

	plt, err := platform.New()
	if err != nil {
		return err
	}
	defer plt.Destroy()

	be := opengl.NewBackend()

	tex := makeTexture2D(texture.RGBA8, 64, 64)
	defer deleteTexture(tex)

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* statsview not available in this build (rebuild with the statsview build tag)")
		}
	}

	return performance.Check(os.Stdout, be, tex, *profile, *duration)
}

// makeTexture2D creates a small 2D texture for the probe modes to attach.
// Texture management is not this project's business so only what the probe
// needs is supported.
func makeTexture2D(format texture.Format, width int32, height int32) texture.Array {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	switch format {
	case texture.Depth24:
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.DEPTH_COMPONENT24, width, height, 0,
			gl.DEPTH_COMPONENT, gl.UNSIGNED_INT, nil)
	default:
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, width, height, 0,
			gl.RGBA, gl.UNSIGNED_BYTE, nil)
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)

	return texture.Array{ID: id, Kind: texture.Texture2D, Format: format}
}

func deleteTexture(tex texture.Array) {
	gl.DeleteTextures(1, &tex.ID)
}
