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

// Package fbo provides a convenient way of working with framebuffer objects.
// A framebuffer object is an off-screen rendering target made up of
// attachment points, each of which can hold one image selected from a
// texture.
//
// FBO instances are created with the NewFBO() function (or Create() for a
// batch of instances) and must be destroyed with the Destroy() function when
// no longer required:
//
//	f, err := fbo.NewFBO(ctx)
//	if err != nil {
//		...
//	}
//	defer f.Destroy()
//
// The ctx argument is an implementation of the Context interface. The
// backend/opengl package provides the real implementation over an OpenGL
// context.
//
// The Attach() function attaches one image from a texture to an attachment
// point. The image is selected by the fields of the texture.Array argument
// and the correct underlying attachment call is chosen according to the
// texture's dimensionality:
//
//	err := f.Attach(tex, fbo.Color(0), fbo.Draw)
//
// Attach() binds the FBO to the named target for the duration of the call
// and restores the default framebuffer before returning, whether the attach
// succeeded or not. When making several attachments it is wasteful to
// bind/unbind for each one. The Process() function brackets an entire
// operation with a single bind:
//
//	err := f.Process(fbo.Draw, func() error {
//		if err := f.AttachBound(color, fbo.Color(0), fbo.Draw); err != nil {
//			return err
//		}
//		return f.AttachBound(depth, fbo.Depth, fbo.Draw)
//	})
//
// The bind is released on every exit path of Process(), including early
// returns caused by an error in the enclosed function.
//
// Attachment points accept a limited class of pixel format: a color
// attachment requires a color-renderable format, the depth attachment a
// depth format, and so on. Attach() checks the texture's format before
// making any call into the graphics context and returns an error matching
// the IncompatibleFormat pattern if the format is not acceptable.
//
// All errors raised by this package are curated errors. The patterns are
// exported by this package: InvalidArgument, IncompatibleFormat,
// AttachmentFailed and NotImplemented.
//
// The package performs no locking. Like the graphics API underneath it, it
// expects to be used from a single thread with respect to the graphics
// context.
package fbo
