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

// Package opengl implements the fbo.Context interface over a live OpenGL
// context. The OpenGL context must have been created and made current on the
// calling thread before any function in this package is used. The platform
// package takes care of that.
//
// OpenGL reports errors through a flag that must be polled. Every function
// in this package that can fail polls the flag after the underlying call and
// converts a raised flag into a Go error.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/glfbo/fbo"
)

// Backend is an implementation of the fbo.Context interface. The zero value
// is ready to use once the OpenGL context is current.
type Backend struct{}

var _ fbo.Context = (*Backend)(nil)

// NewBackend is the preferred method of initialisation of the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

// glError polls the OpenGL error flag, converting a raised flag into a Go
// error. OpenGL queues errors so keep polling until the flag is clear.
func glError(op string) error {
	var err error
	for e := gl.GetError(); e != gl.NO_ERROR; e = gl.GetError() {
		err = fmt.Errorf("%s: gl error %#04x", op, e)
	}
	return err
}

func glTarget(target fbo.Target) uint32 {
	switch target {
	case fbo.Read:
		return gl.READ_FRAMEBUFFER
	case fbo.Draw:
		return gl.DRAW_FRAMEBUFFER
	}
	return gl.FRAMEBUFFER
}

func glAttachment(att fbo.Attachment) uint32 {
	if att.IsColor() {
		return gl.COLOR_ATTACHMENT0 + uint32(att)
	}
	switch att {
	case fbo.Depth:
		return gl.DEPTH_ATTACHMENT
	case fbo.Stencil:
		return gl.STENCIL_ATTACHMENT
	}
	return gl.DEPTH_STENCIL_ATTACHMENT
}

// relies on the cube face values of the TexTarget enumeration being
// contiguous and in the +X,-X,+Y,-Y,+Z,-Z order of the OpenGL enumerants.
func glTexTarget(textarget fbo.TexTarget) uint32 {
	switch textarget {
	case fbo.Target2D:
		return gl.TEXTURE_2D
	case fbo.TargetRectangle:
		return gl.TEXTURE_RECTANGLE
	}
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + uint32(textarget-fbo.TargetCubePositiveX)
}

// GenFramebuffers implements the fbo.Context interface.
func (b *Backend) GenFramebuffers(n int32) []uint32 {
	ids := make([]uint32, n)
	gl.GenFramebuffers(n, &ids[0])
	return ids
}

// DeleteFramebuffers implements the fbo.Context interface.
func (b *Backend) DeleteFramebuffers(ids []uint32) {
	if len(ids) == 0 {
		return
	}
	gl.DeleteFramebuffers(int32(len(ids)), &ids[0])
}

// BindFramebuffer implements the fbo.Context interface.
func (b *Backend) BindFramebuffer(target fbo.Target, id uint32) error {
	gl.BindFramebuffer(glTarget(target), id)
	return glError("bind framebuffer")
}

// FramebufferTexture1D implements the fbo.Context interface.
func (b *Backend) FramebufferTexture1D(target fbo.Target, att fbo.Attachment, tex uint32, level int32) error {
	gl.FramebufferTexture1D(glTarget(target), glAttachment(att), gl.TEXTURE_1D, tex, level)
	return glError("framebuffer texture 1D")
}

// FramebufferTexture2D implements the fbo.Context interface.
func (b *Backend) FramebufferTexture2D(target fbo.Target, att fbo.Attachment, textarget fbo.TexTarget, tex uint32, level int32) error {
	gl.FramebufferTexture2D(glTarget(target), glAttachment(att), glTexTarget(textarget), tex, level)
	return glError("framebuffer texture 2D")
}

// FramebufferTexture3D implements the fbo.Context interface.
func (b *Backend) FramebufferTexture3D(target fbo.Target, att fbo.Attachment, tex uint32, level int32, layer int32) error {
	gl.FramebufferTexture3D(glTarget(target), glAttachment(att), gl.TEXTURE_3D, tex, level, layer)
	return glError("framebuffer texture 3D")
}

// FramebufferTextureLayer implements the fbo.Context interface.
func (b *Backend) FramebufferTextureLayer(target fbo.Target, att fbo.Attachment, tex uint32, level int32, layer int32) error {
	gl.FramebufferTextureLayer(glTarget(target), glAttachment(att), tex, level, layer)
	return glError("framebuffer texture layer")
}

// MaxColorAttachments returns the number of color attachment points
// supported by the OpenGL implementation. At least one is guaranteed.
func (b *Backend) MaxColorAttachments() int {
	var v int32
	gl.GetIntegerv(gl.MAX_COLOR_ATTACHMENTS, &v)
	if v < 1 {
		v = 1
	}
	return int(v)
}

// CheckStatus decodes the completeness status of the framebuffer currently
// bound to the target. A complete framebuffer returns nil.
func (b *Backend) CheckStatus(target fbo.Target) error {
	switch status := gl.CheckFramebufferStatus(glTarget(target)); status {
	case gl.FRAMEBUFFER_COMPLETE:
		return nil
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return fmt.Errorf("an attachment is framebuffer incomplete")
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return fmt.Errorf("the framebuffer has no attachments")
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return fmt.Errorf("the object type of a draw attachment is none")
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return fmt.Errorf("the object type of the read attachment is none")
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return fmt.Errorf("the combination of attachment formats is not supported")
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return fmt.Errorf("the attachments have different sampling")
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return fmt.Errorf("the attachments are an incomplete mix of layered and unlayered images")
	default:
		return fmt.Errorf("unknown framebuffer status %#04x", status)
	}
}
