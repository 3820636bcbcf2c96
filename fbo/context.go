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

package fbo

// Target is the pipeline target a framebuffer object is bound to. The
// Combined target binds for both reading and drawing.
type Target int

// List of valid Target values.
const (
	Combined Target = iota
	Read
	Draw
)

func (t Target) String() string {
	switch t {
	case Combined:
		return "combined"
	case Read:
		return "read"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// TexTarget is the texture target named in a 2D attachment call. For cube
// map textures the target selects the face, so there is one TexTarget per
// face rather than a single cube map value.
type TexTarget int

// List of valid TexTarget values. The cube face values are in the face order
// of the graphics API (+X, -X, +Y, -Y, +Z, -Z) and must stay contiguous.
const (
	Target2D TexTarget = iota
	TargetRectangle
	TargetCubePositiveX
	TargetCubeNegativeX
	TargetCubePositiveY
	TargetCubeNegativeY
	TargetCubePositiveZ
	TargetCubeNegativeZ
)

func (t TexTarget) String() string {
	switch t {
	case Target2D:
		return "2D"
	case TargetRectangle:
		return "rectangle"
	case TargetCubePositiveX:
		return "cube +X"
	case TargetCubeNegativeX:
		return "cube -X"
	case TargetCubePositiveY:
		return "cube +Y"
	case TargetCubeNegativeY:
		return "cube -Y"
	case TargetCubePositiveZ:
		return "cube +Z"
	case TargetCubeNegativeZ:
		return "cube -Z"
	}
	return "unknown"
}

// Context is the surface of the graphics API consumed by this package. The
// backend/opengl package implements the interface over a live OpenGL
// context. Tests implement it with a recording stub.
//
// The methods mirror the framebuffer entry points of the graphics API. A
// zero texture handle given to any of the attachment functions clears the
// attachment point.
type Context interface {
	// GenFramebuffers allocates n fresh framebuffer handles.
	GenFramebuffers(n int32) []uint32

	// DeleteFramebuffers releases the given handles. Using a handle after
	// deletion is undefined behaviour as far as this interface is concerned.
	DeleteFramebuffers(ids []uint32)

	// BindFramebuffer binds the handle to the target. Handle 0 restores
	// the default framebuffer for the target.
	BindFramebuffer(target Target, id uint32) error

	// FramebufferTexture1D attaches a mipmap level of a 1D texture.
	FramebufferTexture1D(target Target, att Attachment, tex uint32, level int32) error

	// FramebufferTexture2D attaches a mipmap level of a 2D, rectangle or
	// cube map face image. The textarget argument selects between them.
	FramebufferTexture2D(target Target, att Attachment, textarget TexTarget, tex uint32, level int32) error

	// FramebufferTexture3D attaches one Z slice of a mipmap level of a 3D
	// texture.
	FramebufferTexture3D(target Target, att Attachment, tex uint32, level int32, layer int32) error

	// FramebufferTextureLayer attaches one layer of a mipmap level of a
	// layered texture.
	FramebufferTextureLayer(target Target, att Attachment, tex uint32, level int32, layer int32) error
}
