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

import (
	"fmt"

	"github.com/jetsetilly/glfbo/curated"
	"github.com/jetsetilly/glfbo/texture"
)

// MaxColorAttachments is the number of color attachment points supported by
// this package. The graphics implementation may support fewer. The
// implementation bound can be queried through the backend/opengl package.
const MaxColorAttachments = 8

// Attachment is a named slot on a framebuffer object that can hold one
// image. Values below MaxColorAttachments are color attachments and are
// created with the Color() function.
type Attachment int

// The non-color attachment points.
const (
	Depth Attachment = MaxColorAttachments + iota
	Stencil
	DepthStencil
)

// Color returns the attachment point for color attachment n. The value is
// not validated here. An out of range value will cause an attach to fail
// with the InvalidArgument pattern.
func Color(n int) Attachment {
	return Attachment(n)
}

// IsColor returns true if the attachment is one of the color attachment
// points.
func (a Attachment) IsColor() bool {
	return a >= 0 && a < MaxColorAttachments
}

func (a Attachment) valid() bool {
	return a >= 0 && a <= DepthStencil
}

func (a Attachment) String() string {
	if a.IsColor() {
		return fmt.Sprintf("color %d", int(a))
	}
	switch a {
	case Depth:
		return "depth"
	case Stencil:
		return "stencil"
	case DepthStencil:
		return "depth+stencil"
	}
	return "unknown"
}

// checkFormat decides whether the attachment point accepts the texture's
// pixel format.
func checkFormat(att Attachment, f texture.Format) error {
	var ok bool

	switch {
	case att.IsColor():
		ok = f.IsColorRenderable()
	case att == Depth:
		ok = f.IsDepth()
	case att == Stencil:
		ok = f.IsStencil()
	case att == DepthStencil:
		ok = f.IsDepthStencil()
	}

	if !ok {
		return curated.Errorf(IncompatibleFormat, fmt.Sprintf("%s at %s attachment", f, att))
	}

	return nil
}

// the texture target for a cube map face. relies on the face values of both
// enumerations being contiguous and in the same order.
func cubeFaceTarget(f texture.Face) TexTarget {
	return TargetCubePositiveX + TexTarget(f)
}

// the layer index of a face in a cube map array.
func combinedLayer(layer int32, face texture.Face) int32 {
	return layer*texture.NumFaces + int32(face)
}

// Attach one image from the texture to the attachment point. The FBO is
// bound to the named target for the duration of the call and the default
// framebuffer is restored before returning, whether the attach succeeded or
// not. The Draw target is the usual choice.
//
// The image is selected according to the texture's dimensionality: the
// mipmap level always participates (except for the rectangle kind, which has
// no mip chain); 3D and array textures add the layer; cube maps add the
// face.
func (f *FBO) Attach(tex texture.Array, att Attachment, target Target) error {
	return f.Process(target, func() error {
		return f.AttachBound(tex, att, target)
	})
}

// AttachBound is the same as Attach() except that no binding or unbinding
// takes place. The caller is responsible for making sure the FBO is bound to
// the named target, most likely with the Process() function.
func (f *FBO) AttachBound(tex texture.Array, att Attachment, target Target) error {
	if !att.valid() {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("no such attachment point (%d)", int(att)))
	}

	err := checkFormat(att, tex.Format)
	if err != nil {
		return err
	}

	switch tex.Kind {
	case texture.TextureCubeMap, texture.TextureCubeMapArray:
		if tex.Face < texture.FacePositiveX || tex.Face > texture.FaceNegativeZ {
			return curated.Errorf(InvalidArgument, fmt.Sprintf("no such cube map face (%d)", int(tex.Face)))
		}
	}

	switch tex.Kind {
	case texture.Texture1D:
		err = f.ctx.FramebufferTexture1D(target, att, tex.ID, tex.Level)

	case texture.Texture2D:
		err = f.ctx.FramebufferTexture2D(target, att, Target2D, tex.ID, tex.Level)

	case texture.Texture3D:
		err = f.ctx.FramebufferTexture3D(target, att, tex.ID, tex.Level, tex.Layer)

	case texture.Texture1DArray, texture.Texture2DArray:
		// the array index is promoted to the layer argument
		err = f.ctx.FramebufferTextureLayer(target, att, tex.ID, tex.Level, tex.Layer)

	case texture.TextureRectangle:
		// rectangle textures have no mip chain. level is forced to zero
		err = f.ctx.FramebufferTexture2D(target, att, TargetRectangle, tex.ID, 0)

	case texture.TextureCubeMap:
		err = f.ctx.FramebufferTexture2D(target, att, cubeFaceTarget(tex.Face), tex.ID, tex.Level)

	case texture.TextureCubeMapArray:
		err = f.ctx.FramebufferTextureLayer(target, att, tex.ID, tex.Level, combinedLayer(tex.Layer, tex.Face))

	case texture.TextureBuffer:
		return curated.Errorf(NotImplemented, "buffer textures cannot be attached to a framebuffer")

	default:
		return curated.Errorf(InvalidArgument, fmt.Sprintf("no such texture kind (%d)", int(tex.Kind)))
	}

	if err != nil {
		return curated.Errorf(AttachmentFailed, err)
	}

	return nil
}

// Detach clears the attachment point on the currently bound draw target by
// attaching the zero handle at level 0, layer 0. It does not matter what
// kind of image was previously attached there.
func Detach(ctx Context, att Attachment) error {
	if !att.valid() {
		return curated.Errorf(InvalidArgument, fmt.Sprintf("no such attachment point (%d)", int(att)))
	}

	err := ctx.FramebufferTextureLayer(Draw, att, 0, 0, 0)
	if err != nil {
		return curated.Errorf(AttachmentFailed, err)
	}

	return nil
}
