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

// Package texture describes the texture images that can be attached to a
// framebuffer object. The package does not create or own any texture data -
// that is the business of whatever part of the application manages textures.
// The Array type is a description of an image selection inside an existing
// texture, sufficient for the fbo package to decide which attachment call to
// make.
//
// The Kind type enumerates texture dimensionality. Which fields of the Array
// type are meaningful depends on the Kind. For example, the Layer field is
// meaningful for Texture3D and the array kinds but not for Texture2D; the
// Face field is only meaningful for the cube map kinds.
//
// The Format type enumerates pixel formats and provides the classification
// predicates used when deciding whether a format is acceptable at an
// attachment point: IsColorRenderable(), IsDepth(), IsStencil() and
// IsDepthStencil(). Note that a combined depth+stencil format answers true
// to all of the last three.
package texture
