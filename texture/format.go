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

package texture

// Format describes the pixel format of a texture.
type Format int

// List of valid Format values.
const (
	R8 Format = iota
	RG8
	RGB8
	RGBA8
	SRGBA8
	R32I
	RGBA16F
	Depth16
	Depth24
	Depth32F
	Stencil8
	Depth24Stencil8
	Depth32FStencil8
)

func (f Format) String() string {
	switch f {
	case R8:
		return "R8"
	case RG8:
		return "RG8"
	case RGB8:
		return "RGB8"
	case RGBA8:
		return "RGBA8"
	case SRGBA8:
		return "SRGBA8"
	case R32I:
		return "R32I"
	case RGBA16F:
		return "RGBA16F"
	case Depth16:
		return "DEPTH16"
	case Depth24:
		return "DEPTH24"
	case Depth32F:
		return "DEPTH32F"
	case Stencil8:
		return "STENCIL8"
	case Depth24Stencil8:
		return "DEPTH24_STENCIL8"
	case Depth32FStencil8:
		return "DEPTH32F_STENCIL8"
	}
	return "unknown"
}

// IsColorRenderable returns true if the format can be attached at a color
// attachment point.
func (f Format) IsColorRenderable() bool {
	switch f {
	case R8, RG8, RGB8, RGBA8, SRGBA8, R32I, RGBA16F:
		return true
	}
	return false
}

// IsDepth returns true if the format carries a depth component. Note that
// this includes the combined depth+stencil formats.
func (f Format) IsDepth() bool {
	switch f {
	case Depth16, Depth24, Depth32F, Depth24Stencil8, Depth32FStencil8:
		return true
	}
	return false
}

// IsStencil returns true if the format carries a stencil component. Note
// that this includes the combined depth+stencil formats.
func (f Format) IsStencil() bool {
	switch f {
	case Stencil8, Depth24Stencil8, Depth32FStencil8:
		return true
	}
	return false
}

// IsDepthStencil returns true only for the combined depth+stencil formats.
func (f Format) IsDepthStencil() bool {
	switch f {
	case Depth24Stencil8, Depth32FStencil8:
		return true
	}
	return false
}
