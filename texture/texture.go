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

// Kind describes the dimensionality of a texture.
type Kind int

// List of valid Kind values.
const (
	Texture1D Kind = iota
	Texture2D
	Texture3D
	Texture1DArray
	Texture2DArray
	TextureRectangle
	TextureCubeMap
	TextureBuffer
	TextureCubeMapArray
)

func (k Kind) String() string {
	switch k {
	case Texture1D:
		return "1D"
	case Texture2D:
		return "2D"
	case Texture3D:
		return "3D"
	case Texture1DArray:
		return "1D array"
	case Texture2DArray:
		return "2D array"
	case TextureRectangle:
		return "rectangle"
	case TextureCubeMap:
		return "cube map"
	case TextureBuffer:
		return "buffer"
	case TextureCubeMapArray:
		return "cube map array"
	}
	return "unknown"
}

// Face identifies one of the six 2D images of a cube map. The order of the
// faces follows the convention of the graphics API: +X, -X, +Y, -Y, +Z, -Z.
type Face int

// List of valid Face values.
const (
	FacePositiveX Face = iota
	FaceNegativeX
	FacePositiveY
	FaceNegativeY
	FacePositiveZ
	FaceNegativeZ
)

// NumFaces is the number of faces in a cube map.
const NumFaces = 6

func (f Face) String() string {
	switch f {
	case FacePositiveX:
		return "+X"
	case FaceNegativeX:
		return "-X"
	case FacePositiveY:
		return "+Y"
	case FaceNegativeY:
		return "-Y"
	case FacePositiveZ:
		return "+Z"
	case FaceNegativeZ:
		return "-Z"
	}
	return "unknown"
}

// Array is a read-only description of one image selection inside an existing
// texture. The ID field is the handle of the texture as allocated by the
// graphics context.
//
// The Level field selects the mipmap level. The Layer field selects the Z
// slice of a Texture3D or the array index of the array kinds. The Face field
// selects the cube map face of the cube map kinds. Fields that are not
// meaningful for the Kind are ignored.
type Array struct {
	ID     uint32
	Kind   Kind
	Format Format
	Level  int32
	Layer  int32
	Face   Face
}
