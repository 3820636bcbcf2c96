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

package fbo_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/glfbo/fbo"
	"github.com/jetsetilly/glfbo/test"
	"github.com/jetsetilly/glfbo/texture"
)

// a record of one attachment call made through the stub context.
type call struct {
	name      string
	target    fbo.Target
	att       fbo.Attachment
	textarget fbo.TexTarget
	tex       uint32
	level     int32
	layer     int32
}

// stub is an implementation of the fbo.Context interface that records every
// call made through it.
type stub struct {
	nextID  uint32
	deleted []uint32

	// the currently bound handle per target. zero is the default framebuffer
	bound map[fbo.Target]uint32

	// every bind in the order it was made
	bindHistory []uint32

	// every attachment call in the order it was made
	calls []call

	// when not nil this error is returned by every attachment function
	attachErr error
}

func newStub() *stub {
	return &stub{
		bound: make(map[fbo.Target]uint32),
	}
}

func (st *stub) lastCall(t *testing.T) call {
	t.Helper()
	if len(st.calls) == 0 {
		t.Fatal("no attachment calls have been made")
	}
	return st.calls[len(st.calls)-1]
}

func (st *stub) GenFramebuffers(n int32) []uint32 {
	ids := make([]uint32, n)
	for i := range ids {
		st.nextID++
		ids[i] = st.nextID
	}
	return ids
}

func (st *stub) DeleteFramebuffers(ids []uint32) {
	st.deleted = append(st.deleted, ids...)
}

func (st *stub) BindFramebuffer(target fbo.Target, id uint32) error {
	st.bound[target] = id
	st.bindHistory = append(st.bindHistory, id)
	return nil
}

func (st *stub) FramebufferTexture1D(target fbo.Target, att fbo.Attachment, tex uint32, level int32) error {
	st.calls = append(st.calls, call{name: "texture1D", target: target, att: att, tex: tex, level: level})
	return st.attachErr
}

func (st *stub) FramebufferTexture2D(target fbo.Target, att fbo.Attachment, textarget fbo.TexTarget, tex uint32, level int32) error {
	st.calls = append(st.calls, call{name: "texture2D", target: target, att: att, textarget: textarget, tex: tex, level: level})
	return st.attachErr
}

func (st *stub) FramebufferTexture3D(target fbo.Target, att fbo.Attachment, tex uint32, level int32, layer int32) error {
	st.calls = append(st.calls, call{name: "texture3D", target: target, att: att, tex: tex, level: level, layer: layer})
	return st.attachErr
}

func (st *stub) FramebufferTextureLayer(target fbo.Target, att fbo.Attachment, tex uint32, level int32, layer int32) error {
	st.calls = append(st.calls, call{name: "textureLayer", target: target, att: att, tex: tex, level: level, layer: layer})
	return st.attachErr
}

func TestCreate(t *testing.T) {
	st := newStub()

	// a non-positive count is an invalid argument
	_, err := fbo.Create(st, 0)
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)

	_, err = fbo.Create(st, -1)
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)

	// three fresh FBOs with three distinct handles
	fbos, err := fbo.Create(st, 3)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(fbos), 3)

	seen := make(map[uint32]bool)
	for _, f := range fbos {
		if seen[f.ID()] {
			t.Errorf("handle %d allocated twice", f.ID())
		}
		seen[f.ID()] = true
	}

	// destroying the batch releases every handle
	fbo.Destroy(fbos...)
	test.Equate(t, len(st.deleted), 3)
}

func TestDispatch(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	// 1D: level only
	err = f.Attach(texture.Array{ID: 10, Kind: texture.Texture1D, Format: texture.RGBA8, Level: 2}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c := st.lastCall(t)
	test.Equate(t, c.name, "texture1D")
	test.Equate(t, c.tex, 10)
	test.Equate(t, c.level, 2)

	// 2D: level only, 2D texture target
	err = f.Attach(texture.Array{ID: 11, Kind: texture.Texture2D, Format: texture.RGBA8, Level: 3}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c = st.lastCall(t)
	test.Equate(t, c.name, "texture2D")
	test.Equate(t, int(c.textarget), int(fbo.Target2D))
	test.Equate(t, c.level, 3)

	// 3D: level and Z slice
	err = f.Attach(texture.Array{ID: 12, Kind: texture.Texture3D, Format: texture.RGBA8, Level: 1, Layer: 7}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c = st.lastCall(t)
	test.Equate(t, c.name, "texture3D")
	test.Equate(t, c.level, 1)
	test.Equate(t, c.layer, 7)

	// the array kinds promote the array index to the layer argument
	err = f.Attach(texture.Array{ID: 13, Kind: texture.Texture1DArray, Format: texture.RGBA8, Level: 1, Layer: 4}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c = st.lastCall(t)
	test.Equate(t, c.name, "textureLayer")
	test.Equate(t, c.layer, 4)

	err = f.Attach(texture.Array{ID: 14, Kind: texture.Texture2DArray, Format: texture.RGBA8, Level: 2, Layer: 5}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c = st.lastCall(t)
	test.Equate(t, c.name, "textureLayer")
	test.Equate(t, c.level, 2)
	test.Equate(t, c.layer, 5)

	// rectangle: no mip chain. level is forced to zero
	err = f.Attach(texture.Array{ID: 15, Kind: texture.TextureRectangle, Format: texture.RGBA8, Level: 3}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	c = st.lastCall(t)
	test.Equate(t, c.name, "texture2D")
	test.Equate(t, int(c.textarget), int(fbo.TargetRectangle))
	test.Equate(t, c.level, 0)
}

func TestDispatchCubeMap(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	// a plain cube map uses a face-specific texture target, not a layer
	faces := []struct {
		face   texture.Face
		target fbo.TexTarget
	}{
		{texture.FacePositiveX, fbo.TargetCubePositiveX},
		{texture.FaceNegativeX, fbo.TargetCubeNegativeX},
		{texture.FacePositiveY, fbo.TargetCubePositiveY},
		{texture.FaceNegativeY, fbo.TargetCubeNegativeY},
		{texture.FacePositiveZ, fbo.TargetCubePositiveZ},
		{texture.FaceNegativeZ, fbo.TargetCubeNegativeZ},
	}

	for _, fc := range faces {
		err = f.Attach(texture.Array{ID: 20, Kind: texture.TextureCubeMap, Format: texture.RGBA8, Level: 1, Face: fc.face}, fbo.Color(0), fbo.Draw)
		test.ExpectedSuccess(t, err)
		c := st.lastCall(t)
		test.Equate(t, c.name, "texture2D")
		test.Equate(t, int(c.textarget), int(fc.target))
		test.Equate(t, c.level, 1)
	}

	// a face outside of the six is an invalid argument
	err = f.Attach(texture.Array{ID: 20, Kind: texture.TextureCubeMap, Format: texture.RGBA8, Face: 6}, fbo.Color(0), fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)
}

func TestDispatchCubeMapArray(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	// a cube map array folds the layer and face into a single index
	err = f.Attach(texture.Array{
		ID:     21,
		Kind:   texture.TextureCubeMapArray,
		Format: texture.RGBA8,
		Level:  1,
		Layer:  2,
		Face:   texture.FacePositiveZ,
	}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)

	c := st.lastCall(t)
	test.Equate(t, c.name, "textureLayer")
	test.Equate(t, c.level, 1)
	test.Equate(t, c.layer, 16) // 2*6 + 4
}

func TestDispatchBuffer(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	err = f.Attach(texture.Array{ID: 22, Kind: texture.TextureBuffer, Format: texture.RGBA8}, fbo.Color(0), fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.NotImplemented)
	test.Equate(t, len(st.calls), 0)
}

func TestFormatCompatibility(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	tex := func(fm texture.Format) texture.Array {
		return texture.Array{ID: 30, Kind: texture.Texture2D, Format: fm}
	}

	// any color attachment accepts any color-renderable format
	for n := 0; n < fbo.MaxColorAttachments; n++ {
		test.ExpectedSuccess(t, f.Attach(tex(texture.RGBA8), fbo.Color(n), fbo.Draw))
	}
	test.ExpectedSuccess(t, f.Attach(tex(texture.RGBA16F), fbo.Color(0), fbo.Draw))

	// and rejects everything else
	err = f.Attach(tex(texture.Depth24), fbo.Color(0), fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)

	// the depth attachment accepts depth and combined formats only
	test.ExpectedSuccess(t, f.Attach(tex(texture.Depth24), fbo.Depth, fbo.Draw))
	test.ExpectedSuccess(t, f.Attach(tex(texture.Depth24Stencil8), fbo.Depth, fbo.Draw))
	err = f.Attach(tex(texture.RGBA8), fbo.Depth, fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)
	err = f.Attach(tex(texture.Stencil8), fbo.Depth, fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)

	// the stencil attachment accepts stencil and combined formats only
	test.ExpectedSuccess(t, f.Attach(tex(texture.Stencil8), fbo.Stencil, fbo.Draw))
	test.ExpectedSuccess(t, f.Attach(tex(texture.Depth24Stencil8), fbo.Stencil, fbo.Draw))
	err = f.Attach(tex(texture.Depth24), fbo.Stencil, fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)

	// the combined attachment accepts combined formats only
	test.ExpectedSuccess(t, f.Attach(tex(texture.Depth24Stencil8), fbo.DepthStencil, fbo.Draw))
	err = f.Attach(tex(texture.Depth24), fbo.DepthStencil, fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)
	err = f.Attach(tex(texture.Stencil8), fbo.DepthStencil, fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)

	// an attachment point that doesn't exist is an invalid argument
	err = f.Attach(tex(texture.RGBA8), fbo.Color(fbo.MaxColorAttachments), fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)
	err = f.Attach(tex(texture.RGBA8), fbo.Color(-1), fbo.Draw)
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)
}

func TestScopedBind(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	// a successful attach binds and then restores the default framebuffer
	err = f.Attach(texture.Array{ID: 40, Kind: texture.Texture2D, Format: texture.RGBA8}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)
	test.Equate(t, st.bound[fbo.Draw], 0)
	test.Equate(t, len(st.bindHistory), 2)
	test.Equate(t, st.bindHistory[0], f.ID())
	test.Equate(t, st.bindHistory[1], 0)

	// a failed attach restores the default framebuffer too
	st.attachErr = errors.New("backend rejected the attachment")
	err = f.Attach(texture.Array{ID: 41, Kind: texture.Texture2D, Format: texture.RGBA8}, fbo.Color(0), fbo.Read)
	test.ExpectedCuratedError(t, err, fbo.AttachmentFailed)
	test.Equate(t, st.bound[fbo.Read], 0)
}

func TestProcessComposition(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	// several attachments under one bind
	err = f.Process(fbo.Draw, func() error {
		err := f.AttachBound(texture.Array{ID: 50, Kind: texture.Texture2D, Format: texture.RGBA8}, fbo.Color(0), fbo.Draw)
		if err != nil {
			return err
		}
		return f.AttachBound(texture.Array{ID: 51, Kind: texture.Texture2D, Format: texture.Depth24}, fbo.Depth, fbo.Draw)
	})
	test.ExpectedSuccess(t, err)

	// one bind, both attachment calls, then the restoring bind to zero
	test.Equate(t, len(st.bindHistory), 2)
	test.Equate(t, st.bindHistory[0], f.ID())
	test.Equate(t, st.bindHistory[1], 0)
	test.Equate(t, len(st.calls), 2)

	// an error inside the processed function still restores the bind
	err = f.Process(fbo.Draw, func() error {
		return errors.New("drawing went wrong")
	})
	test.ExpectedFailure(t, err)
	test.Equate(t, st.bound[fbo.Draw], 0)
}

func TestDetach(t *testing.T) {
	st := newStub()
	f, err := fbo.NewFBO(st)
	test.ExpectedSuccess(t, err)

	err = f.Attach(texture.Array{ID: 60, Kind: texture.Texture2D, Format: texture.RGBA8, Level: 2}, fbo.Color(0), fbo.Draw)
	test.ExpectedSuccess(t, err)

	// detaching reports the zero handle at level 0, layer 0 no matter what
	// was attached before
	err = fbo.Detach(st, fbo.Color(0))
	test.ExpectedSuccess(t, err)

	c := st.lastCall(t)
	test.Equate(t, c.name, "textureLayer")
	test.Equate(t, int(c.target), int(fbo.Draw))
	test.Equate(t, c.tex, 0)
	test.Equate(t, c.level, 0)
	test.Equate(t, c.layer, 0)

	err = fbo.Detach(st, fbo.Attachment(100))
	test.ExpectedCuratedError(t, err, fbo.InvalidArgument)
}

func TestNewFBOWith(t *testing.T) {
	st := newStub()

	// the convenience form attaches to color attachment 0 immediately
	f, err := fbo.NewFBOWith(st, texture.Array{ID: 70, Kind: texture.Texture2D, Format: texture.RGBA8})
	test.ExpectedSuccess(t, err)

	c := st.lastCall(t)
	test.Equate(t, c.name, "texture2D")
	test.Equate(t, int(c.att), 0)
	test.Equate(t, c.tex, 70)

	// the failure path destroys the new handle
	_, err = fbo.NewFBOWith(st, texture.Array{ID: 71, Kind: texture.Texture2D, Format: texture.Depth24})
	test.ExpectedCuratedError(t, err, fbo.IncompatibleFormat)
	test.Equate(t, len(st.deleted), 1)

	f.Destroy()
}
