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
	"github.com/jetsetilly/glfbo/logger"
	"github.com/jetsetilly/glfbo/texture"
)

// Error patterns raised by this package. Test with curated.Is().
const (
	InvalidArgument    = "fbo: invalid argument: %v"
	IncompatibleFormat = "fbo: incompatible format: %v"
	AttachmentFailed   = "fbo: attachment failed: %v"
	NotImplemented     = "fbo: not implemented: %v"
)

// FBO represents a single framebuffer object. The handle is allocated on
// creation and remains valid until Destroy() is called.
type FBO struct {
	ctx Context
	id  uint32
}

// Create allocates count framebuffer objects in one batch. The count must be
// positive.
func Create(ctx Context, count int) ([]*FBO, error) {
	if count <= 0 {
		return nil, curated.Errorf(InvalidArgument, fmt.Sprintf("handle count must be positive (%d)", count))
	}

	ids := ctx.GenFramebuffers(int32(count))
	fbos := make([]*FBO, len(ids))
	for i := range ids {
		fbos[i] = &FBO{ctx: ctx, id: ids[i]}
	}

	return fbos, nil
}

// NewFBO is the preferred method of initialisation of the FBO type.
func NewFBO(ctx Context) (*FBO, error) {
	fbos, err := Create(ctx, 1)
	if err != nil {
		return nil, err
	}
	return fbos[0], nil
}

// NewFBOWith creates a single FBO and immediately attaches the supplied
// texture to color attachment 0 on the draw target.
func NewFBOWith(ctx Context, tex texture.Array) (*FBO, error) {
	f, err := NewFBO(ctx)
	if err != nil {
		return nil, err
	}

	err = f.Attach(tex, Color(0), Draw)
	if err != nil {
		f.Destroy()
		return nil, err
	}

	return f, nil
}

// ID returns the underlying framebuffer handle.
func (f *FBO) ID() uint32 {
	return f.id
}

// Destroy should be called when the FBO is no longer required. The handle
// must not be used after Destroy() has been called.
func (f *FBO) Destroy() {
	f.ctx.DeleteFramebuffers([]uint32{f.id})
}

// Destroy several FBOs in one call. The FBOs do not need to share a
// creation batch.
func Destroy(fbos ...*FBO) {
	for _, f := range fbos {
		f.Destroy()
	}
}

// Bind the FBO to the named target. The bind remains in effect until another
// bind replaces it or Unbind() is called.
func (f *FBO) Bind(target Target) error {
	err := f.ctx.BindFramebuffer(target, f.id)
	if err != nil {
		return curated.Errorf(AttachmentFailed, err)
	}
	return nil
}

// Unbind restores the default framebuffer for the named target. It does not
// matter whether this FBO was the one bound there.
func (f *FBO) Unbind(target Target) error {
	return Unbind(f.ctx, target)
}

// Unbind restores the default framebuffer for the named target.
func Unbind(ctx Context, target Target) error {
	err := ctx.BindFramebuffer(target, 0)
	if err != nil {
		return curated.Errorf(AttachmentFailed, err)
	}
	return nil
}

// Process binds the FBO to the named target, runs the supplied function and
// restores the default framebuffer. The restoration happens on every exit
// path, including an early return caused by an error in the supplied
// function.
//
// Use AttachBound() inside the supplied function to make several attachments
// under the one bind.
func (f *FBO) Process(target Target, do func() error) error {
	err := f.Bind(target)
	if err != nil {
		return err
	}

	defer func() {
		if err := Unbind(f.ctx, target); err != nil {
			// the operation itself may have succeeded so the unbind failure
			// is logged rather than replacing the return value
			logger.Logf("fbo", "unbind of %s target: %v", target, err)
		}
	}()

	return do()
}
