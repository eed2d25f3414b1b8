// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/internal/gpu"
)

// GlobalProjectionKey is the well-known key under which the projection
// matrix is published to the global uniform store.
const GlobalProjectionKey = "uProjectionMatrix"

// UniformGroup is a named set of shader inputs. Every write bumps the
// group's version counter; consumers compare versions to detect stale
// uploads without inspecting values.
//
// Values stored by reference (such as the projection matrix) are mutated
// in place by their owners between updates. Consumers must treat them as
// read-only and must not retain them past the next update without copying.
type UniformGroup struct {
	name    string
	values  map[string]any
	version uint64
}

// NewUniformGroup creates an empty uniform group with the given name.
func NewUniformGroup(name string) *UniformGroup {
	return &UniformGroup{
		name:   name,
		values: make(map[string]any),
	}
}

// Name returns the group name.
func (g *UniformGroup) Name() string {
	return g.name
}

// Set stores a value under key and bumps the group version.
func (g *UniformGroup) Set(key string, value any) {
	g.values[key] = value
	g.version++
}

// Get returns the value stored under key.
func (g *UniformGroup) Get(key string) (any, bool) {
	v, ok := g.values[key]
	return v, ok
}

// Version returns the current version counter. It increases monotonically
// with every Set.
func (g *UniformGroup) Version() uint64 {
	return g.version
}

// UniformWriter uploads packed uniform data to the GPU.
// Implemented by the internal uniform buffer; tests substitute fakes.
type UniformWriter interface {
	Write(data []byte) error
}

// GlobalUniforms is the renderer-wide uniform store shared across all draw
// calls in a frame. It holds the projection matrix under
// GlobalProjectionKey; writes are last-writer-wins.
//
// GlobalUniforms is not safe for concurrent use. It is owned by the
// renderer and accessed from the render loop only.
type GlobalUniforms struct {
	group   *UniformGroup
	writer  UniformWriter
	dirty   bool
	uploads uint64
}

// NewGlobalUniforms creates an empty global uniform store.
func NewGlobalUniforms() *GlobalUniforms {
	return &GlobalUniforms{
		group: NewUniformGroup(GlobalsGroupName),
	}
}

// Set stores a value under key and marks the store dirty.
func (u *GlobalUniforms) Set(key string, value any) {
	u.group.Set(key, value)
	u.dirty = true
}

// Get returns the value stored under key.
func (u *GlobalUniforms) Get(key string) (any, bool) {
	return u.group.Get(key)
}

// Group returns the backing uniform group. Bound shader programs share
// this group as their "globals" group.
func (u *GlobalUniforms) Group() *UniformGroup {
	return u.group
}

// SetWriter attaches a GPU upload path. Pass nil to detach.
func (u *GlobalUniforms) SetWriter(w UniformWriter) {
	u.writer = w
}

// Dirty reports whether the store has been written since the last Update.
func (u *GlobalUniforms) Dirty() bool {
	return u.dirty
}

// Uploads returns the number of Update calls, for diagnostics and tests.
func (u *GlobalUniforms) Uploads() uint64 {
	return u.uploads
}

// Update marks the store's contents for upload. If a GPU writer is
// attached and a projection matrix is present, the matrix is packed into
// std140 layout and written to the uniform buffer immediately.
//
// Upload failures are logged and otherwise ignored: the per-frame path
// carries no error signal.
func (u *GlobalUniforms) Update() {
	u.uploads++
	u.dirty = false

	if u.writer == nil {
		return
	}
	v, ok := u.group.Get(GlobalProjectionKey)
	if !ok {
		return
	}
	m, ok := v.(*viewport.Matrix)
	if !ok {
		return
	}
	if err := u.writer.Write(gpu.PackMat3(*m)); err != nil {
		viewport.Logger().Warn("global uniform upload failed", "err", err)
	}
}
