// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/viewport"
)

// ProjectionSystem maintains the transform mapping the renderer's logical
// source frame into the normalized clip-space coordinates consumed by the
// rasterizer.
//
// The host renderer calls Update once per frame, and additionally on
// resize and render-target switches. ProjectionMatrix is a single
// long-lived instance mutated in place on every update; it is shared by
// reference with the global uniform store, which must treat it as
// read-only between updates.
//
// ProjectionSystem is not safe for concurrent use. It assumes exclusive,
// serialized access from the host's render loop.
type ProjectionSystem struct {
	renderer *Renderer // non-owning back-reference to the host

	// DestinationFrame is the last-known viewport rectangle, or nil until
	// the first update.
	DestinationFrame *viewport.Rect

	// SourceFrame is the last-known logical content rectangle, or nil
	// until the first update.
	SourceFrame *viewport.Rect

	// DefaultFrame is the fallback rectangle used when no destination
	// frame has ever been supplied. Set by the host, not by this system.
	DefaultFrame *viewport.Rect

	// ProjectionMatrix is the derived clip-space transform. It always
	// reflects the most recent Update's inputs combined with Transform,
	// and is never implicitly reset to identity.
	ProjectionMatrix *viewport.Matrix

	// Transform is an optional matrix appended after projection, i.e.
	// applied in clip space. Nil means no extra transform.
	Transform *viewport.Matrix
}

func newProjectionSystem(r *Renderer) *ProjectionSystem {
	m := viewport.Identity()
	return &ProjectionSystem{
		renderer:         r,
		ProjectionMatrix: &m,
	}
}

// Update refreshes the projection matrix for the given frames and pushes
// it into the renderer's global uniform state.
//
// Frame arguments are optional: nil falls back to the previously stored
// frame, then to DefaultFrame (destination) or to the resolved destination
// (source). The resolved frames are stored for future fallback.
//
// The resolution parameter is accepted for interface symmetry with the
// host; frames are assumed already resolution-scaled by the caller and
// the derivation itself is resolution-agnostic.
//
// root selects the vertical axis convention: false for the default screen
// orientation, true for render targets whose backing surface has an
// inverted Y axis.
//
// Update cannot fail. Degenerate input (zero-size or missing frames)
// propagates infinite or NaN matrix components silently; validation is a
// caller obligation, keeping the per-frame path branch- and
// allocation-free. After Update returns, the host must configure the
// rasterizer viewport to match DestinationFrame itself; this system does
// not issue viewport or scissor calls.
func (p *ProjectionSystem) Update(destinationFrame, sourceFrame *viewport.Rect, resolution float64, root bool) {
	p.resolveFrames(destinationFrame, sourceFrame)

	// Missing frames behave as zero-size frames: the derivation divides
	// by zero and yields infinities rather than panicking.
	var source viewport.Rect
	if p.SourceFrame != nil {
		source = *p.SourceFrame
	}
	p.calculateProjection(source, resolution, root)

	if p.Transform != nil {
		*p.ProjectionMatrix = p.ProjectionMatrix.Append(*p.Transform)
	}

	r := p.renderer
	r.GlobalUniforms.Set(GlobalProjectionKey, p.ProjectionMatrix)
	r.GlobalUniforms.Update()

	if shader := r.Shader.Shader; shader != nil {
		r.Shader.SyncUniformGroup(shader.Globals())
	}
}

// resolveFrames decides the effective destination and source rectangles
// using the three-level fallback chain and stores them for future calls.
func (p *ProjectionSystem) resolveFrames(destination, source *viewport.Rect) {
	if destination == nil {
		destination = p.DestinationFrame
	}
	if destination == nil {
		destination = p.DefaultFrame
	}
	if source == nil {
		source = p.SourceFrame
	}
	if source == nil {
		source = destination
	}
	p.DestinationFrame = destination
	p.SourceFrame = source
}

// calculateProjection writes the clip-space transform for the source frame
// into the live ProjectionMatrix.
//
// Root targets have an inverted vertical axis relative to the default
// surface, so the vertical scale and translation flip sign; content drawn
// with the same logical coordinates then appears right-side-up on both
// kinds of surface.
func (p *ProjectionSystem) calculateProjection(source viewport.Rect, _ float64, root bool) {
	sign := 1.0
	if root {
		sign = -1.0
	}

	m := p.ProjectionMatrix
	m.A = 2 / source.Width
	m.D = sign * 2 / source.Height
	m.B = 0
	m.C = 0
	m.TX = -1 - source.X*m.A
	m.TY = -sign - source.Y*m.D
}

// SetTransform pins a transform onto the active render target.
//
// Inert: the binding between a transform and the active render target is
// not yet designed, and the method deliberately does nothing. Set the
// Transform field directly to compose a clip-space transform into the
// projection.
func (p *ProjectionSystem) SetTransform(_ *viewport.Matrix) {}
