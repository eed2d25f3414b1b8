// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/viewport"
)

// TargetSystem binds render targets and keeps the projection and the
// rasterizer viewport in sync with the bound target.
//
// The projection system itself never issues viewport calls; after every
// projection update the host must configure the rasterizer viewport to
// the resolved destination frame. TargetSystem discharges that obligation
// for the bind path.
type TargetSystem struct {
	renderer *Renderer
	current  RenderTarget
	view     viewport.Rect
}

func newTargetSystem(r *Renderer) *TargetSystem {
	return &TargetSystem{renderer: r}
}

// Bind makes target the active render destination.
//
// The physical destination frame is derived from the target size, the
// logical source frame from the destination divided by the renderer
// resolution, and the orientation flag from the target's axis convention.
// The rasterizer viewport is then configured to the resolved destination
// frame. Binding nil is a no-op.
func (t *TargetSystem) Bind(target RenderTarget) {
	if target == nil {
		return
	}
	t.current = target

	destination := viewport.RectFromSize(float64(target.Width()), float64(target.Height()))
	source := destination.Scaled(1 / t.renderer.resolution)

	t.renderer.Projection.Update(&destination, &source, t.renderer.resolution, target.Inverted())
	t.view = *t.renderer.Projection.DestinationFrame

	viewport.Logger().Debug("render target bound",
		"width", target.Width(), "height", target.Height(),
		"inverted", target.Inverted(), "resolution", t.renderer.resolution)
}

// Current returns the bound render target, or nil if none is bound.
func (t *TargetSystem) Current() RenderTarget {
	return t.current
}

// Viewport returns the rasterizer viewport rectangle configured at the
// last bind.
func (t *TargetSystem) Viewport() viewport.Rect {
	return t.view
}
