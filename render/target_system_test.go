// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/viewport"
)

func TestBindDerivesFramesFromTarget(t *testing.T) {
	r := New(Options{Resolution: 2})
	target := NewPixmapTarget(800, 600)

	r.Target.Bind(target)

	if r.Target.Current() != target {
		t.Fatal("Current() should return the bound target")
	}

	wantDest := viewport.RectFromSize(800, 600)
	if got := *r.Projection.DestinationFrame; got != wantDest {
		t.Errorf("destination frame = %+v, want %+v", got, wantDest)
	}

	// Logical source frame is the destination divided by the resolution.
	wantSrc := viewport.RectFromSize(400, 300)
	if got := *r.Projection.SourceFrame; got != wantSrc {
		t.Errorf("source frame = %+v, want %+v", got, wantSrc)
	}

	// Viewport post-condition: configured to the resolved destination.
	if got := r.Target.Viewport(); got != wantDest {
		t.Errorf("Viewport() = %+v, want %+v", got, wantDest)
	}
}

func TestBindOrientationPerTargetKind(t *testing.T) {
	tests := []struct {
		name         string
		target       RenderTarget
		wantInverted bool
	}{
		{"pixmap", NewPixmapTarget(64, 64), false},
		{"surface", NewSurfaceTarget(64, 64, gputypes.TextureFormatBGRA8Unorm, nil), false},
		{"texture", NewTextureTarget(64, 64, gputypes.TextureFormatRGBA8Unorm, nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Options{})
			r.Target.Bind(tt.target)

			d := r.Projection.ProjectionMatrix.D
			if tt.wantInverted && d >= 0 {
				t.Errorf("D = %v, want negative for inverted target", d)
			}
			if !tt.wantInverted && d <= 0 {
				t.Errorf("D = %v, want positive for default orientation", d)
			}
		})
	}
}

func TestBindNilIsNoOp(t *testing.T) {
	r := New(Options{})
	target := NewPixmapTarget(64, 64)
	r.Target.Bind(target)

	r.Target.Bind(nil)

	if r.Target.Current() != target {
		t.Error("Bind(nil) should leave the bound target unchanged")
	}
}

func TestRebindAfterResize(t *testing.T) {
	r := New(Options{})
	target := NewPixmapTarget(400, 300)
	r.Target.Bind(target)
	before := *r.Projection.ProjectionMatrix

	target.Resize(800, 600)
	r.Target.Bind(target)

	after := *r.Projection.ProjectionMatrix
	if before == after {
		t.Error("rebinding a resized target should change the projection")
	}
	want := viewport.RectFromSize(800, 600)
	if got := r.Target.Viewport(); got != want {
		t.Errorf("Viewport() = %+v, want %+v", got, want)
	}
}
