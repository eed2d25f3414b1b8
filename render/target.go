// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// TextureView represents a view into a GPU texture, used to attach the
// texture as a render destination or shader input.
type TextureView interface {
	// Destroy releases resources associated with this view.
	Destroy()
}

// RenderTarget defines where rendering output goes.
//
// A target is an abstraction over different rendering destinations:
//   - PixmapTarget: CPU-backed *image.RGBA
//   - TextureTarget: offscreen GPU texture
//   - SurfaceTarget: window surface from the host application
//
// Besides size and format, a target reports its vertical axis convention
// via Inverted. The projection derivation flips its vertical scale for
// inverted targets so content appears right-side-up on every destination.
type RenderTarget interface {
	// Width returns the target width in physical pixels.
	Width() int

	// Height returns the target height in physical pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// TextureView returns the GPU texture view for this target.
	// Returns nil for CPU-only targets.
	TextureView() TextureView

	// Inverted reports whether the target's vertical axis is inverted
	// relative to the default surface orientation.
	Inverted() bool
}

// PixmapTarget is a CPU-backed render target using *image.RGBA.
// Its axis convention matches the default surface: top-left origin,
// Y growing downward.
type PixmapTarget struct {
	img *image.RGBA
}

// NewPixmapTarget creates a CPU-backed render target.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return &PixmapTarget{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
	}
}

// NewPixmapTargetFromImage wraps an existing *image.RGBA as a render
// target. The image is used directly without copying.
func NewPixmapTargetFromImage(img *image.RGBA) *PixmapTarget {
	return &PixmapTarget{img: img}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// TextureView returns nil as this is a CPU-only target.
func (t *PixmapTarget) TextureView() TextureView {
	return nil
}

// Inverted returns false: pixmaps use the default top-down orientation.
func (t *PixmapTarget) Inverted() bool {
	return false
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Resize scales the target to the given dimensions, preserving content
// with a bilinear filter. A rebind is required afterwards so the
// projection picks up the new destination frame.
func (t *PixmapTarget) Resize(width, height int) {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), t.img, t.img.Bounds(), xdraw.Src, nil)
	t.img = dst
}

// Ensure PixmapTarget implements RenderTarget.
var _ RenderTarget = (*PixmapTarget)(nil)

// TextureTarget is an offscreen GPU texture render target.
//
// Offscreen textures have an inverted vertical axis relative to the
// default surface, so binding one drives the root orientation flip in the
// projection derivation.
type TextureTarget struct {
	width  int
	height int
	format gputypes.TextureFormat
	view   TextureView
}

// NewTextureTarget creates a render target backed by a GPU texture view.
func NewTextureTarget(width, height int, format gputypes.TextureFormat, view TextureView) *TextureTarget {
	return &TextureTarget{
		width:  width,
		height: height,
		format: format,
		view:   view,
	}
}

// Width returns the target width in pixels.
func (t *TextureTarget) Width() int {
	return t.width
}

// Height returns the target height in pixels.
func (t *TextureTarget) Height() int {
	return t.height
}

// Format returns the pixel format.
func (t *TextureTarget) Format() gputypes.TextureFormat {
	return t.format
}

// TextureView returns the GPU texture view.
func (t *TextureTarget) TextureView() TextureView {
	return t.view
}

// Inverted returns true: offscreen textures have an inverted Y axis.
func (t *TextureTarget) Inverted() bool {
	return true
}

// Destroy releases GPU resources.
func (t *TextureTarget) Destroy() {
	if t.view != nil {
		t.view.Destroy()
		t.view = nil
	}
}

// Ensure TextureTarget implements RenderTarget.
var _ RenderTarget = (*TextureTarget)(nil)

// SurfaceTarget wraps a window surface from the host application,
// enabling zero-copy rendering straight to the display.
type SurfaceTarget struct {
	width  int
	height int
	format gputypes.TextureFormat
	view   TextureView
}

// NewSurfaceTarget creates a render target from a window surface.
func NewSurfaceTarget(width, height int, format gputypes.TextureFormat, view TextureView) *SurfaceTarget {
	return &SurfaceTarget{
		width:  width,
		height: height,
		format: format,
		view:   view,
	}
}

// Width returns the surface width in pixels.
func (t *SurfaceTarget) Width() int {
	return t.width
}

// Height returns the surface height in pixels.
func (t *SurfaceTarget) Height() int {
	return t.height
}

// Format returns the surface pixel format.
func (t *SurfaceTarget) Format() gputypes.TextureFormat {
	return t.format
}

// TextureView returns the current frame's texture view.
func (t *SurfaceTarget) TextureView() TextureView {
	return t.view
}

// Inverted returns false: the window surface is the default orientation.
func (t *SurfaceTarget) Inverted() bool {
	return false
}

// Ensure SurfaceTarget implements RenderTarget.
var _ RenderTarget = (*SurfaceTarget)(nil)
