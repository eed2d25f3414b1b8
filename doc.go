// Package viewport provides the 2D clip-space projection layer for GPU
// renderers in the gogpu family.
//
// A renderer draws in a logical coordinate space (the source frame) and
// presents into a physical region of a surface or texture (the destination
// frame). This package maintains the affine transform that maps the source
// frame into the normalized clip-space coordinates consumed by the
// rasterizer, keeping geometry correctly scaled, translated, and
// orientation-corrected across frames, resizes, and render-target switches.
//
// The root package holds the geometry primitives (Rect, Point, Matrix) and
// logger plumbing. The render subpackage holds the renderer-side systems:
// projection update, global uniform state, shader sync, and render targets.
package viewport
