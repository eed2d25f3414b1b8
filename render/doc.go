// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render provides the renderer-side systems that consume the
// viewport geometry primitives: projection update, global uniform state,
// shader binding and sync, and render targets.
//
// The central type is ProjectionSystem, which derives the clip-space
// projection matrix from the active source frame once per frame (and on
// resize or render-target switch) and publishes it to the renderer's
// global uniform store.
package render
