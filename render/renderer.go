// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"

	"github.com/gogpu/viewport"
	"github.com/gogpu/viewport/internal/gpu"
)

// Renderer errors.
var (
	// ErrNoDevice is returned when a GPU operation is requested on a
	// renderer constructed without a device handle.
	ErrNoDevice = errors.New("render: renderer has no GPU device")
)

// Options configures a Renderer.
type Options struct {
	// Resolution is the device pixel ratio mapping logical to physical
	// pixels. Defaults to 1 if zero or negative.
	Resolution float64

	// Device provides the shared GPU device from the host application.
	// Nil (or a provider without HAL access, such as NullDeviceHandle)
	// yields CPU-only uniform state tracking.
	Device DeviceHandle
}

// Renderer is the host context composing the viewport systems: global
// uniform state, shader binding, projection update, and render-target
// binding.
//
// Renderer is not safe for concurrent use; all systems assume exclusive,
// serialized access from a single render loop.
type Renderer struct {
	resolution float64
	handle     DeviceHandle
	uniformBuf *gpu.UniformBuffer

	// GlobalUniforms is the renderer-wide uniform store read by the
	// shader pipeline.
	GlobalUniforms *GlobalUniforms

	// Shader tracks the currently bound shader program.
	Shader *ShaderSystem

	// Projection maintains the clip-space projection matrix.
	Projection *ProjectionSystem

	// Target binds render targets and keeps the rasterizer viewport in
	// sync with the projection's destination frame.
	Target *TargetSystem
}

// New creates a renderer with the given options.
//
// If the device handle exposes HAL access, a GPU uniform buffer is created
// for the projection matrix and attached to the global uniform store.
// Otherwise uniform state is tracked CPU-side only; this is not an error.
func New(opts Options) *Renderer {
	resolution := opts.Resolution
	if resolution <= 0 {
		resolution = 1
	}

	r := &Renderer{
		resolution: resolution,
		handle:     opts.Device,
	}
	r.GlobalUniforms = NewGlobalUniforms()
	r.Shader = newShaderSystem(r)
	r.Projection = newProjectionSystem(r)
	r.Target = newTargetSystem(r)

	if opts.Device != nil {
		buf, err := gpu.NewUniformBuffer(opts.Device, "viewport_globals", gpu.Mat3Size)
		if err != nil {
			viewport.Logger().Warn("GPU uniform buffer unavailable, tracking uniforms CPU-side", "err", err)
		} else {
			r.uniformBuf = buf
			r.GlobalUniforms.SetWriter(buf)
			viewport.Logger().Info("GPU uniform buffer created", "size", gpu.Mat3Size)
		}
	}

	return r
}

// Resolution returns the device pixel ratio.
func (r *Renderer) Resolution() float64 {
	return r.resolution
}

// SetResolution updates the device pixel ratio. The new value takes effect
// on the next render-target bind or projection update.
func (r *Renderer) SetResolution(resolution float64) {
	if resolution <= 0 {
		resolution = 1
	}
	r.resolution = resolution
}

// Device returns the host device handle, or nil for CPU-only renderers.
func (r *Renderer) Device() DeviceHandle {
	return r.handle
}

// Close releases GPU resources owned by the renderer. The device handle
// itself belongs to the host and is left untouched.
func (r *Renderer) Close() {
	if r.uniformBuf != nil {
		r.GlobalUniforms.SetWriter(nil)
		r.uniformBuf.Destroy()
		r.uniformBuf = nil
	}
}
