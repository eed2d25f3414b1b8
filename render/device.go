// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// DeviceHandle provides GPU device access from the host application.
//
// The host (e.g., a gogpu.App) implements DeviceHandle and passes it to
// the renderer, allowing the uniform upload path to use the shared GPU
// device. The renderer RECEIVES the device from the host, it does NOT
// create one; the handle is a non-owning reference and the renderer must
// not outlive or destroy it.
//
// DeviceHandle is an alias for gpucontext.DeviceProvider, providing a
// package-local name for the interface while maintaining compatibility
// with the gpucontext ecosystem. Providers that additionally expose
// HalDevice()/HalQueue() (the gpucontext HAL provider convention) enable
// the GPU uniform buffer; others fall back to CPU-only state tracking.
type DeviceHandle = gpucontext.DeviceProvider

// NullDeviceHandle is a DeviceHandle that provides nil implementations.
// Used for CPU-only rendering where no GPU is available.
type NullDeviceHandle struct{}

// Device returns nil for the null device.
func (NullDeviceHandle) Device() gpucontext.Device { return nil }

// Queue returns nil for the null device.
func (NullDeviceHandle) Queue() gpucontext.Queue { return nil }

// Adapter returns nil for the null device.
func (NullDeviceHandle) Adapter() gpucontext.Adapter { return nil }

// AdapterInfo returns unknown adapter info for the null device.
func (NullDeviceHandle) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Type: gpucontext.AdapterTypeUnknown}
}

// SurfaceFormat returns undefined format for the null device.
func (NullDeviceHandle) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

// Ensure NullDeviceHandle implements DeviceHandle.
var _ DeviceHandle = NullDeviceHandle{}
