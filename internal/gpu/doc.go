// Package gpu provides the GPU upload path for renderer-wide uniform
// state: std140 packing of the projection matrix, uniform buffer
// management over wgpu/hal, and WGSL shader compilation via naga.
//
// The package follows the shared-device convention of the gpucontext
// ecosystem: it never creates a GPU device of its own, it borrows one
// from a HAL provider supplied by the host.
package gpu
