package gpu

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// globalsWGSL is the vertex stage consuming the renderer-wide projection
// matrix. Positions arrive in logical coordinates and leave in clip space.
// The Globals struct layout must match PackMat3.
const globalsWGSL = `
struct Globals {
    projection: mat3x3<f32>,
};

@group(0) @binding(0) var<uniform> globals: Globals;

struct VertexOut {
    @builtin(position) position: vec4<f32>,
    @location(0) uv: vec2<f32>,
};

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) uv: vec2<f32>) -> VertexOut {
    let clip = globals.projection * vec3<f32>(pos, 1.0);
    var out: VertexOut;
    out.position = vec4<f32>(clip.xy, 0.0, 1.0);
    out.uv = uv;
    return out;
}
`

// CompileToSPIRV compiles WGSL source to SPIR-V words.
func CompileToSPIRV(wgslSource string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(wgslSource)
	if err != nil {
		return nil, fmt.Errorf("failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// GlobalsShaderModule compiles the built-in globals vertex shader and
// creates a HAL shader module on the provider's shared device.
func GlobalsShaderModule(provider any, label string) (hal.ShaderModule, error) {
	device, _, err := halFrom(provider)
	if err != nil {
		return nil, err
	}

	code, err := CompileToSPIRV(globalsWGSL)
	if err != nil {
		return nil, fmt.Errorf("globals shader: %w", err)
	}

	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: code,
		},
	})
}
