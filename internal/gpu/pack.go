package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/viewport"
)

// Mat3Size is the byte size of a mat3x3<f32> uniform under std140 layout:
// three columns, each padded to vec4 alignment (16 bytes).
const Mat3Size = 48

// PackMat3 packs an affine matrix into std140 mat3x3<f32> layout, matching
// the Globals struct in the WGSL globals shader:
//
//	column 0 = (A,  B,  0)
//	column 1 = (C,  D,  0)
//	column 2 = (TX, TY, 1)
//
// Each column occupies 16 bytes; the fourth component of every column is
// padding. Values are little-endian float32.
func PackMat3(m viewport.Matrix) []byte {
	cols := [12]float32{
		float32(m.A), float32(m.B), 0, 0,
		float32(m.C), float32(m.D), 0, 0,
		float32(m.TX), float32(m.TY), 1, 0,
	}
	out := make([]byte, Mat3Size)
	for i, v := range cols {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
