package gpu

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/gogpu/viewport"
)

func float32At(data []byte, index int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(data[index*4:]))
}

func TestPackMat3Size(t *testing.T) {
	data := PackMat3(viewport.Identity())
	if len(data) != Mat3Size {
		t.Fatalf("len = %d, want %d", len(data), Mat3Size)
	}
}

func TestPackMat3Layout(t *testing.T) {
	m := viewport.Matrix{A: 1, B: 2, C: 3, D: 4, TX: 5, TY: 6}
	data := PackMat3(m)

	// Three vec4-aligned columns: (A,B,0,pad) (C,D,0,pad) (TX,TY,1,pad).
	want := []float32{
		1, 2, 0, 0,
		3, 4, 0, 0,
		5, 6, 1, 0,
	}
	for i, w := range want {
		if got := float32At(data, i); got != w {
			t.Errorf("word %d = %v, want %v", i, got, w)
		}
	}
}

func TestPackMat3Identity(t *testing.T) {
	data := PackMat3(viewport.Identity())

	// Diagonal of the 3x3 lives at words 0, 5, and 10.
	for _, i := range []int{0, 5, 10} {
		if got := float32At(data, i); got != 1 {
			t.Errorf("diagonal word %d = %v, want 1", i, got)
		}
	}
	for _, i := range []int{1, 2, 3, 4, 6, 7, 8, 9, 11} {
		if got := float32At(data, i); got != 0 {
			t.Errorf("off-diagonal word %d = %v, want 0", i, got)
		}
	}
}

func TestPackMat3Degenerate(t *testing.T) {
	m := viewport.Matrix{A: math.Inf(1), TX: math.NaN()}
	data := PackMat3(m)

	if !math.IsInf(float64(float32At(data, 0)), 1) {
		t.Error("infinite scale must survive packing")
	}
	if !math.IsNaN(float64(float32At(data, 8))) {
		t.Error("NaN translation must survive packing")
	}
}
