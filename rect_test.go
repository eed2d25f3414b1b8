package viewport

import (
	"math"
	"testing"
)

func TestRectScaled(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		s    float64
		want Rect
	}{
		{"identity", NewRect(10, 20, 800, 600), 1, NewRect(10, 20, 800, 600)},
		{"double", NewRect(10, 20, 800, 600), 2, NewRect(20, 40, 1600, 1200)},
		{"half", NewRect(10, 20, 800, 600), 0.5, NewRect(5, 10, 400, 300)},
		{"zero", NewRect(10, 20, 800, 600), 0, Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Scaled(tt.s)
			if got != tt.want {
				t.Errorf("Scaled(%v) = %+v, want %+v", tt.s, got, tt.want)
			}
		})
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want bool
	}{
		{"normal", RectFromSize(800, 600), false},
		{"zero width", NewRect(0, 0, 0, 600), true},
		{"zero height", NewRect(0, 0, 800, 0), true},
		{"zero value", Rect{}, true},
		{"negative size", NewRect(0, 0, -10, 5), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.IsEmpty(); got != tt.want {
				t.Errorf("%+v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectEdgesAndContains(t *testing.T) {
	r := NewRect(10, 20, 100, 50)
	if got := r.Right(); math.Abs(got-110) > 0 {
		t.Errorf("Right() = %v, want 110", got)
	}
	if got := r.Bottom(); math.Abs(got-70) > 0 {
		t.Errorf("Bottom() = %v, want 70", got)
	}
	if !r.Contains(Pt(10, 20)) || !r.Contains(Pt(110, 70)) || !r.Contains(Pt(50, 40)) {
		t.Error("Contains() should include edges and interior")
	}
	if r.Contains(Pt(9, 40)) || r.Contains(Pt(50, 71)) {
		t.Error("Contains() should exclude points outside")
	}
}
