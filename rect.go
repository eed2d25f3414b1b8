package viewport

// Rect is an axis-aligned rectangle described by its top-left corner and
// size, in logical or physical pixels depending on context.
//
// The projection layer places no invariant on the sign of Width or Height;
// callers are expected to supply positive, non-zero dimensions. A zero-size
// rectangle produces a degenerate (infinite) projection scale rather than
// an error.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a rectangle from a top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromSize creates a rectangle anchored at the origin.
func RectFromSize(width, height float64) Rect {
	return Rect{Width: width, Height: height}
}

// Scaled returns the rectangle with all components multiplied by s.
// Used to fold a device pixel ratio into a frame before projection.
func (r Rect) Scaled(s float64) Rect {
	return Rect{X: r.X * s, Y: r.Y * s, Width: r.Width * s, Height: r.Height * s}
}

// IsEmpty reports whether the rectangle has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.Width == 0 || r.Height == 0
}

// Right returns the X coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Bottom returns the Y coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}
