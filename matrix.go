package viewport

import "math"

// Matrix represents a 2D affine transformation with six components:
//
//	| A  C  TX |
//	| B  D  TY |
//	| 0  0  1  |
//
// This represents the transformation:
//
//	x' = A*x + C*y + TX
//	y' = B*x + D*y + TY
//
// The projection layer reuses a single Matrix instance across frames,
// mutating its fields in place rather than allocating per update.
type Matrix struct {
	A, B, C, D, TX, TY float64
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translate creates a translation matrix.
func Translate(x, y float64) Matrix {
	return Matrix{A: 1, D: 1, TX: x, TY: y}
}

// Scale creates a scaling matrix.
func Scale(x, y float64) Matrix {
	return Matrix{A: x, D: y}
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate(angle float64) Matrix {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m * other, the transformation that applies other first
// and then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		TX: m.A*other.TX + m.C*other.TY + m.TX,
		TY: m.B*other.TX + m.D*other.TY + m.TY,
	}
}

// Append returns the transformation that applies m first and then other.
// It is the reverse-order counterpart of Multiply: m.Append(t) transforms a
// point through m, then through t.
func (m Matrix) Append(other Matrix) Matrix {
	return other.Multiply(m)
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.TX,
		Y: m.B*p.X + m.D*p.Y + m.TY,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.D - m.B*m.C
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Matrix{
		A:  m.D * invDet,
		B:  -m.B * invDet,
		C:  -m.C * invDet,
		D:  m.A * invDet,
		TX: (m.C*m.TY - m.D*m.TX) * invDet,
		TY: (m.B*m.TX - m.A*m.TY) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 1 && m.TX == 0 && m.TY == 0
}
