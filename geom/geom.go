// Implements the plane geometry shared by the diagram model
// and its backends: points, affine transforms and paths.
package geom

import "math"

// Pt is a 2D point or vector.
type Pt struct {
	X, Y float64
}

// Add returns the vector sum p + q.
func (p Pt) Add(q Pt) Pt {
	return Pt{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the vector difference p - q.
func (p Pt) Sub(q Pt) Pt {
	return Pt{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the vector scaled by s.
func (p Pt) Mul(s float64) Pt {
	return Pt{X: p.X * s, Y: p.Y * s}
}

// Length returns the euclidean norm of the vector.
func (p Pt) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Normalize returns the unit vector with the same direction,
// or the zero vector if p is zero.
func (p Pt) Normalize() Pt {
	length := p.Length()
	if length == 0 {
		return Pt{}
	}
	return Pt{X: p.X / length, Y: p.Y / length}
}

// Normal returns the vector rotated by a quarter turn
// (counterclockwise in the usual SVG y-down convention).
func (p Pt) Normal() Pt {
	return Pt{X: -p.Y, Y: p.X}
}

// Matrix2D is an affine transform of the plane,
// mapping (x, y) to (A*x + C*y + E, B*x + D*y + F).
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity transform.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns the matrix product a . b, the transform
// applying b first, then a.
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate composes a with a translation of (x, y).
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale composes a with a scaling of (x, y).
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Apply transforms the point p.
func (a Matrix2D) Apply(p Pt) Pt {
	return Pt{
		X: a.A*p.X + a.C*p.Y + a.E,
		Y: a.B*p.X + a.D*p.Y + a.F,
	}
}

// ApplyVec transforms the vector v, ignoring the
// translation part of the matrix.
func (a Matrix2D) ApplyVec(v Pt) Pt {
	return Pt{
		X: a.A*v.X + a.C*v.Y,
		Y: a.B*v.X + a.D*v.Y,
	}
}
