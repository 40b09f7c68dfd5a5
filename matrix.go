// Package xform implements mutable 2D affine transforms.
//
// A [Matrix] holds the six coefficients of a 2x3 affine matrix. Operations
// modify the receiver in place and return it, so calls chain:
//
//	var m xform.Matrix
//	m.Identity().Rotate(math.Pi/2).Translate(1, 0)
//
// Matrix arguments are always passed by value, so no operation retains a
// reference to its inputs, and the arithmetic allocates nothing. Nothing in
// this package synchronizes access; a Matrix shared between goroutines
// needs locking by the caller.
package xform

import (
	"fmt"
	"math"
)

// A Matrix is a 2x3 affine transformation matrix. It maps the point (x, y)
// to
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
//
// with an implicit third row of [0 0 1]. The coefficient order A, B, C, D,
// E, F is stable and is the order used by [Matrix.Coefficients] and
// [Matrix.Aff3], so coefficient lists can be exchanged positionally with
// other implementations of the same layout.
//
// The zero Matrix maps every point to the origin. Call [Matrix.Identity]
// to get a usable starting transform.
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity resets m to the identity transform and returns m.
func (m *Matrix) Identity() *Matrix {
	*m = Matrix{A: 1, E: 1}
	return m
}

// Set copies o's coefficients into m and returns m. The two matrices remain
// independent afterwards.
func (m *Matrix) Set(o Matrix) *Matrix {
	*m = o
	return m
}

// Apply transforms p in place and returns p. Both input coordinates are
// read before either output is written, so a matrix that swaps or mixes
// the axes behaves correctly. m itself is unchanged.
func (m Matrix) Apply(p *Point) *Point {
	x, y := p.X, p.Y
	p.X = m.A*x + m.B*y + m.C
	p.Y = m.D*x + m.E*y + m.F
	return p
}

// TransformPoints applies m to every point in ps, in place.
func (m Matrix) TransformPoints(ps []Point) {
	for i := range ps {
		m.Apply(&ps[i])
	}
}

// Translate moves the transform by (dx, dy) in its own coordinate frame:
// the offset is mapped through the linear part before it is added, so a
// rotated matrix translates along its rotated axes. Returns m.
func (m *Matrix) Translate(dx, dy float64) *Matrix {
	m.C += m.A*dx + m.B*dy
	m.F += m.D*dx + m.E*dy
	return m
}

// Offset adds (dx, dy) directly to the translation terms, ignoring the
// linear part. Returns m.
func (m *Matrix) Offset(dx, dy float64) *Matrix {
	m.C += dx
	m.F += dy
	return m
}

// Rotate rotates the transform by angle radians, counterclockwise in the
// standard orientation with y pointing up. The translation terms rotate
// along with the basis. Returns m.
func (m *Matrix) Rotate(angle float64) *Matrix {
	sin, cos := math.Sincos(angle)
	a, b, c := m.A, m.B, m.C
	d, e, f := m.D, m.E, m.F
	m.A = a*cos - d*sin
	m.B = b*cos - e*sin
	m.C = c*cos - f*sin
	m.D = a*sin + d*cos
	m.E = b*sin + e*cos
	m.F = c*sin + f*cos
	return m
}

// Scale multiplies every coefficient by factor, including the translation
// terms C and F. Any accumulated translation therefore scales too; use
// [Matrix.Offset] afterwards to position a scaled transform absolutely.
// Returns m.
func (m *Matrix) Scale(factor float64) *Matrix {
	m.A *= factor
	m.B *= factor
	m.C *= factor
	m.D *= factor
	m.E *= factor
	m.F *= factor
	return m
}

// Multiply folds o into m and returns m. The six products are fixed:
//
//	A' = A*o.A + D*o.B    D' = B*o.A + E*o.B
//	B' = A*o.D + D*o.E    E' = B*o.D + E*o.E
//	C' = A*o.C + D*o.F + C    F' = B*o.C + E*o.F + F
//
// They are reproduced term for term so that coefficient streams combine
// bit for bit with other implementations of this layout. For matrices
// built from Translate, Offset, and Scale the result applies o first and
// then m, and combining is associative. Note that Multiply is not
// multiplication of the augmented 3x3 matrices: folding in the identity
// swaps B and D.
func (m *Matrix) Multiply(o Matrix) *Matrix {
	a, b, c := m.A, m.B, m.C
	d, e, f := m.D, m.E, m.F
	m.A = a*o.A + d*o.B
	m.B = a*o.D + d*o.E
	m.C = a*o.C + d*o.F + c
	m.D = b*o.A + e*o.B
	m.E = b*o.D + e*o.E
	m.F = b*o.C + e*o.F + f
	return m
}

// Invert replaces m with its inverse and returns m, so that applying both
// in sequence maps points back to where they started.
//
// Invert does not check the determinant. Inverting a singular matrix
// divides by zero and leaves infinities or NaNs in the coefficients, which
// then flow silently through [Matrix.Apply] and [Matrix.Multiply]. Callers
// that need to notice can test [Matrix.Det] before or [Matrix.Finite]
// after.
func (m *Matrix) Invert() *Matrix {
	a, b, c := m.A, m.B, m.C
	d, e, f := m.D, m.E, m.F
	i := 1 / (a*e - b*d)
	m.A = i * e
	m.B = -i * b
	m.C = i * (b*f - c*e)
	m.D = -i * d
	m.E = i * a
	m.F = i * (c*d - a*f)
	return m
}

// X returns the x translation term C.
func (m Matrix) X() float64 { return m.C }

// Y returns the y translation term F.
func (m Matrix) Y() float64 { return m.F }

// Det returns the determinant of the linear part. A zero determinant means
// the matrix is singular and [Matrix.Invert] will not produce finite
// coefficients.
func (m Matrix) Det() float64 { return m.A*m.E - m.B*m.D }

// Finite reports whether every coefficient is finite, neither NaN nor an
// infinity.
func (m Matrix) Finite() bool {
	return finite(m.A) && finite(m.B) && finite(m.C) &&
		finite(m.D) && finite(m.E) && finite(m.F)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Coefficients returns the coefficients in their stable order.
func (m Matrix) Coefficients() [6]float64 {
	return [6]float64{m.A, m.B, m.C, m.D, m.E, m.F}
}

// SetCoefficients sets the coefficients from their stable order and
// returns m.
func (m *Matrix) SetCoefficients(c [6]float64) *Matrix {
	m.A, m.B, m.C = c[0], c[1], c[2]
	m.D, m.E, m.F = c[3], c[4], c[5]
	return m
}

func (m Matrix) String() string {
	return fmt.Sprintf("[[%g %g %g] [%g %g %g]]", m.A, m.B, m.C, m.D, m.E, m.F)
}
