package xform

import "golang.org/x/image/math/f64"

// Aff3 returns m as an [f64.Aff3], which uses the same row-major 2x3
// layout. The conversion is loss-free in both directions.
func (m Matrix) Aff3() f64.Aff3 {
	return f64.Aff3{m.A, m.B, m.C, m.D, m.E, m.F}
}

// SetAff3 sets m's coefficients from a and returns m.
func (m *Matrix) SetAff3(a f64.Aff3) *Matrix {
	m.A, m.B, m.C = a[0], a[1], a[2]
	m.D, m.E, m.F = a[3], a[4], a[5]
	return m
}
