package xform_test

import (
	"math"
	"slices"
	"testing"

	"deedles.dev/xform"
	"github.com/stretchr/testify/require"
)

func TestIdentity(t *testing.T) {
	var m xform.Matrix
	m.Identity()

	for _, p := range []xform.Point{{0, 0}, {1, 0}, {0, 1}, {-3.5, 7.25}, {1e9, -1e-9}} {
		q := p
		m.Apply(&q)
		require.Equal(t, p, q)
	}
}

func TestApplyMixesAxes(t *testing.T) {
	// Swaps x and y, so each output depends on the other input. Both
	// inputs must be read before either output is written.
	m := xform.Matrix{B: 1, D: 1}
	p := xform.Pt(3, 4)
	m.Apply(&p)
	require.Equal(t, xform.Pt(4, 3), p)
}

func TestTranslateFollowsBasis(t *testing.T) {
	var m xform.Matrix
	m.Identity().Rotate(math.Pi/2).Translate(1, 0)

	p := xform.Pt(0, 0)
	m.Apply(&p)
	require.InDelta(t, 0, p.X, 1e-9)
	require.InDelta(t, 1, p.Y, 1e-9)
}

func TestOffsetIsAbsolute(t *testing.T) {
	var m xform.Matrix
	m.Identity().Rotate(math.Pi/2).Offset(1, 0)

	p := xform.Pt(0, 0)
	m.Apply(&p)
	require.Equal(t, xform.Pt(1, 0), p)
}

func TestScaleScalesTranslation(t *testing.T) {
	var m xform.Matrix
	m.Identity().Translate(2, 0).Scale(3)

	p := xform.Pt(0, 0)
	m.Apply(&p)
	require.Equal(t, xform.Pt(6, 0), p)
}

func TestMultiplyCoefficients(t *testing.T) {
	m := xform.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	m.Multiply(xform.Matrix{A: 7, B: 8, C: 9, D: 10, E: 11, F: 12})
	require.Equal(t, xform.Matrix{A: 39, B: 54, C: 60, D: 54, E: 75, F: 84}, m)
}

func TestMultiplyIdentitySwapsBD(t *testing.T) {
	var id xform.Matrix
	id.Identity()

	m := xform.Matrix{B: -1, D: 1}
	m.Multiply(id)
	require.Equal(t, xform.Matrix{B: 1, D: -1}, m)
}

func TestMultiplyComposes(t *testing.T) {
	var t1, t2, t3 xform.Matrix
	t1.Identity().Translate(1, 2)
	t2.Identity().Scale(3)
	t3.Identity().Translate(-4, 5)

	var chained xform.Matrix
	chained.Set(t1)
	chained.Multiply(t2).Multiply(t3)

	p := xform.Pt(1, 1)
	chained.Apply(&p)

	q := xform.Pt(1, 1)
	t3.Apply(&q)
	t2.Apply(&q)
	t1.Apply(&q)
	require.Equal(t, q, p)

	var right xform.Matrix
	right.Set(t2)
	right.Multiply(t3)
	var assoc xform.Matrix
	assoc.Set(t1)
	assoc.Multiply(right)
	require.Equal(t, chained, assoc)
}

func TestInvertRoundTrip(t *testing.T) {
	var m xform.Matrix
	m.Identity().Rotate(0.7).Translate(3, -4).Scale(2.5)

	var inv xform.Matrix
	inv.Set(m)
	inv.Invert()

	for _, p := range []xform.Point{{0, 0}, {1, 0}, {-2, 5}, {123.5, -0.25}} {
		q := p
		m.Apply(&q)
		inv.Apply(&q)
		require.InDelta(t, p.X, q.X, 1e-9)
		require.InDelta(t, p.Y, q.Y, 1e-9)
	}
}

func TestInvertSingular(t *testing.T) {
	// Second row is a multiple of the first, so the determinant is zero.
	m := xform.Matrix{A: 2, B: 4, D: 1, E: 2}
	require.Zero(t, m.Det())

	m.Invert()
	require.False(t, m.Finite())

	p := xform.Pt(1, 1)
	m.Apply(&p)
	require.True(t, math.IsNaN(p.X) || math.IsInf(p.X, 0))
	require.True(t, math.IsNaN(p.Y) || math.IsInf(p.Y, 0))
}

func TestSetIndependent(t *testing.T) {
	var a, b xform.Matrix
	a.Identity().Rotate(1).Translate(5, 6)

	b.Set(a)
	want := b

	a.Scale(10)
	require.Equal(t, want, b)
}

func TestAccessors(t *testing.T) {
	var m xform.Matrix
	m.SetCoefficients([6]float64{1, 2, 3, 4, 5, 6})

	require.Equal(t, xform.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}, m)
	require.Equal(t, [6]float64{1, 2, 3, 4, 5, 6}, m.Coefficients())
	require.Equal(t, 3.0, m.X())
	require.Equal(t, 6.0, m.Y())
	require.Equal(t, -3.0, m.Det())
	require.Equal(t, "[[1 2 3] [4 5 6]]", m.String())
	require.True(t, m.Finite())
}

func TestAff3RoundTrip(t *testing.T) {
	m := xform.Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	a := m.Aff3()
	require.Equal(t, [6]float64(a), m.Coefficients())

	var back xform.Matrix
	back.SetAff3(a)
	require.Equal(t, m, back)
}

func TestTransformPoints(t *testing.T) {
	var m xform.Matrix
	m.Identity().Scale(2).Offset(1, -1)

	ps := []xform.Point{{0, 0}, {1, 1}, {-3, 4}}
	want := make([]xform.Point, len(ps))
	for i, p := range ps {
		q := p
		m.Apply(&q)
		want[i] = q
	}

	m.TransformPoints(ps)
	require.Equal(t, want, ps)
}

func TestTransformed(t *testing.T) {
	var m xform.Matrix
	m.Identity().Scale(2)

	ps := []xform.Point{{1, 2}, {3, 4}}
	seq := xform.Transformed(m, slices.Values(ps))

	// The sequence captured m by value, so this must not show up below.
	m.Scale(100)

	got := slices.Collect(seq)
	require.Equal(t, []xform.Point{{2, 4}, {6, 8}}, got)
}

func BenchmarkApply(b *testing.B) {
	var m xform.Matrix
	m.Identity().Rotate(0.3).Translate(12, 7).Scale(1.5)

	for b.Loop() {
		p := xform.Pt(3, 4)
		m.Apply(&p)
	}
}

func BenchmarkRotate(b *testing.B) {
	var m xform.Matrix
	m.Identity()

	for b.Loop() {
		m.Rotate(0.01)
	}
}
