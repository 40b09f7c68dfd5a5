package xform

import (
	"iter"

	"deedles.dev/xiter"
)

// Transformed returns a sequence that yields each point of seq mapped
// through m. The matrix is captured by value when Transformed is called,
// so later changes to the original do not affect the sequence.
func Transformed(m Matrix, seq iter.Seq[Point]) iter.Seq[Point] {
	return xiter.Map(seq, func(p Point) Point {
		m.Apply(&p)
		return p
	})
}
