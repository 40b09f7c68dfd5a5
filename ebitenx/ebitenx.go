// Package ebitenx converts transforms to and from Ebitengine's GeoM.
package ebitenx

import (
	"deedles.dev/xform"
	"github.com/hajimehoshi/ebiten/v2"
)

// GeoM returns m as an [ebiten.GeoM], element for element.
func GeoM(m xform.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m.A)
	g.SetElement(0, 1, m.B)
	g.SetElement(0, 2, m.C)
	g.SetElement(1, 0, m.D)
	g.SetElement(1, 1, m.E)
	g.SetElement(1, 2, m.F)
	return g
}

// Matrix returns g as an [xform.Matrix], element for element.
func Matrix(g ebiten.GeoM) xform.Matrix {
	return xform.Matrix{
		A: g.Element(0, 0), B: g.Element(0, 1), C: g.Element(0, 2),
		D: g.Element(1, 0), E: g.Element(1, 1), F: g.Element(1, 2),
	}
}
