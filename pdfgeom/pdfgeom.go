// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pdfgeom converts between [math32.Matrix] / [math32.RectF]
// and the float64 PDF geometry types of seehuhn.de/go/geom.
//
// A PDF matrix [a b c d e f] maps (x, y) to (a*x + c*y + e, b*x + d*y + f),
// which is the same component order as [math32.Matrix.CanvasTransformParams].
package pdfgeom

import (
	"cogentcore.org/canvasmath/math32"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
)

// Matrix returns the affine part of m as a PDF [matrix.Matrix].
// The perspective row of m is dropped.
func Matrix(m math32.Matrix) matrix.Matrix {
	var pm matrix.Matrix
	for i, v := range m.CanvasTransformParams() {
		pm[i] = float64(v)
	}
	return pm
}

// FromMatrix returns a new [math32.Matrix] from the given PDF matrix,
// with an identity perspective row.
func FromMatrix(pm matrix.Matrix) math32.Matrix {
	return math32.Matrix{
		float32(pm[0]), float32(pm[1]), 0,
		float32(pm[2]), float32(pm[3]), 0,
		float32(pm[4]), float32(pm[5]), 1,
	}
}

// Rect returns r as a PDF [rect.Rect], with Left, Top as the
// lower-left corner and Right, Bottom as the upper-right corner.
// PDF user space has y pointing up, so this is a plain edge copy
// and no flip is applied.
func Rect(r math32.RectF) rect.Rect {
	return rect.Rect{
		LLx: float64(r.Left),
		LLy: float64(r.Top),
		URx: float64(r.Right),
		URy: float64(r.Bottom),
	}
}

// FromRect returns a new [math32.RectF] from the given PDF rectangle.
func FromRect(r rect.Rect) math32.RectF {
	return math32.RectFEdges(float32(r.LLx), float32(r.LLy), float32(r.URx), float32(r.URy))
}

// MapRect maps the PDF rectangle r through the PDF matrix pm
// using [math32.RectF.MapRect], returning the bounding box.
func MapRect(r rect.Rect, pm matrix.Matrix) rect.Rect {
	m := FromMatrix(pm)
	return Rect(FromRect(r).MapRect(&m))
}
