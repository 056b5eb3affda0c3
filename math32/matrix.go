// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"errors"
	"fmt"
)

// ErrInvalidPoints is returned by [Matrix.MapPoints] when the given
// slice is not a non-empty sequence of interleaved x, y values.
var ErrInvalidPoints = errors.New("math32: points must be a non-empty, even-length sequence of x, y values")

// Matrix is a 3x3 homogeneous transform matrix for 2D affine transforms,
// with a perspective row that is carried through [Matrix.Mul] but ignored
// when mapping points. Logically it is:
//
//	[ ScaleX  SkewX   TransX ]
//	[ SkewY   ScaleY  TransY ]
//	[ Persp0  Persp1  Persp2 ]
//
// and it is stored column by column, so that the named accessors
// map onto fixed indices: ScaleX=0, SkewY=1, Persp0=2, SkewX=3,
// ScaleY=4, Persp1=5, TransX=6, TransY=7, Persp2=8.
//
// The zero value is not the identity; use [Identity].
type Matrix [9]float32

// Identity returns a new identity [Matrix].
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Named views onto the storage indices.

func (m Matrix) ScaleX() float32 { return m[0] }
func (m Matrix) SkewY() float32 { return m[1] }
func (m Matrix) Persp0() float32 { return m[2] }
func (m Matrix) SkewX() float32 { return m[3] }
func (m Matrix) ScaleY() float32 { return m[4] }
func (m Matrix) Persp1() float32 { return m[5] }
func (m Matrix) TransX() float32 { return m[6] }
func (m Matrix) TransY() float32 { return m[7] }
func (m Matrix) Persp2() float32 { return m[8] }

// IsIdentity returns true if the matrix is exactly the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// SetScale sets the ScaleX and ScaleY components of the matrix,
// leaving all other components unchanged, and returns the matrix.
func (m *Matrix) SetScale(sx, sy float32) *Matrix {
	m[0] = sx
	m[4] = sy
	return m
}

// Scale returns m composed with a scale of sx, sy: m.Mul(scale).
// The receiver is not modified.
func (m Matrix) Scale(sx, sy float32) Matrix {
	d := Identity()
	d.SetScale(sx, sy)
	return m.Mul(d)
}

// SetRotate sets the 2x2 linear block of the matrix to a rotation
// by the given angle in radians, and returns the matrix.
// The translation and perspective components are unchanged.
func (m *Matrix) SetRotate(radians float32) *Matrix {
	sin, cos := Sincos(radians)
	m[0] = cos
	m[1] = sin
	m[3] = -sin
	m[4] = cos
	return m
}

// Rotate returns m composed with a rotation by the given angle
// in radians: m.Mul(rotation). The receiver is not modified.
func (m Matrix) Rotate(radians float32) Matrix {
	d := Identity()
	d.SetRotate(radians)
	return m.Mul(d)
}

// SetTranslate sets the TransX and TransY components of the matrix
// and returns the matrix.
func (m *Matrix) SetTranslate(dx, dy float32) *Matrix {
	m[6] = dx
	m[7] = dy
	return m
}

// Translate returns m composed with a translation by dx, dy:
// m.Mul(translation). Unlike [Matrix.PostTranslate], the offset
// is transformed by the existing linear part of m.
func (m Matrix) Translate(dx, dy float32) Matrix {
	d := Identity()
	d.SetTranslate(dx, dy)
	return m.Mul(d)
}

// PostTranslate adds dx, dy directly to the translation components
// of the matrix, and returns the matrix.
func (m *Matrix) PostTranslate(dx, dy float32) *Matrix {
	m[6] += dx
	m[7] += dy
	return m
}

// Mul returns the full 3x3 matrix product m x o.
// When mapping points, o is applied first and then m.
func (m Matrix) Mul(o Matrix) Matrix {
	var r Matrix
	r[0] = m.ScaleX()*o.ScaleX() + m.SkewX()*o.SkewY() + m.TransX()*o.Persp0()
	r[3] = m.ScaleX()*o.SkewX() + m.SkewX()*o.ScaleY() + m.TransX()*o.Persp1()
	r[6] = m.ScaleX()*o.TransX() + m.SkewX()*o.TransY() + m.TransX()*o.Persp2()

	r[1] = m.SkewY()*o.ScaleX() + m.ScaleY()*o.SkewY() + m.TransY()*o.Persp0()
	r[4] = m.SkewY()*o.SkewX() + m.ScaleY()*o.ScaleY() + m.TransY()*o.Persp1()
	r[7] = m.SkewY()*o.TransX() + m.ScaleY()*o.TransY() + m.TransY()*o.Persp2()

	r[2] = m.Persp0()*o.ScaleX() + m.Persp1()*o.SkewY() + m.Persp2()*o.Persp0()
	r[5] = m.Persp0()*o.SkewX() + m.Persp1()*o.ScaleY() + m.Persp2()*o.Persp1()
	r[8] = m.Persp0()*o.TransX() + m.Persp1()*o.TransY() + m.Persp2()*o.Persp2()
	return r
}

// MapXY maps the given point through the affine part of the matrix.
// The perspective row is ignored: there is no perspective divide.
func (m Matrix) MapXY(x, y float32) (float32, float32) {
	return m[0]*x + m[3]*y + m[6], m[1]*x + m[4]*y + m[7]
}

// MapPoint maps the given point through the affine part of the matrix.
// See [Matrix.MapXY].
func (m Matrix) MapPoint(p Vector2) Vector2 {
	x, y := m.MapXY(p.X, p.Y)
	return Vector2{x, y}
}

// MapPoints maps the interleaved x, y values in pts in place.
// It returns an error wrapping [ErrInvalidPoints], and leaves pts
// untouched, if pts is empty or has an odd length.
func (m Matrix) MapPoints(pts []float32) error {
	if len(pts) == 0 || len(pts)%2 != 0 {
		return fmt.Errorf("MapPoints: got %d values: %w", len(pts), ErrInvalidPoints)
	}
	for i := 0; i+1 < len(pts); i += 2 {
		pts[i], pts[i+1] = m.MapXY(pts[i], pts[i+1])
	}
	return nil
}

// CanvasTransformParams returns the six affine components in the
// order expected by canvas-style setTransform calls:
// (ScaleX, SkewY, SkewX, ScaleY, TransX, TransY).
func (m Matrix) CanvasTransformParams() [6]float32 {
	return [6]float32{m.ScaleX(), m.SkewY(), m.SkewX(), m.ScaleY(), m.TransX(), m.TransY()}
}
