// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "golang.org/x/image/math/f32"

// ToAff3 returns the affine part of the matrix as an [f32.Aff3],
// which is row major with an implicit [0 0 1] bottom row.
func (m Matrix) ToAff3() f32.Aff3 {
	return f32.Aff3{
		m.ScaleX(), m.SkewX(), m.TransX(),
		m.SkewY(), m.ScaleY(), m.TransY(),
	}
}

// MatrixFromAff3 returns a new [Matrix] from the given [f32.Aff3],
// with an identity perspective row.
func MatrixFromAff3(a f32.Aff3) Matrix {
	return Matrix{
		a[0], a[3], 0,
		a[1], a[4], 0,
		a[2], a[5], 1,
	}
}

// ToMat3 returns the full matrix as a row major [f32.Mat3].
// Note that this is the transpose of the storage order of [Matrix].
func (m Matrix) ToMat3() f32.Mat3 {
	return f32.Mat3{
		m.ScaleX(), m.SkewX(), m.TransX(),
		m.SkewY(), m.ScaleY(), m.TransY(),
		m.Persp0(), m.Persp1(), m.Persp2(),
	}
}

// MatrixFromMat3 returns a new [Matrix] from the given row major [f32.Mat3].
func MatrixFromMat3(a f32.Mat3) Matrix {
	return Matrix{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}
