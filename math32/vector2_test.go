// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/math/fixed"
)

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{15, -5}, Vector2FromPoint(image.Pt(15, -5)))
	assert.Equal(t, Vector2{8, 3}, Vector2FromFixed(fixed.P(8, 3)))
	assert.Equal(t, Vector2{-2.5, 0.25}, Vector2FromFixed(fixed.Point26_6{X: -160, Y: 16}))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	assert.Equal(t, Vector2{2, 9}, v.Add(Vec2(3, 2)))
	assert.Equal(t, Vector2{-4, 5}, v.Sub(Vec2(3, 2)))
	assert.Equal(t, Vector2{-2, 14}, v.MulScalar(2))
	assert.Equal(t, Vector2{-1, 2}, v.Min(Vec2(3, 2)))
	assert.Equal(t, Vector2{3, 7}, v.Max(Vec2(3, 2)))
	assert.Equal(t, "(-1, 7)", v.String())

	f := Vec2(1.5, -1.5)
	assert.Equal(t, image.Pt(1, -2), f.ToPointFloor())
	assert.Equal(t, image.Pt(2, -1), f.ToPointCeil())
	assert.Equal(t, fixed.Point26_6{X: 96, Y: -96}, f.ToFixed())
}
