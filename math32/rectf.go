// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"image"

	"golang.org/x/image/math/fixed"
)

// RectF is an axis-aligned rectangle defined by its four edges.
// There is no invariant that Left <= Right or Top <= Bottom:
// a rectangle that fails Left < Right && Top < Bottom is empty
// (degenerate), which [RectF.Contains] and [RectF.Union] honor.
// The rectangle is half-open: it includes its Left and Top edges
// and excludes its Right and Bottom edges.
type RectF struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// RectFZero returns a new all-zero [RectF], which is empty.
func RectFZero() RectF {
	return RectF{}
}

// RectFFrom returns a copy of the given [RectF].
func RectFFrom(o RectF) RectF {
	return RectF{o.Left, o.Top, o.Right, o.Bottom}
}

// RectFEdges returns a new [RectF] with the given edges.
// The edges are not validated.
func RectFEdges(left, top, right, bottom float32) RectF {
	return RectF{left, top, right, bottom}
}

// RectFFromRect returns a new [RectF] from the given [image.Rectangle].
func RectFFromRect(r image.Rectangle) RectF {
	return RectF{float32(r.Min.X), float32(r.Min.Y), float32(r.Max.X), float32(r.Max.Y)}
}

// RectFFromFixed returns a new [RectF] from the given [fixed.Rectangle26_6].
func RectFFromFixed(r fixed.Rectangle26_6) RectF {
	min, max := Vector2FromFixed(r.Min), Vector2FromFixed(r.Max)
	return RectF{min.X, min.Y, max.X, max.Y}
}

func (r RectF) LeftTop() Vector2 { return Vector2{r.Left, r.Top} }
func (r RectF) RightTop() Vector2 { return Vector2{r.Right, r.Top} }
func (r RectF) LeftBottom() Vector2 { return Vector2{r.Left, r.Bottom} }
func (r RectF) RightBottom() Vector2 { return Vector2{r.Right, r.Bottom} }

// Width returns Right - Left, which may be negative.
func (r RectF) Width() float32 {
	return r.Right - r.Left
}

// Height returns Bottom - Top, which may be negative.
func (r RectF) Height() float32 {
	return r.Bottom - r.Top
}

// Size returns the width and height as a vector.
func (r RectF) Size() Vector2 {
	return Vector2{r.Width(), r.Height()}
}

// Center returns the center point of the rectangle.
func (r RectF) Center() Vector2 {
	return r.LeftTop().Add(r.RightBottom()).MulScalar(0.5)
}

// IsEmpty returns true if the rectangle is degenerate:
// Left >= Right or Top >= Bottom (or any edge is NaN).
func (r RectF) IsEmpty() bool {
	return !(r.Left < r.Right && r.Top < r.Bottom)
}

// Equals returns true if all four edges are exactly equal.
func (r RectF) Equals(o RectF) bool {
	return r.Left == o.Left && r.Top == o.Top && r.Right == o.Right && r.Bottom == o.Bottom
}

// Intersects returns true if this rectangle and the rectangle with
// the given edges overlap on both axes. Rectangles that only share
// an edge do not intersect.
func (r RectF) Intersects(left, top, right, bottom float32) bool {
	return r.Left < right && left < r.Right && r.Top < bottom && top < r.Bottom
}

// IntersectsRect is [RectF.Intersects] for another [RectF].
func (r RectF) IntersectsRect(o RectF) bool {
	return r.Intersects(o.Left, o.Top, o.Right, o.Bottom)
}

// Contains returns true if the rectangle is not empty and the
// given point is within [Left, Right) x [Top, Bottom).
func (r RectF) Contains(x, y float32) bool {
	return !r.IsEmpty() && x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// ContainsPoint is [RectF.Contains] for a [Vector2].
func (r RectF) ContainsPoint(p Vector2) bool {
	return r.Contains(p.X, p.Y)
}

// MapRect maps the four corners of the rectangle through the given
// matrix and returns the axis-aligned bounding box of the results.
func (r RectF) MapRect(m *Matrix) RectF {
	cs := [4]Vector2{
		m.MapPoint(r.LeftTop()),
		m.MapPoint(r.RightTop()),
		m.MapPoint(r.LeftBottom()),
		m.MapPoint(r.RightBottom()),
	}
	min, max := cs[0], cs[0]
	for _, c := range cs[1:] {
		min = min.Min(c)
		max = max.Max(c)
	}
	return RectF{min.X, min.Y, max.X, max.Y}
}

// Union grows the rectangle to also enclose the rectangle with the
// given edges. An empty argument is ignored, and an empty receiver
// is replaced by the argument.
func (r *RectF) Union(left, top, right, bottom float32) {
	if !(left < right && top < bottom) {
		return
	}
	if r.IsEmpty() {
		*r = RectF{left, top, right, bottom}
		return
	}
	if r.Left > left {
		r.Left = left
	}
	if r.Top > top {
		r.Top = top
	}
	if r.Right < right {
		r.Right = right
	}
	if r.Bottom < bottom {
		r.Bottom = bottom
	}
}

// UnionRect is [RectF.Union] for another [RectF].
func (r *RectF) UnionRect(o RectF) {
	r.Union(o.Left, o.Top, o.Right, o.Bottom)
}

// Offset returns the rectangle translated by dx, dy.
func (r RectF) Offset(dx, dy float32) RectF {
	return RectF{r.Left + dx, r.Top + dy, r.Right + dx, r.Bottom + dy}
}

// CanvasRect returns (Left, Top, Width, Height), the argument order
// of canvas-style rect calls.
func (r RectF) CanvasRect() [4]float32 {
	return [4]float32{r.Left, r.Top, r.Width(), r.Height()}
}

// ToRect returns the [image.Rectangle] version of this rectangle,
// using floor for the minimum and ceil for the maximum edges.
func (r RectF) ToRect() image.Rectangle {
	return image.Rectangle{Min: r.LeftTop().ToPointFloor(), Max: r.RightBottom().ToPointCeil()}
}

// ToFixed returns the [fixed.Rectangle26_6] version of this rectangle.
func (r RectF) ToFixed() fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{Min: r.LeftTop().ToFixed(), Max: r.RightBottom().ToFixed()}
}

// String implements the [fmt.Stringer] interface.
func (r RectF) String() string {
	return fmt.Sprintf("RectF(%g, %g, %g, %g)", r.Left, r.Top, r.Right, r.Bottom)
}
