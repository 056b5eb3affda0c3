// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"slices"

	"cogentcore.org/canvasmath/math32"
)

// MapScene writes the scene matrix, its canvas parameters, and
// the mapped rects and points to w.
func MapScene(w io.Writer, sc *Scene) error {
	m, err := sc.Matrix()
	if err != nil {
		return err
	}
	rs, err := sc.RectFs()
	if err != nil {
		return err
	}
	p := m.CanvasTransformParams()
	fmt.Fprintf(w, "matrix: %s\n", m)
	fmt.Fprintf(w, "setTransform(%g, %g, %g, %g, %g, %g)\n", p[0], p[1], p[2], p[3], p[4], p[5])
	for _, r := range rs {
		mr := r.MapRect(&m)
		c := mr.CanvasRect()
		fmt.Fprintf(w, "%s -> %s rect(%g, %g, %g, %g)\n", r, mr, c[0], c[1], c[2], c[3])
	}
	if len(sc.Points) > 0 {
		pts := slices.Clone(sc.Points)
		if err := m.MapPoints(pts); err != nil {
			return fmt.Errorf("points: %w", err)
		}
		fmt.Fprintf(w, "points: %v -> %v\n", sc.Points, pts)
	}
	return nil
}

// UnionScene writes the union of the scene rects, before and
// after mapping them through the scene matrix, to w.
func UnionScene(w io.Writer, sc *Scene) error {
	m, err := sc.Matrix()
	if err != nil {
		return err
	}
	rs, err := sc.RectFs()
	if err != nil {
		return err
	}
	var u, mu math32.RectF
	for _, r := range rs {
		u.UnionRect(r)
		mu.UnionRect(r.MapRect(&m))
	}
	fmt.Fprintf(w, "union: %s\n", u)
	fmt.Fprintf(w, "mapped union: %s\n", mu)
	for _, r := range rs {
		if r.IsEmpty() {
			fmt.Fprintf(w, "empty: %s\n", r)
		}
	}
	return nil
}
