// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"cogentcore.org/canvasmath/base/iox/tomlx"
	"cogentcore.org/canvasmath/base/iox/yamlx"
	"cogentcore.org/canvasmath/math32"
)

// Scene is a set of transform operations, rectangles and points
// read from a TOML or YAML file.
type Scene struct {

	// Transform is an optional CSS / SVG transform list that
	// the matrix starts from, such as "translate(10, 20) scale(2)".
	Transform string `toml:"transform" yaml:"transform"`

	// Ops are applied in order after Transform.
	Ops []Op `toml:"ops" yaml:"ops"`

	// Rects are given as left, top, right, bottom edges.
	Rects [][]float32 `toml:"rects" yaml:"rects"`

	// Points are interleaved x, y values.
	Points []float32 `toml:"points" yaml:"points"`
}

// Op is one matrix operation in a [Scene].
type Op struct {

	// Op is one of scale, set-scale, rotate, set-rotate,
	// translate, set-translate or post-translate.
	Op string `toml:"op" yaml:"op"`

	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`

	// Angle is in degrees, for rotate and set-rotate.
	Angle float32 `toml:"angle" yaml:"angle"`
}

// OpenScene reads a [Scene] from the given file, using YAML for
// .yaml and .yml files and TOML otherwise.
func OpenScene(filename string) (*Scene, error) {
	sc := &Scene{}
	var err error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		err = yamlx.Open(sc, filename)
	default:
		err = tomlx.Open(sc, filename)
	}
	if err != nil {
		return nil, err
	}
	slog.Debug("opened scene", "file", filename, "ops", len(sc.Ops), "rects", len(sc.Rects), "points", len(sc.Points))
	return sc, nil
}

// Matrix returns the matrix for the scene transform and ops.
func (sc *Scene) Matrix() (math32.Matrix, error) {
	m, err := math32.ParseMatrix(sc.Transform)
	if err != nil {
		return m, err
	}
	for i, op := range sc.Ops {
		switch strings.ToLower(op.Op) {
		case "scale":
			m = m.Scale(op.X, op.Y)
		case "set-scale":
			m.SetScale(op.X, op.Y)
		case "rotate":
			m = m.Rotate(math32.DegToRad(op.Angle))
		case "set-rotate":
			m.SetRotate(math32.DegToRad(op.Angle))
		case "translate":
			m = m.Translate(op.X, op.Y)
		case "set-translate":
			m.SetTranslate(op.X, op.Y)
		case "post-translate":
			m.PostTranslate(op.X, op.Y)
		default:
			return m, fmt.Errorf("ops[%d]: unknown op %q", i, op.Op)
		}
	}
	return m, nil
}

// RectFs returns the scene rects, which must each have four edges.
func (sc *Scene) RectFs() ([]math32.RectF, error) {
	rs := make([]math32.RectF, len(sc.Rects))
	for i, e := range sc.Rects {
		if len(e) != 4 {
			return nil, fmt.Errorf("rects[%d]: expected 4 edges, got %d", i, len(e))
		}
		rs[i] = math32.RectFEdges(e[0], e[1], e[2], e[3])
	}
	return rs, nil
}
