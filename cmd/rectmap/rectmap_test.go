// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"cogentcore.org/canvasmath/base/tolassert"
	"cogentcore.org/canvasmath/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenScene(t *testing.T) {
	for _, fn := range []string{"testdata/scene.toml", "testdata/scene.yaml"} {
		sc, err := OpenScene(fn)
		require.NoError(t, err, fn)
		assert.Equal(t, "translate(100, 50)", sc.Transform, fn)
		assert.Equal(t, []Op{{Op: "rotate", Angle: 90}, {Op: "post-translate", X: 1, Y: 2}}, sc.Ops, fn)
		assert.Equal(t, [][]float32{{0, 0, 10, 10}, {5, 5, 20, 20}, {3, 3, 3, 3}}, sc.Rects, fn)
		assert.Equal(t, []float32{0, 0, 10, 0}, sc.Points, fn)
	}

	_, err := OpenScene("testdata/missing.toml")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSceneMatrix(t *testing.T) {
	sc, err := OpenScene("testdata/scene.toml")
	require.NoError(t, err)
	m, err := sc.Matrix()
	require.NoError(t, err)
	want := math32.Matrix{0, 1, 0, -1, 0, 0, 101, 52, 1}
	tolassert.EqualTolSlice(t, want[:], m[:], 1e-6)

	sc = &Scene{Ops: []Op{
		{Op: "set-scale", X: 2, Y: 3},
		{Op: "translate", X: 1, Y: 1},
		{Op: "scale", X: 0.5, Y: 0.5},
		{Op: "set-translate", X: 7, Y: 8},
	}}
	m, err = sc.Matrix()
	require.NoError(t, err)
	assert.Equal(t, math32.Matrix{1, 0, 0, 0, 1.5, 0, 7, 8, 1}, m)

	sc = &Scene{Transform: "scale(2)", Ops: []Op{{Op: "set-rotate", Angle: 180}}}
	m, err = sc.Matrix()
	require.NoError(t, err)
	tolassert.EqualTol(t, -1, m.ScaleX(), 1e-6)

	bad, err := OpenScene("testdata/bad.toml")
	require.NoError(t, err)
	_, err = bad.Matrix()
	assert.ErrorContains(t, err, `unknown op "shear"`)
	_, err = bad.RectFs()
	assert.ErrorContains(t, err, "expected 4 edges, got 3")

	_, err = (&Scene{Transform: "spin(3)"}).Matrix()
	assert.Error(t, err)
}

func TestMapScene(t *testing.T) {
	sc, err := OpenScene("testdata/scene.yaml")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, MapScene(&buf, sc))
	out := buf.String()
	assert.Contains(t, out, "matrix: matrix(")
	assert.Contains(t, out, "101, 52)\n")
	assert.Contains(t, out, "RectF(0, 0, 10, 10) -> RectF(91, 52, 101, 62) rect(91, 52, 10, 10)\n")
	assert.Contains(t, out, "RectF(5, 5, 20, 20) -> RectF(81, 57, 96, 72) rect(81, 57, 15, 15)\n")
	assert.Contains(t, out, "points: [0 0 10 0] -> [101 52 101 62]\n")
	// the scene points are not modified
	assert.Equal(t, []float32{0, 0, 10, 0}, sc.Points)

	sc.Points = []float32{1, 2, 3}
	err = MapScene(&buf, sc)
	assert.ErrorIs(t, err, math32.ErrInvalidPoints)
}

func TestUnionScene(t *testing.T) {
	sc, err := OpenScene("testdata/scene.toml")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, UnionScene(&buf, sc))
	assert.Equal(t, "union: RectF(0, 0, 20, 20)\n"+
		"mapped union: RectF(81, 52, 101, 72)\n"+
		"empty: RectF(3, 3, 3, 3)\n", buf.String())
}

func TestRootCmd(t *testing.T) {
	var buf bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"union", "testdata/scene.toml"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "union: RectF(0, 0, 20, 20)")

	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"map", "testdata/bad.toml"})
	assert.Error(t, cmd.Execute())

	cmd = newRootCmd()
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"map"})
	assert.Error(t, cmd.Execute())
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "scene.toml")
	require.NoError(t, os.WriteFile(fn, []byte(`transform = "none"`), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var calls atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- watch(ctx, fn, func() { calls.Add(1) })
	}()

	// writes to other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), nil, 0666))

	deadline := time.Now().Add(5 * time.Second)
	for calls.Load() == 0 && time.Now().Before(deadline) {
		require.NoError(t, os.WriteFile(fn, []byte(`transform = "scale(2)"`), 0666))
		time.Sleep(50 * time.Millisecond)
	}
	assert.NotZero(t, calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not return after cancel")
	}
}
