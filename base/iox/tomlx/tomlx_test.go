// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testStruct struct {
	Name  string
	Value float32
	Edges []float32
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.tomlx")
	in := &testStruct{Name: "rect", Value: 1.5, Edges: []float32{0, 0, 10, 20}}
	require.NoError(t, Save(in, fn))

	out := &testStruct{}
	require.NoError(t, Open(out, fn))
	assert.Equal(t, in, out)
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.tomlx")
	b := filepath.Join(dir, "b.tomlx")
	require.NoError(t, Save(&testStruct{Name: "a", Value: 1}, a))
	require.NoError(t, Save(&testStruct{Name: "b"}, b))

	out := &testStruct{}
	require.NoError(t, OpenFiles(out, a, b))
	assert.Equal(t, "b", out.Name)

	err := OpenFiles(out, filepath.Join(dir, "missing.tomlx"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadBytesError(t *testing.T) {
	out := &testStruct{}
	assert.Error(t, ReadBytes(out, []byte("Value = [not valid")))
}
