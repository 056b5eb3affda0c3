// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = New("test error")

func TestLog(t *testing.T) {
	assert.NoError(t, Log(nil))
	assert.Equal(t, errTest, Log(errTest))

	assert.Equal(t, 5, Log1(5, nil))
	assert.Equal(t, 7, Log1(7, errTest))
}

func TestMust(t *testing.T) {
	assert.NotPanics(t, func() { Must(nil) })
	assert.Panics(t, func() { Must(errTest) })
	assert.Equal(t, "x", Must1("x", nil))
	assert.Panics(t, func() { Must1("x", errTest) })
}

func TestWrappers(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", errTest)
	assert.True(t, Is(wrapped, errTest))

	var target *wrapError
	assert.False(t, As(wrapped, &target))

	joined := Join(errTest, New("other"))
	assert.True(t, Is(joined, errTest))
}

type wrapError struct{}

func (*wrapError) Error() string { return "wrap" }
