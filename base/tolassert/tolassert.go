// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality
// of numbers with tolerance (in other words, it checks whether numbers
// are about equal), built on top of testify/assert.
package tolassert

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Float is a floating point number type.
type Float interface {
	~float32 | ~float64
}

// EqualTol asserts that the given two numbers are about equal,
// within the given tolerance. Two NaN values are considered equal.
func EqualTol[T Float](t assert.TestingT, expected T, actual T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	e, a := float64(expected), float64(actual)
	if e == a || (math.IsNaN(e) && math.IsNaN(a)) {
		return true
	}
	if math.Abs(e-a) <= float64(tolerance) {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("Not equal within tolerance %v: \n"+
		"expected: %v\n"+
		"actual  : %v", tolerance, expected, actual), msgAndArgs...)
}

// EqualTolSlice asserts that the given two slices of numbers are
// the same length and about equal element by element, within the
// given tolerance.
func EqualTolSlice[T Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if h, ok := t.(interface{ Helper() }); ok {
		h.Helper()
	}
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	ok := true
	for i := range expected {
		if !EqualTol(t, expected[i], actual[i], tolerance, append([]any{"index %d", i}, msgAndArgs...)...) {
			ok = false
		}
	}
	return ok
}
