// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command rectmap maps rectangles and points from a TOML or YAML
// scene file through a 2D transform, printing the results with
// canvas-style parameters.
package main

import (
	"context"
	"os"
	"os/signal"

	"cogentcore.org/canvasmath/base/logx"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		logx.PrintlnError(err)
		os.Exit(1)
	}
}
