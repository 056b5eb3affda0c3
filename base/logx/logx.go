// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog logger setup and
// colored printing of user-facing errors and warnings.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through a command line flag before [SetDefaultLogger].
// It defaults to [slog.LevelInfo], or to [slog.LevelDebug] with the
// debug build tag and [slog.LevelWarn] with the release build tag.
var UserLevel = defaultUserLevel

// Output is where the logger and the Println functions write.
var Output io.Writer = os.Stderr

var level slog.LevelVar

// SetDefaultLogger sets the default [slog] logger to a text handler
// writing to [Output] at [UserLevel].
func SetDefaultLogger() {
	level.Set(UserLevel)
	slog.SetDefault(slog.New(slog.NewTextHandler(Output, &slog.HandlerOptions{Level: &level})))
}

// PrintlnError prints the given values in red to [Output]
// if [UserLevel] is at or below [slog.LevelError].
func PrintlnError(a ...any) {
	printLevel(slog.LevelError, "1", a...)
}

// PrintlnWarning prints the given values in yellow to [Output]
// if [UserLevel] is at or below [slog.LevelWarn].
func PrintlnWarning(a ...any) {
	printLevel(slog.LevelWarn, "3", a...)
}

// PrintlnInfo prints the given values without color to [Output]
// if [UserLevel] is at or below [slog.LevelInfo].
func PrintlnInfo(a ...any) {
	printLevel(slog.LevelInfo, "", a...)
}

func printLevel(l slog.Level, color string, a ...any) {
	if UserLevel > l {
		return
	}
	out := termenv.NewOutput(Output)
	s := out.String(fmt.Sprint(a...))
	if color != "" {
		s = s.Foreground(out.Color(color))
	}
	fmt.Fprintln(Output, s.String())
}
