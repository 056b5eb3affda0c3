// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/canvasmath/base/errors"
	"cogentcore.org/canvasmath/base/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// Config is the command line configuration shared by all commands.
type Config struct {

	// Verbose shows debug log messages.
	Verbose bool

	// Watch re-runs the command whenever the scene file is written.
	Watch bool
}

func newRootCmd() *cobra.Command {
	cfg := &Config{}
	root := &cobra.Command{
		Use:           "rectmap",
		Short:         "Map rectangles and points through a 2D transform",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if cfg.Verbose {
				logx.UserLevel = slog.LevelDebug
			}
			logx.SetDefaultLogger()
		},
	}
	root.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "show debug messages")
	root.PersistentFlags().BoolVarP(&cfg.Watch, "watch", "w", false, "re-run whenever the scene file changes")

	root.AddCommand(sceneCmd(cfg, "map", "Print the matrix and the mapped rects and points of a scene", MapScene))
	root.AddCommand(sceneCmd(cfg, "union", "Print the union of the scene rects before and after mapping", UnionScene))
	return root
}

// sceneCmd returns a command that runs fun on the scene file given
// as its only argument.
func sceneCmd(cfg *Config, use, short string, fun func(w io.Writer, sc *Scene) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <scene-file>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			run := func() error {
				sc, err := OpenScene(file)
				if err != nil {
					return err
				}
				return fun(cmd.OutOrStdout(), sc)
			}
			if !cfg.Watch {
				return run()
			}
			if err := run(); err != nil {
				logx.PrintlnError(err)
			}
			return watch(cmd.Context(), file, func() {
				errors.Log(run())
			})
		},
	}
}

// watch calls fun each time the given file is written or re-created,
// until the context is done.
func watch(ctx context.Context, file string, fun func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()
	// watch the directory so that editors that replace the file are seen
	if err := w.Add(filepath.Dir(file)); err != nil {
		return err
	}
	target := filepath.Clean(file)
	slog.Info("watching scene file", "file", target)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			slog.Debug("scene file changed", "op", ev.Op.String())
			fun()
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			errors.Log(err)
		}
	}
}
