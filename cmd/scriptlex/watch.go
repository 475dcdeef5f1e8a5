// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pdfstudio/scriptcore/base/errors"
	"github.com/pdfstudio/scriptcore/text/codeintel"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Print the outline of a file each time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			s, err := a.open(ctx, args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			printOutline(w, s)
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// editors often save by renaming, so watch the directory
			if err := watcher.Add(filepath.Dir(args[0])); err != nil {
				return err
			}
			return watch(ctx, watcher, args[0], s, w)
		},
	}
}

// watch updates the session from the file on each change reported
// by the watcher, until the context is done.
func watch(ctx context.Context, watcher *fsnotify.Watcher, fn string, s *codeintel.Session, w io.Writer) error {
	fn = filepath.Clean(fn)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fn || !ev.Has(fsnotify.Write|fsnotify.Create) {
				continue
			}
			b, err := os.ReadFile(fn)
			if errors.Log(err) != nil {
				continue
			}
			s.Update(string(b))
			slog.Info("watch: updated", "file", fn, "lines", s.Lines.NumLines())
			fmt.Fprintf(w, "-- %s\n", fn)
			printOutline(w, s)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("watch", "file", fn, "err", err)
		}
	}
}
