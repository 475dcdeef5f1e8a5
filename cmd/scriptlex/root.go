// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pdfstudio/scriptcore/base/logx"
	"github.com/pdfstudio/scriptcore/scripting"
	"github.com/pdfstudio/scriptcore/text/codeintel"
	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/spf13/cobra"
)

// app holds the global flags and the settings shared by the commands.
type app struct {
	configFile  string
	verbose     bool
	veryVerbose bool
	quiet       bool

	// run executes the script before completion and hints, so that
	// the objects it defines are known.
	run     bool
	timeout time.Duration

	settings *codeintel.Settings
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "scriptlex",
		Short:        "Lex and analyze script editor files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(a.veryVerbose, a.verbose, a.quiet)
			logx.SetDefaultLogger()
			st, err := codeintel.LoadSettings(a.configFile)
			if err != nil {
				return err
			}
			a.settings = st
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", codeintel.DefaultSettingsPath, "settings file")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "print informational messages")
	pf.BoolVar(&a.veryVerbose, "vv", false, "print debug messages")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "only print errors")
	pf.BoolVar(&a.run, "run", false, "run the script to resolve its objects for complete and hint")
	pf.DurationVar(&a.timeout, "timeout", 2*time.Second, "time limit for --run")

	root.AddCommand(
		newHighlightCmd(a),
		newOutlineCmd(a),
		newMatchCmd(a),
		newCompleteCmd(a),
		newHintCmd(a),
		newWatchCmd(a),
	)
	return root
}

// open returns a new session on the given file.
func (a *app) open(ctx context.Context, fn string) (*codeintel.Session, error) {
	b, err := os.ReadFile(fn)
	if err != nil {
		return nil, err
	}
	eng := scripting.NewEngine()
	if a.run {
		rctx, cancel := context.WithTimeout(ctx, a.timeout)
		defer cancel()
		if _, err := eng.Execute(rctx, string(b)); err != nil {
			return nil, fmt.Errorf("running %s: %w", fn, err)
		}
	}
	s := codeintel.NewSession(a.settings, eng)
	s.LoadDocument(fn, string(b))
	return s, nil
}

// parsePos parses a 1-based LINE:COL cursor position.
func parsePos(s string) (textpos.Pos, error) {
	ls, cs, ok := strings.Cut(s, ":")
	if !ok {
		return textpos.Pos{}, fmt.Errorf("position %q is not LINE:COL", s)
	}
	ln, err := strconv.Atoi(ls)
	if err != nil {
		return textpos.Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	ch, err := strconv.Atoi(cs)
	if err != nil {
		return textpos.Pos{}, fmt.Errorf("position %q: %w", s, err)
	}
	if ln < 1 || ch < 1 {
		return textpos.Pos{}, fmt.Errorf("position %q is not 1-based", s)
	}
	return textpos.Pos{Line: ln - 1, Char: ch - 1}, nil
}

// formatPos formats a position as 1-based LINE:COL.
func formatPos(p textpos.Pos) string {
	return fmt.Sprintf("%d:%d", p.Line+1, p.Char+1)
}
