// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
	"github.com/pdfstudio/scriptcore/text/codeintel"
	"github.com/pdfstudio/scriptcore/text/highlighting"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/spf13/cobra"
)

// formatterFor returns the chroma formatter suited to the color
// profile of the given output.
func formatterFor(w io.Writer) string {
	switch termenv.NewOutput(w).EnvColorProfile() {
	case termenv.TrueColor:
		return "terminal16m"
	case termenv.ANSI256:
		return "terminal256"
	case termenv.ANSI:
		return "terminal"
	}
	return "noop"
}

func newHighlightCmd(a *app) *cobra.Command {
	var format, style string
	cmd := &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a file with syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = formatterFor(cmd.OutOrStdout())
			}
			if style == "" {
				style = a.settings.Style
			}
			return highlighting.Render(cmd.OutOrStdout(), s.Lexer, format, style)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "chroma formatter (html, terminal256, noop...); default depends on the terminal")
	cmd.Flags().StringVarP(&style, "style", "s", "", "chroma style; default from settings")
	return cmd
}

func newOutlineCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "outline FILE",
		Short: "List the functions of a file with their extents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printOutline(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

// printOutline prints one row per function: its lines, nesting and header.
func printOutline(w io.Writer, s *codeintel.Session) {
	const width = 48
	depth := 0
	for ln := range s.Lines.NumLines() {
		switch s.Folds.Kind(ln) {
		case lines.FunctionStart:
			ext := fmt.Sprintf("%d", ln+1)
			if end := s.Folds.End(ln); end >= 0 {
				ext = fmt.Sprintf("%d-%d", ln+1, end+1)
			}
			head := strings.Repeat("  ", depth) + strings.TrimSpace(s.Lines.Line(ln).String())
			fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(runewidth.Truncate(head, width, "…"), width), ext)
			depth++
		case lines.FunctionEnd:
			if !s.Lines.Line(ln).OneLine {
				depth = max(depth-1, 0)
			}
		}
	}
}

func newMatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "match FILE LINE:COL",
		Short: "Print the bracket matching the one at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[1])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			r, ok := s.Matcher.Match(pos)
			if !ok {
				return fmt.Errorf("no matching bracket at %s", args[1])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", formatPos(r.Open), formatPos(r.Close), r.Status)
			return nil
		},
	}
}

func newCompleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "complete FILE LINE:COL",
		Short: "Print the completions at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[1])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			res := s.Completer.Complete(pos)
			switch {
			case res.Insert != nil:
				fmt.Fprintf(w, "insert %q\n", res.Insert.NewText)
			case res.List != nil:
				wd := 0
				for _, c := range res.List.Items {
					wd = max(wd, runewidth.StringWidth(c.Text))
				}
				for _, c := range res.List.Items {
					fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(c.Text, wd), c.Category)
				}
			}
			return nil
		},
	}
}

func newHintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "hint FILE LINE:COL",
		Short: "Print the argument hint at a position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pos, err := parsePos(args[1])
			if err != nil {
				return err
			}
			s, err := a.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			h, ok := s.Hinter.Locate(pos)
			if !ok {
				return fmt.Errorf("no argument hint at %s", args[1])
			}
			for _, sig := range h.All() {
				fmt.Fprintln(cmd.OutOrStdout(), sig)
			}
			return nil
		},
	}
}
