// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fold provides function folding: collapsing the body of a
// function while its header line stays visible. Function boundaries
// are the line kinds computed by the lexer.
package fold

import (
	"strings"
	"unicode"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
)

// Analyzer maintains the fold state and line visibility of the
// document of its Lexer.
type Analyzer struct {

	// Lexer provides the line kinds.
	Lexer *lexer.Lexer

	// text version for which visibility is current, -1 if none
	version int
}

// NewAnalyzer returns a new Analyzer for the given lexer.
func NewAnalyzer(lx *lexer.Lexer) *Analyzer {
	return &Analyzer{Lexer: lx, version: -1}
}

// Kind returns the fold classification of the given line.
func (fa *Analyzer) Kind(ln int) lines.Kind {
	return fa.Lexer.Kind(ln)
}

// IsFoldable returns true if the given line starts a function.
func (fa *Analyzer) IsFoldable(ln int) bool {
	return fa.Kind(ln) == lines.FunctionStart
}

// End returns the FunctionEnd line closing the function started at
// the given line, or -1 if the line is not a FunctionStart or the
// function is not closed.
func (fa *Analyzer) End(ln int) int {
	if !fa.IsFoldable(ln) {
		return -1
	}
	ls := fa.Lexer.Lines
	depth := 0
	for k := ln + 1; k < ls.NumLines(); k++ {
		l := fa.Lexer.EnsureLexed(k)
		switch {
		case l.Kind == lines.FunctionStart:
			depth++
		case l.Kind == lines.FunctionEnd && !l.OneLine:
			if depth == 0 {
				return k
			}
			depth--
		}
	}
	return -1
}

// Collapse hides the body of the function started at the given line.
// Fold states of nested functions are kept. It returns false if the
// line does not start a function.
func (fa *Analyzer) Collapse(ln int) bool {
	return fa.setOpen(ln, false)
}

// Expand shows the body of the function started at the given line,
// except for nested functions that are collapsed themselves.
func (fa *Analyzer) Expand(ln int) bool {
	return fa.setOpen(ln, true)
}

// Toggle collapses or expands the function started at the given line.
func (fa *Analyzer) Toggle(ln int) bool {
	if !fa.IsFoldable(ln) {
		return false
	}
	return fa.setOpen(ln, !fa.Lexer.Lines.Line(ln).FoldOpen)
}

func (fa *Analyzer) setOpen(ln int, open bool) bool {
	if !fa.IsFoldable(ln) {
		return false
	}
	fa.Lexer.Lines.Line(ln).FoldOpen = open
	fa.update()
	return true
}

// CollapseAll collapses every function. If all is false, only
// functions whose header starts with function or constructor are
// collapsed, which leaves class bodies open.
func (fa *Analyzer) CollapseAll(all bool) {
	fa.setAll(all, false)
}

// ExpandAll expands every function, or only function and constructor
// headers if all is false.
func (fa *Analyzer) ExpandAll(all bool) {
	fa.setAll(all, true)
}

func (fa *Analyzer) setAll(all, open bool) {
	fa.Lexer.EnsureAll()
	ls := fa.Lexer.Lines
	for k := range ls.NumLines() {
		l := ls.Line(k)
		if l.Kind != lines.FunctionStart {
			continue
		}
		if all || isFunctionHeader(l.Text) {
			l.FoldOpen = open
		}
	}
	fa.update()
}

func isFunctionHeader(txt []rune) bool {
	s := strings.TrimLeftFunc(string(txt), unicode.IsSpace)
	return strings.HasPrefix(s, "function") || strings.HasPrefix(s, "constructor")
}

// MakeVisible expands every collapsed function enclosing the given
// line, so that the line is shown.
func (fa *Analyzer) MakeVisible(ln int) {
	if fa.Visible(ln) {
		return
	}
	for _, st := range fa.enclosing(ln) {
		fa.Lexer.Lines.Line(st).FoldOpen = true
	}
	fa.update()
}

// enclosing returns the FunctionStart lines of the functions that
// contain the given line, outermost first.
func (fa *Analyzer) enclosing(ln int) []int {
	var stack []int
	for k := 0; k < ln; k++ {
		l := fa.Lexer.EnsureLexed(k)
		switch {
		case l.Kind == lines.FunctionStart:
			stack = append(stack, k)
		case l.Kind == lines.FunctionEnd && !l.OneLine && len(stack) > 0:
			stack = stack[:len(stack)-1]
		}
	}
	return stack
}

// Visible returns true if the given line is not inside a collapsed
// function.
func (fa *Analyzer) Visible(ln int) bool {
	fa.Update()
	l := fa.Lexer.Lines.Line(ln)
	return l != nil && !l.Hidden
}

// Update recomputes line visibility if the text changed since the
// last computation.
func (fa *Analyzer) Update() {
	if fa.version == fa.Lexer.Lines.Version() && fa.Lexer.Lines.LexedThrough() == fa.Lexer.Lines.NumLines() {
		return
	}
	fa.update()
}

// update recomputes the Hidden flag of every line with a stack of
// open function frames. A line is hidden when any frame enclosing it
// is collapsed; the header of a function depends only on the frames
// around it, and its end line belongs to its own frame.
func (fa *Analyzer) update() {
	fa.Lexer.EnsureAll()
	ls := fa.Lexer.Lines
	var frames []bool
	closed := 0
	for k := range ls.NumLines() {
		l := ls.Line(k)
		l.Hidden = closed > 0
		switch {
		case l.Kind == lines.FunctionStart:
			frames = append(frames, l.FoldOpen)
			if !l.FoldOpen {
				closed++
			}
		case l.Kind == lines.FunctionEnd && !l.OneLine && len(frames) > 0:
			if !frames[len(frames)-1] {
				closed--
			}
			frames = frames[:len(frames)-1]
		}
	}
	fa.version = ls.Version()
}

// States returns the fold state of each FunctionStart line in order.
func (fa *Analyzer) States() []bool {
	fa.Lexer.EnsureAll()
	ls := fa.Lexer.Lines
	var st []bool
	for k := range ls.NumLines() {
		if l := ls.Line(k); l.Kind == lines.FunctionStart {
			st = append(st, l.FoldOpen)
		}
	}
	return st
}

// Restore applies fold states as returned by [Analyzer.States] to
// the FunctionStart lines in order. Extra states are ignored and
// missing ones leave the remaining functions open.
func (fa *Analyzer) Restore(states []bool) {
	fa.Lexer.EnsureAll()
	ls := fa.Lexer.Lines
	i := 0
	for k := range ls.NumLines() {
		l := ls.Line(k)
		if l.Kind != lines.FunctionStart {
			continue
		}
		l.FoldOpen = i >= len(states) || states[i]
		i++
	}
	fa.update()
}
