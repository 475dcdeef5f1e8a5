// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package parens matches structural brackets across lines, using the
// bracket lists recorded by the lexer rather than the raw text.
package parens

import (
	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/textpos"
)

// Status is the outcome of pairing two brackets.
type Status int32

const (
	// Match is a bracket paired with its own partner kind.
	Match Status = iota

	// Mismatch is a bracket paired positionally with a bracket of
	// another kind, as in ( ].
	Mismatch
)

func (s Status) String() string {
	if s == Mismatch {
		return "Mismatch"
	}
	return "Match"
}

// Result is a pair of structural brackets.
type Result struct {

	// Open is the position of the opening bracket.
	Open textpos.Pos

	// Close is the position of the closing bracket.
	Close textpos.Pos

	Status Status
}

// Regions returns the one-rune regions of the two brackets,
// for highlighting.
func (r Result) Regions() []textpos.Region {
	return []textpos.Region{
		textpos.NewRegion(r.Open.Line, r.Open.Char, r.Open.Line, r.Open.Char+1),
		textpos.NewRegion(r.Close.Line, r.Close.Char, r.Close.Line, r.Close.Char+1),
	}
}

// Region returns the region from the opening bracket through the
// closing bracket inclusive.
func (r Result) Region() textpos.Region {
	return textpos.Region{Start: r.Open, End: textpos.Pos{Line: r.Close.Line, Char: r.Close.Char + 1}}
}

// Pair returns the matching bracket for given rune, which must be a
// left or right brace {}, bracket [] or paren (). Also returns true
// if it is a right one.
func Pair(r rune) (match rune, right bool) {
	switch r {
	case '{':
		match = '}'
	case '}':
		right = true
		match = '{'
	case '(':
		match = ')'
	case ')':
		right = true
		match = '('
	case '[':
		match = ']'
	case ']':
		right = true
		match = '['
	}
	return
}

// Matcher finds bracket partners in the document of its Lexer.
type Matcher struct {

	// Lexer provides the current bracket lists.
	Lexer *lexer.Lexer

	// MaxLines bounds the number of lines searched beyond the line
	// of the starting bracket. Zero means no limit.
	MaxLines int
}

// NewMatcher returns a new Matcher without a line limit.
func NewMatcher(lx *lexer.Lexer) *Matcher {
	return &Matcher{Lexer: lx}
}

// Match returns the partner of the structural bracket at pos.
// It returns false if there is no structural bracket at pos or no
// partner within range. Pairing is positional: brackets of different
// kinds pair with a [Mismatch] status.
func (m *Matcher) Match(pos textpos.Pos) (Result, bool) {
	l := m.Lexer.EnsureLexed(pos.Line)
	if l == nil {
		return Result{}, false
	}
	idx := l.ParenAt(pos.Char)
	if idx < 0 {
		return Result{}, false
	}
	p := l.Parens[idx]
	if p.Kind == lines.Open {
		return m.forward(pos, p, idx)
	}
	return m.backward(pos, p, idx)
}

// AtCursor matches the bracket at a text cursor: an opening bracket
// just after the cursor, or else a closing bracket just before it.
func (m *Matcher) AtCursor(pos textpos.Pos) (Result, bool) {
	l := m.Lexer.EnsureLexed(pos.Line)
	if l == nil {
		return Result{}, false
	}
	if i := l.ParenAt(pos.Char); i >= 0 && l.Parens[i].Kind == lines.Open {
		return m.Match(pos)
	}
	if i := l.ParenAt(pos.Char - 1); i >= 0 && l.Parens[i].Kind == lines.Close {
		return m.Match(textpos.Pos{Line: pos.Line, Char: pos.Char - 1})
	}
	return Result{}, false
}

func (m *Matcher) inRange(from, ln int) bool {
	if m.MaxLines <= 0 {
		return true
	}
	d := ln - from
	if d < 0 {
		d = -d
	}
	return d <= m.MaxLines
}

func (m *Matcher) forward(pos textpos.Pos, open lines.Paren, idx int) (Result, bool) {
	ignore := 0
	ps := m.Lexer.Lines.Line(pos.Line).Parens[idx+1:]
	for ln := pos.Line; ; {
		for _, q := range ps {
			if q.Kind == lines.Open {
				ignore++
				continue
			}
			if ignore > 0 {
				ignore--
				continue
			}
			return newResult(open, pos, q, textpos.Pos{Line: ln, Char: q.Offset}), true
		}
		ln++
		if !m.inRange(pos.Line, ln) {
			return Result{}, false
		}
		l := m.Lexer.EnsureLexed(ln)
		if l == nil {
			return Result{}, false
		}
		ps = l.Parens
	}
}

func (m *Matcher) backward(pos textpos.Pos, cls lines.Paren, idx int) (Result, bool) {
	ignore := 0
	ps := m.Lexer.Lines.Line(pos.Line).Parens[:idx]
	for ln := pos.Line; ; {
		for i := len(ps) - 1; i >= 0; i-- {
			q := ps[i]
			if q.Kind == lines.Close {
				ignore++
				continue
			}
			if ignore > 0 {
				ignore--
				continue
			}
			return newResult(q, textpos.Pos{Line: ln, Char: q.Offset}, cls, pos), true
		}
		ln--
		if ln < 0 || !m.inRange(pos.Line, ln) {
			return Result{}, false
		}
		ps = m.Lexer.EnsureLexed(ln).Parens
	}
}

func newResult(open lines.Paren, opos textpos.Pos, cls lines.Paren, cpos textpos.Pos) Result {
	r := Result{Open: opos, Close: cpos}
	if match, _ := Pair(open.Char); match != cls.Char {
		r.Status = Mismatch
	}
	return r
}
