// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"slices"

	"github.com/pdfstudio/scriptcore/text/lines"
)

// functionEnd reports whether the last paren of parens, a closing
// brace on line ln, closes a function body. It finds the matching
// open brace, then looks backward from it for one of the
// FunctionKeywords, stopping at any other brace. one is true when
// the open brace is on line ln. Lines before ln must be lexed.
func (lx *Lexer) functionEnd(ln int, parens []lines.Paren) (end, one bool) {
	oln, och, ok := lx.openBrace(ln, parens)
	if !ok {
		return false, false
	}
	return lx.functionBefore(oln, och), oln == ln
}

// classifyEnd recomputes the function end classification of a line
// whose cached parens are current, for when lines before it changed.
func (lx *Lexer) classifyEnd(ln int, l *lines.Line) {
	kind := lines.InFunction
	if l.Header {
		kind = lines.FunctionStart
	}
	one := false
	for i, p := range l.Parens {
		if p.Kind != lines.Close || p.Char != '}' {
			continue
		}
		if end, o := lx.functionEnd(ln, l.Parens[:i+1]); end {
			kind, one = lines.FunctionEnd, o
		}
	}
	l.Kind, l.OneLine = kind, one
}

// openBrace finds the open brace matching the closing brace that is
// the last element of parens.
func (lx *Lexer) openBrace(ln int, parens []lines.Paren) (int, int, bool) {
	depth := 0
	match := func(ps []lines.Paren) int {
		for i := len(ps) - 1; i >= 0; i-- {
			p := ps[i]
			if p.Char != '{' && p.Char != '}' {
				continue
			}
			if p.Kind == lines.Close {
				depth++
				continue
			}
			depth--
			if depth == 0 {
				return p.Offset
			}
		}
		return -1
	}
	if ch := match(parens); ch >= 0 {
		return ln, ch, true
	}
	for k := ln - 1; k >= 0; k-- {
		if ch := match(lx.Lines.Line(k).Parens); ch >= 0 {
			return k, ch, true
		}
	}
	return 0, 0, false
}

// functionBefore scans backward from the given position for a whole
// word that is one of the FunctionKeywords. Crossing a line boundary
// ends a word.
func (lx *Lexer) functionBefore(ln, ch int) bool {
	var word []rune
	check := func() bool {
		if len(word) == 0 {
			return false
		}
		slices.Reverse(word)
		found := slices.Contains(FunctionKeywords, string(word))
		word = word[:0]
		return found
	}
	for k := ln; k >= 0; k-- {
		txt := lx.Lines.Line(k).Text
		i := len(txt) - 1
		if k == ln {
			i = ch - 1
		}
		for ; i >= 0; i-- {
			r := txt[i]
			if IsWordRune(r) {
				word = append(word, r)
				continue
			}
			if check() {
				return true
			}
			if r == '{' || r == '}' {
				return false
			}
		}
		if check() {
			return true
		}
	}
	return false
}
