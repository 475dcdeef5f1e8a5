// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lexer is the table-driven tokenizer of the script editor.
// It classifies each line with a 16-state automaton whose state is
// carried from line to line, records structural brackets and the
// fold classification of each line, and re-derives stale lines
// lazily when they are read.
package lexer

import (
	"fmt"
	"log/slog"

	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/token"
)

// Lexer keeps the analysis of one [lines.Lines] current.
// It is not safe for concurrent use.
type Lexer struct {

	// Lines is the document being lexed.
	Lines *lines.Lines

	dict dictionary

	// index of the line being lexed, -1 when idle
	active int

	// number of lines lexed, for diagnostics
	nlexed int
}

// NewLexer returns a new Lexer for the given lines.
func NewLexer(ls *lines.Lines) *Lexer {
	return &Lexer{Lines: ls, dict: newDictionary(), active: -1}
}

// AddKeywords adds words to be classified as the given token,
// and invalidates all lines so that they are classified again.
func (lx *Lexer) AddKeywords(tok token.Tokens, words ...string) {
	if len(words) == 0 {
		return
	}
	lx.dict.add(tok, words...)
	lx.Lines.InvalidateAll()
}

// IsKeyword returns true if the given word is a keyword.
func (lx *Lexer) IsKeyword(word string) bool {
	return lx.dict.lookup([]rune(word)) == token.Keyword
}

// EnsureLexed guarantees that the exit state, spans, parens and kind
// of the given line are current, lexing all stale lines before it
// first. Lines after a stale line whose recorded entry state still
// equals the exit state of their predecessor keep their spans and
// parens, but the function end of their closing braces is classified
// again, as it depends on the text of the lines before them.
// It returns nil for a line index out of range.
func (lx *Lexer) EnsureLexed(ln int) *lines.Line {
	ls := lx.Lines
	l := ls.Line(ln)
	if l == nil {
		return nil
	}
	if lx.active >= 0 {
		panic(fmt.Sprintf("lexer: EnsureLexed(%d) re-entered while lexing line %d", ln, lx.active))
	}
	start := ls.LexedThrough()
	if ln < start && l.Lexed() {
		return l
	}
	start = min(start, ln)
	entry := Standard
	if start > 0 {
		entry = ls.Line(start - 1).ExitState
	}
	n := 0
	for k := start; k <= ln; k++ {
		lk := ls.Line(k)
		if lk.Lexed() && lk.EntryState == entry {
			lx.classifyEnd(k, lk)
			entry = lk.ExitState
			continue
		}
		lx.lexLine(k, lk, entry)
		entry = lk.ExitState
		n++
	}
	ls.SetLexedThrough(max(ln+1, ls.LexedThrough()))
	if n > 0 {
		slog.Debug("lexer: lexed lines", "from", start, "to", ln, "relexed", n)
	}
	return l
}

// EnsureAll lexes every stale line of the document.
func (lx *Lexer) EnsureAll() {
	if n := lx.Lines.NumLines(); n > 0 {
		lx.EnsureLexed(n - 1)
	}
}

// Relex discards all cached analysis and lexes the whole document.
func (lx *Lexer) Relex() {
	lx.Lines.InvalidateAll()
	lx.EnsureAll()
}

// Spans returns the current token spans of the given line.
func (lx *Lexer) Spans(ln int) []lines.Span {
	if l := lx.EnsureLexed(ln); l != nil {
		return l.Spans
	}
	return nil
}

// Kind returns the current fold classification of the given line.
func (lx *Lexer) Kind(ln int) lines.Kind {
	if l := lx.EnsureLexed(ln); l != nil {
		return l.Kind
	}
	return lines.Unclassified
}

// TokenAt returns the token class at the given line and char.
func (lx *Lexer) TokenAt(ln, ch int) token.Tokens {
	if l := lx.EnsureLexed(ln); l != nil {
		return l.TokenAt(ch)
	}
	return token.None
}
