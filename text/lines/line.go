// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"github.com/pdfstudio/scriptcore/text/token"
)

// State is a lexer automaton state carried across line boundaries.
// Its values are defined by the lexer; the only value known here
// is [Unknown].
type State int8

// Unknown is the sentinel state of a line that has not been lexed
// since its last change.
const Unknown State = -1

// Kind is the structural classification of a line for folding.
type Kind int32

const (
	// Unclassified lines have not been lexed yet.
	Unclassified Kind = iota

	// FunctionStart lines begin with function, constructor or class.
	FunctionStart

	// InFunction is every lexed line that neither starts nor ends a function.
	InFunction

	// FunctionEnd lines contain the closing brace of a function body.
	FunctionEnd
)

func (k Kind) String() string {
	switch k {
	case FunctionStart:
		return "FunctionStart"
	case InFunction:
		return "InFunction"
	case FunctionEnd:
		return "FunctionEnd"
	}
	return "Unclassified"
}

// ParenKind distinguishes opening from closing brackets.
type ParenKind int8

const (
	Open ParenKind = iota
	Close
)

// Paren is a structural bracket occurrence: one of ( [ { ) ] }
// found outside of string and comment literals.
type Paren struct {
	Kind ParenKind

	// Char is the bracket rune.
	Char rune

	// Offset is the rune offset within the line.
	Offset int
}

// Span is a token classification of the runes [Start, End) of a line.
type Span struct {
	Start int
	End   int
	Token token.Tokens
}

// Line is one line of text plus the analysis cached for it.
// The analysis fields are written by the lexer, fold and completion
// engines; they are only meaningful once ExitState is not [Unknown].
type Line struct {

	// Text is the rune content of the line, without the line feed.
	Text []rune

	// EntryState is the state the line was last lexed with,
	// which is the exit state of the previous line at that time.
	EntryState State

	// ExitState is the state after the last rune of the line,
	// or [Unknown] if the line changed since it was lexed.
	ExitState State

	// Spans are the token spans covering the classified runes of the line.
	// Runes not covered by a span are standard text.
	Spans []Span

	// Parens are the structural brackets of the line in order.
	Parens []Paren

	// Kind is the fold classification of the line.
	Kind Kind

	// Header is set when the first word of the line starts a function.
	// A Header line is a FunctionStart unless it also ends a function.
	Header bool

	// OneLine is set on a FunctionEnd line whose opening brace is on
	// the same line, so that it does not close an enclosing fold frame.
	OneLine bool

	// FoldOpen is the fold state of a FunctionStart line.
	FoldOpen bool

	// Hidden is set when the line is inside a collapsed function.
	Hidden bool

	// HarvestLen is the rune length of the line when it was last
	// harvested for completions, or -1 if it never was.
	HarvestLen int
}

func newLine(txt []rune) *Line {
	return &Line{
		Text:       txt,
		EntryState: Unknown,
		ExitState:  Unknown,
		FoldOpen:   true,
		HarvestLen: -1,
	}
}

// String returns the text of the line.
func (ln *Line) String() string {
	return string(ln.Text)
}

// Lexed returns true if the analysis of the line is current with its text.
func (ln *Line) Lexed() bool {
	return ln.ExitState != Unknown
}

// TokenAt returns the token class of the rune at given offset.
func (ln *Line) TokenAt(ch int) token.Tokens {
	for _, sp := range ln.Spans {
		if ch < sp.Start {
			break
		}
		if ch < sp.End {
			return sp.Token
		}
	}
	return token.None
}

// ParenAt returns the index in Parens of the structural bracket
// at given offset, or -1 if there is none.
func (ln *Line) ParenAt(ch int) int {
	for i, p := range ln.Parens {
		if p.Offset == ch {
			return i
		}
	}
	return -1
}

func (ln *Line) invalidate() {
	ln.ExitState = Unknown
}
