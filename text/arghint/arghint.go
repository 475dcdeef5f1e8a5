// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package arghint shows the signature of the function call enclosing
// the cursor, with the parameter being typed highlighted.
package arghint

import (
	"html"
	"strings"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/resolve"
	"github.com/pdfstudio/scriptcore/text/textpos"
)

// DefaultMaxLines is the default number of lines searched backward
// for the opening paren of a call.
const DefaultMaxLines = 30

// Hint is the argument hint of one call.
type Hint struct {

	// Function is the callee as written before the paren,
	// possibly a dotted path.
	Function string

	// Signatures are the known signatures of Function.
	Signatures []resolve.ParameterList

	// Current is the index of the signature shown.
	Current int

	// Active is the index of the parameter at the cursor.
	Active int

	// Open is the position of the opening paren of the call.
	Open textpos.Pos
}

// Name returns the function name without its object path.
func (h *Hint) Name() string {
	if i := strings.LastIndexByte(h.Function, '.'); i >= 0 {
		return h.Function[i+1:]
	}
	return h.Function
}

// Next shows the next signature, returning false at the last one.
func (h *Hint) Next() bool {
	if h.Current >= len(h.Signatures)-1 {
		return false
	}
	h.Current++
	return true
}

// Prev shows the previous signature, returning false at the first one.
func (h *Hint) Prev() bool {
	if h.Current <= 0 {
		return false
	}
	h.Current--
	return true
}

// Format renders the current signature as name( a, b ) with the
// active parameter enclosed in open and end.
func (h *Hint) Format(open, end string) string {
	return h.format(h.Current, open, end, func(s string) string { return s })
}

func (h *Hint) format(sig int, open, end string, esc func(string) string) string {
	if sig < 0 || sig >= len(h.Signatures) {
		return ""
	}
	pl := h.Signatures[sig]
	var sb strings.Builder
	sb.WriteString(esc(pl.Prefix))
	sb.WriteString(esc(h.Name()))
	sb.WriteString("( ")
	for i, p := range pl.Params {
		if i == h.Active {
			sb.WriteString(open + esc(p) + end)
		} else {
			sb.WriteString(esc(p))
		}
		if i < len(pl.Params)-1 {
			sb.WriteString(", ")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString(")")
	sb.WriteString(esc(pl.Suffix))
	return sb.String()
}

// String renders the current signature with the active parameter
// in bold markdown.
func (h *Hint) String() string {
	return h.Format("**", "**")
}

// HTML renders the current signature as HTML with the active
// parameter in bold.
func (h *Hint) HTML() string {
	return h.format(h.Current, "<b>", "</b>", html.EscapeString)
}

// All renders every signature as by [Hint.String].
func (h *Hint) All() []string {
	s := make([]string, len(h.Signatures))
	for i := range h.Signatures {
		s[i] = h.format(i, "**", "**", func(s string) string { return s })
	}
	return s
}

// Hinter finds the call enclosing a cursor in the document of its Lexer.
type Hinter struct {
	Lexer *lexer.Lexer

	// Resolver provides the signatures.
	Resolver resolve.Resolver

	// MaxLines bounds the backward search for the opening paren.
	// Zero means no limit.
	MaxLines int
}

// NewHinter returns a new Hinter with [DefaultMaxLines].
func NewHinter(lx *lexer.Lexer, rs resolve.Resolver) *Hinter {
	if rs == nil {
		rs = resolve.Nop{}
	}
	return &Hinter{Lexer: lx, Resolver: rs, MaxLines: DefaultMaxLines}
}

// Locate returns the hint for the call enclosing the given cursor
// position. It returns false if the cursor is not inside the parens
// of a call or no signature of the callee is known.
func (hn *Hinter) Locate(pos textpos.Pos) (*Hint, bool) {
	open, ok := hn.openParen(pos)
	if !ok {
		return nil, false
	}
	name := hn.callee(open)
	if name == "" || hn.Lexer.IsKeyword(name) {
		return nil, false
	}
	sigs := hn.Resolver.ResolveSignatures(name)
	if len(sigs) == 0 {
		return nil, false
	}
	return &Hint{Function: name, Signatures: sigs, Open: open, Active: hn.active(open, pos)}, true
}

// Update moves the hint to a new cursor position, returning false
// if the cursor left the call, in which case the hint should close.
func (hn *Hinter) Update(h *Hint, pos textpos.Pos) bool {
	open, ok := hn.openParen(pos)
	if !ok || open != h.Open {
		return false
	}
	h.Active = hn.active(open, pos)
	return true
}

// openParen finds the unmatched structural ( before pos.
func (hn *Hinter) openParen(pos textpos.Pos) (textpos.Pos, bool) {
	l := hn.Lexer.EnsureLexed(pos.Line)
	if l == nil {
		return textpos.Pos{}, false
	}
	depth := 0
	for ln := pos.Line; ln >= 0; ln-- {
		if hn.MaxLines > 0 && pos.Line-ln > hn.MaxLines {
			break
		}
		ps := hn.Lexer.EnsureLexed(ln).Parens
		for i := len(ps) - 1; i >= 0; i-- {
			p := ps[i]
			if ln == pos.Line && p.Offset >= pos.Char {
				continue
			}
			switch p.Char {
			case ')':
				depth++
			case '(':
				if depth == 0 {
					return textpos.Pos{Line: ln, Char: p.Offset}, true
				}
				depth--
			}
		}
	}
	return textpos.Pos{}, false
}

// callee returns the identifier or member path before the paren at open.
func (hn *Hinter) callee(open textpos.Pos) string {
	txt := hn.Lexer.Lines.Line(open.Line).Text
	ed := open.Char
	for ed > 0 && (txt[ed-1] == ' ' || txt[ed-1] == '\t') {
		ed--
	}
	st := ed
	for st > 0 && (lexer.IsWordRune(txt[st-1]) || txt[st-1] == '.') {
		st--
	}
	return strings.Trim(string(txt[st:ed]), ".")
}

// active counts the commas between open and pos that are outside
// of nested brackets and literals.
func (hn *Hinter) active(open, pos textpos.Pos) int {
	n := 0
	depth := 0
	for ln := open.Line; ln <= pos.Line; ln++ {
		l := hn.Lexer.EnsureLexed(ln)
		st, ed := 0, len(l.Text)
		if ln == open.Line {
			st = open.Char + 1
		}
		if ln == pos.Line {
			ed = min(pos.Char, ed)
		}
		for i := st; i < ed; i++ {
			if l.TokenAt(i).IsLiteral() {
				continue
			}
			switch l.Text[i] {
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				depth--
			case ',':
				if depth == 0 {
					n++
				}
			}
		}
	}
	return n
}
