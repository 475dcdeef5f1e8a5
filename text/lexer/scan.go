// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"slices"
	"unicode"

	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/token"
)

// lexLine runs the automaton over one line starting in the given
// state, replacing all analysis cached on the line. The line is
// followed by a virtual space, which completes the last word.
func (lx *Lexer) lexLine(ln int, l *lines.Line, entry lines.State) {
	lx.active = ln
	defer func() { lx.active = -1 }()
	lx.nlexed++

	txt := l.Text
	n := len(txt)
	classes := make([]token.Tokens, n)
	l.EntryState = entry
	l.Parens = nil
	l.Kind = lines.InFunction
	l.Header = false
	l.OneLine = false

	state := entry
	escaped := false
	question := false
	var word []rune // identifier being read in Standard state
	wordStart := 0
	var first []rune // first word of the line
	firstDone := false
	lastChar := rune(0)
	lastInput := input(-1)

	flush := func(i int, label bool) {
		if len(word) == 0 {
			return
		}
		tok := lx.dict.lookup(word)
		if tok == token.None && label {
			tok = token.Label
		}
		for j := wordStart; j < i; j++ {
			classes[j] = tok
		}
		word = word[:0]
	}

	for i := 0; i <= n; i++ {
		c := ' '
		if i < n {
			c = txt[i]
		}
		var in input
		if escaped {
			in = inSep
		} else {
			switch {
			case c == '*':
				in = inAsterisk
			case c == '/':
				in = inSlash
			case c == '(' || c == '[' || c == '{':
				in = inParen
				if structural(state) {
					l.Parens = append(l.Parens, lines.Paren{Kind: lines.Open, Char: c, Offset: i})
				}
			case c == ')' || c == ']' || c == '}':
				in = inParen
				if structural(state) {
					l.Parens = append(l.Parens, lines.Paren{Kind: lines.Close, Char: c, Offset: i})
					if c == '}' {
						if end, one := lx.functionEnd(ln, l.Parens); end {
							l.Kind = lines.FunctionEnd
							l.OneLine = one
						}
					}
				}
			case c == '#':
				in = inHash
			case c == '"':
				in = inQuote
			case c == '\'':
				in = inApostrophe
			case c == ' ' || c == '\t':
				in = inSpace
			case c >= '0' && c <= '9':
				switch {
				case isLetter(lastChar):
					in = inAlpha
				case lastInput == inAlpha && lastChar >= '0' && lastChar <= '9':
					in = inAlpha
				default:
					in = inNumber
				}
			case isLetter(c):
				in = inAlpha
			default:
				in = inSep
			}
		}
		if c == '?' && state == Standard {
			question = true
		}

		if !firstDone && state == Standard {
			switch {
			case in == inSpace || in == inParen:
				if len(first) > 0 {
					fw := string(first)
					if slices.Contains(Modifiers, fw) {
						first = first[:0]
					} else {
						firstDone = true
						if slices.Contains(FunctionKeywords, fw) {
							l.Kind = lines.FunctionStart
							l.Header = true
						}
					}
				}
			case in == inAlpha:
				first = append(first, c)
			case len(first) > 0:
				firstDone = true
			}
		}

		prev := state
		state = transitions[state][in]

		if in == inAlpha && state == Standard {
			if len(word) == 0 {
				wordStart = i
			}
			word = append(word, c)
		} else {
			label := false
			if c == ':' && prev == Standard && !question && lastInput == inAlpha {
				label = i+1 >= n || txt[i+1] != ':'
			}
			flush(i, label)
		}

		if i < n {
			switch state {
			case CCommentStart2, CppCommentStart2:
				if i > 0 {
					classes[i-1] = token.Comment
				}
				classes[i] = token.Comment
			case CComment, CppComment, CCommentEnd1, CCommentEnd2:
				classes[i] = token.Comment
			case StringStart, String, StringEnd, String2Start, String2, String2End:
				classes[i] = token.String
			case Number:
				classes[i] = token.Number
			case PreProcessor:
				classes[i] = token.PreProcessor
			}
		}

		escaped = !escaped && c == '\\'
		lastChar = c
		lastInput = in
	}

	l.ExitState = normalizeExit(state)
	l.Spans = spansOf(classes)
}

// spansOf compresses per-rune classes into spans of classified runes.
func spansOf(classes []token.Tokens) []lines.Span {
	var spans []lines.Span
	for i := 0; i < len(classes); {
		tok := classes[i]
		j := i + 1
		for j < len(classes) && classes[j] == tok {
			j++
		}
		if tok != token.None {
			spans = append(spans, lines.Span{Start: i, End: j, Token: tok})
		}
		i = j
	}
	return spans
}

func isLetter(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

// IsWordRune returns true for runes that make up identifiers
// in completion and argument hint lookups.
func IsWordRune(r rune) bool {
	return r == '_' || r == '#' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
