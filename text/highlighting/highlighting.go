// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package highlighting renders lexed script text with chroma
// formatters and styles, and converts chroma tokens for text that is
// not lexed by the script lexer.
package highlighting

import (
	"io"
	"log/slog"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/token"
)

// DefaultStyle is the default chroma style name.
const DefaultStyle = "emacs"

// TokenType returns the chroma token type for a token class.
func TokenType(tok token.Tokens) chroma.TokenType {
	switch tok {
	case token.Comment:
		return chroma.Comment
	case token.Number:
		return chroma.LiteralNumber
	case token.String:
		return chroma.LiteralString
	case token.Keyword:
		return chroma.Keyword
	case token.Type:
		return chroma.KeywordConstant
	case token.Label:
		return chroma.NameLabel
	case token.PreProcessor:
		return chroma.CommentPreproc
	}
	return chroma.Text
}

// TokenFromChroma returns the token class for a chroma token type.
func TokenFromChroma(ct chroma.TokenType) token.Tokens {
	switch {
	case ct.InCategory(chroma.Comment):
		if ct == chroma.CommentPreproc || ct == chroma.CommentPreprocFile {
			return token.PreProcessor
		}
		return token.Comment
	case ct.InSubCategory(chroma.LiteralString):
		return token.String
	case ct.InSubCategory(chroma.LiteralNumber):
		return token.Number
	case ct == chroma.KeywordConstant:
		return token.Type
	case ct.InCategory(chroma.Keyword):
		return token.Keyword
	case ct == chroma.NameLabel:
		return token.Label
	}
	return token.None
}

// LineTokens returns the chroma tokens of one line, ending with a
// line feed. Runes not covered by a span are [chroma.Text].
func LineTokens(lx *lexer.Lexer, ln int) []chroma.Token {
	l := lx.EnsureLexed(ln)
	if l == nil {
		return nil
	}
	var toks []chroma.Token
	add := func(tt chroma.TokenType, txt []rune) {
		if len(txt) > 0 {
			toks = append(toks, chroma.Token{Type: tt, Value: string(txt)})
		}
	}
	cp := 0
	for _, sp := range l.Spans {
		add(chroma.Text, l.Text[cp:sp.Start])
		add(TokenType(sp.Token), l.Text[sp.Start:sp.End])
		cp = sp.End
	}
	add(chroma.Text, l.Text[cp:])
	toks = append(toks, chroma.Token{Type: chroma.Text, Value: "\n"})
	return toks
}

// Iterator returns a chroma iterator over the lines [from, to).
func Iterator(lx *lexer.Lexer, from, to int) chroma.Iterator {
	to = min(to, lx.Lines.NumLines())
	var toks []chroma.Token
	for ln := max(from, 0); ln < to; ln++ {
		toks = append(toks, LineTokens(lx, ln)...)
	}
	return chroma.Literator(toks...)
}

// Render writes the whole document with the named chroma formatter
// and style, such as "terminal256" or "html" and "monokai".
func Render(w io.Writer, lx *lexer.Lexer, formatter, style string) error {
	f := formatters.Get(formatter)
	if formatter == "html" {
		f = html.New(html.WithClasses(false), html.TabWidth(4))
	}
	return f.Format(w, styles.Get(style), Iterator(lx, 0, lx.Lines.NumLines()))
}

// HasStyle returns true if the named chroma style exists.
func HasStyle(name string) bool {
	_, ok := styles.Registry[name]
	return ok
}

// ChromaSpans lexes the given text with the named chroma lexer, such
// as "json" or "javascript", returning the token spans of each line.
// It returns nil if there is no such lexer.
func ChromaSpans(language, text string) ([][]lines.Span, error) {
	cl := lexers.Get(language)
	if cl == nil {
		slog.Debug("highlighting: no chroma lexer", "language", language)
		return nil, nil
	}
	it, err := chroma.Coalesce(cl).Tokenise(nil, text)
	if err != nil {
		return nil, err
	}
	var spans [][]lines.Span
	for _, lt := range chroma.SplitTokensIntoLines(it.Tokens()) {
		var ls []lines.Span
		cp := 0
		for _, tok := range lt {
			n := len([]rune(strings.TrimSuffix(tok.Value, "\n")))
			if n == 0 {
				continue
			}
			if tt := TokenFromChroma(tok.Type); tt != token.None {
				ls = append(ls, lines.Span{Start: cp, End: cp + n, Token: tt})
			}
			cp += n
		}
		spans = append(spans, ls)
	}
	return spans, nil
}
