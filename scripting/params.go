// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scripting

import (
	"fmt"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

// Params returns the parameter names of the function with the given
// source text, which may be a function declaration or expression, an
// arrow function or a method. Rest parameters keep their "..." and
// destructured parameters are named by position (arg1, arg2...).
func Params(src string) []string {
	l := js.NewLexer(parse.NewInputString(src))
	var params []string
	var prev []byte
	depth := 0
	expect := false
	rest := ""
	for {
		tt, text := l.Next()
		switch tt {
		case js.ErrorToken:
			return params
		case js.WhitespaceToken, js.LineTerminatorToken, js.CommentToken, js.CommentLineTerminatorToken:
			continue
		}
		if depth == 0 {
			switch {
			case tt == js.OpenParenToken:
				depth, expect = 1, true
			case tt == js.ArrowToken && prev != nil:
				return []string{string(prev)}
			case js.IsIdentifierName(tt):
				prev = text
			default:
				prev = nil
			}
			continue
		}
		switch tt {
		case js.OpenParenToken, js.OpenBracketToken, js.OpenBraceToken:
			if depth == 1 && expect {
				params = append(params, fmt.Sprintf("%sarg%d", rest, len(params)+1))
				expect, rest = false, ""
			}
			depth++
		case js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken:
			depth--
			if depth == 0 {
				return params
			}
		case js.CommaToken:
			if depth == 1 {
				expect = true
			}
		case js.EllipsisToken:
			if depth == 1 && expect {
				rest = "..."
			}
		default:
			if depth == 1 && expect && js.IsIdentifierName(tt) {
				params = append(params, rest+string(text))
				expect, rest = false, ""
			}
		}
	}
}
