// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package token defines the lexical token classes produced by the
// script lexer. The set mirrors the formats of a script editor:
// everything that is not classified is [None] (standard text).
package token

// Tokens is a lexical token class.
type Tokens int32

const (
	// None is standard, unclassified text.
	None Tokens = iota

	// Comment is a line or block comment, including its delimiters.
	Comment

	// Number is a numeric literal.
	Number

	// String is a single or double quoted string literal, including quotes.
	String

	// Type is a builtin constant value such as true or undefined.
	Type

	// Keyword is a reserved word of the language.
	Keyword

	// Label is an identifier followed by a single colon.
	Label

	// PreProcessor is a #-directive.
	PreProcessor

	// TokensN is the number of token classes.
	TokensN
)

var tokenNames = [TokensN]string{"None", "Comment", "Number", "String", "Type", "Keyword", "Label", "PreProcessor"}

func (tk Tokens) String() string {
	if tk < 0 || tk >= TokensN {
		return "Tokens(?)"
	}
	return tokenNames[tk]
}

// IsLiteral returns true for tokens whose text is literal content
// (strings and comments), inside which brackets and identifiers
// have no structural meaning.
func (tk Tokens) IsLiteral() bool {
	return tk == Comment || tk == String
}
