// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "github.com/pdfstudio/scriptcore/text/token"

// Keywords are the ECMAScript keywords and future reserved words.
var Keywords = []string{
	"break", "else", "new", "var", "case", "finally", "return", "void",
	"catch", "for", "switch", "while", "continue", "function", "this", "with",
	"default", "if", "throw", "delete", "in", "try", "do", "instanceof",
	"typeof", "class", "constructor", "extends",

	"abstract", "enum", "int", "short", "boolean", "export", "interface", "static",
	"byte", "long", "super", "char", "final", "native", "synchronized", "float",
	"package", "throws", "const", "goto", "private", "transient", "debugger",
	"implements", "protected", "volatile", "double", "import", "public",
}

// Constants are the builtin values classified as [token.Type].
var Constants = []string{"true", "false", "NaN", "Infinity", "undefined"}

// FunctionKeywords are the first words that make a line a FunctionStart.
var FunctionKeywords = []string{"function", "constructor", "class"}

// Modifiers are skipped when looking for the first word of a line.
var Modifiers = []string{"private", "protected", "public", "static"}

// dictionary maps word length, then word, to its token class.
type dictionary map[int]map[string]token.Tokens

func newDictionary() dictionary {
	d := dictionary{}
	d.add(token.Keyword, Keywords...)
	d.add(token.Type, Constants...)
	return d
}

func (d dictionary) add(tok token.Tokens, words ...string) {
	for _, w := range words {
		n := len([]rune(w))
		m, ok := d[n]
		if !ok {
			m = map[string]token.Tokens{}
			d[n] = m
		}
		m[w] = tok
	}
}

func (d dictionary) lookup(word []rune) token.Tokens {
	m, ok := d[len(word)]
	if !ok {
		return token.None
	}
	return m[string(word)]
}
