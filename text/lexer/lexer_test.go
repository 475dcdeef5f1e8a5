// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import (
	"testing"

	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/pdfstudio/scriptcore/text/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLexer(src string) *Lexer {
	return NewLexer(lines.NewLinesFromString(src))
}

func kinds(lx *Lexer) []lines.Kind {
	lx.EnsureAll()
	var ks []lines.Kind
	for i := range lx.Lines.NumLines() {
		ks = append(ks, lx.Lines.Line(i).Kind)
	}
	return ks
}

func TestFunctionKinds(t *testing.T) {
	lx := newTestLexer("/* a */ function foo(x, y) {\n  bar(x);\n}\n")
	require.Equal(t, 3, lx.Lines.NumLines())
	assert.Equal(t, []lines.Kind{lines.FunctionStart, lines.InFunction, lines.FunctionEnd}, kinds(lx))
	for i := range 3 {
		assert.Equal(t, Standard, lx.Lines.Line(i).ExitState)
	}
	l0 := lx.Lines.Line(0)
	assert.Equal(t, []lines.Paren{
		{Kind: lines.Open, Char: '(', Offset: 20},
		{Kind: lines.Close, Char: ')', Offset: 25},
		{Kind: lines.Open, Char: '{', Offset: 27},
	}, l0.Parens)
	assert.Equal(t, token.Comment, l0.TokenAt(0))
	assert.Equal(t, token.Comment, l0.TokenAt(6))
	assert.Equal(t, token.None, l0.TokenAt(7))
	assert.Equal(t, token.Keyword, l0.TokenAt(8))
	assert.Equal(t, token.None, l0.TokenAt(17))
	assert.False(t, lx.Lines.Line(2).OneLine)
}

func TestFunctionModifiersAndClasses(t *testing.T) {
	lx := newTestLexer(`class A {
  static constructor() {
  }
  private bar() {
    if (x) {
    }
  }
}
var o = { a: 1 };
function f() { return 1; }`)
	assert.Equal(t, []lines.Kind{
		lines.FunctionStart,
		lines.FunctionStart,
		lines.FunctionEnd,
		lines.InFunction,
		lines.InFunction,
		lines.InFunction,
		lines.InFunction,
		lines.FunctionEnd,
		lines.InFunction,
		lines.FunctionEnd,
	}, kinds(lx))
	assert.True(t, lx.Lines.Line(9).OneLine)
	assert.False(t, lx.Lines.Line(7).OneLine)
}

func TestFirstWordBeforeParen(t *testing.T) {
	lx := newTestLexer("class B {\n  constructor(w) {\n  }\n  area(h) {\n  }\n}")
	assert.Equal(t, []lines.Kind{
		lines.FunctionStart,
		lines.FunctionStart,
		lines.FunctionEnd,
		lines.InFunction,
		lines.InFunction,
		lines.FunctionEnd,
	}, kinds(lx))
}

func TestKeywordsAndLabels(t *testing.T) {
	lx := newTestLexer("loop: while (true) { x = a ? b: c; obj::m; }")
	l := lx.EnsureLexed(0)
	require.NotNil(t, l)
	assert.Equal(t, token.Label, l.TokenAt(0))
	assert.Equal(t, token.Label, l.TokenAt(3))
	assert.Equal(t, token.None, l.TokenAt(4))
	assert.Equal(t, token.Keyword, l.TokenAt(6))
	assert.Equal(t, token.Type, l.TokenAt(13))
	assert.Equal(t, token.None, l.TokenAt(29))
	assert.Equal(t, token.None, l.TokenAt(35))

	lx.AddKeywords(token.Type, "Document")
	assert.False(t, lx.Lines.Line(0).Lexed())
	lx.Lines.SetString("Document.open(1.5, x1)")
	l = lx.EnsureLexed(0)
	assert.Equal(t, token.Type, l.TokenAt(0))
	assert.Equal(t, token.Number, l.TokenAt(14))
	assert.Equal(t, token.Number, l.TokenAt(16))
	assert.Equal(t, token.None, l.TokenAt(20))
	assert.True(t, lx.IsKeyword("while"))
	assert.False(t, lx.IsKeyword("Document"))
}

func TestStringsAndComments(t *testing.T) {
	lx := newTestLexer("var s = \"a\\\"(\" + 'b(' + c(1); // x(\n/* (\n ) */ f(#x)")
	lx.EnsureAll()
	l0 := lx.Lines.Line(0)
	assert.Equal(t, []lines.Paren{
		{Kind: lines.Open, Char: '(', Offset: 25},
		{Kind: lines.Close, Char: ')', Offset: 27},
	}, l0.Parens)
	assert.Equal(t, token.String, l0.TokenAt(8))
	assert.Equal(t, token.String, l0.TokenAt(13))
	assert.Equal(t, token.String, l0.TokenAt(17))
	assert.Equal(t, token.Comment, l0.TokenAt(30))
	assert.Equal(t, Standard, l0.ExitState)

	l1 := lx.Lines.Line(1)
	assert.Equal(t, InBlockComment, l1.ExitState)
	assert.Empty(t, l1.Parens)

	l2 := lx.Lines.Line(2)
	assert.Equal(t, InBlockComment, l2.EntryState)
	assert.Equal(t, Standard, l2.ExitState)
	require.Len(t, l2.Parens, 2)
	assert.Equal(t, 7, l2.Parens[0].Offset)
	assert.Equal(t, 10, l2.Parens[1].Offset)
	assert.Equal(t, token.PreProcessor, l2.TokenAt(8))
	assert.Equal(t, token.PreProcessor, l2.TokenAt(9))
}

func TestStringAcrossLines(t *testing.T) {
	lx := newTestLexer("s = \"abc\\\nf(x)\" + g(y)")
	lx.EnsureAll()
	assert.Equal(t, InString, lx.Lines.Line(0).ExitState)
	l1 := lx.Lines.Line(1)
	require.Len(t, l1.Parens, 2)
	assert.Equal(t, 9, l1.Parens[0].Offset)
	assert.Equal(t, token.String, l1.TokenAt(1))
}

func TestUnterminatedComment(t *testing.T) {
	lx := newTestLexer("a(\n/* never closed\nfunction f() {\n}")
	lx.EnsureAll()
	for i := 1; i < 4; i++ {
		l := lx.Lines.Line(i)
		assert.Equal(t, InBlockComment, l.ExitState, "line %d", i)
		assert.Empty(t, l.Parens)
		assert.Equal(t, lines.InFunction, l.Kind)
	}
}

func TestEmptyDocument(t *testing.T) {
	lx := newTestLexer("")
	assert.Nil(t, lx.EnsureLexed(0))
	assert.Nil(t, lx.Spans(0))
	assert.Equal(t, lines.Unclassified, lx.Kind(0))
	lx.EnsureAll()
	assert.Equal(t, 0, lx.nlexed)
}

func TestIncrementalNoCascade(t *testing.T) {
	src := "var a = 1;\nvar b = 2;\nvar c = 3;\nvar d = 4;\nvar e = 5;"
	lx := newTestLexer(src)
	lx.EnsureAll()
	assert.Equal(t, 5, lx.nlexed)

	lx.Lines.InsertText(textpos.Pos{Line: 1, Char: 9}, "2")
	assert.Equal(t, 1, lx.Lines.LexedThrough())
	lx.EnsureAll()
	assert.Equal(t, 6, lx.nlexed)
	assert.Equal(t, 5, lx.Lines.LexedThrough())

	// opening a comment changes the entry of every following line
	lx.Lines.InsertText(textpos.Pos{Line: 1, Char: 0}, "/*")
	lx.EnsureAll()
	assert.Equal(t, 10, lx.nlexed)
	assert.Equal(t, InBlockComment, lx.Lines.Line(4).ExitState)

	lx.Lines.DeleteRange(textpos.NewRegion(1, 0, 1, 2))
	lx.EnsureLexed(2)
	assert.Equal(t, 12, lx.nlexed)
	assert.Equal(t, 3, lx.Lines.LexedThrough())
	lx.EnsureAll()
	assert.Equal(t, 14, lx.nlexed)
	assert.Equal(t, Standard, lx.Lines.Line(4).ExitState)
}

// assertFresh asserts that the analysis of every line of lx equals
// the analysis of a new lexer over the same text.
func assertFresh(t *testing.T, lx *Lexer) {
	t.Helper()
	lx.EnsureAll()
	fresh := newTestLexer(lx.Lines.String())
	fresh.EnsureAll()
	require.Equal(t, fresh.Lines.NumLines(), lx.Lines.NumLines())
	for i := range fresh.Lines.NumLines() {
		a, b := lx.Lines.Line(i), fresh.Lines.Line(i)
		assert.Equal(t, b.ExitState, a.ExitState, "line %d", i)
		assert.Equal(t, b.Parens, a.Parens, "line %d", i)
		assert.Equal(t, b.Spans, a.Spans, "line %d", i)
		assert.Equal(t, b.Kind, a.Kind, "line %d", i)
		assert.Equal(t, b.OneLine, a.OneLine, "line %d", i)
	}
}

func TestLexedMatchesFresh(t *testing.T) {
	lx := newTestLexer("function f(a) {\n  return 'x';\n}")
	lx.EnsureAll()
	lx.Lines.InsertText(textpos.Pos{Line: 1, Char: 2}, "/* c */ g(\"{\");\n  ")
	assertFresh(t, lx)
}

func TestFunctionEndAfterHeaderEdit(t *testing.T) {
	lx := newTestLexer("if (a) {\n  b();\n}\nvar y;\nvar z;\n")
	assert.Equal(t, lines.InFunction, lx.Kind(2))

	lx.Lines.ReplaceRange(textpos.NewRegion(0, 0, 0, 6), "function a()")
	assert.Equal(t, lines.FunctionStart, lx.Kind(0))
	assert.Equal(t, lines.FunctionEnd, lx.Kind(2))
	assertFresh(t, lx)

	// the header is only lexed up to line 0 before line 2 is read
	lx.Lines.ReplaceRange(textpos.NewRegion(0, 0, 0, 12), "while (a)")
	lx.EnsureLexed(0)
	assert.Equal(t, lines.InFunction, lx.Kind(2))
	assertFresh(t, lx)

	// a header on its own line, with the brace on the next
	lx.Lines.SetString("var f = g()\n{\n  b();\n}\nh(function() { x(); });")
	lx.EnsureAll()
	lx.Lines.ReplaceRange(textpos.NewRegion(0, 8, 0, 9), "function")
	assert.Equal(t, lines.FunctionEnd, lx.Kind(3))
	assert.True(t, lx.Lines.Line(4).OneLine)
	assertFresh(t, lx)
}

func TestRelex(t *testing.T) {
	lx := newTestLexer("function f(a) {\n  return 'x';\n}")
	lx.EnsureAll()
	l := lx.Lines.Line(1)
	l.Kind = lines.FunctionStart
	l.Spans = nil
	lx.Lines.Line(2).Parens = nil
	assert.Nil(t, lx.Spans(1))

	lx.Relex()
	assert.Equal(t, 3, lx.Lines.LexedThrough())
	assert.Equal(t, lines.InFunction, l.Kind)
	assert.Equal(t, lines.FunctionEnd, lx.Kind(2))
	assertFresh(t, lx)
}

func TestReentrantPanics(t *testing.T) {
	lx := newTestLexer("a\nb")
	lx.active = 0
	assert.Panics(t, func() { lx.EnsureLexed(1) })
}

func TestStateName(t *testing.T) {
	assert.Equal(t, "CComment", StateName(InBlockComment))
	assert.Equal(t, "Unknown", StateName(lines.Unknown))
	assert.Equal(t, "Invalid", StateName(NumStates))
}
