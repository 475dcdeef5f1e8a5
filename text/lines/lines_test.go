// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lines

import (
	"testing"

	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/pdfstudio/scriptcore/text/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetText(t *testing.T) {
	ls := NewLinesFromString("")
	assert.Equal(t, 0, ls.NumLines())
	assert.Nil(t, ls.Line(0))
	assert.Nil(t, ls.Text())

	ls.SetString("var a;\r\nfunction f() {\n}\n")
	require.Equal(t, 3, ls.NumLines())
	assert.Equal(t, "var a;", ls.Line(0).String())
	assert.Equal(t, "var a;\nfunction f() {\n}\n", ls.String())

	l := ls.Line(1)
	assert.Equal(t, Unknown, l.ExitState)
	assert.Equal(t, Unknown, l.EntryState)
	assert.True(t, l.FoldOpen)
	assert.Equal(t, -1, l.HarvestLen)
	assert.Equal(t, 1, ls.Index(l))
}

func TestInsertText(t *testing.T) {
	ls := NewLines()
	ed := ls.InsertText(textpos.Pos{}, "foo()")
	require.NotNil(t, ed)
	assert.Equal(t, 1, ls.NumLines())
	assert.Equal(t, textpos.NewRegion(0, 0, 0, 5), ed.Region)

	ls.Line(0).ExitState = 0
	ls.SetLexedThrough(1)

	ed = ls.InsertText(textpos.Pos{Line: 0, Char: 4}, "a,\n  b,\n  c")
	require.NotNil(t, ed)
	assert.Equal(t, "foo(a,\n  b,\n  c)\n", ls.String())
	assert.Equal(t, textpos.NewRegion(0, 4, 2, 3), ed.Region)
	assert.Equal(t, Unknown, ls.Line(0).ExitState)
	assert.Equal(t, 0, ls.LexedThrough())

	assert.Nil(t, ls.InsertText(textpos.Pos{Line: 7}, "x"))
}

func TestDeleteRange(t *testing.T) {
	ls := NewLinesFromString("one\ntwo\nthree\nfour")
	for i := range ls.NumLines() {
		ls.Line(i).ExitState = 0
	}
	ls.SetLexedThrough(4)

	ed := ls.DeleteRange(textpos.NewRegion(0, 1, 2, 2))
	require.NotNil(t, ed)
	assert.Equal(t, "oree\nfour\n", ls.String())
	assert.Equal(t, "ne\ntwo\nth", string(ed.ToBytes()))
	assert.Equal(t, Unknown, ls.Line(0).ExitState)
	assert.NotEqual(t, Unknown, ls.Line(1).ExitState)
	assert.Equal(t, 0, ls.LexedThrough())

	assert.Nil(t, ls.DeleteRange(textpos.NewRegion(1, 1, 1, 1)))

	ls.ReplaceRange(textpos.NewRegion(1, 0, 1, 4), "five")
	assert.Equal(t, "oree\nfive\n", ls.String())

	ls.DeleteLines(0, 1)
	assert.Equal(t, "five\n", ls.String())
}

func TestLineLookups(t *testing.T) {
	l := newLine([]rune(`a("x")`))
	l.Spans = []Span{{Start: 2, End: 5, Token: token.String}}
	l.Parens = []Paren{{Kind: Open, Char: '(', Offset: 1}, {Kind: Close, Char: ')', Offset: 5}}
	assert.Equal(t, token.None, l.TokenAt(0))
	assert.Equal(t, token.String, l.TokenAt(3))
	assert.Equal(t, token.None, l.TokenAt(5))
	assert.Equal(t, 1, l.ParenAt(5))
	assert.Equal(t, -1, l.ParenAt(3))
	assert.Equal(t, "InFunction", InFunction.String())
}
