// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package arghint

import (
	"testing"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/resolve"
	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHinter(src string) *Hinter {
	rs := resolve.NewStatic().
		AddSignature("foo", "a", "b").
		AddSignature("connect", "sender : QObject", "signal : String", "receiver : QObject", "slot : String").
		AddSignature("connect", "sender : QObject", "signal : String", "receiver : Function")
	rs.Signatures["startTimer"] = []resolve.ParameterList{{Params: []string{"interval : Number", "callback : Function"}, Suffix: " : Number"}}
	return NewHinter(lexer.NewLexer(lines.NewLinesFromString(src)), rs)
}

func TestActiveParameter(t *testing.T) {
	hn := newTestHinter("foo(")
	h, ok := hn.Locate(textpos.Pos{Line: 0, Char: 4})
	require.True(t, ok)
	assert.Equal(t, "foo( **a**, b )", h.String())
	assert.Equal(t, textpos.Pos{Line: 0, Char: 3}, h.Open)

	hn.Lexer.Lines.InsertText(textpos.Pos{Line: 0, Char: 4}, "x, ")
	require.True(t, hn.Update(h, textpos.Pos{Line: 0, Char: 7}))
	assert.Equal(t, 1, h.Active)
	assert.Equal(t, "foo( a, **b** )", h.String())
	assert.Equal(t, "foo( a, <b>b</b> )", h.HTML())
}

func TestNestedAndLiterals(t *testing.T) {
	hn := newTestHinter("obj.foo(bar(1, 2), [3, 4], \"5,6\",\n  ")
	h, ok := hn.Locate(textpos.Pos{Line: 1, Char: 2})
	require.True(t, ok)
	assert.Equal(t, "obj.foo", h.Function)
	assert.Equal(t, "foo", h.Name())
	assert.Equal(t, 3, h.Active)
	assert.Equal(t, "foo( a, b )", h.String())

	// inside the inner call, which has no known signature
	_, ok = hn.Locate(textpos.Pos{Line: 0, Char: 13})
	assert.False(t, ok)
}

func TestLeaveCall(t *testing.T) {
	hn := newTestHinter("foo(x) + 1")
	h, ok := hn.Locate(textpos.Pos{Line: 0, Char: 5})
	require.True(t, ok)
	assert.False(t, hn.Update(h, textpos.Pos{Line: 0, Char: 6}))
	assert.False(t, hn.Update(h, textpos.Pos{Line: 0, Char: 3}))
	_, ok = hn.Locate(textpos.Pos{Line: 0, Char: 8})
	assert.False(t, ok)
}

func TestSignatures(t *testing.T) {
	hn := newTestHinter("connect (a, \"b\", ")
	h, ok := hn.Locate(textpos.Pos{Line: 0, Char: 17})
	require.True(t, ok)
	assert.Equal(t, 2, h.Active)
	assert.Len(t, h.Signatures, 2)
	assert.Equal(t, "connect( sender : QObject, signal : String, **receiver : QObject**, slot : String )", h.String())
	assert.False(t, h.Prev())
	assert.True(t, h.Next())
	assert.Equal(t, "connect( sender : QObject, signal : String, **receiver : Function** )", h.String())
	assert.False(t, h.Next())
	assert.Len(t, h.All(), 2)

	hn = newTestHinter("startTimer(")
	h, ok = hn.Locate(textpos.Pos{Line: 0, Char: 11})
	require.True(t, ok)
	assert.Equal(t, "startTimer( <b>interval : Number</b>, callback : Function ) : Number", h.HTML())
}

func TestNoHint(t *testing.T) {
	hn := newTestHinter("if (foo\n(a)\nbar(")
	_, ok := hn.Locate(textpos.Pos{Line: 0, Char: 4})
	assert.False(t, ok)
	_, ok = hn.Locate(textpos.Pos{Line: 1, Char: 1})
	assert.False(t, ok)
	_, ok = hn.Locate(textpos.Pos{Line: 2, Char: 4})
	assert.False(t, ok)
	_, ok = hn.Locate(textpos.Pos{Line: 9, Char: 0})
	assert.False(t, ok)

	hn = newTestHinter("foo(\n\n\n\n")
	hn.MaxLines = 2
	_, ok = hn.Locate(textpos.Pos{Line: 3, Char: 0})
	assert.False(t, ok)
	hn.MaxLines = 0
	_, ok = hn.Locate(textpos.Pos{Line: 3, Char: 0})
	assert.True(t, ok)
}
