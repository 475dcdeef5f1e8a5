// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

import (
	"path/filepath"
	"testing"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nested = `function outer() {
  var a = 1;
  function inner() {
    return a;
  }
  function one() { return 2; }
  return inner();
}
class C {
  constructor() {
  }
}
var end;`

func newTestAnalyzer(src string) *Analyzer {
	return NewAnalyzer(lexer.NewLexer(lines.NewLinesFromString(src)))
}

func visible(fa *Analyzer) []bool {
	var vs []bool
	for ln := range fa.Lexer.Lines.NumLines() {
		vs = append(vs, fa.Visible(ln))
	}
	return vs
}

func TestEnd(t *testing.T) {
	fa := newTestAnalyzer(nested)
	assert.Equal(t, 7, fa.End(0))
	assert.Equal(t, 4, fa.End(2))
	assert.Equal(t, 11, fa.End(8))
	assert.Equal(t, 10, fa.End(9))
	assert.Equal(t, -1, fa.End(1))
	assert.False(t, fa.IsFoldable(5))
	assert.Equal(t, lines.FunctionEnd, fa.Kind(5))
}

func TestCollapseNested(t *testing.T) {
	fa := newTestAnalyzer(nested)
	all := []bool{true, true, true, true, true, true, true, true, true, true, true, true, true}
	assert.Equal(t, all, visible(fa))

	require.True(t, fa.Collapse(2))
	assert.Equal(t, []bool{true, true, true, false, false, true, true, true, true, true, true, true, true}, visible(fa))

	require.True(t, fa.Collapse(0))
	assert.Equal(t, []bool{true, false, false, false, false, false, false, false, true, true, true, true, true}, visible(fa))

	// expanding the outer function keeps the inner one collapsed
	require.True(t, fa.Expand(0))
	assert.Equal(t, []bool{true, true, true, false, false, true, true, true, true, true, true, true, true}, visible(fa))
	assert.False(t, fa.Lexer.Lines.Line(2).FoldOpen)

	require.True(t, fa.Toggle(2))
	assert.Equal(t, all, visible(fa))
	assert.False(t, fa.Toggle(1))
	assert.False(t, fa.Collapse(12))
}

func TestCollapseAll(t *testing.T) {
	fa := newTestAnalyzer(nested)
	fa.CollapseAll(false)
	assert.Equal(t, []bool{false, false, true, false}, fa.States())
	assert.Equal(t, []bool{true, false, false, false, false, false, false, false, true, true, false, true, true}, visible(fa))

	fa.ExpandAll(true)
	assert.Equal(t, []bool{true, true, true, true}, fa.States())

	fa.CollapseAll(true)
	assert.Equal(t, []bool{true, false, false, false, false, false, false, false, true, false, false, false, true}, visible(fa))
	fa.ExpandAll(false)
	assert.Equal(t, []bool{true, true, false, true}, fa.States())
}

func TestMakeVisible(t *testing.T) {
	fa := newTestAnalyzer(nested)
	fa.CollapseAll(true)
	assert.False(t, fa.Visible(3))
	fa.MakeVisible(3)
	assert.True(t, fa.Visible(3))
	assert.Equal(t, []bool{true, true, false, false}, fa.States())
}

func TestVisibilityAfterEdit(t *testing.T) {
	fa := newTestAnalyzer(nested)
	fa.Collapse(2)
	assert.False(t, fa.Visible(3))
	fa.Lexer.Lines.InsertText(textpos.Pos{Line: 1, Char: 12}, "\n  var b = 2;")
	assert.Equal(t, []bool{true, true, true, true, false, false, true, true, true, true, true, true, true, true}, visible(fa))
}

func TestCollapseAfterHeaderEdit(t *testing.T) {
	fa := newTestAnalyzer("if (a) {\n  b();\n}\nvar y;\nvar z;\n")
	assert.Equal(t, []bool{true, true, true, true, true}, visible(fa))
	assert.False(t, fa.Collapse(0))

	fa.Lexer.Lines.ReplaceRange(textpos.NewRegion(0, 0, 0, 6), "function a()")
	assert.Equal(t, 2, fa.End(0))
	require.True(t, fa.Collapse(0))
	assert.Equal(t, []bool{true, false, false, true, true}, visible(fa))

	fa.Lexer.Lines.ReplaceRange(textpos.NewRegion(0, 0, 0, 12), "if (a)")
	assert.Equal(t, -1, fa.End(0))
	assert.Equal(t, []bool{true, true, true, true, true}, visible(fa))
}

func TestPersistence(t *testing.T) {
	fa := newTestAnalyzer(nested)
	fa.Collapse(2)
	fa.Collapse(9)

	ms := MemStore{}
	require.NoError(t, fa.Save(ms, "form.js"))
	assert.Equal(t, []bool{true, false, true, false}, ms["form.js"])

	fs := NewFileStore(filepath.Join(t.TempDir(), "sub", "folds.yaml"))
	require.NoError(t, fa.Save(fs, "form.js"))
	require.NoError(t, fs.SaveFolds("other.js", []bool{false}))

	fb := newTestAnalyzer(nested)
	require.NoError(t, fb.Load(fs, "form.js"))
	assert.Equal(t, []bool{true, false, true, false}, fb.States())
	assert.False(t, fb.Visible(3))
	assert.False(t, fb.Visible(10))

	st, err := fs.LoadFolds("missing")
	require.NoError(t, err)
	assert.Nil(t, st)
	require.NoError(t, fb.Load(ms, "missing"))
	assert.Equal(t, []bool{true, false, true, false}, fb.States())

	fb.Restore([]bool{false})
	assert.Equal(t, []bool{false, true, true, true}, fb.States())
	assert.Equal(t, DefaultStorePath, NewFileStore("").Path)
}

func TestEmpty(t *testing.T) {
	fa := newTestAnalyzer("")
	assert.Nil(t, fa.States())
	assert.False(t, fa.Visible(0))
	assert.Equal(t, -1, fa.End(0))
	fa.CollapseAll(true)
	fa.MakeVisible(0)
}
