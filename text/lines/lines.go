// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lines provides the line store of a script document: an
// ordered, mutable sequence of [Line]s, each carrying the analysis
// cached for it by the lexer and the engines built on it.
//
// Lines owns no analysis logic. Edits only mark the changed lines
// stale and lower the lexed watermark; the lexer re-derives stale
// lines lazily.
package lines

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdfstudio/scriptcore/base/errors"
	"github.com/pdfstudio/scriptcore/text/textpos"
)

// Lines is the line store of one document. It is not safe for
// concurrent use: one editing session owns it.
type Lines struct {
	lines []*Line

	// lines [0, lexedThrough) are known to be consistent:
	// each was lexed with the exit state of its predecessor.
	lexedThrough int

	// incremented on every change of the text
	version int
}

// NewLines returns a new empty Lines.
func NewLines() *Lines {
	return &Lines{}
}

// NewLinesFromString returns a new Lines holding the given text.
func NewLinesFromString(text string) *Lines {
	ls := &Lines{}
	ls.SetString(text)
	return ls
}

// SetText sets the text to the given bytes, replacing all lines.
// A single trailing line feed is dropped; empty text gives zero lines.
func (ls *Lines) SetText(text []byte) *Lines {
	ls.SetString(string(text))
	return ls
}

// SetString sets the text to the given string.
func (ls *Lines) SetString(text string) *Lines {
	ls.lines = nil
	ls.lexedThrough = 0
	ls.version++
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return ls
	}
	for s := range strings.SplitSeq(text, "\n") {
		ls.lines = append(ls.lines, newLine([]rune(strings.TrimSuffix(s, "\r"))))
	}
	return ls
}

// NumLines returns the number of lines.
func (ls *Lines) NumLines() int {
	return len(ls.lines)
}

// Line returns the line at given index, or nil if out of range.
func (ls *Lines) Line(ln int) *Line {
	if ln < 0 || ln >= len(ls.lines) {
		return nil
	}
	return ls.lines[ln]
}

// Index returns the current index of the given line handle, or -1.
func (ls *Lines) Index(l *Line) int {
	return slices.Index(ls.lines, l)
}

// Text returns the current text lines as a slice of bytes,
// with an additional line feed at the end, per POSIX standards.
func (ls *Lines) Text() []byte {
	if len(ls.lines) == 0 {
		return nil
	}
	var b []byte
	for _, l := range ls.lines {
		b = append(b, string(l.Text)...)
		b = append(b, '\n')
	}
	return b
}

// String returns the current text as a string.
func (ls *Lines) String() string {
	return string(ls.Text())
}

// LexedThrough returns the number of leading lines known to be
// consistently lexed.
func (ls *Lines) LexedThrough() int {
	return ls.lexedThrough
}

// Version returns a counter that changes whenever the text changes.
func (ls *Lines) Version() int {
	return ls.version
}

// SetLexedThrough records that lines [0, n) are consistently lexed.
func (ls *Lines) SetLexedThrough(n int) {
	ls.lexedThrough = min(max(n, 0), len(ls.lines))
}

// Invalidate marks the given line stale and lowers the lexed
// watermark to it, so the next line's entry state is re-checked.
func (ls *Lines) Invalidate(ln int) {
	if l := ls.Line(ln); l != nil {
		l.invalidate()
	}
	ls.lexedThrough = min(ls.lexedThrough, max(ln, 0))
}

// InvalidateAll marks every line stale.
func (ls *Lines) InvalidateAll() {
	for _, l := range ls.lines {
		l.invalidate()
	}
	ls.lexedThrough = 0
}

// IsValidPos returns an error if the position is not valid for
// the current text. The position just past the last rune of a
// line is valid.
func (ls *Lines) IsValidPos(pos textpos.Pos) error {
	if pos.Line < 0 || pos.Line >= len(ls.lines) {
		return fmt.Errorf("lines: line %d out of range [0, %d)", pos.Line, len(ls.lines))
	}
	if pos.Char < 0 || pos.Char > len(ls.lines[pos.Line].Text) {
		return fmt.Errorf("lines: char %d out of range on line %d (len %d)", pos.Char, pos.Line, len(ls.lines[pos.Line].Text))
	}
	return nil
}

// InsertText inserts the given text at the given position,
// returning the insertion [textpos.Edit], or nil for an invalid
// position. Inserting into an empty document creates its first line.
func (ls *Lines) InsertText(pos textpos.Pos, text string) *textpos.Edit {
	if len(ls.lines) == 0 && pos == (textpos.Pos{}) {
		ls.lines = append(ls.lines, newLine(nil))
	}
	if errors.Log(ls.IsValidPos(pos)) != nil {
		return nil
	}
	parts := strings.Split(text, "\n")
	rparts := make([][]rune, len(parts))
	for i, p := range parts {
		rparts[i] = []rune(p)
	}
	l := ls.lines[pos.Line]
	before := slices.Clone(l.Text[:pos.Char])
	after := slices.Clone(l.Text[pos.Char:])
	nl := len(rparts)
	if nl == 1 {
		l.Text = append(append(before, rparts[0]...), after...)
	} else {
		l.Text = append(before, rparts[0]...)
		added := make([]*Line, 0, nl-1)
		for _, p := range rparts[1 : nl-1] {
			added = append(added, newLine(slices.Clone(p)))
		}
		added = append(added, newLine(append(slices.Clone(rparts[nl-1]), after...)))
		ls.lines = slices.Insert(ls.lines, pos.Line+1, added...)
	}
	ls.version++
	ls.Invalidate(pos.Line)
	ed := &textpos.Edit{Text: rparts}
	ed.Region.Start = pos
	ed.Region.End = textpos.Pos{Line: pos.Line + nl - 1, Char: len(rparts[nl-1])}
	if nl == 1 {
		ed.Region.End.Char += pos.Char
	}
	return ed
}

// DeleteRange deletes the text in the given region, returning the
// deletion [textpos.Edit], or nil for an invalid or empty region.
func (ls *Lines) DeleteRange(reg textpos.Region) *textpos.Edit {
	reg = reg.Normalized()
	if errors.Log(ls.IsValidPos(reg.Start)) != nil || errors.Log(ls.IsValidPos(reg.End)) != nil {
		return nil
	}
	if reg.IsNil() {
		return nil
	}
	st, ed := reg.Start, reg.End
	te := &textpos.Edit{Region: reg, Delete: true}
	if st.Line == ed.Line {
		te.Text = [][]rune{slices.Clone(ls.lines[st.Line].Text[st.Char:ed.Char])}
	} else {
		te.Text = append(te.Text, slices.Clone(ls.lines[st.Line].Text[st.Char:]))
		for ln := st.Line + 1; ln < ed.Line; ln++ {
			te.Text = append(te.Text, slices.Clone(ls.lines[ln].Text))
		}
		te.Text = append(te.Text, slices.Clone(ls.lines[ed.Line].Text[:ed.Char]))
	}
	l := ls.lines[st.Line]
	tail := slices.Clone(ls.lines[ed.Line].Text[ed.Char:])
	l.Text = append(l.Text[:st.Char:st.Char], tail...)
	if ed.Line > st.Line {
		ls.lines = slices.Delete(ls.lines, st.Line+1, ed.Line+1)
	}
	ls.version++
	ls.Invalidate(st.Line)
	return te
}

// ReplaceRange replaces the text in the given region with the given
// text, returning the insertion [textpos.Edit].
func (ls *Lines) ReplaceRange(reg textpos.Region, text string) *textpos.Edit {
	reg = reg.Normalized()
	if errors.Log(ls.IsValidPos(reg.Start)) != nil {
		return nil
	}
	ls.DeleteRange(reg)
	return ls.InsertText(reg.Start, text)
}

// DeleteLines removes lines [st, ed) entirely, including their line feeds.
func (ls *Lines) DeleteLines(st, ed int) {
	st = max(st, 0)
	ed = min(ed, len(ls.lines))
	if st >= ed {
		return
	}
	ls.lines = slices.Delete(ls.lines, st, ed)
	ls.version++
	ls.Invalidate(st)
}
