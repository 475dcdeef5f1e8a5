// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

// Edit describes an edit action to line-based text, operating on
// a [Region] of the text. Actions are only deletions and insertions
// (a replacement is a deletion followed by an insertion).
type Edit struct {

	// Region for the edit, specifying the region to delete, or the size
	// of the region to insert, corresponding to the Text.
	Region Region

	// Text deleted or inserted, in rune lines.
	Text [][]rune

	// Delete indicates a deletion, otherwise an insertion.
	Delete bool
}

// ToBytes returns the Text of this edit record to a byte string, with
// newlines between lines. nil if Text is empty.
func (te *Edit) ToBytes() []byte {
	if te == nil || len(te.Text) == 0 {
		return nil
	}
	var b []byte
	for i, ln := range te.Text {
		b = append(b, string(ln)...)
		if i < len(te.Text)-1 {
			b = append(b, '\n')
		}
	}
	return b
}

// AdjustPos adjusts the given text position as a function of the edit.
// Positions inside a deleted region collapse onto its start.
func (te *Edit) AdjustPos(pos Pos) Pos {
	if te == nil {
		return pos
	}
	st, ed := te.Region.Start, te.Region.End
	if pos.IsLess(st) || pos == st {
		return pos
	}
	dl := ed.Line - st.Line
	if te.Delete {
		if pos.IsLess(ed) {
			return st
		}
		if pos.Line > ed.Line {
			pos.Line -= dl
			return pos
		}
		pos.Line = st.Line
		pos.Char = st.Char + (pos.Char - ed.Char)
		return pos
	}
	if pos.Line > st.Line {
		pos.Line += dl
		return pos
	}
	pos.Line += dl
	pos.Char = ed.Char + (pos.Char - st.Char)
	return pos
}
