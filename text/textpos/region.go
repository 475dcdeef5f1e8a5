// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textpos

// Region is a contiguous region within the text,
// defined by start and end [Pos] positions.
// End is exclusive.
type Region struct {
	// starting position of region
	Start Pos
	// ending position of region
	End Pos
}

// NewRegion creates a new text region using separate line and char
// values for start and end.
func NewRegion(stLn, stCh, edLn, edCh int) Region {
	return Region{Start: Pos{Line: stLn, Char: stCh}, End: Pos{Line: edLn, Char: edCh}}
}

// IsNil checks if the region is empty, because the start is after or equal to the end.
func (tr Region) IsNil() bool {
	return !tr.Start.IsLess(tr.End)
}

// Contains returns true if region contains position.
func (tr Region) Contains(ps Pos) bool {
	return ps.IsLess(tr.End) && (tr.Start == ps || tr.Start.IsLess(ps))
}

// Normalized returns the region with Start before End.
func (tr Region) Normalized() Region {
	if tr.End.IsLess(tr.Start) {
		return Region{Start: tr.End, End: tr.Start}
	}
	return tr
}
