// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package textpos provides position, region and edit types for
// line-based text.
package textpos

import "fmt"

// Pos is a position within a line-based text. It is recorded
// in 0, 0 offset positions, but is converted into 1,1 offset
// for public consumption. Char positions are always in runes, not bytes.
type Pos struct {
	Line int
	Char int
}

// String satisfies the fmt.Stringer interface.
func (ps Pos) String() string {
	return fmt.Sprintf("%d:%d", ps.Line+1, ps.Char+1)
}

// IsLess returns true if receiver position is less than given comparison.
func (ps Pos) IsLess(cmp Pos) bool {
	switch {
	case ps.Line < cmp.Line:
		return true
	case ps.Line == cmp.Line:
		return ps.Char < cmp.Char
	default:
		return false
	}
}
