// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complete

import "strings"

// List is an open completion popup. Its candidates are narrowed by
// literal substring match against the search string, which starts as
// the seed and follows the keys typed while the list is open.
type List struct {

	// Seed is the text before the cursor when the list opened.
	Seed string

	// Search is the current search string.
	Search string

	// Items are the candidates matching Search.
	Items Completions

	// Current is the index of the selected item in Items.
	Current int

	all Completions
}

// NewList returns a new List over the given candidates.
func NewList(seed string, items Completions) *List {
	ls := &List{Seed: seed, Search: seed, all: items}
	ls.narrow()
	return ls
}

// All returns every candidate of the list, regardless of Search.
func (ls *List) All() Completions {
	return ls.all
}

// Type adds a typed rune to the search string. It returns false if
// no candidate matches any more, in which case the list should close.
func (ls *List) Type(r rune) bool {
	ls.Search += string(r)
	return ls.narrow()
}

// Backspace removes the last rune of the search string. It returns
// false if the search string was already empty, in which case the
// list should close.
func (ls *List) Backspace() bool {
	if ls.Search == "" {
		return false
	}
	rs := []rune(ls.Search)
	ls.Search = string(rs[:len(rs)-1])
	return ls.narrow()
}

func (ls *List) narrow() bool {
	ls.Current = 0
	if ls.Search == "" {
		ls.Items = ls.all
		return len(ls.Items) > 0
	}
	ls.Items = nil
	for _, c := range ls.all {
		if strings.Contains(c.Text, ls.Search) {
			ls.Items = append(ls.Items, c)
		}
	}
	return len(ls.Items) > 0
}

// Next selects the next item. It returns false at the last item.
func (ls *List) Next() bool {
	if ls.Current >= len(ls.Items)-1 {
		return false
	}
	ls.Current++
	return true
}

// Prev selects the previous item. It returns false at the first item.
func (ls *List) Prev() bool {
	if ls.Current <= 0 {
		return false
	}
	ls.Current--
	return true
}

// Selected returns the selected item.
func (ls *List) Selected() (Completion, bool) {
	if ls.Current < 0 || ls.Current >= len(ls.Items) {
		return Completion{}, false
	}
	return ls.Items[ls.Current], true
}

// Accept returns the edit inserting the selected item, given that
// the search string is the text typed before the cursor.
func (ls *List) Accept() (Edit, bool) {
	c, ok := ls.Selected()
	if !ok {
		return Edit{}, false
	}
	return EditFor(ls.Search, c.Text), true
}
