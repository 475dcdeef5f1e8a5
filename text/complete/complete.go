// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package complete provides word completion for the script editor:
// an index of the identifiers used in a document, the popup list that
// narrows the candidates while typing, and member completion through
// a [resolve.Resolver].
package complete

import (
	"strings"
)

// Completion holds one potential completion
type Completion struct {

	// Text is the completion text: what will actually be inserted if selected.
	Text string

	// Category is the kind of member, such as function or property,
	// empty for words harvested from the document.
	Category string

	// Desc is extra description information.
	Desc string
}

// Completions is a full list (slice) of completion options
type Completions []Completion

// Texts returns the Text of each completion.
func (cs Completions) Texts() []string {
	s := make([]string, len(cs))
	for i, c := range cs {
		s[i] = c.Text
	}
	return s
}

// Edit is the change to the text that incorporates a completion:
// delete BackDelete runes before the cursor, then insert NewText.
type Edit struct {

	// completion text to insert at the cursor
	NewText string

	// number of runes before the cursor to delete first
	BackDelete int
}

// EditFor returns the edit that turns the typed text before the
// cursor into the given completion text.
func EditFor(typed, text string) Edit {
	if rest, ok := strings.CutPrefix(text, typed); ok {
		return Edit{NewText: rest}
	}
	return Edit{NewText: text, BackDelete: len([]rune(typed))}
}
