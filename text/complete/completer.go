// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complete

import (
	"strings"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/resolve"
	"github.com/pdfstudio/scriptcore/text/textpos"
)

// Result is the outcome of a completion request: nothing, a text to
// insert directly when there is a single candidate, or a list.
type Result struct {

	// Insert is the edit for a single candidate.
	Insert *Edit

	// List is the popup for more than one candidate.
	List *List
}

// IsEmpty returns true if there is nothing to complete.
func (r Result) IsEmpty() bool {
	return r.Insert == nil && r.List == nil
}

// Completer answers completion requests in the document of its Lexer.
type Completer struct {
	Lexer *lexer.Lexer

	Index *Index

	// Resolver provides member completion after a dot.
	Resolver resolve.Resolver
}

// NewCompleter returns a new Completer whose index is seeded with
// the keywords. A nil resolver disables member completion.
func NewCompleter(lx *lexer.Lexer, rs resolve.Resolver) *Completer {
	if rs == nil {
		rs = resolve.Nop{}
	}
	ix := NewIndex()
	ix.AddWords(lexer.Keywords...)
	ix.AddWords(lexer.Constants...)
	return &Completer{Lexer: lx, Index: ix, Resolver: rs}
}

// Complete completes the text before the given cursor position.
// After a single dot it completes members of the object before the
// dot; otherwise it completes the identifier before the cursor from
// the index, which is updated first.
func (cp *Completer) Complete(pos textpos.Pos) Result {
	l := cp.Lexer.EnsureLexed(pos.Line)
	if l == nil || pos.Char <= 0 || pos.Char > len(l.Text) {
		return Result{}
	}
	if l.TokenAt(pos.Char - 1).IsLiteral() {
		return Result{}
	}
	if path, ok := MemberPath(l.Text[:pos.Char]); ok {
		return cp.members(path)
	}
	prefix := Prefix(l, pos.Char)
	if prefix == "" {
		return Result{}
	}
	cp.Index.Update(cp.Lexer)
	words := cp.Index.Query(prefix)
	switch len(words) {
	case 0:
		return Result{}
	case 1:
		ed := EditFor(prefix, words[0])
		return Result{Insert: &ed}
	}
	cs := make(Completions, len(words))
	for i, w := range words {
		cs[i] = Completion{Text: w}
		if cp.Lexer.IsKeyword(w) {
			cs[i].Category = resolve.Keyword.String()
		}
	}
	return Result{List: NewList(prefix, cs)}
}

// Members returns the member completions of the object at the
// given dotted path.
func (cp *Completer) Members(path string) Completions {
	mems := cp.Resolver.ResolveMembers(path)
	cs := make(Completions, 0, len(mems))
	for _, m := range mems {
		cs = append(cs, Completion{Text: m.Name, Category: m.Category.String(), Desc: m.Detail})
	}
	return cs
}

func (cp *Completer) members(path string) Result {
	cs := cp.Members(path)
	switch len(cs) {
	case 0:
		return Result{}
	case 1:
		return Result{Insert: &Edit{NewText: cs[0].Text}}
	}
	return Result{List: NewList("", cs)}
}

// MemberPath returns the dotted object path before a trailing single
// dot of the given text. It returns false if the text does not end in
// a single dot or there is no object before it.
func MemberPath(txt []rune) (string, bool) {
	n := len(txt)
	if n < 2 || txt[n-1] != '.' || txt[n-2] == '.' {
		return "", false
	}
	st := n - 1
	for st > 0 && (lexer.IsWordRune(txt[st-1]) || txt[st-1] == '.') {
		st--
	}
	path := strings.Trim(string(txt[st:n-1]), ".")
	if path == "" {
		return "", false
	}
	return path, true
}
