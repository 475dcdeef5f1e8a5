// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package codeintel ties the lexer, bracket matcher, fold analyzer,
// completion and argument hints together over one document, and
// dispatches the key presses of a script editor to them.
package codeintel

import (
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/pdfstudio/scriptcore/base/errors"
	"github.com/pdfstudio/scriptcore/text/arghint"
	"github.com/pdfstudio/scriptcore/text/complete"
	"github.com/pdfstudio/scriptcore/text/fold"
	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
	"github.com/pdfstudio/scriptcore/text/parens"
	"github.com/pdfstudio/scriptcore/text/resolve"
	"github.com/pdfstudio/scriptcore/text/textpos"
	"github.com/pdfstudio/scriptcore/text/token"
)

// Action is the outcome of [Session.HandleKey]: the edits made to
// the document, the new cursor position, and the popups that should
// be shown afterwards.
type Action struct {

	// Handled is true if the key was consumed by the completion
	// popup or the argument hint instead of editing the text.
	Handled bool

	// Cursor is the cursor position after the key.
	Cursor textpos.Pos

	// Edits are the edits made to the document, in order.
	Edits []*textpos.Edit

	// List is the open completion popup, or nil.
	List *complete.List

	// Hint is the visible argument hint, or nil.
	Hint *arghint.Hint

	// Brackets is the bracket pair at the cursor, if any.
	Brackets *parens.Result
}

// Session is one document open in the script editor, with all of
// the engines working on it. It is not safe for concurrent use.
type Session struct {

	// ID identifies the document to the fold state store.
	ID string

	Settings *Settings

	Lines *lines.Lines

	Lexer *lexer.Lexer

	Matcher *parens.Matcher

	Folds *fold.Analyzer

	Completer *complete.Completer

	Hinter *arghint.Hinter

	// Store keeps the fold states between sessions.
	Store fold.StateStore

	list *complete.List
	hint *arghint.Hint
}

// NewSession returns a new empty Session with the given settings,
// using the given resolver for member completion and argument hints.
// Nil settings are the defaults.
func NewSession(st *Settings, rs resolve.Resolver) *Session {
	if st == nil {
		st = NewSettings()
	}
	ls := lines.NewLines()
	lx := lexer.NewLexer(ls)
	lx.AddKeywords(token.Keyword, st.Keywords...)
	lx.AddKeywords(token.Type, st.Constants...)
	s := &Session{Settings: st, Lines: ls, Lexer: lx, Store: st.Store()}
	s.Matcher = parens.NewMatcher(lx)
	s.Matcher.MaxLines = st.MatchLines
	s.Folds = fold.NewAnalyzer(lx)
	s.Completer = complete.NewCompleter(lx, rs)
	s.Completer.Index.AddWords(st.Keywords...)
	s.Hinter = arghint.NewHinter(lx, rs)
	s.Hinter.MaxLines = st.HintLines
	return s
}

// LoadDocument replaces the text with the given document, lexes it,
// and restores its fold states from the store.
func (s *Session) LoadDocument(id, text string) {
	s.ID = id
	s.Close()
	s.Lines.SetString(text)
	s.Lexer.EnsureAll()
	errors.Log(s.LoadFolds())
	slog.Debug("codeintel: loaded document", "doc", id, "lines", s.Lines.NumLines())
}

// Close closes the completion popup and the argument hint.
func (s *Session) Close() {
	s.list = nil
	s.hint = nil
}

// List returns the open completion popup, or nil.
func (s *Session) List() *complete.List {
	return s.list
}

// Hint returns the visible argument hint, or nil.
func (s *Session) Hint() *arghint.Hint {
	return s.hint
}

// InsertText inserts text at the given position.
func (s *Session) InsertText(pos textpos.Pos, text string) *textpos.Edit {
	return s.Lines.InsertText(pos, text)
}

// DeleteRange deletes the text in the given region.
func (s *Session) DeleteRange(reg textpos.Region) *textpos.Edit {
	return s.Lines.DeleteRange(reg)
}

// Update replaces the text of the document with the given text,
// editing only the lines that differ from it, so that unchanged
// lines keep their analysis and fold states.
func (s *Session) Update(text string) *textpos.Edit {
	s.Close()
	nls := lines.NewLinesFromString(text)
	n, m := s.Lines.NumLines(), nls.NumLines()
	same := func(i, j int) bool {
		return slices.Equal(s.Lines.Line(i).Text, nls.Line(j).Text)
	}
	p := 0
	for p < n && p < m && same(p, p) {
		p++
	}
	q := 0
	for q < n-p && q < m-p && same(n-1-q, m-1-q) {
		q++
	}
	if p == n && p == m {
		return nil
	}
	if n == 0 || (p == 0 && q == 0) {
		s.Lines.SetString(text)
		return nil
	}
	var added []string
	for j := p; j < m-q; j++ {
		added = append(added, nls.Line(j).String())
	}
	if q > 0 {
		ins := ""
		if len(added) > 0 {
			ins = strings.Join(added, "\n") + "\n"
		}
		return s.Lines.ReplaceRange(textpos.NewRegion(p, 0, n-q, 0), ins)
	}
	ins := ""
	if len(added) > 0 {
		ins = "\n" + strings.Join(added, "\n")
	}
	st := textpos.Pos{Line: p - 1, Char: len(s.Lines.Line(p - 1).Text)}
	ed := textpos.Pos{Line: n - 1, Char: len(s.Lines.Line(n - 1).Text)}
	return s.Lines.ReplaceRange(textpos.Region{Start: st, End: ed}, ins)
}

// Spans returns the token spans of the given line.
func (s *Session) Spans(ln int) []lines.Span {
	return s.Lexer.Spans(ln)
}

// BracketAt returns the bracket pair at the given cursor position.
func (s *Session) BracketAt(pos textpos.Pos) (parens.Result, bool) {
	return s.Matcher.AtCursor(pos)
}

// Visible returns whether the given line is shown, given the fold
// states of the functions enclosing it.
func (s *Session) Visible(ln int) bool {
	return s.Folds.Visible(ln)
}

// SaveFolds saves the fold states of the document to the store.
func (s *Session) SaveFolds() error {
	if s.ID == "" {
		return nil
	}
	return s.Folds.Save(s.Store, s.ID)
}

// LoadFolds restores the fold states of the document from the store.
func (s *Session) LoadFolds() error {
	if s.ID == "" {
		return nil
	}
	return s.Folds.Load(s.Store, s.ID)
}

// HandleKey handles a key pressed with the cursor at the given
// position. Typed text is inserted into the document, and the
// completion popup and argument hint are opened, narrowed, moved
// or closed as the key requires.
func (s *Session) HandleKey(k Key, cur textpos.Pos) Action {
	act := Action{Cursor: cur}
	switch {
	case s.list != nil:
		s.listKey(k, &act)
	case s.hint != nil && k.Ctrl && (k.Code == KeyUp || k.Code == KeyDown):
		if k.Code == KeyUp {
			s.hint.Prev()
		} else {
			s.hint.Next()
		}
		act.Handled = true
	case k.Code == KeyEscape:
		act.Handled = s.hint != nil
		s.hint = nil
	case k.Code == KeyTab:
		s.tab(&act)
	default:
		s.edit(k, &act)
	}
	if k.Code == KeyRune && k.Rune == '.' && s.list == nil && !act.Handled {
		s.memberComplete(&act)
	}
	if !act.Handled || len(act.Edits) > 0 {
		s.updateHint(k, act.Cursor)
	}
	act.List = s.list
	act.Hint = s.hint
	if r, ok := s.BracketAt(act.Cursor); ok {
		act.Brackets = &r
	}
	return act
}

// listKey handles a key while the completion popup is open. Typed
// characters go into the document and narrow the popup.
func (s *Session) listKey(k Key, act *Action) {
	switch k.Code {
	case KeyEnter, KeyTab:
		act.Handled = true
		if k.Code == KeyTab && len(s.list.Items) > 1 && s.list.Current < len(s.list.Items)-1 {
			s.list.Next()
			return
		}
		s.accept(act)
	case KeyEscape:
		act.Handled = true
		s.list = nil
	case KeyUp:
		act.Handled = true
		s.list.Prev()
	case KeyDown:
		act.Handled = true
		s.list.Next()
	case KeyBackspace:
		if !s.list.Backspace() {
			s.list = nil
		}
		s.edit(k, act)
	case KeyRune:
		if !s.list.Type(k.Rune) {
			s.list = nil
		}
		s.edit(k, act)
	default:
		s.list = nil
		s.edit(k, act)
	}
}

// accept inserts the selected completion and closes the popup.
// A completion with parameters opens the argument hint.
func (s *Session) accept(act *Action) {
	ed, ok := s.list.Accept()
	s.list = nil
	if !ok {
		return
	}
	s.apply(ed, act)
	if strings.Contains(ed.NewText, "(") {
		s.hint, _ = s.Hinter.Locate(act.Cursor)
	}
}

// apply applies a completion edit at the cursor.
func (s *Session) apply(ed complete.Edit, act *Action) {
	if ed.BackDelete > 0 {
		st := textpos.Pos{Line: act.Cursor.Line, Char: max(act.Cursor.Char-ed.BackDelete, 0)}
		if te := s.Lines.DeleteRange(textpos.Region{Start: st, End: act.Cursor}); te != nil {
			act.Edits = append(act.Edits, te)
			act.Cursor = st
		}
	}
	s.insert(ed.NewText, act)
}

func (s *Session) insert(text string, act *Action) {
	if text == "" {
		return
	}
	if te := s.Lines.InsertText(act.Cursor, text); te != nil {
		act.Edits = append(act.Edits, te)
		act.Cursor = te.Region.End
	}
}

// tab completes the word before the cursor, or inserts a tab at
// the start of a line or when there is nothing to complete.
func (s *Session) tab(act *Action) {
	if s.Settings.Completion {
		l := s.Lines.Line(act.Cursor.Line)
		if l != nil && act.Cursor.Char <= len(l.Text) && strings.TrimSpace(string(l.Text[:act.Cursor.Char])) != "" {
			res := s.Completer.Complete(act.Cursor)
			if !res.IsEmpty() {
				act.Handled = true
				s.open(res, act)
				return
			}
		}
	}
	s.insert("\t", act)
}

// memberComplete completes members after a typed dot.
func (s *Session) memberComplete(act *Action) {
	if !s.Settings.Completion {
		return
	}
	l := s.Lines.Line(act.Cursor.Line)
	if l == nil || act.Cursor.Char > len(l.Text) {
		return
	}
	if _, ok := complete.MemberPath(l.Text[:act.Cursor.Char]); !ok {
		return
	}
	s.open(s.Completer.Complete(act.Cursor), act)
}

func (s *Session) open(res complete.Result, act *Action) {
	switch {
	case res.Insert != nil:
		s.apply(*res.Insert, act)
	case res.List != nil:
		s.list = res.List
	}
}

// updateHint opens the argument hint on a typed ( and keeps a
// visible hint current as the cursor moves, closing it once the
// cursor leaves the call.
func (s *Session) updateHint(k Key, cur textpos.Pos) {
	if !s.Settings.Completion {
		return
	}
	if s.hint != nil && s.Hinter.Update(s.hint, cur) {
		return
	}
	s.hint = nil
	if k.Code == KeyRune && k.Rune == '(' {
		s.hint, _ = s.Hinter.Locate(cur)
	}
}

// edit applies the editing or movement of a key that completion did
// not consume.
func (s *Session) edit(k Key, act *Action) {
	cur := act.Cursor
	switch k.Code {
	case KeyRune:
		if unicode.IsPrint(k.Rune) || k.Rune == '\t' {
			s.insert(string(k.Rune), act)
		}
	case KeyEnter:
		s.insert("\n", act)
	case KeyBackspace:
		st, ok := s.back(cur)
		if !ok {
			return
		}
		if te := s.Lines.DeleteRange(textpos.Region{Start: st, End: cur}); te != nil {
			act.Edits = append(act.Edits, te)
			act.Cursor = st
		}
	case KeyLeft:
		act.Cursor, _ = s.back(cur)
	case KeyRight:
		act.Cursor = s.forward(cur)
	case KeyUp, KeyDown:
		ln := cur.Line - 1
		if k.Code == KeyDown {
			ln = cur.Line + 1
		}
		if l := s.Lines.Line(ln); l != nil {
			act.Cursor = textpos.Pos{Line: ln, Char: min(cur.Char, len(l.Text))}
		}
	}
}

// back returns the position one rune before pos, across lines.
func (s *Session) back(pos textpos.Pos) (textpos.Pos, bool) {
	if pos.Char > 0 {
		pos.Char--
		return pos, true
	}
	if pos.Line == 0 {
		return pos, false
	}
	ln := pos.Line - 1
	return textpos.Pos{Line: ln, Char: len(s.Lines.Line(ln).Text)}, true
}

// forward returns the position one rune after pos, across lines.
func (s *Session) forward(pos textpos.Pos) textpos.Pos {
	l := s.Lines.Line(pos.Line)
	if l == nil {
		return pos
	}
	if pos.Char < len(l.Text) {
		pos.Char++
		return pos
	}
	if pos.Line+1 < s.Lines.NumLines() {
		return textpos.Pos{Line: pos.Line + 1}
	}
	return pos
}
