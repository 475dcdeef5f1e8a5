// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package complete

import (
	"log/slog"
	"slices"
	"strings"

	"github.com/pdfstudio/scriptcore/text/lexer"
	"github.com/pdfstudio/scriptcore/text/lines"
)

// Mode selects how a harvest treats what is already in the index.
type Mode int32

const (
	// Loose clears the index and takes every word of every line.
	// It is used when the document differs from the last harvest.
	Loose Mode = iota

	// Strict only scans lines whose length changed since their last
	// harvest, and retires the earlier words of such a line that a
	// new word of the same line extends or truncates, so that partial
	// words typed along the way do not linger.
	Strict
)

func (m Mode) String() string {
	if m == Strict {
		return "Strict"
	}
	return "Loose"
}

// Index maps the first rune of each identifier in a document to the
// set of distinct identifiers starting with it.
type Index struct {

	// words by first rune, with the number of sources of each
	words map[rune]map[string]int

	// words last taken from each line
	sources map[*lines.Line][]string

	// words added with AddWords, which are never retired
	seeds map[string]bool

	// document of the last harvest
	doc *lines.Lines
}

// NewIndex returns a new empty Index.
func NewIndex() *Index {
	ix := &Index{seeds: map[string]bool{}}
	ix.reset()
	return ix
}

func (ix *Index) reset() {
	ix.words = map[rune]map[string]int{}
	ix.sources = map[*lines.Line][]string{}
	for w := range ix.seeds {
		ix.ref(w, 1)
	}
}

func (ix *Index) ref(w string, n int) {
	r := []rune(w)[0]
	m := ix.words[r]
	if m == nil {
		m = map[string]int{}
		ix.words[r] = m
	}
	m[w] += n
	if m[w] <= 0 {
		delete(m, w)
	}
}

// AddWords adds words that are always offered, such as keywords.
func (ix *Index) AddWords(words ...string) {
	for _, w := range words {
		if w == "" || ix.seeds[w] {
			continue
		}
		ix.seeds[w] = true
		ix.ref(w, 1)
	}
}

// Len returns the number of distinct words in the index.
func (ix *Index) Len() int {
	n := 0
	for _, m := range ix.words {
		n += len(m)
	}
	return n
}

// Update harvests the document of the given lexer, in [Strict] mode
// if it is the document of the last harvest, else in [Loose] mode.
func (ix *Index) Update(lx *lexer.Lexer) {
	mode := Strict
	if ix.doc != lx.Lines {
		mode = Loose
	}
	ix.Harvest(lx, mode)
}

// Harvest collects the identifiers of the document of the given lexer.
// Identifiers are maximal runs of letters, digits, _ and # outside of
// string and comment spans.
func (ix *Index) Harvest(lx *lexer.Lexer, mode Mode) {
	ls := lx.Lines
	if mode == Loose {
		ix.reset()
	}
	live := make(map[*lines.Line]bool, ls.NumLines())
	scanned := 0
	for k := range ls.NumLines() {
		l := lx.EnsureLexed(k)
		live[l] = true
		if mode == Strict && l.HarvestLen == len(l.Text) {
			continue
		}
		ix.harvestLine(l, Words(l), mode)
		l.HarvestLen = len(l.Text)
		scanned++
	}
	for l, ws := range ix.sources {
		if live[l] {
			continue
		}
		for _, w := range ws {
			ix.ref(w, -1)
		}
		delete(ix.sources, l)
	}
	ix.doc = ls
	slog.Debug("complete: harvested", "mode", mode, "lines", ls.NumLines(), "scanned", scanned, "words", ix.Len())
}

func (ix *Index) harvestLine(l *lines.Line, words []string, mode Mode) {
	old := ix.sources[l]
	var keep []string
	if mode == Strict {
		for _, w := range old {
			if slices.Contains(words, w) || !overlaps(w, words) {
				keep = append(keep, w)
			}
		}
	}
	src := keep
	for _, w := range words {
		if !slices.Contains(src, w) {
			src = append(src, w)
		}
	}
	for _, w := range old {
		ix.ref(w, -1)
	}
	for _, w := range src {
		ix.ref(w, 1)
	}
	if len(src) == 0 {
		delete(ix.sources, l)
		return
	}
	ix.sources[l] = src
}

// overlaps returns true if w is a proper prefix of one of words,
// or one of words is a proper prefix of w.
func overlaps(w string, words []string) bool {
	for _, nw := range words {
		if nw != w && (strings.HasPrefix(nw, w) || strings.HasPrefix(w, nw)) {
			return true
		}
	}
	return false
}

// Words returns the identifiers of the given line in order, with
// duplicates, skipping string and comment spans.
func Words(l *lines.Line) []string {
	var words []string
	var buf []rune
	for i, r := range l.Text {
		if lexer.IsWordRune(r) && !l.TokenAt(i).IsLiteral() {
			buf = append(buf, r)
			continue
		}
		if len(buf) > 0 {
			words = append(words, string(buf))
			buf = buf[:0]
		}
	}
	if len(buf) > 0 {
		words = append(words, string(buf))
	}
	return words
}

// Query returns the words longer than prefix that start with it,
// sorted. It returns nil for an empty prefix.
func (ix *Index) Query(prefix string) []string {
	if prefix == "" {
		return nil
	}
	m := ix.words[[]rune(prefix)[0]]
	var res []string
	for w := range m {
		if len(w) > len(prefix) && strings.HasPrefix(w, prefix) {
			res = append(res, w)
		}
	}
	slices.Sort(res)
	return res
}

// Prefix returns the identifier characters immediately before the
// given rune offset of the given line.
func Prefix(l *lines.Line, ch int) string {
	if l == nil {
		return ""
	}
	ch = min(ch, len(l.Text))
	st := ch
	for st > 0 && lexer.IsWordRune(l.Text[st-1]) {
		st--
	}
	return string(l.Text[st:ch])
}
