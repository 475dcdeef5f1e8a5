// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package highlighting

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/pdfstudio/scriptcore/text/token"
)

// StyleEntry is the highlighting of one token class, for hosts that
// paint the token spans themselves.
type StyleEntry struct {

	// Color is the text color as #rrggbb, or empty.
	Color string `json:",omitempty"`

	// Background color as #rrggbb, or empty.
	Background string `json:",omitempty"`

	Bold bool `json:",omitempty"`

	Italic bool `json:",omitempty"`

	Underline bool `json:",omitempty"`
}

// StyleEntryFromChroma returns the style entry for a chroma entry.
func StyleEntryFromChroma(ce chroma.StyleEntry) StyleEntry {
	se := StyleEntry{
		Bold:      ce.Bold == chroma.Yes,
		Italic:    ce.Italic == chroma.Yes,
		Underline: ce.Underline == chroma.Yes,
	}
	if ce.Colour.IsSet() {
		se.Color = ce.Colour.String()
	}
	if ce.Background.IsSet() {
		se.Background = ce.Background.String()
	}
	return se
}

func (se StyleEntry) String() string {
	out := []string{}
	if se.Bold {
		out = append(out, "bold")
	}
	if se.Italic {
		out = append(out, "italic")
	}
	if se.Underline {
		out = append(out, "underline")
	}
	if se.Color != "" {
		out = append(out, se.Color)
	}
	if se.Background != "" {
		out = append(out, "bg:"+se.Background)
	}
	return strings.Join(out, " ")
}

// ToCSS converts StyleEntry to CSS attributes.
func (se StyleEntry) ToCSS() string {
	styles := []string{}
	if se.Color != "" {
		styles = append(styles, "color: "+se.Color)
	}
	if se.Background != "" {
		styles = append(styles, "background-color: "+se.Background)
	}
	if se.Bold {
		styles = append(styles, "font-weight: bold")
	}
	if se.Italic {
		styles = append(styles, "font-style: italic")
	}
	if se.Underline {
		styles = append(styles, "text-decoration: underline")
	}
	return strings.Join(styles, "; ")
}

// Style is a highlighting style, mapping each token class to its entry.
type Style map[token.Tokens]StyleEntry

// NewStyle returns the style of every token class in the named
// chroma style, falling back to the chroma default style.
func NewStyle(name string) Style {
	cs := styles.Get(name)
	hs := Style{}
	for tok := token.None; tok < token.TokensN; tok++ {
		hs[tok] = StyleEntryFromChroma(cs.Get(TokenType(tok)))
	}
	return hs
}

// ToCSS returns the CSS attributes of each token class.
func (hs Style) ToCSS() map[token.Tokens]string {
	css := map[token.Tokens]string{}
	for tok, se := range hs {
		if c := se.ToCSS(); c != "" {
			css[tok] = c
		}
	}
	return css
}

// Names returns the sorted names of the available styles.
func Names() []string {
	return styles.Names()
}
