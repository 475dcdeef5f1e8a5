// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codeintel

// Keys are the keys a [Session] distinguishes.
type Keys int32

const (
	// KeyRune is a printable character, given by [Key.Rune].
	KeyRune Keys = iota
	KeyTab
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

func (k Keys) String() string {
	switch k {
	case KeyRune:
		return "Rune"
	case KeyTab:
		return "Tab"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyBackspace:
		return "Backspace"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	}
	return "Unknown"
}

// Key is a key press.
type Key struct {
	Code Keys

	// Rune is the character for [KeyRune].
	Rune rune

	// Ctrl is set if the control modifier is down.
	Ctrl bool
}

// Rune returns the Key for typing the given character.
func Rune(r rune) Key {
	return Key{Code: KeyRune, Rune: r}
}

func (k Key) String() string {
	s := k.Code.String()
	if k.Code == KeyRune {
		s = string(k.Rune)
	}
	if k.Ctrl {
		s = "Ctrl+" + s
	}
	return s
}
