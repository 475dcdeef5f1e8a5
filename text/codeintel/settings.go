// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codeintel

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pdfstudio/scriptcore/text/arghint"
	"github.com/pdfstudio/scriptcore/text/fold"
	"github.com/pdfstudio/scriptcore/text/highlighting"
	"github.com/pelletier/go-toml/v2"
)

// DefaultSettingsPath is the default location of the settings file.
const DefaultSettingsPath = "~/.scriptcore/settings.toml"

// Settings are the user settings of the script editor engines,
// stored in TOML.
type Settings struct {

	// Style is the name of the chroma style used to render highlighting.
	Style string `toml:"style"`

	// Keywords are additional words highlighted as keywords,
	// such as the names of host functions.
	Keywords []string `toml:"keywords,omitempty"`

	// Constants are additional words highlighted as constants.
	Constants []string `toml:"constants,omitempty"`

	// MatchLines is the maximum number of lines searched for a
	// matching bracket. 0 is unlimited.
	MatchLines int `toml:"match_lines"`

	// HintLines is the maximum number of lines searched backward for
	// the call enclosing the cursor.
	HintLines int `toml:"hint_lines"`

	// Completion enables completion and argument hints.
	Completion bool `toml:"completion"`

	// FoldStore is the file in which fold states are kept.
	// Empty keeps them in memory only.
	FoldStore string `toml:"fold_store"`
}

// NewSettings returns new settings with default values.
func NewSettings() *Settings {
	st := &Settings{}
	st.Defaults()
	return st
}

// Defaults sets the default values for all of the settings.
func (st *Settings) Defaults() {
	st.Style = highlighting.DefaultStyle
	st.Keywords = nil
	st.Constants = nil
	st.MatchLines = 0
	st.HintLines = arghint.DefaultMaxLines
	st.Completion = true
	st.FoldStore = fold.DefaultStorePath
}

// Open reads the settings from the given TOML file, on top of the
// current values. A missing file is not an error.
func (st *Settings) Open(path string) error {
	fn, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("codeintel: no settings file", "file", fn)
			return nil
		}
		return err
	}
	if err := toml.Unmarshal(b, st); err != nil {
		return fmt.Errorf("codeintel: reading settings %s: %w", fn, err)
	}
	if !highlighting.HasStyle(st.Style) {
		slog.Warn("codeintel: unknown style, using default", "style", st.Style)
		st.Style = highlighting.DefaultStyle
	}
	return nil
}

// Save writes the settings to the given TOML file.
func (st *Settings) Save(path string) error {
	fn, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	b, err := toml.Marshal(st)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0666)
}

// LoadSettings returns the default settings updated from the given
// file, or from [DefaultSettingsPath] if path is empty.
func LoadSettings(path string) (*Settings, error) {
	if path == "" {
		path = DefaultSettingsPath
	}
	st := NewSettings()
	return st, st.Open(path)
}

// Store returns the fold state store named by FoldStore.
func (st *Settings) Store() fold.StateStore {
	if st.FoldStore == "" {
		return fold.MemStore{}
	}
	return fold.NewFileStore(st.FoldStore)
}
