// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package codeintel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pdfstudio/scriptcore/text/fold"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "settings.toml")
	st := NewSettings()
	st.Style = "monokai"
	st.Keywords = []string{"print", "app"}
	st.MatchLines = 200
	st.Completion = false
	require.NoError(t, st.Save(fn))

	got, err := LoadSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func TestSettingsMissing(t *testing.T) {
	st, err := LoadSettings(filepath.Join(t.TempDir(), "none.toml"))
	require.NoError(t, err)
	assert.Equal(t, NewSettings(), st)
	assert.Equal(t, 30, st.HintLines)
}

func TestSettingsBad(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(fn, []byte("style = \"nosuchstyle\"\nhint_lines = 5\n"), 0666))
	st, err := LoadSettings(fn)
	require.NoError(t, err)
	assert.Equal(t, "emacs", st.Style)
	assert.Equal(t, 5, st.HintLines)

	require.NoError(t, os.WriteFile(fn, []byte("style = [\n"), 0666))
	_, err = LoadSettings(fn)
	assert.ErrorContains(t, err, "reading settings")
}

func TestSettingsStore(t *testing.T) {
	st := NewSettings()
	fs, ok := st.Store().(*fold.FileStore)
	require.True(t, ok)
	assert.Equal(t, fold.DefaultStorePath, fs.Path)

	st.FoldStore = ""
	assert.IsType(t, fold.MemStore{}, st.Store())
}
