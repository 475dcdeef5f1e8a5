// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fold

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/pdfstudio/scriptcore/base/errors"
	"gopkg.in/yaml.v3"
)

// StateStore persists fold states keyed by a document identity
// supplied by the host.
type StateStore interface {

	// LoadFolds returns the states saved for the given document,
	// or nil if there are none.
	LoadFolds(id string) ([]bool, error)

	// SaveFolds saves the states for the given document.
	SaveFolds(id string, states []bool) error
}

// Save saves the current fold states of the analyzer under the
// given document id.
func (fa *Analyzer) Save(store StateStore, id string) error {
	return store.SaveFolds(id, fa.States())
}

// Load restores the fold states saved under the given document id.
// Nothing changes if there are none.
func (fa *Analyzer) Load(store StateStore, id string) error {
	st, err := store.LoadFolds(id)
	if err != nil {
		return err
	}
	if st != nil {
		fa.Restore(st)
	}
	return nil
}

// MemStore is a [StateStore] in memory.
type MemStore map[string][]bool

func (ms MemStore) LoadFolds(id string) ([]bool, error) {
	return ms[id], nil
}

func (ms MemStore) SaveFolds(id string, states []bool) error {
	ms[id] = append([]bool(nil), states...)
	return nil
}

// DefaultStorePath is the default path of a [FileStore].
const DefaultStorePath = "~/.scriptcore/folds.yaml"

// FileStore is a [StateStore] keeping the states of all documents
// in one YAML file, mapping document id to states.
type FileStore struct {

	// Path of the file; a leading ~ is expanded to the home directory.
	Path string
}

// NewFileStore returns a new FileStore at the given path,
// or at [DefaultStorePath] if it is empty.
func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultStorePath
	}
	return &FileStore{Path: path}
}

func (st *FileStore) file() (string, error) {
	return homedir.Expand(st.Path)
}

func (st *FileStore) read() (map[string][]bool, error) {
	fn, err := st.file()
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return map[string][]bool{}, nil
		}
		return nil, err
	}
	all := map[string][]bool{}
	if err := yaml.Unmarshal(b, &all); err != nil {
		return nil, fmt.Errorf("fold: reading %s: %w", fn, err)
	}
	return all, nil
}

func (st *FileStore) LoadFolds(id string) ([]bool, error) {
	all, err := st.read()
	if err != nil {
		return nil, err
	}
	return all[id], nil
}

func (st *FileStore) SaveFolds(id string, states []bool) error {
	all, err := st.read()
	if err != nil {
		return err
	}
	all[id] = states
	fn := errors.Ignore1(st.file())
	b, err := yaml.Marshal(all)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
		return err
	}
	slog.Debug("fold: saving states", "doc", id, "file", fn, "functions", len(states))
	return os.WriteFile(fn, b, 0666)
}
