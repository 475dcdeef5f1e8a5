// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/pdfstudio/scriptcore/text/codeintel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const boxes = `function area(w, h) {
  return w * h;
}
class Box {
  constructor(w) {
    this.w = w;
  }
}
var a = area(1, 2);
`

// writeFile writes a file in a new temporary directory.
func writeFile(t *testing.T, name, content string) string {
	fn := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

// run runs scriptlex with the given arguments and settings that
// keep fold states in memory.
func run(t *testing.T, args ...string) (string, error) {
	cfg := writeFile(t, "settings.toml", "fold_store = \"\"\n")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append([]string{"--config", cfg, "-q"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestOutline(t *testing.T) {
	fn := writeFile(t, "boxes.qs", boxes)
	out, err := run(t, "outline", fn)
	require.NoError(t, err)
	want := fmt.Sprintf("%-48s  1-3\n%-48s  4-8\n%-48s  5-7\n", "function area(w, h) {", "class Box {", "  constructor(w) {")
	assert.Equal(t, want, out)
}

func TestMatch(t *testing.T) {
	fn := writeFile(t, "boxes.qs", boxes)
	out, err := run(t, "match", fn, "1:14")
	require.NoError(t, err)
	assert.Equal(t, "1:14 1:19 Match\n", out)

	out, err = run(t, "match", fn, "3:1")
	require.NoError(t, err)
	assert.Equal(t, "1:21 3:1 Match\n", out)

	_, err = run(t, "match", fn, "2:1")
	assert.Error(t, err)
	_, err = run(t, "match", fn, "2")
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	fn := writeFile(t, "boxes.qs", boxes)
	out, err := run(t, "complete", fn, "9:11")
	require.NoError(t, err)
	assert.Equal(t, "insert \"ea\"\n", out)

	fn = writeFile(t, "app.qs", "var app = {title: 1, save: function() {}};\napp.title;")
	out, err = run(t, "--run", "complete", fn, "2:5")
	require.NoError(t, err)
	assert.Equal(t, "save   function\ntitle  property\n", out)
}

func TestHint(t *testing.T) {
	fn := writeFile(t, "boxes.qs", boxes)
	_, err := run(t, "hint", fn, "9:14")
	assert.Error(t, err)

	out, err := run(t, "--run", "hint", fn, "9:14")
	require.NoError(t, err)
	assert.Equal(t, "area( **w**, h )\n", out)

	fn = writeFile(t, "loop.qs", "while (true) {}")
	_, err = run(t, "--run", "--timeout", "20ms", "hint", fn, "1:8")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHighlight(t *testing.T) {
	fn := writeFile(t, "boxes.qs", boxes)
	out, err := run(t, "highlight", fn)
	require.NoError(t, err)
	assert.Equal(t, boxes, out)

	out, err = run(t, "highlight", "-f", "html", fn)
	require.NoError(t, err)
	assert.Contains(t, out, "<pre")
	assert.Contains(t, out, "constructor")
}

func TestParsePos(t *testing.T) {
	p, err := parsePos("3:7")
	require.NoError(t, err)
	assert.Equal(t, "3:7", formatPos(p))
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 6, p.Char)

	for _, s := range []string{"", "3", "a:1", "1:b", "0:1"} {
		_, err := parsePos(s)
		assert.Error(t, err, s)
	}
}

// syncBuffer is a bytes.Buffer safe for concurrent use.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestWatch(t *testing.T) {
	fn := writeFile(t, "watch.qs", "var x;\n")
	st := codeintel.NewSettings()
	st.FoldStore = ""
	a := &app{settings: st}
	s, err := a.open(context.Background(), fn)
	require.NoError(t, err)

	watcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	defer watcher.Close()
	require.NoError(t, watcher.Add(filepath.Dir(fn)))

	ctx, cancel := context.WithCancel(context.Background())
	var out syncBuffer
	done := make(chan error)
	go func() { done <- watch(ctx, watcher, fn, s, &out) }()

	require.NoError(t, os.WriteFile(fn, []byte("var x;\nfunction f() {\n}\n"), 0666))
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "function f() {")
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 3, s.Lines.NumLines())

	cancel()
	assert.NoError(t, <-done)
}
