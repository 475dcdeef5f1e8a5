// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command scriptlex runs the script editor engines on script files
// from the command line: highlighting, function outlines, bracket
// matching, completion and argument hints.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
