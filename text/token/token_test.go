// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokens(t *testing.T) {
	assert.Equal(t, "Keyword", Keyword.String())
	assert.Equal(t, "Tokens(?)", TokensN.String())
	assert.True(t, String.IsLiteral())
	assert.True(t, Comment.IsLiteral())
	assert.False(t, Number.IsLiteral())
}
