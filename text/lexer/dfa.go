// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lexer

import "github.com/pdfstudio/scriptcore/text/lines"

// Automaton states. A line's exit state is always normalized to one
// of Standard, CComment, String or String2.
const (
	Standard lines.State = iota
	CommentStart1
	CCommentStart2
	CppCommentStart2
	CComment
	CppComment
	CCommentEnd1
	CCommentEnd2
	StringStart
	String
	StringEnd
	String2Start
	String2
	String2End
	Number
	PreProcessor

	NumStates
)

// Aliases for the normalized exit states.
const (
	InBlockComment = CComment
	InString       = String
	InString2      = String2
)

// input is the class of a rune as seen by the automaton.
type input int8

const (
	inAlpha input = iota
	inNumber
	inAsterisk
	inSlash
	inParen
	inSpace
	inHash
	inQuote
	inApostrophe
	inSep

	numInputs
)

// transitions is the state transition table, indexed [state][input].
var transitions = [NumStates][numInputs]lines.State{
	//                 alpha         number        *               /                 paren         space         #             "             '             other
	Standard:         {Standard, Number, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	CommentStart1:    {Standard, Number, CCommentStart2, CppCommentStart2, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	CCommentStart2:   {CComment, CComment, CCommentEnd1, CComment, CComment, CComment, CComment, CComment, CComment, CComment},
	CppCommentStart2: {CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment},
	CComment:         {CComment, CComment, CCommentEnd1, CComment, CComment, CComment, CComment, CComment, CComment, CComment},
	CppComment:       {CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment, CppComment},
	CCommentEnd1:     {CComment, CComment, CCommentEnd1, CCommentEnd2, CComment, CComment, CComment, CComment, CComment, CComment},
	CCommentEnd2:     {Standard, Number, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	StringStart:      {String, String, String, String, String, String, String, StringEnd, String, String},
	String:           {String, String, String, String, String, String, String, StringEnd, String, String},
	StringEnd:        {Standard, Standard, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	String2Start:     {String2, String2, String2, String2, String2, String2, String2, String2, String2End, String2},
	String2:          {String2, String2, String2, String2, String2, String2, String2, String2, String2End, String2},
	String2End:       {Standard, Standard, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	Number:           {Number, Number, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
	PreProcessor:     {PreProcessor, Standard, Standard, CommentStart1, Standard, Standard, PreProcessor, StringStart, String2Start, Standard},
}

// structural returns true if a bracket read in the given state
// (before the transition) is outside of any literal.
func structural(st lines.State) bool {
	switch st {
	case Standard, CommentStart1, CCommentEnd2, StringEnd, String2End, Number, PreProcessor:
		return true
	}
	return false
}

// normalizeExit maps the state after the last rune of a line onto
// the state the next line starts in.
func normalizeExit(st lines.State) lines.State {
	switch st {
	case CCommentStart2, CComment, CCommentEnd1:
		return CComment
	case StringStart, String:
		return String
	case String2Start, String2:
		return String2
	}
	return Standard
}

// StateName returns a readable name for the given state.
func StateName(st lines.State) string {
	if st == lines.Unknown {
		return "Unknown"
	}
	if st < 0 || st >= NumStates {
		return "Invalid"
	}
	return stateNames[st]
}

var stateNames = [NumStates]string{
	"Standard", "CommentStart1", "CCommentStart2", "CppCommentStart2", "CComment", "CppComment",
	"CCommentEnd1", "CCommentEnd2", "StringStart", "String", "StringEnd", "String2Start", "String2",
	"String2End", "Number", "PreProcessor",
}
