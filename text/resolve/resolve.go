// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package resolve defines the language services consumed by member
// completion and argument hints. The engines have no knowledge of the
// script language beyond its lexical rules; everything about objects
// and functions comes from a [Resolver] supplied by the host.
package resolve

import (
	"slices"
	"strings"
)

// Category is the kind of a member, used to decorate completions.
type Category int32

const (
	Variable Category = iota
	Function
	Class
	Property
	Enum
	Object
	Widget
	Keyword
)

var categoryNames = [...]string{"variable", "function", "class", "property", "enum", "object", "widget", "keyword"}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Member is a named member of an object.
type Member struct {
	Name string

	Category Category

	// Detail is optional extra information, such as a type.
	Detail string
}

// ParameterList is one signature of a function.
type ParameterList struct {

	// Params are the parameter descriptions, such as "interval : Number".
	Params []string

	// Prefix is shown before the function name.
	Prefix string

	// Suffix is shown after the closing paren, such as a return type.
	Suffix string
}

// Resolver provides member and signature lookup for a script language.
// Empty results mean nothing is known, not an error.
type Resolver interface {

	// ResolveMembers returns the members of the object at the given
	// dotted path, or the globals if the path is empty.
	ResolveMembers(path string) []Member

	// ResolveSignatures returns the signatures of the function at the
	// given name, which may be a dotted path.
	ResolveSignatures(name string) []ParameterList
}

// Nop is a [Resolver] that knows nothing.
type Nop struct{}

func (Nop) ResolveMembers(path string) []Member           { return nil }
func (Nop) ResolveSignatures(name string) []ParameterList { return nil }

// Static is a [Resolver] backed by fixed tables, which is enough for
// host objects with a known API.
type Static struct {

	// Members maps a dotted path to its members.
	Members map[string][]Member

	// Signatures maps a function name or dotted path to its signatures.
	Signatures map[string][]ParameterList
}

// NewStatic returns a new empty Static resolver.
func NewStatic() *Static {
	return &Static{Members: map[string][]Member{}, Signatures: map[string][]ParameterList{}}
}

// AddMembers adds members to the given path.
func (st *Static) AddMembers(path string, mems ...Member) *Static {
	st.Members[path] = append(st.Members[path], mems...)
	return st
}

// AddSignature adds a signature to the given function.
func (st *Static) AddSignature(name string, params ...string) *Static {
	st.Signatures[name] = append(st.Signatures[name], ParameterList{Params: params})
	return st
}

func (st *Static) ResolveMembers(path string) []Member {
	return slices.Clone(st.Members[path])
}

// ResolveSignatures looks up the full name first, then the name after
// the last dot.
func (st *Static) ResolveSignatures(name string) []ParameterList {
	if sigs, ok := st.Signatures[name]; ok {
		return slices.Clone(sigs)
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		return slices.Clone(st.Signatures[name[i+1:]])
	}
	return nil
}

// Chain is a [Resolver] that asks each resolver in order and returns
// the first non-empty result.
type Chain []Resolver

func (ch Chain) ResolveMembers(path string) []Member {
	for _, r := range ch {
		if m := r.ResolveMembers(path); len(m) > 0 {
			return m
		}
	}
	return nil
}

func (ch Chain) ResolveSignatures(name string) []ParameterList {
	for _, r := range ch {
		if s := r.ResolveSignatures(name); len(s) > 0 {
			return s
		}
	}
	return nil
}
