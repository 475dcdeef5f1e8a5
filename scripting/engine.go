// Copyright (c) 2026, The Scriptcore Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scripting embeds an ECMAScript runtime for the script
// editor and implements [resolve.Resolver] on it, so that member
// completion and argument hints reflect the objects that scripts
// actually see.
package scripting

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"unicode"

	"github.com/dop251/goja"
	"github.com/pdfstudio/scriptcore/text/resolve"
)

// Engine is a script runtime plus the signatures registered for its
// host functions. It is not safe for concurrent use, except that
// Execute may be interrupted by canceling its context.
type Engine struct {
	vm *goja.Runtime

	// signatures registered by the host, by name
	sigs map[string][]resolve.ParameterList
}

// NewEngine returns a new Engine with the signatures of the timer and
// connection builtins registered.
func NewEngine() *Engine {
	e := &Engine{vm: goja.New(), sigs: map[string][]resolve.ParameterList{}}
	e.RegisterSignatures("startTimer", resolve.ParameterList{Params: []string{"interval : Number", "callback : Function"}, Suffix: " : Number"})
	e.RegisterSignature("killTimer", "id : Number")
	e.RegisterSignature("connect", "sender : QObject", "signal : String", "receiver : QObject", "slot : String")
	e.RegisterSignature("connect", "sender : QObject", "signal : String", "receiver : Function")
	return e
}

// Runtime returns the underlying runtime.
func (e *Engine) Runtime() *goja.Runtime {
	return e.vm
}

// Set sets a global variable.
func (e *Engine) Set(name string, value any) error {
	return e.vm.Set(name, value)
}

// Execute runs the given script, returning its exported completion
// value. Canceling the context interrupts the script.
func (e *Engine) Execute(ctx context.Context, script string) (any, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// the interrupt must have landed before it is cleared, or it
	// would abort the next script
	interrupted := make(chan struct{})
	stop := context.AfterFunc(ctx, func() {
		e.vm.Interrupt(ctx.Err())
		close(interrupted)
	})
	defer func() {
		if !stop() {
			<-interrupted
		}
		e.vm.ClearInterrupt()
	}()

	val, err := e.vm.RunString(script)
	if err != nil {
		if ie, ok := err.(*goja.InterruptedError); ok {
			if cause, ok := ie.Value().(error); ok {
				return nil, cause
			}
			return nil, context.Canceled
		}
		return nil, err
	}
	return val.Export(), nil
}

// RegisterSignature adds a signature with the given parameters to
// the named function. Registered signatures take precedence over
// those derived from the function source.
func (e *Engine) RegisterSignature(name string, params ...string) {
	e.RegisterSignatures(name, resolve.ParameterList{Params: params})
}

// RegisterSignatures adds signatures to the named function.
func (e *Engine) RegisterSignatures(name string, sigs ...resolve.ParameterList) {
	e.sigs[name] = append(e.sigs[name], sigs...)
}

// protect runs f, turning a panic from the runtime into an error.
func protect(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("scripting: %v", r)
		}
	}()
	f()
	return nil
}

// lookup returns the object at the given dotted path from the
// global object, or nil.
func (e *Engine) lookup(path string) *goja.Object {
	if path == "this" {
		path = ""
	}
	path = strings.TrimPrefix(path, "this.")
	obj := e.vm.GlobalObject()
	if path == "" {
		return obj
	}
	for part := range strings.SplitSeq(path, ".") {
		v := obj.Get(part)
		if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
			return nil
		}
		obj = v.ToObject(e.vm)
	}
	return obj
}

// ResolveMembers returns the properties of the object at the given
// dotted path, including inherited ones up to Object.prototype,
// sorted by name.
func (e *Engine) ResolveMembers(path string) []resolve.Member {
	var mems []resolve.Member
	err := protect(func() {
		obj := e.lookup(path)
		if obj == nil {
			return
		}
		object := e.vm.Get("Object").ToObject(e.vm)
		root := object.Get("prototype").ToObject(e.vm)
		ownNames, _ := goja.AssertFunction(object.Get("getOwnPropertyNames"))
		seen := map[string]bool{}
		for o := obj; o != nil; o = o.Prototype() {
			if o.SameAs(root) && o != obj {
				break
			}
			names, err := ownNames(goja.Undefined(), o)
			if err != nil {
				panic(err)
			}
			var keys []string
			if err := e.vm.ExportTo(names, &keys); err != nil {
				panic(err)
			}
			for _, name := range keys {
				if seen[name] || strings.HasPrefix(name, "__") {
					continue
				}
				seen[name] = true
				mems = append(mems, resolve.Member{Name: name, Category: e.category(o, name)})
			}
		}
	})
	if err != nil {
		slog.Debug("scripting: resolving members", "path", path, "err", err)
	}
	slices.SortFunc(mems, func(a, b resolve.Member) int { return strings.Compare(a.Name, b.Name) })
	return mems
}

func (e *Engine) category(o *goja.Object, name string) resolve.Category {
	cat := resolve.Property
	protect(func() {
		v := o.Get(name)
		if v == nil {
			return
		}
		if _, ok := goja.AssertFunction(v); ok {
			cat = resolve.Function
			if r := []rune(name); len(r) > 0 && unicode.IsUpper(r[0]) {
				cat = resolve.Class
			}
			return
		}
		if _, ok := v.(*goja.Object); ok {
			cat = resolve.Object
		}
	})
	return cat
}

// ResolveSignatures returns the registered signatures of the named
// function, or else one signature with the parameter names of its
// source. Native functions without source get numbered parameters
// according to their length.
func (e *Engine) ResolveSignatures(name string) []resolve.ParameterList {
	if sigs, ok := e.sigs[name]; ok {
		return slices.Clone(sigs)
	}
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		if sigs, ok := e.sigs[name[i+1:]]; ok {
			return slices.Clone(sigs)
		}
	}
	var sigs []resolve.ParameterList
	err := protect(func() {
		fn := e.lookup(name)
		if fn == nil {
			return
		}
		if _, ok := goja.AssertFunction(fn); !ok {
			return
		}
		params := Params(fn.String())
		if len(params) == 0 {
			for i := range int(fn.Get("length").ToInteger()) {
				params = append(params, fmt.Sprintf("arg%d", i+1))
			}
		}
		sigs = []resolve.ParameterList{{Params: params}}
	})
	if err != nil {
		slog.Debug("scripting: resolving signatures", "name", name, "err", err)
	}
	return sigs
}
