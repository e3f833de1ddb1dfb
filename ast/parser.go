// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jerk"
	"github.com/creachadair/mds/stack"
)

// Parse parses a single JSON value from src, decoding escape sequences in
// strings. It is shorthand for Build(jerk.NewUnescapingTokenizer(src)).
func Parse(src string) (Value, error) {
	return Build(jerk.NewUnescapingTokenizer(src))
}

// Build parses a single JSON value from t, which must be followed by the end
// of the input, and returns its tree. The tree is built depth-first.
//
// The texts of string atoms and member keys are as reported by t. Use an
// unescaping tokenizer to obtain a tree whose JSON encoding round-trips.
func Build(t *jerk.Tokenizer) (Value, error) {
	var root holder
	h := &treeBuilder{stk: stack.New[container]()}
	h.stk.Push(&root)
	if err := jerk.NewParser(h).ParseDocument(t); err != nil {
		return nil, err
	}
	return root.v, nil
}

// A container is a value under construction.
type container interface {
	put(key *jerk.Token, v Value)
}

func (o *Object) put(key *jerk.Token, v Value) { o.Set(key.Text, v) }

func (a *Array) put(_ *jerk.Token, v Value) { a.Add(v) }

// holder is the container for a top-level value.
type holder struct{ v Value }

func (h *holder) put(_ *jerk.Token, v Value) { h.v = v }

// A treeBuilder implements the jerk.Handler interface to construct a tree
// for a JSON value. The container for the innermost value being parsed is
// atop the stack.
type treeBuilder struct {
	stk *stack.Stack[container]
}

func (h *treeBuilder) top() container { return h.stk.Top() }

func (h *treeBuilder) Atom(key *jerk.Token, value jerk.Token) error {
	h.top().put(key, NewAtom(value))
	return nil
}

func (h *treeBuilder) Comma(jerk.Token) error { return nil }

func (h *treeBuilder) Object(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	o := new(Object)
	h.top().put(key, o)
	h.stk.Push(o)
	defer h.stk.Pop()
	return p.ParseObject(t)
}

func (h *treeBuilder) Array(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	a := new(Array)
	h.top().put(key, a)
	h.stk.Push(a)
	defer h.stk.Pop()
	return p.ParseArray(t)
}
