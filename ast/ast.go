// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package ast defines an ordered tree representation of JSON values, and
// builders that construct trees from JSON source.
//
// Two builders are provided. Build parses depth-first, keeping an explicit
// stack of the containers under construction. BuildLevelOrder parses one
// level of the document at a time, deferring the contents of nested
// containers to a work queue. Both produce equal trees for the same input.
package ast

import (
	"io"

	"github.com/creachadair/jerk"
)

// A Value is an arbitrary JSON value.  The concrete type is one of *Atom,
// *Array, or *Object.
type Value interface {
	// JSON returns the canonical JSON encoding of the value.
	JSON() string

	appendJSON([]byte) []byte
}

// An Atom is a scalar value: a string, number, true, false, or null.
type Atom struct {
	Token jerk.Token
}

// NewAtom constructs an Atom for the given token.
func NewAtom(tok jerk.Token) *Atom { return &Atom{Token: tok} }

// Kind returns the token kind of the atom.
func (a *Atom) Kind() jerk.Kind { return a.Token.Kind }

// Text returns the text of the atom. For a string this is the content of the
// string, as reported by the tokenizer.
func (a *Atom) Text() string { return a.Token.Text }

// JSON satisfies the Value interface.
func (a *Atom) JSON() string { return string(a.appendJSON(nil)) }

func (a *Atom) appendJSON(buf []byte) []byte {
	if a.Token.Kind == jerk.String {
		buf = append(buf, '"')
		buf = jerk.AppendEscaped(buf, a.Token.Text)
		return append(buf, '"')
	}
	return append(buf, a.Token.Text...)
}

// An Array is a sequence of values.
type Array struct {
	Values []Value
}

// Len returns the number of elements in a.
func (a *Array) Len() int { return len(a.Values) }

// Add appends v to the elements of a.
func (a *Array) Add(v Value) { a.Values = append(a.Values, v) }

// JSON satisfies the Value interface.
func (a *Array) JSON() string { return string(a.appendJSON(nil)) }

func (a *Array) appendJSON(buf []byte) []byte {
	buf = append(buf, '[')
	for i, v := range a.Values {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = v.appendJSON(buf)
	}
	return append(buf, ']')
}

// An Object is a collection of key-value members, in insertion order.
type Object struct {
	Members []*Member
}

// A Member is a single key-value pair belonging to an Object.
type Member struct {
	Key   string
	Value Value
}

// Len returns the number of members in o.
func (o *Object) Len() int { return len(o.Members) }

// Find returns the member of o with the given key, or nil.
func (o *Object) Find(key string) *Member {
	for _, m := range o.Members {
		if m.Key == key {
			return m
		}
	}
	return nil
}

// Get returns the value of the member of o with the given key, or nil.
func (o *Object) Get(key string) Value {
	if m := o.Find(key); m != nil {
		return m.Value
	}
	return nil
}

// Set sets the value of the member of o with the given key. If o already has
// such a member, its value is replaced in place; otherwise a new member is
// added at the end.
func (o *Object) Set(key string, v Value) {
	if m := o.Find(key); m != nil {
		m.Value = v
	} else {
		o.Members = append(o.Members, &Member{Key: key, Value: v})
	}
}

// Keys returns the keys of o in order.
func (o *Object) Keys() []string {
	keys := make([]string, len(o.Members))
	for i, m := range o.Members {
		keys[i] = m.Key
	}
	return keys
}

// JSON satisfies the Value interface.
func (o *Object) JSON() string { return string(o.appendJSON(nil)) }

func (o *Object) appendJSON(buf []byte) []byte {
	buf = append(buf, '{')
	for i, m := range o.Members {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, '"')
		buf = jerk.AppendEscaped(buf, m.Key)
		buf = append(buf, '"', ':')
		buf = m.Value.appendJSON(buf)
	}
	return append(buf, '}')
}

// Format writes the canonical JSON encoding of v to w.
func Format(w io.Writer, v Value) error {
	_, err := w.Write(v.appendJSON(nil))
	return err
}

// Equal reports whether a and b are structurally equal. Atoms are equal if
// their kinds and texts are equal; their source positions are ignored.
// Arrays are equal if their elements are pairwise equal. Objects are equal if
// their members have the same keys in the same order, and pairwise equal
// values.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case *Atom:
		y, ok := b.(*Atom)
		return ok && x.Token.Kind == y.Token.Kind && x.Token.Text == y.Token.Text
	case *Array:
		y, ok := b.(*Array)
		if !ok || len(x.Values) != len(y.Values) {
			return false
		}
		for i, v := range x.Values {
			if !Equal(v, y.Values[i]) {
				return false
			}
		}
		return true
	case *Object:
		y, ok := b.(*Object)
		if !ok || len(x.Members) != len(y.Members) {
			return false
		}
		for i, m := range x.Members {
			if n := y.Members[i]; m.Key != n.Key || !Equal(m.Value, n.Value) {
				return false
			}
		}
		return true
	}
	return a == nil && b == nil
}
