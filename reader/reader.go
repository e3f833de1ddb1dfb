// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package reader binds JSON objects to Go values using jerk handlers.
//
// A CompoundReader maps the keys of an object to sub-handlers that store
// the corresponding values into a container. Value readers convert atoms
// into Go values and pass them to a setter. An ObjectReader constructs a
// fresh compound reader for each nested object it encounters.
//
// Reading is tolerant: a value whose kind or content does not match its
// reader is ignored, as are keys with no registered reader. Only syntax
// errors in the input are reported.
//
// For example, given
//
//	type person struct {
//		Name     string
//		Children []*person
//	}
//
//	func newPersonReader() reader.CompoundReader[*person] {
//		p := new(person)
//		return reader.NewCompound(p).
//			Set("name", reader.String(func(s string) { p.Name = s })).
//			Set("children", reader.Object(newPersonReader, func(c *person) {
//				p.Children = append(p.Children, c)
//			}))
//	}
//
// the call
//
//	p, err := reader.BindString(`{"name":"Harry","children":[{"name":"Ann"}]}`, newPersonReader())
//
// populates a person with one child.
package reader

import (
	"github.com/creachadair/jerk"
)

// Bind parses a single object from t into r, and returns the container of
// r. If parsing fails, Bind returns the zero value and the error; the
// container may then be partially populated.
func Bind[T any](t *jerk.Tokenizer, r CompoundReader[T]) (T, error) {
	if err := jerk.NewParser(r).ParseObject(t); err != nil {
		var zero T
		return zero, err
	}
	return r.Container(), nil
}

// BindString parses a single object from src into r using a raw tokenizer.
// It is shorthand for Bind(jerk.NewTokenizer(src), r).
func BindString[T any](src string, r CompoundReader[T]) (T, error) {
	return Bind(jerk.NewTokenizer(src), r)
}

// A CompoundReader is a jerk.Handler that populates a container of type T
// from the members of a JSON object.
type CompoundReader[T any] interface {
	jerk.Handler

	// Container returns the value populated by the reader.
	Container() T
}

// Compound is a CompoundReader that dispatches the members of an object to
// sub-handlers by key. The zero value is not ready for use; use NewCompound
// to construct a Compound.
type Compound[T any] struct {
	container T
	readers   map[string]jerk.Handler
}

// NewCompound constructs a Compound with the given container and no
// readers.
func NewCompound[T any](container T) *Compound[T] {
	return &Compound[T]{container: container, readers: make(map[string]jerk.Handler)}
}

// Set registers h as the reader for members with the given key, replacing
// any previous reader for that key. It returns c to permit chaining.
// Set panics if h == nil.
func (c *Compound[T]) Set(key string, h jerk.Handler) *Compound[T] {
	if h == nil {
		panic("reader: nil handler for key " + jerk.Quote(key))
	}
	c.readers[key] = h
	return c
}

// Reader returns the reader registered for key, or nil.
func (c *Compound[T]) Reader(key string) jerk.Handler { return c.readers[key] }

// Container implements part of the CompoundReader interface.
func (c *Compound[T]) Container() T { return c.container }

// Atom delivers value to the reader for key, if there is one. Atoms for a
// key whose reader expects an object are ignored.
func (c *Compound[T]) Atom(key *jerk.Token, value jerk.Token) error {
	if key == nil {
		return nil
	}
	r := c.readers[key.Text]
	if r == nil {
		return nil
	} else if _, ok := r.(objectReader); ok {
		return nil
	}
	return r.Atom(key, value)
}

// Comma implements part of the jerk.Handler interface.
func (*Compound[T]) Comma(jerk.Token) error { return nil }

// Object parses an object. An object without a key is the object being
// read, and its members are delivered to p.  Otherwise the members of the
// object are delivered to the object reader for its key.  Any other reader
// for the key receives the object as a top-level value of a new parser, so
// a nested compound reader binds the members and a value reader skips
// them. If the key has no reader, the object is skipped.
func (c *Compound[T]) Object(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	if key == nil {
		return p.ParseObject(t)
	}
	r := c.readers[key.Text]
	if r == nil {
		return jerk.Skip.ParseObject(t)
	} else if _, ok := r.(objectReader); ok {
		return jerk.NewParser(r).ParseObject(t)
	}
	return r.Object(jerk.NewParser(r), nil, t)
}

// Array parses an array with the reader for its key, which receives the
// elements of the array. An array with no key or no reader is skipped.
func (c *Compound[T]) Array(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	if key != nil {
		if r := c.readers[key.Text]; r != nil {
			return jerk.NewParser(r).ParseArray(t)
		}
	}
	return jerk.Skip.ParseArray(t)
}

// objectReader is implemented by readers that accept only objects.
type objectReader interface {
	isObjectReader()
}

// ObjectReader is a jerk.Handler that reads nested objects of type T using
// compound readers made by a factory. Construct one with Object.
//
// An ObjectReader is either empty or bound to a compound reader. It binds
// a new compound reader for each object without a key, as for the elements
// of an array. Any other member event is delivered to the bound compound
// reader, which is created first if the ObjectReader is empty. Each time a
// compound reader is created, its container is passed to the setter.
type ObjectReader[T any] struct {
	newReader func() CompoundReader[T]
	set       func(T)
	cur       CompoundReader[T] // nil when empty
}

// Object constructs an ObjectReader that creates compound readers with
// factory and passes their containers to set.
func Object[T any](factory func() CompoundReader[T], set func(T)) *ObjectReader[T] {
	return &ObjectReader[T]{newReader: factory, set: set}
}

func (r *ObjectReader[T]) isObjectReader() {}

// reader returns the bound compound reader, binding a new one if fresh is
// true or r is empty.
func (r *ObjectReader[T]) reader(fresh bool) CompoundReader[T] {
	if r.cur == nil || fresh {
		r.cur = r.newReader()
		r.set(r.cur.Container())
	}
	return r.cur
}

// Atom implements part of the jerk.Handler interface. Atoms without a key
// are ignored.
func (r *ObjectReader[T]) Atom(key *jerk.Token, value jerk.Token) error {
	if key == nil {
		return nil
	}
	return r.reader(false).Atom(key, value)
}

// Comma implements part of the jerk.Handler interface.
func (*ObjectReader[T]) Comma(jerk.Token) error { return nil }

// Object implements part of the jerk.Handler interface.
func (r *ObjectReader[T]) Object(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	return r.reader(key == nil).Object(p, key, t)
}

// Array implements part of the jerk.Handler interface. The elements of an
// array without a key are read as if they were elements of the enclosing
// array.
func (r *ObjectReader[T]) Array(p *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	if key == nil {
		return p.ParseArray(t)
	}
	return r.reader(false).Array(p, key, t)
}
