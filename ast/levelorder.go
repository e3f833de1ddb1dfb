// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package ast

import (
	"github.com/creachadair/jerk"
	"github.com/creachadair/mds/queue"
)

// ParseLevelOrder parses a single JSON value from src, decoding escape
// sequences in strings. It is shorthand for
// BuildLevelOrder(jerk.NewUnescapingTokenizer(src)).
func ParseLevelOrder(src string) (Value, error) {
	return BuildLevelOrder(jerk.NewUnescapingTokenizer(src))
}

// BuildLevelOrder parses a single JSON value from t, which must be followed
// by the end of the input, and returns its tree. The result is equal to the
// result of Build for the same input.
//
// The tree is built one level at a time: each object or array is attached
// to its parent when it is first seen, its contents are skipped, and its
// offset is queued. The queued containers are then filled in breadth-first
// order from tokenizers started at their offsets.  The depth of the call
// stack is bounded by the depth of skipping a single value.
func BuildLevelOrder(t *jerk.Tokenizer) (Value, error) {
	var root holder
	h := &levelBuilder{cur: &root, work: queue.New[pending]()}
	p := jerk.NewParser(h)

	// Skipping validates the whole document, so the queued work does not
	// fail on a syntax error.
	if err := p.ParseDocument(t); err != nil {
		return nil, err
	}
	for !h.work.IsEmpty() {
		next, _ := h.work.Pop()
		h.cur = next.c

		var err error
		if next.array {
			err = p.ParseArray(t.Sub(next.pos))
		} else {
			err = p.ParseObject(t.Sub(next.pos))
		}
		if err != nil {
			return nil, err
		}
	}
	return root.v, nil
}

// pending is a container whose contents have not yet been parsed.
type pending struct {
	c     container
	pos   int  // offset of the open bracket
	array bool // whether c is an *Array
}

// A levelBuilder implements the jerk.Handler interface to add the values
// from a single level of a JSON value to the current container.
type levelBuilder struct {
	cur  container
	work *queue.Queue[pending]
}

func (h *levelBuilder) Atom(key *jerk.Token, value jerk.Token) error {
	h.cur.put(key, NewAtom(value))
	return nil
}

func (h *levelBuilder) Comma(jerk.Token) error { return nil }

func (h *levelBuilder) Object(_ *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	o := new(Object)
	h.cur.put(key, o)
	h.work.Add(pending{c: o, pos: t.Pos()})
	return jerk.Skip.ParseObject(t)
}

func (h *levelBuilder) Array(_ *jerk.Parser, key *jerk.Token, t *jerk.Tokenizer) error {
	a := new(Array)
	h.cur.put(key, a)
	h.work.Add(pending{c: a, pos: t.Pos(), array: true})
	return jerk.Skip.ParseArray(t)
}
