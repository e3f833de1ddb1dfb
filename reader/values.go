// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package reader

import (
	"strconv"

	"github.com/creachadair/jerk"
	"github.com/shopspring/decimal"
)

// A ValueReader is a jerk.Handler that converts atoms to values of type T
// and passes them to a setter. Atoms that do not convert are ignored.
//
// The elements of an array are each passed to the setter in turn. Objects
// are skipped.
type ValueReader[T any] struct {
	set  func(T)
	conv func(jerk.Token) (T, bool)
}

// Value constructs a ValueReader that converts atoms with conv, and passes
// the results to set when conv reports true.
func Value[T any](set func(T), conv func(jerk.Token) (T, bool)) *ValueReader[T] {
	return &ValueReader[T]{set: set, conv: conv}
}

// Atom implements part of the jerk.Handler interface.
func (r *ValueReader[T]) Atom(_ *jerk.Token, value jerk.Token) error {
	if v, ok := r.conv(value); ok {
		r.set(v)
	}
	return nil
}

// Comma implements part of the jerk.Handler interface.
func (*ValueReader[T]) Comma(jerk.Token) error { return nil }

// Object implements part of the jerk.Handler interface.
func (*ValueReader[T]) Object(_ *jerk.Parser, _ *jerk.Token, t *jerk.Tokenizer) error {
	return jerk.Skip.ParseObject(t)
}

// Array implements part of the jerk.Handler interface.
func (*ValueReader[T]) Array(p *jerk.Parser, _ *jerk.Token, t *jerk.Tokenizer) error {
	return p.ParseArray(t)
}

// String returns a reader for string values.
func String(set func(string)) *ValueReader[string] {
	return Value(set, func(tok jerk.Token) (string, bool) {
		return tok.Text, tok.Kind == jerk.String
	})
}

// Any returns a reader that passes the text of any atom to set.
func Any(set func(string)) *ValueReader[string] {
	return Value(set, func(tok jerk.Token) (string, bool) {
		return tok.Text, tok.Kind.IsAtom()
	})
}

// Int returns a reader for numbers that are 32-bit integers.
func Int(set func(int32)) *ValueReader[int32] {
	return Value(set, func(tok jerk.Token) (int32, bool) {
		if tok.Kind != jerk.Number {
			return 0, false
		}
		v, err := strconv.ParseInt(tok.Text, 10, 32)
		return int32(v), err == nil
	})
}

// Int64 returns a reader for numbers that are 64-bit integers.
func Int64(set func(int64)) *ValueReader[int64] {
	return Value(set, func(tok jerk.Token) (int64, bool) {
		if tok.Kind != jerk.Number {
			return 0, false
		}
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		return v, err == nil
	})
}

// Float returns a reader for numbers as 64-bit floating point values.
func Float(set func(float64)) *ValueReader[float64] {
	return Value(set, func(tok jerk.Token) (float64, bool) {
		if tok.Kind != jerk.Number {
			return 0, false
		}
		v, err := strconv.ParseFloat(tok.Text, 64)
		return v, err == nil
	})
}

// Decimal returns a reader for numbers as arbitrary-precision decimals.
func Decimal(set func(decimal.Decimal)) *ValueReader[decimal.Decimal] {
	return Value(set, func(tok jerk.Token) (decimal.Decimal, bool) {
		if tok.Kind != jerk.Number {
			return decimal.Decimal{}, false
		}
		v, err := decimal.NewFromString(tok.Text)
		return v, err == nil
	})
}

// Bool returns a reader for true and false.
func Bool(set func(bool)) *ValueReader[bool] {
	return Value(set, func(tok jerk.Token) (bool, bool) {
		return tok.Kind == jerk.True, tok.Kind == jerk.True || tok.Kind == jerk.False
	})
}

// Null returns a reader that calls f for each null.
func Null(f func()) *ValueReader[struct{}] {
	return Value(func(struct{}) { f() }, func(tok jerk.Token) (struct{}, bool) {
		return struct{}{}, tok.Kind == jerk.Null
	})
}
