// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jerk

import "fmt"

// Kind is the type of a lexical token in the JSON grammar.
type Kind byte

// Constants defining the valid Kind values.
const (
	Unknown     Kind = iota // malformed input
	BeginObject             // left brace "{"
	EndObject               // right brace "}"
	BeginArray              // left square bracket "["
	EndArray                // right square bracket "]"
	Colon                   // colon ":"
	Comma                   // comma ","
	True                    // constant: true
	False                   // constant: false
	Null                    // constant: null
	String                  // quoted string
	Number                  // number
	EndOfInput              // end of input
)

var kindStr = [...]string{
	Unknown:     "unknown token",
	BeginObject: `"{"`,
	EndObject:   `"}"`,
	BeginArray:  `"["`,
	EndArray:    `"]"`,
	Colon:       `":"`,
	Comma:       `","`,
	True:        "true",
	False:       "false",
	Null:        "null",
	String:      "string",
	Number:      "number",
	EndOfInput:  "end of input",
}

func (k Kind) String() string {
	v := int(k)
	if v >= len(kindStr) {
		return kindStr[Unknown]
	}
	return kindStr[v]
}

// IsAtom reports whether k is the kind of a scalar value: a string, number,
// or one of the constants true, false, and null.
func (k Kind) IsAtom() bool {
	switch k {
	case String, Number, True, False, Null:
		return true
	}
	return false
}

// A Token is a single lexical token read from a source text.  Tokens are
// plain values and compare equal when all their fields are equal.
type Token struct {
	Kind Kind   // the type of the token
	Text string // the lexeme; for strings, without quotation marks
	Pos  int    // offset of the first byte of the token in the source, 0-based
}

func (t Token) String() string {
	if t.Kind == EndOfInput {
		return fmt.Sprintf("%v at %d", t.Kind, t.Pos)
	}
	return fmt.Sprintf("%v %q at %d", t.Kind, t.Text, t.Pos)
}
