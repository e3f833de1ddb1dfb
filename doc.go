// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Package jerk implements a push-style JSON tokenizer and parser.
//
// # Tokenizing
//
// The Tokenizer type splits a complete JSON text into tokens, with one token
// of lookahead. Construct a raw tokenizer with NewTokenizer, or one that
// decodes escape sequences in strings with NewUnescapingTokenizer:
//
//	t := jerk.NewUnescapingTokenizer(input)
//	for tok := t.Read(); tok.Kind != jerk.EndOfInput; tok = t.Read() {
//		log.Printf("Next token: %v", tok)
//	}
//
// Malformed input is reported as a token of kind Unknown. Once the input is
// exhausted, every further read returns the same EndOfInput token.
//
// # Parsing
//
// The Parser type implements the JSON grammar, and delivers events to a
// Handler as it recognizes the structure of the input. In case of error,
// parsing is terminated and an error of concrete type *jerk.SyntaxError is
// returned. If a Handler method reports an error, parsing stops and that
// error is returned.
//
//	p := jerk.NewParser(handler)
//	if err := p.ParseDocument(t); err != nil {
//		log.Fatalf("Parse failed: %v", err)
//	}
//
// # Handlers
//
// The methods of a Handler correspond to the values of the grammar:
//
//	JSON type  | Method  | Description
//	---------- | ------- | ----------------------------------
//	object     | Object  | { ... }
//	array      | Array   | [ ... ]
//	value      | Atom    | true, false, null, number, string
//	--         | Comma   | "," between members or elements
//
// Object and Array are called before the opening bracket is consumed, and
// the handler decides how the contents are consumed: by continuing with the
// same parser (the behavior of the embeddable Base type), by handing the
// tokenizer to a parser with a different handler, or by discarding the
// contents with the shared Skip parser.
//
// Each method that reports a value is also passed the key token of the
// object member containing it, or nil if the value is an array element or
// at the top level.
package jerk
