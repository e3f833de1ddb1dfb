// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jerk

import (
	"errors"
	"fmt"
)

// A Handler handles events from a Parser. If a method reports an error,
// parsing stops and that error is returned to the caller of the parser.
//
// The key argument is the name of the object member whose value triggered
// the event, or nil if the value is an array element or a top-level value.
type Handler interface {
	// Report a scalar value: a string, number, true, false, or null.
	Atom(key *Token, value Token) error

	// Report the comma separating two object members or array elements.
	Comma(tok Token) error

	// Report an object value. The next token of t is the open brace.  The
	// handler must consume the complete object from t, typically by calling
	// p.ParseObject(t) to continue with the same handler, or by calling
	// Skip.ParseObject(t) to discard it.
	Object(p *Parser, key *Token, t *Tokenizer) error

	// Report an array value. The next token of t is the open bracket.  The
	// handler must consume the complete array from t, as for Object.
	Array(p *Parser, key *Token, t *Tokenizer) error
}

// Base implements the Handler interface with a default structural
// traversal. Atom and Comma do nothing; Object and Array continue parsing
// the value with the same parser, and hence the same handler.
//
// Embed Base in a handler type to override only the events it needs.
type Base struct{}

// Atom implements part of the Handler interface. It does nothing.
func (Base) Atom(key *Token, value Token) error { return nil }

// Comma implements part of the Handler interface. It does nothing.
func (Base) Comma(tok Token) error { return nil }

// Object implements part of the Handler interface.
func (Base) Object(p *Parser, key *Token, t *Tokenizer) error { return p.ParseObject(t) }

// Array implements part of the Handler interface.
func (Base) Array(p *Parser, key *Token, t *Tokenizer) error { return p.ParseArray(t) }

// SkipHandler is a Handler that discards every event. Nested objects and
// arrays are consumed from the input without being represented.
var SkipHandler Handler = skipHandler{}

// Skip is a parser that validates and discards its input. It has no mutable
// state and may be shared by unrelated parses, including concurrent ones.
var Skip = NewParser(SkipHandler)

type skipHandler struct{}

func (skipHandler) Atom(*Token, Token) error { return nil }
func (skipHandler) Comma(Token) error        { return nil }

func (skipHandler) Object(p *Parser, _ *Token, t *Tokenizer) error { return p.ParseObject(t) }
func (skipHandler) Array(p *Parser, _ *Token, t *Tokenizer) error  { return p.ParseArray(t) }

// A Parser implements the JSON grammar over the tokens of a Tokenizer, and
// delivers events to a Handler.  A Parser has no state of its own apart
// from its handler.
type Parser struct {
	h Handler
}

// NewParser constructs a parser that delivers events to h.
func NewParser(h Handler) *Parser { return &Parser{h: h} }

// Handler returns the handler to which p delivers events.
func (p *Parser) Handler() Handler { return p.h }

func recoverParseError(errp *error) {
	if perr := recover(); perr != nil {
		switch err := perr.(type) {
		case *SyntaxError:
			*errp = err
		case handlerError:
			*errp = err.error
		default:
			panic(perr)
		}
	}
}

// ParseObject parses an object from t:
//
//	"{" [pair ("," pair)*] "}"
func (p *Parser) ParseObject(t *Tokenizer) (err error) {
	defer recoverParseError(&err)
	p.parseObject(t)
	return nil
}

// ParseArray parses an array from t:
//
//	"[" [value ("," value)*] "]"
func (p *Parser) ParseArray(t *Tokenizer) (err error) {
	defer recoverParseError(&err)
	p.parseArray(t)
	return nil
}

// ParsePair parses a single object member from t:
//
//	string ":" value
func (p *Parser) ParsePair(t *Tokenizer) (err error) {
	defer recoverParseError(&err)
	p.parsePair(t)
	return nil
}

// ParseValue parses a single value from t. If key != nil, it is reported to
// the handler as the name of the value.
func (p *Parser) ParseValue(t *Tokenizer, key *Token) (err error) {
	defer recoverParseError(&err)
	p.parseValue(t, key)
	return nil
}

// ParseDocument parses a single value from t, which must be followed by the
// end of the input. Trailing content is reported as a *SyntaxError that
// wraps ErrExtraInput.
func (p *Parser) ParseDocument(t *Tokenizer) (err error) {
	defer recoverParseError(&err)
	p.parseValue(t, nil)
	if tok := t.Peek(); tok.Kind != EndOfInput {
		panic(&SyntaxError{
			Pos:     tok.Pos,
			Token:   tok,
			Message: fmt.Sprintf("unexpected %v after value", tok.Kind),
			err:     ErrExtraInput,
		})
	}
	return nil
}

// parseObject consumes an object.
// Precondition: next token is BeginObject.
func (p *Parser) parseObject(t *Tokenizer) {
	p.require(t, BeginObject)
	if t.Skip(EndObject) {
		return // empty object
	}
	for {
		p.parsePair(t)

		// Check whether we have more members (",") or are done ("}").
		if t.Skip(EndObject) {
			return
		}
		p.checkError(p.h.Comma(p.require(t, Comma)))
	}
}

// parseArray consumes an array.
// Precondition: next token is BeginArray.
func (p *Parser) parseArray(t *Tokenizer) {
	p.require(t, BeginArray)
	if t.Skip(EndArray) {
		return // empty array
	}
	for {
		p.parseValue(t, nil)

		if t.Skip(EndArray) {
			return
		}
		p.checkError(p.h.Comma(p.require(t, Comma)))
	}
}

// parsePair consumes a single "key": value member.
func (p *Parser) parsePair(t *Tokenizer) {
	key := p.require(t, String)
	p.require(t, Colon)
	p.parseValue(t, &key)
}

// parseValue consumes a value of any type.
func (p *Parser) parseValue(t *Tokenizer, key *Token) {
	switch tok := t.Peek(); tok.Kind {
	case BeginObject:
		p.checkError(p.h.Object(p, key, t))
	case BeginArray:
		p.checkError(p.h.Array(p, key, t))
	case String, Number, True, False, Null:
		p.checkError(p.h.Atom(key, t.Read()))
	default:
		p.fail(tok, "unexpected %v", describe(tok))
	}
}

func (p *Parser) require(t *Tokenizer, kind Kind) Token {
	tok, err := t.ReadKind(kind)
	if err != nil {
		panic(err)
	}
	return tok
}

func (p *Parser) fail(tok Token, msg string, args ...any) {
	panic(unexpected(tok, msg, args...))
}

func (p *Parser) checkError(err error) {
	if err != nil {
		panic(handlerError{err})
	}
}

type handlerError struct{ error }

func (h handlerError) Unwrap() error { return h.error }

// describe makes a human-readable label for an offending token.
func describe(tok Token) string {
	if tok.Kind == Unknown {
		return fmt.Sprintf("%v %q", tok.Kind, tok.Text)
	}
	return tok.Kind.String()
}

var (
	// ErrUnexpectedToken is wrapped by a SyntaxError reporting a token that
	// is not permitted at its position in the grammar.
	ErrUnexpectedToken = errors.New("unexpected token")

	// ErrUnknownToken is wrapped by a SyntaxError reporting malformed input,
	// such as an unterminated string or an invalid escape sequence.
	ErrUnknownToken = errors.New("unknown token")

	// ErrUnexpectedEOF is wrapped by a SyntaxError reporting that the input
	// ended before a value was complete.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrExtraInput is wrapped by a SyntaxError reporting content after the
	// end of a complete document.
	ErrExtraInput = errors.New("extra input after value")
)

// SyntaxError is the concrete type of errors reported by the parser and by
// Tokenizer.ReadKind.
type SyntaxError struct {
	Pos     int    // offset of the offending token
	Token   Token  // the offending token
	Message string // a human-readable description

	err error
}

// Error satisfies the error interface.
func (s *SyntaxError) Error() string {
	return fmt.Sprintf("at offset %d: %s", s.Pos, s.Message)
}

// Unwrap supports error wrapping.
func (s *SyntaxError) Unwrap() error { return s.err }

// unexpected constructs a SyntaxError for tok, classified by its kind.
func unexpected(tok Token, msg string, args ...any) *SyntaxError {
	err := ErrUnexpectedToken
	switch tok.Kind {
	case Unknown:
		err = errors.Join(ErrUnexpectedToken, ErrUnknownToken)
	case EndOfInput:
		err = errors.Join(ErrUnexpectedToken, ErrUnexpectedEOF)
	}
	return &SyntaxError{
		Pos:     tok.Pos,
		Token:   tok,
		Message: fmt.Sprintf(msg, args...),
		err:     err,
	}
}
