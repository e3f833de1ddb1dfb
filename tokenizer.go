// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jerk

import (
	"fmt"
	"strings"

	"github.com/creachadair/jerk/internal/escape"

	"go4.org/mem"
)

// A Tokenizer reads lexical tokens from a complete source text, with one
// token of lookahead. The position of a tokenizer only moves forward.
//
// A raw tokenizer (see NewTokenizer) reports the text of string tokens as
// written in the source, without the quotation marks. An unescaping
// tokenizer (see NewUnescapingTokenizer) replaces escape sequences in string
// tokens with the characters they denote. In both cases the position of a
// token refers to the source text.
//
// Malformed input is reported as a token of kind Unknown and is not an
// error by itself; the parser rejects it where a value or punctuation is
// required.
type Tokenizer struct {
	src    string
	pos    int   // offset of the next unscanned byte
	tok    Token // lookahead token, valid if full is true
	full   bool
	decode bool // decode escapes in string tokens
}

// NewTokenizer constructs a raw tokenizer that consumes src.
func NewTokenizer(src string) *Tokenizer { return &Tokenizer{src: src} }

// NewUnescapingTokenizer constructs a tokenizer that consumes src and
// decodes escape sequences in string tokens. In addition to the escapes
// defined by JSON, it accepts \xNN for a two-digit hexadecimal code point.
func NewUnescapingTokenizer(src string) *Tokenizer {
	return &Tokenizer{src: src, decode: true}
}

// Sub returns a new tokenizer of the same variant as t over the same source,
// starting at offset pos. The state of t is not affected.  Sub panics if pos
// is outside the source.
func (t *Tokenizer) Sub(pos int) *Tokenizer {
	if pos < 0 || pos > len(t.src) {
		panic(fmt.Sprintf("offset %d out of range (0..%d)", pos, len(t.src)))
	}
	return &Tokenizer{src: t.src, pos: pos, decode: t.decode}
}

// Unescaping reports whether t decodes escape sequences in strings.
func (t *Tokenizer) Unescaping() bool { return t.decode }

// Pos returns the offset at which the next token begins. At the end of the
// input, Pos returns the length of the source.
func (t *Tokenizer) Pos() int {
	if t.full {
		return t.tok.Pos
	}
	t.skipSpace()
	return t.pos
}

// Peek returns the next token without consuming it.
func (t *Tokenizer) Peek() Token {
	if !t.full {
		t.tok = t.scan()
		t.full = true
	}
	return t.tok
}

// PeekKind reports whether the next token has the given kind, without
// consuming it.
func (t *Tokenizer) PeekKind(kind Kind) bool { return t.Peek().Kind == kind }

// Read consumes and returns the next token. Once the input is exhausted,
// Read returns the same EndOfInput token on every call.
func (t *Tokenizer) Read() Token {
	tok := t.Peek()
	t.full = tok.Kind == EndOfInput
	return tok
}

// ReadKind consumes and returns the next token, which must have the given
// kind. Otherwise the token is not consumed, and ReadKind reports a
// *SyntaxError that wraps ErrUnexpectedToken.
func (t *Tokenizer) ReadKind(kind Kind) (Token, error) {
	if tok := t.Peek(); tok.Kind != kind {
		return tok, unexpected(tok, "expected %v, got %v", kind, tok.Kind)
	}
	return t.Read(), nil
}

// Skip consumes the next token if it has the given kind, and reports whether
// it did so.
func (t *Tokenizer) Skip(kind Kind) bool {
	if t.PeekKind(kind) {
		t.Read()
		return true
	}
	return false
}

func (t *Tokenizer) skipSpace() {
	for t.pos < len(t.src) && isSpace(t.src[t.pos]) {
		t.pos++
	}
}

func (t *Tokenizer) scan() Token {
	t.skipSpace()
	start := t.pos
	if start >= len(t.src) {
		return Token{Kind: EndOfInput, Pos: len(t.src)}
	}

	ch := t.src[start]
	if k, ok := selfDelim(ch); ok {
		t.pos++
		return Token{Kind: k, Text: t.src[start:t.pos], Pos: start}
	}
	switch {
	case ch == '"':
		return t.scanString(start)
	case isNumStart(ch):
		text := t.scanWord(start)
		if !isNumber(text) {
			return Token{Kind: Unknown, Text: text, Pos: start}
		}
		return Token{Kind: Number, Text: text, Pos: start}
	default:
		text := t.scanWord(start)
		kind := Unknown
		switch text {
		case "true":
			kind = True
		case "false":
			kind = False
		case "null":
			kind = Null
		}
		return Token{Kind: kind, Text: text, Pos: start}
	}
}

// scanWord consumes a maximal run of bytes that are not whitespace,
// punctuation, or quotation marks, and returns it.
func (t *Tokenizer) scanWord(start int) string {
	t.pos = start
	for t.pos < len(t.src) && !isDelim(t.src[t.pos]) {
		t.pos++
	}
	return t.src[start:t.pos]
}

// scanString consumes a string beginning with the quotation mark at start.
// A string with an invalid escape, or one that is not terminated, is
// reported as Unknown with its complete text.
func (t *Tokenizer) scanString(start int) Token {
	var bad bool
	i := start + 1
	for i < len(t.src) {
		switch t.src[i] {
		case '"':
			t.pos = i + 1
			if bad {
				return Token{Kind: Unknown, Text: t.src[start:t.pos], Pos: start}
			}
			return t.stringToken(t.src[start+1:i], start)
		case '\\':
			n := escapeLen(t.src[i+1:])
			if n == 0 {
				bad = true
			}
			i += 1 + n
		default:
			i++
		}
	}
	t.pos = len(t.src)
	return Token{Kind: Unknown, Text: t.src[start:], Pos: start}
}

func (t *Tokenizer) stringToken(text string, pos int) Token {
	if t.decode && strings.IndexByte(text, '\\') >= 0 {
		dec, err := escape.Unquote(mem.S(text))
		if err != nil {
			return Token{Kind: Unknown, Text: text, Pos: pos}
		}
		text = string(dec)
	}
	return Token{Kind: String, Text: text, Pos: pos}
}

// escapeLen returns the length of the escape sequence at the front of rest,
// not counting the backslash, or 0 if rest does not begin with a valid
// escape.
func escapeLen(rest string) int {
	if rest == "" {
		return 0
	}
	switch rest[0] {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return 1
	case 'u':
		if isHex(rest[1:], 4) {
			return 5
		}
	case 'x':
		if isHex(rest[1:], 2) {
			return 3
		}
	}
	return 0
}

func isHex(s string, n int) bool {
	if len(s) < n {
		return false
	}
	for i := 0; i < n; i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

// isNumber reports whether text is a number according to the JSON grammar:
//
//	-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?
func isNumber(text string) bool {
	i := 0
	if i < len(text) && text[i] == '-' {
		i++
	}

	// Integer part: no extra leading zeroes.
	// OK: 0, 0.1, -1.0, -0.1. Bad: -01, 01.2, 00.1.
	switch {
	case i < len(text) && text[i] == '0':
		i++
	case i < len(text) && isDigit(text[i]):
		i = digits(text, i)
	default:
		return false
	}

	if i < len(text) && text[i] == '.' {
		j := digits(text, i+1)
		if j == i+1 {
			return false // no digits after decimal point
		}
		i = j
	}
	if i < len(text) && (text[i] == 'e' || text[i] == 'E') {
		i++
		if i < len(text) && (text[i] == '+' || text[i] == '-') {
			i++
		}
		j := digits(text, i)
		if j == i {
			return false // missing exponent digits
		}
		i = j
	}
	return i == len(text)
}

// digits returns the offset of the first non-digit in text at or after i.
func digits(text string, i int) int {
	for i < len(text) && isDigit(text[i]) {
		i++
	}
	return i
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\r' || ch == '\n' || ch == '\t'
}

func isDelim(ch byte) bool {
	_, ok := selfDelim(ch)
	return ok || ch == '"' || isSpace(ch)
}

func isNumStart(ch byte) bool { return ch == '-' || isDigit(ch) }
func isDigit(ch byte) bool    { return '0' <= ch && ch <= '9' }

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

var self = [...]Kind{BeginObject, EndObject, BeginArray, EndArray, Comma, Colon}

func selfDelim(ch byte) (Kind, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Unknown, false
}
