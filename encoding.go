// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package jerk

import (
	"github.com/creachadair/jerk/internal/escape"

	"go4.org/mem"
)

// Quote encodes src as a JSON string value. The contents are escaped and
// double quotation marks are added.
//
// Quote escapes only the quotation mark, the backslash, and the control
// characters \b, \t, \n, \f, and \r. Other characters, including other
// control characters, are copied unchanged.
func Quote(src string) string {
	buf := make([]byte, 0, len(src)+2)
	buf = append(buf, '"')
	buf = AppendEscaped(buf, src)
	return string(append(buf, '"'))
}

// AppendEscaped appends the escaped contents of src to buf, without
// quotation marks, and returns the extended slice.
func AppendEscaped(buf []byte, src string) []byte {
	if !escape.NeedsQuote(mem.S(src)) {
		return append(buf, src...)
	}
	return append(buf, escape.Quote(mem.S(src))...)
}

// Unescape decodes the escape sequences in the text of a raw string token,
// as an unescaping tokenizer would. Unescape reports an error for an
// incomplete escape sequence.
func Unescape(text string) (string, error) {
	dec, err := escape.Unquote(mem.S(text))
	if err != nil {
		return "", err
	}
	return string(dec), nil
}
