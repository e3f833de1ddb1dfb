// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

package escape

import (
	"go4.org/mem"
)

var controlEsc = [...]byte{
	'\b': 'b',
	'\f': 'f',
	'\n': 'n',
	'\r': 'r',
	'\t': 't',
	' ':  ' ', // sentinel
}

// Quote escapes src for inclusion in a JSON string. The result does not
// include the enclosing quotation marks.
//
// Only the quotation mark, the backslash, and the control characters that
// have a short escape (\b \t \n \f \r) are escaped. All other bytes are
// copied unchanged, so the output of Quote is canonical: Unquote followed by
// Quote reproduces it exactly.
func Quote(src mem.RO) []byte {
	i := indexEscaped(src)
	if i < 0 {
		return mem.Append(nil, src)
	}
	buf := make([]byte, 0, src.Len()+8)
	for i >= 0 {
		buf = mem.Append(buf, src.SliceTo(i))
		b := src.At(i)
		if b == '\\' || b == '"' {
			buf = append(buf, '\\', b)
		} else {
			buf = append(buf, '\\', controlEsc[b])
		}
		src = src.SliceFrom(i + 1)
		i = indexEscaped(src)
	}
	return mem.Append(buf, src)
}

// NeedsQuote reports whether Quote would modify src.
func NeedsQuote(src mem.RO) bool { return indexEscaped(src) >= 0 }

// indexEscaped returns the offset of the first byte of src that Quote must
// escape, or -1.
func indexEscaped(src mem.RO) int {
	for i := 0; i < src.Len(); i++ {
		if mustEscape(src.At(i)) {
			return i
		}
	}
	return -1
}

func mustEscape(b byte) bool {
	if b == '"' || b == '\\' {
		return true
	}
	return b < ' ' && controlEsc[b] != 0
}
