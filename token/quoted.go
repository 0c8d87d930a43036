package token

import (
	"encoding/hex"
	"io"
)

// passString scans s for the closing quote of a string whose opening
// quote has already been consumed, stepping over backslash escapes
// from the fixed set. It returns the index of the closing quote in s.
func passString(s []byte) (int, error) {
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && escapeOf(s[i+1]) != 0:
			i++
		case s[i] == 0:
			return 0, ErrInvalidInput
		case s[i] == '"':
			return i, nil
		}
	}
	return 0, ErrInvalidInput
}

// Unescape rewrites the escaped string payload s (quotes excluded)
// into dst. \uXXXX is honored only for code points in the single-byte
// range, so it must carry a "00" prefix; anything wider passes through
// the scan untouched and is rejected here. It returns the number of
// bytes written, io.ErrShortBuffer when dst cannot hold the result, or
// ErrInvalidInput on an unknown escape.
func Unescape(s, dst []byte) (int, error) {
	j := 0
	for i := 0; i < len(s); i++ {
		if j >= len(dst) {
			return 0, io.ErrShortBuffer
		}
		switch {
		case s[i] == '\\' && i+5 < len(s) && s[i+1] == 'u':
			if s[i+2] != '0' || s[i+3] != '0' {
				return 0, ErrInvalidInput
			}
			var b [1]byte
			if _, err := hex.Decode(b[:], s[i+4:i+6]); err != nil {
				return 0, ErrInvalidInput
			}
			dst[j] = b[0]
			i += 5
		case s[i] == '\\' && i+1 < len(s):
			c := escapeOf(s[i+1])
			if c == 0 {
				return 0, ErrInvalidInput
			}
			dst[j] = c
			i++
		default:
			dst[j] = s[i]
		}
		j++
	}
	return j, nil
}

func escapeOf(c byte) byte {
	switch c {
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 't':
		return '\t'
	case '\\':
		return '\\'
	case '"':
		return '"'
	case '/':
		return '/'
	}
	return 0
}
