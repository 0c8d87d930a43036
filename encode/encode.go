package encode

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"strconv"
)

var quote = []byte(`"`)

// Raw writes p through w unmodified.
func Raw(w io.Writer, p []byte) (int, error) {
	return w.Write(p)
}

// String writes s as a quoted JSON string, escaping the fixed set
// backspace, formfeed, newline, return, tab, backslash and quote.
// Multi-byte sequences pass through untouched.
func String(w io.Writer, s string) (int, error) {
	n, err := w.Write(quote)
	if err != nil {
		return n, err
	}
	start := 0
	for i := 0; i < len(s); i++ {
		e := escapeOf(s[i])
		if e == 0 {
			continue
		}
		if start < i {
			m, err := io.WriteString(w, s[start:i])
			n += m
			if err != nil {
				return n, err
			}
		}
		m, err := w.Write([]byte{'\\', e})
		n += m
		if err != nil {
			return n, err
		}
		start = i + 1
	}
	if start < len(s) {
		m, err := io.WriteString(w, s[start:])
		n += m
		if err != nil {
			return n, err
		}
	}
	m, err := w.Write(quote)
	return n + m, err
}

func escapeOf(c byte) byte {
	switch c {
	case '\b':
		return 'b'
	case '\f':
		return 'f'
	case '\n':
		return 'n'
	case '\r':
		return 'r'
	case '\t':
		return 't'
	case '\\':
		return '\\'
	case '"':
		return '"'
	}
	return 0
}

// Int writes v in decimal.
func Int(w io.Writer, v int64) (int, error) {
	var buf [20]byte
	return w.Write(strconv.AppendInt(buf[:0], v, 10))
}

// Uint writes v in decimal.
func Uint(w io.Writer, v uint64) (int, error) {
	var buf [20]byte
	return w.Write(strconv.AppendUint(buf[:0], v, 10))
}

// Float writes v in the shortest form that round-trips.
func Float(w io.Writer, v float64) (int, error) {
	return float(w, v, 'g')
}

func float(w io.Writer, v float64, format byte) (int, error) {
	var buf [32]byte
	return w.Write(strconv.AppendFloat(buf[:0], v, format, -1, 64))
}

// Bool writes the JSON boolean literal for v.
func Bool(w io.Writer, v bool) (int, error) {
	if v {
		return io.WriteString(w, "true")
	}
	return io.WriteString(w, "false")
}

// Hex writes p as a quoted lowercase hex string, chunked through a
// stack buffer.
func Hex(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(quote)
	if err != nil {
		return n, err
	}
	var buf [64]byte
	for len(p) > 0 {
		chunk := p
		if len(chunk) > 32 {
			chunk = chunk[:32]
		}
		m, err := w.Write(hex.AppendEncode(buf[:0], chunk))
		n += m
		if err != nil {
			return n, err
		}
		p = p[len(chunk):]
	}
	m, err := w.Write(quote)
	return n + m, err
}

// Base64 writes p as a quoted standard-alphabet base64 string. Chunks
// are a multiple of three bytes so no padding appears mid-string.
func Base64(w io.Writer, p []byte) (int, error) {
	n, err := w.Write(quote)
	if err != nil {
		return n, err
	}
	var buf [40]byte
	for len(p) > 0 {
		chunk := p
		if len(chunk) > 30 {
			chunk = chunk[:30]
		}
		m, err := w.Write(base64.StdEncoding.AppendEncode(buf[:0], chunk))
		n += m
		if err != nil {
			return n, err
		}
		p = p[len(chunk):]
	}
	m, err := w.Write(quote)
	return n + m, err
}
