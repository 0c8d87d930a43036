package encode

import (
	"fmt"
	"io"
)

// EmitFunc is the nested directive: it writes its own bytes through w
// and reports how many it wrote.
type EmitFunc func(w io.Writer) (int, error)

// Printf renders format through w and returns the number of bytes
// written. Directives:
//
//	%Q  quoted, escaped JSON string (string)
//	%s  raw bytes, no quoting (string or []byte)
//	%d  decimal integer (int or int64)
//	%u  decimal unsigned integer (uint, uint64 or non-negative int)
//	%g  shortest round-trip float (float64)
//	%f  fixed-notation float (float64)
//	%B  boolean literal (bool)
//	%H  quoted hex string ([]byte)
//	%V  quoted base64 string ([]byte)
//	%M  nested emit (EmitFunc)
//	%%  literal percent
//
// An argument of the wrong type emits nothing for its directive; an
// unknown directive is an error.
func Printf(w io.Writer, format string, args ...any) (int, error) {
	n := 0
	ai := 0
	next := func() any {
		if ai >= len(args) {
			return nil
		}
		a := args[ai]
		ai++
		return a
	}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' {
			j := i
			for j < len(format) && format[j] != '%' {
				j++
			}
			m, err := io.WriteString(w, format[i:j])
			n += m
			if err != nil {
				return n, err
			}
			i = j - 1
			continue
		}
		i++
		if i == len(format) {
			return n, fmt.Errorf("trailing %% in format %q", format)
		}
		var m int
		var err error
		switch format[i] {
		case 'Q':
			if v, ok := next().(string); ok {
				m, err = String(w, v)
			}
		case 's':
			switch v := next().(type) {
			case string:
				m, err = io.WriteString(w, v)
			case []byte:
				m, err = w.Write(v)
			}
		case 'd':
			switch v := next().(type) {
			case int:
				m, err = Int(w, int64(v))
			case int64:
				m, err = Int(w, v)
			}
		case 'u':
			switch v := next().(type) {
			case uint:
				m, err = Uint(w, uint64(v))
			case uint64:
				m, err = Uint(w, v)
			case int:
				if v >= 0 {
					m, err = Uint(w, uint64(v))
				}
			}
		case 'g':
			if v, ok := next().(float64); ok {
				m, err = Float(w, v)
			}
		case 'f':
			if v, ok := next().(float64); ok {
				m, err = float(w, v, 'f')
			}
		case 'B':
			if v, ok := next().(bool); ok {
				m, err = Bool(w, v)
			}
		case 'H':
			if v, ok := next().([]byte); ok {
				m, err = Hex(w, v)
			}
		case 'V':
			if v, ok := next().([]byte); ok {
				m, err = Base64(w, v)
			}
		case 'M':
			if v, ok := next().(EmitFunc); ok {
				m, err = v(w)
			}
		case '%':
			m, err = io.WriteString(w, "%")
		default:
			return n, fmt.Errorf("unknown directive %%%c in format %q", format[i], format)
		}
		n += m
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
