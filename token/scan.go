package token

// MaxDepth bounds container nesting. The nesting stack is a fixed
// array local to each scan, so the tokenizer's auxiliary memory is
// known at compile time.
const MaxDepth = 20

// scan states, one per class of token the grammar can accept next.
type state int

const (
	expectValue state = iota
	expectKey
	expectColon
	expectCommaOrClose
)

// Scan walks buf left to right exactly once, reporting each token to
// sink. A nil sink validates only. It returns the offset one past the
// last byte of the first complete top-level value, or one past the
// token on which the sink stopped the scan. Input that runs out, or
// breaks the grammar, yields ErrInvalidInput; nesting past MaxDepth
// yields ErrTooDeep.
func Scan(buf []byte, sink Sink) (int, error) {
	var nesting [MaxDepth]byte
	depth := 0
	st := expectValue
	for i := 0; i < len(buf); i++ {
		c := buf[i]
		if c == ' ' || c == '\t' || c == '\n' || c == '\r' {
			continue
		}
		start := i
		var kind Kind
		switch st {
		case expectValue:
			isOpen := false
			switch {
			case c == '{':
				if depth >= MaxDepth {
					return 0, ErrTooDeep
				}
				nesting[depth] = c
				depth++
				st = expectKey
				kind = ObjectOpen
				isOpen = true
			case c == '[':
				if depth >= MaxDepth {
					return 0, ErrTooDeep
				}
				nesting[depth] = c
				depth++
				kind = ArrayOpen
				isOpen = true
			case c == ']' && depth > 0:
				// empty array
				if nesting[depth-1] != '[' {
					return 0, ErrInvalidInput
				}
				depth--
				kind = ArrayClose
				if depth == 0 {
					if sink != nil {
						sink.Token(kind, buf, start, i-start+1)
					}
					return i + 1, nil
				}
			case c == 't':
				if !literal(buf, i, "true") {
					return 0, ErrInvalidInput
				}
				i += 3
				kind = True
			case c == 'f':
				if !literal(buf, i, "false") {
					return 0, ErrInvalidInput
				}
				i += 4
				kind = False
			case c == 'n':
				if !literal(buf, i, "null") {
					return 0, ErrInvalidInput
				}
				i += 3
				kind = Null
			case c == '-' || asciiDigit(c):
				n, err := number(buf[i:])
				if err != nil {
					return 0, err
				}
				i += n - 1
				kind = Number
			case c == '"':
				n, err := passString(buf[i+1:])
				if err != nil {
					return 0, err
				}
				i += n + 1
				kind = String
			default:
				return 0, ErrInvalidInput
			}
			if !isOpen {
				if depth == 0 {
					if sink != nil {
						sink.Token(kind, buf, start, i-start+1)
					}
					return i + 1, nil
				}
				st = expectCommaOrClose
			}
		case expectKey:
			switch c {
			case '"':
				n, err := passString(buf[i+1:])
				if err != nil {
					return 0, err
				}
				i += n + 1
				kind = Key
				st = expectColon
			case '}':
				// empty object
				if depth == 0 || nesting[depth-1] != '{' {
					return 0, ErrInvalidInput
				}
				depth--
				kind = ObjectClose
				if depth == 0 {
					if sink != nil {
						sink.Token(kind, buf, start, i-start+1)
					}
					return i + 1, nil
				}
				st = expectCommaOrClose
			default:
				return 0, ErrInvalidInput
			}
		case expectColon:
			if c != ':' {
				return 0, ErrInvalidInput
			}
			kind = Colon
			st = expectValue
		case expectCommaOrClose:
			if depth == 0 {
				return 0, ErrInvalidInput
			}
			switch c {
			case ',':
				kind = Comma
				if nesting[depth-1] == '{' {
					st = expectKey
				} else {
					st = expectValue
				}
			case ']', '}':
				// '[' and ']' are two apart in ASCII, as are '{' and '}'
				if nesting[depth-1]+2 != c {
					return 0, ErrInvalidInput
				}
				depth--
				if c == '}' {
					kind = ObjectClose
				} else {
					kind = ArrayClose
				}
				if depth == 0 {
					if sink != nil {
						sink.Token(kind, buf, start, i-start+1)
					}
					return i + 1, nil
				}
			default:
				return 0, ErrInvalidInput
			}
		}
		if sink != nil && sink.Token(kind, buf, start, i-start+1) {
			return i + 1, nil
		}
	}
	return 0, ErrInvalidInput
}

func literal(buf []byte, i int, lit string) bool {
	return i+len(lit) <= len(buf) && string(buf[i:i+len(lit)]) == lit
}
