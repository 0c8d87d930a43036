package token

// number returns the byte length of the numeric token at the start of
// d. The grammar follows RFC 8259 numbers except that leading zeros
// are consumed rather than rejected; the scan loop trusts whatever
// length is reported here, so this lexer and the state machine agree
// on where a number ends.
func number(d []byte) (int, error) {
	i := 0
	if i < len(d) && d[i] == '-' {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0, ErrInvalidInput
	}
	i += n
	i += fract(d[i:])
	i += exp(d[i:])
	return i, nil
}

func asciiDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func asciiDigits(d []byte) int {
	i := 0
	for i < len(d) && asciiDigit(d[i]) {
		i++
	}
	return i
}

func fract(d []byte) int {
	if len(d) < 2 || d[0] != '.' {
		return 0
	}
	n := asciiDigits(d[1:])
	if n == 0 {
		return 0
	}
	return 1 + n
}

func exp(d []byte) int {
	if len(d) < 2 || (d[0] != 'e' && d[0] != 'E') {
		return 0
	}
	i := 1
	if d[i] == '+' || d[i] == '-' {
		i++
	}
	n := asciiDigits(d[i:])
	if n == 0 {
		return 0
	}
	return i + n
}
