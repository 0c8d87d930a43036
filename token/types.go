package token

// Kind identifies a token reported to a Sink. Structural kinds carry
// the delimiter byte that produced them; value kinds satisfy IsValue.
type Kind int

const (
	Invalid Kind = iota
	ObjectOpen
	ObjectClose
	ArrayOpen
	ArrayClose
	Comma
	Colon
	Key
	String
	Number
	True
	False
	Null
)

// Container values located by a query are reported with the kind of
// their opening delimiter.
const (
	Object = ObjectOpen
	Array  = ArrayOpen
)

func (k Kind) String() string {
	return map[Kind]string{
		Invalid:     "invalid",
		ObjectOpen:  "object-open",
		ObjectClose: "object-close",
		ArrayOpen:   "array-open",
		ArrayClose:  "array-close",
		Comma:       "comma",
		Colon:       "colon",
		Key:         "key",
		String:      "string",
		Number:      "number",
		True:        "true",
		False:       "false",
		Null:        "null",
	}[k]
}

// IsValue reports whether k is a scalar value token. Keys and
// structural tokens are not values.
func (k Kind) IsValue() bool {
	switch k {
	case String, Number, True, False, Null:
		return true
	}
	return false
}

// A Sink receives one call per scanned token, with the token's byte
// span given as (off, n) into buf. Returning true stops the scan; the
// tokenizer then reports the offset one past the triggering token.
type Sink interface {
	Token(kind Kind, buf []byte, off, n int) bool
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(kind Kind, buf []byte, off, n int) bool

func (f SinkFunc) Token(kind Kind, buf []byte, off, n int) bool {
	return f(kind, buf, off, n)
}
