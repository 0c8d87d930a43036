package microjson

import (
	"encoding/base64"
	"encoding/hex"
	"io"
	"strconv"

	"github.com/signadot/microjson/token"
)

// FindNumber returns the number at path, or def when the path does not
// resolve to a number.
func FindNumber(doc []byte, path string, def float64) float64 {
	kind, val, err := Find(doc, path)
	if err != nil || kind != token.Number {
		return def
	}
	v, err := strconv.ParseFloat(string(val), 64)
	if err != nil {
		return def
	}
	return v
}

// FindBool returns the boolean at path, or def when the path does not
// resolve to a boolean.
func FindBool(doc []byte, path string, def bool) bool {
	kind, _, err := Find(doc, path)
	if err != nil {
		return def
	}
	switch kind {
	case token.True:
		return true
	case token.False:
		return false
	}
	return def
}

// FindString locates the string at path and unescapes its payload into
// dst, returning the number of bytes written. A path resolving to a
// non-string is ErrNotFound; a dst too small for the unescaped form is
// io.ErrShortBuffer.
func FindString(doc []byte, path string, dst []byte) (int, error) {
	val, err := findString(doc, path)
	if err != nil {
		return 0, err
	}
	return token.Unescape(val, dst)
}

// FindHex decodes the hex payload of the string at path into dst.
func FindHex(doc []byte, path string, dst []byte) (int, error) {
	val, err := findString(doc, path)
	if err != nil {
		return 0, err
	}
	if len(dst) < hex.DecodedLen(len(val)) {
		return 0, io.ErrShortBuffer
	}
	return hex.Decode(dst, val)
}

// FindBase64 decodes the base64 payload of the string at path into dst.
func FindBase64(doc []byte, path string, dst []byte) (int, error) {
	val, err := findString(doc, path)
	if err != nil {
		return 0, err
	}
	if len(dst) < base64.StdEncoding.DecodedLen(len(val)) {
		return 0, io.ErrShortBuffer
	}
	return base64.StdEncoding.Decode(dst, val)
}

// findString resolves path to a string value and returns its raw
// payload, quotes stripped.
func findString(doc []byte, path string) ([]byte, error) {
	kind, val, err := Find(doc, path)
	if err != nil {
		return nil, err
	}
	if kind != token.String {
		return nil, ErrNotFound
	}
	return val[1 : len(val)-1], nil
}
