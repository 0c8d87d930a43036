package microjson

import (
	"errors"

	"github.com/signadot/microjson/debug"
	"github.com/signadot/microjson/token"
)

// ErrNotFound indicates a query path that does not resolve in the
// document.
var ErrNotFound = errors.New("not found")

// finder resolves one query path against the token stream. d1 tracks
// how deep the scan currently is and d2 how deep the path has matched;
// a value seen at d1 == d2 with the path fully consumed is the result.
// obj remembers the open-delimiter offset of a candidate container so
// its full span can be captured at the matching close.
type finder struct {
	path string
	pos  int
	d1   int
	d2   int
	i1   int
	i2   int
	obj  int
	kind token.Kind
	val  []byte
}

func (f *finder) Token(kind token.Kind, buf []byte, off, n int) bool {
	switch kind {
	case token.ObjectOpen, token.ArrayOpen:
		if kind == token.ArrayOpen && f.d1 == f.d2 && f.pos < len(f.path) && f.path[f.pos] == '[' {
			f.i1 = 0
			f.i2 = f.index()
			if f.i1 == f.i2 {
				f.skipIndex()
				f.d2++
			}
		}
		if f.pos == len(f.path) && f.d1 == f.d2 {
			f.obj = off
		}
		f.d1++
	case token.Comma:
		if f.d1 == f.d2+1 {
			f.i1++
			if f.i1 == f.i2 {
				f.skipIndex()
				f.d2++
			}
		}
	case token.Key:
		if f.d1 == f.d2+1 && f.pos < len(f.path) && f.path[f.pos] == '.' &&
			f.keyMatches(buf[off+1:off+n-1]) {
			f.d2++
			f.pos += 1 + (n - 2)
		} else if f.d1 == f.d2 {
			// The path already matched into this object and its value
			// has passed; no later sibling can resolve it.
			return true
		}
	case token.ObjectClose, token.ArrayClose:
		f.d1--
		if f.pos == len(f.path) && f.d1 == f.d2 && f.obj != -1 {
			if kind == token.ObjectClose {
				f.kind = token.Object
			} else {
				f.kind = token.Array
			}
			f.val = buf[f.obj : off+n]
			return true
		}
	case token.Colon:
	default:
		if kind.IsValue() && f.d1 == f.d2 && f.pos == len(f.path) {
			f.kind = kind
			f.val = buf[off : off+n]
			return true
		}
	}
	return false
}

// index parses the decimal array index opening at the cursor's '['.
func (f *finder) index() int {
	v := 0
	for i := f.pos + 1; i < len(f.path); i++ {
		c := f.path[i]
		if !('0' <= c && c <= '9') {
			break
		}
		v = v*10 + int(c-'0')
	}
	return v
}

// skipIndex advances the cursor past the closing bracket of the
// current '[index]' segment.
func (f *finder) skipIndex() {
	for f.pos < len(f.path) && f.path[f.pos] != ']' {
		f.pos++
	}
	if f.pos < len(f.path) {
		f.pos++
	}
}

func (f *finder) keyMatches(key []byte) bool {
	seg := f.path[f.pos+1:]
	n := segLen(seg)
	return n == len(key) && seg[:n] == string(key)
}

// segLen returns the length of the path segment at the start of s,
// which runs to the next '.' or '[' or the end of the path.
func segLen(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] == '.' || s[i] == '[' {
			return i
		}
	}
	return len(s)
}

// Find resolves a $-rooted path of .name and [index] segments against
// doc, returning the kind and span of the value the path names. The
// span aliases doc; container results run from their opening to their
// closing delimiter. Paths that do not resolve return ErrNotFound;
// malformed documents surface the tokenizer's error.
func Find(doc []byte, path string) (token.Kind, []byte, error) {
	if len(path) == 0 || path[0] != '$' {
		return token.Invalid, nil, token.ErrInvalidInput
	}
	if debug.Find() {
		debug.Logf("find %q in %d bytes\n", path, len(doc))
	}
	f := finder{path: path, pos: 1, obj: -1}
	if _, err := token.Scan(doc, &f); err != nil {
		return token.Invalid, nil, err
	}
	if f.kind == token.Invalid {
		return token.Invalid, nil, ErrNotFound
	}
	return f.kind, f.val, nil
}
