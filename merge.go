package microjson

import (
	"io"

	"github.com/signadot/microjson/debug"
	"github.com/signadot/microjson/token"
)

var (
	openBrace  = []byte("{")
	closeBrace = []byte("}")
	comma      = []byte(",")
	colon      = []byte(":")
)

// countWriter sums the bytes written through an io.Writer.
type countWriter struct {
	w io.Writer
	n int
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += n
	return n, err
}

// Merge writes the structural union of two JSON objects to w and
// returns the number of bytes written. A null value in patch deletes
// the key, a key whose value is an object in both inputs merges
// recursively, and any other patch value replaces the base value. Keys
// keep base order; keys only in patch follow in patch order. A base
// shorter than two bytes produces no output.
func Merge(base, patch []byte, w io.Writer) (int, error) {
	cw := &countWriter{w: w}
	err := merge(base, patch, cw)
	return cw.n, err
}

func merge(base, patch []byte, w *countWriter) error {
	if len(base) < 2 {
		return nil
	}
	if debug.Merge() {
		debug.Logf("merge %d byte base, %d byte patch\n", len(base), len(patch))
	}
	if _, err := w.Write(openBrace); err != nil {
		return err
	}
	first := true

	// base members, patched
	for off := 0; ; {
		m, next := Next(base, off)
		if next == 0 {
			break
		}
		off = next
		if m.Key == nil {
			continue
		}
		path := "$." + string(m.Key[1:len(m.Key)-1])
		pKind, pVal, err := Find(patch, path)
		found := err == nil
		if found && pKind == token.Null {
			// null deletes the key
			continue
		}
		if err := writeMember(w, &first, m.Key); err != nil {
			return err
		}
		if found && pKind == token.Object && m.Kind == token.Object {
			if err := merge(m.Value, pVal, w); err != nil {
				return err
			}
			continue
		}
		val := m.Value
		if found {
			val = pVal
		}
		if _, err := w.Write(val); err != nil {
			return err
		}
	}

	// patch-only members
	for off := 0; ; {
		m, next := Next(patch, off)
		if next == 0 {
			break
		}
		off = next
		if m.Key == nil || m.Kind == token.Null {
			continue
		}
		path := "$." + string(m.Key[1:len(m.Key)-1])
		if _, _, err := Find(base, path); err == nil {
			// already emitted with the base members
			continue
		}
		if err := writeMember(w, &first, m.Key); err != nil {
			return err
		}
		if _, err := w.Write(m.Value); err != nil {
			return err
		}
	}
	_, err := w.Write(closeBrace)
	return err
}

// writeMember emits the separator comma, the raw key and the colon for
// the next object member.
func writeMember(w *countWriter, first *bool, key []byte) error {
	if !*first {
		if _, err := w.Write(comma); err != nil {
			return err
		}
	}
	*first = false
	if _, err := w.Write(key); err != nil {
		return err
	}
	_, err := w.Write(colon)
	return err
}
