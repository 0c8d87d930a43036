package microjson

import (
	"io"

	"github.com/signadot/microjson/token"
)

var (
	newline = []byte("\n")
	space   = []byte(" ")
)

// prettySink reindents the token stream with one pad per nesting
// level. It is a plain consumer of the tokenizer's event contract; the
// previous token kind decides where line breaks go.
type prettySink struct {
	w     *countWriter
	pad   []byte
	level int
	prev  token.Kind
	err   error
}

func (p *prettySink) Token(kind token.Kind, buf []byte, off, n int) bool {
	if p.err != nil {
		return true
	}
	tok := buf[off : off+n]
	switch kind {
	case token.ObjectOpen, token.ArrayOpen:
		p.level++
		p.write(tok)
	case token.ObjectClose, token.ArrayClose:
		p.level--
		if len(p.pad) > 0 && p.prev != token.ObjectOpen && p.prev != token.ArrayOpen {
			p.newline()
		}
		p.write(tok)
	case token.Comma:
		p.write(tok)
		if len(p.pad) > 0 {
			p.newline()
		}
	case token.Colon:
		p.write(tok)
		if len(p.pad) > 0 {
			p.write(space)
		}
	case token.Key:
		if len(p.pad) > 0 && p.prev == token.ObjectOpen {
			p.newline()
		}
		p.write(tok)
	default:
		if len(p.pad) > 0 && p.prev == token.ArrayOpen {
			p.newline()
		}
		p.write(tok)
	}
	p.prev = kind
	return false
}

func (p *prettySink) write(b []byte) {
	if p.err != nil {
		return
	}
	_, p.err = p.w.Write(b)
}

func (p *prettySink) newline() {
	p.write(newline)
	for i := 0; i < p.level; i++ {
		p.write(p.pad)
	}
}

// Pretty rewrites doc through w, indenting with one pad string per
// nesting level, and returns the number of bytes written. An empty pad
// yields compact single-line output with insignificant whitespace
// dropped.
func Pretty(doc []byte, pad string, w io.Writer) (int, error) {
	cw := &countWriter{w: w}
	p := &prettySink{w: cw, pad: []byte(pad)}
	if _, err := token.Scan(doc, p); err != nil {
		return cw.n, err
	}
	return cw.n, p.err
}
