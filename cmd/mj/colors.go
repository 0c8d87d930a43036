package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/microjson/token"
)

type colors struct {
	Default func(string, ...any) string
	Map     map[token.Kind]func(string, ...any) string
}

func newColors() *colors {
	num := color.RGB(128, 216, 236).SprintfFunc()
	key := color.RGB(196, 96, 16).SprintfFunc()
	lit := color.RGB(74, 92, 138).SprintfFunc()
	return &colors{
		Default: func(f string, args ...any) string {
			return color.New().Sprintf(f, args...)
		},
		Map: map[token.Kind]func(string, ...any) string{
			token.Key:    key,
			token.String: color.GreenString,
			token.Number: num,
			token.True:   lit,
			token.False:  lit,
			token.Null:   lit,
		},
	}
}

func (c *colors) sprintf(kind token.Kind, f string, args ...any) string {
	if fn, ok := c.Map[kind]; ok {
		return fn(f, args...)
	}
	return c.Default(f, args...)
}

// useColor honors an explicit -color, otherwise colors only a tty.
func useColor(cfg *MainConfig, cc *cli.Context) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			// set explicitly, and not to true
			return false
		}
		break
	}
	f, ok := cc.Out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

// colorSink reindents like the library pretty printer and wraps each
// token in its kind's color.
type colorSink struct {
	w      io.Writer
	pad    string
	colors *colors
	level  int
	prev   token.Kind
	err    error
}

func (p *colorSink) Token(kind token.Kind, buf []byte, off, n int) bool {
	if p.err != nil {
		return true
	}
	tok := string(buf[off : off+n])
	switch kind {
	case token.ObjectOpen, token.ArrayOpen:
		p.level++
		p.print(kind, tok)
	case token.ObjectClose, token.ArrayClose:
		p.level--
		if p.prev != token.ObjectOpen && p.prev != token.ArrayOpen {
			p.newline()
		}
		p.print(kind, tok)
	case token.Comma:
		p.print(kind, tok)
		p.newline()
	case token.Colon:
		p.print(kind, tok+" ")
	case token.Key:
		if p.prev == token.ObjectOpen {
			p.newline()
		}
		p.print(kind, tok)
	default:
		if p.prev == token.ArrayOpen {
			p.newline()
		}
		p.print(kind, tok)
	}
	p.prev = kind
	return false
}

func (p *colorSink) print(kind token.Kind, s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, p.colors.sprintf(kind, "%s", s))
}

func (p *colorSink) newline() {
	if p.err != nil {
		return
	}
	if _, p.err = io.WriteString(p.w, "\n"); p.err != nil {
		return
	}
	for i := 0; i < p.level; i++ {
		if _, p.err = io.WriteString(p.w, p.pad); p.err != nil {
			return
		}
	}
}
