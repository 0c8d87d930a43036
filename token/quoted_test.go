package token

import (
	"errors"
	"io"
	"testing"
)

func TestUnescape(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want string
	}{
		{``, ``},
		{`abc`, `abc`},
		{`f\too`, "f\too"},
		{`a\nb\tc`, "a\nb\tc"},
		{`\b\f\r`, "\b\f\r"},
		{`\\`, `\`},
		{`\"`, `"`},
		{`\/`, `/`},
		{`\u0041`, "A"},
		{`\u00e9`, "\xe9"},
		{`превед`, `превед`}, // raw multi-byte passes through
	} {
		dst := make([]byte, 64)
		n, err := Unescape([]byte(tc.in), dst)
		if err != nil {
			t.Errorf("Unescape(%q): %v", tc.in, err)
			continue
		}
		if string(dst[:n]) != tc.want {
			t.Errorf("Unescape(%q): got %q, want %q", tc.in, dst[:n], tc.want)
		}
	}
}

func TestUnescapeInvalid(t *testing.T) {
	for _, in := range []string{
		`\u1234`, // only the single-byte range decodes
		`\u00zz`,
		`\x`,
	} {
		dst := make([]byte, 64)
		if _, err := Unescape([]byte(in), dst); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Unescape(%q): got %v, want ErrInvalidInput", in, err)
		}
	}
}

func TestUnescapeShortBuffer(t *testing.T) {
	dst := make([]byte, 2)
	if _, err := Unescape([]byte("abc"), dst); !errors.Is(err, io.ErrShortBuffer) {
		t.Fatalf("got %v, want io.ErrShortBuffer", err)
	}
	// exact fit is fine
	n, err := Unescape([]byte(`a\nc`), make([]byte, 3))
	if err != nil || n != 3 {
		t.Fatalf("got (%d, %v), want (3, nil)", n, err)
	}
}

func TestPassString(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want int // index of the closing quote; -1 means error
	}{
		{`abc"`, 3},
		{`"`, 0},
		{`a\"b"`, 4},
		{`a\\"`, 3},
		{`abc`, -1},
		{"a\x00b\"", -1},
	} {
		got, err := passString([]byte(tc.in))
		if tc.want == -1 {
			if !errors.Is(err, ErrInvalidInput) {
				t.Errorf("passString(%q): got (%d, %v), want ErrInvalidInput", tc.in, got, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("passString(%q): got (%d, %v), want (%d, nil)", tc.in, got, err, tc.want)
		}
	}
}
