package encode

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{``, `""`},
		{`hi`, `"hi"`},
		{"a\"b", `"a\"b"`},
		{"a\\b", `"a\\b"`},
		{"a\nb\tc", `"a\nb\tc"`},
		{"\b\f\r", `"\b\f\r"`},
		{"превед", `"превед"`},
	} {
		var out bytes.Buffer
		n, err := String(&out, tc.in)
		if err != nil {
			t.Fatal(err)
		}
		if out.String() != tc.want {
			t.Errorf("String(%q): got %s, want %s", tc.in, out.String(), tc.want)
		}
		if n != out.Len() {
			t.Errorf("String(%q): reported %d, wrote %d", tc.in, n, out.Len())
		}
	}
}

func TestScalars(t *testing.T) {
	var out bytes.Buffer
	check := func(want string) {
		t.Helper()
		if out.String() != want {
			t.Errorf("got %s, want %s", out.String(), want)
		}
		out.Reset()
	}
	Int(&out, -42)
	check("-42")
	Uint(&out, 42)
	check("42")
	Float(&out, 1.5)
	check("1.5")
	Float(&out, 0.000001)
	check("1e-06")
	Bool(&out, true)
	check("true")
	Bool(&out, false)
	check("false")
	Hex(&out, []byte("abc"))
	check(`"616263"`)
	Base64(&out, []byte("abc"))
	check(`"YWJj"`)
	Base64(&out, []byte("ab"))
	check(`"YWI="`)
	Raw(&out, []byte(`[1,2]`))
	check(`[1,2]`)
}

func TestLongChunks(t *testing.T) {
	// longer than one stack chunk
	p := bytes.Repeat([]byte{0xab}, 100)
	var out bytes.Buffer
	if _, err := Hex(&out, p); err != nil {
		t.Fatal(err)
	}
	if out.String() != `"`+strings.Repeat("ab", 100)+`"` {
		t.Errorf("hex: got %s", out.String())
	}
	out.Reset()
	if _, err := Base64(&out, bytes.Repeat([]byte("abc"), 40)); err != nil {
		t.Fatal(err)
	}
	if out.String() != `"`+strings.Repeat("YWJj", 40)+`"` {
		t.Errorf("base64: got %s", out.String())
	}
}

func TestPrintf(t *testing.T) {
	for _, tc := range []struct {
		format string
		args   []any
		want   string
	}{
		{`{"a":%d}`, []any{-7}, `{"a":-7}`},
		{`{"a":%u}`, []any{uint64(7)}, `{"a":7}`},
		{`%Q`, []any{"x\ny"}, `"x\ny"`},
		{`%s`, []any{"raw"}, `raw`},
		{`%s`, []any{[]byte(`{"b":1}`)}, `{"b":1}`},
		{`%g`, []any{2.5}, `2.5`},
		{`%f`, []any{2.5}, `2.5`},
		{`%B`, []any{true}, `true`},
		{`%H`, []any{[]byte{1, 2}}, `"0102"`},
		{`%V`, []any{[]byte("hi")}, `"aGk="`},
		{`100%%`, nil, `100%`},
		{`[%d,%d]`, []any{1, 2}, `[1,2]`},
	} {
		var out bytes.Buffer
		n, err := Printf(&out, tc.format, tc.args...)
		if err != nil {
			t.Errorf("Printf(%q): %v", tc.format, err)
			continue
		}
		if out.String() != tc.want {
			t.Errorf("Printf(%q): got %s, want %s", tc.format, out.String(), tc.want)
		}
		if n != out.Len() {
			t.Errorf("Printf(%q): reported %d, wrote %d", tc.format, n, out.Len())
		}
	}
}

func TestPrintfNested(t *testing.T) {
	var out bytes.Buffer
	_, err := Printf(&out, `{"list":[%M]}`, EmitFunc(func(w io.Writer) (int, error) {
		n, err := Printf(w, `%d,%Q`, 1, "two")
		return n, err
	}))
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != `{"list":[1,"two"]}` {
		t.Errorf("got %s", out.String())
	}
}

func TestPrintfBadDirective(t *testing.T) {
	var out bytes.Buffer
	if _, err := Printf(&out, `%z`, nil); err == nil {
		t.Error("want error for unknown directive")
	}
	if _, err := Printf(&out, `trailing %`); err == nil {
		t.Error("want error for trailing percent")
	}
}
