package microjson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/theory/jsonpath"

	"github.com/signadot/microjson/token"
)

func TestFind(t *testing.T) {
	for _, tc := range []struct {
		doc  string
		path string
		kind token.Kind
		want string
	}{
		{`true`, `$`, token.True, `true`},
		{`123`, `$`, token.Number, `123`},
		{`"hi"`, `$`, token.String, `"hi"`},
		{`{"a":1}`, `$`, token.Object, `{"a":1}`},
		{`{"a":1}`, `$.a`, token.Number, `1`},
		{`{"a":{"b":2}}`, `$.a.b`, token.Number, `2`},
		{`{"a":{"b":2}}`, `$.a`, token.Object, `{"b":2}`},
		{`{"a":[1,null]}`, `$.a`, token.Array, `[1,null]`},
		// a non-matching subtree must not hide a later sibling
		{`{"a":{"c":null},"c":2}`, `$.c`, token.Number, `2`},
		{`{"a":3,"ab":2}`, `$.ab`, token.Number, `2`},
		{`[1,2,3]`, `$[0]`, token.Number, `1`},
		{`[1,2,3]`, `$[1]`, token.Number, `2`},
		{`[1,2,3]`, `$[2]`, token.Number, `3`},
		{`[[1],[2]]`, `$[1]`, token.Array, `[2]`},
		{`[[1,2],[3,4]]`, `$[1][0]`, token.Number, `3`},
		{`{"a":[{"b":7}]}`, `$.a[0].b`, token.Number, `7`},
		{`{"a":{"b":[1,2]},"c":true}`, `$.a.b[1]`, token.Number, `2`},
		{`{"a":null}`, `$.a`, token.Null, `null`},
	} {
		kind, val, err := Find([]byte(tc.doc), tc.path)
		if err != nil {
			t.Errorf("Find(%s, %s): %v", tc.doc, tc.path, err)
			continue
		}
		if kind != tc.kind || string(val) != tc.want {
			t.Errorf("Find(%s, %s): got (%v, %s), want (%v, %s)",
				tc.doc, tc.path, kind, val, tc.kind, tc.want)
		}
	}
}

func TestFindNotFound(t *testing.T) {
	for _, tc := range []struct {
		doc  string
		path string
	}{
		{`{"a":1}`, `$.b`},
		{`{"a":{"b":1}}`, `$.a.c`},
		{`{"a":{"b":1}}`, `$.b.a`},
		{`[1,2]`, `$[2]`},
		{`[]`, `$[0]`},
		{`{}`, `$.a`},
		{`{"a":1}`, `$[0]`},
		{`[1]`, `$.a`},
		{`7`, `$.a`},
	} {
		_, _, err := Find([]byte(tc.doc), tc.path)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("Find(%s, %s): got %v, want ErrNotFound", tc.doc, tc.path, err)
		}
	}
}

func TestFindBadInput(t *testing.T) {
	if _, _, err := Find([]byte(`{"a":1}`), "a"); !errors.Is(err, token.ErrInvalidInput) {
		t.Errorf("rootless path: got %v", err)
	}
	if _, _, err := Find([]byte(`{"a":`), "$.b"); !errors.Is(err, token.ErrInvalidInput) {
		t.Errorf("truncated doc: got %v", err)
	}
}

// TestFindOracle cross-checks scalar lookups against a tree-building
// JSONPath implementation.
func TestFindOracle(t *testing.T) {
	doc := []byte(`{"a":{"b":[10,20,{"c":"deep"}],"d":true},"e":null,"f":-2.5}`)
	var tree any
	if err := json.Unmarshal(doc, &tree); err != nil {
		t.Fatal(err)
	}
	for _, path := range []string{
		"$.a.b[0]", "$.a.b[1]", "$.a.b[2].c", "$.a.d", "$.e", "$.f",
	} {
		p, err := jsonpath.Parse(path)
		if err != nil {
			t.Fatalf("parse %s: %v", path, err)
		}
		sel := p.Select(tree)
		if len(sel) != 1 {
			t.Fatalf("oracle %s: %d results", path, len(sel))
		}
		_, val, err := Find(doc, path)
		if err != nil {
			t.Errorf("Find %s: %v", path, err)
			continue
		}
		var got any
		if err := json.Unmarshal(val, &got); err != nil {
			t.Errorf("Find %s: bad span %s: %v", path, val, err)
			continue
		}
		want, _ := json.Marshal(sel[0])
		gotJSON, _ := json.Marshal(got)
		if string(gotJSON) != string(want) {
			t.Errorf("Find %s: got %s, oracle %s", path, gotJSON, want)
		}
	}
}

func TestFindNumber(t *testing.T) {
	doc := []byte(`{"a":1,"b":[2,3.5],"c":"x"}`)
	if v := FindNumber(doc, "$.a", -1); v != 1 {
		t.Errorf("$.a: %v", v)
	}
	if v := FindNumber(doc, "$.b[1]", -1); v != 3.5 {
		t.Errorf("$.b[1]: %v", v)
	}
	// defaults hold on miss and on type mismatch
	if v := FindNumber(doc, "$.z", 42); v != 42 {
		t.Errorf("$.z: %v", v)
	}
	if v := FindNumber(doc, "$.c", 42); v != 42 {
		t.Errorf("$.c: %v", v)
	}
}

func TestFindBool(t *testing.T) {
	doc := []byte(`{"t":true,"f":false,"n":0}`)
	if !FindBool(doc, "$.t", false) {
		t.Error("$.t")
	}
	if FindBool(doc, "$.f", true) {
		t.Error("$.f")
	}
	if !FindBool(doc, "$.n", true) {
		t.Error("$.n: default must hold for non-bool")
	}
	if FindBool(doc, "$.z", false) {
		t.Error("$.z")
	}
}

func TestFindString(t *testing.T) {
	doc := []byte(`{"a":"f\too","b":7}`)
	var buf [16]byte
	n, err := FindString(doc, "$.a", buf[:])
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "f\too" {
		t.Errorf("got %q", buf[:n])
	}
	if _, err := FindString(doc, "$.b", buf[:]); !errors.Is(err, ErrNotFound) {
		t.Errorf("non-string: got %v", err)
	}
}

func TestFindHexBase64(t *testing.T) {
	doc := []byte(`{"h":"6d6a","b":"bWo="}`)
	var buf [8]byte
	n, err := FindHex(doc, "$.h", buf[:])
	if err != nil || string(buf[:n]) != "mj" {
		t.Errorf("hex: got (%q, %v)", buf[:n], err)
	}
	n, err = FindBase64(doc, "$.b", buf[:])
	if err != nil || string(buf[:n]) != "mj" {
		t.Errorf("base64: got (%q, %v)", buf[:n], err)
	}
}
