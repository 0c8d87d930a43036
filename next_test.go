package microjson

import (
	"testing"

	"github.com/signadot/microjson/token"
)

func TestNextObject(t *testing.T) {
	doc := []byte(`{"a":1,"b":[1,2],"c":{"d":null},"e":"x"}`)
	type member struct {
		key   string
		value string
		kind  token.Kind
	}
	want := []member{
		{`"a"`, `1`, token.Number},
		{`"b"`, `[1,2]`, token.Array},
		{`"c"`, `{"d":null}`, token.Object},
		{`"e"`, `"x"`, token.String},
	}
	var got []member
	for off := 0; ; {
		m, next := Next(doc, off)
		if next == 0 {
			break
		}
		off = next
		got = append(got, member{string(m.Key), string(m.Value), m.Kind})
	}
	if len(got) != len(want) {
		t.Fatalf("got %d members %v, want %d", len(got), got, len(want))
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("member %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNextArray(t *testing.T) {
	doc := []byte(`[10,[20],{"a":30},"x"]`)
	wantVals := []string{`10`, `[20]`, `{"a":30}`, `"x"`}
	i := 0
	for off := 0; ; i++ {
		m, next := Next(doc, off)
		if next == 0 {
			break
		}
		off = next
		if m.Key != nil {
			t.Errorf("element %d: unexpected key %q", i, m.Key)
		}
		if m.Index != i {
			t.Errorf("element %d: index %d", i, m.Index)
		}
		if string(m.Value) != wantVals[i] {
			t.Errorf("element %d: value %s, want %s", i, m.Value, wantVals[i])
		}
	}
	if i != len(wantVals) {
		t.Errorf("iterated %d elements, want %d", i, len(wantVals))
	}
}

func TestNextEmpty(t *testing.T) {
	for _, doc := range []string{`{}`, `[]`, ``, `true`} {
		if m, next := Next([]byte(doc), 0); next != 0 {
			t.Errorf("Next(%q): got (%v, %d), want end", doc, m, next)
		}
	}
}
