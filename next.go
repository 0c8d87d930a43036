package microjson

import "github.com/signadot/microjson/token"

// Member is one key/value pair of a top-level object, or one element
// of a top-level array, reported by Next. Key is the raw key token
// with its quotes; it is nil for array elements, whose position is in
// Index instead. Value spans the raw value, containers included.
type Member struct {
	Key   []byte
	Index int
	Value []byte
	Kind  token.Kind
}

// stepper finds the first member of the top-level container whose
// value starts after a given offset. Container values are captured at
// their close; vo holds their open offset in the meantime.
type stepper struct {
	off        int
	end        int
	depth      int
	vo         int
	arrayIndex int
	m          Member
}

func (s *stepper) Token(kind token.Kind, buf []byte, off, n int) bool {
	switch kind {
	case token.ObjectOpen, token.ArrayOpen:
		if s.depth == 0 && kind == token.ArrayOpen {
			s.arrayIndex = 0
		}
		if s.depth == 1 && off > s.off {
			s.vo = off
			if kind == token.ObjectOpen {
				s.m.Kind = token.Object
			} else {
				s.m.Kind = token.Array
			}
		}
		s.depth++
	case token.ObjectClose, token.ArrayClose:
		s.depth--
		if s.depth == 1 && s.vo != 0 {
			s.end = off + n
			s.m.Value = buf[s.vo:s.end]
			if s.arrayIndex >= 0 {
				s.m.Index = s.arrayIndex
				s.m.Key = nil
			}
			return true
		}
		if s.depth == 1 && s.arrayIndex >= 0 {
			// a nested container wholly before the offset still counts
			s.arrayIndex++
		}
	case token.Key:
		if s.depth == 1 && off > s.off {
			s.m.Key = buf[off : off+n]
		}
	case token.Comma, token.Colon:
	default:
		if s.depth != 1 {
			break
		}
		if off > s.off {
			s.end = off + n
			s.m.Value = buf[off : off+n]
			s.m.Kind = kind
			if s.arrayIndex >= 0 {
				s.m.Index = s.arrayIndex
				s.m.Key = nil
			}
			return true
		}
		if s.arrayIndex >= 0 {
			s.arrayIndex++
		}
	}
	return false
}

// Next reports the first member of doc's top-level container whose
// value begins after byte offset off, along with the offset to pass on
// the following call. Start with off 0; a returned offset of 0 means
// the iteration is done. Each step is one forward scan over doc, so a
// full iteration of an n-member document costs n scans.
func Next(doc []byte, off int) (Member, int) {
	s := stepper{off: off, arrayIndex: -1}
	// scan errors surface as end of iteration
	token.Scan(doc, &s)
	if s.end == 0 {
		return Member{}, 0
	}
	return s.m, s.end
}
