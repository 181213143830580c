package stream

import "fmt"

// Slice is a stream over an in-memory slice of arbitrary elements, such as
// the tokens produced by a separate lexer.
type Slice[E any] struct {
	elems     []E
	index     int
	pos       Position
	isNewline func(E) bool
}

// NewSlice returns a stream over elems. isNewline decides which elements
// start a new row; nil means none do.
func NewSlice[E any](elems []E, isNewline func(E) bool) Slice[E] {
	return Slice[E]{elems: elems, isNewline: isNewline}
}

// String renders the remaining elements.
func (s Slice[E]) String() string {
	rest := s.elems[s.index:]
	if len(rest) == 0 {
		return ""
	}
	return fmt.Sprint(rest)
}

func (s Slice[E]) Position() Position { return s.pos }
func (s Slice[E]) Index() int         { return s.index }
func (s Slice[E]) Len() int           { return len(s.elems) - s.index }
func (s Slice[E]) IsEmpty() bool      { return s.index >= len(s.elems) }

// Remaining returns the unconsumed elements. The caller must not modify
// them.
func (s Slice[E]) Remaining() []E {
	return s.elems[s.index:]
}

func (s *Slice[E]) Next() (E, bool) {
	var zero E
	if s.IsEmpty() {
		return zero, false
	}
	e := s.elems[s.index]
	s.index++
	s.pos = s.pos.Advance(s.isNewline != nil && s.isNewline(e))
	return e, true
}

var _ Cursor[int] = (*Slice[int])(nil)
