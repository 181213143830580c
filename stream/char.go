package stream

import (
	"strings"
	"unicode/utf8"
)

// CharStream is a stream of runes over an in-memory string.
type CharStream struct {
	input  string
	offset int // byte offset of the next rune
	index  int // runes consumed
	total  int // runes in input
	pos    Position
}

func NewCharStream(input string) CharStream {
	return CharStream{
		input: input,
		total: utf8.RuneCountInString(input),
	}
}

func (s CharStream) String() string {
	return s.input[s.offset:]
}

func (s CharStream) Position() Position {
	return s.pos
}

func (s CharStream) Index() int {
	return s.index
}

// Offset returns the byte offset of the next rune in the original input.
func (s CharStream) Offset() int {
	return s.offset
}

func (s CharStream) Len() int {
	return s.total - s.index
}

func (s CharStream) IsEmpty() bool {
	return s.offset >= len(s.input)
}

// HasPrefix reports whether the remaining input starts with prefix.
func (s CharStream) HasPrefix(prefix string) bool {
	return strings.HasPrefix(s.input[s.offset:], prefix)
}

// Next consumes one rune.
func (s *CharStream) Next() (rune, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	ch, size := utf8.DecodeRuneInString(s.input[s.offset:])
	s.offset += size
	s.index++
	s.pos = s.pos.Advance(ch == '\n')
	return ch, true
}

// Skip consumes up to n bytes of input, rune by rune, and returns the text
// consumed. It never splits a rune.
func (s *CharStream) Skip(n int) string {
	start := s.offset
	for s.offset-start < n {
		if _, ok := s.Next(); !ok {
			break
		}
	}
	return s.input[start:s.offset]
}

var _ Cursor[rune] = (*CharStream)(nil)
