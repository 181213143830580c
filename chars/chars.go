// Package chars provides primitive parsers over stream.CharStream.
//
// Every primitive follows the all-or-nothing contract of package parser: on
// failure it consumes nothing and logs an error at the position it was
// invoked at.
package chars

import (
	"fmt"
	"unicode"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

// Execute parses text with p.
func Execute[T any](p parser.Parsable[stream.CharStream, T], text string, opts ...parser.Option) parser.Result[stream.CharStream, T] {
	return parser.Exec(p, stream.NewCharStream(text), opts...)
}

func unexpectedEnd(log *diag.Logger, pos stream.Position) {
	log.Add(diag.NewError("unexpected end of input.", pos))
}

// Satisfy consumes one rune for which pred holds.
func Satisfy(pred func(rune) bool) parser.Parser[stream.CharStream, rune] {
	return parser.New(func(s stream.CharStream, log *diag.Logger) (stream.CharStream, rune, bool) {
		next := s
		ch, ok := next.Next()
		if !ok {
			unexpectedEnd(log, s.Position())
			return s, 0, false
		}
		if !pred(ch) {
			log.Add(diag.NewError(fmt.Sprintf("'%c' does not satisfy required conditions.", ch), s.Position()))
			return s, 0, false
		}
		return next, ch, true
	})
}

// Char consumes the rune c.
func Char(c rune) parser.Parser[stream.CharStream, rune] {
	return parser.New(func(s stream.CharStream, log *diag.Logger) (stream.CharStream, rune, bool) {
		next := s
		ch, ok := next.Next()
		if !ok {
			unexpectedEnd(log, s.Position())
			return s, 0, false
		}
		if ch != c {
			log.Add(diag.NewError(fmt.Sprintf("expecting '%c', but got '%c'.", c, ch), s.Position()))
			return s, 0, false
		}
		return next, ch, true
	})
}

// Literal consumes the exact text lit.
func Literal(lit string) parser.Parser[stream.CharStream, string] {
	return parser.New(func(s stream.CharStream, log *diag.Logger) (stream.CharStream, string, bool) {
		if !s.HasPrefix(lit) {
			log.Add(diag.NewError(fmt.Sprintf("expecting \"%s\".", lit), s.Position()))
			return s, "", false
		}
		next := s
		next.Skip(len(lit))
		return next, lit, true
	})
}

// Space consumes one of ' ', '\n', '\r' and '\t'.
func Space() parser.Parser[stream.CharStream, rune] {
	return parser.Choice[stream.CharStream, rune](Char(' '), Char('\n'), Char('\r'), Char('\t'))
}

// Trim runs p with any amount of surrounding whitespace.
func Trim[T any](p parser.Parsable[stream.CharStream, T]) parser.Parser[stream.CharStream, T] {
	spaces := parser.Many(Space())
	return parser.Mid(spaces, p, spaces)
}

func Digit() parser.Parser[stream.CharStream, rune] {
	return Satisfy(unicode.IsDigit)
}

func Letter() parser.Parser[stream.CharStream, rune] {
	return Satisfy(unicode.IsLetter)
}

// Word consumes one or more letters.
func Word() parser.Parser[stream.CharStream, string] {
	return parser.Map(parser.Some(Letter()), func(rs []rune) string { return string(rs) })
}
