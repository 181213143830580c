package parser

import (
	"sync"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Lazy defers building a parser until it runs. build is called on every
// parse, never when Lazy itself is called, which lets a grammar refer to
// parsers that are defined later or to itself.
func Lazy[S stream.Stream, T any](build func() Parser[S, T]) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		return build().Parse(s, log)
	})
}

// Fix builds a self-referential parser. f receives a parser standing for
// the result of f and is called once, on the first parse.
//
//	digits := parser.Fix(func(self parser.Parser[stream.CharStream, []rune]) parser.Parser[stream.CharStream, []rune] {
//	    return parser.Or(
//	        parser.Map(parser.And(digit, self), prepend),
//	        parser.Map(digit, single),
//	    )
//	})
func Fix[S stream.Stream, T any](f func(self Parser[S, T]) Parser[S, T]) Parser[S, T] {
	var (
		once  sync.Once
		inner Parser[S, T]
		self  Parser[S, T]
	)
	self = New(func(s S, log *diag.Logger) (S, T, bool) {
		once.Do(func() { inner = f(self) })
		return inner.Parse(s, log)
	})
	return self
}
