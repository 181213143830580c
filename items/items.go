// Package items provides primitive parsers over stream.Slice, for grammars
// whose input is a sequence of already lexed tokens rather than text.
package items

import (
	"fmt"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

// Execute parses elems with p. isNewline is passed to stream.NewSlice.
func Execute[E, T any](p parser.Parsable[stream.Slice[E], T], elems []E, isNewline func(E) bool, opts ...parser.Option) parser.Result[stream.Slice[E], T] {
	return parser.Exec(p, stream.NewSlice(elems, isNewline), opts...)
}

// Satisfy consumes one element for which pred holds. desc names the
// expected element in the diagnostic logged on mismatch.
func Satisfy[E any](desc string, pred func(E) bool) parser.Parser[stream.Slice[E], E] {
	return parser.New(func(s stream.Slice[E], log *diag.Logger) (stream.Slice[E], E, bool) {
		next := s
		e, ok := next.Next()
		if !ok {
			log.Add(diag.NewError("unexpected end of input.", s.Position()))
			var zero E
			return s, zero, false
		}
		if !pred(e) {
			log.Add(diag.NewError(fmt.Sprintf("expecting %s, but got %v.", desc, e), s.Position()))
			var zero E
			return s, zero, false
		}
		return next, e, true
	})
}

// Equal consumes one element equal to want.
func Equal[E comparable](want E) parser.Parser[stream.Slice[E], E] {
	return Satisfy(fmt.Sprint(want), func(e E) bool { return e == want })
}

// Any consumes one element, whatever it is.
func Any[E any]() parser.Parser[stream.Slice[E], E] {
	return Satisfy("any element", func(E) bool { return true })
}
