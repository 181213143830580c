package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Bind runs p and feeds its value to f, then runs the parser f returns on
// the remaining input. f is not called when p fails.
func Bind[S stream.Stream, A, B any](p Parsable[S, A], f func(A) Parser[S, B]) Parser[S, B] {
	return New(func(s S, log *diag.Logger) (S, B, bool) {
		s1, a, ok := p.Parse(s, log)
		if !ok {
			return fail[S, B](s)
		}
		s2, b, ok := f(a).Parse(s1, log)
		if !ok {
			return fail[S, B](s)
		}
		return s2, b, true
	})
}
