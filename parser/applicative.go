package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Pure succeeds with v without consuming input or logging anything.
// The stream kind cannot be inferred, so callers write Pure[S](v).
func Pure[S stream.Stream, T any](v T) Parser[S, T] {
	return New(func(s S, _ *diag.Logger) (S, T, bool) {
		return s, v, true
	})
}

// Compose runs pf, then pv on the remaining input, and applies the parsed
// function to the parsed value.
func Compose[S stream.Stream, A, B any](pf Parsable[S, func(A) B], pv Parsable[S, A]) Parser[S, B] {
	return New(func(s S, log *diag.Logger) (S, B, bool) {
		s1, f, ok := pf.Parse(s, log)
		if !ok {
			return fail[S, B](s)
		}
		s2, a, ok := pv.Parse(s1, log)
		if !ok {
			return fail[S, B](s)
		}
		return s2, f(a), true
	})
}
