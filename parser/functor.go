package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Map transforms the value of a successful parse with f.
func Map[S stream.Stream, A, B any](p Parsable[S, A], f func(A) B) Parser[S, B] {
	return New(func(s S, log *diag.Logger) (S, B, bool) {
		rest, a, ok := p.Parse(s, log)
		if !ok {
			return fail[S, B](s)
		}
		return rest, f(a), true
	})
}

// MapOption is Map for transformations that may reject a value. A rejected
// value turns the parse into a failure and the stream is restored.
func MapOption[S stream.Stream, A, B any](p Parsable[S, A], f func(A) (B, bool)) Parser[S, B] {
	return New(func(s S, log *diag.Logger) (S, B, bool) {
		rest, a, ok := p.Parse(s, log)
		if !ok {
			return fail[S, B](s)
		}
		b, ok := f(a)
		if !ok {
			return fail[S, B](s)
		}
		return rest, b, true
	})
}

// MapResult is Map for transformations that can return an error. The error
// text is logged at the position p started from and the parse fails.
func MapResult[S stream.Stream, A, B any](p Parsable[S, A], f func(A) (B, error)) Parser[S, B] {
	return New(func(s S, log *diag.Logger) (S, B, bool) {
		rest, a, ok := p.Parse(s, log)
		if !ok {
			return fail[S, B](s)
		}
		b, err := f(a)
		if err != nil {
			log.Add(diag.NewError(err.Error(), s.Position()))
			return fail[S, B](s)
		}
		return rest, b, true
	})
}
