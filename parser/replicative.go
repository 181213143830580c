package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Many applies p until it fails and collects the values in order. It
// never fails. The final, failing attempt consumes nothing and its
// diagnostics are dropped.
//
// p must consume input on success, or Many does not terminate.
func Many[S stream.Stream, T any](p Parsable[S, T]) Parser[S, []T] {
	return New(func(s S, log *diag.Logger) (S, []T, bool) {
		return many(p, s, log, []T{})
	})
}

// Some is Many that requires at least one match. If the first attempt
// fails, Some fails and keeps that attempt's diagnostics.
func Some[S stream.Stream, T any](p Parsable[S, T]) Parser[S, []T] {
	return New(func(s S, log *diag.Logger) (S, []T, bool) {
		rest, v, ok := p.Parse(s, log)
		if !ok {
			return fail[S, []T](s)
		}
		return many(p, rest, log, []T{v})
	})
}

func many[S stream.Stream, T any](p Parsable[S, T], s S, log *diag.Logger, out []T) (S, []T, bool) {
	for {
		mark := log.Len()
		rest, v, ok := p.Parse(s, log)
		if !ok {
			log.Truncate(mark)
			return s, out, true
		}
		out = append(out, v)
		s = rest
	}
}

// SepBy parses zero or more p separated by sep and returns the values of
// p. A trailing separator is left unconsumed.
func SepBy[S stream.Stream, T, U any](p Parsable[S, T], sep Parsable[S, U]) Parser[S, []T] {
	return Or(SepBy1(p, sep), Pure[S]([]T{}))
}

// SepBy1 is SepBy that requires at least one p.
func SepBy1[S stream.Stream, T, U any](p Parsable[S, T], sep Parsable[S, U]) Parser[S, []T] {
	return Map(And(p, Many(Right(sep, p))), func(pr Pair[T, []T]) []T {
		return append([]T{pr.First}, pr.Second...)
	})
}
