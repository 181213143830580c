package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Maybe is the value of an optional parse.
type Maybe[T any] struct {
	Value T
	Ok    bool
}

func Just[T any](v T) Maybe[T] {
	return Maybe[T]{Value: v, Ok: true}
}

func Nothing[T any]() Maybe[T] {
	return Maybe[T]{}
}

// Get returns the value and whether it is present.
func (m Maybe[T]) Get() (T, bool) {
	return m.Value, m.Ok
}

// OrElse returns the value, or def when absent.
func (m Maybe[T]) OrElse(def T) T {
	if m.Ok {
		return m.Value
	}
	return def
}

// Empty always fails. It consumes nothing and logs nothing.
func Empty[S stream.Stream, T any]() Parser[S, T] {
	return New(func(s S, _ *diag.Logger) (S, T, bool) {
		return fail[S, T](s)
	})
}

// Or is ordered choice. It tries p1 and, if p1 fails, drops whatever p1
// logged and runs p2 from the same position. When both fail the
// diagnostics of p2 are kept.
func Or[S stream.Stream, T any](p1, p2 Parsable[S, T]) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		mark := log.Len()
		if rest, v, ok := p1.Parse(s, log); ok {
			return rest, v, true
		}
		log.Truncate(mark)
		if rest, v, ok := p2.Parse(s, log); ok {
			return rest, v, true
		}
		return fail[S, T](s)
	})
}

// Choice is Or over any number of alternatives, tried left to right.
// With none it behaves like Empty.
func Choice[S stream.Stream, T any](ps ...Parsable[S, T]) Parser[S, T] {
	switch len(ps) {
	case 0:
		return Empty[S, T]()
	case 1:
		return From(ps[0])
	}
	return Or(ps[0], Choice(ps[1:]...))
}

// Optional tries p once and never fails. A failed attempt consumes
// nothing and leaves no diagnostics behind.
func Optional[S stream.Stream, T any](p Parsable[S, T]) Parser[S, Maybe[T]] {
	return Or(Map(p, Just[T]), Pure[S](Nothing[T]()))
}

// End succeeds with an empty struct on exhausted input. Otherwise it logs
// an error at the current position and fails.
func End[S stream.Stream]() Parser[S, struct{}] {
	return New(func(s S, log *diag.Logger) (S, struct{}, bool) {
		if !s.IsEmpty() {
			log.Add(diag.NewError("expecting end of input.", s.Position()))
			return fail[S, struct{}](s)
		}
		return s, struct{}{}, true
	})
}
