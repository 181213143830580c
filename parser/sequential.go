package parser

import (
	"fmt"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) String() string {
	return fmt.Sprintf("(%v, %v)", p.First, p.Second)
}

// And runs p1 and then p2 on the remaining input. If either fails the
// stream is restored to where p1 started.
func And[S stream.Stream, A, B any](p1 Parsable[S, A], p2 Parsable[S, B]) Parser[S, Pair[A, B]] {
	return New(func(s S, log *diag.Logger) (S, Pair[A, B], bool) {
		s1, a, ok := p1.Parse(s, log)
		if !ok {
			return fail[S, Pair[A, B]](s)
		}
		s2, b, ok := p2.Parse(s1, log)
		if !ok {
			return fail[S, Pair[A, B]](s)
		}
		return s2, Pair[A, B]{First: a, Second: b}, true
	})
}

// Left is And keeping only the value of p1.
func Left[S stream.Stream, A, B any](p1 Parsable[S, A], p2 Parsable[S, B]) Parser[S, A] {
	return Map(And(p1, p2), func(pr Pair[A, B]) A { return pr.First })
}

// Right is And keeping only the value of p2.
func Right[S stream.Stream, A, B any](p1 Parsable[S, A], p2 Parsable[S, B]) Parser[S, B] {
	return Map(And(p1, p2), func(pr Pair[A, B]) B { return pr.Second })
}

// Mid runs p1, p2 and p3 in sequence and keeps the value of p2.
func Mid[S stream.Stream, A, B, C any](p1 Parsable[S, A], p2 Parsable[S, B], p3 Parsable[S, C]) Parser[S, B] {
	return Right(p1, Left(p2, p3))
}
