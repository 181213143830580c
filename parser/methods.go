package parser

import "github.com/dhamidi/parsic/stream"

// Methods for the combinators that keep both S and T, so that simple chains
// read left to right. Combinators that change T are functions only.

func (p Parser[S, T]) Or(other Parsable[S, T]) Parser[S, T] { return Or(p, other) }

func (p Parser[S, T]) Recover(v T) Parser[S, T] { return Recover(p, v) }

func (p Parser[S, T]) Info(msg string) Parser[S, T] { return Info(p, msg) }

func (p Parser[S, T]) Warn(msg string) Parser[S, T] { return Warn(p, msg) }

func (p Parser[S, T]) Error(msg string) Parser[S, T] { return Error(p, msg) }

func (p Parser[S, T]) Inspect(f func(S, T, bool)) Parser[S, T] { return Inspect(p, f) }

func (p Parser[S, T]) Trace(name string) Parser[S, T] { return Trace(name, p) }

var _ Parsable[stream.CharStream, rune] = Parser[stream.CharStream, rune]{}
