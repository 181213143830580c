// Package parser is a parser-combinator engine.
//
// # Overview
//
// A parser is a pure function from a stream and a diagnostic logger to an
// optional result paired with the advanced stream:
//
//	func(s S, log *diag.Logger) (S, T, bool)
//
// Parsers are built once by composing smaller parsers with the combinators
// in this package and can then be invoked any number of times, also
// concurrently, as long as every invocation uses its own stream and logger.
//
// # Failure
//
// A parser reports failure by returning false. Failure is all-or-nothing:
// a failing parser returns the stream it was given, so alternatives and
// repetitions always resume from the position before the failed attempt.
// Failure carries no payload. Explanations live in the logger, which is a
// separate channel: a parser may log an error and succeed anyway, or fail
// silently.
//
// # Streams
//
// Combinators are generic over the stream kind S. Any type implementing
// stream.Stream works; primitives that consume elements live next to the
// concrete stream they understand (see packages chars and items).
//
// # Recursion
//
// Grammars are usually self-referential. Use Lazy or Fix to defer the
// construction of a parser until it is first invoked:
//
//	var expr func() parser.Parser[stream.CharStream, int]
//	expr = func() parser.Parser[stream.CharStream, int] {
//	    return parser.Or(
//	        parser.Mid(chars.Char('('), parser.Lazy(expr), chars.Char(')')),
//	        number,
//	    )
//	}
//
// # Example
//
//	p := parser.And(chars.Literal("if"), chars.Trim(chars.Word()))
//	res := chars.Execute(p, "if   cond")
//	// res.Ok == true, res.Value == parser.Pair[string, string]{"if", "cond"}
package parser

import (
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

// Func is the function a Parser wraps.
type Func[S stream.Stream, T any] func(s S, log *diag.Logger) (S, T, bool)

// Parsable is implemented by anything that can parse a stream of kind S
// into a T. Every combinator accepts a Parsable and returns a Parser.
type Parsable[S stream.Stream, T any] interface {
	Parse(s S, log *diag.Logger) (S, T, bool)
}

// Parser is an immutable, reusable parser. The zero Parser always fails.
type Parser[S stream.Stream, T any] struct {
	fn Func[S, T]
}

func New[S stream.Stream, T any](fn Func[S, T]) Parser[S, T] {
	return Parser[S, T]{fn: fn}
}

// From converts any Parsable into a Parser.
func From[S stream.Stream, T any](p Parsable[S, T]) Parser[S, T] {
	if pp, ok := p.(Parser[S, T]); ok {
		return pp
	}
	return New(p.Parse)
}

// Parse runs the parser. log must not be nil.
func (p Parser[S, T]) Parse(s S, log *diag.Logger) (S, T, bool) {
	if p.fn == nil {
		return fail[S, T](s)
	}
	return p.fn(s, log)
}

func fail[S stream.Stream, T any](s S) (S, T, bool) {
	var zero T
	return s, zero, false
}

// Result is the outcome of a top-level invocation.
type Result[S stream.Stream, T any] struct {
	Stream S
	Value  T
	Ok     bool
	Log    *diag.Logger
}

// Messages returns the diagnostics of the invocation in insertion order.
func (r Result[S, T]) Messages() []diag.Msg {
	return r.Log.Messages()
}

type execConfig struct {
	logger *diag.Logger
}

type Option func(*execConfig)

// WithLogger makes Exec append to l instead of a fresh logger.
func WithLogger(l *diag.Logger) Option {
	return func(c *execConfig) {
		c.logger = l
	}
}

// Exec invokes p on s. The returned Result carries every diagnostic logged
// during the run, whether or not p succeeded.
func Exec[S stream.Stream, T any](p Parsable[S, T], s S, opts ...Option) Result[S, T] {
	var cfg execConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = diag.NewLogger()
	}
	rest, v, ok := p.Parse(s, cfg.logger)
	return Result[S, T]{Stream: rest, Value: v, Ok: ok, Log: cfg.logger}
}

func (p Parser[S, T]) Exec(s S, opts ...Option) Result[S, T] {
	return Exec(p, s, opts...)
}
