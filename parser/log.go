package parser

import (
	"github.com/tliron/commonlog"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/stream"
)

const traceLogger = "parsic.parser"

// Info runs p and, if p fails, logs msg at the position p started from.
func Info[S stream.Stream, T any](p Parsable[S, T], msg string) Parser[S, T] {
	return annotate(p, diag.NewInfo, msg)
}

// Warn is Info with a warning.
func Warn[S stream.Stream, T any](p Parsable[S, T], msg string) Parser[S, T] {
	return annotate(p, diag.NewWarn, msg)
}

// Error is Info with an error. It labels the failure of p, typically
// ahead of a Recover.
func Error[S stream.Stream, T any](p Parsable[S, T], msg string) Parser[S, T] {
	return annotate(p, diag.NewError, msg)
}

func annotate[S stream.Stream, T any](p Parsable[S, T], newMsg func(string, stream.Position) diag.Msg, msg string) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		rest, v, ok := p.Parse(s, log)
		if !ok {
			log.Add(newMsg(msg, s.Position()))
			return fail[S, T](s)
		}
		return rest, v, true
	})
}

// Inspect calls f with the stream and value p produced, and whether p
// succeeded. On failure the stream is the input stream.
func Inspect[S stream.Stream, T any](p Parsable[S, T], f func(S, T, bool)) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		rest, v, ok := p.Parse(s, log)
		f(rest, v, ok)
		return rest, v, ok
	})
}

// Recover turns a failure of p into a success with v at the position p
// started from. Diagnostics of the failed attempt are kept.
func Recover[S stream.Stream, T any](p Parsable[S, T], v T) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		if rest, got, ok := p.Parse(s, log); ok {
			return rest, got, true
		}
		return s, v, true
	})
}

// Trace reports entry and outcome of p to the commonlog logger
// "parsic.parser" at debug level.
func Trace[S stream.Stream, T any](name string, p Parsable[S, T]) Parser[S, T] {
	return New(func(s S, log *diag.Logger) (S, T, bool) {
		tracer := commonlog.GetLogger(traceLogger)
		if !tracer.AllowLevel(commonlog.Debug) {
			return p.Parse(s, log)
		}
		tracer.Debugf("%s: enter at %s", name, s.Position())
		rest, v, ok := p.Parse(s, log)
		if ok {
			tracer.Debugf("%s: matched %d elements, now at %s", name, rest.Index()-s.Index(), rest.Position())
		} else {
			tracer.Debugf("%s: failed at %s", name, s.Position())
		}
		return rest, v, ok
	})
}
