package parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/parsic/chars"
	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

type cs = stream.CharStream

// outcome is the observable part of a parse.
type outcome[T any] struct {
	Value T
	Ok    bool
	Rest  string
	Pos   stream.Position
	Msgs  []diag.Msg
}

func run[T any](p parser.Parsable[cs, T], text string) outcome[T] {
	res := parser.Exec(p, stream.NewCharStream(text))
	return outcome[T]{
		Value: res.Value,
		Ok:    res.Ok,
		Rest:  res.Stream.String(),
		Pos:   res.Stream.Position(),
		Msgs:  res.Messages(),
	}
}

func at(row, col int) stream.Position {
	return stream.Position{Row: row, Col: col}
}

// equivalent checks that p and q behave identically on every input,
// diagnostics included.
func equivalent[T any](t *testing.T, name string, p, q parser.Parsable[cs, T], inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		if diff := cmp.Diff(run(p, in), run(q, in)); diff != "" {
			t.Errorf("%s on %q (-lhs +rhs):\n%s", name, in, diff)
		}
	}
}

// sameResult is equivalent without comparing diagnostics.
func sameResult[T any](t *testing.T, name string, p, q parser.Parsable[cs, T], inputs ...string) {
	t.Helper()
	for _, in := range inputs {
		lhs, rhs := run(p, in), run(q, in)
		lhs.Msgs, rhs.Msgs = nil, nil
		if diff := cmp.Diff(lhs, rhs); diff != "" {
			t.Errorf("%s on %q (-lhs +rhs):\n%s", name, in, diff)
		}
	}
}

var (
	digit  = chars.Digit()
	letter = chars.Letter()
)

func digitValue(r rune) int {
	return int(r - '0')
}
