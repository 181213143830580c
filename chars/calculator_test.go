package chars

import (
	"strconv"
	"testing"

	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

// Arithmetic over floats with + - * / and parentheses:
//
//	expr   := term ('+'|'-') expr | term
//	term   := factor ('*'|'/') term | factor
//	factor := '(' expr ')' | float
//	float  := digits ['.' digits]

type calc = parser.Parser[stream.CharStream, float64]

func unsigned() parser.Parser[stream.CharStream, string] {
	return parser.Map(parser.Some(Digit()), func(ds []rune) string { return string(ds) })
}

func decimal() calc {
	frac := parser.Optional(parser.Right(Char('.'), unsigned()))
	num := parser.MapResult(parser.And(unsigned(), frac), func(pr parser.Pair[string, parser.Maybe[string]]) (float64, error) {
		text := pr.First
		if f, ok := pr.Second.Get(); ok {
			text += "." + f
		}
		return strconv.ParseFloat(text, 64)
	})
	return Trim(num)
}

func binary(lhs calc, ops string, rhs calc) calc {
	var alts []parser.Parsable[stream.CharStream, rune]
	for _, op := range ops {
		alts = append(alts, Char(op))
	}
	op := Trim(parser.Choice(alts...))
	return parser.Map(parser.And(parser.And(lhs, op), rhs), func(pr parser.Pair[parser.Pair[float64, rune], float64]) float64 {
		v1, v2 := pr.First.First, pr.Second
		switch pr.First.Second {
		case '+':
			return v1 + v2
		case '-':
			return v1 - v2
		case '*':
			return v1 * v2
		default:
			return v1 / v2
		}
	})
}

func factor() calc {
	return parser.Or(parser.Mid(Trim(Char('(')), parser.Lazy(expr), Trim(Char(')'))), decimal())
}

func term() calc {
	return parser.Or(binary(factor(), "*/", parser.Lazy(term)), parser.Lazy(factor))
}

func expr() calc {
	return parser.Or(binary(term(), "+-", parser.Lazy(expr)), parser.Lazy(term))
}

func TestCalculator(t *testing.T) {
	// Computed at run time so the expected values round like the parser's.
	a, b, c, d := 1.9, 2.6, 0.8, 1.7
	tests := []struct {
		input string
		want  float64
	}{
		{"2+4*(6+0)/1", 2 + 4*(6+0)/1},
		{" 2 + 4 * ( 6 + 0 ) / 1 ", 2 + 4*(6+0)/1},
		{"1.9/(2.6+0.8)+1.7", a/(b+c) + d},
		{"1.9 / ( 2.6 + 0.8 ) + 1.7 ", a/(b+c) + d},
		{"42", 42},
		{"8-3", 5},
	}
	for _, tt := range tests {
		res := Execute(expr(), tt.input)
		if !res.Ok {
			t.Errorf("expr() on %q failed: %v", tt.input, res.Messages())
			continue
		}
		if res.Value != tt.want {
			t.Errorf("expr() on %q = %v, want %v", tt.input, res.Value, tt.want)
		}
		if rest := res.Stream.String(); rest != "" {
			t.Errorf("expr() on %q left %q unconsumed", tt.input, rest)
		}
		if !res.Log.IsEmpty() {
			t.Errorf("expr() on %q logged %v, want nothing", tt.input, res.Messages())
		}
	}
}

func TestCalculatorStopsAtGarbage(t *testing.T) {
	res := Execute(expr(), "1+2)")
	if !res.Ok || res.Value != 3 {
		t.Fatalf("expr() on %q = %v, %v, want 3", "1+2)", res.Value, res.Ok)
	}
	if rest := res.Stream.String(); rest != ")" {
		t.Errorf("rest = %q, want %q", rest, ")")
	}

	res = Execute(parser.Left(expr(), parser.End[stream.CharStream]()), "1+2)")
	if res.Ok {
		t.Errorf("expr() then End on %q succeeded", "1+2)")
	}
	if !res.Log.HasErrors() {
		t.Errorf("expr() then End on %q logged no error", "1+2)")
	}
}
