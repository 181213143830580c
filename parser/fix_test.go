package parser_test

import (
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dhamidi/parsic/chars"
	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

type node = parser.Parser[cs, string]

var digitText = parser.Map(digit, func(r rune) string { return string(r) })

func sum(pr parser.Pair[parser.Pair[string, rune], string]) string {
	return "(" + pr.First.First + "+" + pr.Second + ")"
}

func TestFixLeftRecursiveCommitsToFirstAlternative(t *testing.T) {
	// expr := digit | expr '+' digit
	expr := parser.Fix(func(self node) node {
		return parser.Or(digitText, parser.Map(parser.And(parser.And(self, chars.Char('+')), digitText), sum))
	})

	got := run(expr, "1+2+3")
	want := outcome[string]{Value: "1", Ok: true, Rest: "+2+3", Pos: at(0, 1)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expr on %q mismatch (-want +got):\n%s", "1+2+3", diff)
	}
}

func TestFixRightRecursive(t *testing.T) {
	// expr := digit '+' expr | digit
	expr := parser.Fix(func(self node) node {
		return parser.Or(parser.Map(parser.And(parser.And(digitText, chars.Char('+')), self), sum), digitText)
	})

	got := run(expr, "1+2+3")
	want := outcome[string]{Value: "(1+(2+3))", Ok: true, Pos: at(0, 5)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("expr on %q mismatch (-want +got):\n%s", "1+2+3", diff)
	}
}

func TestFixBuildsOnFirstParse(t *testing.T) {
	builds := 0
	p := parser.Fix(func(self parser.Parser[cs, []rune]) parser.Parser[cs, []rune] {
		builds++
		return parser.Or(
			parser.Map(parser.And(digit, self), func(pr parser.Pair[rune, []rune]) []rune {
				return append([]rune{pr.First}, pr.Second...)
			}),
			parser.Map(digit, func(r rune) []rune { return []rune{r} }),
		)
	})
	if builds != 0 {
		t.Fatalf("Fix called its builder at definition time")
	}
	for _, in := range []string{"123", "45"} {
		if got := run(p, in); !got.Ok || string(got.Value) != in {
			t.Errorf("digits on %q = %+v", in, got)
		}
	}
	if builds != 1 {
		t.Errorf("builder ran %d times, want 1", builds)
	}
}

func TestLazyBuildsOnEveryParse(t *testing.T) {
	builds := 0
	p := parser.Lazy(func() parser.Parser[cs, rune] {
		builds++
		return digit
	})
	if builds != 0 {
		t.Fatalf("Lazy called its builder at definition time")
	}
	run(p, "1")
	run(p, "2")
	if builds != 2 {
		t.Errorf("builder ran %d times, want 2", builds)
	}
	equivalent(t, "Lazy(p) = p", p, digit, lawInputs...)
}

// Nested lists of digits, e.g. "[1,[2,3],[[4]]]". value and list refer to
// each other.
func depthOf(s string) int {
	var value, list parser.Parser[cs, int]
	value = parser.Or(
		parser.Map(digit, func(rune) int { return 0 }),
		parser.Lazy(func() parser.Parser[cs, int] { return list }),
	)
	list = parser.Map(
		parser.Mid(chars.Char('['), parser.SepBy(value, chars.Char(',')), chars.Char(']')),
		func(ds []int) int { return 1 + maxOf(ds) },
	)
	res := chars.Execute(parser.Left(value, parser.End[cs]()), s)
	if !res.Ok {
		return -1
	}
	return res.Value
}

func maxOf(ds []int) int {
	m := 0
	for _, d := range ds {
		m = max(m, d)
	}
	return m
}

func TestMutualRecursion(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"7", 0},
		{"[]", 1},
		{"[1,[2,3],[[4]]]", 3},
		{"[1,[2,3]", -1},
	}
	for _, tt := range tests {
		if got := depthOf(tt.input); got != tt.want {
			t.Errorf("depthOf(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestFixConcurrentUse(t *testing.T) {
	sumDigits := parser.Fix(func(self parser.Parser[cs, int]) parser.Parser[cs, int] {
		return parser.Or(
			parser.Map(parser.And(parser.Map(digit, digitValue), self), func(pr parser.Pair[int, int]) int {
				return pr.First + pr.Second
			}),
			parser.Map(digit, digitValue),
		)
	})

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in := strconv.Itoa(i) + "23"
			res := parser.Exec(sumDigits, stream.NewCharStream(in))
			if want := i + 5; !res.Ok || res.Value != want {
				t.Errorf("sumDigits on %q = %d, %t, want %d", in, res.Value, res.Ok, want)
			}
		}()
	}
	wg.Wait()
}

func ExampleFix() {
	// list := '(' list* ')'
	list := parser.Fix(func(self parser.Parser[stream.CharStream, int]) parser.Parser[stream.CharStream, int] {
		return parser.Map(parser.Mid(chars.Char('('), parser.Many(self), chars.Char(')')), func(children []int) int {
			n := 1
			for _, c := range children {
				n += c
			}
			return n
		})
	})
	res := chars.Execute(list, "(()(()))")
	fmt.Println(res.Value, res.Ok)
	// Output: 4 true
}
