package chars

import (
	"fmt"
	"regexp"

	"github.com/pkg/errors"

	"github.com/dhamidi/parsic/diag"
	"github.com/dhamidi/parsic/parser"
	"github.com/dhamidi/parsic/stream"
)

// Regex consumes the text pattern matches at the current position. The
// match is atomic: there is no backtracking into it.
func Regex(pattern string) (parser.Parser[stream.CharStream, string], error) {
	if _, err := regexp.Compile(pattern); err != nil {
		return parser.Parser[stream.CharStream, string]{}, errors.Wrapf(err, "compile pattern %q", pattern)
	}
	re, err := regexp.Compile(`\A(?:` + pattern + `)`)
	if err != nil {
		return parser.Parser[stream.CharStream, string]{}, errors.Wrapf(err, "anchor pattern %q", pattern)
	}
	return FromRegexp(re, pattern), nil
}

// MustRegex is like Regex but panics if pattern does not compile.
func MustRegex(pattern string) parser.Parser[stream.CharStream, string] {
	p, err := Regex(pattern)
	if err != nil {
		panic(err)
	}
	return p
}

// FromRegexp wraps an already compiled, anchored expression. name is used
// in the diagnostic logged on mismatch.
func FromRegexp(re *regexp.Regexp, name string) parser.Parser[stream.CharStream, string] {
	msg := fmt.Sprintf("expecting \"%s\".", name)
	return parser.New(func(s stream.CharStream, log *diag.Logger) (stream.CharStream, string, bool) {
		loc := re.FindStringIndex(s.String())
		if loc == nil || loc[0] != 0 {
			log.Add(diag.NewError(msg, s.Position()))
			return s, "", false
		}
		next := s
		text := next.Skip(loc[1])
		return next, text, true
	})
}
