package diag

import (
	"iter"
	"slices"
)

// Logger collects messages in insertion order. Entries persist until Clear,
// With or Truncate drops them.
//
// A Logger belongs to one top-level parse and is not safe for concurrent
// use.
type Logger struct {
	msgs []Msg
}

// NewLogger returns a logger seeded with msgs.
func NewLogger(msgs ...Msg) *Logger {
	return &Logger{msgs: slices.Clone(msgs)}
}

// Add appends m. The logger must not be nil.
func (l *Logger) Add(m Msg) {
	l.msgs = append(l.msgs, m)
}

func (l *Logger) Clear() {
	clear(l.msgs)
	l.msgs = l.msgs[:0]
}

// With resets the logger so that it holds exactly m.
func (l *Logger) With(m Msg) {
	l.Clear()
	l.Add(m)
}

func (l *Logger) Len() int {
	if l == nil {
		return 0
	}
	return len(l.msgs)
}

func (l *Logger) IsEmpty() bool {
	return l.Len() == 0
}

// Truncate drops every message added after the logger held n messages.
// Backtracking combinators use it to undo the diagnostics of an abandoned
// attempt.
func (l *Logger) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < l.Len() {
		clear(l.msgs[n:])
		l.msgs = l.msgs[:n]
	}
}

// Messages returns a copy of the logged messages, or nil if there are none.
func (l *Logger) Messages() []Msg {
	if l.Len() == 0 {
		return nil
	}
	return slices.Clone(l.msgs)
}

// All iterates over the messages in insertion order.
func (l *Logger) All() iter.Seq2[int, Msg] {
	if l == nil {
		return slices.All([]Msg(nil))
	}
	return slices.All(l.msgs)
}

// Last returns the most recent message.
func (l *Logger) Last() (Msg, bool) {
	if l.Len() == 0 {
		return Msg{}, false
	}
	return l.msgs[len(l.msgs)-1], true
}

// Count returns the number of messages with the given severity.
func (l *Logger) Count(s Severity) int {
	n := 0
	for _, m := range l.All() {
		if m.Severity == s {
			n++
		}
	}
	return n
}

func (l *Logger) HasErrors() bool {
	return l.Count(Error) > 0
}

func (l *Logger) Equal(other *Logger) bool {
	if l == nil || other == nil {
		return l.Len() == other.Len()
	}
	return slices.Equal(l.msgs, other.msgs)
}
