// Package stream provides the positioned, consumable input views that
// parsers run over.
//
// A stream is a small value. Copying it takes a snapshot, so a parser that
// wants to backtrack simply keeps the value it was handed and returns it
// unchanged on failure. The only mutator is Next, which advances the copy it
// is called on.
package stream

import "fmt"

// Position is a row/column cursor. Both start at zero.
type Position struct {
	Row int
	Col int
}

// Advance returns the position after consuming one element. A newline moves
// to the first column of the next row.
func (p Position) Advance(newline bool) Position {
	if newline {
		return Position{Row: p.Row + 1, Col: 0}
	}
	return Position{Row: p.Row, Col: p.Col + 1}
}

// Before reports whether p comes strictly before other.
func (p Position) Before(other Position) bool {
	if p.Row != other.Row {
		return p.Row < other.Row
	}
	return p.Col < other.Col
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Row, p.Col)
}

// Stream is the capability every parser input exposes.
//
// String returns the remaining, unconsumed input. Index is the number of
// elements consumed so far and Len the number still remaining.
type Stream interface {
	String() string
	Position() Position
	Index() int
	Len() int
	IsEmpty() bool
}

// Cursor is a Stream whose elements can be consumed one at a time.
// Next reports false exactly when the stream is empty.
type Cursor[E any] interface {
	Stream
	Next() (E, bool)
}
