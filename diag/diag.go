// Package diag holds the diagnostics a parse produces: an ordered,
// append-only log of severity-tagged, positioned messages.
//
// Diagnostics never drive control flow. A parser may log an error and still
// succeed, or fail without logging anything.
package diag

import (
	"fmt"

	"github.com/dhamidi/parsic/stream"
)

type Severity int

const (
	Info Severity = iota
	Warn
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warn:
		return "warning"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Body is the payload shared by every message kind.
type Body struct {
	Text string
	Pos  stream.Position
}

type Msg struct {
	Severity Severity
	Body
}

func NewInfo(text string, pos stream.Position) Msg {
	return Msg{Severity: Info, Body: Body{Text: text, Pos: pos}}
}

func NewWarn(text string, pos stream.Position) Msg {
	return Msg{Severity: Warn, Body: Body{Text: text, Pos: pos}}
}

func NewError(text string, pos stream.Position) Msg {
	return Msg{Severity: Error, Body: Body{Text: text, Pos: pos}}
}

func (m Msg) String() string {
	return fmt.Sprintf("%s: %s: %s", m.Pos, m.Severity, m.Text)
}
