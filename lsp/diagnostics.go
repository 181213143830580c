// Package lsp reports parse diagnostics to editors over the Language Server
// Protocol.
package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/parsic/diag"
)

// Diagnostics converts the messages of log to LSP diagnostics, in order.
// Each diagnostic is a zero-width range at the message position. Columns
// are rune offsets.
func Diagnostics(log *diag.Logger, source string) []protocol.Diagnostic {
	out := make([]protocol.Diagnostic, 0, log.Len())
	for _, m := range log.All() {
		pos := protocol.Position{
			Line:      protocol.UInteger(m.Pos.Row),
			Character: protocol.UInteger(m.Pos.Col),
		}
		d := protocol.Diagnostic{
			Range:    protocol.Range{Start: pos, End: pos},
			Severity: severityPtr(toProtocolSeverity(m.Severity)),
			Message:  m.Text,
		}
		if source != "" {
			d.Source = stringPtr(source)
		}
		out = append(out, d)
	}
	return out
}

// Publish sends the diagnostics of log for the document uri to the client.
// An empty log clears the diagnostics of the document.
func Publish(ctx *glsp.Context, uri protocol.DocumentUri, log *diag.Logger, source string) {
	publish(ctx, uri, nil, log, source)
}

func publish(ctx *glsp.Context, uri protocol.DocumentUri, version *protocol.UInteger, log *diag.Logger, source string) {
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     version,
		Diagnostics: Diagnostics(log, source),
	})
}

func toProtocolSeverity(s diag.Severity) protocol.DiagnosticSeverity {
	switch s {
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	case diag.Warn:
		return protocol.DiagnosticSeverityWarning
	default:
		return protocol.DiagnosticSeverityError
	}
}

func severityPtr(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func stringPtr(s string) *string {
	return &s
}
