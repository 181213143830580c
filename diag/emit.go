package diag

// Sink receives forwarded diagnostics. commonlog.Logger satisfies it.
type Sink interface {
	Info(message string, keysAndValues ...any)
	Warning(message string, keysAndValues ...any)
	Error(message string, keysAndValues ...any)
}

// Emit forwards every message to sink in insertion order, mapping severities
// onto log levels.
func (l *Logger) Emit(sink Sink) {
	for _, m := range l.All() {
		kv := []any{"row", m.Pos.Row, "col", m.Pos.Col}
		switch m.Severity {
		case Info:
			sink.Info(m.Text, kv...)
		case Warn:
			sink.Warning(m.Text, kv...)
		default:
			sink.Error(m.Text, kv...)
		}
	}
}
