// Package diag provides diagnostic (error) types for the blink toolchain.
package diag

import (
	"blink-lang/internal/span"
	"fmt"
)

// Severity indicates the severity of a diagnostic. blink has no warnings —
// every diagnostic halts the pipeline — but the type is kept so the shape
// matches the rest of the toolchain's diagnostics.
type Severity int

const (
	Error Severity = iota
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic represents a single pipeline error: where it happened, what
// stable code identifies it, and a human-readable message.
type Diagnostic struct {
	Code     string    `json:"code"`     // stable error code, e.g. "E1003"
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	Span     span.Span `json:"span"`
}

// String returns a human-readable representation of the diagnostic.
func (d Diagnostic) String() string {
	loc := fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)
	return fmt.Sprintf("[%s] %s at %s: %s", d.Code, d.Severity, loc, d.Message)
}

// Errorf creates an error diagnostic at the given span.
func Errorf(code string, s span.Span, format string, args ...interface{}) Diagnostic {
	return Diagnostic{
		Code:     code,
		Severity: Error,
		Message:  fmt.Sprintf(format, args...),
		Span:     s,
	}
}
