package chart

import (
	"fmt"

	"golang.org/x/xerrors"
)

// ValidationError is returned when the series, the categories or the
// configuration given to Render cannot be drawn. Nothing is drawn when
// it is returned.
type ValidationError struct {
	// Field names the offending input, e.g. "series[1].values".
	Field  string
	Reason string
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return "invalid " + e.Field + ": " + e.Reason
}

// RenderError is returned when the plotting backend fails: an unknown
// color, an unsupported output format or an encoder failure.
type RenderError struct {
	Op    string
	Err   error
	frame xerrors.Frame
}

func newRenderError(op string, err error) *RenderError {
	return &RenderError{Op: op, Err: err, frame: xerrors.Caller(1)}
}

func (e *RenderError) Error() string {
	return "render " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the backend error.
func (e *RenderError) Unwrap() error {
	return e.Err
}

// Format implements fmt.Formatter through xerrors.
func (e *RenderError) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// FormatError prints the frame where the error was raised with '%+v'.
func (e *RenderError) FormatError(p xerrors.Printer) error {
	p.Printf("render %s: %v", e.Op, e.Err)
	if p.Detail() {
		e.frame.Format(p)
	}
	return nil
}
