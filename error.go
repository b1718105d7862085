package benchplot

import (
	"fmt"

	"golang.org/x/xerrors"
)

// Error wraps an error that happened while loading or rendering benchmark
// data. It remembers where it was created so that '%+v' prints the call
// site before the wrapped chain.
type Error struct {
	err   error
	msg   string
	frame xerrors.Frame
}

// ErrorOrNil returns nil if err is nil, else err wrapped with msg and the
// frame of the caller.
func ErrorOrNil(err error, msg string) error {
	return ErrorOrNilSkip(err, msg, 1)
}

// ErrorOrNilSkip is ErrorOrNil, recording the frame of the skip-nth
// caller instead.
func ErrorOrNilSkip(err error, msg string, skip int) error {
	if err == nil {
		return nil
	}
	return &Error{
		err:   err,
		msg:   msg,
		frame: xerrors.Caller(skip + 1),
	}
}

// WrapError adds the frame of the caller to err without changing its
// message.
func WrapError(err error) error {
	return ErrorOrNilSkip(err, "", 1)
}

func (e *Error) Error() string {
	if e.msg == "" {
		return fmt.Sprint(e.err)
	}
	return e.msg + ": " + fmt.Sprint(e.err)
}

// Unwrap returns the next error in the chain.
func (e *Error) Unwrap() error {
	return e.err
}

// Format implements fmt.Formatter through xerrors.
func (e *Error) Format(f fmt.State, c rune) {
	xerrors.FormatError(e, f, c)
}

// FormatError prints the message, and with '%+v' the frame and the
// detailed form of the wrapped error.
func (e *Error) FormatError(p xerrors.Printer) error {
	if e.msg == "" {
		p.Printf("%v", e.err)
	} else {
		p.Printf("%s: %v", e.msg, e.err)
	}
	if p.Detail() {
		e.frame.Format(p)
		p.Printf("%+v", e.err)
	}
	return nil
}
