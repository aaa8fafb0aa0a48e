package repl

import (
	"github.com/ezrec/pcalc/translate"
)

var f = translate.From

var (
	ErrTerminated = translate.Error("session terminated")
	ErrArgument   = translate.Error("command argument invalid")
)

// ErrLine indicates the input line that failed.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	if len(err.Line) == 0 {
		return f("line %d: %v", err.LineNo, err.Err)
	}
	return f("line %d '%v': %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
