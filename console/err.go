package console

import (
	"github.com/ezrec/pcalc/translate"
)

var f = translate.From

var (
	ErrLineTooLong = translate.Error("line too long")
)

// ErrLong reports an input line longer than the batch limit; the line was
// skipped.
type ErrLong struct {
	Length int // Bytes in the skipped line, with its terminator.
	Limit  int
}

func (err ErrLong) Error() string {
	return f("%d byte line exceeds %d bytes: %v", err.Length, err.Limit, ErrLineTooLong)
}

func (err ErrLong) Unwrap() error {
	return ErrLineTooLong
}
