package word

import (
	"github.com/ezrec/pcalc/translate"
)

var f = translate.From

var (
	// Literal errors
	ErrLiteralEmpty = translate.Error("literal empty")
	ErrLiteralDigit = translate.Error("invalid digit")

	// ALU errors
	ErrDivisionByZero = translate.Error("division by zero")
	ErrOpInvalid      = translate.Error("operator invalid")
	ErrOpArity        = translate.Error("operator arity")

	// Register errors
	ErrWidthInvalid = translate.Error("width must be 8, 16, 32 or 64")
)

// ErrParse reports a literal that matches no number grammar.
type ErrParse struct {
	Literal string
	Err     error
}

func (err ErrParse) Error() string {
	return f("'%v' is not a number: %v", err.Literal, err.Err)
}

func (err ErrParse) Unwrap() error {
	return err.Err
}

// ErrWidth reports a width that is not one of the supported register sizes.
type ErrWidth string

func (ew ErrWidth) Error() string {
	return f("width '%v' invalid", string(ew))
}

func (ew ErrWidth) Unwrap() error {
	return ErrWidthInvalid
}
