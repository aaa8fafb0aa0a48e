package calc

import (
	"github.com/ezrec/pcalc/translate"
	"github.com/ezrec/pcalc/word"
)

var f = translate.From

var (
	// Syntax errors
	ErrEmpty           = translate.Error("expression empty")
	ErrUnknownSymbol   = translate.Error("unknown symbol")
	ErrUnexpectedToken = translate.Error("unexpected token")
	ErrMissingOperand  = translate.Error("operand missing")
	ErrUnbalanced      = translate.Error("unbalanced parenthesis")
	ErrUnsupported     = translate.Error("not supported in this evaluation order")

	// Evaluation errors
	ErrDivisionByZero = word.ErrDivisionByZero

	// Configuration errors
	ErrOrderInvalid = translate.Error("evaluation order invalid")
)

// ErrSyntax reports a malformed expression at a byte offset of the line.
type ErrSyntax struct {
	Pos  int
	Text string
	Err  error
}

func (err ErrSyntax) Error() string {
	if len(err.Text) == 0 {
		return f("syntax: column %d %v", err.Pos+1, err.Err)
	}
	return f("syntax: column %d '%v' %v", err.Pos+1, err.Text, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEval reports an operation that failed while evaluating an expression.
type ErrEval struct {
	Pos int
	Op  word.Op
	Err error
}

func (err ErrEval) Error() string {
	return f("column %d '%v' %v", err.Pos+1, err.Op, err.Err)
}

func (err ErrEval) Unwrap() error {
	return err.Err
}
