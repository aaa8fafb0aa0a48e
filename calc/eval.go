// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package calc

import (
	"strings"

	"github.com/ezrec/pcalc/word"
)

// Order selects how the binary operators of an expression associate.
type Order int

const (
	ORDER_FOLD       = Order(0) // fold
	ORDER_PRECEDENCE = Order(1) // precedence
	ORDER_STARLARK   = Order(2) // starlark
)

var orderName = [...]string{
	ORDER_FOLD:       "fold",
	ORDER_PRECEDENCE: "precedence",
	ORDER_STARLARK:   "starlark",
}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderName) {
		return "?"
	}
	return orderName[o]
}

// ParseOrder returns the evaluation order with the given name.
func ParseOrder(name string) (order Order, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for n, known := range orderName {
		if name == known {
			order = Order(n)
			return
		}
	}

	err = ErrOrderInvalid
	return
}

// Evaluator evaluates one self-contained expression line. The register
// supplies the width of the result; its value is not an operand.
type Evaluator interface {
	Order() Order
	Evaluate(line string, register word.Word) (value word.Word, err error)
}

// New creates an evaluator for an evaluation order.
func New(order Order) (eval Evaluator, err error) {
	switch order {
	case ORDER_FOLD:
		eval = &Fold{}
	case ORDER_PRECEDENCE:
		eval = &Precedence{}
	case ORDER_STARLARK:
		eval = &Starlark{}
	default:
		err = ErrOrderInvalid
	}

	return
}

// quitCommands end the calculator session instead of being evaluated.
var quitCommands = []string{"", "quit", "q", "exit"}

// IsQuit returns true if the line asks to terminate the session: the empty
// line, "quit", or its aliases "q" and "exit". Matching is case-sensitive.
func IsQuit(line string) bool {
	line = strings.TrimSpace(line)
	for _, cmd := range quitCommands {
		if line == cmd {
			return true
		}
	}
	return false
}

// Fold evaluates strictly left to right; every binary operator has the
// same precedence. Prefix operators bind to the operand that follows.
type Fold struct{}

func (*Fold) Order() Order {
	return ORDER_FOLD
}

func (*Fold) Evaluate(line string, register word.Word) (value word.Word, err error) {
	p, err := newParser(line, register.Width)
	if err != nil {
		return
	}

	return p.run(p.fold)
}

// Precedence evaluates with the classic pcalc operator precedence,
// lowest first: '| $', '^', '&', '<< >> rol ror', '+ -', '* / %'.
type Precedence struct{}

func (*Precedence) Order() Order {
	return ORDER_PRECEDENCE
}

func (*Precedence) Evaluate(line string, register word.Word) (value word.Word, err error) {
	p, err := newParser(line, register.Width)
	if err != nil {
		return
	}

	return p.run(p.expr)
}
