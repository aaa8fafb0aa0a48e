package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/pcalc/word"
)

var register32 = word.Zero(word.WIDTH_32)

func evaluators(t *testing.T) (evals []Evaluator) {
	for _, order := range []Order{ORDER_FOLD, ORDER_PRECEDENCE, ORDER_STARLARK} {
		eval, err := New(order)
		assert.NoError(t, err)
		assert.Equal(t, order, eval.Order())
		evals = append(evals, eval)
	}
	return
}

func TestOrder(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"fold", "precedence", "starlark"} {
		order, err := ParseOrder(name)
		assert.NoError(err)
		assert.Equal(name, order.String())
	}

	order, err := ParseOrder(" Precedence ")
	assert.NoError(err)
	assert.Equal(ORDER_PRECEDENCE, order)

	_, err = ParseOrder("rpn")
	assert.True(errors.Is(err, ErrOrderInvalid))

	_, err = New(Order(7))
	assert.True(errors.Is(err, ErrOrderInvalid))
	assert.Equal("?", Order(7).String())
}

func TestIsQuit(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsQuit("quit"))
	assert.True(IsQuit(" quit\n"))
	assert.True(IsQuit(""))
	assert.True(IsQuit("q"))
	assert.True(IsQuit("exit"))
	assert.False(IsQuit("QUIT"))
	assert.False(IsQuit("quit 1"))
	assert.False(IsQuit("1"))
}

// Expressions whose value does not depend on the evaluation order.
func TestEvaluate_Common(t *testing.T) {
	table := [](struct {
		line     string
		expected uint64
	}){
		{"0x1+0b1+1", 3},
		{"1", 1},
		{"0xAB", 0xab},
		{"0xab", 0xab},
		{"  7  -  2 ", 5},
		{"0 - 1", 0xffff_ffff},
		{"0xffffffff + 2", 1},
		{"~0", 0xffff_ffff},
		{"~0x0f & 0xff", 0xf0},
		{"-1", 0xffff_ffff},
		{"+5", 5},
		{"(1+2)*3", 9},
		{"2*(3+4)", 14},
		{"((6))", 6},
		{"7 / 2", 3},
		{"7 % 4", 3},
		{"1 << 31", 0x8000_0000},
		{"1 << 32", 0},
		{"0x80000000 >> 31", 1},
		{"0b1100 ^ 0b1010", 0b0110},
		{"0b1100 | 0b1010", 0b1110},
		{"1--1", 2},
	}

	for _, eval := range evaluators(t) {
		for _, entry := range table {
			value, err := eval.Evaluate(entry.line, register32)
			assert.NoError(t, err, "%v: %q", eval.Order(), entry.line)
			assert.Equal(t, word.New(entry.expected, word.WIDTH_32), value, "%v: %q", eval.Order(), entry.line)
		}
	}
}

func TestEvaluate_Order(t *testing.T) {
	table := [](struct {
		line       string
		fold       uint64
		precedence uint64
	}){
		{"1+2*3", 9, 7},
		{"2*3+1", 7, 7},
		{"1|2&0", 0, 1},
		{"1+1<<2", 8, 8},
		{"1<<1+1", 3, 4},
		{"10-2-3", 5, 5},
		{"0xff ^ 0x0f & 0x3c", 0x30, 0xf3},
	}

	fold := &Fold{}
	prec := &Precedence{}
	star := &Starlark{}

	for _, entry := range table {
		value, err := fold.Evaluate(entry.line, register32)
		assert.NoError(t, err, entry.line)
		assert.Equal(t, entry.fold, value.Bits, "fold %q", entry.line)

		value, err = prec.Evaluate(entry.line, register32)
		assert.NoError(t, err, entry.line)
		assert.Equal(t, entry.precedence, value.Bits, "precedence %q", entry.line)

		value, err = star.Evaluate(entry.line, register32)
		assert.NoError(t, err, entry.line)
		assert.Equal(t, entry.precedence, value.Bits, "starlark %q", entry.line)
	}
}

func TestEvaluate_WordOperators(t *testing.T) {
	assert := assert.New(t)

	register8 := word.Zero(word.WIDTH_8)

	for _, eval := range []Evaluator{&Fold{}, &Precedence{}} {
		value, err := eval.Evaluate("0x81 rol 1", register8)
		assert.NoError(err)
		assert.Equal(uint64(0x03), value.Bits)

		value, err = eval.Evaluate("0x81 ror 1", register8)
		assert.NoError(err)
		assert.Equal(uint64(0xc0), value.Bits)

		value, err = eval.Evaluate("0x0f $ 0xf0", register8)
		assert.NoError(err)
		assert.Equal(uint64(0), value.Bits)

		value, err = eval.Evaluate("@0x1234", word.Zero(word.WIDTH_16))
		assert.NoError(err)
		assert.Equal(uint64(0x3412), value.Bits)
	}

	_, err := (&Starlark{}).Evaluate("1 $ 2", register8)
	assert.True(errors.Is(err, ErrUnexpectedToken))
}

func TestEvaluate_Width(t *testing.T) {
	assert := assert.New(t)

	for _, eval := range evaluators(t) {
		value, err := eval.Evaluate("0xff + 1", word.Zero(word.WIDTH_8))
		assert.NoError(err)
		assert.Equal(word.Zero(word.WIDTH_8), value)

		value, err = eval.Evaluate("0xffff + 1", word.Zero(word.WIDTH_16))
		assert.NoError(err)
		assert.Equal(word.Zero(word.WIDTH_16), value)

		value, err = eval.Evaluate("0xffff + 1", word.Zero(word.WIDTH_64))
		assert.NoError(err)
		assert.Equal(word.New(0x10000, word.WIDTH_64), value)

		// The register value is not an operand.
		value, err = eval.Evaluate("2", word.New(40, word.WIDTH_64))
		assert.NoError(err)
		assert.Equal(word.New(2, word.WIDTH_64), value)

		_, err = eval.Evaluate("1", word.Word{})
		assert.True(errors.Is(err, word.ErrWidthInvalid))
	}
}

func TestEvaluate_DivisionByZero(t *testing.T) {
	assert := assert.New(t)

	for _, eval := range evaluators(t) {
		for _, line := range []string{"1/0", "1 % 0", "5 / (1 - 1)", "1/0x100"} {
			value, err := eval.Evaluate(line, word.Zero(word.WIDTH_8))
			assert.True(errors.Is(err, ErrDivisionByZero), "%v %q: %v", eval.Order(), line, err)
			assert.Equal(word.Word{}, value)

			var eerr ErrEval
			assert.True(errors.As(err, &eerr), line)
		}
	}
}

func TestEvaluate_Syntax(t *testing.T) {
	table := [](struct {
		line     string
		expected error
	}){
		{"", ErrEmpty},
		{"1+", ErrMissingOperand},
		{"1 2", ErrUnexpectedToken},
		{"*2", ErrUnexpectedToken},
		{"1 + * 2", ErrUnexpectedToken},
		{"(1+2", ErrUnbalanced},
		{"1+2)", ErrUnbalanced},
		{"()", ErrUnexpectedToken},
		{"1 # 2", ErrUnknownSymbol},
		{"~", ErrMissingOperand},
	}

	for _, eval := range []Evaluator{&Fold{}, &Precedence{}} {
		for _, entry := range table {
			_, err := eval.Evaluate(entry.line, register32)
			assert.True(t, errors.Is(err, entry.expected), "%v %q: %v", eval.Order(), entry.line, err)

			var serr ErrSyntax
			assert.True(t, errors.As(err, &serr), entry.line)
		}
	}
}

func TestEvaluate_Literal(t *testing.T) {
	assert := assert.New(t)

	for _, eval := range []Evaluator{&Fold{}, &Precedence{}} {
		_, err := eval.Evaluate("0b102 + 1", register32)
		assert.True(errors.Is(err, word.ErrLiteralDigit), "%v: %v", eval.Order(), err)

		var perr word.ErrParse
		assert.True(errors.As(err, &perr))
	}

	for _, eval := range []Evaluator{&Fold{}, &Precedence{}} {
		_, err := eval.Evaluate("0o17", register32)
		assert.True(errors.Is(err, word.ErrLiteralDigit), "%v: %v", eval.Order(), err)
	}

	for _, eval := range []Evaluator{&Fold{}, &Precedence{}} {
		_, err := eval.Evaluate("0x + 1", register32)
		assert.True(errors.Is(err, word.ErrLiteralEmpty), "%v: %v", eval.Order(), err)
	}

	// Literals are truncated to the register width by every order.
	for _, eval := range evaluators(t) {
		value, err := eval.Evaluate("0x1ff", word.Zero(word.WIDTH_8))
		assert.NoError(err)
		assert.Equal(uint64(0xff), value.Bits)
	}
}

func TestStarlark(t *testing.T) {
	assert := assert.New(t)

	star := &Starlark{}

	value, err := star.Evaluate("7 // 2", register32)
	assert.NoError(err)
	assert.Equal(uint64(3), value.Bits)

	literals := [](struct {
		line     string
		expected uint64
	}){
		{"0o17", 0o17},
		{"0O17 + 1", 0o20},
		{"0o777 & 0xff", 0xff},
		{"0X1f | 0B100000", 0x3f},
	}

	for _, entry := range literals {
		value, err = star.Evaluate(entry.line, register32)
		assert.NoError(err, entry.line)
		assert.Equal(entry.expected, value.Bits, entry.line)
	}

	for _, line := range []string{"", "1 +", "(1"} {
		_, err = star.Evaluate(line, register32)
		var serr ErrSyntax
		assert.True(errors.As(err, &serr), line)
	}

	for _, line := range []string{"1.5", "'a'", "x", "1 < 2", "[1]"} {
		_, err = star.Evaluate(line, register32)
		assert.True(errors.Is(err, ErrUnsupported), "%q: %v", line, err)
	}
}
