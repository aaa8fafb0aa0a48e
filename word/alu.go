package word

import (
	"math/bits"
)

// Op is an ALU operation.
type Op int

const (
	OP_ADD  = Op(0)  // +
	OP_SUB  = Op(1)  // -
	OP_MUL  = Op(2)  // *
	OP_DIV  = Op(3)  // /
	OP_MOD  = Op(4)  // %
	OP_AND  = Op(5)  // &
	OP_OR   = Op(6)  // |
	OP_NOR  = Op(7)  // $
	OP_XOR  = Op(8)  // ^
	OP_SHL  = Op(9)  // <<
	OP_SHR  = Op(10) // >>
	OP_ROL  = Op(11) // rol
	OP_ROR  = Op(12) // ror
	OP_NOT  = Op(13) // ~
	OP_NEG  = Op(14) // -
	OP_SWAP = Op(15) // @
	OP_PLUS = Op(16) // +
)

var opSymbol = [...]string{
	OP_ADD:  "+",
	OP_SUB:  "-",
	OP_MUL:  "*",
	OP_DIV:  "/",
	OP_MOD:  "%",
	OP_AND:  "&",
	OP_OR:   "|",
	OP_NOR:  "$",
	OP_XOR:  "^",
	OP_SHL:  "<<",
	OP_SHR:  ">>",
	OP_ROL:  "rol",
	OP_ROR:  "ror",
	OP_NOT:  "~",
	OP_NEG:  "-",
	OP_SWAP: "@",
	OP_PLUS: "+",
}

var opName = [...]string{
	OP_ADD:  "add",
	OP_SUB:  "sub",
	OP_MUL:  "mul",
	OP_DIV:  "div",
	OP_MOD:  "mod",
	OP_AND:  "and",
	OP_OR:   "or",
	OP_NOR:  "nor",
	OP_XOR:  "xor",
	OP_SHL:  "shl",
	OP_SHR:  "shr",
	OP_ROL:  "rol",
	OP_ROR:  "ror",
	OP_NOT:  "not",
	OP_NEG:  "2's",
	OP_SWAP: "swap",
	OP_PLUS: "plus",
}

// String returns the symbol of the operation, as typed in an expression.
func (op Op) String() string {
	if op < 0 || int(op) >= len(opSymbol) {
		return "?"
	}
	return opSymbol[op]
}

// Name returns the mnemonic of the operation.
func (op Op) Name() string {
	if op < 0 || int(op) >= len(opName) {
		return "?"
	}
	return opName[op]
}

// Unary returns true if the operation takes a single operand.
func (op Op) Unary() bool {
	return op >= OP_NOT && op <= OP_PLUS
}

// Binary returns true if the operation takes two operands.
func (op Op) Binary() bool {
	return op >= OP_ADD && op <= OP_ROR
}

// BinaryOps maps expression symbols to binary operations.
var BinaryOps = map[string]Op{
	"+":   OP_ADD,
	"-":   OP_SUB,
	"*":   OP_MUL,
	"/":   OP_DIV,
	"%":   OP_MOD,
	"&":   OP_AND,
	"|":   OP_OR,
	"$":   OP_NOR,
	"^":   OP_XOR,
	"<<":  OP_SHL,
	">>":  OP_SHR,
	"rol": OP_ROL,
	"ror": OP_ROR,
}

// UnaryOps maps expression symbols to unary (prefix) operations.
var UnaryOps = map[string]Op{
	"~": OP_NOT,
	"-": OP_NEG,
	"@": OP_SWAP,
	"+": OP_PLUS,
}

// Apply performs a binary operation. The result has the width of a, and b
// is truncated to that width first. The result wraps modulo 2^width.
func Apply(op Op, a Word, b Word) (out Word, err error) {
	if !op.Binary() {
		if op.Unary() {
			err = ErrOpArity
		} else {
			err = ErrOpInvalid
		}
		return
	}

	width := a.Width
	if !width.Valid() {
		err = ErrWidthInvalid
		return
	}

	input := a.Bits & width.Mask()
	value := b.Bits & width.Mask()

	var output uint64
	switch op {
	case OP_ADD:
		output = input + value
	case OP_SUB:
		output = input + ((^value) + 1)
	case OP_MUL:
		output = input * value
	case OP_DIV:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input / value
	case OP_MOD:
		if value == 0 {
			err = ErrDivisionByZero
			return
		}
		output = input % value
	case OP_AND:
		output = input & value
	case OP_OR:
		output = input | value
	case OP_NOR:
		output = ^(input | value)
	case OP_XOR:
		output = input ^ value
	case OP_SHL:
		if value < uint64(width) {
			output = input << value
		}
	case OP_SHR:
		if value < uint64(width) {
			output = input >> value
		}
	case OP_ROL:
		output = rotate(input, int(value%uint64(width)), width)
	case OP_ROR:
		output = rotate(input, -int(value%uint64(width)), width)
	}

	out = New(output, width)
	return
}

// Unary performs a single operand operation, wrapping modulo 2^width.
func Unary(op Op, a Word) (out Word, err error) {
	if !op.Unary() {
		if op.Binary() {
			err = ErrOpArity
		} else {
			err = ErrOpInvalid
		}
		return
	}

	width := a.Width
	if !width.Valid() {
		err = ErrWidthInvalid
		return
	}

	var output uint64
	switch op {
	case OP_NOT:
		output = ^a.Bits
	case OP_NEG:
		output = (^a.Bits) + 1
	case OP_SWAP:
		output = bits.ReverseBytes64(a.Bits&width.Mask()) >> (64 - width)
	case OP_PLUS:
		output = a.Bits
	}

	out = New(output, width)
	return
}

// rotate rotates the low width bits of value left by k (right if negative).
func rotate(value uint64, k int, width Width) uint64 {
	if width == WIDTH_64 {
		return bits.RotateLeft64(value, k)
	}

	n := int(width)
	k %= n
	if k < 0 {
		k += n
	}
	if k == 0 {
		return value
	}

	value &= width.Mask()
	return (value << k) | (value >> (n - k))
}
