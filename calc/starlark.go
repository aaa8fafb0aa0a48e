package calc

import (
	"errors"
	"strings"

	"go.starlark.net/syntax"

	"github.com/ezrec/pcalc/word"
)

// starlarkBinary maps Starlark binary operators to ALU operations.
var starlarkBinary = map[syntax.Token]word.Op{
	syntax.PLUS:       word.OP_ADD,
	syntax.MINUS:      word.OP_SUB,
	syntax.STAR:       word.OP_MUL,
	syntax.SLASH:      word.OP_DIV,
	syntax.SLASHSLASH: word.OP_DIV,
	syntax.PERCENT:    word.OP_MOD,
	syntax.AMP:        word.OP_AND,
	syntax.PIPE:       word.OP_OR,
	syntax.CIRCUMFLEX: word.OP_XOR,
	syntax.LTLT:       word.OP_SHL,
	syntax.GTGT:       word.OP_SHR,
}

// starlarkUnary maps Starlark prefix operators to ALU operations.
var starlarkUnary = map[syntax.Token]word.Op{
	syntax.PLUS:  word.OP_PLUS,
	syntax.MINUS: word.OP_NEG,
	syntax.TILDE: word.OP_NOT,
}

// Starlark parses the line as a Starlark expression, giving conventional
// (Python) operator precedence, and evaluates the tree with fixed-width
// ALU semantics. Rotations, '$' and '@' are not available.
type Starlark struct{}

func (*Starlark) Order() Order {
	return ORDER_STARLARK
}

func (*Starlark) Evaluate(line string, register word.Word) (value word.Word, err error) {
	width := register.Width
	if !width.Valid() {
		err = word.ErrWidth(width.String())
		return
	}

	// Leading blanks would scan as an indent.
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		err = ErrSyntax{Pos: 0, Err: ErrEmpty}
		return
	}

	opts := syntax.FileOptions{}
	expr, err := opts.ParseExpr("expr", line, 0)
	if err != nil {
		var serr syntax.Error
		if errors.As(err, &serr) {
			err = ErrSyntax{Pos: int(serr.Pos.Col) - 1, Text: serr.Msg, Err: ErrUnexpectedToken}
		} else {
			err = ErrSyntax{Pos: 0, Text: err.Error(), Err: ErrUnexpectedToken}
		}
		return
	}

	value, err = starlarkEval(expr, width)
	if err != nil {
		value = word.Word{}
	}

	return
}

// starlarkBase returns the base of a Starlark int literal, which may also
// be written in 0o octal.
func starlarkBase(raw string) word.Base {
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'o' || raw[1] == 'O') {
		return word.BASE_OCTAL
	}
	base, _ := word.BaseOf(raw)
	return base
}

// starlarkPos returns the byte offset of a node in a single line.
func starlarkPos(node syntax.Node) int {
	start, _ := node.Span()
	return int(start.Col) - 1
}

func starlarkEval(expr syntax.Expr, width word.Width) (value word.Word, err error) {
	switch e := expr.(type) {
	case *syntax.Literal:
		if e.Token != syntax.INT {
			err = ErrSyntax{Pos: starlarkPos(e), Text: e.Raw, Err: ErrUnsupported}
			return
		}
		value, err = word.ParseBase(e.Raw, starlarkBase(e.Raw), width)
	case *syntax.ParenExpr:
		value, err = starlarkEval(e.X, width)
	case *syntax.UnaryExpr:
		op, ok := starlarkUnary[e.Op]
		if !ok || e.X == nil {
			err = ErrSyntax{Pos: starlarkPos(e), Text: e.Op.String(), Err: ErrUnsupported}
			return
		}
		value, err = starlarkEval(e.X, width)
		if err != nil {
			return
		}
		value, err = word.Unary(op, value)
		if err != nil {
			err = ErrEval{Pos: starlarkPos(e), Op: op, Err: err}
		}
	case *syntax.BinaryExpr:
		op, ok := starlarkBinary[e.Op]
		if !ok {
			err = ErrSyntax{Pos: int(e.OpPos.Col) - 1, Text: e.Op.String(), Err: ErrUnsupported}
			return
		}
		var lhs, rhs word.Word
		lhs, err = starlarkEval(e.X, width)
		if err != nil {
			return
		}
		rhs, err = starlarkEval(e.Y, width)
		if err != nil {
			return
		}
		value, err = word.Apply(op, lhs, rhs)
		if err != nil {
			err = ErrEval{Pos: int(e.OpPos.Col) - 1, Op: op, Err: err}
		}
	default:
		err = ErrSyntax{Pos: starlarkPos(expr), Err: ErrUnsupported}
	}

	return
}
