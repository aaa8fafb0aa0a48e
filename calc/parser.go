package calc

import (
	"github.com/ezrec/pcalc/word"
)

// precedence of binary operations, higher binds tighter.
var precedence = map[word.Op]int{
	word.OP_OR:  1,
	word.OP_NOR: 1,
	word.OP_XOR: 2,
	word.OP_AND: 3,
	word.OP_SHL: 4,
	word.OP_SHR: 4,
	word.OP_ROL: 4,
	word.OP_ROR: 4,
	word.OP_ADD: 5,
	word.OP_SUB: 5,
	word.OP_MUL: 6,
	word.OP_DIV: 6,
	word.OP_MOD: 6,
}

// parser walks the tokens of a single line.
type parser struct {
	tokens []Token
	pos    int
	width  word.Width
}

func newParser(line string, width word.Width) (p *parser, err error) {
	if !width.Valid() {
		err = word.ErrWidth(width.String())
		return
	}

	tokens, err := Lex(line)
	if err != nil {
		return
	}

	if tokens[0].Kind == TOKEN_EOF {
		err = ErrSyntax{Pos: 0, Err: ErrEmpty}
		return
	}

	p = &parser{tokens: tokens, width: width}
	return
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() (tok Token) {
	tok = p.tokens[p.pos]
	if tok.Kind != TOKEN_EOF {
		p.pos++
	}
	return
}

// run evaluates the whole line with expr, which must consume every token.
func (p *parser) run(expr func() (word.Word, error)) (value word.Word, err error) {
	value, err = expr()
	if err != nil {
		value = word.Word{}
		return
	}

	tok := p.peek()
	switch tok.Kind {
	case TOKEN_EOF:
		return
	case TOKEN_RPAREN:
		err = ErrSyntax{Pos: tok.Pos, Text: tok.Text, Err: ErrUnbalanced}
	default:
		err = ErrSyntax{Pos: tok.Pos, Text: tok.Text, Err: ErrUnexpectedToken}
	}

	value = word.Word{}
	return
}

// operand parses a prefixed literal or a parenthesised group, which is
// evaluated with group.
func (p *parser) operand(group func() (word.Word, error)) (value word.Word, err error) {
	tok := p.next()

	if op, ok := tok.unaryOp(); ok {
		value, err = p.operand(group)
		if err != nil {
			return
		}
		value, err = word.Unary(op, value)
		if err != nil {
			err = ErrEval{Pos: tok.Pos, Op: op, Err: err}
		}
		return
	}

	switch tok.Kind {
	case TOKEN_NUMBER:
		value, err = word.Parse(tok.Text, p.width)
	case TOKEN_LPAREN:
		value, err = group()
		if err != nil {
			return
		}
		closing := p.next()
		if closing.Kind != TOKEN_RPAREN {
			err = ErrSyntax{Pos: tok.Pos, Text: tok.Text, Err: ErrUnbalanced}
		}
	case TOKEN_EOF:
		err = ErrSyntax{Pos: tok.Pos, Err: ErrMissingOperand}
	default:
		err = ErrSyntax{Pos: tok.Pos, Text: tok.Text, Err: ErrUnexpectedToken}
	}

	return
}

// apply applies the binary operator token to the running value.
func (p *parser) apply(tok Token, op word.Op, lhs word.Word, rhs word.Word) (value word.Word, err error) {
	value, err = word.Apply(op, lhs, rhs)
	if err != nil {
		err = ErrEval{Pos: tok.Pos, Op: op, Err: err}
	}
	return
}

// fold folds 'operand (op operand)*' left to right.
func (p *parser) fold() (value word.Word, err error) {
	value, err = p.operand(p.fold)
	if err != nil {
		return
	}

	for {
		tok := p.peek()
		op, ok := tok.binaryOp()
		if !ok {
			return
		}
		p.next()

		var rhs word.Word
		rhs, err = p.operand(p.fold)
		if err != nil {
			return
		}

		value, err = p.apply(tok, op, value, rhs)
		if err != nil {
			return
		}
	}
}

// expr parses a full expression by precedence climbing.
func (p *parser) expr() (value word.Word, err error) {
	return p.climb(1)
}

// climb parses operators binding at least as tightly as floor, left associative.
func (p *parser) climb(floor int) (value word.Word, err error) {
	value, err = p.operand(p.expr)
	if err != nil {
		return
	}

	for {
		tok := p.peek()
		op, ok := tok.binaryOp()
		if !ok || precedence[op] < floor {
			return
		}
		p.next()

		var rhs word.Word
		rhs, err = p.climb(precedence[op] + 1)
		if err != nil {
			return
		}

		value, err = p.apply(tok, op, value, rhs)
		if err != nil {
			return
		}
	}
}
