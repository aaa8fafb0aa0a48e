package calc

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/ezrec/pcalc/word"
)

// TokenKind is the lexical class of a token.
type TokenKind int

const (
	TOKEN_EOF    = TokenKind(0) // end of input
	TOKEN_NUMBER = TokenKind(1) // literal
	TOKEN_OP     = TokenKind(2) // operator
	TOKEN_LPAREN = TokenKind(3) // (
	TOKEN_RPAREN = TokenKind(4) // )
)

// Token is a lexical unit of an expression.
type Token struct {
	Kind TokenKind
	Text string // Source text of the token.
	Pos  int    // Byte offset of the token in the line.
}

// symbols are the punctuation operators, longest first.
var symbols = []string{"<<", ">>", "+", "-", "*", "/", "%", "&", "|", "$", "^", "~", "@"}

// words are the alphabetic operators.
var words = []string{"rol", "ror"}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Lex splits a line into tokens. Whitespace separates tokens and is
// otherwise ignored. The returned tokens always end with TOKEN_EOF.
func Lex(line string) (tokens []Token, err error) {
	pos := 0
	for pos < len(line) {
		c := line[pos]
		switch {
		case isSpace(c):
			pos++
			continue
		case isDigit(c):
			// Literals run to the next non-alphanumeric, so digit errors
			// are reported by the literal parser for the whole literal.
			end := pos
			for end < len(line) && isAlnum(line[end]) {
				end++
			}
			tokens = append(tokens, Token{Kind: TOKEN_NUMBER, Text: line[pos:end], Pos: pos})
			pos = end
			continue
		case c == '(':
			tokens = append(tokens, Token{Kind: TOKEN_LPAREN, Text: "(", Pos: pos})
			pos++
			continue
		case c == ')':
			tokens = append(tokens, Token{Kind: TOKEN_RPAREN, Text: ")", Pos: pos})
			pos++
			continue
		case isAlnum(c):
			end := pos
			for end < len(line) && isAlnum(line[end]) {
				end++
			}
			name := line[pos:end]
			if !slices.Contains(words, name) {
				err = ErrSyntax{Pos: pos, Text: name, Err: ErrUnknownSymbol}
				return
			}
			tokens = append(tokens, Token{Kind: TOKEN_OP, Text: name, Pos: pos})
			pos = end
			continue
		}

		found := false
		for _, sym := range symbols {
			if strings.HasPrefix(line[pos:], sym) {
				tokens = append(tokens, Token{Kind: TOKEN_OP, Text: sym, Pos: pos})
				pos += len(sym)
				found = true
				break
			}
		}
		if !found {
			_, size := utf8.DecodeRuneInString(line[pos:])
			err = ErrSyntax{Pos: pos, Text: line[pos : pos+size], Err: ErrUnknownSymbol}
			return
		}
	}

	tokens = append(tokens, Token{Kind: TOKEN_EOF, Pos: len(line)})
	return
}

// binaryOp returns the binary operation of an operator token.
func (tok Token) binaryOp() (op word.Op, ok bool) {
	if tok.Kind != TOKEN_OP {
		return
	}
	op, ok = word.BinaryOps[tok.Text]
	return
}

// unaryOp returns the prefix operation of an operator token.
func (tok Token) unaryOp() (op word.Op, ok bool) {
	if tok.Kind != TOKEN_OP {
		return
	}
	op, ok = word.UnaryOps[tok.Text]
	return
}
