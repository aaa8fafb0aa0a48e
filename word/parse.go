package word

import (
	"strings"
)

// Base is a literal number base.
type Base int

const (
	BASE_BINARY  = Base(2)
	BASE_OCTAL   = Base(8)
	BASE_DECIMAL = Base(10)
	BASE_HEX     = Base(16)
)

// Prefix returns the literal prefix of the base.
func (b Base) Prefix() string {
	switch b {
	case BASE_BINARY:
		return "0b"
	case BASE_OCTAL:
		return "0o"
	case BASE_HEX:
		return "0x"
	}
	return ""
}

// BaseOf returns the base a literal is written in, and its digits.
func BaseOf(literal string) (base Base, digits string) {
	if len(literal) >= 2 && literal[0] == '0' {
		switch literal[1] {
		case 'x', 'X':
			return BASE_HEX, literal[2:]
		case 'b', 'B':
			return BASE_BINARY, literal[2:]
		}
	}
	return BASE_DECIMAL, literal
}

// digitOf returns the value of a single digit, or -1.
func digitOf(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// Parse parses a 0x hexadecimal, 0b binary or bare decimal literal into a
// word of the given width.
//
// Values too large for the width are truncated modulo 2^width, never
// rejected. Hexadecimal digits are case-insensitive; there is no sign.
func Parse(literal string, width Width) (value Word, err error) {
	base, _ := BaseOf(strings.TrimSpace(literal))
	return ParseBase(literal, base, width)
}

// ParseBase parses a literal written in base, with or without the base's
// prefix, into a word of the given width. Truncation is as for Parse.
func ParseBase(literal string, base Base, width Width) (value Word, err error) {
	if !width.Valid() {
		err = ErrWidth(width.String())
		return
	}

	defer func() {
		if err != nil {
			err = ErrParse{Literal: literal, Err: err}
		}
	}()

	digits := strings.TrimSpace(literal)
	if len(digits) == 0 {
		err = ErrLiteralEmpty
		return
	}

	prefix := base.Prefix()
	if len(prefix) != 0 && len(digits) >= len(prefix) && strings.EqualFold(digits[:len(prefix)], prefix) {
		digits = digits[len(prefix):]
	}
	if len(digits) == 0 {
		err = ErrLiteralEmpty
		return
	}

	// Accumulating modulo 2^64 and masking afterwards gives the value
	// modulo 2^width, as every width divides 64.
	var bits uint64
	for n := range len(digits) {
		d := digitOf(digits[n])
		if d < 0 || d >= int(base) {
			err = ErrLiteralDigit
			return
		}
		bits = bits*uint64(base) + uint64(d)
	}

	value = New(bits, width)
	return
}

// MustParse is like Parse, but panics on a malformed literal.
func MustParse(literal string, width Width) Word {
	value, err := Parse(literal, width)
	if err != nil {
		panic(err)
	}
	return value
}
