package word

import (
	"strconv"
	"strings"
)

// Decimal renders the word in decimal. If signed is set, words with the
// sign bit set are rendered as negative two's-complement values.
func (w Word) Decimal(signed bool) string {
	if signed {
		return strconv.FormatInt(w.Int(), 10)
	}
	return strconv.FormatUint(w.Bits, 10)
}

// Hex renders the word as lowercase 0x hexadecimal without zero padding.
func (w Word) Hex() string {
	return w.Base(BASE_HEX)
}

// Octal renders the word as 0o octal without zero padding.
func (w Word) Octal() string {
	return w.Base(BASE_OCTAL)
}

// Binary renders the word as 0b binary without zero padding.
func (w Word) Binary() string {
	return w.Base(BASE_BINARY)
}

// Base renders the word in a base, prefixed as it would be parsed.
func (w Word) Base(base Base) string {
	return base.Prefix() + strconv.FormatUint(w.Bits, int(base))
}

// Groups renders every bit of the word, most significant first, in
// nibbles separated by a space and bytes separated by two.
func (w Word) Groups() string {
	var sb strings.Builder

	n := int(w.Width)
	for i := n - 1; i >= 0; i-- {
		if w.Bits&(uint64(1)<<i) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
		switch {
		case i == 0:
		case i%8 == 0:
			sb.WriteString("  ")
		case i%4 == 0:
			sb.WriteByte(' ')
		}
	}

	return sb.String()
}
