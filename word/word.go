// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package word

import (
	"slices"
	"strconv"
	"strings"
)

// Width is a register width in bits.
type Width uint

const (
	WIDTH_8  = Width(8)
	WIDTH_16 = Width(16)
	WIDTH_32 = Width(32)
	WIDTH_64 = Width(64)

	DEFAULT_WIDTH = WIDTH_64 // Width of a freshly created register.
)

// Widths lists the supported register widths, narrowest first.
var Widths = []Width{WIDTH_8, WIDTH_16, WIDTH_32, WIDTH_64}

// Valid returns true for a supported register width.
func (w Width) Valid() bool {
	return slices.Contains(Widths, w)
}

// Mask returns the bit mask covering all bits of the width.
func (w Width) Mask() uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << w) - 1
}

// Sign returns the mask of the top (sign) bit of the width.
func (w Width) Sign() uint64 {
	return uint64(1) << (w - 1)
}

func (w Width) String() string {
	return strconv.FormatUint(uint64(w), 10)
}

// ParseWidth parses a width in bits, as typed by the user.
func ParseWidth(text string) (w Width, err error) {
	text = strings.TrimSpace(text)
	n, err := strconv.ParseUint(text, 10, 8)
	if err != nil || !Width(n).Valid() {
		err = ErrWidth(text)
		return
	}

	w = Width(n)
	return
}

// Word is a fixed-width two's-complement register value.
type Word struct {
	Bits  uint64 // Bit pattern, always within Width.Mask().
	Width Width  // Width of the register in bits.
}

// New creates a word of the given width, truncating bits to the width.
func New(bits uint64, width Width) Word {
	return Word{Bits: bits & width.Mask(), Width: width}
}

// Zero returns the zero word of the given width.
func Zero(width Width) Word {
	return Word{Width: width}
}

// Uint returns the unsigned value of the word.
func (w Word) Uint() uint64 {
	return w.Bits
}

// Negative returns true if the sign bit of the word is set.
func (w Word) Negative() bool {
	return w.Bits&w.Width.Sign() != 0
}

// Int returns the sign-extended two's-complement value of the word.
func (w Word) Int() int64 {
	if w.Negative() {
		return int64(w.Bits | ^w.Width.Mask())
	}
	return int64(w.Bits)
}

// Resize returns the word truncated (or zero extended) to a new width.
func (w Word) Resize(width Width) Word {
	return New(w.Bits, width)
}

// String returns the unsigned decimal representation of the word.
func (w Word) String() string {
	return w.Decimal(false)
}
