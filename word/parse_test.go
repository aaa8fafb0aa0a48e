package word

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	table := [](struct {
		literal  string
		width    Width
		expected uint64
	}){
		{"0", WIDTH_32, 0},
		{"1", WIDTH_32, 1},
		{"0x1", WIDTH_32, 1},
		{"0b1", WIDTH_32, 1},
		{"0xAB", WIDTH_32, 0xab},
		{"0xab", WIDTH_32, 0xab},
		{"0XaB", WIDTH_32, 0xab},
		{"0b1010", WIDTH_8, 10},
		{"007", WIDTH_8, 7},
		{"256", WIDTH_8, 0},
		{"0x1ff", WIDTH_8, 0xff},
		{"18446744073709551615", WIDTH_64, ^uint64(0)},
		{"18446744073709551616", WIDTH_64, 0},
		{"0x123456789abcdef0123", WIDTH_32, 0xcdef0123},
		{" 42 ", WIDTH_16, 42},
	}

	for _, entry := range table {
		value, err := Parse(entry.literal, entry.width)
		assert.NoError(t, err, entry.literal)
		assert.Equal(t, New(entry.expected, entry.width), value, entry.literal)
	}
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		literal  string
		expected error
	}){
		{"", ErrLiteralEmpty},
		{"0x", ErrLiteralEmpty},
		{"0b", ErrLiteralEmpty},
		{"0b102", ErrLiteralDigit},
		{"0xfg", ErrLiteralDigit},
		{"12a", ErrLiteralDigit},
		{"-1", ErrLiteralDigit},
		{"abc", ErrLiteralDigit},
	}

	for _, entry := range table {
		_, err := Parse(entry.literal, WIDTH_64)
		assert.True(errors.Is(err, entry.expected), "%q: %v", entry.literal, err)

		var perr ErrParse
		assert.True(errors.As(err, &perr), entry.literal)
		assert.Equal(entry.literal, perr.Literal)
	}

	_, err := Parse("1", Width(3))
	assert.True(errors.Is(err, ErrWidthInvalid))
}

func TestMustParse(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(New(3, WIDTH_8), MustParse("0b11", WIDTH_8))
	assert.Panics(func() { MustParse("0b2", WIDTH_8) })
}

func TestParse_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewSource(2))

	for _, width := range Widths {
		for range 100 {
			m := rng.Uint64() & width.Mask()
			hex := strconv.FormatUint(m, 16)
			literals := []string{
				strconv.FormatUint(m, 10),
				"0x" + hex,
				"0b" + strconv.FormatUint(m, 2),
			}
			for _, literal := range literals {
				value, err := Parse(literal, width)
				assert.NoError(err, literal)
				assert.Equal(strconv.FormatUint(m, 10), value.Decimal(false), literal)
				assert.Equal("0x"+hex, value.Hex(), literal)
			}
		}
	}
}

func TestParseBase(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		literal  string
		base     Base
		width    Width
		expected uint64
	}){
		{"0o17", BASE_OCTAL, WIDTH_32, 0o17},
		{"0O777", BASE_OCTAL, WIDTH_8, 0xff},
		{"17", BASE_OCTAL, WIDTH_32, 0o17},
		{"ff", BASE_HEX, WIDTH_16, 0xff},
		{"0b11", BASE_BINARY, WIDTH_8, 3},
		{"42", BASE_DECIMAL, WIDTH_64, 42},
	}

	for _, entry := range table {
		value, err := ParseBase(entry.literal, entry.base, entry.width)
		assert.NoError(err, entry.literal)
		assert.Equal(New(entry.expected, entry.width), value, entry.literal)
	}

	_, err := ParseBase("0o18", BASE_OCTAL, WIDTH_32)
	assert.True(errors.Is(err, ErrLiteralDigit))

	_, err = ParseBase("0o", BASE_OCTAL, WIDTH_32)
	assert.True(errors.Is(err, ErrLiteralEmpty))

	// Octal is not part of the default literal grammar.
	_, err = Parse("0o17", WIDTH_32)
	assert.True(errors.Is(err, ErrLiteralDigit))
}

func FuzzParse(f *testing.F) {
	f.Add("0x1", uint8(0))
	f.Add("0b0101", uint8(1))
	f.Add("12345678901234567890123", uint8(3))

	f.Fuzz(func(t *testing.T, literal string, w uint8) {
		width := Widths[int(w)%len(Widths)]
		value, err := Parse(literal, width)
		if err != nil {
			var perr ErrParse
			assert.True(t, errors.As(err, &perr), fmt.Sprintf("%q", literal))
			return
		}
		assert.LessOrEqual(t, value.Bits, width.Mask())
	})
}
