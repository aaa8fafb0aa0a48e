// Package word implements the fixed-width register word of the programmer's
// calculator.
//
// A Word is an unsigned bit pattern paired with a width of 8, 16, 32 or 64
// bits. Every ALU operation wraps modulo 2^width, so overflow is never a
// fault. Literals are parsed from decimal, 0x hexadecimal or 0b binary text,
// and words are rendered back to decimal, hexadecimal, octal and binary.
package word
