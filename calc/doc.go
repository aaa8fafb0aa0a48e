// Package calc evaluates infix integer expressions for the programmer's
// calculator.
//
// A line is lexed into literals, operators and parentheses, then reduced to
// a single word.Word with the wraparound semantics of the word package.
// Three evaluation orders are provided behind the Evaluator interface: a
// strict left-to-right fold, a C-style precedence table, and conventional
// precedence as parsed by the Starlark expression parser.
package calc
