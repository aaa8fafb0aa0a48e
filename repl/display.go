package repl

import (
	"fmt"
	"strings"

	"github.com/ezrec/pcalc/config"
	"github.com/ezrec/pcalc/word"
)

// Status is the state shown after every accepted line.
type Status struct {
	Register word.Word
	Signed   bool
	History  *History
}

// Line renders the status as the single batch line, for example
// "Decimal: 3, Hex: 0x3, Operation: ".
func (st Status) Line(show config.Show) string {
	var fields []string

	reg := st.Register
	if show.Decimal {
		fields = append(fields, "Decimal: "+reg.Decimal(st.Signed))
	}
	if show.Hex {
		fields = append(fields, "Hex: "+reg.Hex())
	}
	if show.Octal {
		fields = append(fields, "Octal: "+reg.Octal())
	}
	if show.Binary {
		fields = append(fields, "Binary: "+reg.Binary())
	}
	if show.Operation {
		// Every line is a complete expression, so no operator is pending.
		fields = append(fields, "Operation: ")
	}
	if show.History && st.History != nil {
		last, _ := st.History.Peek()
		fields = append(fields, "History: "+last)
	}

	return strings.Join(fields, ", ")
}

// Panel renders the multi-line interactive status.
func (st Status) Panel(show config.Show) string {
	var sb strings.Builder

	reg := st.Register
	row := func(label string, text string) {
		fmt.Fprintf(&sb, "%-11s%s\n", label+":", text)
	}

	if show.Operation {
		row("Operation", "")
	}
	if show.Decimal {
		row("Decimal", reg.Decimal(st.Signed))
	}
	if show.Hex {
		row("Hex", reg.Hex())
	}
	if show.Octal {
		row("Octal", reg.Octal())
	}
	if show.Binary {
		row("Binary", fmt.Sprintf("%02d  %s", int(reg.Width), reg.Groups()))
	}
	if show.History && st.History != nil {
		var recent []string
		for line := range st.History.Recent() {
			recent = append(recent, line)
		}
		row("History", strings.Join(recent, " | "))
	}
	if show.Symbols {
		sb.WriteByte('\n')
		sb.WriteString(Symbols())
	}

	return sb.String()
}

// symbolOrder is the operator table layout.
var symbolOrder = []word.Op{
	word.OP_ADD, word.OP_SUB, word.OP_MUL, word.OP_DIV, word.OP_MOD,
	word.OP_AND, word.OP_OR, word.OP_NOR, word.OP_XOR, word.OP_NOT,
	word.OP_SHL, word.OP_SHR, word.OP_ROL, word.OP_ROR, word.OP_NEG,
	word.OP_SWAP,
}

// Symbols renders the operator table, five operators per row.
func Symbols() string {
	var sb strings.Builder

	for n, op := range symbolOrder {
		if n%5 != 0 {
			sb.WriteString("    ")
		}
		fmt.Fprintf(&sb, "%-5s%-4s", strings.ToUpper(op.Name()), op.String())
		if n%5 == 4 || n == len(symbolOrder)-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
