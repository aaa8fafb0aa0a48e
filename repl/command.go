package repl

import (
	"io"
	"iter"
	"maps"
	"regexp"
	"slices"
	"strings"

	"github.com/ezrec/pcalc/config"
	"github.com/ezrec/pcalc/word"
)

// command handles a control line; args are the words after the name.
type command func(e *Engine, args []string) error

// toggle flips one display field.
func toggle(field func(*config.Show) *bool) command {
	return func(e *Engine, args []string) error {
		if len(args) != 0 {
			return ErrArgument
		}
		flag := field(&e.Config.Show)
		*flag = !*flag
		return nil
	}
}

var commands = map[string]command{
	"decimal":   toggle(func(s *config.Show) *bool { return &s.Decimal }),
	"hex":       toggle(func(s *config.Show) *bool { return &s.Hex }),
	"octal":     toggle(func(s *config.Show) *bool { return &s.Octal }),
	"binary":    toggle(func(s *config.Show) *bool { return &s.Binary }),
	"operation": toggle(func(s *config.Show) *bool { return &s.Operation }),
	"history":   toggle(func(s *config.Show) *bool { return &s.History }),
	"symbols":   toggle(func(s *config.Show) *bool { return &s.Symbols }),
	"signed":    signed,
	"width":     width,
	"help":      help,
}

// widthCommand matches the "<n>cb" form of the width command.
var widthCommand = regexp.MustCompile(`^(\d+)\s*cb$`)

// Commands returns the command names, sorted.
func Commands() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(commands)))
}

// lookup finds the command for a line, if it is one.
func lookup(line string) (cmd command, args []string, ok bool) {
	line = strings.TrimSpace(line)

	if m := widthCommand.FindStringSubmatch(line); m != nil {
		return width, m[1:], true
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}

	cmd, ok = commands[fields[0]]
	args = fields[1:]
	return
}

func signed(e *Engine, args []string) error {
	if len(args) != 0 {
		return ErrArgument
	}
	e.Config.Signed = !e.Config.Signed
	return nil
}

func width(e *Engine, args []string) (err error) {
	if len(args) != 1 {
		return ErrArgument
	}

	w, err := word.ParseWidth(args[0])
	if err != nil {
		return
	}

	e.Config.Width = w
	e.Register = e.Register.Resize(w)
	return
}

func help(e *Engine, args []string) (err error) {
	_, err = io.WriteString(e.Output, Symbols())
	return
}
