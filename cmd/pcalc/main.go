// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"log"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"

	"github.com/ezrec/pcalc/calc"
	"github.com/ezrec/pcalc/config"
	"github.com/ezrec/pcalc/console"
	"github.com/ezrec/pcalc/internal"
	"github.com/ezrec/pcalc/repl"
	"github.com/ezrec/pcalc/translate"
	"github.com/ezrec/pcalc/word"
)

const VERSION = "pcalc v1.8"

var usage = `pcalc - programmer's calculator

Usage:
  pcalc [-c] [-ibxdos] [-w WIDTH] [-m ORDER] [--signed] [--verbose]
  pcalc -h
  pcalc -v

Options:
  -c, --batch           Print one status line per input line.
  -i, --no-history      Hide the history display.
  -b, --no-binary       Hide the binary display.
  -x, --no-hex          Hide the hexadecimal display.
  -d, --no-decimal      Hide the decimal display.
  -o, --no-operation    Hide the operation display.
  -s, --no-symbols      Hide the operator table.
  -w, --width=WIDTH     Register width in bits: 8, 16, 32 or 64.
  -m, --mode=ORDER      Evaluation order: fold, precedence or starlark.
  --signed              Show decimal values as signed.
  --verbose             Log every evaluation.
  -h, --help            Display this help.
  -v, --version         Print pcalc version.

Each input line is an expression, evaluated into the register, or a
command: quit, help, signed, width N (or Ncb), and the display toggles
decimal, hex, octal, binary, operation, history and symbols.
`

// hide maps display-hiding options to their fields.
var hide = map[string]func(*config.Show) *bool{
	"--no-history":   func(s *config.Show) *bool { return &s.History },
	"--no-binary":    func(s *config.Show) *bool { return &s.Binary },
	"--no-hex":       func(s *config.Show) *bool { return &s.Hex },
	"--no-decimal":   func(s *config.Show) *bool { return &s.Decimal },
	"--no-operation": func(s *config.Show) *bool { return &s.Operation },
	"--no-symbols":   func(s *config.Show) *bool { return &s.Symbols },
}

// configure layers the environment and the command line over the defaults.
func configure(opts docopt.Opts, lookup func(string) (string, bool)) (conf *config.Config, err error) {
	conf = config.Default()

	err = conf.LoadEnv(lookup)
	if err != nil {
		return
	}

	batch, _ := opts.Bool("--batch")
	conf.SetBatch(batch)

	for name, field := range hide {
		if off, _ := opts.Bool(name); off {
			*field(&conf.Show) = false
		}
	}

	if text, ok := opts["--width"].(string); ok {
		conf.Width, err = word.ParseWidth(text)
		if err != nil {
			return
		}
	}

	if text, ok := opts["--mode"].(string); ok {
		conf.Order, err = calc.ParseOrder(text)
		if err != nil {
			return
		}
	}

	if signed, _ := opts.Bool("--signed"); signed {
		conf.Signed = true
	}

	conf.Verbose, _ = opts.Bool("--verbose")

	return
}

// completions returns the words the line editor completes: commands and
// the word operators.
func completions() []string {
	named := internal.Filter(maps.Keys(word.BinaryOps), func(sym string) bool {
		return strings.Trim(sym, "abcdefghijklmnopqrstuvwxyz") == ""
	})

	return slices.Collect(internal.Concat(
		repl.Commands(),
		slices.Values(slices.Sorted(named)),
		slices.Values([]string{"quit", "exit"}),
	))
}

type lineSource interface {
	repl.LineSource
	Close() error
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("pcalc: ")

	opts, err := docopt.ParseArgs(usage, nil, VERSION)
	if err != nil {
		log.Fatalf("%v", err)
	}

	conf, err := configure(opts, os.LookupEnv)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if len(conf.Language) != 0 {
		err = translate.SetLanguage(conf.Language)
		if err != nil {
			log.Fatalf("%v: %v", config.ENV_LANG, err)
		}
	}

	eng, err := repl.NewEngine(conf, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}

	fd := os.Stdin.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	var in lineSource
	if tty && !conf.Batch {
		in = console.NewTerminal(conf.Prompt, conf.HistoryFile, completions())
	} else {
		in = console.NewBatch(os.Stdin)
	}

	err = eng.Run(in)
	in.Close()

	if err != nil {
		log.Fatal(err)
	}
}
