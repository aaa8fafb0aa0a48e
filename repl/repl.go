// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl runs the calculator's read-evaluate-print loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/ezrec/pcalc/calc"
	"github.com/ezrec/pcalc/config"
	"github.com/ezrec/pcalc/console"
	"github.com/ezrec/pcalc/word"
)

// State of the engine.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_RUNNING    = State(iota) // running
	STATE_TERMINATED               // terminated
)

// LineSource supplies input lines; io.EOF ends the session.
type LineSource interface {
	ReadLine() (string, error)
}

// Engine is the read-evaluate-print loop over the register.
type Engine struct {
	Verbose   bool           // If set, logs every evaluation.
	Config    *config.Config // Display and width settings, updated by commands.
	Evaluator calc.Evaluator // Expression evaluation order.
	Register  word.Word      // Current value.
	History   History        // Accepted expression lines.
	Output    io.Writer      // Status output.
	Log       *log.Logger    // Diagnostics.

	state  State
	lineNo int
}

// NewEngine creates an engine with a zero register, writing status to output.
func NewEngine(conf *config.Config, output io.Writer) (e *Engine, err error) {
	if !conf.Width.Valid() {
		err = word.ErrWidth(conf.Width.String())
		return
	}

	eval, err := calc.New(conf.Order)
	if err != nil {
		return
	}

	e = &Engine{
		Verbose:   conf.Verbose,
		Config:    conf,
		Evaluator: eval,
		Register:  word.Zero(conf.Width),
		History:   History{Limit: conf.HistoryLimit},
		Output:    output,
		Log:       log.New(os.Stderr, "pcalc: ", 0),
	}

	return
}

// State returns the engine state.
func (e *Engine) State() State {
	return e.state
}

// Status returns the displayed state.
func (e *Engine) Status() Status {
	return Status{
		Register: e.Register,
		Signed:   e.Config.Signed,
		History:  &e.History,
	}
}

// Show writes the status: a single line in batch mode, else the panel.
func (e *Engine) Show() (err error) {
	st := e.Status()
	if e.Config.Batch {
		_, err = fmt.Fprintln(e.Output, st.Line(e.Config.Show))
	} else {
		_, err = io.WriteString(e.Output, st.Panel(e.Config.Show))
	}
	return
}

// Step handles one input line. A failed line leaves the register unchanged
// and prints nothing.
func (e *Engine) Step(line string) (done bool, err error) {
	if e.state == STATE_TERMINATED {
		return true, ErrTerminated
	}

	e.lineNo++
	defer func() {
		if err != nil {
			err = &ErrLine{LineNo: e.lineNo, Line: line, Err: err}
		}
	}()

	if calc.IsQuit(line) {
		e.state = STATE_TERMINATED
		done = true
		return
	}

	if cmd, args, ok := lookup(line); ok {
		err = cmd(e, args)
		if err != nil {
			return
		}
		err = e.Show()
		return
	}

	value, err := e.Evaluator.Evaluate(line, e.Register)
	if err != nil {
		return
	}

	if e.Verbose {
		e.Log.Printf("%v = %v", strings.TrimSpace(line), value.Hex())
	}

	e.Register = value
	e.History.Push(strings.TrimSpace(line))

	err = e.Show()
	return
}

// Run prints the initial status, then steps every line from in until quit
// or the end of input. Line errors, including lines too long to read, are
// logged and the loop continues; a failing input stream ends the session as
// end of input does.
func (e *Engine) Run(in LineSource) (err error) {
	err = e.Show()
	if err != nil {
		return
	}

	for e.state == STATE_RUNNING {
		line, rerr := in.ReadLine()
		if errors.Is(rerr, console.ErrLineTooLong) {
			e.lineNo++
			e.Log.Printf("%v", &ErrLine{LineNo: e.lineNo, Err: rerr})
			continue
		}
		if rerr != nil {
			if !errors.Is(rerr, io.EOF) {
				e.Log.Printf("input: %v", rerr)
			}
			e.state = STATE_TERMINATED
			break
		}

		_, serr := e.Step(line)
		if serr != nil {
			e.Log.Printf("%v", serr)
		}
	}

	return
}
