// Package config holds the runtime settings of the calculator.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/ezrec/pcalc/calc"
	"github.com/ezrec/pcalc/word"
)

const (
	HISTORY_LIMIT = 16                    // Accepted lines remembered by the engine.
	HISTORY_NAME  = ".pcalc_history"      // Line editor history, in the home directory.
	PROMPT        = "Number or operator: " // Interactive prompt.
)

// Environment variables consulted by LoadEnv.
const (
	ENV_WIDTH   = "PCALC_WIDTH"
	ENV_ORDER   = "PCALC_ORDER"
	ENV_SIGNED  = "PCALC_SIGNED"
	ENV_HISTORY = "PCALC_HISTORY"
	ENV_LANG    = "PCALC_LANG"
)

// Show selects the fields of the status display.
type Show struct {
	Decimal   bool
	Hex       bool
	Octal     bool
	Binary    bool
	Operation bool
	History   bool
	Symbols   bool
}

// DefaultShow returns the default fields. The batch status line carries only
// decimal, hex and operation; the interactive panel shows everything but octal.
func DefaultShow(batch bool) Show {
	if batch {
		return Show{Decimal: true, Hex: true, Operation: true}
	}
	return Show{
		Decimal:   true,
		Hex:       true,
		Binary:    true,
		Operation: true,
		History:   true,
		Symbols:   true,
	}
}

// Config is the calculator configuration.
type Config struct {
	Width   word.Width // Register width.
	Order   calc.Order // Expression evaluation order.
	Batch   bool       // Batch (piped) status lines instead of the panel.
	Signed  bool       // Render decimal as signed two's-complement.
	Verbose bool       // Log every evaluation.
	Show    Show       // Status display fields.

	Prompt       string // Interactive prompt.
	HistoryFile  string // Line editor history file, empty for none.
	HistoryLimit int    // Engine history depth.
	Language     string // BCP 47 language override, empty for the locale.
}

// Default returns the default configuration.
func Default() *Config {
	conf := &Config{
		Width:        word.DEFAULT_WIDTH,
		Order:        calc.ORDER_FOLD,
		Show:         DefaultShow(false),
		Prompt:       PROMPT,
		HistoryLimit: HISTORY_LIMIT,
	}

	if home, err := os.UserHomeDir(); err == nil {
		conf.HistoryFile = filepath.Join(home, HISTORY_NAME)
	}

	return conf
}

// SetBatch selects batch or interactive display, resetting the shown fields
// to that mode's defaults.
func (c *Config) SetBatch(batch bool) {
	c.Batch = batch
	c.Show = DefaultShow(batch)
}

// LoadEnv applies overrides from the environment, as reported by lookup
// (normally os.LookupEnv).
func (c *Config) LoadEnv(lookup func(string) (string, bool)) (err error) {
	if value, ok := lookup(ENV_WIDTH); ok {
		c.Width, err = word.ParseWidth(value)
		if err != nil {
			return ErrEnv{Name: ENV_WIDTH, Value: value, Err: err}
		}
	}

	if value, ok := lookup(ENV_ORDER); ok {
		c.Order, err = calc.ParseOrder(value)
		if err != nil {
			return ErrEnv{Name: ENV_ORDER, Value: value, Err: err}
		}
	}

	if value, ok := lookup(ENV_SIGNED); ok {
		c.Signed, err = strconv.ParseBool(value)
		if err != nil {
			return ErrEnv{Name: ENV_SIGNED, Value: value, Err: err}
		}
	}

	if value, ok := lookup(ENV_HISTORY); ok {
		c.HistoryFile = value
	}

	if value, ok := lookup(ENV_LANG); ok {
		c.Language = value
	}

	return
}
