// Package console provides the line sources of the calculator: a batch
// reader for piped input, and an interactive line editor for terminals.
package console

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/peterh/liner"
)

const (
	LINE_LIMIT = 1 << 20 // Longest batch line, in bytes.
)

// Batch reads newline terminated lines from a stream.
type Batch struct {
	Limit  int // Longest accepted line in bytes, without its terminator.
	reader *bufio.Reader
}

// NewBatch creates a line source reading from r.
func NewBatch(r io.Reader) *Batch {
	return &Batch{
		Limit:  LINE_LIMIT,
		reader: bufio.NewReader(r),
	}
}

// ReadLine returns the next line without its terminator, or io.EOF.
//
// A line longer than Limit is consumed up to its newline and reported as
// ErrLong; the next call reads the following line.
func (b *Batch) ReadLine() (line string, err error) {
	var sb strings.Builder

	length := 0
	for done := false; !done; {
		chunk, rerr := b.reader.ReadSlice('\n')
		length += len(chunk)
		// Keep room for a "\r\n" terminator.
		if length <= b.Limit+2 {
			sb.Write(chunk)
		}

		switch {
		case rerr == nil:
			done = true
		case errors.Is(rerr, bufio.ErrBufferFull):
		case errors.Is(rerr, io.EOF) && length != 0:
			done = true
		default:
			err = rerr
			return
		}
	}

	line = strings.TrimSuffix(sb.String(), "\n")
	line = strings.TrimSuffix(line, "\r")

	if length > b.Limit+2 || len(line) > b.Limit {
		err = ErrLong{Length: length, Limit: b.Limit}
		line = ""
	}

	return
}

// Close releases the batch reader.
func (b *Batch) Close() error {
	return nil
}

// Terminal is an interactive line editor with recall history and word
// completion.
type Terminal struct {
	*liner.State
	Prompt      string // Prompt displayed before each line.
	HistoryFile string // Recall history file, empty for none.
}

// NewTerminal creates a line editor on the controlling terminal, loading the
// recall history and completing the given words.
func NewTerminal(prompt string, historyFile string, words []string) (term *Terminal) {
	term = &Terminal{
		State:       liner.NewLiner(),
		Prompt:      prompt,
		HistoryFile: historyFile,
	}

	term.SetCtrlCAborts(true)
	term.SetCompleter(Completer(words))

	if len(historyFile) != 0 {
		if inf, err := os.Open(historyFile); err == nil {
			term.ReadHistory(inf)
			inf.Close()
		}
	}

	return
}

// ReadLine prompts for the next line. Ctrl-C and Ctrl-D end input with io.EOF.
func (term *Terminal) ReadLine() (line string, err error) {
	line, err = term.State.Prompt(term.Prompt)
	switch {
	case err == nil:
		if len(strings.TrimSpace(line)) != 0 {
			term.AppendHistory(line)
		}
	case errors.Is(err, liner.ErrPromptAborted):
		err = io.EOF
	}

	return
}

// Close saves the recall history and restores the terminal.
func (term *Terminal) Close() (err error) {
	if len(term.HistoryFile) != 0 {
		ouf, err := os.Create(term.HistoryFile)
		if err == nil {
			term.WriteHistory(ouf)
			ouf.Close()
		} else {
			log.Printf("history: %v", err)
		}
	}

	return term.State.Close()
}

// Completer returns a completion function that completes the last word of
// the line against words.
func Completer(words []string) func(line string) []string {
	return func(line string) (completions []string) {
		n := strings.LastIndexAny(line, " \t()") + 1
		head, tail := line[:n], line[n:]

		if len(tail) == 0 {
			return
		}

		for _, w := range words {
			if strings.HasPrefix(w, tail) {
				completions = append(completions, head+w)
			}
		}

		return
	}
}
