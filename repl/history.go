package repl

import (
	"iter"
	"slices"
)

// History is a bounded record of accepted expression lines, oldest first.
// When full, pushing a line drops the oldest.
type History struct {
	Limit int
	Data  []string
}

func (h *History) Push(line string) {
	if h.Limit > 0 && len(h.Data) >= h.Limit {
		h.Data = slices.Delete(h.Data, 0, len(h.Data)-h.Limit+1)
	}
	h.Data = append(h.Data, line)
}

func (h *History) Empty() bool {
	return len(h.Data) == 0
}

func (h *History) Full() bool {
	return h.Limit > 0 && len(h.Data) >= h.Limit
}

// Peek returns the most recent line.
func (h *History) Peek() (line string, ok bool) {
	if h.Empty() {
		return
	}

	return h.Data[len(h.Data)-1], true
}

// Recent yields the most recent lines, newest first.
func (h *History) Recent() iter.Seq[string] {
	return func(yield func(string) bool) {
		for n := len(h.Data) - 1; n >= 0; n-- {
			if !yield(h.Data[n]) {
				return
			}
		}
	}
}

func (h *History) Reset() {
	if len(h.Data) > 0 {
		h.Data = h.Data[:0]
	}
}
