// Package history implements the exploration history: a bounded,
// append-only sequence of previously explored values with browser-style
// navigation. Pushing after backward navigation discards the forward branch;
// the sequence never shrinks below one entry.
package history

import (
	"errors"
	"fmt"
	"regexp"

	"mathscope/internal/kind"
)

// MaxLen bounds the number of history entries kept. When a push would exceed
// it, the oldest entries are dropped from the front.
const MaxLen = 50

// ErrNoMoreHistory signals a pop that would leave the history empty. It is
// the only user-visible failure the core surfaces.
var ErrNoMoreHistory = errors.New("no more history")

// labelWidth bounds the value representation shown in menu options.
const labelWidth = 40

// Entry is one visited value together with its display name.
type Entry struct {
	Value kind.Value
	Name  string
}

// Option is one rendered navigation menu entry.
type Option struct {
	Label string
	Index int
}

// History is the exploration history state machine. It always holds at least
// one entry; the current index marks the entry being explored, which is the
// tail except after backward navigation.
type History struct {
	entries     []Entry
	current     int
	initialName string
}

// New creates a history holding value as its single entry. initialName is
// the best-effort guess at the variable name the session was opened with and
// may be empty.
func New(value kind.Value, initialName string) *History {
	name := initialName
	if name == "" {
		name = "value"
	}
	return &History{
		entries:     []Entry{{Value: value, Name: name}},
		current:     0,
		initialName: initialName,
	}
}

// InitialName returns the guessed name of the first explored value.
func (h *History) InitialName() string { return h.initialName }

// Len returns the number of entries.
func (h *History) Len() int { return len(h.entries) }

// CurrentIndex returns the index of the entry being explored.
func (h *History) CurrentIndex() int { return h.current }

// Current returns the value at the current index.
func (h *History) Current() kind.Value { return h.entries[h.current].Value }

// AtHead reports whether the current index is the most recent entry.
func (h *History) AtHead() bool { return h.current == len(h.entries)-1 }

// Push appends value as a new navigation step. When the user has navigated
// backward, the entries ahead of the current index are discarded first (the
// forward branch is cut). The max-length bound is enforced by truncating the
// oldest entries, shifting the current index so relative navigation stays
// consistent.
func (h *History) Push(value kind.Value) {
	if !h.AtHead() {
		h.entries = h.entries[:h.current+1]
	}
	h.entries = append(h.entries, Entry{Value: value, Name: truncateRepr(value)})
	h.current = len(h.entries) - 1
	if excess := len(h.entries) - MaxLen; excess > 0 {
		h.entries = h.entries[excess:]
		h.current -= excess
	}
}

// Pop removes the n most recent entries. It fails with ErrNoMoreHistory when
// doing so would leave the history empty, leaving the entries intact.
func (h *History) Pop(n int) error {
	if n < 1 {
		n = 1
	}
	if len(h.entries)-n < 1 {
		return ErrNoMoreHistory
	}
	h.entries = h.entries[:len(h.entries)-n]
	if h.current > len(h.entries)-1 {
		h.current = len(h.entries) - 1
	}
	return nil
}

// Get returns the value stored at index i without changing any state.
func (h *History) Get(i int) (kind.Value, error) {
	if i < 0 || i >= len(h.entries) {
		return nil, fmt.Errorf("history index %d out of range", i)
	}
	return h.entries[i].Value, nil
}

// Select moves the current index to i. This is a read of existing history:
// no entry is pushed and no forward branch is cut.
func (h *History) Select(i int) error {
	if i < 0 || i >= len(h.entries) {
		return fmt.Errorf("history index %d out of range", i)
	}
	h.current = i
	return nil
}

// MenuOptions returns the ordered label/index pairs for the navigation menu.
func (h *History) MenuOptions() []Option {
	options := make([]Option, len(h.entries))
	for i, entry := range h.entries {
		options[i] = Option{
			Label: fmt.Sprintf("%d: %s", i, entry.Name),
			Index: i,
		}
	}
	return options
}

func truncateRepr(v kind.Value) string {
	repr := v.Repr()
	runes := []rune(repr)
	if len(runes) > labelWidth {
		return string(runes[:labelWidth-1]) + "…"
	}
	return repr
}

// explorePattern matches an explorer invocation in a session input line and
// captures the identifier handed to it.
var explorePattern = regexp.MustCompile(`explore\(\s*([A-Za-z_][A-Za-z0-9_]*)\s*\)`)

// GuessInitialName scans the session's recent input lines, newest first, for
// an explorer invocation and returns the identifier it was called with.
// Best effort: returns "" when nothing matches.
func GuessInitialName(inputLog []string) string {
	for i := len(inputLog) - 1; i >= 0; i-- {
		if m := explorePattern.FindStringSubmatch(inputLog[i]); m != nil {
			return m[1]
		}
	}
	return ""
}
