// Package tui provides a Bubble Tea terminal UI for the dungeon engine.
package tui

import "strings"

// History tracks the session's submitted input for arrow-key recall and
// for the "again" command. Meta-commands (leading "/") can be recalled
// with the arrows but never count as the last game command.
type History struct {
	entries  []string
	limit    int
	cursor   int // -1 = composing fresh input
	lastGame string
}

// NewHistory creates a history holding at most limit entries.
func NewHistory(limit int) *History {
	return &History{
		entries: make([]string, 0, limit),
		limit:   limit,
		cursor:  -1,
	}
}

// Push records a submitted line. Consecutive duplicates collapse into one
// entry, and the oldest entry falls off past the limit.
func (h *History) Push(input string) {
	if !strings.HasPrefix(input, "/") {
		h.lastGame = input
	}
	if len(h.entries) > 0 && h.entries[len(h.entries)-1] == input {
		return
	}
	h.entries = append(h.entries, input)
	if len(h.entries) > h.limit {
		h.entries = h.entries[1:]
	}
}

// LastGame returns the most recent game command, the one "again" repeats.
// The second return is false before any game command has been entered.
func (h *History) LastGame() (string, bool) {
	return h.lastGame, h.lastGame != ""
}

// Older steps back through the entries, sticking at the oldest.
// Returns ("", false) when there is nothing to recall.
func (h *History) Older() (string, bool) {
	if len(h.entries) == 0 {
		return "", false
	}
	if h.cursor == -1 {
		h.cursor = len(h.entries) - 1
	} else if h.cursor > 0 {
		h.cursor--
	}
	return h.entries[h.cursor], true
}

// Newer steps forward through the entries. Stepping past the most recent
// entry returns ("", false), handing the line back to fresh input.
func (h *History) Newer() (string, bool) {
	if h.cursor == -1 {
		return "", false
	}
	h.cursor++
	if h.cursor >= len(h.entries) {
		h.cursor = -1
		return "", false
	}
	return h.entries[h.cursor], true
}

// Reset leaves recall mode; the next Older starts from the newest entry.
func (h *History) Reset() {
	h.cursor = -1
}
