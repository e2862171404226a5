package parser

import (
	"sort"
	"strings"
	"unicode"
)

// DefaultSeparators are tried longest-first so "and then" never splits
// as "and" + "then".
var DefaultSeparators = []string{"and then", "and", "then", ","}

// SplitResult is the outcome of splitting compound input.
type SplitResult struct {
	DidSplit   bool
	Commands   []string
	Separators []string // separators actually used, in matched order
}

// SplitCommands divides compound input on the given separators (nil uses
// DefaultSeparators). Word separators require word boundaries, so "wand"
// never splits on "and"; punctuation separators match literally. A separator
// with empty text on either side is not a split point.
//
// Matching and slicing both happen on the lowered input: lowercasing can
// change byte length (e.g. U+0130), so indexes into the lowered string must
// never be applied to the original. The tokenizer lowercases anyway.
func SplitCommands(input string, separators []string) SplitResult {
	if separators == nil {
		separators = DefaultSeparators
	}
	seps := append([]string(nil), separators...)
	sort.SliceStable(seps, func(i, j int) bool {
		return len(seps[i]) > len(seps[j])
	})

	lower := strings.ToLower(input)
	var commands, used []string
	segStart := 0

	for i := 0; i < len(lower); {
		matched := ""
		for _, sep := range seps {
			if !strings.HasPrefix(lower[i:], sep) {
				continue
			}
			if isWordSeparator(sep) && !bounded(lower, i, len(sep)) {
				continue
			}
			before := strings.TrimSpace(lower[segStart:i])
			after := strings.TrimSpace(lower[i+len(sep):])
			if before == "" || after == "" {
				continue
			}
			matched = sep
			break
		}

		if matched == "" {
			i++
			continue
		}

		commands = append(commands, strings.TrimSpace(lower[segStart:i]))
		used = append(used, matched)
		i += len(matched)
		segStart = i
	}

	last := strings.TrimSpace(lower[segStart:])
	if len(commands) == 0 {
		return SplitResult{Commands: []string{strings.TrimSpace(lower)}}
	}
	commands = append(commands, last)
	return SplitResult{DidSplit: true, Commands: commands, Separators: used}
}

// isWordSeparator reports whether a separator consists of word characters
// (and so needs word-boundary matching).
func isWordSeparator(sep string) bool {
	for _, r := range sep {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}

// bounded checks that the match at [i, i+n) is delimited by non-word
// characters or the string edges.
func bounded(s string, i, n int) bool {
	if i > 0 {
		if r := rune(s[i-1]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	if i+n < len(s) {
		if r := rune(s[i+n]); unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
