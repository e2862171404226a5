// Package parser converts raw player input into structured commands.
// It is fully data-driven: word lists, phrasal verbs, and thresholds come
// from an injected Vocabulary rather than hardcoded constants.
package parser

import (
	"fmt"
	"strings"

	"github.com/halvard/dungeon/engine/fuzzy"
	"github.com/halvard/dungeon/types"
)

// Fixed user-facing errors. Wording elsewhere varies by verb.
const (
	msgEmptyInput      = "Please enter a command."
	msgUnknownReferent = "I'm not sure what you mean."
)

// Parser turns raw text into ParsedCommands. It tracks the last referenced
// object so pronouns ("it", "them") resolve across commands.
type Parser struct {
	vocab    *Vocabulary
	referent string
}

// New creates a Parser with the given vocabulary.
// A nil vocabulary uses the defaults.
func New(vocab *Vocabulary) *Parser {
	if vocab == nil {
		vocab = DefaultVocabulary()
	}
	return &Parser{vocab: vocab}
}

// SetReferent records the object name pronouns should resolve to.
func (p *Parser) SetReferent(name string) {
	p.referent = name
}

// Referent returns the tracked pronoun referent.
func (p *Parser) Referent() string {
	return p.referent
}

// Parse converts one raw command string into a ParsedCommand.
// Parsing the same input with the same parser context always yields
// the same result.
func (p *Parser) Parse(raw string) types.ParsedCommand {
	cmd := types.ParsedCommand{Raw: raw}

	if strings.TrimSpace(raw) == "" {
		cmd.Error = msgEmptyInput
		return cmd
	}

	tokens := p.tokenize(raw)
	cmd.Tokens = tokens
	if len(tokens) == 0 {
		cmd.Error = msgEmptyInput
		return cmd
	}

	// Bare pronoun: "it" → examine the tracked referent.
	if len(tokens) == 1 && p.vocab.Pronouns[tokens[0]] {
		if p.referent == "" {
			cmd.Error = msgUnknownReferent
			return cmd
		}
		cmd.Verb = "examine"
		cmd.DirectObject = p.referent
		cmd.Valid = true
		return cmd
	}

	// Leading direction short-circuits to "go <direction>", bypassing
	// verb lookup entirely.
	if dir, ok := p.vocab.Directions[tokens[0]]; ok {
		cmd.Verb = "go"
		cmd.DirectObject = dir
		cmd.Valid = true
		return cmd
	}

	// Phrasal verbs: longest prefix first (3 tokens, then 2).
	var impliedPrep string
	for n := 3; n >= 2; n-- {
		if len(tokens) < n {
			continue
		}
		if phrase, ok := p.vocab.Phrases[strings.Join(tokens[:n], " ")]; ok {
			replacement := append([]string{phrase.Verb}, tokens[n:]...)
			tokens = replacement
			impliedPrep = phrase.Preposition
			break
		}
	}

	// Verb resolution: exact → alias → fuzzy.
	verbDef, ok := p.vocab.canonical(tokens[0])
	if !ok {
		def, score, tier := p.fuzzyVerb(tokens[0])
		switch tier {
		case fuzzyAuto:
			verbDef = def
			cmd.MatchScore = score
		case fuzzySuggest:
			verbDef = def
			cmd.Suggestion = def.Name
			cmd.SuggestionScore = score
		default:
			cmd.Error = fmt.Sprintf("I don't understand the word %q.", tokens[0])
			cmd.Suggestions = p.suggestions(tokens[0])
			cmd.RejectedConfidence = score
			return cmd
		}
	}
	cmd.Verb = verbDef.Name

	rest := p.resolvePronouns(tokens[1:])
	return p.extractObjects(cmd, verbDef, rest, impliedPrep)
}

// tokenize lowercases, collapses whitespace, and drops noise words while
// preserving preposition tokens even when the lists overlap.
func (p *Parser) tokenize(raw string) []string {
	words := strings.Fields(strings.ToLower(raw))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if p.vocab.NoiseWords[w] && !p.vocab.Prepositions[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}

// resolvePronouns substitutes the tracked referent for pronoun tokens.
func (p *Parser) resolvePronouns(tokens []string) []string {
	if p.referent == "" {
		return tokens
	}
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if p.vocab.Pronouns[t] {
			out[i] = p.referent
		} else {
			out[i] = t
		}
	}
	return out
}

// Fuzzy verb resolution tiers.
const (
	fuzzyNone = iota
	fuzzySuggest
	fuzzyAuto
)

// fuzzyVerb matches an unrecognized verb against the union of verb names
// and aliases. Above the autocorrect threshold the correction is silent;
// above only the acceptance threshold it is flagged for confirmation.
func (p *Parser) fuzzyVerb(word string) (VerbDef, float64, int) {
	match, ok := fuzzy.BestMatch(word, p.vocab.verbCandidates(), p.vocab.FuzzyThreshold)
	if !ok {
		// Report the best confidence we saw even though it failed.
		if m, found := fuzzy.BestMatch(word, p.vocab.verbCandidates(), 0); found {
			return VerbDef{}, m.Score, fuzzyNone
		}
		return VerbDef{}, 0, fuzzyNone
	}
	def, defOK := p.vocab.canonical(match.Candidate)
	if !defOK {
		return VerbDef{}, match.Score, fuzzyNone
	}
	if match.Score >= p.vocab.AutocorrectThreshold {
		return def, match.Score, fuzzyAuto
	}
	return def, match.Score, fuzzySuggest
}

// suggestions returns up to MaxSuggestions candidate verbs for an
// unrecognized word.
func (p *Parser) suggestions(word string) []string {
	limit := p.vocab.MaxSuggestions
	if limit <= 0 {
		limit = 3
	}
	matches := fuzzy.Matches(word, p.vocab.verbCandidates(), 0.4, limit)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		name := m.Candidate
		if canon, ok := p.vocab.Aliases[name]; ok {
			name = canon
		}
		// Skip duplicates introduced by alias canonicalization.
		dup := false
		for _, existing := range out {
			if existing == name {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, name)
		}
	}
	return out
}

// extractObjects splits the remaining tokens into direct object,
// preposition, and indirect object.
func (p *Parser) extractObjects(cmd types.ParsedCommand, verb VerbDef, rest []string, impliedPrep string) types.ParsedCommand {
	prepIdx := -1
	for i, t := range rest {
		if p.vocab.Prepositions[t] {
			prepIdx = i
			break
		}
	}

	if prepIdx < 0 {
		if len(rest) == 0 && verb.RequiresObject {
			cmd.Error = fmt.Sprintf("What do you want to %s?", verb.Name)
			return cmd
		}
		cmd.DirectObject = strings.Join(rest, " ")
		cmd.Preposition = impliedPrep
		cmd.Valid = true
		return cmd
	}

	if !verb.AllowsIndirect {
		cmd.Error = fmt.Sprintf("You can't use %q with %q.", rest[prepIdx], verb.Name)
		return cmd
	}

	direct := strings.Join(rest[:prepIdx], " ")
	indirect := strings.Join(rest[prepIdx+1:], " ")
	prep := rest[prepIdx]

	if direct == "" {
		cmd.Error = fmt.Sprintf("What do you want to %s %s?", verb.Name, prep)
		return cmd
	}
	if indirect == "" {
		cmd.Error = fmt.Sprintf("What do you want to %s %s %s?", verb.Name, direct, prep)
		return cmd
	}

	cmd.DirectObject = direct
	cmd.Preposition = prep
	cmd.IndirectObject = indirect
	cmd.Valid = true
	return cmd
}
