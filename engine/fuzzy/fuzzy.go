// Package fuzzy scores string similarity for verb autocorrect and object
// disambiguation. Matching is case-insensitive and biased toward substring
// hits over plain edit-distance hits.
package fuzzy

import (
	"sort"
	"strings"
)

// Match is a scored candidate.
type Match struct {
	Candidate string
	Score     float64
}

// Distance computes the Levenshtein edit distance between a and b.
func Distance(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// Similarity returns 1 - distance/max(len). Equal strings score 1.0;
// when exactly one string is empty the score is 0.0.
func Similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la := len([]rune(a))
	lb := len([]rune(b))
	if la == 0 || lb == 0 {
		return 0.0
	}
	longest := la
	if lb > longest {
		longest = lb
	}
	return 1.0 - float64(Distance(a, b))/float64(longest)
}

// score rates input against a single candidate, case-insensitively.
// Exact match scores 1.0; substring containment scores in [0.85, 1.0]
// proportional to the length ratio; otherwise plain similarity.
func score(input, candidate string) float64 {
	in := strings.ToLower(input)
	cand := strings.ToLower(candidate)

	if in == cand {
		return 1.0
	}
	if in != "" && cand != "" && (strings.Contains(cand, in) || strings.Contains(in, cand)) {
		shorter := len(in)
		longer := len(cand)
		if shorter > longer {
			shorter, longer = longer, shorter
		}
		ratio := float64(shorter) / float64(longer)
		return 0.85 + 0.15*ratio
	}
	return Similarity(in, cand)
}

// BestMatch returns the highest-scoring candidate at or above threshold.
// The second return is false when nothing qualifies.
func BestMatch(input string, candidates []string, threshold float64) (Match, bool) {
	best := Match{Score: -1}
	for _, cand := range candidates {
		s := score(input, cand)
		if s > best.Score {
			best = Match{Candidate: cand, Score: s}
		}
	}
	if best.Score < threshold || best.Candidate == "" {
		return Match{}, false
	}
	return best, true
}

// Matches returns up to limit candidates at or above threshold,
// sorted descending by score.
func Matches(input string, candidates []string, threshold float64, limit int) []Match {
	var out []Match
	for _, cand := range candidates {
		if s := score(input, cand); s >= threshold {
			out = append(out, Match{Candidate: cand, Score: s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
