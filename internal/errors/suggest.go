package errors

import (
	"fmt"
	"sort"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how different a candidate may be and still be
// offered as a suggestion.
const maxSuggestDistance = 3

// Closest returns the candidate nearest to name by edit distance, or "" if
// none is within maxSuggestDistance. Ties resolve to the lexically smallest
// candidate.
func Closest(name string, candidates []string) string {
	sorted := make([]string, len(candidates))
	copy(sorted, candidates)
	sort.Strings(sorted)

	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range sorted {
		if c == name {
			continue
		}
		if d := levenshtein.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}

// DidYouMean returns a suggestion string for a misspelled name, or "".
func DidYouMean(name string, candidates []string) string {
	if c := Closest(name, candidates); c != "" {
		return fmt.Sprintf("did you mean %q?", c)
	}
	return ""
}
