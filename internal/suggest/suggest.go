// SPDX-License-Identifier: MPL-2.0

// Package suggest ranks near-miss item names so that a mistyped start/goal
// name can be answered with a short "did you mean" list instead of a bare
// rejection.
package suggest

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type scored struct {
	name  string
	score float64
}

// Closest returns up to max candidate names ranked by similarity to input.
// Matching is case-insensitive: an exact-but-for-case hit scores highest,
// then prefix matches, then names within a length-scaled edit distance.
// Candidates beyond the distance allowance are dropped entirely.
func Closest(input string, candidates []string, max int) []string {
	if max <= 0 || input == "" {
		return nil
	}
	needle := strings.ToLower(input)

	results := make([]scored, 0, len(candidates))
	for _, cand := range candidates {
		lower := strings.ToLower(cand)
		var score float64
		switch {
		case lower == needle:
			score = 1.0
		case strings.HasPrefix(lower, needle) && len(needle) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(needle, lower)
			if dist > limit(len(lower)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		results = append(results, scored{name: cand, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].name < results[j].name
		}
		return results[i].score > results[j].score
	})

	if len(results) > max {
		results = results[:max]
	}
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.name
	}
	return names
}

// limit scales the allowed edit distance with the candidate's length, so
// short names don't match everything.
func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
