// Package skill provides canonicalization and relatedness checks for
// free-text skill strings (mentor expertise areas and mentee learning goals).
package skill

import "strings"

// SignificantWordLength is the minimum length a shared word must have to
// count as evidence that two skills are related. Two-letter words ("of",
// "in", "to") are too common to be meaningful.
const SignificantWordLength = 3

// Normalize returns the canonical stored form of a raw skill string:
// whitespace-trimmed and lowercased. Callers are responsible for dropping
// strings that are empty after normalization.
func Normalize(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// NormalizeAll normalizes every element of raw and filters out entries that
// are empty after trimming. Input order is preserved.
func NormalizeAll(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if n := Normalize(s); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// Related reports whether two skill strings should be considered a match.
// Inputs are re-normalized defensively. A pair is related when any of the
// following holds:
//
//  1. exact equality
//  2. substring containment in either direction
//  3. both contain a common word of length >= SignificantWordLength
//
// This is a lexical heuristic, not a semantic one: "java" is related to
// "javascript" through rule 2. That false positive is part of the contract
// and relied on by callers; do not tighten it here.
func Related(a, b string) bool {
	s1 := Normalize(a)
	s2 := Normalize(b)

	if s1 == s2 {
		return true
	}

	if strings.Contains(s1, s2) || strings.Contains(s2, s1) {
		return true
	}

	words2 := make(map[string]struct{})
	for _, w := range strings.Fields(s2) {
		words2[w] = struct{}{}
	}
	for _, w := range strings.Fields(s1) {
		if len(w) < SignificantWordLength {
			continue
		}
		if _, ok := words2[w]; ok {
			return true
		}
	}

	return false
}
