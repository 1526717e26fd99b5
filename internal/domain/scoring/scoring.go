// Package scoring computes how well a mentor's expertise covers a mentee's
// learning goals.
package scoring

import (
	"github.com/JavaDevVictoria/mentormatch/internal/domain/skill"
)

// Result contains the computed score for one mentor/mentee pair.
type Result struct {
	// Score is the fraction of mentee goals the mentor can satisfy, in
	// [0.0, 1.0]. A mentee with no goals always scores 0.0.
	Score float64
	// MatchedGoals lists the satisfied goals (the mentee's wording, not the
	// mentor's), in the mentee's goal order, each at most once.
	MatchedGoals []string
}

// Scorer computes a coverage score from a mentor's expertise areas and a
// mentee's learning goals. Implementations must be pure: no mutation of
// either input and no dependence on call order.
type Scorer interface {
	Score(expertise, goals []string) Result
}

// Option applies a configuration option to the LexicalScorer.
type Option func(*LexicalScorer)

// WithRelatedFunc replaces the relatedness predicate. Intended for tests;
// the default is skill.Related.
func WithRelatedFunc(related func(a, b string) bool) Option {
	return func(s *LexicalScorer) {
		if related != nil {
			s.related = related
		}
	}
}

// LexicalScorer implements Scorer on top of the lexical skill heuristic.
type LexicalScorer struct {
	related func(a, b string) bool
}

// NewLexicalScorer creates a scorer with configuration options.
func NewLexicalScorer(opts ...Option) *LexicalScorer {
	s := &LexicalScorer{
		related: skill.Related,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Score walks the mentee's goals in order and marks a goal satisfied when
// any expertise area relates to it. Each goal counts at most once no matter
// how many expertise areas hit it, so a mentor with one broad area can still
// score 1.0. The score is |matched| / |goals|, or 0.0 for an empty goal list.
func (s *LexicalScorer) Score(expertise, goals []string) Result {
	if len(goals) == 0 {
		return Result{}
	}

	matched := make([]string, 0, len(goals))
	seen := make(map[string]struct{}, len(goals))
	for _, goal := range goals {
		if _, ok := seen[goal]; ok {
			continue
		}
		for _, area := range expertise {
			if s.related(area, goal) {
				seen[goal] = struct{}{}
				matched = append(matched, goal)
				break
			}
		}
	}

	return Result{
		Score:        float64(len(matched)) / float64(len(goals)),
		MatchedGoals: matched,
	}
}
