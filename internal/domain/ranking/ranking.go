// Package ranking enumerates and orders candidate matches for one side of a
// pairing. It only reads mentor/mentee state; occupancy and matched flags are
// never mutated here.
package ranking

import (
	"sort"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/scoring"
)

// Ranker produces score-ordered candidate matches.
type Ranker struct {
	scorer scoring.Scorer
}

// New creates a Ranker on top of the given scorer.
func New(scorer scoring.Scorer) *Ranker {
	return &Ranker{scorer: scorer}
}

// ForMentee scores the mentee against every mentor with spare capacity and
// returns PENDING candidate matches sorted by score, best first. Mentors at
// capacity are skipped silently; zero-score pairs are not materialized. The
// sort is stable, so equal scores keep the mentors' input order.
func (r *Ranker) ForMentee(mentee *model.Mentee, mentors []*model.Mentor) []*model.Match {
	candidates := make([]*model.Match, 0, len(mentors))
	for _, mentor := range mentors {
		if !mentor.CanAcceptMoreMentees() {
			continue
		}
		res := r.scorer.Score(mentor.Expertise, mentee.Goals)
		if res.Score > 0 {
			candidates = append(candidates, model.NewMatch(mentor, mentee, res.MatchedGoals, res.Score))
		}
	}
	sortByScore(candidates)
	return candidates
}

// ForMentor is the symmetric entry point: it scores every unmatched mentee
// against the mentor. A mentor already at capacity yields no candidates at
// all.
func (r *Ranker) ForMentor(mentor *model.Mentor, mentees []*model.Mentee) []*model.Match {
	if !mentor.CanAcceptMoreMentees() {
		return nil
	}
	candidates := make([]*model.Match, 0, len(mentees))
	for _, mentee := range mentees {
		if mentee.Matched {
			continue
		}
		res := r.scorer.Score(mentor.Expertise, mentee.Goals)
		if res.Score > 0 {
			candidates = append(candidates, model.NewMatch(mentor, mentee, res.MatchedGoals, res.Score))
		}
	}
	sortByScore(candidates)
	return candidates
}

func sortByScore(matches []*model.Match) {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
}
