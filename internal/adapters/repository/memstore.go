package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
	"github.com/JavaDevVictoria/mentormatch/pkg/metrics"
)

// MemStore is the in-memory Store implementation. Entities stay in
// registration order in slices; index maps provide id lookups. Reads return
// slice snapshots so callers can iterate without holding store state, but
// the pointed-to entities are shared and mutated by lifecycle effects, so
// concurrent hosts must serialize mutations against reads at a higher level.
type MemStore struct {
	mu sync.RWMutex

	mentors []*model.Mentor
	mentees []*model.Mentee
	matches []*model.Match

	mentorIndex map[string]*model.Mentor
	menteeIndex map[string]*model.Mentee
	matchIndex  map[string]*model.Match
}

// NewMemStore creates an empty in-memory store with configuration options.
func NewMemStore(opts ...Option) *MemStore {
	s := &MemStore{
		mentorIndex: make(map[string]*model.Mentor),
		menteeIndex: make(map[string]*model.Mentee),
		matchIndex:  make(map[string]*model.Match),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddMentor appends a mentor in registration order.
func (s *MemStore) AddMentor(_ context.Context, mentor *model.Mentor) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.mentorIndex[mentor.ID]; exists {
		return fmt.Errorf("add mentor %s: %w", mentor.ID, ErrDuplicateID)
	}
	s.mentors = append(s.mentors, mentor)
	s.mentorIndex[mentor.ID] = mentor
	metrics.UpdateTotalMentors(len(s.mentors))
	return nil
}

// AddMentee appends a mentee in registration order.
func (s *MemStore) AddMentee(_ context.Context, mentee *model.Mentee) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.menteeIndex[mentee.ID]; exists {
		return fmt.Errorf("add mentee %s: %w", mentee.ID, ErrDuplicateID)
	}
	s.mentees = append(s.mentees, mentee)
	s.menteeIndex[mentee.ID] = mentee
	metrics.UpdateTotalMentees(len(s.mentees))
	return nil
}

// AddMatch appends a match in creation order.
func (s *MemStore) AddMatch(_ context.Context, match *model.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.matchIndex[match.ID]; exists {
		return fmt.Errorf("add match %s: %w", match.ID, ErrDuplicateID)
	}
	s.matches = append(s.matches, match)
	s.matchIndex[match.ID] = match
	metrics.UpdateTotalMatches(len(s.matches))
	return nil
}

// MentorByID looks up a mentor by id.
func (s *MemStore) MentorByID(_ context.Context, id string) (*model.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentor, ok := s.mentorIndex[id]
	if !ok {
		return nil, fmt.Errorf("mentor %s: %w", id, ErrNotFound)
	}
	return mentor, nil
}

// MenteeByID looks up a mentee by id.
func (s *MemStore) MenteeByID(_ context.Context, id string) (*model.Mentee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentee, ok := s.menteeIndex[id]
	if !ok {
		return nil, fmt.Errorf("mentee %s: %w", id, ErrNotFound)
	}
	return mentee, nil
}

// MatchByID looks up a match by id.
func (s *MemStore) MatchByID(_ context.Context, id string) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	match, ok := s.matchIndex[id]
	if !ok {
		return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	return match, nil
}

// MentorByName returns the first registered mentor whose name matches
// case-insensitively. Names are not unique; first registered wins.
func (s *MemStore) MentorByName(_ context.Context, name string) (*model.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, mentor := range s.mentors {
		if strings.EqualFold(mentor.Name, name) {
			return mentor, nil
		}
	}
	return nil, fmt.Errorf("mentor named %q: %w", name, ErrNotFound)
}

// MenteeByName returns the first registered mentee whose name matches
// case-insensitively.
func (s *MemStore) MenteeByName(_ context.Context, name string) (*model.Mentee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, mentee := range s.mentees {
		if strings.EqualFold(mentee.Name, name) {
			return mentee, nil
		}
	}
	return nil, fmt.Errorf("mentee named %q: %w", name, ErrNotFound)
}

// Mentors lists all mentors in registration order.
func (s *MemStore) Mentors(_ context.Context) []*model.Mentor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Mentor(nil), s.mentors...)
}

// Mentees lists all mentees in registration order.
func (s *MemStore) Mentees(_ context.Context) []*model.Mentee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Mentee(nil), s.mentees...)
}

// Matches lists all matches in creation order.
func (s *MemStore) Matches(_ context.Context) []*model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]*model.Match(nil), s.matches...)
}

// MatchesByStatus lists matches in the given status, in creation order.
func (s *MemStore) MatchesByStatus(_ context.Context, status model.Status) []*model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Match, 0, len(s.matches))
	for _, match := range s.matches {
		if match.Status == status {
			out = append(out, match)
		}
	}
	return out
}

// ActiveMatchForMentee returns the mentee's current ACTIVE match. Per the
// mentee invariant at most one should exist; the first in creation order is
// returned.
func (s *MemStore) ActiveMatchForMentee(_ context.Context, menteeID string) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, match := range s.matches {
		if match.MenteeID == menteeID && match.Status == model.StatusActive {
			return match, nil
		}
	}
	return nil, fmt.Errorf("active match for mentee %s: %w", menteeID, ErrNotFound)
}
