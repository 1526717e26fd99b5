package repository

import "github.com/JavaDevVictoria/mentormatch/internal/domain/model"

// Option applies a configuration option to the MemStore.
type Option func(*MemStore)

// WithInitialCapacity preallocates the entity slices for an expected
// directory size.
func WithInitialCapacity(n int) Option {
	return func(s *MemStore) {
		if n > 0 {
			s.mentors = make([]*model.Mentor, 0, n)
			s.mentees = make([]*model.Mentee, 0, n)
			s.matches = make([]*model.Match, 0, n)
		}
	}
}
