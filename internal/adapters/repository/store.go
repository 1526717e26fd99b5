// Package repository defines the directory store interface and errors. The
// store owns the canonical mentor, mentee and match collections.
package repository

import (
	"context"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

// Store provides access to the directory state. Iteration-order guarantees:
// listing methods return entities in registration (insertion) order, and the
// by-name lookups return the first registered entity whose name matches
// case-insensitively.
//
// The store does not lock across calls; callers composing multi-step
// operations (create match, rematch) are responsible for serializing them.
type Store interface {
	// AddMentor appends a mentor. Returns ErrDuplicateID if the id is taken.
	AddMentor(ctx context.Context, mentor *model.Mentor) error
	// AddMentee appends a mentee. Returns ErrDuplicateID if the id is taken.
	AddMentee(ctx context.Context, mentee *model.Mentee) error
	// AddMatch appends a match. Returns ErrDuplicateID if the id is taken.
	AddMatch(ctx context.Context, match *model.Match) error

	// MentorByID returns ErrNotFound for an unknown id.
	MentorByID(ctx context.Context, id string) (*model.Mentor, error)
	// MenteeByID returns ErrNotFound for an unknown id.
	MenteeByID(ctx context.Context, id string) (*model.Mentee, error)
	// MatchByID returns ErrNotFound for an unknown id.
	MatchByID(ctx context.Context, id string) (*model.Match, error)

	// MentorByName finds the first registered mentor with the given name,
	// compared case-insensitively. Returns ErrNotFound when absent.
	MentorByName(ctx context.Context, name string) (*model.Mentor, error)
	// MenteeByName is the mentee counterpart of MentorByName.
	MenteeByName(ctx context.Context, name string) (*model.Mentee, error)

	// Mentors lists all mentors in registration order.
	Mentors(ctx context.Context) []*model.Mentor
	// Mentees lists all mentees in registration order.
	Mentees(ctx context.Context) []*model.Mentee
	// Matches lists all matches in creation order.
	Matches(ctx context.Context) []*model.Match

	// MatchesByStatus lists matches currently in the given status, in
	// creation order.
	MatchesByStatus(ctx context.Context, status model.Status) []*model.Match

	// ActiveMatchForMentee returns the mentee's ACTIVE match, or ErrNotFound
	// when the mentee has none.
	ActiveMatchForMentee(ctx context.Context, menteeID string) (*model.Match, error)
}
