// Package model contains the mentorship domain entities and the match
// lifecycle state machine.
package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/skill"
)

// DefaultMaxMentees is the mentor capacity used when none is given.
const DefaultMaxMentees = 3

// ExperienceLevel describes how far along a mentee is.
type ExperienceLevel string

// Recognized experience levels.
const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
)

// DefaultExperienceLevel is used when a mentee registers without one.
const DefaultExperienceLevel = LevelBeginner

// Valid reports whether l is one of the recognized levels.
func (l ExperienceLevel) Valid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// Mentor offers a set of expertise areas and accepts up to MaxMentees
// concurrent mentees. CurrentMentees is mutated only by applying match
// lifecycle effects; it never goes negative and the ranker never offers a
// mentor whose count has reached capacity.
type Mentor struct {
	ID             string
	Name           string
	Email          string
	Expertise      []string // normalized, registration order, no duplicates
	MaxMentees     int
	CurrentMentees int
}

// NewMentor builds a mentor with normalized expertise. Blank and duplicate
// (by normalized value) expertise entries are dropped. A non-positive
// maxMentees falls back to DefaultMaxMentees.
func NewMentor(name, email string, expertise []string, maxMentees int) *Mentor {
	if maxMentees <= 0 {
		maxMentees = DefaultMaxMentees
	}
	return &Mentor{
		ID:         uuid.NewString(),
		Name:       name,
		Email:      email,
		Expertise:  dedupeOrdered(skill.NormalizeAll(expertise)),
		MaxMentees: maxMentees,
	}
}

// CanAcceptMoreMentees reports whether the mentor has spare capacity.
func (m *Mentor) CanAcceptMoreMentees() bool {
	return m.CurrentMentees < m.MaxMentees
}

// Occupy takes one capacity slot. It does not enforce MaxMentees: the
// create-match path deliberately trusts its callers to have filtered first.
func (m *Mentor) Occupy() {
	m.CurrentMentees++
}

// Release frees one capacity slot, clamped at zero.
func (m *Mentor) Release() {
	if m.CurrentMentees > 0 {
		m.CurrentMentees--
	}
}

// AddExpertise appends one normalized expertise area, ignoring blanks and
// duplicates by normalized value.
func (m *Mentor) AddExpertise(area string) {
	n := skill.Normalize(area)
	if n == "" {
		return
	}
	for _, e := range m.Expertise {
		if e == n {
			return
		}
	}
	m.Expertise = append(m.Expertise, n)
}

// String renders a short human-readable summary used in reports.
func (m *Mentor) String() string {
	return fmt.Sprintf("Mentor{name=%q, email=%q, expertise=%v, mentees=%d/%d}",
		m.Name, m.Email, m.Expertise, m.CurrentMentees, m.MaxMentees)
}

// Mentee seeks a set of learning goals. Matched is true exactly while one
// ACTIVE match references the mentee; it is mutated only by applying match
// lifecycle effects.
type Mentee struct {
	ID              string
	Name            string
	Email           string
	Goals           []string // normalized, registration order, no duplicates
	ExperienceLevel ExperienceLevel
	Matched         bool
}

// NewMentee builds a mentee with normalized goals. Blank and duplicate goal
// entries are dropped. An empty or unrecognized level falls back to
// DefaultExperienceLevel.
func NewMentee(name, email string, goals []string, level ExperienceLevel) *Mentee {
	if !level.Valid() {
		level = DefaultExperienceLevel
	}
	return &Mentee{
		ID:              uuid.NewString(),
		Name:            name,
		Email:           email,
		Goals:           dedupeOrdered(skill.NormalizeAll(goals)),
		ExperienceLevel: level,
	}
}

// AddGoal appends one normalized learning goal, ignoring blanks and
// duplicates by normalized value.
func (m *Mentee) AddGoal(goal string) {
	n := skill.Normalize(goal)
	if n == "" {
		return
	}
	for _, g := range m.Goals {
		if g == n {
			return
		}
	}
	m.Goals = append(m.Goals, n)
}

// String renders a short human-readable summary used in reports.
func (m *Mentee) String() string {
	return fmt.Sprintf("Mentee{name=%q, email=%q, goals=%v, level=%s, matched=%t}",
		m.Name, m.Email, m.Goals, m.ExperienceLevel, m.Matched)
}

func dedupeOrdered(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// Status is the lifecycle state of a match.
type Status string

// Lifecycle states. PENDING is the construction default; COMPLETED and
// CANCELLED are terminal.
const (
	StatusPending   Status = "PENDING"
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusCancelled Status = "CANCELLED"
)

// Terminal reports whether no further transition is allowed from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Effect is the occupancy side effect a lifecycle transition requires.
// Transitions validate and flip the status themselves but never touch the
// mentor or mentee; the caller owning the entities applies the effect, which
// keeps the match free of back-references.
type Effect int

// Occupancy effects.
const (
	// EffectNone requires no occupancy change.
	EffectNone Effect = iota
	// EffectOccupy increments the mentor's mentee count and sets the
	// mentee's matched flag.
	EffectOccupy
	// EffectRelease decrements the mentor's mentee count (clamped at zero)
	// and clears the mentee's matched flag.
	EffectRelease
)

// Match pairs one mentor with one mentee. It references the entities by id
// (names are denormalized for the export record) and is immutable after
// construction except for Status.
type Match struct {
	ID            string
	MentorID      string
	MentorName    string
	MenteeID      string
	MenteeName    string
	MatchedSkills []string // mentee goals satisfied by the mentor, goal order
	Score         float64  // in [0.0, 1.0]
	CreatedAt     time.Time
	Status        Status
}

// NewMatch constructs a PENDING match between mentor and mentee.
func NewMatch(mentor *Mentor, mentee *Mentee, matchedSkills []string, score float64) *Match {
	return &Match{
		ID:            uuid.NewString(),
		MentorID:      mentor.ID,
		MentorName:    mentor.Name,
		MenteeID:      mentee.ID,
		MenteeName:    mentee.Name,
		MatchedSkills: append([]string(nil), matchedSkills...),
		Score:         score,
		CreatedAt:     time.Now(),
		Status:        StatusPending,
	}
}

// Activate moves the match to ACTIVE and asks the caller to occupy the
// mentor/mentee. Activating an already-ACTIVE match returns ErrAlreadyActive
// rather than double-counting occupancy; terminal matches cannot be revived.
func (m *Match) Activate() (Effect, error) {
	if m.Status == StatusActive {
		return EffectNone, fmt.Errorf("activate match %s: %w", m.ID, ErrAlreadyActive)
	}
	if m.Status.Terminal() {
		return EffectNone, fmt.Errorf("activate match %s from %s: %w", m.ID, m.Status, ErrTerminalState)
	}
	m.Status = StatusActive
	return EffectOccupy, nil
}

// Cancel moves the match to CANCELLED. Occupancy is released only if the
// match was ACTIVE; cancelling a PENDING match has no side effect.
func (m *Match) Cancel() (Effect, error) {
	return m.finish(StatusCancelled)
}

// Complete moves the match to COMPLETED with the same side-effect rule as
// Cancel.
func (m *Match) Complete() (Effect, error) {
	return m.finish(StatusCompleted)
}

func (m *Match) finish(to Status) (Effect, error) {
	if m.Status.Terminal() {
		return EffectNone, fmt.Errorf("transition match %s from %s to %s: %w", m.ID, m.Status, to, ErrTerminalState)
	}
	wasActive := m.Status == StatusActive
	m.Status = to
	if wasActive {
		return EffectRelease, nil
	}
	return EffectNone, nil
}

// FileFormat renders the fixed pipe-delimited export record:
//
//	id|mentorId|mentorName|menteeId|menteeName|score|skills|status
//
// with the score at two decimal places and skills comma-joined. External
// exports depend on this shape byte-for-byte.
func (m *Match) FileFormat() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%.2f|%s|%s",
		m.ID,
		m.MentorID,
		m.MentorName,
		m.MenteeID,
		m.MenteeName,
		m.Score,
		strings.Join(m.MatchedSkills, ","),
		m.Status,
	)
}

// String renders a short human-readable summary used in reports.
func (m *Match) String() string {
	return fmt.Sprintf("Match{mentor=%q, mentee=%q, skills=%v, score=%.0f%%, status=%s}",
		m.MentorName, m.MenteeName, m.MatchedSkills, m.Score*100, m.Status)
}
