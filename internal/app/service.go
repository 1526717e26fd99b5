// Package service provides the core business service that implements the
// dependencies required by the HTTP API: registration, candidate ranking,
// and the match lifecycle orchestration.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	repository "github.com/JavaDevVictoria/mentormatch/internal/adapters/repository"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/dedupe"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/ranking"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/scoring"
	"github.com/JavaDevVictoria/mentormatch/pkg/logger"
	"github.com/JavaDevVictoria/mentormatch/pkg/metrics"
)

// Service owns the matching directory. All mutating operations (register,
// create match, unmatch, complete, rematch) are serialized behind one mutex;
// ranking and listing queries take the read side, so they never observe the
// half-applied middle of a rematch.
type Service struct {
	mu sync.RWMutex

	store   repository.Store
	scorer  scoring.Scorer
	ranker  *ranking.Ranker
	deduper dedupe.Deduper

	// Configuration
	defaultMaxMentees int
	maxMenteesLimit   int
	defaultLevel      model.ExperienceLevel

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStore sets the directory store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithScorer sets the skill scorer used for match creation and ranking.
func WithScorer(scorer scoring.Scorer) Option {
	return func(s *Service) {
		if scorer != nil {
			s.scorer = scorer
		}
	}
}

// WithDeduper sets the registration email guard.
func WithDeduper(d dedupe.Deduper) Option {
	return func(s *Service) {
		if d != nil {
			s.deduper = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDefaultMaxMentees sets the capacity used when a mentor registration
// does not specify one.
func WithDefaultMaxMentees(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.defaultMaxMentees = n
		}
	}
}

// WithMaxMenteesLimit caps the capacity a registration may request.
func WithMaxMenteesLimit(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.maxMenteesLimit = n
		}
	}
}

// WithDefaultExperienceLevel sets the level used when a mentee registration
// does not specify one.
func WithDefaultExperienceLevel(level model.ExperienceLevel) Option {
	return func(s *Service) {
		if level.Valid() {
			s.defaultLevel = level
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		defaultMaxMentees: model.DefaultMaxMentees,
		maxMenteesLimit:   10,
		defaultLevel:      model.DefaultExperienceLevel,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.store == nil {
		s.store = repository.NewMemStore()
	}
	if s.scorer == nil {
		s.scorer = scoring.NewLexicalScorer()
	}
	if s.deduper == nil {
		s.deduper = dedupe.NewInMemoryDeduper()
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("service")
	}
	s.ranker = ranking.New(s.scorer)

	return s
}

// RegisterMentor normalizes the expertise list, filters blanks, and appends
// a new mentor to the directory. A zero maxMentees takes the configured
// default; emails are registration keys and may not repeat.
func (s *Service) RegisterMentor(ctx context.Context, name, email string, expertise []string, maxMentees int) (*model.Mentor, error) {
	if maxMentees <= 0 {
		maxMentees = s.defaultMaxMentees
	}
	if maxMentees > s.maxMenteesLimit {
		return nil, fmt.Errorf("register mentor %q: %w (max %d)", name, ErrCapacityLimit, s.maxMenteesLimit)
	}

	if s.deduper.SeenAndRecord(ctx, email) {
		metrics.RecordDuplicateRegistration()
		return nil, fmt.Errorf("register mentor %q: %w", name, ErrDuplicateEmail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mentor := model.NewMentor(name, email, expertise, maxMentees)
	if err := s.store.AddMentor(ctx, mentor); err != nil {
		// Roll back the email reservation so the caller may retry.
		s.deduper.Unrecord(ctx, email)
		return nil, fmt.Errorf("register mentor %q: %w", name, err)
	}

	metrics.RecordMentorRegistered()
	s.logger.Info(ctx, "mentor registered",
		logger.String("id", mentor.ID),
		logger.String("name", mentor.Name),
		logger.Int("maxMentees", mentor.MaxMentees),
		logger.Int("expertiseAreas", len(mentor.Expertise)),
	)
	return mentor, nil
}

// RegisterMentee normalizes the goal list, filters blanks, and appends a new
// mentee. An empty level takes the configured default; an unrecognized one
// is rejected.
func (s *Service) RegisterMentee(ctx context.Context, name, email string, goals []string, level string) (*model.Mentee, error) {
	lvl := s.defaultLevel
	if strings.TrimSpace(level) != "" {
		lvl = model.ExperienceLevel(strings.ToLower(strings.TrimSpace(level)))
		if !lvl.Valid() {
			return nil, fmt.Errorf("register mentee %q: level %q: %w", name, level, ErrInvalidLevel)
		}
	}

	if s.deduper.SeenAndRecord(ctx, email) {
		metrics.RecordDuplicateRegistration()
		return nil, fmt.Errorf("register mentee %q: %w", name, ErrDuplicateEmail)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	mentee := model.NewMentee(name, email, goals, lvl)
	if err := s.store.AddMentee(ctx, mentee); err != nil {
		s.deduper.Unrecord(ctx, email)
		return nil, fmt.Errorf("register mentee %q: %w", name, err)
	}

	metrics.RecordMenteeRegistered()
	s.logger.Info(ctx, "mentee registered",
		logger.String("id", mentee.ID),
		logger.String("name", mentee.Name),
		logger.String("level", string(mentee.ExperienceLevel)),
		logger.Int("goals", len(mentee.Goals)),
	)
	return mentee, nil
}

// Mentors lists all mentors in registration order.
func (s *Service) Mentors(ctx context.Context) []*model.Mentor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Mentors(ctx)
}

// Mentees lists all mentees in registration order.
func (s *Service) Mentees(ctx context.Context) []*model.Mentee {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Mentees(ctx)
}

// Matches lists all matches in creation order.
func (s *Service) Matches(ctx context.Context) []*model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.Matches(ctx)
}

// ActiveMatches lists matches currently ACTIVE.
func (s *Service) ActiveMatches(ctx context.Context) []*model.Match {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MatchesByStatus(ctx, model.StatusActive)
}

// MentorByID resolves a mentor id.
func (s *Service) MentorByID(ctx context.Context, id string) (*model.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MentorByID(ctx, id)
}

// MenteeByID resolves a mentee id.
func (s *Service) MenteeByID(ctx context.Context, id string) (*model.Mentee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MenteeByID(ctx, id)
}

// MatchByID resolves a match id.
func (s *Service) MatchByID(ctx context.Context, id string) (*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MatchByID(ctx, id)
}

// FindMentorByName returns the first registered mentor with the given name,
// compared case-insensitively.
func (s *Service) FindMentorByName(ctx context.Context, name string) (*model.Mentor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MentorByName(ctx, name)
}

// FindMenteeByName returns the first registered mentee with the given name,
// compared case-insensitively.
func (s *Service) FindMenteeByName(ctx context.Context, name string) (*model.Mentee, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.store.MenteeByName(ctx, name)
}

// MatchesForMentee ranks candidate mentors for a mentee, best score first.
// The query is read-only: no occupancy or matched flag changes.
func (s *Service) MatchesForMentee(ctx context.Context, menteeID string) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentee, err := s.store.MenteeByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}
	metrics.RecordRankingQuery()
	return s.ranker.ForMentee(mentee, s.store.Mentors(ctx)), nil
}

// MatchesForMentor ranks candidate mentees for a mentor, best score first.
func (s *Service) MatchesForMentor(ctx context.Context, mentorID string) ([]*model.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	mentor, err := s.store.MentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	metrics.RecordRankingQuery()
	return s.ranker.ForMentor(mentor, s.store.Mentees(ctx)), nil
}

// CreateMatch scores the pair, creates the match, activates it, and stores
// it. It does not re-check mentor capacity or the mentee's matched flag:
// callers working from ranker output have already filtered, and operators
// may force a pairing past capacity.
func (s *Service) CreateMatch(ctx context.Context, mentorID, menteeID string) (*model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.createMatchLocked(ctx, mentorID, menteeID)
}

func (s *Service) createMatchLocked(ctx context.Context, mentorID, menteeID string) (*model.Match, error) {
	mentor, err := s.store.MentorByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	mentee, err := s.store.MenteeByID(ctx, menteeID)
	if err != nil {
		return nil, err
	}

	res := s.scorer.Score(mentor.Expertise, mentee.Goals)
	match := model.NewMatch(mentor, mentee, res.MatchedGoals, res.Score)

	effect, err := match.Activate()
	if err != nil {
		// Unreachable for a fresh PENDING match, but the rejection rule is
		// enforced uniformly.
		metrics.RecordLifecycleRejection()
		return nil, err
	}
	s.applyEffect(ctx, effect, match)

	if err := s.store.AddMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}

	metrics.RecordMatchCreated()
	s.logger.Info(ctx, "match created",
		logger.String("id", match.ID),
		logger.String("mentor", match.MentorName),
		logger.String("mentee", match.MenteeName),
		logger.Float64("score", match.Score),
	)
	return match, nil
}

// Unmatch cancels a match. Occupancy is released only if the match was
// ACTIVE; cancelling an already-terminal match is rejected.
func (s *Service) Unmatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.unmatchLocked(ctx, matchID)
}

func (s *Service) unmatchLocked(ctx context.Context, matchID string) error {
	match, err := s.store.MatchByID(ctx, matchID)
	if err != nil {
		return err
	}

	effect, err := match.Cancel()
	if err != nil {
		metrics.RecordLifecycleRejection()
		return err
	}
	s.applyEffect(ctx, effect, match)

	metrics.RecordMatchCancelled()
	s.logger.Info(ctx, "match cancelled",
		logger.String("id", match.ID),
		logger.String("mentor", match.MentorName),
		logger.String("mentee", match.MenteeName),
	)
	return nil
}

// CompleteMatch marks a mentorship as successfully finished, with the same
// occupancy rule as Unmatch.
func (s *Service) CompleteMatch(ctx context.Context, matchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	match, err := s.store.MatchByID(ctx, matchID)
	if err != nil {
		return err
	}

	effect, err := match.Complete()
	if err != nil {
		metrics.RecordLifecycleRejection()
		return err
	}
	s.applyEffect(ctx, effect, match)

	metrics.RecordMatchCompleted()
	s.logger.Info(ctx, "match completed",
		logger.String("id", match.ID),
		logger.String("mentor", match.MentorName),
		logger.String("mentee", match.MenteeName),
	)
	return nil
}

// Rematch replaces a mentee's current mentor: the active match (if any) is
// cancelled and a new match with newMentor is created. Both steps run under
// one critical section, so no reader observes the mentee unmatched in
// between.
func (s *Service) Rematch(ctx context.Context, menteeID, newMentorID string) (*model.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Resolve the new mentor before touching the existing match, so a
	// rematch naming an unknown mentor leaves the current pairing intact.
	if _, err := s.store.MentorByID(ctx, newMentorID); err != nil {
		return nil, fmt.Errorf("rematch mentee %s: %w", menteeID, err)
	}

	current, err := s.store.ActiveMatchForMentee(ctx, menteeID)
	switch {
	case err == nil:
		if err := s.unmatchLocked(ctx, current.ID); err != nil {
			return nil, fmt.Errorf("rematch mentee %s: %w", menteeID, err)
		}
	case errors.Is(err, repository.ErrNotFound):
		// No active match to replace; rematch degrades to a plain create.
	default:
		return nil, fmt.Errorf("rematch mentee %s: %w", menteeID, err)
	}

	match, err := s.createMatchLocked(ctx, newMentorID, menteeID)
	if err != nil {
		return nil, fmt.Errorf("rematch mentee %s: %w", menteeID, err)
	}

	metrics.RecordRematch()
	return match, nil
}

// applyEffect applies a lifecycle occupancy command to the match's mentor
// and mentee. Missing entities are logged and skipped; the directory never
// deletes an entity that an active match still references, so this only
// happens on misuse.
func (s *Service) applyEffect(ctx context.Context, effect model.Effect, match *model.Match) {
	if effect == model.EffectNone {
		return
	}

	mentor, err := s.store.MentorByID(ctx, match.MentorID)
	if err != nil {
		s.logger.Warn(ctx, "lifecycle effect on unknown mentor",
			logger.String("matchID", match.ID), logger.String("mentorID", match.MentorID))
	}
	mentee, err := s.store.MenteeByID(ctx, match.MenteeID)
	if err != nil {
		s.logger.Warn(ctx, "lifecycle effect on unknown mentee",
			logger.String("matchID", match.ID), logger.String("menteeID", match.MenteeID))
	}

	switch effect {
	case model.EffectOccupy:
		if mentor != nil {
			mentor.Occupy()
		}
		if mentee != nil {
			mentee.Matched = true
		}
	case model.EffectRelease:
		if mentor != nil {
			mentor.Release()
		}
		if mentee != nil {
			mentee.Matched = false
		}
	}
}

// GetStats returns service statistics for monitoring, mirroring the shape
// exposed on /stats.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ctx := context.Background()
	mentors := s.store.Mentors(ctx)
	mentees := s.store.Mentees(ctx)
	active := s.store.MatchesByStatus(ctx, model.StatusActive)

	available := 0
	for _, m := range mentors {
		if m.CanAcceptMoreMentees() {
			available++
		}
	}
	unmatched := 0
	for _, m := range mentees {
		if !m.Matched {
			unmatched++
		}
	}

	metrics.UpdateActiveMatches(len(active))

	return map[string]interface{}{
		"totalMentors":     len(mentors),
		"totalMentees":     len(mentees),
		"totalMatches":     len(s.store.Matches(ctx)),
		"activeMatches":    len(active),
		"availableMentors": available,
		"unmatchedMentees": unmatched,
	}
}
