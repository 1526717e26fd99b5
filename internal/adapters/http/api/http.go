// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	repository "github.com/JavaDevVictoria/mentormatch/internal/adapters/repository"
	service "github.com/JavaDevVictoria/mentormatch/internal/app"
	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	RegisterMentor(ctx context.Context, name, email string, expertise []string, maxMentees int) (*model.Mentor, error)
	RegisterMentee(ctx context.Context, name, email string, goals []string, level string) (*model.Mentee, error)

	Mentors(ctx context.Context) []*model.Mentor
	Mentees(ctx context.Context) []*model.Mentee
	Matches(ctx context.Context) []*model.Match
	ActiveMatches(ctx context.Context) []*model.Match

	MentorByID(ctx context.Context, id string) (*model.Mentor, error)
	MenteeByID(ctx context.Context, id string) (*model.Mentee, error)
	MatchByID(ctx context.Context, id string) (*model.Match, error)
	FindMentorByName(ctx context.Context, name string) (*model.Mentor, error)
	FindMenteeByName(ctx context.Context, name string) (*model.Mentee, error)

	MatchesForMentee(ctx context.Context, menteeID string) ([]*model.Match, error)
	MatchesForMentor(ctx context.Context, mentorID string) ([]*model.Match, error)

	CreateMatch(ctx context.Context, mentorID, menteeID string) (*model.Match, error)
	Unmatch(ctx context.Context, matchID string) error
	CompleteMatch(ctx context.Context, matchID string) error
	Rematch(ctx context.Context, menteeID, newMentorID string) (*model.Match, error)
}

// Server wires HTTP routes for the business API.
type Server struct {
	mentorsHandler *MentorsHandler
	menteesHandler *MenteesHandler
	matchesHandler *MatchesHandler
	exportHandler  *ExportHandler
	statsHandler   *StatsHandler
	healthHandler  *HealthHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		mentorsHandler: NewMentorsHandler(deps),
		menteesHandler: NewMenteesHandler(deps),
		matchesHandler: NewMatchesHandler(deps),
		exportHandler:  NewExportHandler(deps),
		statsHandler:   NewStatsHandler(statsProvider),
		healthHandler:  NewHealthHandler(),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/export", MetricsMiddleware(s.exportHandler.HandleExport, "export"))
	mux.HandleFunc("/mentors", MetricsMiddleware(s.mentorsHandler.Handle, "mentors"))
	mux.HandleFunc("/mentors/", MetricsMiddleware(s.mentorsHandler.Handle, "mentors"))
	mux.HandleFunc("/mentees", MetricsMiddleware(s.menteesHandler.Handle, "mentees"))
	mux.HandleFunc("/mentees/", MetricsMiddleware(s.menteesHandler.Handle, "mentees"))
	mux.HandleFunc("/matches", MetricsMiddleware(s.matchesHandler.Handle, "matches"))
	mux.HandleFunc("/matches/", MetricsMiddleware(s.matchesHandler.Handle, "matches"))
}

// mentorResponse mirrors the JSON shape of a mentor.
type mentorResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Expertise      []string `json:"expertise"`
	MaxMentees     int      `json:"max_mentees"`
	CurrentMentees int      `json:"current_mentees"`
	CanAcceptMore  bool     `json:"can_accept_more"`
}

func toMentorResponse(m *model.Mentor) mentorResponse {
	return mentorResponse{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		Expertise:      m.Expertise,
		MaxMentees:     m.MaxMentees,
		CurrentMentees: m.CurrentMentees,
		CanAcceptMore:  m.CanAcceptMoreMentees(),
	}
}

// menteeResponse mirrors the JSON shape of a mentee.
type menteeResponse struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Goals           []string `json:"goals"`
	ExperienceLevel string   `json:"experience_level"`
	Matched         bool     `json:"matched"`
}

func toMenteeResponse(m *model.Mentee) menteeResponse {
	return menteeResponse{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Goals:           m.Goals,
		ExperienceLevel: string(m.ExperienceLevel),
		Matched:         m.Matched,
	}
}

// matchResponse mirrors the JSON shape of a match.
type matchResponse struct {
	ID            string    `json:"id"`
	MentorID      string    `json:"mentor_id"`
	MentorName    string    `json:"mentor_name"`
	MenteeID      string    `json:"mentee_id"`
	MenteeName    string    `json:"mentee_name"`
	MatchedSkills []string  `json:"matched_skills"`
	Score         float64   `json:"score"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func toMatchResponse(m *model.Match) matchResponse {
	return matchResponse{
		ID:            m.ID,
		MentorID:      m.MentorID,
		MentorName:    m.MentorName,
		MenteeID:      m.MenteeID,
		MenteeName:    m.MenteeName,
		MatchedSkills: m.MatchedSkills,
		Score:         m.Score,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}

func toMatchResponses(matches []*model.Match) []matchResponse {
	out := make([]matchResponse, len(matches))
	for i, m := range matches {
		out[i] = toMatchResponse(m)
	}
	return out
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// writeServiceError translates core errors to HTTP statuses: absent entities
// are 404, registration conflicts and lifecycle rejections are 409, bad
// input is 400, everything else is 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "duplicate_email", err)
	case errors.Is(err, model.ErrAlreadyActive), errors.Is(err, model.ErrTerminalState):
		writeError(w, http.StatusConflict, "lifecycle_conflict", err)
	case errors.Is(err, service.ErrInvalidLevel), errors.Is(err, service.ErrCapacityLimit):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}

// pathSuffix extracts the remainder of the URL path after prefix, or "" when
// the path is exactly the prefix without the trailing slash.
func pathSuffix(r *http.Request, prefix string) string {
	return strings.Trim(strings.TrimPrefix(r.URL.Path, prefix), "/")
}
