package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

// MentorRegistry is the subset of the service the mentor handlers need.
type MentorRegistry interface {
	RegisterMentor(ctx context.Context, name, email string, expertise []string, maxMentees int) (*model.Mentor, error)
	Mentors(ctx context.Context) []*model.Mentor
	MentorByID(ctx context.Context, id string) (*model.Mentor, error)
	FindMentorByName(ctx context.Context, name string) (*model.Mentor, error)
	MatchesForMentor(ctx context.Context, mentorID string) ([]*model.Match, error)
}

// MentorsHandler serves mentor registration, lookup and ranking routes.
type MentorsHandler struct {
	registry MentorRegistry
}

// NewMentorsHandler creates a new mentors handler.
func NewMentorsHandler(registry MentorRegistry) *MentorsHandler {
	return &MentorsHandler{registry: registry}
}

type registerMentorRequest struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Expertise  []string `json:"expertise"`
	MaxMentees int      `json:"max_mentees"`
}

func (r *registerMentorRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errMissingField("name")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errMissingField("email")
	}
	return nil
}

// Handle dispatches mentor routes:
//
//	POST /mentors              register a mentor
//	GET  /mentors              list mentors (?name= filters by exact name)
//	GET  /mentors/{id}         fetch one mentor
//	GET  /mentors/{id}/matches ranked candidate matches for the mentor
func (h *MentorsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := pathSuffix(r, "/mentors")

	switch {
	case rest == "" && r.Method == http.MethodPost:
		h.register(w, r)
	case rest == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case strings.HasSuffix(rest, "/matches") && r.Method == http.MethodGet:
		h.rank(w, r, strings.TrimSuffix(rest, "/matches"))
	case rest != "" && r.Method == http.MethodGet:
		h.get(w, r, rest)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

func (h *MentorsHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerMentorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	mentor, err := h.registry.RegisterMentor(r.Context(), req.Name, req.Email, req.Expertise, req.MaxMentees)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMentorResponse(mentor))
}

func (h *MentorsHandler) list(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		mentor, err := h.registry.FindMentorByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, []mentorResponse{toMentorResponse(mentor)})
		return
	}

	mentors := h.registry.Mentors(r.Context())
	out := make([]mentorResponse, len(mentors))
	for i, m := range mentors {
		out[i] = toMentorResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MentorsHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	mentor, err := h.registry.MentorByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMentorResponse(mentor))
}

func (h *MentorsHandler) rank(w http.ResponseWriter, r *http.Request, id string) {
	matches, err := h.registry.MatchesForMentor(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}
