package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

// MenteeRegistry is the subset of the service the mentee handlers need.
type MenteeRegistry interface {
	RegisterMentee(ctx context.Context, name, email string, goals []string, level string) (*model.Mentee, error)
	Mentees(ctx context.Context) []*model.Mentee
	MenteeByID(ctx context.Context, id string) (*model.Mentee, error)
	FindMenteeByName(ctx context.Context, name string) (*model.Mentee, error)
	MatchesForMentee(ctx context.Context, menteeID string) ([]*model.Match, error)
}

// MenteesHandler serves mentee registration, lookup and ranking routes.
type MenteesHandler struct {
	registry MenteeRegistry
}

// NewMenteesHandler creates a new mentees handler.
func NewMenteesHandler(registry MenteeRegistry) *MenteesHandler {
	return &MenteesHandler{registry: registry}
}

type registerMenteeRequest struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Goals           []string `json:"goals"`
	ExperienceLevel string   `json:"experience_level"`
}

func (r *registerMenteeRequest) validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errMissingField("name")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errMissingField("email")
	}
	return nil
}

// Handle dispatches mentee routes:
//
//	POST /mentees              register a mentee
//	GET  /mentees              list mentees (?name= filters by exact name)
//	GET  /mentees/{id}         fetch one mentee
//	GET  /mentees/{id}/matches ranked candidate mentors for the mentee
func (h *MenteesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := pathSuffix(r, "/mentees")

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

func (h *MenteesHandler) register(w http.ResponseWriter, r *http.Request) {
	var req registerMenteeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	mentee, err := h.registry.RegisterMentee(r.Context(), req.Name, req.Email, req.Goals, req.ExperienceLevel)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMenteeResponse(mentee))
}

func (h *MenteesHandler) list(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		mentee, err := h.registry.FindMenteeByName(r.Context(), name)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, []menteeResponse{toMenteeResponse(mentee)})
		return
	}

	mentees := h.registry.Mentees(r.Context())
	out := make([]menteeResponse, len(mentees))
	for i, m := range mentees {
		out[i] = toMenteeResponse(m)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *MenteesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	mentee, err := h.registry.MenteeByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMenteeResponse(mentee))
}

func (h *MenteesHandler) rank(w http.ResponseWriter, r *http.Request, id string) {
	matches, err := h.registry.MatchesForMentee(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}
