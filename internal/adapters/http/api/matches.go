package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
)

// MatchDirectory is the subset of the service the match handlers need.
type MatchDirectory interface {
	Matches(ctx context.Context) []*model.Match
	ActiveMatches(ctx context.Context) []*model.Match
	MatchByID(ctx context.Context, id string) (*model.Match, error)
	CreateMatch(ctx context.Context, mentorID, menteeID string) (*model.Match, error)
	Unmatch(ctx context.Context, matchID string) error
	CompleteMatch(ctx context.Context, matchID string) error
	Rematch(ctx context.Context, menteeID, newMentorID string) (*model.Match, error)
}

// MatchesHandler serves match creation and lifecycle routes.
type MatchesHandler struct {
	directory MatchDirectory
}

// NewMatchesHandler creates a new matches handler.
func NewMatchesHandler(directory MatchDirectory) *MatchesHandler {
	return &MatchesHandler{directory: directory}
}

type createMatchRequest struct {
	MentorID string `json:"mentor_id"`
	MenteeID string `json:"mentee_id"`
}

func (r *createMatchRequest) validate() error {
	if strings.TrimSpace(r.MentorID) == "" {
		return errMissingField("mentor_id")
	}
	if strings.TrimSpace(r.MenteeID) == "" {
		return errMissingField("mentee_id")
	}
	return nil
}

type rematchRequest struct {
	MenteeID    string `json:"mentee_id"`
	NewMentorID string `json:"new_mentor_id"`
}

func (r *rematchRequest) validate() error {
	if strings.TrimSpace(r.MenteeID) == "" {
		return errMissingField("mentee_id")
	}
	if strings.TrimSpace(r.NewMentorID) == "" {
		return errMissingField("new_mentor_id")
	}
	return nil
}

// Handle dispatches match routes:
//
//	POST /matches               create and activate a match
//	GET  /matches               list matches (?status=active filters)
//	GET  /matches/{id}          fetch one match
//	POST /matches/{id}/cancel   cancel an active match
//	POST /matches/{id}/complete complete an active match
//	POST /matches/rematch       move a mentee to a different mentor
func (h *MatchesHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := pathSuffix(r, "/matches")

	switch {
	case rest == "" && r.Method == http.MethodPost:
		h.create(w, r)
	case rest == "" && r.Method == http.MethodGet:
		h.list(w, r)
	case rest == "rematch" && r.Method == http.MethodPost:
		h.rematch(w, r)
	case strings.HasSuffix(rest, "/cancel") && r.Method == http.MethodPost:
		h.cancel(w, r, strings.TrimSuffix(rest, "/cancel"))
	case strings.HasSuffix(rest, "/complete") && r.Method == http.MethodPost:
		h.complete(w, r, strings.TrimSuffix(rest, "/complete"))
	case rest != "" && r.Method == http.MethodGet:
		h.get(w, r, rest)
	default:
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
	}
}

func (h *MatchesHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createMatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	match, err := h.directory.CreateMatch(r.Context(), req.MentorID, req.MenteeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMatchResponse(match))
}

func (h *MatchesHandler) list(w http.ResponseWriter, r *http.Request) {
	var matches []*model.Match
	if r.URL.Query().Get("status") == "active" {
		matches = h.directory.ActiveMatches(r.Context())
	} else {
		matches = h.directory.Matches(r.Context())
	}
	writeJSON(w, http.StatusOK, toMatchResponses(matches))
}

func (h *MatchesHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	match, err := h.directory.MatchByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func (h *MatchesHandler) cancel(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.directory.Unmatch(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	match, err := h.directory.MatchByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func (h *MatchesHandler) complete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.directory.CompleteMatch(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	match, err := h.directory.MatchByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(match))
}

func (h *MatchesHandler) rematch(w http.ResponseWriter, r *http.Request) {
	var req rematchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", ErrBadRequest)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	match, err := h.directory.Rematch(r.Context(), req.MenteeID, req.NewMentorID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMatchResponse(match))
}
