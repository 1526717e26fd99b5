package api

import (
	"context"
	"net/http"

	"github.com/JavaDevVictoria/mentormatch/internal/domain/model"
	"github.com/JavaDevVictoria/mentormatch/internal/export"
)

// DirectoryLister provides the participants and matches included in the
// plain-text exports.
type DirectoryLister interface {
	Mentors(ctx context.Context) []*model.Mentor
	Mentees(ctx context.Context) []*model.Mentee
	Matches(ctx context.Context) []*model.Match
}

// ExportHandler renders the pipe-delimited match export and the detailed
// directory report over HTTP.
type ExportHandler struct {
	lister   DirectoryLister
	exporter *export.Exporter
}

// NewExportHandler creates a new export handler.
func NewExportHandler(lister DirectoryLister) *ExportHandler {
	return &ExportHandler{
		lister:   lister,
		exporter: export.New(),
	}
}

// HandleExport serves GET /export as text/plain. The default body is the
// pipe-delimited match list; ?format=report renders the detailed directory
// report instead.
func (h *ExportHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}

	ctx := r.Context()
	var body []byte
	switch format := r.URL.Query().Get("format"); format {
	case "", "matches":
		body = h.exporter.RenderMatches(h.lister.Matches(ctx))
	case "report":
		body = h.exporter.RenderReport(h.lister.Mentors(ctx), h.lister.Mentees(ctx), h.lister.Matches(ctx))
	default:
		writeError(w, http.StatusBadRequest, "bad_request", errUnknownFormat(format))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
