package handler

import (
	"fmt"
	"net/http"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// ExportTrip handles GET /api/trips/{tripID}/export?format=markdown|text|json.
// The document is served as an attachment so browsers download it.
func (s *Server) ExportTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripIDParam(w, r)
	if !ok {
		return
	}

	format := domain.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = domain.ExportMarkdown
	}

	doc, err := s.export.Export(r.Context(), id, format)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", doc.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Body)
}
