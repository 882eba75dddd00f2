package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/handler"
)

// mockExportServicer is a test double for handler.ExportServicer.
type mockExportServicer struct {
	export func(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error)
}

func (m *mockExportServicer) Export(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
	return m.export(ctx, id, format)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func TestExportTrip(t *testing.T) {
	id := uuid.New()
	mock := &mockExportServicer{
		export: func(ctx context.Context, gotID uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
			assert.Equal(t, id, gotID)
			assert.Equal(t, domain.ExportMarkdown, format)
			return domain.ExportDocument{
				Filename:    "itinerary-tokyo-2025-06-01.md",
				ContentType: "text/markdown; charset=utf-8",
				Body:        []byte("# Travel Itinerary: Tokyo\n"),
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/export?format=markdown", id), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, mock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/markdown; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="itinerary-tokyo-2025-06-01.md"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Body.String(), "# Travel Itinerary: Tokyo")
}

func TestExportTrip_DefaultsToMarkdown(t *testing.T) {
	var seen domain.ExportFormat
	mock := &mockExportServicer{
		export: func(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
			seen = format
			return domain.ExportDocument{ContentType: "text/markdown; charset=utf-8"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/export", uuid.New()), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, mock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.ExportMarkdown, seen)
}

func TestExportTrip_UnsupportedFormat(t *testing.T) {
	mock := &mockExportServicer{
		export: func(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
			return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w: unsupported format %q", domain.ErrValidation, format)
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/export?format=pdf", uuid.New()), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, mock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	code, _ := decodeError(t, rec.Body)
	assert.Equal(t, "validation_error", code)
}

func TestExportTrip_NotFound(t *testing.T) {
	mock := &mockExportServicer{
		export: func(ctx context.Context, id uuid.UUID, format domain.ExportFormat) (domain.ExportDocument, error) {
			return domain.ExportDocument{}, fmt.Errorf("service.ExportService.Export: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodGet, fmt.Sprintf("/api/trips/%s/export", uuid.New()), nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, mock).ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
