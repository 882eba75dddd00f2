package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/service"
)

func exportRepo(it domain.Itinerary) *mockTripRepo {
	return &mockTripRepo{
		getByID: func(_ context.Context, id uuid.UUID) (domain.Itinerary, error) {
			if id != it.ID {
				return domain.Itinerary{}, domain.ErrNotFound
			}
			return it, nil
		},
	}
}

func TestExportService_Markdown(t *testing.T) {
	it := savedItinerary()
	svc := service.NewExportService(exportRepo(it))

	doc, err := svc.Export(context.Background(), it.ID, domain.ExportMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "itinerary-tokyo-2025-06-01.md", doc.Filename)
	assert.Equal(t, "text/markdown; charset=utf-8", doc.ContentType)

	body := string(doc.Body)
	assert.Contains(t, body, "# Travel Itinerary: Tokyo")
	assert.Contains(t, body, "**Duration:** 3 days")
	assert.Contains(t, body, "### Day 1: Culture & heritage")
	assert.Contains(t, body, "**Morning:** Visit Senso-ji temple in Asakusa")
	assert.Contains(t, body, "| **Total** | **104,136** |", "yen amounts are whole and grouped")
}

func TestExportService_Text(t *testing.T) {
	it := savedItinerary()
	svc := service.NewExportService(exportRepo(it))

	doc, err := svc.Export(context.Background(), it.ID, domain.ExportText)

	require.NoError(t, err)
	assert.Equal(t, "itinerary-tokyo-2025-06-01.txt", doc.Filename)

	body := string(doc.Body)
	assert.Contains(t, body, "TRAVEL ITINERARY: TOKYO")
	assert.Contains(t, body, "Duration:   3 days")
	assert.NotContains(t, body, "###", "text export carries no markdown syntax")
}

func TestExportService_JSON(t *testing.T) {
	it := savedItinerary()
	svc := service.NewExportService(exportRepo(it))

	doc, err := svc.Export(context.Background(), it.ID, domain.ExportJSON)

	require.NoError(t, err)
	assert.Equal(t, "application/json", doc.ContentType)

	var decoded domain.Itinerary
	require.NoError(t, json.Unmarshal(doc.Body, &decoded))
	assert.Equal(t, it.ID, decoded.ID)
	assert.Equal(t, it.Prices, decoded.Prices)
}

func TestExportService_UnsupportedFormat(t *testing.T) {
	it := savedItinerary()
	svc := service.NewExportService(exportRepo(it))

	_, err := svc.Export(context.Background(), it.ID, domain.ExportFormat("pdf"))

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestExportService_TripNotFound(t *testing.T) {
	svc := service.NewExportService(exportRepo(savedItinerary()))

	_, err := svc.Export(context.Background(), uuid.New(), domain.ExportMarkdown)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExportService_FilenameSanitized(t *testing.T) {
	it := savedItinerary()
	it.Destination = "New York"
	svc := service.NewExportService(exportRepo(it))

	doc, err := svc.Export(context.Background(), it.ID, domain.ExportMarkdown)

	require.NoError(t, err)
	assert.Equal(t, "itinerary-new-york-2025-06-01.md", doc.Filename)
}
