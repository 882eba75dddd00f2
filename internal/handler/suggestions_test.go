package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestions(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/destinations/tokyo/suggestions", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Destination string   `json:"destination"`
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "tokyo", resp.Destination)
	require.Len(t, resp.Suggestions, 5)
	assert.Contains(t, resp.Suggestions[0], "Senso-ji")
}

func TestSuggestions_UnknownDestinationFallsBack(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/destinations/atlantis/suggestions", nil)
	rec := httptest.NewRecorder()
	newHTTPHandler(nil, nil, nil).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.Suggestions)
}
