package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/handler"
)

func TestHealth(t *testing.T) {
	srv := handler.NewServer(nil, nil, nil, handler.Collaborators{Weather: true, Narrator: true})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status        string `json:"status"`
		Collaborators struct {
			Weather  bool `json:"weather"`
			Currency bool `json:"currency"`
			Narrator bool `json:"narrator"`
		} `json:"collaborators"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Collaborators.Weather)
	assert.False(t, resp.Collaborators.Currency)
	assert.True(t, resp.Collaborators.Narrator)
}
