package openweather_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/openweather"
)

const forecastPayload = `{
	"list": [
		{"dt_txt": "2024-04-15 09:00:00", "main": {"temp_min": 11.2, "temp_max": 14.0}, "weather": [{"main": "Clouds"}]},
		{"dt_txt": "2024-04-15 12:00:00", "main": {"temp_min": 13.5, "temp_max": 17.8}, "weather": [{"main": "Rain"}]},
		{"dt_txt": "2024-04-15 15:00:00", "main": {"temp_min": 12.9, "temp_max": 16.1}, "weather": [{"main": "Rain"}]},
		{"dt_txt": "2024-04-16 09:00:00", "main": {"temp_min": 9.4, "temp_max": 15.3}, "weather": [{"main": "Clear"}]},
		{"dt_txt": "2024-04-16 15:00:00", "main": {"temp_min": 10.1, "temp_max": 18.6}, "weather": [{"main": "Clear"}]}
	]
}`

func testDates(start time.Time, days int) domain.TripDates {
	return domain.TripDates{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days-1),
		DurationDays: days,
	}
}

func TestClient_Forecast(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := openweather.New("test-key", nil, openweather.WithBaseURL(srv.URL))
	start := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	records, err := c.Forecast(context.Background(), "Paris", testDates(start, 2))

	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Contains(t, gotQuery, "q=Paris")
	assert.Contains(t, gotQuery, "units=metric")
	assert.Contains(t, gotQuery, "appid=test-key")

	first := records[0]
	assert.Equal(t, "2024-04-15", first.Label)
	assert.Equal(t, 11.2, first.TempMinC, "day minimum across all slots")
	assert.Equal(t, 17.8, first.TempMaxC, "day maximum across all slots")
	assert.Equal(t, "Rain", first.Condition, "two of three slots reported rain")
	assert.Contains(t, first.Tip, "waterproof")

	assert.Equal(t, "Clear", records[1].Condition)
}

func TestClient_ForecastTruncatesToCoverage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := openweather.New("test-key", nil, openweather.WithBaseURL(srv.URL))
	start := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	// A five-day trip when the payload only covers two days.
	records, err := c.Forecast(context.Background(), "Paris", testDates(start, 5))

	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestClient_ForecastNoCoverage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := openweather.New("test-key", nil, openweather.WithBaseURL(srv.URL))
	start := time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	_, err := c.Forecast(context.Background(), "Paris", testDates(start, 3))
	assert.Error(t, err)
}

func TestClient_ForecastCachesPerDestination(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(forecastPayload))
	}))
	defer srv.Close()

	c := openweather.New("test-key", nil, openweather.WithBaseURL(srv.URL))
	start := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	_, err := c.Forecast(context.Background(), "Paris", testDates(start, 2))
	require.NoError(t, err)
	_, err = c.Forecast(context.Background(), "paris", testDates(start, 1))
	require.NoError(t, err)

	assert.Equal(t, 1, calls, "second lookup is served from cache")
}

func TestClient_ForecastUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod": 401, "message": "Invalid API key"}`))
	}))
	defer srv.Close()

	c := openweather.New("bad-key", nil, openweather.WithBaseURL(srv.URL))
	start := time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC)

	_, err := c.Forecast(context.Background(), "Paris", testDates(start, 2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
