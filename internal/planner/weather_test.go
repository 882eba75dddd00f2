package planner_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/planner"
)

// stubForecasts is a hand-written test double for planner.ForecastProvider.
type stubForecasts struct {
	records []domain.WeatherRecord
	err     error
	calls   int
}

func (s *stubForecasts) Forecast(_ context.Context, _ string, _ domain.TripDates) ([]domain.WeatherRecord, error) {
	s.calls++
	return s.records, s.err
}

var _ planner.ForecastProvider = (*stubForecasts)(nil)

// ---- helpers ---------------------------------------------------------------

func tripDates(start time.Time, days int) domain.TripDates {
	return domain.TripDates{
		StartDate:    start,
		EndDate:      start.AddDate(0, 0, days-1),
		DurationDays: days,
	}
}

func newSelector(p planner.ForecastProvider) *planner.WeatherSelector {
	return planner.NewWeatherSelector(p, planner.DefaultWeatherPolicy(), nil)
}

// ---- forecast path ---------------------------------------------------------

func TestWeatherSelector_ForecastForShortNearTermTrip(t *testing.T) {
	now := date(2024, time.April, 1)
	provider := &stubForecasts{records: []domain.WeatherRecord{
		{Label: "2024-04-03", TempMinC: 10, TempMaxC: 18, Condition: "Cloudy"},
	}}
	sel := newSelector(provider)

	got := sel.Select(context.Background(), "Paris", tripDates(date(2024, time.April, 3), 3), now)

	assert.Equal(t, domain.WeatherForecast, got.Mode)
	assert.False(t, got.Approximate)
	assert.Equal(t, 1, provider.calls)
	require.Len(t, got.Records, 1)
	assert.Equal(t, "Cloudy", got.Records[0].Condition)
}

func TestWeatherSelector_ProviderFailureFallsBackToApproximate(t *testing.T) {
	now := date(2024, time.April, 1)
	provider := &stubForecasts{err: errors.New("upstream 503")}
	sel := newSelector(provider)

	got := sel.Select(context.Background(), "Paris", tripDates(date(2024, time.April, 3), 3), now)

	// Still forecast mode, but tagged approximate with one synthetic
	// record per trip day.
	assert.Equal(t, domain.WeatherForecast, got.Mode)
	assert.True(t, got.Approximate)
	assert.Len(t, got.Records, 3)
}

func TestWeatherSelector_NoProviderConfigured(t *testing.T) {
	now := date(2024, time.April, 1)
	sel := newSelector(nil)

	got := sel.Select(context.Background(), "Paris", tripDates(date(2024, time.April, 3), 2), now)

	assert.Equal(t, domain.WeatherForecast, got.Mode)
	assert.True(t, got.Approximate)
	assert.Len(t, got.Records, 2)
}

// ---- seasonal path ---------------------------------------------------------

func TestWeatherSelector_LongTripIsAlwaysSeasonal(t *testing.T) {
	// 10-day trip starting tomorrow: duration alone forces seasonal mode.
	now := date(2024, time.April, 1)
	provider := &stubForecasts{records: []domain.WeatherRecord{{Label: "unused"}}}
	sel := newSelector(provider)

	got := sel.Select(context.Background(), "Tokyo", tripDates(date(2024, time.April, 2), 10), now)

	assert.Equal(t, domain.WeatherSeasonal, got.Mode)
	assert.Zero(t, provider.calls, "seasonal path must not hit the forecast collaborator")
}

func TestWeatherSelector_FarOffShortTripIsSeasonal(t *testing.T) {
	// 3-day trip starting two months out: proximity alone forces seasonal.
	now := date(2024, time.April, 1)
	sel := newSelector(&stubForecasts{})

	got := sel.Select(context.Background(), "Tokyo", tripDates(date(2024, time.June, 10), 3), now)

	assert.Equal(t, domain.WeatherSeasonal, got.Mode)
}

func TestWeatherSelector_CuratedSeasonalPattern(t *testing.T) {
	now := date(2024, time.January, 5)
	sel := newSelector(nil)

	got := sel.Select(context.Background(), "Tokyo", tripDates(date(2024, time.April, 10), 7), now)

	require.Len(t, got.Records, 1)
	assert.Equal(t, domain.WeatherSeasonal, got.Mode)
	assert.False(t, got.Approximate, "curated destinations are not approximate")
	assert.Contains(t, got.Records[0].Label, "April")
	assert.Contains(t, got.Records[0].Label, "spring")
	assert.Contains(t, got.Records[0].Condition, "cherry blossoms")
}

func TestWeatherSelector_UnknownDestinationUsesClimateZone(t *testing.T) {
	now := date(2024, time.January, 5)
	sel := newSelector(nil)

	got := sel.Select(context.Background(), "Ouagadougou", tripDates(date(2024, time.July, 10), 7), now)

	require.Len(t, got.Records, 1)
	assert.Equal(t, domain.WeatherSeasonal, got.Mode)
	assert.True(t, got.Approximate, "heuristic patterns are tagged approximate")
	assert.NotEmpty(t, got.Records[0].Condition)
}

func TestWeatherSelector_SouthernHemisphereSeasonFlip(t *testing.T) {
	// Sydney in January is summer, not winter.
	now := date(2024, time.October, 1)
	sel := newSelector(nil)

	got := sel.Select(context.Background(), "Sydney", tripDates(date(2025, time.January, 10), 7), now)

	require.Len(t, got.Records, 1)
	assert.Contains(t, got.Records[0].Label, "summer")
}

func TestWeatherSelector_HorizonBoundaryInclusive(t *testing.T) {
	now := date(2024, time.April, 1)
	provider := &stubForecasts{records: []domain.WeatherRecord{{Label: "d", Condition: "Fair"}}}
	sel := newSelector(provider)

	// Start exactly on the horizon edge (now + 10 days) still forecasts.
	onEdge := sel.Select(context.Background(), "Paris", tripDates(date(2024, time.April, 11), 2), now)
	assert.Equal(t, domain.WeatherForecast, onEdge.Mode)

	// One day past the horizon flips to seasonal.
	past := sel.Select(context.Background(), "Paris", tripDates(date(2024, time.April, 12), 2), now)
	assert.Equal(t, domain.WeatherSeasonal, past.Mode)
}
