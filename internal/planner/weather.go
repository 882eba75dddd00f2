package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// ForecastProvider is the external weather collaborator. Implementations
// should honour ctx deadlines; the selector applies a short timeout and
// falls back to synthetic data on any error, so a provider failure never
// fails the whole request.
type ForecastProvider interface {
	Forecast(ctx context.Context, destination string, dates domain.TripDates) ([]domain.WeatherRecord, error)
}

// WeatherPolicy controls when a real forecast is attempted instead of a
// seasonal lookup. The near-term boundary is deliberately configurable: the
// forecast path needs BOTH a short trip and a start date close to now.
type WeatherPolicy struct {
	// HorizonDays is how far ahead a trip may start and still get a forecast.
	HorizonDays int
	// MaxTripDays is the longest trip duration eligible for a forecast.
	MaxTripDays int
	// LookupTimeout bounds a single provider call.
	LookupTimeout time.Duration
}

// DefaultWeatherPolicy matches the documented behaviour of the original
// system: forecasts for trips of at most 5 days starting within 10 days.
func DefaultWeatherPolicy() WeatherPolicy {
	return WeatherPolicy{HorizonDays: 10, MaxTripDays: 5, LookupTimeout: 5 * time.Second}
}

// WeatherSelector picks between a near-term forecast and a seasonal pattern
// for a trip. A nil provider means no forecast collaborator is configured.
type WeatherSelector struct {
	provider ForecastProvider
	policy   WeatherPolicy
	log      *slog.Logger
}

// NewWeatherSelector constructs a WeatherSelector. provider may be nil.
func NewWeatherSelector(provider ForecastProvider, policy WeatherPolicy, log *slog.Logger) *WeatherSelector {
	if policy.HorizonDays <= 0 || policy.MaxTripDays <= 0 {
		policy = DefaultWeatherPolicy()
	}
	if policy.LookupTimeout <= 0 {
		policy.LookupTimeout = DefaultWeatherPolicy().LookupTimeout
	}
	if log == nil {
		log = slog.Default()
	}
	return &WeatherSelector{provider: provider, policy: policy, log: log}
}

// Select returns weather context for the trip. Forecast mode applies only
// when the trip is short enough AND starts within the near-term horizon from
// now; otherwise the seasonal path is taken. The Mode flag always reflects
// which path produced the records.
func (s *WeatherSelector) Select(ctx context.Context, destination string, dates domain.TripDates, now time.Time) domain.WeatherInfo {
	if s.forecastEligible(dates, now) {
		return s.forecast(ctx, destination, dates)
	}
	return s.seasonal(destination, dates)
}

func (s *WeatherSelector) forecastEligible(dates domain.TripDates, now time.Time) bool {
	if dates.DurationDays > s.policy.MaxTripDays {
		return false
	}
	today := dateOnly(now)
	horizon := today.AddDate(0, 0, s.policy.HorizonDays)
	return !dates.StartDate.Before(today) && !dates.StartDate.After(horizon)
}

func (s *WeatherSelector) forecast(ctx context.Context, destination string, dates domain.TripDates) domain.WeatherInfo {
	if s.provider != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, s.policy.LookupTimeout)
		defer cancel()

		records, err := s.provider.Forecast(lookupCtx, destination, dates)
		if err == nil && len(records) > 0 {
			return domain.WeatherInfo{Mode: domain.WeatherForecast, Records: records}
		}
		if err != nil {
			s.log.Warn("forecast lookup failed, using approximate data",
				"destination", destination, "error", err)
		}
	}
	return domain.WeatherInfo{
		Mode:        domain.WeatherForecast,
		Records:     syntheticForecast(dates),
		Approximate: true,
	}
}

// syntheticForecast produces the mock daily placeholder used when the
// forecast collaborator is unavailable.
func syntheticForecast(dates domain.TripDates) []domain.WeatherRecord {
	records := make([]domain.WeatherRecord, 0, dates.DurationDays)
	for i := 0; i < dates.DurationDays; i++ {
		day := dates.StartDate.AddDate(0, 0, i)
		records = append(records, domain.WeatherRecord{
			Label:     day.Format("2006-01-02"),
			TempMinC:  22,
			TempMaxC:  28,
			Condition: "Sunny",
			Tip:       "Approximate conditions — check a live forecast closer to departure",
		})
	}
	return records
}

func (s *WeatherSelector) seasonal(destination string, dates domain.TripDates) domain.WeatherInfo {
	key := destinationKey(destination)
	month := int(dates.StartDate.Month())
	lat, knownLat := destLatitudes[key]
	if !knownLat {
		lat = defaultLatitude
	}
	sn := monthSeason(month, lat)

	pattern, curated := seasonPatternFor(key, sn)
	label := fmt.Sprintf("%s — %s", dates.StartDate.Month().String(), sn)

	return domain.WeatherInfo{
		Mode: domain.WeatherSeasonal,
		Records: []domain.WeatherRecord{{
			Label:     label,
			TempMinC:  pattern.MinC,
			TempMaxC:  pattern.MaxC,
			Condition: pattern.Condition,
			Tip:       pattern.Tip,
		}},
		Approximate: !curated,
	}
}

// seasonPatternFor resolves a seasonal pattern: curated table first, then the
// latitude-band climate heuristic. The second return reports whether the
// pattern came from a curated table.
func seasonPatternFor(key string, sn season) (seasonPattern, bool) {
	if table, ok := seasonalTables[key]; ok {
		if p, ok := table[sn]; ok {
			return p, true
		}
	}
	lat, ok := destLatitudes[key]
	if !ok {
		lat = defaultLatitude
	}
	return zonePatterns[climateZone(lat)][sn], false
}
