// Package openweather talks to the OpenWeather five-day forecast API and
// adapts its three-hourly slots into the planner's per-day weather records.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/planner"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5"

// forecasts change slowly; half an hour keeps repeat planning requests for
// the same destination off the API quota.
const cacheTTL = 30 * time.Minute

// Client is a ForecastProvider backed by the OpenWeather API.
type Client struct {
	apiKey  string
	baseURL string
	httpc   *http.Client
	cache   *cache.Cache
	log     *slog.Logger
}

var _ planner.ForecastProvider = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different API root. Used by tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpc = h }
}

// New constructs an OpenWeather client.
func New(apiKey string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpc:   &http.Client{Timeout: 10 * time.Second},
		cache:   cache.New(cacheTTL, 10*time.Minute),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// forecastResponse mirrors the slice of the OpenWeather payload we consume.
type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			TempMin float64 `json:"temp_min"`
			TempMax float64 `json:"temp_max"`
		} `json:"main"`
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// dayForecast is one calendar day aggregated from the three-hourly slots.
type dayForecast struct {
	Date       string
	TempMin    float64
	TempMax    float64
	Conditions []string
}

// Forecast fetches the destination's five-day forecast and returns one record
// per trip day covered by it. Days past the API window are omitted; when the
// window covers none of the trip an error is returned so the caller can fall
// back.
func (c *Client) Forecast(ctx context.Context, destination string, dates domain.TripDates) ([]domain.WeatherRecord, error) {
	days, err := c.forecastDays(ctx, destination)
	if err != nil {
		return nil, fmt.Errorf("openweather.Client.Forecast: %w", err)
	}

	byDate := lo.KeyBy(days, func(d dayForecast) string { return d.Date })

	records := make([]domain.WeatherRecord, 0, dates.DurationDays)
	for i := 0; i < dates.DurationDays; i++ {
		date := dates.StartDate.AddDate(0, 0, i).Format("2006-01-02")
		day, ok := byDate[date]
		if !ok {
			continue
		}
		condition := dominantCondition(day.Conditions)
		records = append(records, domain.WeatherRecord{
			Label:     date,
			TempMinC:  day.TempMin,
			TempMaxC:  day.TempMax,
			Condition: condition,
			Tip:       conditionTip(condition, day.TempMax),
		})
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("openweather.Client.Forecast: no forecast coverage for trip starting %s",
			dates.StartDate.Format("2006-01-02"))
	}
	return records, nil
}

func (c *Client) forecastDays(ctx context.Context, destination string) ([]dayForecast, error) {
	key := strings.ToLower(strings.TrimSpace(destination))
	if cached, ok := c.cache.Get(key); ok {
		return cached.([]dayForecast), nil
	}

	q := url.Values{}
	q.Set("q", destination)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/forecast?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	days := aggregateDays(payload)
	if len(days) == 0 {
		return nil, fmt.Errorf("empty forecast for %q", destination)
	}
	c.cache.Set(key, days, cache.DefaultExpiration)
	return days, nil
}

// aggregateDays folds the three-hourly slots into per-day min/max and a list
// of observed conditions, preserving chronological order.
func aggregateDays(payload forecastResponse) []dayForecast {
	var days []dayForecast
	index := map[string]int{}

	for _, slot := range payload.List {
		if len(slot.DtTxt) < 10 {
			continue
		}
		date := slot.DtTxt[:10]

		i, ok := index[date]
		if !ok {
			index[date] = len(days)
			days = append(days, dayForecast{
				Date:    date,
				TempMin: slot.Main.TempMin,
				TempMax: slot.Main.TempMax,
			})
			i = len(days) - 1
		}

		d := &days[i]
		if slot.Main.TempMin < d.TempMin {
			d.TempMin = slot.Main.TempMin
		}
		if slot.Main.TempMax > d.TempMax {
			d.TempMax = slot.Main.TempMax
		}
		if len(slot.Weather) > 0 {
			d.Conditions = append(d.Conditions, slot.Weather[0].Main)
		}
	}
	return days
}

// dominantCondition picks the condition reported by the most slots of the
// day. Ties resolve to the condition seen first.
func dominantCondition(conditions []string) string {
	if len(conditions) == 0 {
		return "Clear"
	}
	counts := lo.CountValues(conditions)
	best := conditions[0]
	for _, cond := range conditions {
		if counts[cond] > counts[best] {
			best = cond
		}
	}
	return best
}

func conditionTip(condition string, maxC float64) string {
	switch strings.ToLower(condition) {
	case "rain", "drizzle", "thunderstorm":
		return "Rain expected; pack a waterproof layer and plan indoor alternatives"
	case "snow":
		return "Snow expected; bring warm, waterproof footwear"
	case "clear":
		if maxC >= 28 {
			return "Hot and clear; carry water and sun protection"
		}
		return "Clear skies; a good day for outdoor plans"
	case "clouds":
		return "Overcast; comfortable for long walks"
	default:
		return "Check conditions again closer to the day"
	}
}
