// Package domain contains the core data types for the travel planner.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (planner, repo, service, handler).
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BudgetLevel is one of the three pricing tiers a trip can be planned at.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "Budget"
	BudgetMid    BudgetLevel = "Mid-range"
	BudgetLuxury BudgetLevel = "Luxury"
)

// GroupType is the relationship category of the travelling party.
// It biases activity selection (e.g. family trips avoid nightlife).
type GroupType string

const (
	GroupSolo    GroupType = "solo"
	GroupFamily  GroupType = "family"
	GroupFriends GroupType = "friends"
	GroupFiancee GroupType = "fiancee"
)

// TripDates is the resolved, concrete date range of a trip.
// EndDate is never before StartDate and DurationDays is the inclusive number
// of calendar days, so a same-day trip has DurationDays == 1.
type TripDates struct {
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	DurationDays int       `json:"duration_days"`
}

// WeatherMode distinguishes a real (or approximated) daily forecast from a
// seasonal pattern. Downstream rendering depends on which path was taken.
type WeatherMode string

const (
	WeatherForecast WeatherMode = "forecast"
	WeatherSeasonal WeatherMode = "seasonal"
)

// WeatherRecord is one entry of a WeatherInfo: a single day in forecast mode,
// or the whole season in seasonal mode.
type WeatherRecord struct {
	Label     string  `json:"label"` // "2025-04-15" or "April — spring"
	TempMinC  float64 `json:"temp_min_c"`
	TempMaxC  float64 `json:"temp_max_c"`
	Condition string  `json:"condition"`
	Tip       string  `json:"tip,omitempty"`
}

// WeatherInfo is the weather context attached to an itinerary.
// Approximate is true when the forecast collaborator was unavailable and the
// records are synthetic placeholders rather than real forecast data.
type WeatherInfo struct {
	Mode        WeatherMode     `json:"mode"`
	Records     []WeatherRecord `json:"records"`
	Approximate bool            `json:"approximate,omitempty"`
}

// PriceBreakdown is a currency-tagged cost estimate for the whole trip.
// Total always equals the exact sum of the four categories, and every field
// is non-negative. Amounts are rounded to the currency's minor unit.
type PriceBreakdown struct {
	Currency      string  `json:"currency"`
	Accommodation float64 `json:"accommodation"`
	Food          float64 `json:"food"`
	Transport     float64 `json:"transport"`
	Activities    float64 `json:"activities"`
	Total         float64 `json:"total"`
}

// Activity is a single scheduled item within a day.
// Tags carry group-type affinities (solo/family/friends/fiancee) and an
// intensity marker (relaxed/moderate/intense) used by day regeneration.
type Activity struct {
	Slot     string   `json:"slot"` // Morning, Afternoon, Evening
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Tags     []string `json:"tags,omitempty"`
}

// Day is one day of an itinerary. Index is 1-based and contiguous across the
// itinerary; reconciling days after a date change renumbers them.
type Day struct {
	Index      int        `json:"index"`
	Title      string     `json:"title"`
	Activities []Activity `json:"activities"`
}

// ModificationRecord is one entry of the append-only audit trail of follow-up
// intents applied to an itinerary. Records are never edited or removed.
type ModificationRecord struct {
	Timestamp time.Time `json:"timestamp"`
	Intent    string    `json:"intent"`
	Message   string    `json:"message"`
	Summary   string    `json:"summary"`
}

// Itinerary is the top-level aggregate: a fully planned trip. It is created
// once by the planner and afterwards mutated only through follow-up intents,
// each of which appends exactly one ModificationRecord.
type Itinerary struct {
	ID          uuid.UUID            `json:"id"`
	Destination string               `json:"destination"`
	Dates       TripDates            `json:"dates"`
	GroupSize   int                  `json:"group_size"`
	GroupType   GroupType            `json:"group_type"`
	BudgetLevel BudgetLevel          `json:"budget_level"`
	Highlights  []string             `json:"highlights,omitempty"`
	Days        []Day                `json:"days"`
	Weather     WeatherInfo          `json:"weather"`
	Prices      PriceBreakdown       `json:"prices"`
	History     []ModificationRecord `json:"history,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// Clone returns a deep copy of the itinerary. Follow-up application works on
// a clone so a failed mutation leaves the caller's value untouched.
func (it Itinerary) Clone() Itinerary {
	out := it

	out.Highlights = append([]string(nil), it.Highlights...)
	out.History = append([]ModificationRecord(nil), it.History...)
	out.Weather.Records = append([]WeatherRecord(nil), it.Weather.Records...)

	out.Days = make([]Day, len(it.Days))
	for i, d := range it.Days {
		nd := d
		nd.Activities = make([]Activity, len(d.Activities))
		for j, a := range d.Activities {
			na := a
			na.Tags = append([]string(nil), a.Tags...)
			nd.Activities[j] = na
		}
		out.Days[i] = nd
	}
	return out
}

// ParseBudgetLevel maps loose user phrasing onto a BudgetLevel.
// Returns false when the text names no recognizable tier.
func ParseBudgetLevel(s string) (BudgetLevel, bool) {
	switch normalize(s) {
	case "budget", "budget-friendly", "cheap", "low", "economy":
		return BudgetLow, true
	case "mid-range", "midrange", "mid range", "mid", "moderate", "standard":
		return BudgetMid, true
	case "luxury", "luxurious", "premium", "high-end":
		return BudgetLuxury, true
	}
	return "", false
}

// ParseGroupType maps loose user phrasing onto a GroupType.
// Unrecognized input falls back to solo.
func ParseGroupType(s string) GroupType {
	switch normalize(s) {
	case "family", "families", "kids":
		return GroupFamily
	case "friends", "friend", "group":
		return GroupFriends
	case "fiancee", "fiancée", "couple", "partner", "honeymoon":
		return GroupFiancee
	}
	return GroupSolo
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
