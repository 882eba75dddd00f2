package planner

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// titleCaser capitalizes destination names pulled from lowercase lookup keys.
var titleCaser = cases.Title(language.English)

// daySlots are the fixed scheduling slots of a day, in order.
var daySlots = [...]string{"Morning", "Afternoon", "Evening"}

// Builder composes date resolution, weather selection, pricing, and
// group-type activity curation into an initial itinerary document.
type Builder struct {
	weather *WeatherSelector
	pricing *PriceCalculator
	now     func() time.Time
}

// NewBuilder constructs a Builder over the two leaf components.
func NewBuilder(weather *WeatherSelector, pricing *PriceCalculator) *Builder {
	return &Builder{weather: weather, pricing: pricing, now: time.Now}
}

// Build assembles a complete itinerary for the resolved trip. Weather and
// pricing have no data dependency on each other, but a synchronous pass is
// fast enough that no internal parallelism is needed.
func (b *Builder) Build(ctx context.Context, destination string, dates domain.TripDates, groupSize int, groupType domain.GroupType, level domain.BudgetLevel) domain.Itinerary {
	if groupSize < 1 {
		groupSize = 1
	}

	now := b.now()
	weather := b.weather.Select(ctx, destination, dates, now)
	prices := b.pricing.Price(ctx, destination, level, dates.DurationDays, groupSize)

	days := make([]domain.Day, 0, dates.DurationDays)
	for i := 1; i <= dates.DurationDays; i++ {
		days = append(days, synthesizeDay(destination, groupType, i))
	}

	return domain.Itinerary{
		ID:          uuid.New(),
		Destination: destination,
		Dates:       dates,
		GroupSize:   groupSize,
		GroupType:   groupType,
		BudgetLevel: level,
		Highlights:  Suggest(destination),
		Days:        days,
		Weather:     weather,
		Prices:      prices,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// synthesizeDay builds one day of activities for a destination, biased
// toward the group type. The catalog is walked with a per-day offset so
// consecutive days get different activities until the pool wraps around.
func synthesizeDay(destination string, groupType domain.GroupType, index int) domain.Day {
	pool := rankedCatalog(destination, groupType)

	activities := make([]domain.Activity, 0, len(daySlots))
	for s, slot := range daySlots {
		entry := pool[((index-1)*len(daySlots)+s)%len(pool)]
		activities = append(activities, domain.Activity{
			Slot:     slot,
			Title:    entry.Title,
			Category: entry.Category,
			Tags:     append([]string(nil), entry.Tags...),
		})
	}

	return domain.Day{
		Index:      index,
		Title:      fmt.Sprintf("Day %d: %s", index, dayTheme(activities)),
		Activities: activities,
	}
}

// rankedCatalog returns the destination's activity pool with group-affine
// entries first. Order within each partition is the curated catalog order,
// which keeps day generation deterministic.
func rankedCatalog(destination string, groupType domain.GroupType) []catalogEntry {
	pool, ok := activityCatalogs[destinationKey(destination)]
	if !ok {
		pool = genericCatalog
	}
	affine, rest := lo.FilterReject(pool, func(e catalogEntry, _ int) bool {
		return lo.Contains(e.Tags, string(groupType))
	})
	return append(affine, rest...)
}

// dayTheme titles a day after its dominant activity category.
func dayTheme(activities []domain.Activity) string {
	if len(activities) == 0 {
		return "Open day"
	}
	counts := lo.CountValuesBy(activities, func(a domain.Activity) string { return a.Category })
	best := activities[0].Category
	for _, a := range activities {
		if counts[a.Category] > counts[best] {
			best = a.Category
		}
	}
	titles := map[string]string{
		"sightseeing": "Sights & landmarks",
		"culture":     "Culture & heritage",
		"food":        "Local flavours",
		"adventure":   "Out & active",
		"relaxation":  "Slow day",
		"nightlife":   "Evenings out",
		"shopping":    "Markets & shopping",
		"romance":     "Just the two of you",
	}
	if t, ok := titles[best]; ok {
		return t
	}
	return "Exploring " + best
}

// --- plan request parsing ---------------------------------------------------

var (
	// reDestination picks the place name out of phrasings like "trip to
	// Tokyo", "visit New York", "5 days in Paris". The name ends at the
	// next keyword, digit, or punctuation.
	reDestination = regexp.MustCompile(`(?i)\b(?:to|in|visit(?:ing)?|at)\s+([A-Za-zÀ-ÿ][A-Za-zÀ-ÿ' ]*?)(?:\s+(?:for|from|on|between|with|during)\b|\s*\d|[,.!?;]|$)`)

	// reDateExpr locates an embedded date expression anywhere in free text.
	reDateExpr = regexp.MustCompile(`(?:\d{4}-)?\d{1,2}-\d{1,2}(?:\s+to\s+(?:\d{4}-)?\d{1,2}-\d{1,2}|\s+for\s+\d+\s+days?)?|\d{4}-\d{1,2}-\d{1,2}`)
)

// ParsedRequest is the structured reading of a free-form planning request.
type ParsedRequest struct {
	Destination    string
	DateExpression string
	BudgetLevel    domain.BudgetLevel
}

// ParseRequest extracts destination, date expression, and budget tier from a
// raw planning request. The destination and a date expression are required;
// their absence is a clarification-worthy validation failure, not a crash.
func ParseRequest(text string) (ParsedRequest, error) {
	req := ParsedRequest{BudgetLevel: domain.BudgetMid}

	lower := strings.ToLower(text)
	switch {
	case strings.Contains(lower, "luxury") || strings.Contains(lower, "high-end") || strings.Contains(lower, "premium"):
		req.BudgetLevel = domain.BudgetLuxury
	case strings.Contains(lower, "cheap") || strings.Contains(lower, "budget"):
		req.BudgetLevel = domain.BudgetLow
	}

	req.DateExpression = reDateExpr.FindString(text)
	if req.DateExpression == "" {
		return req, fmt.Errorf("%w: no travel dates found in request", domain.ErrDateParse)
	}

	req.Destination = extractDestination(text)
	if req.Destination == "" {
		return req, fmt.Errorf("%w: no destination found in request", domain.ErrValidation)
	}
	return req, nil
}

func extractDestination(text string) string {
	// Known destination names win over grammatical extraction: "Bali
	// vacation" has no preposition to anchor on.
	lower := strings.ToLower(text)
	for key := range seasonalTables {
		if strings.Contains(lower, key) {
			return titleCaser.String(key)
		}
	}
	for key := range suggestionLists {
		if strings.Contains(lower, key) {
			return titleCaser.String(key)
		}
	}

	if m := reDestination.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
