package planner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// Applier applies a classified follow-up intent to an itinerary. It works on
// a deep copy, so application is all-or-nothing: on any error the caller's
// itinerary is untouched and no ModificationRecord is appended; on success
// exactly one record is appended.
type Applier struct {
	weather *WeatherSelector
	pricing *PriceCalculator
	now     func() time.Time
}

// NewApplier constructs an Applier sharing the builder's leaf components so
// budget and date changes recompute prices and weather the same way the
// initial plan did.
func NewApplier(weather *WeatherSelector, pricing *PriceCalculator) *Applier {
	return &Applier{weather: weather, pricing: pricing, now: time.Now}
}

// Apply returns a new itinerary with the intent applied and a modification
// record appended. The input itinerary is never mutated.
func (a *Applier) Apply(ctx context.Context, it domain.Itinerary, intent domain.FollowUpIntent, rawMessage string) (domain.Itinerary, error) {
	out := it.Clone()

	var summary string
	var err error
	switch intent.Kind {
	case domain.IntentChangeBudget:
		summary, err = a.applyChangeBudget(ctx, &out, intent)
	case domain.IntentChangeDates:
		summary, err = a.applyChangeDates(ctx, &out, intent)
	case domain.IntentRemoveActivity:
		summary, err = a.applyRemoveActivity(&out, intent)
	case domain.IntentSwapActivity:
		summary, err = a.applySwapActivity(&out, intent)
	case domain.IntentAddActivity:
		summary, err = a.applyAddActivity(&out, intent)
	case domain.IntentModifyDay:
		summary, err = a.applyModifyDay(&out, intent)
	case domain.IntentUnknown:
		return it, fmt.Errorf("%w: %q", domain.ErrUnknownIntent, rawMessage)
	default:
		return it, fmt.Errorf("%w: unsupported intent %q", domain.ErrIntentResolution, intent.Kind)
	}
	if err != nil {
		return it, err
	}

	now := a.now()
	out.History = append(out.History, domain.ModificationRecord{
		Timestamp: now,
		Intent:    string(intent.Kind),
		Message:   rawMessage,
		Summary:   summary,
	})
	out.UpdatedAt = now
	return out, nil
}

func (a *Applier) applyChangeBudget(ctx context.Context, it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	if intent.NewBudget == "" {
		return "", fmt.Errorf("%w: no budget tier named", domain.ErrIntentResolution)
	}
	it.BudgetLevel = intent.NewBudget
	it.Prices = a.pricing.Price(ctx, it.Destination, it.BudgetLevel, it.Dates.DurationDays, it.GroupSize)
	return fmt.Sprintf("Changed budget tier to %s and recalculated prices", intent.NewBudget), nil
}

func (a *Applier) applyChangeDates(ctx context.Context, it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	now := a.now()
	dates, err := ResolveDates(intent.DateExpression, now)
	if err != nil {
		return "", err
	}

	oldDuration := it.Dates.DurationDays
	it.Dates = dates
	it.Weather = a.weather.Select(ctx, it.Destination, dates, now)
	it.Prices = a.pricing.Price(ctx, it.Destination, it.BudgetLevel, dates.DurationDays, it.GroupSize)

	// Reconcile the day sequence: existing days keep their content where
	// the index still exists; extra days are truncated or synthesized.
	switch {
	case dates.DurationDays < len(it.Days):
		it.Days = it.Days[:dates.DurationDays]
	case dates.DurationDays > len(it.Days):
		for i := len(it.Days) + 1; i <= dates.DurationDays; i++ {
			it.Days = append(it.Days, synthesizeDay(it.Destination, it.GroupType, i))
		}
	}

	return fmt.Sprintf("Rescheduled to %s – %s (%d days, was %d)",
		dates.StartDate.Format("2006-01-02"), dates.EndDate.Format("2006-01-02"),
		dates.DurationDays, oldDuration), nil
}

func (a *Applier) applyRemoveActivity(it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	if intent.ActivityRef == "" {
		return "", fmt.Errorf("%w: no activity named", domain.ErrIntentResolution)
	}

	day, pos, err := findActivity(it, intent.DayIndex, intent.ActivityRef)
	if err != nil {
		return "", err
	}

	removed := it.Days[day-1].Activities[pos]
	it.Days[day-1].Activities = append(it.Days[day-1].Activities[:pos], it.Days[day-1].Activities[pos+1:]...)
	return fmt.Sprintf("Removed %q from day %d", removed.Title, day), nil
}

func (a *Applier) applySwapActivity(it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	if intent.ActivityRef == "" || intent.Description == "" {
		return "", fmt.Errorf("%w: swap needs both an existing activity and a replacement", domain.ErrIntentResolution)
	}

	day, pos, err := findActivity(it, intent.DayIndex, intent.ActivityRef)
	if err != nil {
		return "", err
	}

	// Remove-then-add at the same position, as one atomic step on the clone.
	old := it.Days[day-1].Activities[pos]
	it.Days[day-1].Activities[pos] = newActivity(old.Slot, intent.Description, it.GroupType)
	return fmt.Sprintf("Replaced %q with %q on day %d", old.Title, it.Days[day-1].Activities[pos].Title, day), nil
}

func (a *Applier) applyAddActivity(it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	if intent.Description == "" {
		return "", fmt.Errorf("%w: no activity described", domain.ErrIntentResolution)
	}
	if len(it.Days) == 0 {
		return "", fmt.Errorf("%w: itinerary has no days", domain.ErrIntentResolution)
	}

	day := intent.DayIndex
	if day == 0 {
		// No day specified: put it where there is the most room.
		least := lo.MinBy(it.Days, func(a, b domain.Day) bool {
			return len(a.Activities) < len(b.Activities)
		})
		day = least.Index
	} else if day < 1 || day > len(it.Days) {
		return "", fmt.Errorf("%w: day %d is outside this %d-day itinerary",
			domain.ErrIntentResolution, day, len(it.Days))
	}

	slot := daySlots[min(len(it.Days[day-1].Activities), len(daySlots)-1)]
	act := newActivity(slot, intent.Description, it.GroupType)
	it.Days[day-1].Activities = append(it.Days[day-1].Activities, act)
	return fmt.Sprintf("Added %q to day %d", act.Title, day), nil
}

func (a *Applier) applyModifyDay(it *domain.Itinerary, intent domain.FollowUpIntent) (string, error) {
	if intent.DayIndex < 1 || intent.DayIndex > len(it.Days) {
		return "", fmt.Errorf("%w: day %d is outside this %d-day itinerary",
			domain.ErrIntentResolution, intent.DayIndex, len(it.Days))
	}

	day := &it.Days[intent.DayIndex-1]
	count := len(day.Activities)
	if count < 1 {
		count = 1
	}

	day.Activities = regenerateDay(it.Destination, it.GroupType, intent.Direction, intent.DayIndex, count)
	day.Title = fmt.Sprintf("Day %d: %s", intent.DayIndex, dayTheme(day.Activities))

	verb := "higher"
	if intent.Direction == domain.ToneSoften {
		verb = "lower"
	}
	return fmt.Sprintf("Regenerated day %d with %s-intensity activities", intent.DayIndex, verb), nil
}

// regenerateDay rebuilds a day's activity list skewed toward the requested
// intensity, preserving the activity count. When the skewed pool is smaller
// than the requested count it wraps around rather than shrinking the day.
func regenerateDay(destination string, groupType domain.GroupType, direction domain.ToneDirection, dayIndex, count int) []domain.Activity {
	wanted := "intense"
	avoided := "relaxed"
	if direction == domain.ToneSoften {
		wanted, avoided = avoided, wanted
	}

	pool := rankedCatalog(destination, groupType)
	preferred := lo.Filter(pool, func(e catalogEntry, _ int) bool { return lo.Contains(e.Tags, wanted) })
	neutral := lo.Filter(pool, func(e catalogEntry, _ int) bool {
		return !lo.Contains(e.Tags, wanted) && !lo.Contains(e.Tags, avoided)
	})
	ordered := append(preferred, neutral...)
	if len(ordered) == 0 {
		ordered = pool
	}

	activities := make([]domain.Activity, 0, count)
	for i := 0; i < count; i++ {
		entry := ordered[(dayIndex-1+i)%len(ordered)]
		activities = append(activities, domain.Activity{
			Slot:     daySlots[i%len(daySlots)],
			Title:    entry.Title,
			Category: entry.Category,
			Tags:     append([]string(nil), entry.Tags...),
		})
	}
	return activities
}

// findActivity locates the first activity matching ref. With a day given the
// search is scoped to that day; otherwise all days are searched in order.
// Returns domain.ErrActivityNotFound when nothing matches.
func findActivity(it *domain.Itinerary, dayIndex int, ref string) (day, pos int, err error) {
	search := it.Days
	if dayIndex != 0 {
		if dayIndex < 1 || dayIndex > len(it.Days) {
			return 0, 0, fmt.Errorf("%w: day %d is outside this %d-day itinerary",
				domain.ErrIntentResolution, dayIndex, len(it.Days))
		}
		search = it.Days[dayIndex-1 : dayIndex]
	}

	for _, d := range search {
		for i, act := range d.Activities {
			if activityMatches(act, ref) {
				return d.Index, i, nil
			}
		}
	}
	return 0, 0, fmt.Errorf("%w: no activity matching %q", domain.ErrActivityNotFound, ref)
}

// newActivity builds a user-requested activity from its free-text
// description, guessing a category from keywords.
func newActivity(slot, description string, groupType domain.GroupType) domain.Activity {
	return domain.Activity{
		Slot:     slot,
		Title:    titleCaser.String(description),
		Category: categorize(description),
		Tags:     []string{string(groupType), "moderate"},
	}
}

// categoryKeywords is ordered: the first family with a keyword hit wins, so
// "spa dinner" is food, not relaxation.
var categoryKeywords = []struct {
	category string
	keywords []string
}{
	{"culture", []string{"museum", "temple", "gallery", "historic", "heritage", "art"}},
	{"food", []string{"restaurant", "food", "dinner", "lunch", "tasting", "cooking", "cafe"}},
	{"adventure", []string{"hike", "trek", "surf", "climb", "kayak", "safari", "dive"}},
	{"relaxation", []string{"spa", "beach", "massage", "picnic", "park"}},
	{"nightlife", []string{"bar", "club", "nightlife", "karaoke", "party"}},
	{"shopping", []string{"shopping", "market", "mall", "souk"}},
}

func categorize(description string) string {
	lower := strings.ToLower(description)
	for _, family := range categoryKeywords {
		for _, kw := range family.keywords {
			if strings.Contains(lower, kw) {
				return family.category
			}
		}
	}
	return "sightseeing"
}
