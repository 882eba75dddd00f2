package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// Classify parses a follow-up message against the current itinerary into a
// structured intent. It is a rule-based classifier over a prioritized set of
// pattern families; more specific intents are checked before generic ones,
// and the order is load-bearing: swapping two families changes how messages
// with overlapping keywords are classified.
//
// Order: budget → dates → remove → swap → add → day tone → Unknown.
//
// Day references are validated against [1, len(itinerary.Days)]; an
// out-of-range day is a domain.ErrIntentResolution, not a silent no-op.
func Classify(message string, itinerary domain.Itinerary) (domain.FollowUpIntent, error) {
	lower := strings.ToLower(strings.TrimSpace(message))
	if lower == "" {
		return unknownIntent(), fmt.Errorf("%w: empty message", domain.ErrUnknownIntent)
	}

	if intent, ok := classifyBudget(lower); ok {
		return intent, nil
	}
	if intent, ok := classifyDates(lower); ok {
		return intent, nil
	}
	if intent, ok, err := classifyRemove(lower, itinerary); ok || err != nil {
		return intent, err
	}
	if intent, ok, err := classifySwap(lower, itinerary); ok || err != nil {
		return intent, err
	}
	if intent, ok, err := classifyAdd(lower, itinerary); ok || err != nil {
		return intent, err
	}
	if intent, ok, err := classifyDayTone(lower, itinerary); ok || err != nil {
		return intent, err
	}

	return unknownIntent(), fmt.Errorf("%w: %q", domain.ErrUnknownIntent, message)
}

func unknownIntent() domain.FollowUpIntent {
	return domain.FollowUpIntent{Kind: domain.IntentUnknown}
}

// --- pattern families, in priority order ------------------------------------

var budgetTiers = []struct {
	keywords []string
	level    domain.BudgetLevel
}{
	{[]string{"luxury", "luxurious", "high-end", "premium"}, domain.BudgetLuxury},
	{[]string{"mid-range", "midrange", "mid range", "moderate budget"}, domain.BudgetMid},
	{[]string{"budget", "cheap", "cheaper", "low cost", "budget-friendly"}, domain.BudgetLow},
}

func classifyBudget(lower string) (domain.FollowUpIntent, bool) {
	for _, tier := range budgetTiers {
		for _, kw := range tier.keywords {
			if strings.Contains(lower, kw) {
				return domain.FollowUpIntent{
					Kind:      domain.IntentChangeBudget,
					NewBudget: tier.level,
				}, true
			}
		}
	}
	return domain.FollowUpIntent{}, false
}

var dateKeywords = []string{"dates", "reschedule", "move to", "postpone", "move the trip", "shift the trip", "next month"}

func classifyDates(lower string) (domain.FollowUpIntent, bool) {
	if !lo.SomeBy(dateKeywords, func(kw string) bool { return strings.Contains(lower, kw) }) {
		return domain.FollowUpIntent{}, false
	}
	// Carry the embedded expression for re-resolution. When none is found
	// the applier surfaces a date-parse clarification; the message still
	// unambiguously asked for a date change.
	return domain.FollowUpIntent{
		Kind:           domain.IntentChangeDates,
		DateExpression: reDateExpr.FindString(lower),
	}, true
}

var (
	reRemove = regexp.MustCompile(`\b(?:remove|delete|cancel|drop)\b\s*(.*)$`)
	reSwap   = regexp.MustCompile(`\b(?:replace|swap)\s+(.+?)\s+(?:with|for)\s+(.+)$`)
	reAdd    = regexp.MustCompile(`\b(?:add|include|insert)\b\s*(.*)$`)
	reTone   = regexp.MustCompile(`\bmake\s+day\s+(\d+)\s+(more|less)\s+([a-z-]+)`)
	reDayRef = regexp.MustCompile(`\b(?:day|on day|from day|to day)\s+(\d+)\b`)
)

func classifyRemove(lower string, it domain.Itinerary) (domain.FollowUpIntent, bool, error) {
	m := reRemove.FindStringSubmatch(lower)
	if m == nil {
		return domain.FollowUpIntent{}, false, nil
	}

	day, err := extractDayRef(lower, it)
	if err != nil {
		return unknownIntent(), false, err
	}

	ref := cleanActivityRef(m[1])
	if day == 0 {
		day = locateActivityDay(it, ref)
	}
	return domain.FollowUpIntent{
		Kind:        domain.IntentRemoveActivity,
		DayIndex:    day,
		ActivityRef: ref,
	}, true, nil
}

func classifySwap(lower string, it domain.Itinerary) (domain.FollowUpIntent, bool, error) {
	m := reSwap.FindStringSubmatch(lower)
	if m == nil {
		return domain.FollowUpIntent{}, false, nil
	}

	day, err := extractDayRef(lower, it)
	if err != nil {
		return unknownIntent(), false, err
	}

	from := cleanActivityRef(m[1])
	to := cleanActivityRef(m[2])
	if day == 0 {
		day = locateActivityDay(it, from)
	}
	return domain.FollowUpIntent{
		Kind:        domain.IntentSwapActivity,
		DayIndex:    day,
		ActivityRef: from,
		Description: to,
	}, true, nil
}

func classifyAdd(lower string, it domain.Itinerary) (domain.FollowUpIntent, bool, error) {
	m := reAdd.FindStringSubmatch(lower)
	if m == nil {
		return domain.FollowUpIntent{}, false, nil
	}

	day, err := extractDayRef(lower, it)
	if err != nil {
		return unknownIntent(), false, err
	}

	desc := cleanActivityRef(m[1])
	if desc == "" {
		return unknownIntent(), false, fmt.Errorf("%w: nothing to add", domain.ErrIntentResolution)
	}
	return domain.FollowUpIntent{
		Kind:        domain.IntentAddActivity,
		DayIndex:    day, // 0 means "least-full day"
		Description: desc,
	}, true, nil
}

// tone adjectives by polarity; direction is the combination of more/less
// with the adjective's polarity, so "less relaxed" intensifies.
var (
	intenseAdjectives = []string{"adventurous", "active", "exciting", "intense", "energetic", "packed", "busy", "adrenaline"}
	calmAdjectives    = []string{"relaxed", "relaxing", "calm", "chill", "laid-back", "easy", "slow", "leisurely"}
)

func classifyDayTone(lower string, it domain.Itinerary) (domain.FollowUpIntent, bool, error) {
	m := reTone.FindStringSubmatch(lower)
	if m == nil {
		return domain.FollowUpIntent{}, false, nil
	}

	day, _ := strconv.Atoi(m[1])
	if err := validateDayIndex(day, it); err != nil {
		return unknownIntent(), false, err
	}

	more := m[2] == "more"
	adjective := m[3]

	var direction domain.ToneDirection
	switch {
	case lo.Contains(intenseAdjectives, adjective):
		direction = domain.ToneIntensify
	case lo.Contains(calmAdjectives, adjective):
		direction = domain.ToneSoften
	default:
		// Unknown adjective: read "more X" as a push toward intensity.
		direction = domain.ToneIntensify
	}
	if !more {
		direction = invertTone(direction)
	}

	return domain.FollowUpIntent{
		Kind:      domain.IntentModifyDay,
		DayIndex:  day,
		Direction: direction,
		Adjective: adjective,
	}, true, nil
}

func invertTone(d domain.ToneDirection) domain.ToneDirection {
	if d == domain.ToneIntensify {
		return domain.ToneSoften
	}
	return domain.ToneIntensify
}

// --- entity extraction helpers ----------------------------------------------

// extractDayRef finds an explicit "day N" reference and validates it, or
// returns 0 when the message names no day.
func extractDayRef(lower string, it domain.Itinerary) (int, error) {
	m := reDayRef.FindStringSubmatch(lower)
	if m == nil {
		return 0, nil
	}
	day, _ := strconv.Atoi(m[1])
	if err := validateDayIndex(day, it); err != nil {
		return 0, err
	}
	return day, nil
}

func validateDayIndex(day int, it domain.Itinerary) error {
	if day < 1 || day > len(it.Days) {
		return fmt.Errorf("%w: day %d is outside this %d-day itinerary",
			domain.ErrIntentResolution, day, len(it.Days))
	}
	return nil
}

// refStopWords are filler tokens stripped from an extracted activity
// reference so "the shopping day" matches a shopping-tagged activity.
var refStopWords = map[string]bool{
	"the": true, "a": true, "an": true, "my": true, "our": true,
	"day": true, "activity": true, "visit": true, "trip": true,
	"please": true, "from": true, "to": true, "on": true,
}

// cleanActivityRef strips day references and filler words from an extracted
// entity, leaving the tokens that identify the activity.
func cleanActivityRef(ref string) string {
	ref = reDayRef.ReplaceAllString(ref, "")
	ref = strings.Trim(ref, " .,!?;")

	words := strings.Fields(ref)
	kept := lo.Filter(words, func(w string, _ int) bool {
		return !refStopWords[strings.Trim(w, ".,!?;")]
	})
	return strings.Join(kept, " ")
}

// locateActivityDay returns the index of the first day containing an
// activity matching ref, or 0 when nothing matches; the applier then fails
// with domain.ErrActivityNotFound rather than the classifier guessing.
func locateActivityDay(it domain.Itinerary, ref string) int {
	if ref == "" {
		return 0
	}
	for _, day := range it.Days {
		for _, act := range day.Activities {
			if activityMatches(act, ref) {
				return day.Index
			}
		}
	}
	return 0
}

// activityMatches reports whether any significant token of ref appears in
// the activity's title, category, or tags.
func activityMatches(act domain.Activity, ref string) bool {
	haystack := strings.ToLower(act.Title + " " + act.Category + " " + strings.Join(act.Tags, " "))
	for _, token := range strings.Fields(strings.ToLower(ref)) {
		if len(token) < 3 {
			continue
		}
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}
