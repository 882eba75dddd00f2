package planner

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// PlanRequest is the input to planning a brand-new trip. Text carries the
// free-form request ("plan a trip to Tokyo 04-15 for 5 days, luxury");
// the engine extracts destination, dates, and budget tier from it.
type PlanRequest struct {
	Text          string
	GroupSize     int
	GroupType     domain.GroupType
	ReferenceDate time.Time
}

// Planner is the engine facade. It wires the resolver, weather selector,
// price calculator, builder, classifier, and applier behind the two
// operations the outside world uses: Plan and FollowUp.
type Planner struct {
	builder *Builder
	applier *Applier
	now     func() time.Time
}

// New constructs the engine. Either collaborator may be nil, in which case
// the corresponding fallback data path is used.
func New(forecasts ForecastProvider, rates RateProvider, policy WeatherPolicy, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	weather := NewWeatherSelector(forecasts, policy, log)
	pricing := NewPriceCalculator(rates, log)
	return &Planner{
		builder: NewBuilder(weather, pricing),
		applier: NewApplier(weather, pricing),
		now:     time.Now,
	}
}

// Plan turns a free-form request into a complete itinerary.
// Returns domain.ErrDateParse or domain.ErrValidation when the request lacks
// resolvable dates or a destination; handlers surface those as clarification
// prompts rather than failures.
func (p *Planner) Plan(ctx context.Context, req PlanRequest) (domain.Itinerary, error) {
	if req.GroupSize < 1 {
		return domain.Itinerary{}, fmt.Errorf("%w: group size must be at least 1", domain.ErrValidation)
	}

	parsed, err := ParseRequest(req.Text)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Planner.Plan: %w", err)
	}

	ref := req.ReferenceDate
	if ref.IsZero() {
		ref = p.now()
	}
	dates, err := ResolveDates(parsed.DateExpression, ref)
	if err != nil {
		return domain.Itinerary{}, fmt.Errorf("planner.Planner.Plan: %w", err)
	}

	return p.builder.Build(ctx, parsed.Destination, dates, req.GroupSize, req.GroupType, parsed.BudgetLevel), nil
}

// FollowUp classifies a follow-up message and applies it to the itinerary.
// On any failure the returned itinerary is the input, byte-for-byte
// unchanged, with no history entry appended.
func (p *Planner) FollowUp(ctx context.Context, it domain.Itinerary, message string) (domain.Itinerary, error) {
	intent, err := Classify(message, it)
	if err != nil {
		return it, fmt.Errorf("planner.Planner.FollowUp: %w", err)
	}

	out, err := p.applier.Apply(ctx, it, intent, message)
	if err != nil {
		return it, fmt.Errorf("planner.Planner.FollowUp: %w", err)
	}
	return out, nil
}
