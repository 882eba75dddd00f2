package planner

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/Srujan578/travel-planner-website/internal/domain"
)

// RateProvider is the external currency collaborator: the conversion rate
// from base to target currency. A failed or absent lookup is recovered via
// the static mock rate table, never surfaced to the caller.
type RateProvider interface {
	Rate(ctx context.Context, base, target string) (float64, error)
}

// PriceCalculator computes currency-aware, budget-tiered cost breakdowns.
// Base rates are per person per day in USD; the calculator scales them by
// budget tier, duration, and group size, then converts to local currency.
type PriceCalculator struct {
	rates         RateProvider // nil means no live collaborator configured
	lookupTimeout time.Duration
	log           *slog.Logger
}

// NewPriceCalculator constructs a PriceCalculator. rates may be nil.
func NewPriceCalculator(rates RateProvider, log *slog.Logger) *PriceCalculator {
	if log == nil {
		log = slog.Default()
	}
	return &PriceCalculator{rates: rates, lookupTimeout: 5 * time.Second, log: log}
}

// Price builds the cost breakdown for a trip. Accommodation and transport
// scale sub-linearly with group size (rooms and taxis are shared); food and
// activities scale linearly. Every amount is rounded to the currency's minor
// unit and Total is the exact sum of the rounded categories.
func (c *PriceCalculator) Price(ctx context.Context, destination string, level domain.BudgetLevel, durationDays, groupSize int) domain.PriceBreakdown {
	if durationDays < 1 {
		durationDays = 1
	}
	if groupSize < 1 {
		groupSize = 1
	}

	card, ok := rateCards[destinationKey(destination)]
	if !ok {
		card = defaultRateCard
	}
	mult, ok := budgetMultipliers[level]
	if !ok {
		mult = budgetMultipliers[domain.BudgetMid]
	}

	days := float64(durationDays)
	shared := sharedGroupFactor(groupSize)
	linear := float64(groupSize)

	currency := CurrencyFor(destination)
	rate := c.exchangeRate(ctx, currency)

	accommodation := roundTo(card.Accommodation*mult*days*shared*rate, currency)
	food := roundTo(card.Food*mult*days*linear*rate, currency)
	transport := roundTo(card.Transport*mult*days*shared*rate, currency)
	activities := roundTo(card.Activities*mult*days*linear*rate, currency)

	return domain.PriceBreakdown{
		Currency:      currency,
		Accommodation: accommodation,
		Food:          food,
		Transport:     transport,
		Activities:    activities,
		// The categories are already rounded; summing them directly keeps
		// Total == sum exact, which re-rounding would not guarantee.
		Total: accommodation + food + transport + activities,
	}
}

// CurrencyFor returns the local currency for a destination, falling back to
// USD for destinations outside the lookup table.
func CurrencyFor(destination string) string {
	if cur, ok := destCurrencies[destinationKey(destination)]; ok {
		return cur
	}
	return fallbackCurrency
}

// sharedGroupFactor is the shared-resource discount curve: monotonic
// non-decreasing in group size and strictly below linear for any group
// larger than one.
func sharedGroupFactor(groupSize int) float64 {
	return math.Sqrt(float64(groupSize))
}

func (c *PriceCalculator) exchangeRate(ctx context.Context, target string) float64 {
	if target == fallbackCurrency {
		return 1.0
	}
	if c.rates != nil {
		lookupCtx, cancel := context.WithTimeout(ctx, c.lookupTimeout)
		defer cancel()

		rate, err := c.rates.Rate(lookupCtx, fallbackCurrency, target)
		if err == nil && rate > 0 {
			return rate
		}
		if err != nil {
			c.log.Warn("exchange rate lookup failed, using mock table",
				"currency", target, "error", err)
		}
	}
	if rate, ok := mockRates[target]; ok {
		return rate
	}
	return 1.0
}

// roundTo rounds an amount to the currency's conventional minor unit:
// two decimal places, or whole units for currencies without minor units.
func roundTo(amount float64, currency string) float64 {
	if zeroMinorUnit[currency] {
		return math.Round(amount)
	}
	return math.Round(amount*100) / 100
}
