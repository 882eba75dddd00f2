package planner_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Srujan578/travel-planner-website/internal/domain"
	"github.com/Srujan578/travel-planner-website/internal/planner"
)

// stubRates is a hand-written test double for planner.RateProvider.
type stubRates struct {
	rate  float64
	err   error
	calls int
}

func (s *stubRates) Rate(_ context.Context, _, _ string) (float64, error) {
	s.calls++
	return s.rate, s.err
}

var _ planner.RateProvider = (*stubRates)(nil)

func newCalculator(rates planner.RateProvider) *planner.PriceCalculator {
	return planner.NewPriceCalculator(rates, nil)
}

func TestPriceCalculator_TotalIsExactSumOfCategories(t *testing.T) {
	calc := newCalculator(nil)

	for _, dest := range []string{"Tokyo", "Paris", "Bali", "Atlantis"} {
		for _, level := range []domain.BudgetLevel{domain.BudgetLow, domain.BudgetMid, domain.BudgetLuxury} {
			pb := calc.Price(context.Background(), dest, level, 5, 2)

			sum := pb.Accommodation + pb.Food + pb.Transport + pb.Activities
			assert.Equal(t, sum, pb.Total, "%s/%s", dest, level)
			assert.GreaterOrEqual(t, pb.Accommodation, 0.0)
			assert.GreaterOrEqual(t, pb.Food, 0.0)
			assert.GreaterOrEqual(t, pb.Transport, 0.0)
			assert.GreaterOrEqual(t, pb.Activities, 0.0)
		}
	}
}

func TestPriceCalculator_BudgetTiersStrictlyIncrease(t *testing.T) {
	calc := newCalculator(nil)

	budget := calc.Price(context.Background(), "Paris", domain.BudgetLow, 4, 2)
	mid := calc.Price(context.Background(), "Paris", domain.BudgetMid, 4, 2)
	luxury := calc.Price(context.Background(), "Paris", domain.BudgetLuxury, 4, 2)

	assert.Less(t, budget.Total, mid.Total)
	assert.Less(t, mid.Total, luxury.Total)
}

func TestPriceCalculator_SharedCategoriesScaleSubLinearly(t *testing.T) {
	calc := newCalculator(nil)

	solo := calc.Price(context.Background(), "Paris", domain.BudgetMid, 4, 1)
	four := calc.Price(context.Background(), "Paris", domain.BudgetMid, 4, 4)

	// Accommodation and transport are shared: four people pay more than
	// one, but strictly less than four times as much.
	assert.Greater(t, four.Accommodation, solo.Accommodation)
	assert.Less(t, four.Accommodation, 4*solo.Accommodation)
	assert.Greater(t, four.Transport, solo.Transport)
	assert.Less(t, four.Transport, 4*solo.Transport)

	// Food and activities are per-person: exactly linear.
	assert.InDelta(t, 4*solo.Food, four.Food, 0.05)
	assert.InDelta(t, 4*solo.Activities, four.Activities, 0.05)
}

func TestPriceCalculator_ScalesWithDuration(t *testing.T) {
	calc := newCalculator(nil)

	three := calc.Price(context.Background(), "Tokyo", domain.BudgetMid, 3, 2)
	six := calc.Price(context.Background(), "Tokyo", domain.BudgetMid, 6, 2)

	assert.InDelta(t, 2*three.Total, six.Total, 2.0)
}

func TestPriceCalculator_CurrencyByDestination(t *testing.T) {
	tests := []struct {
		destination string
		want        string
	}{
		{"Tokyo", "JPY"},
		{"Paris", "EUR"},
		{"Dubai", "AED"},
		{"Bali", "IDR"},
		{"Goa", "INR"},
		{"New York", "USD"},
		{"Narnia", "USD"}, // unknown destinations fall back to USD
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, planner.CurrencyFor(tt.destination), tt.destination)
	}
}

func TestPriceCalculator_ZeroMinorUnitCurrenciesAreWhole(t *testing.T) {
	calc := newCalculator(nil)

	pb := calc.Price(context.Background(), "Tokyo", domain.BudgetMid, 5, 3)

	require.Equal(t, "JPY", pb.Currency)
	for name, v := range map[string]float64{
		"accommodation": pb.Accommodation,
		"food":          pb.Food,
		"transport":     pb.Transport,
		"activities":    pb.Activities,
		"total":         pb.Total,
	} {
		assert.Equal(t, math.Trunc(v), v, "%s should have no fractional yen", name)
	}
}

func TestPriceCalculator_UsesLiveRateWhenAvailable(t *testing.T) {
	live := &stubRates{rate: 150.0}
	calc := newCalculator(live)

	pb := calc.Price(context.Background(), "Tokyo", domain.BudgetMid, 1, 1)

	assert.Equal(t, 1, live.calls)
	// Base JPY mock rate is 110; a live rate of 150 must shift the totals.
	mock := newCalculator(nil).Price(context.Background(), "Tokyo", domain.BudgetMid, 1, 1)
	assert.Greater(t, pb.Total, mock.Total)
}

func TestPriceCalculator_RateFailureFallsBackToMockTable(t *testing.T) {
	broken := &stubRates{err: errors.New("api down")}
	calc := newCalculator(broken)

	pb := calc.Price(context.Background(), "Tokyo", domain.BudgetMid, 1, 1)

	mock := newCalculator(nil).Price(context.Background(), "Tokyo", domain.BudgetMid, 1, 1)
	assert.Equal(t, mock.Total, pb.Total, "failed lookup must produce the mock-table price")
}

func TestPriceCalculator_NoLookupForBaseCurrency(t *testing.T) {
	live := &stubRates{rate: 2.0}
	calc := newCalculator(live)

	calc.Price(context.Background(), "New York", domain.BudgetMid, 2, 2)

	assert.Zero(t, live.calls, "USD destinations need no conversion")
}
