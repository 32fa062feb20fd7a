package calc_test

import (
	"math"
	"testing"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/calc"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
)

func holding(name string, price, amount float64, currency model.Currency) model.Holding {
	return model.Holding{
		ID:            name + "-id",
		Name:          name,
		PurchasePrice: price,
		Amount:        amount,
		Currency:      currency,
	}
}

// TestTotalInvested verifies the sum of purchasePrice*amount over the
// holdings list, including the empty list and the cross-currency raw sum.
func TestTotalInvested(t *testing.T) {
	tests := []struct {
		name     string
		holdings []model.Holding
		want     float64
	}{
		{
			name:     "empty list yields zero",
			holdings: nil,
			want:     0,
		},
		{
			name: "single holding",
			holdings: []model.Holding{
				holding("A", 10000, 50, model.CurrencyKRW),
			},
			want: 500000,
		},
		{
			name: "multiple holdings accumulate",
			holdings: []model.Holding{
				holding("A", 10000, 50, model.CurrencyKRW),
				holding("B", 200, 3, model.CurrencyKRW),
			},
			want: 500600,
		},
		{
			name: "mixed currencies are summed raw",
			holdings: []model.Holding{
				holding("A", 100, 2, model.CurrencyKRW),
				holding("B", 50, 4, model.CurrencyUSD),
			},
			want: 400,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := calc.TotalInvested(tt.holdings); got != tt.want {
				t.Errorf("TotalInvested() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRemainingCapacity(t *testing.T) {
	holdings := []model.Holding{
		holding("A", 10000, 50, model.CurrencyKRW), // 500,000
	}

	if got := calc.RemainingCapacity(1000000, holdings); got != 500000 {
		t.Errorf("RemainingCapacity(1000000) = %v, want 500000", got)
	}

	// Not clamped: over-budget portfolios yield negative capacity.
	if got := calc.RemainingCapacity(300000, holdings); got != -200000 {
		t.Errorf("RemainingCapacity(300000) = %v, want -200000", got)
	}

	if got := calc.RemainingCapacity(0, nil); got != 0 {
		t.Errorf("RemainingCapacity(0, empty) = %v, want 0", got)
	}
}

// TestSummaryByCurrency verifies lazy bucket creation, first-seen ordering,
// and that the partition is exhaustive: bucket values sum to TotalInvested.
func TestSummaryByCurrency(t *testing.T) {
	holdings := []model.Holding{
		holding("A", 10000, 50, model.CurrencyKRW),
		holding("B", 120, 10, model.CurrencyUSD),
		holding("C", 5000, 2, model.CurrencyKRW),
	}

	summaries := calc.SummaryByCurrency(holdings)

	if len(summaries) != 2 {
		t.Fatalf("expected 2 currency buckets, got %d", len(summaries))
	}

	// First-seen order: KRW before USD.
	if summaries[0].Currency != model.CurrencyKRW || summaries[1].Currency != model.CurrencyUSD {
		t.Errorf("unexpected bucket order: %v, %v", summaries[0].Currency, summaries[1].Currency)
	}

	krw, ok := calc.FindSummary(summaries, model.CurrencyKRW)
	if !ok {
		t.Fatal("KRW bucket missing")
	}
	if krw.TotalAmount != 52 {
		t.Errorf("KRW TotalAmount = %v, want 52", krw.TotalAmount)
	}
	if krw.TotalValue != 510000 {
		t.Errorf("KRW TotalValue = %v, want 510000", krw.TotalValue)
	}

	usd, _ := calc.FindSummary(summaries, model.CurrencyUSD)
	if usd.TotalValue != 1200 {
		t.Errorf("USD TotalValue = %v, want 1200", usd.TotalValue)
	}

	var bucketSum float64
	for _, s := range summaries {
		bucketSum += s.TotalValue
	}
	if bucketSum != calc.TotalInvested(holdings) {
		t.Errorf("bucket values sum to %v, want %v", bucketSum, calc.TotalInvested(holdings))
	}

	if _, ok := calc.FindSummary(summaries, model.CurrencyEUR); ok {
		t.Error("EUR bucket should not exist for these holdings")
	}
}

func TestSummaryByCurrencyEmpty(t *testing.T) {
	if got := calc.SummaryByCurrency(nil); len(got) != 0 {
		t.Errorf("expected no buckets for empty holdings, got %d", len(got))
	}
}

func TestAllocationWeights(t *testing.T) {
	holdings := []model.Holding{
		holding("A", 100, 3, model.CurrencyKRW), // 300
		holding("B", 100, 1, model.CurrencyKRW), // 100
	}

	weights := calc.AllocationWeights(holdings)

	if len(weights) != 2 {
		t.Fatalf("expected 2 weights, got %d", len(weights))
	}
	if weights[0].Name != "A" || weights[1].Name != "B" {
		t.Errorf("weights not in holding order: %v", weights)
	}
	if weights[0].WeightPercent != 75 {
		t.Errorf("weight A = %v, want 75", weights[0].WeightPercent)
	}
	if weights[1].WeightPercent != 25 {
		t.Errorf("weight B = %v, want 25", weights[1].WeightPercent)
	}

	var sum float64
	for _, w := range weights {
		sum += w.WeightPercent
	}
	if math.Abs(sum-100) > 1e-9 {
		t.Errorf("weights sum to %v, want 100", sum)
	}
}

// TestAllocationWeightsZeroTotal verifies the division-by-zero contract:
// NaN per entry instead of a panic, so the view layer can render nothing.
func TestAllocationWeightsZeroTotal(t *testing.T) {
	holdings := []model.Holding{
		holding("A", 0, 10, model.CurrencyKRW),
	}

	weights := calc.AllocationWeights(holdings)
	if len(weights) != 1 {
		t.Fatalf("expected 1 weight, got %d", len(weights))
	}
	if !math.IsNaN(weights[0].WeightPercent) {
		t.Errorf("weight with zero total = %v, want NaN", weights[0].WeightPercent)
	}
}

func TestAggregationsDoNotMutateInput(t *testing.T) {
	holdings := []model.Holding{
		holding("A", 10, 2, model.CurrencyKRW),
		holding("B", 20, 1, model.CurrencyUSD),
	}
	before := make([]model.Holding, len(holdings))
	copy(before, holdings)

	calc.TotalInvested(holdings)
	calc.RemainingCapacity(100, holdings)
	calc.SummaryByCurrency(holdings)
	calc.AllocationWeights(holdings)

	for i := range holdings {
		if holdings[i] != before[i] {
			t.Errorf("holding %d mutated: %+v != %+v", i, holdings[i], before[i])
		}
	}
}
