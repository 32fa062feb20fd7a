// Package calc contains the pure aggregation functions of the portfolio
// core. Every function is deterministic for a given holdings list and
// never mutates its input; callers own any caching or debouncing.
package calc

import (
	"math"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
)

// TotalInvested sums purchasePrice*amount over all holdings. The sum is
// currency-agnostic: holdings in different units are added raw. By
// convention callers only compare it against same-currency figures.
func TotalInvested(holdings []model.Holding) float64 {
	var total float64
	for _, h := range holdings {
		total += h.Value()
	}
	return total
}

// RemainingCapacity returns budgetAmount minus the total invested value.
// The result is not clamped: a negative value means the holdings exceed
// the budget, and downstream uses the sign to pick warning vs. confirmation
// messaging.
func RemainingCapacity(budgetAmount float64, holdings []model.Holding) float64 {
	return budgetAmount - TotalInvested(holdings)
}

// CurrencySummary accumulates quantity and invested value for one
// currency bucket.
type CurrencySummary struct {
	Currency    model.Currency `json:"currency"`
	TotalAmount float64        `json:"totalAmount"`
	TotalValue  float64        `json:"totalValue"`
}

// SummaryByCurrency groups holdings by their own currency, independent of
// the budget currency. Buckets are created lazily on first encounter and
// returned in first-seen order.
func SummaryByCurrency(holdings []model.Holding) []CurrencySummary {
	index := make(map[model.Currency]int)
	summaries := make([]CurrencySummary, 0, len(model.Currencies))
	for _, h := range holdings {
		i, ok := index[h.Currency]
		if !ok {
			i = len(summaries)
			index[h.Currency] = i
			summaries = append(summaries, CurrencySummary{Currency: h.Currency})
		}
		summaries[i].TotalAmount += h.Amount
		summaries[i].TotalValue += h.Value()
	}
	return summaries
}

// FindSummary returns the bucket for a currency, or false when no holding
// uses that currency.
func FindSummary(summaries []CurrencySummary, currency model.Currency) (CurrencySummary, bool) {
	for _, s := range summaries {
		if s.Currency == currency {
			return s, true
		}
	}
	return CurrencySummary{}, false
}

// Weight is one holding's share of the total invested value.
type Weight struct {
	Name          string  `json:"name"`
	WeightPercent float64 `json:"weight"`
}

// AllocationWeights returns each holding's invested value as a percentage
// of the total, in holding order. When the total invested value is zero
// every weight is NaN rather than an error; callers must treat non-finite
// weights as "no data, render nothing".
func AllocationWeights(holdings []model.Holding) []Weight {
	total := TotalInvested(holdings)
	weights := make([]Weight, len(holdings))
	for i, h := range holdings {
		pct := h.Value() / total * 100
		if total == 0 {
			pct = math.NaN()
		}
		weights[i] = Weight{Name: h.Name, WeightPercent: pct}
	}
	return weights
}
