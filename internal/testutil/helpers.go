package testutil

import (
	"database/sql"
	"testing"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/service"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/store"
)

// NewTestPortfolioService builds a PortfolioService on top of db, loading
// whatever state the store currently holds (the default on a fresh db).
func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()
	return service.NewPortfolioService(store.New(db))
}

// HoldingCandidate returns a valid holding candidate (no ID assigned) for
// use with AddHolding.
func HoldingCandidate(name string, price, amount float64, currency model.Currency) model.Holding {
	return model.Holding{
		Name:          name,
		PurchasePrice: price,
		Amount:        amount,
		Currency:      currency,
	}
}

// MustAddHolding adds a candidate through the service and fails the test
// if it is rejected.
func MustAddHolding(t *testing.T, svc *service.PortfolioService, candidate model.Holding) model.Holding {
	t.Helper()
	added, err := svc.AddHolding(candidate)
	if err != nil {
		t.Fatalf("AddHolding(%q) returned unexpected error: %v", candidate.Name, err)
	}
	return added
}

// MustSetBudget sets the budget through the service and fails the test on
// error.
func MustSetBudget(t *testing.T, svc *service.PortfolioService, amount float64, currency model.Currency) {
	t.Helper()
	if err := svc.SetBudget(amount, currency); err != nil {
		t.Fatalf("SetBudget(%v, %v) returned unexpected error: %v", amount, currency, err)
	}
}
