package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/calc"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/store"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/validation"
)

// StoreKey is the fixed key the portfolio document lives under in the
// persisted store. There is exactly one portfolio per store.
const StoreKey = "portfolio"

// PortfolioService owns the canonical portfolio document. All mutation is
// funneled through its operations; every successful mutation is written
// through to the persisted store before the operation returns. There is no
// undo log: once the write-through completes, the previous state is gone.
//
// The document itself is single-writer by design; the mutex only guards
// against the concurrency the HTTP server introduces around it.
type PortfolioService struct {
	store *store.Store

	mu        sync.Mutex
	portfolio model.Portfolio
	onChange  func()
}

// NewPortfolioService creates a PortfolioService and loads the persisted
// document. Loading is fail-open: an absent or unparseable document yields
// the default portfolio (zero KRW budget, no holdings).
func NewPortfolioService(s *store.Store) *PortfolioService {
	return &PortfolioService{
		store:     s,
		portfolio: store.Read(s, StoreKey, model.DefaultPortfolio()),
	}
}

// SetChangeListener registers a callback invoked after every successful
// mutation, outside the critical section. Used to trigger debounced
// derived-state refreshes and backups.
func (s *PortfolioService) SetChangeListener(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Portfolio returns a snapshot of the current document. The snapshot is a
// deep copy; mutating it does not affect the canonical state.
func (s *PortfolioService) Portfolio() model.Portfolio {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.portfolio.Clone()
}

// SetBudget replaces the budget wholesale. It always succeeds: existing
// holdings are never validated against the new budget, so an over-budget
// portfolio is tolerated.
func (s *PortfolioService) SetBudget(amount float64, currency model.Currency) error {
	if !currency.Valid() {
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownCurrency, currency)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.portfolio.Clone()
	next.TotalAmount = model.MoneyAmount{Amount: amount, Currency: currency}
	return s.commit(next)
}

// AddHolding validates the candidate against the remaining budget capacity
// and, on success, assigns a fresh unique ID and appends it to the end of
// the holdings list. Existing entries are never reordered.
//
// The over-budget check compares raw values with no currency conversion,
// matching the rest of the system: the budget and the candidate may be in
// different units and are compared numerically anyway. Rejection leaves
// state unchanged and reports the excess for user messaging.
func (s *PortfolioService) AddHolding(candidate model.Holding) (model.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	newInvestment := candidate.Value()
	remaining := calc.RemainingCapacity(s.portfolio.TotalAmount.Amount, s.portfolio.Stocks)
	if newInvestment > remaining {
		return model.Holding{}, &apperrors.OverBudgetError{
			Excess:   newInvestment - remaining,
			Currency: s.portfolio.TotalAmount.Currency,
		}
	}

	candidate.ID = uuid.NewString()
	next := s.portfolio.Clone()
	next.Stocks = append(next.Stocks, candidate)
	if err := s.commit(next); err != nil {
		return model.Holding{}, err
	}
	return candidate, nil
}

// DeleteHolding removes the holding with the given ID. Deleting an unknown
// ID is a silent no-op, not an error.
func (s *PortfolioService) DeleteHolding(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.portfolio.Clone()
	stocks := next.Stocks[:0]
	for _, h := range next.Stocks {
		if h.ID != id {
			stocks = append(stocks, h)
		}
	}
	if len(stocks) == len(next.Stocks) {
		return nil
	}
	next.Stocks = stocks
	return s.commit(next)
}

// EditHolding replaces the holding whose ID matches updated.ID in place,
// preserving its position. Editing an unknown ID is a silent no-op.
//
// The over-budget check is deliberately not re-run here: an edit can push
// the portfolio over budget without rejection, mirroring how additions and
// budget changes are the only guarded paths.
func (s *PortfolioService) EditHolding(updated model.Holding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.portfolio.Clone()
	found := false
	for i, h := range next.Stocks {
		if h.ID == updated.ID {
			next.Stocks[i] = updated
			found = true
			break
		}
	}
	if !found {
		return nil
	}
	return s.commit(next)
}

// ImportHoldings parses data as a holdings array and replaces the holdings
// collection wholesale. Validation is strict and happens before any state
// changes: a malformed document returns ErrMalformedImport with the prior
// state intact (all-or-nothing).
func (s *PortfolioService) ImportHoldings(data []byte) error {
	holdings, err := validation.ParseHoldingsDocument(data)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.portfolio.Clone()
	next.Stocks = holdings
	return s.commit(next)
}

// ImportPortfolio replaces the whole document, budget included. No
// advisory budget check runs against the incoming holdings: an imported
// portfolio may already be over budget and is accepted as-is.
func (s *PortfolioService) ImportPortfolio(p model.Portfolio) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(p.Clone())
}

// ResetPortfolio replaces the document with the default state and writes
// it through synchronously, so any subsequent read of the store returns
// the default.
func (s *PortfolioService) ResetPortfolio() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commit(model.DefaultPortfolio())
}

// ExportHoldings serializes the holdings array alone (not the wrapping
// document) and returns it with the download filename, which carries the
// current date: portfolio_2006-01-02.json.
func (s *PortfolioService) ExportHoldings() ([]byte, string, error) {
	s.mu.Lock()
	snapshot := s.portfolio.Clone()
	s.mu.Unlock()

	data, err := validation.EncodeHoldingsDocument(snapshot.Stocks)
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize holdings: %w", err)
	}

	filename := fmt.Sprintf("portfolio_%s.json", time.Now().UTC().Format("2006-01-02"))
	return data, filename, nil
}

// commit persists next and, only if the write-through succeeds, makes it
// the canonical state. Callers must hold s.mu.
func (s *PortfolioService) commit(next model.Portfolio) error {
	if err := store.Write(s.store, StoreKey, next); err != nil {
		return err
	}
	s.portfolio = next

	if s.onChange != nil {
		// Fire outside the lock so listeners can read back a snapshot.
		go s.onChange()
	}
	return nil
}
