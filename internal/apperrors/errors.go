package apperrors

import (
	"errors"
	"fmt"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/numfmt"
)

// Domain entity errors represent missing or invalid entities in the system.
var (
	// ErrHoldingNotFound indicates that a holding with the given ID does not
	// exist. Mutation operations treat a missing holding as a silent no-op;
	// this error exists for read paths that must distinguish absence.
	ErrHoldingNotFound = errors.New("holding not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrOverBudget indicates that adding a holding would exceed the
	// remaining capacity of the declared budget.
	ErrOverBudget = errors.New("holding exceeds remaining budget")

	// ErrUnknownCurrency indicates a currency outside the supported set.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")
)

// Data integrity errors represent malformed or corrupted documents.
var (
	// ErrMalformedImport indicates that an imported document is not a valid
	// holdings array. Import is all-or-nothing: this error is raised before
	// any state is replaced.
	ErrMalformedImport = errors.New("malformed import document")
)

// OverBudgetError reports by how much a rejected holding would have
// exceeded the remaining budget capacity. It wraps ErrOverBudget so
// callers can match with errors.Is.
type OverBudgetError struct {
	// Excess is the amount by which the projected investment exceeds the
	// remaining capacity, in raw units.
	Excess float64

	// Currency is the budget currency, used for user-facing messaging.
	Currency model.Currency
}

func (e *OverBudgetError) Error() string {
	return fmt.Sprintf("holding exceeds remaining budget by %s %s", numfmt.FormatGroupedFloat(e.Excess), e.Currency)
}

func (e *OverBudgetError) Unwrap() error {
	return ErrOverBudget
}
