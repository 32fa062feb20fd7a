package validation

import (
	"strings"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
)

// ValidateHolding checks the user-editable fields of a holding candidate.
// The ID is not checked here: the state manager assigns it on add, and
// edit routes validate it separately as a UUID.
func ValidateHolding(h model.Holding) error {
	errors := make(map[string]string)

	if strings.TrimSpace(h.Name) == "" {
		errors["name"] = "name is required"
	} else if len(h.Name) > 100 {
		errors["name"] = "name must be 100 characters or less"
	}

	if h.PurchasePrice <= 0 {
		errors["purchasePrice"] = "purchase price must be positive"
	}

	if h.Amount <= 0 {
		errors["amount"] = "amount must be positive"
	}

	if !h.Currency.Valid() {
		errors["currency"] = "currency must be one of the supported units"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

// ValidateBudget checks a budget update. A zero amount is allowed (it is
// the default state); negative amounts are not.
func ValidateBudget(amount float64, currency model.Currency) error {
	errors := make(map[string]string)

	if amount < 0 {
		errors["amount"] = "amount cannot be negative"
	}

	if !currency.Valid() {
		errors["currency"] = "currency must be one of the supported units"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
