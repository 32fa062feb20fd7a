package request

import (
	"encoding/json"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/numfmt"
)

// GroupedNumber accepts either a JSON number or a grouped numeric string
// ("1,000,000"), the form the web client's text inputs produce.
type GroupedNumber float64

func (n *GroupedNumber) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := numfmt.ParseGrouped(s)
		if err != nil {
			return err
		}
		*n = GroupedNumber(v)
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*n = GroupedNumber(f)
	return nil
}

// SetBudgetRequest represents the request body for replacing the budget
type SetBudgetRequest struct {
	Amount   GroupedNumber  `json:"amount"`
	Currency model.Currency `json:"currency"`
}

// AddHoldingRequest represents the request body for adding a holding.
// The server assigns the ID.
type AddHoldingRequest struct {
	Name          string         `json:"name"`
	PurchasePrice GroupedNumber  `json:"purchasePrice"`
	Amount        GroupedNumber  `json:"amount"`
	Currency      model.Currency `json:"currency"`
}

// EditHoldingRequest represents the request body for editing a holding.
// The ID comes from the URL path, not the body.
type EditHoldingRequest struct {
	Name          string         `json:"name"`
	PurchasePrice GroupedNumber  `json:"purchasePrice"`
	Amount        GroupedNumber  `json:"amount"`
	Currency      model.Currency `json:"currency"`
}
