package request_test

import (
	"encoding/json"
	"testing"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
)

// TestSetBudgetRequest_GroupedAmount verifies that budget amounts arrive
// either as JSON numbers or as the grouped strings the client's text
// inputs produce.
func TestSetBudgetRequest_GroupedAmount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    float64
		wantErr bool
	}{
		{name: "plain number", body: `{"amount":1000000,"currency":"원화"}`, want: 1000000},
		{name: "grouped string", body: `{"amount":"1,000,000","currency":"원화"}`, want: 1000000},
		{name: "plain string", body: `{"amount":"500","currency":"원화"}`, want: 500},
		{name: "empty string", body: `{"amount":"","currency":"원화"}`, wantErr: true},
		{name: "non-numeric string", body: `{"amount":"abc","currency":"원화"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req request.SetBudgetRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected decode error, got %+v", req)
				}
				return
			}
			if err != nil {
				t.Fatalf("decode failed: %v", err)
			}
			if float64(req.Amount) != tt.want {
				t.Errorf("amount = %v, want %v", req.Amount, tt.want)
			}
			if req.Currency != model.CurrencyKRW {
				t.Errorf("currency = %v, want %v", req.Currency, model.CurrencyKRW)
			}
		})
	}
}

func TestAddHoldingRequest_GroupedFields(t *testing.T) {
	body := `{"name":"삼성전자","purchasePrice":"70,000","amount":10,"currency":"원화"}`

	var req request.AddHoldingRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if float64(req.PurchasePrice) != 70000 {
		t.Errorf("purchasePrice = %v, want 70000", req.PurchasePrice)
	}
	if float64(req.Amount) != 10 {
		t.Errorf("amount = %v, want 10", req.Amount)
	}
}
