package validation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
)

// ParseHoldingsDocument decodes data as an exported holdings array and
// validates every record against the holding shape before anything is
// accepted. Any structural mismatch, unknown field, or invalid record
// fails the whole document with ErrMalformedImport: partially-shaped
// imports are never applied.
func ParseHoldingsDocument(data []byte) ([]model.Holding, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var holdings []model.Holding
	if err := dec.Decode(&holdings); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedImport, err)
	}
	// Trailing content after the array is as malformed as a broken array.
	if dec.More() {
		return nil, fmt.Errorf("%w: trailing content after holdings array", apperrors.ErrMalformedImport)
	}

	seen := make(map[string]struct{}, len(holdings))
	for i, h := range holdings {
		if h.ID == "" {
			return nil, fmt.Errorf("%w: record %d has no id", apperrors.ErrMalformedImport, i)
		}
		if _, dup := seen[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %q", apperrors.ErrMalformedImport, h.ID)
		}
		seen[h.ID] = struct{}{}

		if err := ValidateHolding(h); err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", apperrors.ErrMalformedImport, i, err)
		}
	}

	if holdings == nil {
		holdings = []model.Holding{}
	}
	return holdings, nil
}

// EncodeHoldingsDocument serializes the holdings array in the export
// format: an indented JSON array, the exact shape ParseHoldingsDocument
// accepts back.
func EncodeHoldingsDocument(holdings []model.Holding) ([]byte, error) {
	if holdings == nil {
		holdings = []model.Holding{}
	}
	return json.MarshalIndent(holdings, "", "  ")
}
