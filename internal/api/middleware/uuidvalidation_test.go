package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	custommiddleware "github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/testutil"
)

func TestValidateHoldingIDMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := custommiddleware.ValidateHoldingIDMiddleware(next)

	tests := []struct {
		name       string
		id         string
		wantStatus int
	}{
		{"valid uuid passes through", "11111111-1111-1111-1111-111111111111", http.StatusOK},
		{"invalid uuid rejected", "not-a-uuid", http.StatusBadRequest},
		{"missing id rejected", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := map[string]string{}
			if tt.id != "" {
				params["id"] = tt.id
			}
			req := testutil.NewRequestWithURLParams(http.MethodDelete, "/api/portfolio/holdings/"+tt.id, params, nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
		})
	}
}
