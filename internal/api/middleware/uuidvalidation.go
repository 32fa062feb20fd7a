// Package middleware provides HTTP middleware for request validation and processing.
package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/validation"
)

// ValidateHoldingIDMiddleware validates that the {id} URL parameter is
// present and a valid UUID. Returns 400 Bad Request otherwise. Applied to
// the holding edit/delete routes.
//
// Example usage in router:
//
//	r.Route("/{id}", func(r chi.Router) {
//	    r.Use(middleware.ValidateHoldingIDMiddleware)
//	    r.Put("/", handler.EditHolding)
//	    r.Delete("/", handler.DeleteHolding)
//	})
func ValidateHoldingIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if id == "" {
			response.RespondError(w, http.StatusBadRequest, "valid holding ID is required", "")
			return
		}

		if err := validation.ValidateUUID(id); err != nil {
			response.RespondError(w, http.StatusBadRequest, "invalid holding ID format", err.Error())
			return
		}

		next.ServeHTTP(w, r)
	})
}
