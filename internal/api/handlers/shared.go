package handlers

import (
	"net/http"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/response"
)

// respondJSON is a package-local alias so handlers read uniformly.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	response.RespondJSON(w, status, data)
}
