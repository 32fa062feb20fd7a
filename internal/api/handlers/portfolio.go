package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/request"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/response"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/apperrors"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/calc"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/model"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/service"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/validation"
)

// maxImportSize caps uploaded holdings documents.
const maxImportSize = 1 << 20 // 1 MiB

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
	}
}

// Portfolio returns the current portfolio snapshot.
//
// Endpoint: GET /api/portfolio
func (h *PortfolioHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.portfolioService.Portfolio())
}

// SetBudget replaces the budget wholesale.
//
// Endpoint: PUT /api/portfolio/budget
func (h *PortfolioHandler) SetBudget(w http.ResponseWriter, r *http.Request) {
	var req request.SetBudgetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := validation.ValidateBudget(float64(req.Amount), req.Currency); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.portfolioService.SetBudget(float64(req.Amount), req.Currency); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to set budget", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Portfolio())
}

// AddHolding adds a new holding. A holding whose projected investment
// exceeds the remaining budget capacity is rejected with 409 and the
// excess amount for user messaging.
//
// Endpoint: POST /api/portfolio/holdings
func (h *PortfolioHandler) AddHolding(w http.ResponseWriter, r *http.Request) {
	var req request.AddHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	candidate := model.Holding{
		Name:          req.Name,
		PurchasePrice: float64(req.PurchasePrice),
		Amount:        float64(req.Amount),
		Currency:      req.Currency,
	}
	if err := validation.ValidateHolding(candidate); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	added, err := h.portfolioService.AddHolding(candidate)
	if err != nil {
		var obe *apperrors.OverBudgetError
		if errors.As(err, &obe) {
			response.RespondError(w, http.StatusConflict, "holding exceeds remaining budget", map[string]interface{}{
				"excess":   obe.Excess,
				"currency": obe.Currency,
			})
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to add holding", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// EditHolding replaces the holding matching the {id} URL parameter.
// Editing an unknown ID is a no-op and still returns 200, matching the
// core's lenient semantics.
//
// Endpoint: PUT /api/portfolio/holdings/{id}
func (h *PortfolioHandler) EditHolding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.EditHoldingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	updated := model.Holding{
		ID:            id,
		Name:          req.Name,
		PurchasePrice: float64(req.PurchasePrice),
		Amount:        float64(req.Amount),
		Currency:      req.Currency,
	}
	if err := validation.ValidateHolding(updated); err != nil {
		response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if err := h.portfolioService.EditHolding(updated); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to edit holding", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Portfolio())
}

// DeleteHolding removes the holding matching the {id} URL parameter.
// Deleting an unknown ID is a no-op and still returns 204.
//
// Endpoint: DELETE /api/portfolio/holdings/{id}
func (h *PortfolioHandler) DeleteHolding(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.portfolioService.DeleteHolding(id); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to delete holding", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}

// SummaryResponse aggregates everything the overview screen renders.
type SummaryResponse struct {
	Budget            model.MoneyAmount      `json:"budget"`
	TotalInvested     float64                `json:"totalInvested"`
	RemainingCapacity float64                `json:"remainingCapacity"`
	ByCurrency        []calc.CurrencySummary `json:"byCurrency"`
}

// Summary returns the derived aggregates for the current portfolio.
//
// Endpoint: GET /api/portfolio/summary
func (h *PortfolioHandler) Summary(w http.ResponseWriter, r *http.Request) {
	p := h.portfolioService.Portfolio()

	respondJSON(w, http.StatusOK, SummaryResponse{
		Budget:            p.TotalAmount,
		TotalInvested:     calc.TotalInvested(p.Stocks),
		RemainingCapacity: calc.RemainingCapacity(p.TotalAmount.Amount, p.Stocks),
		ByCurrency:        calc.SummaryByCurrency(p.Stocks),
	})
}

// Weights returns the allocation weight of each holding. Non-finite
// weights (zero total invested) mean "no data": those entries are omitted
// so the response is always valid JSON.
//
// Endpoint: GET /api/portfolio/weights
func (h *PortfolioHandler) Weights(w http.ResponseWriter, r *http.Request) {
	p := h.portfolioService.Portfolio()

	weights := calc.AllocationWeights(p.Stocks)
	finite := make([]calc.Weight, 0, len(weights))
	for _, wt := range weights {
		if !math.IsNaN(wt.WeightPercent) && !math.IsInf(wt.WeightPercent, 0) {
			finite = append(finite, wt)
		}
	}

	respondJSON(w, http.StatusOK, finite)
}

// Export serves the holdings array as a downloadable JSON file named
// portfolio_<date>.json.
//
// Endpoint: GET /api/portfolio/export
func (h *PortfolioHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.portfolioService.ExportHoldings()
	if err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to export portfolio", err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		// Headers are already out; nothing left to do but note it.
		return
	}
}

// Import replaces the holdings collection with the uploaded document.
// The replace is all-or-nothing: a malformed document returns 400 and
// leaves the current state intact.
//
// Endpoint: POST /api/portfolio/import
func (h *PortfolioHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		response.RespondError(w, http.StatusBadRequest, "failed to read import document", err.Error())
		return
	}

	if err := h.portfolioService.ImportHoldings(data); err != nil {
		if errors.Is(err, apperrors.ErrMalformedImport) {
			response.RespondError(w, http.StatusBadRequest, "malformed import document", err.Error())
			return
		}
		response.RespondError(w, http.StatusInternalServerError, "failed to import portfolio", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Portfolio())
}

// Reset replaces the portfolio with the default state.
//
// Endpoint: POST /api/portfolio/reset
func (h *PortfolioHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.portfolioService.ResetPortfolio(); err != nil {
		response.RespondError(w, http.StatusInternalServerError, "failed to reset portfolio", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, h.portfolioService.Portfolio())
}
