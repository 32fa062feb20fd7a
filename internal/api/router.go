package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/handlers"
	custommiddleware "github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/api/middleware"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/config"
	"github.com/seojinpark/Budget-Portfolio-Tracker-Backend/internal/service"
)

// NewRouter creates and configures the HTTP router
func NewRouter(systemService *service.SystemService, portfolioService *service.PortfolioService, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS middleware
	corsMiddleware := custommiddleware.NewCORS(cfg.CORS.AllowedOrigins)
	r.Use(corsMiddleware.Handler)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// System namespace
		r.Route("/system", func(r chi.Router) {
			systemHandler := handlers.NewSystemHandler(systemService)
			r.Get("/health", systemHandler.Health)
			r.Get("/version", systemHandler.Version)
		})

		r.Route("/portfolio", func(r chi.Router) {
			portfolioHandler := handlers.NewPortfolioHandler(portfolioService)
			r.Get("/", portfolioHandler.Portfolio)
			r.Put("/budget", portfolioHandler.SetBudget)
			r.Get("/summary", portfolioHandler.Summary)
			r.Get("/weights", portfolioHandler.Weights)
			r.Get("/export", portfolioHandler.Export)
			r.Post("/import", portfolioHandler.Import)
			r.Post("/reset", portfolioHandler.Reset)

			r.Route("/holdings", func(r chi.Router) {
				r.Post("/", portfolioHandler.AddHolding)

				r.Route("/{id}", func(r chi.Router) {
					r.Use(custommiddleware.ValidateHoldingIDMiddleware)
					r.Put("/", portfolioHandler.EditHolding)
					r.Delete("/", portfolioHandler.DeleteHolding)
				})
			})
		})
	})

	return r
}
