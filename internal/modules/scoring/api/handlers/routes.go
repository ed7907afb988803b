package handlers

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all scoring routes
func (h *Handlers) RegisterRoutes(r chi.Router) {
	r.Get("/company-analysis/{ticker}", h.HandleCompanyAnalysis) // Single company credit analysis
	r.Post("/batch-analysis", h.HandleBatchAnalysis)             // Multi-company credit analysis
	r.Get("/breakdown", h.HandleBreakdown)                       // Static score breakdown metadata
}
