// Package handlers provides HTTP handlers for the credit scoring API.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/credtech/credscore/internal/modules/scoring"
	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

// Handlers provides HTTP handlers for the scoring module
type Handlers struct {
	service *scoring.Service
	log     zerolog.Logger
}

// NewHandlers creates a new scoring handlers instance
func NewHandlers(service *scoring.Service, log zerolog.Logger) *Handlers {
	return &Handlers{
		service: service,
		log:     log.With().Str("module", "scoring_handlers").Logger(),
	}
}

// BatchRequest represents a request to score multiple companies
type BatchRequest struct {
	Tickers []string `json:"tickers"`
}

// CompanyAnalysisResponse is the single-ticker analysis payload
type CompanyAnalysisResponse struct {
	Ticker       string             `json:"ticker"`
	CompanyName  string             `json:"company_name,omitempty"`
	CreditScores domain.ScoreResult `json:"credit_scores"`
	Breakdown    domain.Breakdown   `json:"breakdown"`
	Success      bool               `json:"success"`
}

// BatchAnalysisResponse is the multi-ticker analysis payload
type BatchAnalysisResponse struct {
	Results        map[string]domain.ScoreResult `json:"results"`
	FailedTickers  []string                      `json:"failed_tickers"`
	Breakdown      domain.Breakdown              `json:"breakdown"`
	ProcessedCount int                           `json:"processed_count"`
	RequestedCount int                           `json:"requested_count"`
	Success        bool                          `json:"success"`
}

// HandleCompanyAnalysis handles GET /api/company-analysis/{ticker}
// Returns the complete credit analysis for a single company.
func (h *Handlers) HandleCompanyAnalysis(w http.ResponseWriter, r *http.Request) {
	ticker := chi.URLParam(r, "ticker")
	if ticker == "" {
		h.writeError(w, "Ticker is required", http.StatusBadRequest)
		return
	}

	ticker = strings.ToUpper(ticker)
	result, err := h.service.ScoreOne(r.Context(), ticker)
	if err != nil {
		if errors.Is(err, domain.ErrNoData) {
			h.writeError(w, fmt.Sprintf(
				"No financial data available for %s. Please check the ticker symbol.", ticker),
				http.StatusNotFound)
			return
		}
		h.log.Error().Err(err).Str("ticker", ticker).Msg("Company analysis failed")
		h.writeError(w, fmt.Sprintf("Failed to analyze %s", ticker), http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, CompanyAnalysisResponse{
		Ticker:       result.Ticker,
		CompanyName:  result.CompanyName,
		CreditScores: *result,
		Breakdown:    h.service.BreakdownMetadata(),
		Success:      true,
	})
}

// HandleBatchAnalysis handles POST /api/batch-analysis
// Scores multiple companies, returning whatever subset succeeded plus the
// list of failures.
func (h *Handlers) HandleBatchAnalysis(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Error().Err(err).Msg("Failed to decode batch request")
		h.writeError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	batch, err := h.service.ScoreBatch(r.Context(), req.Tickers)
	if err != nil {
		var validationErr *scoring.BatchValidationError
		if errors.As(err, &validationErr) {
			h.writeError(w, validationErr.Reason, http.StatusBadRequest)
			return
		}
		h.log.Error().Err(err).Msg("Batch analysis failed")
		h.writeError(w, "Batch analysis failed", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, http.StatusOK, BatchAnalysisResponse{
		Results:        batch.Results,
		FailedTickers:  batch.FailedTickers,
		Breakdown:      h.service.BreakdownMetadata(),
		ProcessedCount: batch.ProcessedCount,
		RequestedCount: batch.RequestedCount,
		Success:        true,
	})
}

// HandleBreakdown handles GET /api/breakdown
// Returns the static score breakdown metadata.
func (h *Handlers) HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.service.BreakdownMetadata())
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.log.Error().Err(err).Msg("Failed to encode response")
	}
}

func (h *Handlers) writeError(w http.ResponseWriter, message string, status int) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
