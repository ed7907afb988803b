// Package scoring orchestrates the credit scoring pipeline: statement
// reconciliation, the two ratio models, normalization and fusion, per ticker
// and in partial-failure-tolerant batches.
package scoring

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/credtech/credscore/internal/config"
	"github.com/credtech/credscore/internal/modules/scoring/domain"
	"github.com/credtech/credscore/internal/modules/scoring/scorers"
	"github.com/credtech/credscore/internal/modules/scoring/statement"
)

// FundamentalsProvider supplies the latest quarterly statement snapshot for
// a ticker, or domain.ErrNoData when the provider has nothing for it.
type FundamentalsProvider interface {
	QuarterlySnapshot(ctx context.Context, ticker string) (*domain.StatementSnapshot, error)
}

// SentimentProvider supplies an aggregate news sentiment score in [0,1]
// for a ticker (0.5 when no signal is available).
type SentimentProvider interface {
	SentimentScore(ctx context.Context, ticker string) (float64, error)
}

// Service is the scoring engine entry point. Ticker evaluations share only
// read-only configuration, so the service is safe for concurrent use.
type Service struct {
	fundamentals FundamentalsProvider
	sentiment    SentimentProvider
	builder      *statement.Builder
	weights      scorers.FusionWeights
	flatMargin   bool
	maxBatchSize int
	log          zerolog.Logger
}

// NewService creates a scoring service from configuration and the two
// external providers.
func NewService(cfg *config.Config, fundamentals FundamentalsProvider, sentiment SentimentProvider, log zerolog.Logger) *Service {
	return &Service{
		fundamentals: fundamentals,
		sentiment:    sentiment,
		builder:      statement.NewBuilder(log),
		weights: scorers.FusionWeights{
			Altman:    cfg.WeightAltman,
			Ohlson:    cfg.WeightOhlson,
			Sentiment: cfg.WeightSentiment,
		},
		flatMargin:   cfg.ConfidenceMode == config.ConfidenceFlat,
		maxBatchSize: cfg.MaxBatchSize,
		log:          log.With().Str("module", "scoring").Logger(),
	}
}

// ScoreOne evaluates a single ticker. Returns domain.ErrNoData when the
// provider has no statements for it.
func (s *Service) ScoreOne(ctx context.Context, ticker string) (*domain.ScoreResult, error) {
	return s.scoreTicker(ctx, normalizeTicker(ticker))
}

// ScoreBatch evaluates all requested tickers, isolating per-ticker failures.
// A single ticker's failure never aborts the batch: failed tickers are
// collected alongside the successful results. Only structural problems
// (empty list, oversized batch) fail the whole call, before any per-ticker
// work begins.
func (s *Service) ScoreBatch(ctx context.Context, tickers []string) (*domain.BatchResult, error) {
	if len(tickers) == 0 {
		return nil, &BatchValidationError{Reason: "no tickers provided"}
	}
	if len(tickers) > s.maxBatchSize {
		return nil, &BatchValidationError{
			Reason: fmt.Sprintf("maximum %d tickers per batch, got %d", s.maxBatchSize, len(tickers)),
		}
	}

	batchID := uuid.NewString()
	log := s.log.With().Str("batch_id", batchID).Logger()
	log.Info().Int("requested", len(tickers)).Msg("Starting batch scoring")

	batch := &domain.BatchResult{
		Results:        make(map[string]domain.ScoreResult, len(tickers)),
		FailedTickers:  []string{},
		RequestedCount: len(tickers),
	}

	for _, raw := range tickers {
		ticker := normalizeTicker(raw)
		result, err := s.scoreTicker(ctx, ticker)
		if err != nil {
			log.Error().Err(err).Str("ticker", ticker).Msg("Failed to process ticker")
			batch.FailedTickers = append(batch.FailedTickers, ticker)
			continue
		}
		batch.Results[ticker] = *result
	}

	batch.ProcessedCount = len(batch.Results)
	if len(batch.FailedTickers) > 0 {
		log.Warn().Strs("failed_tickers", batch.FailedTickers).Msg("Batch completed with failures")
	}
	log.Info().
		Int("processed", batch.ProcessedCount).
		Int("requested", batch.RequestedCount).
		Msg("Batch scoring complete")

	return batch, nil
}

// BreakdownMetadata returns the static component-contribution tables and the
// configured fusion weights.
func (s *Service) BreakdownMetadata() domain.Breakdown {
	return scorers.BuildBreakdown(s.weights)
}

// scoreTicker runs the full pipeline for one ticker: fetch, reconcile,
// score, normalize, fuse.
func (s *Service) scoreTicker(ctx context.Context, ticker string) (*domain.ScoreResult, error) {
	s.log.Info().Str("ticker", ticker).Msg("Processing ticker")

	snap, err := s.fundamentals.QuarterlySnapshot(ctx, ticker)
	if err != nil {
		return nil, err
	}
	if snap.Empty() {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoData, ticker)
	}

	sentiment, err := s.sentiment.SentimentScore(ctx, ticker)
	if err != nil {
		return nil, fmt.Errorf("sentiment lookup for %s: %w", ticker, err)
	}
	sentiment = clampUnit(sentiment)

	record := s.builder.Build(snap, sentiment)

	altmanZ := scorers.AltmanZScore(record)
	ohlsonO := scorers.OhlsonOScore(record)
	altmanNorm := scorers.Normalize(altmanZ, scorers.AltmanCalibrationLo, scorers.AltmanCalibrationHi)
	ohlsonNorm := scorers.Normalize(ohlsonO, scorers.OhlsonCalibrationLo, scorers.OhlsonCalibrationHi)

	var fused scorers.Fused
	if s.flatMargin {
		fused = s.weights.FuseFlat(altmanNorm, ohlsonNorm, sentiment)
	} else {
		fused = s.weights.Fuse(altmanNorm, ohlsonNorm, sentiment)
	}

	s.log.Info().
		Str("ticker", ticker).
		Float64("score", scorers.Round2(fused.Base)).
		Msg("Ticker scored")

	return &domain.ScoreResult{
		Ticker:      ticker,
		CompanyName: snap.CompanyName,
		BaseScore:   scorers.Round2(fused.Base),
		ScoreMin:    scorers.Round2(fused.Min),
		ScoreMax:    scorers.Round2(fused.Max),
		AltmanZ:     scorers.Round2(altmanZ),
		OhlsonO:     scorers.Round2(ohlsonO),
		Sentiment:   sentiment,
	}, nil
}

func normalizeTicker(ticker string) string {
	return strings.ToUpper(strings.TrimSpace(ticker))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
