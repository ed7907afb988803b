// Package main is the entry point for the credscore credit scoring service.
// It derives a normalized 0-100 creditworthiness score per company from its
// latest quarterly statements fused with a news sentiment signal, and serves
// the results over a small HTTP API.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/credtech/credscore/internal/clients/fundamentals"
	"github.com/credtech/credscore/internal/clients/newsfeed"
	"github.com/credtech/credscore/internal/config"
	"github.com/credtech/credscore/internal/modules/scoring"
	scoringhandlers "github.com/credtech/credscore/internal/modules/scoring/api/handlers"
	"github.com/credtech/credscore/internal/server"
	"github.com/credtech/credscore/pkg/logger"
)

func main() {
	// Load configuration first to get log level
	cfg, err := config.Load()
	if err != nil {
		fallbackLog := logger.New(logger.Config{
			Level:  "info",
			Pretty: true,
		})
		fallbackLog.Fatal().Err(err).Msg("Failed to load configuration")
	}

	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: true,
	})

	log.Info().Msg("Starting credscore")

	// External collaborators: the financial data provider and the news
	// sentiment service. Both are plain request/response HTTP clients.
	fundamentalsClient := fundamentals.NewClient(cfg.FundamentalsAPIURL, log)
	sentimentClient := newsfeed.NewClient(cfg.SentimentAPIURL, log)

	scoringService := scoring.NewService(cfg, fundamentalsClient, sentimentClient, log)

	srv := server.New(server.Config{
		Log:             log,
		Config:          cfg,
		ScoringHandlers: scoringhandlers.NewHandlers(scoringService, log),
	})

	// Start server in background so we can wait for shutdown signals
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutdown signal received")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Graceful shutdown failed")
		}
	}

	log.Info().Msg("credscore stopped")
}
