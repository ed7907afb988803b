// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gonum.org/v1/gonum/floats"
)

// Confidence interval modes. The asymmetric mode skews the interval toward
// the sentiment direction; the flat mode uses a plain ±5% margin.
const (
	ConfidenceAsymmetric = "asymmetric"
	ConfidenceFlat       = "flat"
)

// Config holds application configuration
type Config struct {
	Port               int
	LogLevel           string
	DevMode            bool
	FundamentalsAPIURL string // Financial data provider base URL
	SentimentAPIURL    string // News sentiment service base URL
	WeightAltman       float64
	WeightOhlson       float64
	WeightSentiment    float64
	MaxBatchSize       int
	ConfidenceMode     string // "asymmetric" or "flat"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("GO_PORT", 8001),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		FundamentalsAPIURL: getEnv("FUNDAMENTALS_API_URL", "http://localhost:9100"),
		SentimentAPIURL:    getEnv("SENTIMENT_API_URL", "http://localhost:9200"),
		WeightAltman:       getEnvAsFloat("WEIGHT_ALTMAN", 0.50),
		WeightOhlson:       getEnvAsFloat("WEIGHT_OHLSON", 0.40),
		WeightSentiment:    getEnvAsFloat("WEIGHT_SENTIMENT", 0.10),
		MaxBatchSize:       getEnvAsInt("MAX_BATCH_SIZE", 10),
		ConfidenceMode:     getEnv("CONFIDENCE_MODE", ConfidenceAsymmetric),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks structural configuration invariants.
func (c *Config) Validate() error {
	sum := floats.Sum([]float64{c.WeightAltman, c.WeightOhlson, c.WeightSentiment})
	if math.Abs(sum-1.0) > 1e-9 {
		return fmt.Errorf("fusion weights must sum to 1.0, got %.6f", sum)
	}
	for name, w := range map[string]float64{
		"WEIGHT_ALTMAN":    c.WeightAltman,
		"WEIGHT_OHLSON":    c.WeightOhlson,
		"WEIGHT_SENTIMENT": c.WeightSentiment,
	} {
		if w < 0 {
			return fmt.Errorf("%s must be non-negative, got %.4f", name, w)
		}
	}
	if c.MaxBatchSize < 1 {
		return fmt.Errorf("MAX_BATCH_SIZE must be at least 1, got %d", c.MaxBatchSize)
	}
	if c.ConfidenceMode != ConfidenceAsymmetric && c.ConfidenceMode != ConfidenceFlat {
		return fmt.Errorf("CONFIDENCE_MODE must be %q or %q, got %q",
			ConfidenceAsymmetric, ConfidenceFlat, c.ConfidenceMode)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
