package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 0.50, cfg.WeightAltman)
	assert.Equal(t, 0.40, cfg.WeightOhlson)
	assert.Equal(t, 0.10, cfg.WeightSentiment)
	assert.Equal(t, 10, cfg.MaxBatchSize)
	assert.Equal(t, ConfidenceAsymmetric, cfg.ConfidenceMode)
}

func TestLoad_CustomWeights(t *testing.T) {
	t.Setenv("WEIGHT_ALTMAN", "0.6")
	t.Setenv("WEIGHT_OHLSON", "0.3")
	t.Setenv("WEIGHT_SENTIMENT", "0.1")
	t.Setenv("CONFIDENCE_MODE", "flat")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0.6, cfg.WeightAltman)
	assert.Equal(t, ConfidenceFlat, cfg.ConfidenceMode)
}

func TestLoad_RejectsWeightsNotSummingToOne(t *testing.T) {
	t.Setenv("WEIGHT_ALTMAN", "0.6")
	t.Setenv("WEIGHT_OHLSON", "0.6")
	t.Setenv("WEIGHT_SENTIMENT", "0.1")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must sum to 1.0")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.WeightAltman = -0.1; c.WeightOhlson = 1.0 },
			wantErr: "non-negative",
		},
		{
			name:    "batch size below one",
			mutate:  func(c *Config) { c.MaxBatchSize = 0 },
			wantErr: "MAX_BATCH_SIZE",
		},
		{
			name:    "unknown confidence mode",
			mutate:  func(c *Config) { c.ConfidenceMode = "fuzzy" },
			wantErr: "CONFIDENCE_MODE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				WeightAltman:    0.50,
				WeightOhlson:    0.40,
				WeightSentiment: 0.10,
				MaxBatchSize:    10,
				ConfidenceMode:  ConfidenceAsymmetric,
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
