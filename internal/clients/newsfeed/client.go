// Package newsfeed provides a client for the news sentiment analysis
// service, which aggregates recent headlines per ticker into a single score
// in [0,1].
package newsfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const requestTimeout = 10 * time.Second

// NeutralSentiment is returned when no sentiment signal exists for a ticker.
const NeutralSentiment = 0.5

// Client is the sentiment analysis service client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new sentiment client.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log.With().Str("client", "newsfeed").Logger(),
	}
}

type sentimentResponse struct {
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
}

// SentimentScore fetches the aggregate news sentiment for a ticker, clamped
// to [0,1]. A missing signal (404) is not an error: the neutral default is
// returned. Transport and server errors propagate so the caller can isolate
// them at the ticker boundary.
func (c *Client) SentimentScore(ctx context.Context, ticker string) (float64, error) {
	endpoint := fmt.Sprintf("%s/v1/sentiment/%s", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("sentiment request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		c.log.Debug().Str("ticker", ticker).Msg("No sentiment signal, using neutral default")
		return NeutralSentiment, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("sentiment API returned status %d", resp.StatusCode)
	}

	var payload sentimentResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("failed to decode sentiment response: %w", err)
	}

	score := payload.Score
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	c.log.Debug().Str("ticker", ticker).Float64("score", score).Msg("Sentiment fetched")
	return score, nil
}
