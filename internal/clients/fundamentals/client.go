// Package fundamentals provides a client for the financial data provider,
// which serves the latest quarterly statements per ticker as label->value
// mappings plus company metadata.
package fundamentals

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"

	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

const requestTimeout = 10 * time.Second

// Client is the financial data provider client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a new fundamentals client.
func NewClient(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		log:        log.With().Str("client", "fundamentals").Logger(),
	}
}

// snapshotResponse is the provider's wire format. Statement values are left
// untyped: feeds mix numbers, numeric strings and nulls, and the resolver
// deals with each entry individually.
type snapshotResponse struct {
	Symbol          string         `json:"symbol"`
	CompanyName     string         `json:"company_name"`
	BalanceSheet    map[string]any `json:"balance_sheet"`
	IncomeStatement map[string]any `json:"income_statement"`
	Meta            map[string]any `json:"meta"`
}

// QuarterlySnapshot fetches the most recent quarterly balance sheet, income
// statement and metadata for a ticker. Returns domain.ErrNoData when the
// provider has nothing for the ticker; snapshots are fetched fresh on every
// call and never cached.
func (c *Client) QuarterlySnapshot(ctx context.Context, ticker string) (*domain.StatementSnapshot, error) {
	endpoint := fmt.Sprintf("%s/v1/fundamentals/%s/quarterly", c.baseURL, url.PathEscape(ticker))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug().Str("ticker", ticker).Str("url", endpoint).Msg("Fetching quarterly snapshot")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fundamentals request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("%w for %s", domain.ErrNoData, ticker)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fundamentals API returned status %d", resp.StatusCode)
	}

	// UseNumber keeps statement values as json.Number so large figures are
	// not silently rounded and malformed entries survive until resolution.
	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()

	var payload snapshotResponse
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode fundamentals response: %w", err)
	}

	snap := &domain.StatementSnapshot{
		Symbol:          ticker,
		CompanyName:     payload.CompanyName,
		BalanceSheet:    payload.BalanceSheet,
		IncomeStatement: payload.IncomeStatement,
		Meta:            payload.Meta,
	}

	c.log.Debug().
		Str("ticker", ticker).
		Int("balance_sheet_lines", len(snap.BalanceSheet)).
		Int("income_statement_lines", len(snap.IncomeStatement)).
		Msg("Snapshot fetched")

	return snap, nil
}
