// Package domain defines the value objects for the credit scoring module.
package domain

// StatementSnapshot is the raw quarterly statement data returned by the
// financial data provider for a single company. Labels are free-text line
// items; values are kept untyped because upstream feeds mix numbers, numeric
// strings and nulls. The snapshot is read-only input and is never mutated.
type StatementSnapshot struct {
	Symbol          string
	CompanyName     string
	BalanceSheet    map[string]any
	IncomeStatement map[string]any
	Meta            map[string]any
}

// Empty reports whether the snapshot carries no usable statement data.
func (s *StatementSnapshot) Empty() bool {
	return s == nil || len(s.BalanceSheet) == 0 || len(s.IncomeStatement) == 0
}

// FinancialRecord is the reconciled canonical record both ratio models
// consume. Every field is a finite number once the record leaves the
// statement pipeline; it is constructed once per ticker and never shared.
type FinancialRecord struct {
	TotalAssets        float64
	TotalLiabilities   float64
	CurrentAssets      float64
	CurrentLiabilities float64
	WorkingCapital     float64
	RetainedEarnings   float64
	EBIT               float64
	Sales              float64
	NetIncome          float64
	MarketValueEquity  float64
	SentimentScore     float64
}

// ScoreResult is the scored output for a single ticker. Score fields are on
// the 0-100 scale and rounded to 2 decimals; AltmanZ and OhlsonO are the raw
// ratio-model outputs rounded for display.
type ScoreResult struct {
	Ticker      string  `json:"ticker"`
	CompanyName string  `json:"company_name,omitempty"`
	BaseScore   float64 `json:"base_score"`
	ScoreMin    float64 `json:"score_min"`
	ScoreMax    float64 `json:"score_max"`
	AltmanZ     float64 `json:"altman_z"`
	OhlsonO     float64 `json:"ohlson_o"`
	Sentiment   float64 `json:"sentiment"`
}

// BatchResult aggregates a multi-ticker scoring run. Every requested ticker
// appears either as a key in Results or as an entry in FailedTickers.
type BatchResult struct {
	Results        map[string]ScoreResult `json:"results"`
	FailedTickers  []string               `json:"failed_tickers"`
	ProcessedCount int                    `json:"processed_count"`
	RequestedCount int                    `json:"requested_count"`
}

// Breakdown describes the relative contribution of each ratio-model
// component plus the fusion weights. Static configuration data only.
type Breakdown struct {
	Altman  map[string]float64 `json:"altman"`
	Ohlson  map[string]float64 `json:"ohlson"`
	Weights map[string]float64 `json:"weights"`
}
