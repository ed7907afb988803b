// Package statement reconciles raw quarterly statement snapshots into the
// canonical financial record used by the ratio models. The pipeline runs in
// three fixed stages: alias resolution, imputation, then floors and defaults.
package statement

import (
	"encoding/json"
	"math"
	"strconv"
)

// Field identifies a canonical financial quantity independent of how it was
// labeled in the raw statement.
type Field string

const (
	FieldTotalAssets        Field = "total_assets"
	FieldTotalLiabilities   Field = "total_liabilities"
	FieldTotalEquity        Field = "total_equity" // intermediate, used by imputation only
	FieldCurrentAssets      Field = "current_assets"
	FieldCurrentLiabilities Field = "current_liabilities"
	FieldRetainedEarnings   Field = "retained_earnings"
	FieldSales              Field = "sales"
	FieldNetIncome          Field = "net_income"
	FieldEBIT               Field = "ebit"
	FieldMarketValueEquity  Field = "market_value_equity"
)

// Alias tables: ordered fallback chains per canonical field. The first alias
// present in the snapshot with a coercible, finite value wins. Order is part
// of the contract and covered by tests.
var (
	balanceSheetAliases = map[Field][]string{
		FieldTotalAssets:        {"Total Assets", "TotalAssets", "Assets"},
		FieldTotalLiabilities:   {"Total Liab", "Total Liabilities", "TotalLiabilities"},
		FieldTotalEquity:        {"Total Stockholder Equity", "Stockholders Equity", "Total Equity", "Shareholders Equity"},
		FieldCurrentAssets:      {"Total Current Assets", "TotalCurrentAssets", "Current Assets"},
		FieldCurrentLiabilities: {"Total Current Liabilities", "TotalCurrentLiabilities", "Current Liabilities"},
		FieldRetainedEarnings:   {"Retained Earnings", "RetainedEarnings"},
	}

	incomeStatementAliases = map[Field][]string{
		FieldSales:     {"Total Revenue", "TotalRevenue", "Revenue", "Net Sales"},
		FieldNetIncome: {"Net Income", "NetIncome"},
		FieldEBIT:      {"EBIT", "Ebit", "Operating Income", "OperatingIncome"},
	}

	metaAliases = map[Field][]string{
		FieldMarketValueEquity: {"marketCap", "MarketCap", "market_capitalization"},
	}
)

// Resolve returns the value of the first alias present in the snapshot with
// a usable numeric value. Malformed entries (absent keys, nulls, non-numeric
// values, NaN/Inf) are skipped, never fatal.
func Resolve(snapshot map[string]any, aliases []string) (float64, bool) {
	for _, alias := range aliases {
		raw, ok := snapshot[alias]
		if !ok {
			continue
		}
		if v, ok := coerce(raw); ok {
			return v, true
		}
	}
	return 0, false
}

// coerce converts a raw snapshot value to a finite float64. JSON decoding
// with UseNumber yields json.Number; upstream feeds also ship plain floats
// and numeric strings.
func coerce(raw any) (float64, bool) {
	var v float64
	switch t := raw.(type) {
	case float64:
		v = t
	case float32:
		v = float64(t)
	case int:
		v = float64(t)
	case int64:
		v = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return 0, false
		}
		v = parsed
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
