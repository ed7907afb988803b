package scorers

import "github.com/credtech/credscore/internal/modules/scoring/domain"

// Component contribution tables for the breakdown endpoint, in percent.
// Derived by evaluating each model term at a reference healthy-company
// profile and taking its share of the total absolute contribution.
var (
	altmanBreakdown = map[string]float64{
		"Working Capital Efficiency": 11.78,
		"Retained Earnings":          13.91,
		"Operating Performance":      51.03,
		"Market Valuation":           6.90,
		"Asset Turnover":             16.39,
	}

	ohlsonBreakdown = map[string]float64{
		"Company Size":       25.89,
		"Debt Structure":     8.17,
		"Working Capital":    28.70,
		"Liquidity Position": 1.52,
		"Profitability":      7.43,
		"Income Stability":   24.89,
		"Sales Efficiency":   3.41,
	}
)

// BuildBreakdown assembles the static breakdown metadata for the configured
// fusion weights. No computation happens per request.
func BuildBreakdown(weights FusionWeights) domain.Breakdown {
	altman := make(map[string]float64, len(altmanBreakdown))
	for k, v := range altmanBreakdown {
		altman[k] = v
	}
	ohlson := make(map[string]float64, len(ohlsonBreakdown))
	for k, v := range ohlsonBreakdown {
		ohlson[k] = v
	}

	return domain.Breakdown{
		Altman: altman,
		Ohlson: ohlson,
		Weights: map[string]float64{
			"altman_weight":    weights.Altman * 100,
			"ohlson_weight":    weights.Ohlson * 100,
			"sentiment_weight": weights.Sentiment * 100,
		},
	}
}
