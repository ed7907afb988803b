// Package scorers implements the ratio-based risk models, score
// normalization and signal fusion for the credit scoring engine.
package scorers

import "github.com/credtech/credscore/internal/modules/scoring/domain"

// Altman Z-score coefficients (1968 five-ratio form). Higher Z means a
// healthier company.
const (
	altmanWorkingCapital   = 1.2
	altmanRetainedEarnings = 1.4
	altmanEBIT             = 3.3
	altmanMarketValue      = 0.6
	altmanSales            = 1.0
)

// AltmanZScore computes the five-ratio Altman score from a canonical record.
// Denominators are guaranteed positive by the statement floors (total assets
// >= 1,000,000 and total liabilities >= 100,000), so no division guard is
// needed here.
func AltmanZScore(rec domain.FinancialRecord) float64 {
	return altmanWorkingCapital*(rec.WorkingCapital/rec.TotalAssets) +
		altmanRetainedEarnings*(rec.RetainedEarnings/rec.TotalAssets) +
		altmanEBIT*(rec.EBIT/rec.TotalAssets) +
		altmanMarketValue*(rec.MarketValueEquity/rec.TotalLiabilities) +
		altmanSales*(rec.Sales/rec.TotalAssets)
}
