package scorers

import (
	"math"

	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

// Ohlson O-score coefficients, adapted to single-quarter inputs. The classic
// model includes multi-period terms (price-level deflator, prior-year net
// income) that a single statement snapshot cannot supply; this seven-term
// form keeps the remaining classic coefficients and maps one term to each
// breakdown category exposed by BreakdownMetadata. Sign convention is
// inverted relative to Altman: higher O means riskier.
const (
	ohlsonIntercept       = -1.32
	ohlsonSize            = -0.407  // coefficient on log(total assets)
	ohlsonDebtStructure   = 6.03    // total liabilities / total assets
	ohlsonWorkingCapital  = -1.43   // working capital / total assets
	ohlsonLiquidity       = 0.0757  // current liabilities / current assets
	ohlsonProfitability   = -2.37   // net income / total assets
	ohlsonIncomeStability = 1.72    // loss indicator, 1 when net income < 0
	ohlsonSalesEfficiency = -0.521  // sales / total assets
)

// OhlsonOScore computes the single-period Ohlson-style score. Total assets
// is floored well above zero so log and the asset-ratio denominators are
// safe; current assets may legitimately be zero, in which case the liquidity
// term is dropped rather than divided.
func OhlsonOScore(rec domain.FinancialRecord) float64 {
	o := ohlsonIntercept +
		ohlsonSize*math.Log(rec.TotalAssets) +
		ohlsonDebtStructure*(rec.TotalLiabilities/rec.TotalAssets) +
		ohlsonWorkingCapital*(rec.WorkingCapital/rec.TotalAssets) +
		ohlsonProfitability*(rec.NetIncome/rec.TotalAssets) +
		ohlsonSalesEfficiency*(rec.Sales/rec.TotalAssets)

	if rec.CurrentAssets > 0 {
		o += ohlsonLiquidity * (rec.CurrentLiabilities / rec.CurrentAssets)
	}
	if rec.NetIncome < 0 {
		o += ohlsonIncomeStability
	}
	return o
}
