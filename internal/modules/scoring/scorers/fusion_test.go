package scorers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

func TestFuse_IntervalProperties(t *testing.T) {
	weights := DefaultFusionWeights

	for _, sentiment := range []float64{0.0, 0.1, 0.5, 0.9, 1.0} {
		for _, altman := range []float64{0, 30, 69.23, 100} {
			for _, ohlson := range []float64{0, 45, 100} {
				fused := weights.Fuse(altman, ohlson, sentiment)

				assert.LessOrEqual(t, fused.Min, fused.Base)
				assert.GreaterOrEqual(t, fused.Max, fused.Base)

				// Neither bound may stray more than 10% of the headroom.
				headroom := 0.1 * (100 - fused.Base)
				assert.LessOrEqual(t, fused.Max-fused.Base, headroom+1e-9)
				assert.LessOrEqual(t, fused.Base-fused.Min, headroom+1e-9)
			}
		}
	}
}

func TestFuse_SentimentSkewsInterval(t *testing.T) {
	weights := DefaultFusionWeights

	bullish := weights.Fuse(60, 40, 0.9)
	bearish := weights.Fuse(60, 40, 0.1)

	// Strong positive sentiment leaves more room above than below.
	assert.Greater(t, bullish.Max-bullish.Base, bullish.Base-bullish.Min)
	// Strong negative sentiment skews the other way.
	assert.Greater(t, bearish.Base-bearish.Min, bearish.Max-bearish.Base)
}

func TestFuseFlat_SymmetricFivePercent(t *testing.T) {
	fused := DefaultFusionWeights.FuseFlat(60, 40, 0.5)

	assert.InDelta(t, 51.0, fused.Base, 1e-9) // 0.5*60 + 0.4*40 + 0.1*50
	assert.InDelta(t, fused.Base*0.05, fused.Base-fused.Min, 1e-9)
	assert.InDelta(t, fused.Base*0.05, fused.Max-fused.Base, 1e-9)
}

// TestFusion_FloorRecordFixture pins the deterministic output for a record
// sitting entirely on its floors and defaults with neutral sentiment. Any
// change to coefficients, calibration bounds or fusion math shows up here.
func TestFusion_FloorRecordFixture(t *testing.T) {
	rec := domain.FinancialRecord{
		TotalAssets:       1_000_000,
		TotalLiabilities:  100_000,
		MarketValueEquity: 1_000_000,
		SentimentScore:    0.5,
	}

	altmanZ := AltmanZScore(rec)
	ohlsonO := OhlsonOScore(rec)
	assert.InDelta(t, 6.0, altmanZ, 1e-9)
	assert.InDelta(t, -6.33991279709146, ohlsonO, 1e-9)

	altmanNorm := Normalize(altmanZ, AltmanCalibrationLo, AltmanCalibrationHi)
	ohlsonNorm := Normalize(ohlsonO, OhlsonCalibrationLo, OhlsonCalibrationHi)
	assert.InDelta(t, 69.23076923076923, altmanNorm, 1e-9)
	assert.InDelta(t, 0.0, ohlsonNorm, 1e-9)

	fused := DefaultFusionWeights.Fuse(altmanNorm, ohlsonNorm, rec.SentimentScore)
	assert.InDelta(t, 39.62, Round2(fused.Base), 1e-9)
	assert.InDelta(t, 36.60, Round2(fused.Min), 1e-9)
	assert.InDelta(t, 42.63, Round2(fused.Max), 1e-9)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 39.62, Round2(39.61538461538461))
	assert.Equal(t, -6.34, Round2(-6.33991279709146))
	assert.Equal(t, 1.0, Round2(0.999))
}
