package scorers

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// marginFraction bounds the confidence interval on either side to 10% of
// the remaining headroom (100 - base) in asymmetric mode, and to 5% of the
// base score in flat mode.
const (
	marginFraction     = 0.1
	flatMarginFraction = 0.05
)

// FusionWeights combines the two normalized ratio scores and the sentiment
// signal. Weights must sum to 1; config validation enforces this.
type FusionWeights struct {
	Altman    float64
	Ohlson    float64
	Sentiment float64
}

// DefaultFusionWeights matches the documented 50/40/10 split.
var DefaultFusionWeights = FusionWeights{Altman: 0.50, Ohlson: 0.40, Sentiment: 0.10}

// Fused is the fusion output: the point estimate plus its confidence
// interval, all on the 0-100 scale with full internal precision.
type Fused struct {
	Base float64
	Min  float64
	Max  float64
}

// Fuse combines the normalized Altman score, normalized Ohlson score and the
// sentiment signal (in [0,1]) into the final score with an asymmetric
// interval. When sentiment is strongly positive the interval skews upward,
// and vice versa; the margin shrinks as the base approaches 100.
func (w FusionWeights) Fuse(altmanNorm, ohlsonNorm, sentiment float64) Fused {
	base := floats.Dot(
		[]float64{w.Altman, w.Ohlson, w.Sentiment},
		[]float64{altmanNorm, ohlsonNorm, sentiment * 100},
	)

	marginHigh := sentiment * marginFraction * (100 - base)
	marginLow := (1 - sentiment) * marginFraction * (100 - base)

	return Fused{
		Base: base,
		Min:  base - marginLow,
		Max:  base + marginHigh,
	}
}

// FuseFlat is the alternative flat-margin mode: a symmetric ±5% interval
// around the base score, independent of sentiment conviction.
func (w FusionWeights) FuseFlat(altmanNorm, ohlsonNorm, sentiment float64) Fused {
	base := floats.Dot(
		[]float64{w.Altman, w.Ohlson, w.Sentiment},
		[]float64{altmanNorm, ohlsonNorm, sentiment * 100},
	)

	margin := base * flatMarginFraction

	return Fused{
		Base: base,
		Min:  base - margin,
		Max:  base + margin,
	}
}

// Round2 rounds to 2 decimal places for presentation. Internal computation
// keeps full precision until this final step.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
