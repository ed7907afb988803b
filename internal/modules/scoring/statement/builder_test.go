package statement

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

func fullSnapshot() *domain.StatementSnapshot {
	return &domain.StatementSnapshot{
		Symbol: "FULL",
		BalanceSheet: map[string]any{
			"Total Assets":              float64(2_000_000_000),
			"Total Liab":                float64(1_200_000_000),
			"Total Current Assets":      float64(700_000_000),
			"Total Current Liabilities": float64(500_000_000),
			"Retained Earnings":         float64(300_000_000),
		},
		IncomeStatement: map[string]any{
			"Total Revenue": float64(400_000_000),
			"Net Income":    float64(60_000_000),
			"EBIT":          float64(90_000_000),
		},
		Meta: map[string]any{
			"marketCap": float64(3_000_000_000),
		},
	}
}

func TestBuild_FullyResolvedSnapshot(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())

	rec := builder.Build(fullSnapshot(), 0.7)

	assert.Equal(t, float64(2_000_000_000), rec.TotalAssets)
	assert.Equal(t, float64(1_200_000_000), rec.TotalLiabilities)
	assert.Equal(t, float64(700_000_000), rec.CurrentAssets)
	assert.Equal(t, float64(500_000_000), rec.CurrentLiabilities)
	assert.Equal(t, float64(200_000_000), rec.WorkingCapital)
	assert.Equal(t, float64(300_000_000), rec.RetainedEarnings)
	assert.Equal(t, float64(90_000_000), rec.EBIT)
	assert.Equal(t, float64(400_000_000), rec.Sales)
	assert.Equal(t, float64(60_000_000), rec.NetIncome)
	assert.Equal(t, float64(3_000_000_000), rec.MarketValueEquity)
	assert.Equal(t, 0.7, rec.SentimentScore)
}

func TestBuild_ImputationChain(t *testing.T) {
	// Only totals, equity and net income are reported. Everything else must
	// come from the fixed imputation order.
	snap := &domain.StatementSnapshot{
		Symbol: "IMP",
		BalanceSheet: map[string]any{
			"Total Assets":             float64(2_000_000_000),
			"Total Stockholder Equity": float64(800_000_000),
		},
		IncomeStatement: map[string]any{
			"Net Income": float64(50_000_000),
		},
		Meta: map[string]any{
			"marketCap": float64(3_000_000_000),
		},
	}

	rec := NewBuilder(zerolog.Nop()).Build(snap, 0.5)

	// Liabilities from the equity identity.
	assert.Equal(t, float64(1_200_000_000), rec.TotalLiabilities)
	// Retained earnings from assets minus (imputed) liabilities.
	assert.Equal(t, float64(800_000_000), rec.RetainedEarnings)
	// EBIT proxied by net income.
	assert.Equal(t, float64(50_000_000), rec.EBIT)
	// Current assets/liabilities from the heuristic ratios.
	assert.Equal(t, float64(800_000_000), rec.CurrentAssets)  // 0.40 * total assets
	assert.Equal(t, float64(720_000_000), rec.CurrentLiabilities) // 0.60 * total liabilities
	// Working capital from the imputed pair.
	assert.Equal(t, float64(80_000_000), rec.WorkingCapital)
	// Sales unresolved and unimputable: defaulted to 0.
	assert.Equal(t, float64(0), rec.Sales)
}

func TestBuild_LiabilitiesFallbackConstant(t *testing.T) {
	// No liabilities and no equity: the absolute fallback applies.
	snap := &domain.StatementSnapshot{
		Symbol: "FBK",
		BalanceSheet: map[string]any{
			"Total Assets": float64(50_000_000),
		},
		IncomeStatement: map[string]any{
			"Net Income": float64(1_000_000),
		},
		Meta: map[string]any{},
	}

	rec := NewBuilder(zerolog.Nop()).Build(snap, 0.5)

	assert.Equal(t, float64(100_000), rec.TotalLiabilities)
	// Retained earnings still imputable from assets minus fallback.
	assert.Equal(t, float64(49_900_000), rec.RetainedEarnings)
	// Market cap unresolved: default and floor.
	assert.Equal(t, float64(1_000_000), rec.MarketValueEquity)
}

func TestBuild_DefaultsAndFloors(t *testing.T) {
	// Nothing usable at all: every field lands on its default, then floors.
	snap := &domain.StatementSnapshot{
		Symbol:          "DFLT",
		BalanceSheet:    map[string]any{"Irrelevant Line": "n/a"},
		IncomeStatement: map[string]any{"Other Line": nil},
		Meta:            map[string]any{},
	}

	rec := NewBuilder(zerolog.Nop()).Build(snap, 0.5)

	assert.Equal(t, float64(1_000_000), rec.TotalAssets)
	assert.Equal(t, float64(100_000), rec.TotalLiabilities)
	assert.Equal(t, float64(0), rec.CurrentAssets)
	assert.Equal(t, float64(0), rec.CurrentLiabilities)
	assert.Equal(t, float64(0), rec.WorkingCapital)
	assert.Equal(t, float64(0), rec.RetainedEarnings)
	assert.Equal(t, float64(0), rec.EBIT)
	assert.Equal(t, float64(0), rec.Sales)
	assert.Equal(t, float64(0), rec.NetIncome)
	assert.Equal(t, float64(1_000_000), rec.MarketValueEquity)
}

func TestBuild_FloorsClampReportedValues(t *testing.T) {
	// Reported values below the floors are clamped, not trusted.
	snap := &domain.StatementSnapshot{
		Symbol: "TINY",
		BalanceSheet: map[string]any{
			"Total Assets":              float64(500),
			"Total Liab":                float64(-10_000),
			"Total Current Assets":      float64(-5),
			"Total Current Liabilities": float64(-3),
		},
		IncomeStatement: map[string]any{
			"Total Revenue": float64(-100),
			"Net Income":    float64(-200),
		},
		Meta: map[string]any{
			"marketCap": float64(10),
		},
	}

	rec := NewBuilder(zerolog.Nop()).Build(snap, 0.5)

	assert.Equal(t, float64(1_000_000), rec.TotalAssets)
	assert.Equal(t, float64(100_000), rec.TotalLiabilities)
	assert.Equal(t, float64(0), rec.CurrentAssets)
	assert.Equal(t, float64(0), rec.CurrentLiabilities)
	assert.Equal(t, float64(1_000_000), rec.MarketValueEquity)
	assert.Equal(t, float64(0), rec.Sales)
	// Working capital derives from the reported (pre-floor) pair.
	assert.Equal(t, float64(-2), rec.WorkingCapital)
	// Fields without floors keep their negative values.
	assert.Equal(t, float64(-200), rec.NetIncome)
}

func TestBuild_Idempotent(t *testing.T) {
	builder := NewBuilder(zerolog.Nop())
	snap := fullSnapshot()

	first := builder.Build(snap, 0.5)
	second := builder.Build(snap, 0.5)

	require.Equal(t, first, second)
}
