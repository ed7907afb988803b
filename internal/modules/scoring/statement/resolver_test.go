package statement

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_AliasPriority(t *testing.T) {
	// Both aliases present with different values: the first alias in
	// priority order must win, deterministically.
	snapshot := map[string]any{
		"Total Liab":        float64(100),
		"Total Liabilities": float64(200),
	}

	v, ok := Resolve(snapshot, balanceSheetAliases[FieldTotalLiabilities])
	require.True(t, ok)
	assert.Equal(t, float64(100), v)
}

func TestResolve_FallsThroughToLaterAlias(t *testing.T) {
	snapshot := map[string]any{
		"Assets": float64(5000),
	}

	v, ok := Resolve(snapshot, balanceSheetAliases[FieldTotalAssets])
	require.True(t, ok)
	assert.Equal(t, float64(5000), v)
}

func TestResolve_Unresolved(t *testing.T) {
	_, ok := Resolve(map[string]any{"Unrelated": 1.0}, balanceSheetAliases[FieldTotalAssets])
	assert.False(t, ok)
}

func TestResolve_SkipsMalformedEntries(t *testing.T) {
	tests := []struct {
		name     string
		snapshot map[string]any
		want     float64
	}{
		{
			name: "null under first alias",
			snapshot: map[string]any{
				"Total Assets": nil,
				"TotalAssets":  float64(42),
			},
			want: 42,
		},
		{
			name: "non-numeric string under first alias",
			snapshot: map[string]any{
				"Total Assets": "n/a",
				"TotalAssets":  float64(7),
			},
			want: 7,
		},
		{
			name: "NaN under first alias",
			snapshot: map[string]any{
				"Total Assets": math.NaN(),
				"TotalAssets":  float64(9),
			},
			want: 9,
		},
		{
			name: "bool under first alias",
			snapshot: map[string]any{
				"Total Assets": true,
				"TotalAssets":  float64(3),
			},
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := Resolve(tt.snapshot, balanceSheetAliases[FieldTotalAssets])
			require.True(t, ok)
			assert.Equal(t, tt.want, v)
		})
	}
}

func TestResolve_CoercesWireFormats(t *testing.T) {
	snapshot := map[string]any{
		"Total Assets":      json.Number("1234567890.5"),
		"Total Liabilities": "250000",
	}

	v, ok := Resolve(snapshot, balanceSheetAliases[FieldTotalAssets])
	require.True(t, ok)
	assert.Equal(t, 1234567890.5, v)

	v, ok = Resolve(snapshot, balanceSheetAliases[FieldTotalLiabilities])
	require.True(t, ok)
	assert.Equal(t, float64(250000), v)
}
