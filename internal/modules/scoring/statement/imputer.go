package statement

// fallbackTotalLiabilities is the absolute fallback when neither total
// liabilities nor the equity identity can produce a value.
const fallbackTotalLiabilities = 100_000

// Heuristic ratios for current asset/liability estimates when the statement
// only carries totals.
const (
	currentAssetsRatio      = 0.40
	currentLiabilitiesRatio = 0.60
)

// fieldSet holds resolved canonical values. Absence of a key means the field
// is still unresolved.
type fieldSet map[Field]float64

func (f fieldSet) has(field Field) bool {
	_, ok := f[field]
	return ok
}

// impute fills unresolved fields from fields already resolved or imputed
// earlier in the same pass. The step order is fixed: later steps may depend
// on earlier outputs, and the dependency graph is acyclic so a single pass
// suffices. Every substitution is deterministic and reported back to the
// caller for diagnostics.
func (f fieldSet) impute() []string {
	var estimated []string

	// Total liabilities from the accounting identity assets = liabilities +
	// equity, else the absolute fallback constant.
	if !f.has(FieldTotalLiabilities) {
		if f.has(FieldTotalEquity) && f.has(FieldTotalAssets) {
			f[FieldTotalLiabilities] = f[FieldTotalAssets] - f[FieldTotalEquity]
		} else {
			f[FieldTotalLiabilities] = fallbackTotalLiabilities
		}
		estimated = append(estimated, string(FieldTotalLiabilities))
	}

	// Retained earnings approximated by book equity.
	if !f.has(FieldRetainedEarnings) && f.has(FieldTotalAssets) && f.has(FieldTotalLiabilities) {
		f[FieldRetainedEarnings] = f[FieldTotalAssets] - f[FieldTotalLiabilities]
		estimated = append(estimated, string(FieldRetainedEarnings))
	}

	// Net income as an EBIT proxy.
	if !f.has(FieldEBIT) && f.has(FieldNetIncome) {
		f[FieldEBIT] = f[FieldNetIncome]
		estimated = append(estimated, string(FieldEBIT))
	}

	// Current assets/liabilities from fixed shares of the totals.
	if !f.has(FieldCurrentAssets) && f.has(FieldTotalAssets) {
		f[FieldCurrentAssets] = f[FieldTotalAssets] * currentAssetsRatio
		estimated = append(estimated, string(FieldCurrentAssets))
	}
	if !f.has(FieldCurrentLiabilities) && f.has(FieldTotalLiabilities) {
		f[FieldCurrentLiabilities] = f[FieldTotalLiabilities] * currentLiabilitiesRatio
		estimated = append(estimated, string(FieldCurrentLiabilities))
	}

	return estimated
}

// workingCapital computes current assets minus current liabilities when both
// are known after imputation. Otherwise it is explicitly 0.0, a low
// confidence input.
func (f fieldSet) workingCapital() (float64, bool) {
	if f.has(FieldCurrentAssets) && f.has(FieldCurrentLiabilities) {
		return f[FieldCurrentAssets] - f[FieldCurrentLiabilities], true
	}
	return 0.0, false
}
