package statement

// fieldRule pairs the default substituted for a still-unresolved field with
// an optional lower floor. Floors keep downstream ratio denominators away
// from zero and negative values.
type fieldRule struct {
	field    Field
	def      float64
	floor    float64
	hasFloor bool
}

// fieldRules is applied in order after imputation. Fields without a floor
// (retained earnings, EBIT, net income) may stay negative: the ratio models
// use them only as numerators.
var fieldRules = []fieldRule{
	{field: FieldTotalAssets, def: 1_000_000, floor: 1_000_000, hasFloor: true},
	{field: FieldTotalLiabilities, def: 100_000, floor: 100_000, hasFloor: true},
	{field: FieldCurrentAssets, def: 0, floor: 0, hasFloor: true},
	{field: FieldCurrentLiabilities, def: 0, floor: 0, hasFloor: true},
	{field: FieldMarketValueEquity, def: 1_000_000, floor: 1_000_000, hasFloor: true},
	{field: FieldSales, def: 0, floor: 0, hasFloor: true},
	{field: FieldRetainedEarnings, def: 0},
	{field: FieldEBIT, def: 0},
	{field: FieldNetIncome, def: 0},
}

// applyFloors substitutes defaults for unresolved fields, then clamps to the
// configured floors. Returns the fields that needed a default.
func (f fieldSet) applyFloors() []string {
	var defaulted []string
	for _, rule := range fieldRules {
		if !f.has(rule.field) {
			f[rule.field] = rule.def
			defaulted = append(defaulted, string(rule.field))
		}
		if rule.hasFloor && f[rule.field] < rule.floor {
			f[rule.field] = rule.floor
		}
	}
	return defaulted
}
