package domain

import "errors"

// ErrNoData indicates the financial data provider has no statement data for
// a ticker. It is a hard per-ticker failure: imputation cannot recover from
// an absent snapshot.
var ErrNoData = errors.New("no financial data available")
