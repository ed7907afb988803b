package statement

import (
	"github.com/rs/zerolog"

	"github.com/credtech/credscore/internal/modules/scoring/domain"
)

// Builder turns a raw statement snapshot into a fully populated canonical
// record. It is stateless apart from its logger, so building the same
// snapshot twice yields identical records.
type Builder struct {
	log zerolog.Logger
}

// NewBuilder creates a statement builder.
func NewBuilder(log zerolog.Logger) *Builder {
	return &Builder{
		log: log.With().Str("component", "statement_builder").Logger(),
	}
}

// Build resolves, imputes and floors the snapshot into a canonical record.
// The returned record has every field set to a finite number. Substitutions
// degrade extraction quality but are never errors; they are logged as
// diagnostics and scoring proceeds.
func (b *Builder) Build(snap *domain.StatementSnapshot, sentiment float64) domain.FinancialRecord {
	fields := fieldSet{}

	for field, aliases := range balanceSheetAliases {
		if v, ok := Resolve(snap.BalanceSheet, aliases); ok {
			fields[field] = v
		}
	}
	for field, aliases := range incomeStatementAliases {
		if v, ok := Resolve(snap.IncomeStatement, aliases); ok {
			fields[field] = v
		}
	}
	for field, aliases := range metaAliases {
		if v, ok := Resolve(snap.Meta, aliases); ok {
			fields[field] = v
		}
	}

	for _, field := range fields.impute() {
		b.log.Info().
			Str("ticker", snap.Symbol).
			Str("field", field).
			Msg("Estimated missing field from accounting identity or heuristic ratio")
	}

	// Working capital is derived before floors so that a reported negative
	// current position still flows into the Altman numerator unchanged.
	workingCapital, known := fields.workingCapital()
	if !known {
		b.log.Warn().
			Str("ticker", snap.Symbol).
			Msg("Working capital set to 0 due to missing current asset/liability data")
	}

	for _, field := range fields.applyFloors() {
		b.log.Warn().
			Str("ticker", snap.Symbol).
			Str("field", field).
			Msg("Using default for unresolved field")
	}

	return domain.FinancialRecord{
		TotalAssets:        fields[FieldTotalAssets],
		TotalLiabilities:   fields[FieldTotalLiabilities],
		CurrentAssets:      fields[FieldCurrentAssets],
		CurrentLiabilities: fields[FieldCurrentLiabilities],
		WorkingCapital:     workingCapital,
		RetainedEarnings:   fields[FieldRetainedEarnings],
		EBIT:               fields[FieldEBIT],
		Sales:              fields[FieldSales],
		NetIncome:          fields[FieldNetIncome],
		MarketValueEquity:  fields[FieldMarketValueEquity],
		SentimentScore:     sentiment,
	}
}
