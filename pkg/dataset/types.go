package dataset

import "github.com/shopspring/decimal"

// Observable is a single named quantity normalized to the dataset target
// unit. Values are exact decimals; the raw input unit is discarded once
// conversion succeeds.
type Observable struct {
	Name  string
	Value decimal.Decimal
	Unit  string
}

// Dataset is an ordered collection of observables rendered as one section of
// the index page. Observable order mirrors the YAML list order and is
// significant for display.
type Dataset struct {
	Title       string
	Observables []Observable
}
