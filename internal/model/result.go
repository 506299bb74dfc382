package model

import "github.com/shopspring/decimal"

// HoldingResult is what a computed holding exposes to the presentation layer.
type HoldingResult struct {
	ID       string
	Code     string
	Category Category
	Amount   decimal.Decimal
	Goal     decimal.Decimal
	Delta    decimal.Decimal // Goal - Amount
}

// CategorySummary is the aggregate position of one asset class.
type CategorySummary struct {
	Category  Category
	Rate      decimal.Decimal
	Sum       decimal.Decimal
	Target    decimal.Decimal // totalSum * Rate
	Deviation decimal.Decimal // Target - Sum, positive when underweight
}
