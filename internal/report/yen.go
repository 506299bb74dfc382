package report

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

var (
	yenFormatter  = money.NewFormatter(0, ".", ",", "円", "1$")
	bareFormatter = money.NewFormatter(0, ".", ",", "", "1")
)

// Yen formats d rounded to whole yen, e.g. "1,234,567円".
func Yen(d decimal.Decimal) string {
	return yenFormatter.Format(d.Round(0).IntPart())
}

// Number formats d rounded to whole yen without the unit, e.g. "1,234,567".
func Number(d decimal.Decimal) string {
	return bareFormatter.Format(d.Round(0).IntPart())
}

// SignedYen is Yen with an explicit "+" for positive values.
func SignedYen(d decimal.Decimal) string {
	s := Yen(d)
	if d.Round(0).IsPositive() {
		return "+" + s
	}
	return s
}

// Percent formats a rate such as 0.28 as "28%".
func Percent(rate decimal.Decimal) string {
	return rate.Shift(2).StringFixed(0) + "%"
}
