package allocation

import (
	"github.com/shopspring/decimal"

	"Portfolioo/internal/model"
)

// CashCode is the sentinel code carried by the cash holding.
const CashCode = "cash"

// classification maps instrument codes to asset categories. Matches are exact:
// no case folding, no trimming.
var classification = map[string]model.Category{
	"03319172": model.DevelopedEquity,
	"29316153": model.DevelopedEquity,
	"64317168": model.DevelopedEquity,
	"9I312179": model.DevelopedEquity,
	"0331C177": model.EmergingEquity,
	"2931517A": model.EmergingEquity,
	"03317172": model.DomesticLargeCap,
	"29312154": model.DomesticLargeCap,
	"09311143": model.DomesticSmallMidCap,
	"2931213C": model.DevelopedBonds,
	"4731216A": model.DevelopedBonds,
	"0431U169": model.EmergingBonds,
	"03318172": model.DomesticBonds,
	"29314151": model.DomesticBonds,
	"6431717B": model.Gold,
	"AJ319178": model.DevelopedREIT,
	"AJ318178": model.DomesticREIT,
	CashCode:   model.Cash,
}

// targetRates is the allocation policy. The rates are not normalized.
var targetRates = map[model.Category]decimal.Decimal{
	model.DevelopedEquity:     decimal.RequireFromString("0.28"),
	model.EmergingEquity:      decimal.RequireFromString("0.05"),
	model.DomesticLargeCap:    decimal.RequireFromString("0.15"),
	model.DomesticSmallMidCap: decimal.RequireFromString("0.06"),
	model.DevelopedBonds:      decimal.RequireFromString("0.05"),
	model.EmergingBonds:       decimal.RequireFromString("0.04"),
	model.DomesticBonds:       decimal.RequireFromString("0.05"),
	model.Gold:                decimal.RequireFromString("0.04"),
	model.DevelopedREIT:       decimal.RequireFromString("0.09"),
	model.DomesticREIT:        decimal.RequireFromString("0.09"),
	model.Cash:                decimal.RequireFromString("0.10"),
}

// Classify returns the category of an instrument code, or Uncategorized.
func Classify(code string) model.Category {
	if c, ok := classification[code]; ok {
		return c
	}
	return model.Uncategorized
}

// RateFor returns the target allocation rate of a category. Uncategorized and
// values outside the enumeration get zero.
func RateFor(c model.Category) decimal.Decimal {
	if r, ok := targetRates[c]; ok {
		return r
	}
	return decimal.Zero
}

// Classification returns a copy of the code table.
func Classification() map[string]model.Category {
	out := make(map[string]model.Category, len(classification))
	for k, v := range classification {
		out[k] = v
	}
	return out
}

// Policy returns a copy of the rate table.
func Policy() map[model.Category]decimal.Decimal {
	out := make(map[model.Category]decimal.Decimal, len(targetRates))
	for k, v := range targetRates {
		out[k] = v
	}
	return out
}
