package allocation

import (
	"github.com/shopspring/decimal"

	"Portfolioo/internal/model"
)

// Holding is one portfolio line: a security position or the cash balance.
// Category and target rate are derived from Code on every call.
type Holding struct {
	ID     string
	Code   string
	Amount decimal.Decimal

	goal decimal.Decimal
}

// NewHolding creates a holding worth amount yen.
func NewHolding(id, code string, amount int64) *Holding {
	return &Holding{ID: id, Code: code, Amount: decimal.NewFromInt(amount)}
}

// NewCashHolding creates the cash holding.
func NewCashHolding(id string, amount int64) *Holding {
	return NewHolding(id, CashCode, amount)
}

// Category returns the asset class of the holding's code.
func (h *Holding) Category() model.Category {
	return Classify(h.Code)
}

// TargetRate returns the policy rate for the holding's category.
func (h *Holding) TargetRate() decimal.Decimal {
	return RateFor(h.Category())
}

// Compute sets the goal amount from the portfolio total and the sum of the
// holding's own category. The whole category deviation is applied to this
// holding, so goals of holdings sharing a category do not add up to the
// category target.
func (h *Holding) Compute(totalSum, categorySum decimal.Decimal) {
	categoryTarget := totalSum.Mul(h.TargetRate())
	h.goal = h.Amount.Add(categoryTarget.Sub(categorySum))
}

// AmountGoal returns the value the holding should reach. Zero until Compute runs.
func (h *Holding) AmountGoal() decimal.Decimal {
	return h.goal
}

// Delta returns AmountGoal - Amount. Negative means overweight.
func (h *Holding) Delta() decimal.Decimal {
	return h.goal.Sub(h.Amount)
}

// IsCash reports whether the holding carries the cash sentinel code.
func (h *Holding) IsCash() bool {
	return h.Code == CashCode
}

// Result returns the exposed triple together with the holding's identity.
func (h *Holding) Result() model.HoldingResult {
	return model.HoldingResult{
		ID:       h.ID,
		Code:     h.Code,
		Category: h.Category(),
		Amount:   h.Amount,
		Goal:     h.goal,
		Delta:    h.Delta(),
	}
}
