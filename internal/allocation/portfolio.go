package allocation

import (
	"github.com/shopspring/decimal"

	"Portfolioo/internal/model"
)

// Portfolio accumulates holdings and drives the goal computation.
// It is not safe for concurrent use; build one per computation pass.
type Portfolio struct {
	holdings     []*Holding
	totalSum     decimal.Decimal
	categorySums map[model.Category]decimal.Decimal
}

// NewPortfolio returns an empty portfolio.
func NewPortfolio() *Portfolio {
	return &Portfolio{categorySums: make(map[model.Category]decimal.Decimal)}
}

// Add appends h and folds its amount into the total and its category sum.
func (p *Portfolio) Add(h *Holding) {
	p.holdings = append(p.holdings, h)
	p.totalSum = p.totalSum.Add(h.Amount)
	c := h.Category()
	p.categorySums[c] = p.categorySums[c].Add(h.Amount)
}

// CalcAll computes every holding's goal from the current aggregates.
// All Add calls must have happened before.
func (p *Portfolio) CalcAll() {
	for _, h := range p.holdings {
		h.Compute(p.totalSum, p.categorySums[h.Category()])
	}
}

// TotalSum returns the sum of all added amounts.
func (p *Portfolio) TotalSum() decimal.Decimal {
	return p.totalSum
}

// CategorySum returns the sum of amounts in c, zero if no holding has it.
func (p *Portfolio) CategorySum(c model.Category) decimal.Decimal {
	return p.categorySums[c]
}

// Len returns the number of holdings.
func (p *Portfolio) Len() int {
	return len(p.holdings)
}

// Holdings returns the holdings in insertion order.
func (p *Portfolio) Holdings() []*Holding {
	out := make([]*Holding, len(p.holdings))
	copy(out, p.holdings)
	return out
}

// GetByID returns the first holding with the given id.
func (p *Portfolio) GetByID(id string) (*Holding, bool) {
	for _, h := range p.holdings {
		if h.ID == id {
			return h, true
		}
	}
	return nil, false
}

// Cash returns the first holding carrying the cash code.
func (p *Portfolio) Cash() (*Holding, bool) {
	for _, h := range p.holdings {
		if h.IsCash() {
			return h, true
		}
	}
	return nil, false
}

// Results returns the computed values of every holding in insertion order.
func (p *Portfolio) Results() []model.HoldingResult {
	out := make([]model.HoldingResult, 0, len(p.holdings))
	for _, h := range p.holdings {
		out = append(out, h.Result())
	}
	return out
}

// Summary returns one entry per named category, in enumeration order,
// followed by Uncategorized when some holding fell into it.
func (p *Portfolio) Summary() []model.CategorySummary {
	cats := model.Categories()
	if _, ok := p.categorySums[model.Uncategorized]; ok {
		cats = append(cats, model.Uncategorized)
	}
	out := make([]model.CategorySummary, 0, len(cats))
	for _, c := range cats {
		rate := RateFor(c)
		sum := p.categorySums[c]
		target := p.totalSum.Mul(rate)
		out = append(out, model.CategorySummary{
			Category:  c,
			Rate:      rate,
			Sum:       sum,
			Target:    target,
			Deviation: target.Sub(sum),
		})
	}
	return out
}
