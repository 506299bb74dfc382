package holdings

import (
	"errors"
	"fmt"
	"log"

	"Portfolioo/internal/allocation"
)

// DefaultCashID is the id given to the cash holding.
const DefaultCashID = "cash"

// Collector builds a computed portfolio from a Source and a cash balance.
type Collector struct {
	Source Source
	CashID string
}

// NewCollector creates a new Collector.
func NewCollector(source Source) *Collector {
	return &Collector{Source: source, CashID: DefaultCashID}
}

// Collect reads every entry, adds the cash holding first and the entries
// with a market value after it, then computes all goals.
func (c *Collector) Collect(cash int64) (*allocation.Portfolio, error) {
	entries, err := c.Source.Entries()
	if err != nil {
		return nil, fmt.Errorf("fetch entries from %s: %w", c.Source.Name(), err)
	}

	p := allocation.NewPortfolio()
	p.Add(allocation.NewCashHolding(c.CashID, cash))

	for _, e := range entries {
		amount, err := ParseAmount(e.Value)
		if errors.Is(err, ErrNoValue) {
			continue
		}
		if err != nil {
			log.Printf("[WARN] skipping holding %s (%s): %v", e.ID, e.Code, err)
			continue
		}
		p.Add(allocation.NewHolding(e.ID, e.Code, amount))
	}

	p.CalcAll()
	return p, nil
}
