package recorder

import (
	"github.com/shopspring/decimal"

	"Portfolioo/internal/allocation"
	"Portfolioo/internal/model"
)

// Trigger names what started a calculation pass.
type Trigger string

const (
	TriggerManual    Trigger = "MANUAL"
	TriggerScheduled Trigger = "SCHEDULED"
	TriggerStartup   Trigger = "STARTUP"
)

// PassSnapshot holds everything one calculation pass produced.
type PassSnapshot struct {
	Trigger    Trigger
	Source     string
	TotalSum   decimal.Decimal
	CashAmount decimal.Decimal
	CashGoal   decimal.Decimal
	Holdings   []model.HoldingResult
	Categories []model.CategorySummary
}

// CashEvent records a change of the user-entered cash balance.
type CashEvent struct {
	Before int64
	After  int64
	Note   string
}

// Recorder persists historical data for analysis.
type Recorder interface {
	RecordPass(snap *PassSnapshot) (int64, error)
	RecordCashChange(evt *CashEvent) error
	Close() error
}

// NewPassSnapshot captures the computed state of p.
func NewPassSnapshot(p *allocation.Portfolio, trigger Trigger, source string) *PassSnapshot {
	snap := &PassSnapshot{
		Trigger:    trigger,
		Source:     source,
		TotalSum:   p.TotalSum(),
		Holdings:   p.Results(),
		Categories: p.Summary(),
	}
	if cash, ok := p.Cash(); ok {
		snap.CashAmount = cash.Amount
		snap.CashGoal = cash.AmountGoal()
	}
	return snap
}
