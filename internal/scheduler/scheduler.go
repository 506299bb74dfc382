package scheduler

import (
	"fmt"
	"log"

	"Portfolioo/internal/allocation"
	"Portfolioo/internal/cash"
	"Portfolioo/internal/holdings"
	"Portfolioo/internal/recorder"
	"Portfolioo/internal/report"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
)

// Scheduler runs calculation passes on a cron schedule and on demand.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *holdings.Collector
	Cash      *cash.Manager
	Recorder  recorder.Recorder

	// Report receives the formatted report of each scheduled pass.
	Report func(text string)
}

// NewScheduler creates a new Scheduler.
func NewScheduler(col *holdings.Collector, cm *cash.Manager, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Cash:      cm,
		Recorder:  rec,
		Report:    func(text string) { log.Printf("[INFO] report:\n%s", text) },
	}
}

// Register adds the recalculation task.
func (s *Scheduler) Register(recalcCron string) error {
	if _, err := s.Cron.AddFunc(recalcCron, s.recalcTask); err != nil {
		return fmt.Errorf("register recalc task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler and waits for a running pass to finish.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one pass immediately and reports it.
func (s *Scheduler) RunNow() {
	s.runAndReport(recorder.TriggerStartup)
}

// RunPass builds a fresh portfolio from the persisted cash balance and the
// holdings source, computes it and records the result. A recorder failure is
// logged, not returned.
func (s *Scheduler) RunPass(trigger recorder.Trigger) (*allocation.Portfolio, error) {
	cashAmount, err := s.Cash.Reload()
	if err != nil {
		log.Printf("[WARN] reload cash, using last known balance %d: %v", cashAmount, err)
	}
	p, err := s.Collector.Collect(cashAmount)
	if err != nil {
		return nil, fmt.Errorf("collect: %w", err)
	}
	snap := recorder.NewPassSnapshot(p, trigger, s.Collector.Source.Name())
	if _, err := s.Recorder.RecordPass(snap); err != nil {
		log.Printf("[ERROR] record pass: %v", err)
	}
	log.Printf("[INFO] pass %s: %d holdings, total %s", trigger, p.Len(), report.Yen(p.TotalSum()))
	return p, nil
}

// SetCash updates the cash balance and records the change.
func (s *Scheduler) SetCash(amount int64, note string) error {
	prev, err := s.Cash.Set(amount)
	if err != nil {
		return err
	}
	if err := s.Recorder.RecordCashChange(&recorder.CashEvent{Before: prev, After: amount, Note: note}); err != nil {
		log.Printf("[ERROR] record cash change: %v", err)
	}
	log.Printf("[INFO] cash updated: %s -> %s", report.Number(decimal.NewFromInt(prev)), report.Number(decimal.NewFromInt(amount)))
	return nil
}

func (s *Scheduler) recalcTask() {
	log.Println("[INFO] running scheduled recalculation")
	s.runAndReport(recorder.TriggerScheduled)
}

func (s *Scheduler) runAndReport(trigger recorder.Trigger) {
	p, err := s.RunPass(trigger)
	if err != nil {
		log.Printf("[ERROR] %s pass: %v", trigger, err)
		return
	}
	s.Report(report.FormatReport(p))
}
