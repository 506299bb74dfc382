package scheduler

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"Portfolioo/internal/cash"
	"Portfolioo/internal/holdings"
	"Portfolioo/internal/recorder"
)

type captureRecorder struct {
	passes []*recorder.PassSnapshot
	cash   []*recorder.CashEvent
}

func (c *captureRecorder) RecordPass(snap *recorder.PassSnapshot) (int64, error) {
	c.passes = append(c.passes, snap)
	return int64(len(c.passes)), nil
}

func (c *captureRecorder) RecordCashChange(evt *recorder.CashEvent) error {
	c.cash = append(c.cash, evt)
	return nil
}

func (c *captureRecorder) Close() error { return nil }

func newTestScheduler(t *testing.T, initialCash int64) (*Scheduler, *captureRecorder) {
	t.Helper()
	cm, err := cash.NewManager(filepath.Join(t.TempDir(), "cash_state.json"), initialCash)
	if err != nil {
		t.Fatalf("cash.NewManager: %v", err)
	}
	src := &holdings.StaticSource{List: []holdings.Entry{
		{ID: "viewItem1", Code: "03319172", Value: "100"},
		{ID: "viewItem2", Code: "64317168", Value: "300"},
		{ID: "viewItem3", Code: "03317172", Value: "400"},
	}}
	rec := &captureRecorder{}
	return NewScheduler(holdings.NewCollector(src), cm, rec), rec
}

func TestRunPass_UsesCurrentCash(t *testing.T) {
	s, rec := newTestScheduler(t, 200)

	p, err := s.RunPass(recorder.TriggerManual)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if !p.TotalSum().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total = %s, want 1000", p.TotalSum())
	}
	if len(rec.passes) != 1 || rec.passes[0].Trigger != recorder.TriggerManual {
		t.Fatalf("expected one recorded manual pass, got %+v", rec.passes)
	}
	if !rec.passes[0].CashGoal.Equal(decimal.NewFromInt(100)) {
		t.Errorf("cash goal = %s, want 100", rec.passes[0].CashGoal)
	}
}

func TestSetCash_AffectsNextPass(t *testing.T) {
	s, rec := newTestScheduler(t, 200)

	if err := s.SetCash(1200, "test"); err != nil {
		t.Fatalf("SetCash: %v", err)
	}
	if len(rec.cash) != 1 || rec.cash[0].Before != 200 || rec.cash[0].After != 1200 {
		t.Errorf("unexpected cash events %+v", rec.cash)
	}

	p, err := s.RunPass(recorder.TriggerManual)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	if !p.TotalSum().Equal(decimal.NewFromInt(2000)) {
		t.Errorf("total = %s, want 2000", p.TotalSum())
	}

	if err := s.SetCash(-1, "bad"); err == nil {
		t.Error("expected error for negative cash")
	}
}

func TestRunNow_Reports(t *testing.T) {
	s, _ := newTestScheduler(t, 200)
	var got string
	s.Report = func(text string) { got = text }
	s.RunNow()
	if !strings.Contains(got, "総合計: 1,000円") {
		t.Errorf("report missing total line:\n%s", got)
	}
}

func TestRegister_InvalidCron(t *testing.T) {
	s, _ := newTestScheduler(t, 0)
	if err := s.Register("not a cron"); err == nil {
		t.Error("expected error for invalid cron expression")
	}
	if err := s.Register("0 0 18 * * 1-5"); err != nil {
		t.Errorf("Register: %v", err)
	}
}

func TestRunPass_SeesCashSavedByAnotherManager(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cash_state.json")
	daemon, err := cash.NewManager(path, 200)
	if err != nil {
		t.Fatalf("cash.NewManager: %v", err)
	}
	src := &holdings.StaticSource{List: []holdings.Entry{
		{ID: "viewItem1", Code: "03319172", Value: "1000"},
	}}
	s := NewScheduler(holdings.NewCollector(src), daemon, &captureRecorder{})

	other, err := cash.NewManager(path, 0)
	if err != nil {
		t.Fatalf("second manager: %v", err)
	}
	if _, err := other.Set(5000); err != nil {
		t.Fatalf("Set: %v", err)
	}

	p, err := s.RunPass(recorder.TriggerScheduled)
	if err != nil {
		t.Fatalf("RunPass: %v", err)
	}
	c, ok := p.Cash()
	if !ok || !c.Amount.Equal(decimal.NewFromInt(5000)) {
		t.Errorf("pass used cash %v, want persisted 5000", c)
	}
	if !p.TotalSum().Equal(decimal.NewFromInt(6000)) {
		t.Errorf("total = %s, want 6000", p.TotalSum())
	}
}
