package holdings

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"Portfolioo/internal/model"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1,234,567", 1234567, false},
		{"0", 0, false},
		{" 980 ", 980, false},
		{"12,000円", 12000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-5", 0, true},
		{"1.5", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestParseAmount_NoValue(t *testing.T) {
	if _, err := ParseAmount("---"); !errors.Is(err, ErrNoValue) {
		t.Errorf("expected ErrNoValue, got %v", err)
	}
}

func TestCollect_CashFirstAndSkips(t *testing.T) {
	src := &StaticSource{List: []Entry{
		{ID: "viewItem1", Code: "03319172", Value: "100"},
		{ID: "viewItem2", Code: "64317168", Value: "300"},
		{ID: "viewItem3", Code: "03317172", Value: "---"},
		{ID: "viewItem4", Code: "03317172", Value: "oops"},
		{ID: "viewItem5", Code: "03317172", Value: "400"},
	}}
	p, err := NewCollector(src).Collect(200)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	hs := p.Holdings()
	if len(hs) != 4 {
		t.Fatalf("expected 4 holdings, got %d", len(hs))
	}
	if hs[0].ID != DefaultCashID || hs[0].Category() != model.Cash {
		t.Errorf("first holding = %+v, want cash", hs[0])
	}
	if !p.TotalSum().Equal(decimal.NewFromInt(1000)) {
		t.Errorf("total = %s, want 1000", p.TotalSum())
	}

	// Goals are already computed: cash target 100, cash sum 200.
	cash, _ := p.Cash()
	if !cash.AmountGoal().Equal(decimal.NewFromInt(100)) {
		t.Errorf("cash goal = %s, want 100", cash.AmountGoal())
	}
	h1, _ := p.GetByID("viewItem1")
	if !h1.AmountGoal().Equal(decimal.NewFromInt(-20)) {
		t.Errorf("viewItem1 goal = %s, want -20", h1.AmountGoal())
	}
}

func TestFileSource_Entries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdings.yaml")
	doc := `holdings:
  - id: viewItem1
    code: "03319172"
    value: "1,000"
  - id: viewItem2
    code: "AJ318178"
    value: "---"
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}
	entries, err := NewFileSource(path).Entries()
	if err != nil {
		t.Fatalf("Entries: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Code != "03319172" || entries[0].Value != "1,000" {
		t.Errorf("unexpected first entry %+v", entries[0])
	}

	p, err := NewCollector(NewFileSource(path)).Collect(0)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("expected cash + 1 holding, got %d", p.Len())
	}
}

func TestFileSource_Missing(t *testing.T) {
	_, err := NewCollector(NewFileSource(filepath.Join(t.TempDir(), "none.yaml"))).Collect(0)
	if err == nil {
		t.Error("expected error for missing holdings file")
	}
}
