package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"Portfolioo/internal/allocation"
)

func TestYen(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0円"},
		{"999", "999円"},
		{"1000", "1,000円"},
		{"1234567", "1,234,567円"},
		{"-120", "-120円"},
		{"-1234.4", "-1,234円"},
		{"279.5", "280円"},
	}
	for _, tt := range tests {
		if got := Yen(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("Yen(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSignedYenAndPercent(t *testing.T) {
	if got := SignedYen(decimal.NewFromInt(2500)); got != "+2,500円" {
		t.Errorf("SignedYen = %q", got)
	}
	if got := SignedYen(decimal.Zero); got != "0円" {
		t.Errorf("SignedYen(0) = %q", got)
	}
	if got := Number(decimal.NewFromInt(1500000)); got != "1,500,000" {
		t.Errorf("Number = %q", got)
	}
	if got := Percent(decimal.RequireFromString("0.28")); got != "28%" {
		t.Errorf("Percent = %q", got)
	}
}

func TestFormatReport(t *testing.T) {
	p := allocation.NewPortfolio()
	p.Add(allocation.NewCashHolding("cash", 200))
	p.Add(allocation.NewHolding("viewItem1", "03319172", 100))
	p.Add(allocation.NewHolding("viewItem2", "64317168", 300))
	p.Add(allocation.NewHolding("viewItem3", "03317172", 400))
	p.CalcAll()

	out := FormatReport(p)
	for _, want := range []string{
		"viewItem1",
		"適正 -20円",
		"差分 -120円",
		"総合計: 1,000円",
		"現金: 200円 | 適正: 100円 | 差分: -100円",
		"developed equity",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSummaryLine_NoCash(t *testing.T) {
	p := allocation.NewPortfolio()
	p.Add(allocation.NewHolding("a", "03319172", 1500))
	p.CalcAll()
	if got := FormatSummaryLine(p); got != "総合計: 1,500円" {
		t.Errorf("summary = %q", got)
	}
}
