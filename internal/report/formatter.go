package report

import (
	"fmt"
	"strings"
	"time"

	"Portfolioo/internal/allocation"
)

// FormatHolding formats the amount/goal/delta triple of one holding.
func FormatHolding(h *allocation.Holding) string {
	return fmt.Sprintf("%-12s %-10s %-22s 時価 %s | 適正 %s | 差分 %s",
		h.ID, h.Code, h.Category(), Yen(h.Amount), Yen(h.AmountGoal()), SignedYen(h.Delta()))
}

// FormatReport formats a computed portfolio: one line per holding, the
// category breakdown, then the total and cash summary line.
func FormatReport(p *allocation.Portfolio) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Portfolioo | %s\n\n", time.Now().Format("2006-01-02 15:04")))

	b.WriteString("Holdings:\n")
	for _, h := range p.Holdings() {
		b.WriteString("  " + FormatHolding(h) + "\n")
	}

	b.WriteString("\nCategories:\n")
	for _, s := range p.Summary() {
		b.WriteString(fmt.Sprintf("  %-22s %4s  現在 %s | 目標 %s | 乖離 %s\n",
			s.Category, Percent(s.Rate), Yen(s.Sum), Yen(s.Target), SignedYen(s.Deviation)))
	}

	b.WriteString("\n" + FormatSummaryLine(p) + "\n")
	return b.String()
}

// FormatSummaryLine formats the total and the cash goal/delta.
func FormatSummaryLine(p *allocation.Portfolio) string {
	line := fmt.Sprintf("総合計: %s", Yen(p.TotalSum()))
	cash, ok := p.Cash()
	if !ok {
		return line
	}
	return line + fmt.Sprintf(" | 現金: %s | 適正: %s | 差分: %s",
		Yen(cash.Amount), Yen(cash.AmountGoal()), SignedYen(cash.Delta()))
}
