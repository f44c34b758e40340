package cli

import (
	"fmt"
	"strings"

	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
)

// RenderTransactions renders a ledger view as a plain table.
func RenderTransactions(rows []model.Transaction) string {
	if len(rows) == 0 {
		return SubtleStyle.Render("no transactions")
	}

	var b strings.Builder
	b.WriteString(TableHeaderStyle.Render(fmt.Sprintf("%6s  %-10s  %-28s  %-40s  %12s", "id", "data", "kategoria", "opis", "kwota")))
	b.WriteString("\n")

	for _, t := range rows {
		desc := t.Description
		if len([]rune(desc)) > 40 {
			desc = string([]rune(desc)[:37]) + "..."
		}

		amountText := fmt.Sprintf("%12.2f", t.Amount)
		if t.Amount < 0 {
			amountText = ErrorStyle.Render(amountText)
		} else {
			amountText = SuccessStyle.Render(amountText)
		}

		b.WriteString(fmt.Sprintf("%6d  %-10s  %-28s  %-40s  %s\n",
			t.ID,
			t.Date.Format(model.DateFormat),
			t.Category,
			desc,
			amountText))
	}

	return b.String()
}

// RenderSummary renders the aggregate metrics shown under a view.
func RenderSummary(s ledger.Summary) string {
	content := fmt.Sprintf(`Transactions: %d
Visible total: %.2f PLN
Spend: %.2f PLN
Inflow: %.2f PLN
Mean: %.2f PLN`, s.Count, s.Total, s.Spend, s.Inflow, s.Mean)

	return RenderBox("Summary", content)
}

// RenderCategoryTotals renders per-category totals with a crude bar so
// the largest spenders stand out.
func RenderCategoryTotals(totals []ledger.CategoryTotal) string {
	if len(totals) == 0 {
		return SubtleStyle.Render("no data")
	}

	maxAbs := 0.0
	for _, ct := range totals {
		if a := abs(ct.Amount); a > maxAbs {
			maxAbs = a
		}
	}

	var b strings.Builder
	for _, ct := range totals {
		barLen := 0
		if maxAbs > 0 {
			barLen = int(abs(ct.Amount) / maxAbs * 30)
		}
		bar := strings.Repeat("█", barLen)
		if ct.Amount < 0 {
			bar = ErrorStyle.Render(bar)
		} else {
			bar = SuccessStyle.Render(bar)
		}
		b.WriteString(fmt.Sprintf("%-30s %10.2f  %s\n", ct.Category, ct.Amount, bar))
	}

	return b.String()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
