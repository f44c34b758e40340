package ledger

import (
	"sort"
	"time"

	"github.com/grosz-dev/grosz/internal/model"
)

// Filter selects the scope of the ledger a view operates on. Zero-value
// fields are inactive.
type Filter struct {
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Bank       model.Bank `json:"bank,omitempty"`
}

// Match reports whether a transaction falls inside the filter.
func (f Filter) Match(t model.Transaction) bool {
	if f.From != nil && t.Date.Before(*f.From) {
		return false
	}
	if f.To != nil && t.Date.After(*f.To) {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if t.Category == c {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.Bank != "" && model.DetectBank(t.Description) != f.Bank {
		return false
	}
	return true
}

// Apply returns the rows matching the filter, in ledger order.
func (f Filter) Apply(ledger []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, 0, len(ledger))
	for _, t := range ledger {
		if f.Match(t) {
			out = append(out, t)
		}
	}
	return out
}

// Summary holds the aggregate metrics shown alongside a filtered view.
type Summary struct {
	Total  float64
	Spend  float64
	Inflow float64
	Mean   float64
	Count  int
}

// Summarize computes view metrics. Spend and Inflow honor the sentinel
// categories: Nieistotne and Regularne oszczędzanie count toward
// neither, the income categories count toward Inflow.
func Summarize(rows []model.Transaction) Summary {
	var s Summary
	for _, t := range rows {
		s.Total += t.Amount
		s.Count++

		if !model.AggregateCategory(t.Category) {
			continue
		}
		if model.InflowCategory(t.Category) || t.Amount > 0 {
			s.Inflow += t.Amount
		} else {
			s.Spend += t.Amount
		}
	}
	if s.Count > 0 {
		s.Mean = s.Total / float64(s.Count)
	}
	return s
}

// CategoryTotal is one row of the per-category aggregate.
type CategoryTotal struct {
	Category string
	Amount   float64
	Count    int
}

// TotalsByCategory aggregates amounts per category, ordered by ascending
// amount so the largest spenders come first in a chart.
func TotalsByCategory(rows []model.Transaction) []CategoryTotal {
	byCat := make(map[string]*CategoryTotal)
	for _, t := range rows {
		ct, ok := byCat[t.Category]
		if !ok {
			ct = &CategoryTotal{Category: t.Category}
			byCat[t.Category] = ct
		}
		ct.Amount += t.Amount
		ct.Count++
	}

	out := make([]CategoryTotal, 0, len(byCat))
	for _, ct := range byCat {
		out = append(out, *ct)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Amount != out[j].Amount {
			return out[i].Amount < out[j].Amount
		}
		return out[i].Category < out[j].Category
	})
	return out
}
