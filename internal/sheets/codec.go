package sheets

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/grosz-dev/grosz/internal/amount"
	"github.com/grosz-dev/grosz/internal/model"
)

// Header is the fixed first row of the remote table. SaveAll assumes row
// 1 is always exactly this; no other metadata rows are permitted.
var Header = []any{"id", "data", "kategoria", "opis", "kwota"}

// DecodeRows coerces raw sheet values into canonical transactions. The
// first row must be the header; its cells are matched lower-cased and
// trimmed. Value coercion is never fatal: bad ids become 0, bad amounts
// become 0, rows with unparseable dates are skipped.
func DecodeRows(values [][]any) ([]model.Transaction, error) {
	if len(values) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(values[0]))
	for i, cell := range values[0] {
		name := strings.ToLower(strings.TrimSpace(cellString(cell)))
		cols[name] = i
	}
	for _, required := range []string{"id", "data", "kategoria", "opis", "kwota"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("sheet header is missing the %q column", required)
		}
	}

	cell := func(row []any, name string) any {
		i := cols[name]
		if i >= len(row) {
			return nil
		}
		return row[i]
	}

	txns := make([]model.Transaction, 0, len(values)-1)
	skipped := 0
	for _, row := range values[1:] {
		date, err := model.ParseDate(cellString(cell(row, "data")))
		if err != nil {
			skipped++
			continue
		}

		id, err := strconv.Atoi(strings.TrimSpace(cellString(cell(row, "id"))))
		if err != nil || id < 0 {
			id = 0
		}

		txns = append(txns, model.Transaction{
			ID:          id,
			Date:        date,
			Category:    strings.TrimSpace(cellString(cell(row, "kategoria"))),
			Description: cellString(cell(row, "opis")),
			Amount:      amount.Normalize(cell(row, "kwota")),
		})
	}

	if skipped > 0 {
		slog.Warn("Skipped rows with unparseable dates", "rows", skipped)
	}

	return txns, nil
}

// EncodeRows serializes the ledger for a full-table rewrite, header row
// first, dates in the fixed YYYY-MM-DD form.
func EncodeRows(ledger []model.Transaction) [][]any {
	values := make([][]any, 0, len(ledger)+1)
	values = append(values, Header)

	for _, t := range ledger {
		values = append(values, EncodeRow(t))
	}

	return values
}

// EncodeRow serializes a single transaction in sheet column order.
func EncodeRow(t model.Transaction) []any {
	return []any{
		t.ID,
		t.Date.Format(model.DateFormat),
		t.Category,
		t.Description,
		t.Amount,
	}
}

func cellString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", s)
	}
}
