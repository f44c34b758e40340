package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/grosz-dev/grosz/internal/amount"
	"github.com/grosz-dev/grosz/internal/model"
)

// scopeHeader mirrors the remote table header so an exported scope file
// looks exactly like the sheet it came from.
var scopeHeader = []string{"id", "data", "kategoria", "opis", "kwota"}

// WriteScopeFile exports a scope to an editable CSV. The user edits the
// file in place: change cells, delete rows, or add rows with a blank or
// zero id.
func WriteScopeFile(w io.Writer, scope []model.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(scopeHeader); err != nil {
		return fmt.Errorf("writing scope header: %w", err)
	}

	for _, t := range scope {
		rec := []string{
			strconv.Itoa(t.ID),
			t.Date.Format(model.DateFormat),
			t.Category,
			t.Description,
			strconv.FormatFloat(t.Amount, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing scope row %d: %w", t.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// ReadScopeFile parses an edited scope file back into transactions.
// Unlike bank import, this file is user-maintained: a bad date here is
// an error naming the row, not a silent drop, since silently skipping a
// row would delete it on reconciliation.
func ReadScopeFile(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading edited scope: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("edited scope file is empty")
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range scopeHeader {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("edited scope file is missing the %q column", required)
		}
	}

	cell := func(rec []string, name string) string {
		i := cols[name]
		if i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	txns := make([]model.Transaction, 0, len(records)-1)
	for n, rec := range records[1:] {
		date, err := model.ParseDate(cell(rec, "data"))
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", n+2, err)
		}

		id := 0
		if raw := strings.TrimSpace(cell(rec, "id")); raw != "" {
			id, err = strconv.Atoi(raw)
			if err != nil || id < 0 {
				return nil, fmt.Errorf("row %d: invalid id %q", n+2, raw)
			}
		}

		txns = append(txns, model.Transaction{
			ID:          id,
			Date:        date,
			Category:    model.CoerceCategory(cell(rec, "kategoria")),
			Description: cell(rec, "opis"),
			Amount:      amount.NormalizeString(cell(rec, "kwota")),
		})
	}

	return txns, nil
}
