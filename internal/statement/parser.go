// Package statement parses bank statement exports into canonical
// transaction records.
package statement

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/grosz-dev/grosz/internal/amount"
	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/model"
)

// The two recognized CSV dialects. Both are semicolon separated and
// carry a fixed-size preamble of account metadata before the header row.
const (
	mbankPreambleLines = 25
	ingPreambleLines   = 19

	// ING double-counts amounts around its transfer-pair convention, so
	// parsed values are halved.
	ingAmountDivisor = 2

	ingDescriptionTag = "ING "
)

// Parser detects which bank dialect a raw CSV belongs to and produces
// canonical records. Records come back without identifiers; the caller
// allocates them against the full ledger.
type Parser struct{}

// NewParser creates a new statement parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse tries the mBank dialect first and falls back to ING on any
// failure. Both failing surfaces ErrUnreadableStatement: no partial
// import is ever produced from a file we cannot place.
func (p *Parser) Parse(ctx context.Context, raw []byte) ([]model.Transaction, error) {
	txns, mbankErr := p.parseMBank(raw)
	if mbankErr == nil {
		slog.Info("Parsed statement", "dialect", "mBank", "transactions", len(txns))
		return txns, nil
	}

	txns, ingErr := p.parseING(raw)
	if ingErr == nil {
		slog.Info("Parsed statement", "dialect", "ING", "transactions", len(txns))
		return txns, nil
	}

	return nil, fmt.Errorf("%w: mBank: %v; ING: %v", common.ErrUnreadableStatement, mbankErr, ingErr)
}

// parseMBank handles the mBank export: UTF-8, 25 preamble lines, header
// cells prefixed with '#', a category column that may be absent, and an
// account-number column that is dropped.
func (p *Parser) parseMBank(raw []byte) ([]model.Transaction, error) {
	records, err := readSemicolonCSV(bytes.NewReader(raw), mbankPreambleLines)
	if err != nil {
		return nil, err
	}

	cols, err := headerColumns(records[0], map[string]string{
		"Data operacji": "data",
		"Opis operacji": "opis",
		"Kwota":         "kwota",
		"Kategoria":     "kategoria",
	})
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, rec := range records[1:] {
		date, err := model.ParseDate(cell(rec, cols, "data"))
		if err != nil {
			// First unparseable date starts the summary footer; truncate
			// everything from here on.
			break
		}

		category := model.CategoryUncategorized
		if _, ok := cols["kategoria"]; ok {
			if c := strings.TrimSpace(cell(rec, cols, "kategoria")); c != "" {
				category = model.CoerceCategory(c)
			}
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Category:    category,
			Description: cell(rec, cols, "opis"),
			Amount:      amount.NormalizeString(cell(rec, cols, "kwota")),
		})
	}

	return txns, nil
}

// parseING handles the ING export: Windows-1250, 19 preamble lines, no
// category column, descriptions tagged with the bank name, and the
// half-value correction applied after normalization.
func (p *Parser) parseING(raw []byte) ([]model.Transaction, error) {
	decoded := transform.NewReader(bytes.NewReader(raw), charmap.Windows1250.NewDecoder())

	records, err := readSemicolonCSV(decoded, ingPreambleLines)
	if err != nil {
		return nil, err
	}

	cols, err := headerColumns(records[0], map[string]string{
		"Data transakcji":                    "data",
		"Dane kontrahenta":                   "opis",
		"Kwota transakcji (waluta rachunku)": "kwota",
	})
	if err != nil {
		return nil, err
	}

	var txns []model.Transaction
	for _, rec := range records[1:] {
		date, err := model.ParseDate(cell(rec, cols, "data"))
		if err != nil {
			break
		}

		txns = append(txns, model.Transaction{
			Date:        date,
			Category:    model.CategoryUncategorized,
			Description: ingDescriptionTag + cell(rec, cols, "opis"),
			Amount:      amount.NormalizeString(cell(rec, cols, "kwota")) / ingAmountDivisor,
		})
	}

	return txns, nil
}

// readSemicolonCSV skips the fixed preamble and reads the remainder as
// semicolon-separated records, header first. Rows are allowed to vary in
// width; missing cells read as empty.
func readSemicolonCSV(r io.Reader, preambleLines int) ([][]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	for i := 0; i < preambleLines; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("statement shorter than %d preamble lines", preambleLines)
		}
	}

	var rest strings.Builder
	for scanner.Scan() {
		rest.WriteString(scanner.Text())
		rest.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	cr := csv.NewReader(strings.NewReader(rest.String()))
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing statement CSV: %w", err)
	}
	if len(records) < 2 {
		return nil, common.ErrEmptyStatement
	}

	return records, nil
}

// headerColumns strips the '#' marker from header cells, trims them and
// maps source column names onto the canonical schema. The date and
// amount columns are mandatory; anything unmapped (account numbers,
// balances) is ignored.
func headerColumns(header []string, rename map[string]string) (map[string]int, error) {
	cols := make(map[string]int)
	for i, name := range header {
		name = strings.TrimSpace(strings.ReplaceAll(name, "#", ""))
		if canonical, ok := rename[name]; ok {
			cols[canonical] = i
		}
	}

	for _, required := range []string{"data", "kwota"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("statement header is missing the %q column", required)
		}
	}

	return cols, nil
}

func cell(rec []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(rec) {
		return ""
	}
	return rec[i]
}
