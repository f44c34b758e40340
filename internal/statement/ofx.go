package statement

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aclindsa/ofxgo"

	"github.com/grosz-dev/grosz/internal/model"
)

// ParseOFX maps an OFX/QFX export onto the canonical record shape. OFX
// carries no category information, so every row lands in Bez kategorii;
// amounts keep the sign the bank reported (negative debits, positive
// credits).
func ParseOFX(ctx context.Context, reader io.Reader) ([]model.Transaction, error) {
	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read OFX file: %w", err)
	}

	resp, err := ofxgo.ParseResponse(strings.NewReader(preprocessOFX(string(content))))
	if err != nil {
		return nil, fmt.Errorf("failed to parse OFX file: %w", err)
	}

	var txns []model.Transaction

	for _, msg := range resp.Bank {
		if stmt, ok := msg.(*ofxgo.StatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFXTransaction(ofxTx))
			}
		}
	}

	for _, msg := range resp.CreditCard {
		if stmt, ok := msg.(*ofxgo.CCStatementResponse); ok && stmt.BankTranList != nil {
			for _, ofxTx := range stmt.BankTranList.Transactions {
				txns = append(txns, convertOFXTransaction(ofxTx))
			}
		}
	}

	slog.Info("Parsed OFX file", "transactions", len(txns))

	return txns, nil
}

// preprocessOFX fixes common formatting issues in bank OFX files: leading
// blank lines before the header and SGML-style tags missing their
// closing bracket.
func preprocessOFX(content string) string {
	content = strings.TrimLeft(content, " \t\r\n")

	var fixed []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimRight(line, "\r")
		if isUnclosedTag(trimmed) {
			trimmed += ">"
		}
		fixed = append(fixed, trimmed)
	}
	return strings.Join(fixed, "\n")
}

func isUnclosedTag(line string) bool {
	s := strings.TrimSpace(line)
	if !strings.HasPrefix(s, "<") || strings.Contains(s, ">") {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '_':
		default:
			return false
		}
	}
	return len(s) > 1
}

func convertOFXTransaction(ofxTx ofxgo.Transaction) model.Transaction {
	amountFloat, _ := ofxTx.TrnAmt.Float64()

	description := string(ofxTx.Name)
	if ofxTx.Payee != nil && ofxTx.Payee.Name != "" {
		description = string(ofxTx.Payee.Name)
	}

	date := ofxTx.DtPosted.Time
	return model.Transaction{
		Date:        time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Category:    model.CategoryUncategorized,
		Description: strings.TrimSpace(description),
		Amount:      amountFloat,
	}
}
