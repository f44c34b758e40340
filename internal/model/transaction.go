// Package model defines the canonical ledger types shared across the application.
package model

import (
	"strings"
	"time"
)

// Transaction represents a single ledger entry as persisted on the sheet.
// An ID of 0 marks a row that has not been assigned an identifier yet
// (fresh imports, manual entries, rows added during an edit).
type Transaction struct {
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	ID          int       `json:"id"`
}

// HasID reports whether the transaction carries a real identifier.
func (t Transaction) HasID() bool {
	return t.ID > 0
}

// Bank identifies the institution a transaction originated from.
type Bank string

const (
	// BankING marks transactions imported from ING statements.
	BankING Bank = "ING"
	// BankMBank marks transactions imported from mBank statements.
	BankMBank Bank = "mBank"
)

// DetectBank classifies a transaction by its description text.
// ING imports tag their descriptions, so a case-insensitive substring
// match is enough. This is a derived classification, never stored; it
// can silently change if the description is edited.
func DetectBank(description string) Bank {
	if strings.Contains(strings.ToLower(description), "ing") {
		return BankING
	}
	return BankMBank
}
