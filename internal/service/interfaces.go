// Package service defines the interfaces between the ledger core and its collaborators.
package service

import (
	"context"
	"time"

	"github.com/grosz-dev/grosz/internal/model"
)

// LedgerRepository is the sole interface to the remote tabular store.
// The full table is the source of truth; there is no partial-update
// primitive, so every mutation is either a full rewrite or a single
// append.
type LedgerRepository interface {
	// Load fetches every row and coerces it into the canonical schema.
	Load(ctx context.Context) ([]model.Transaction, error)
	// SaveAll clears the remote table and rewrites header plus all rows.
	// Not atomic: a mid-write failure can leave the table truncated.
	SaveAll(ctx context.Context, ledger []model.Transaction) error
	// Append adds one fully-formed row (id already allocated) without
	// touching existing rows.
	Append(ctx context.Context, txn model.Transaction) error
}

// StatementParser converts a raw bank export into canonical records
// without identifiers.
type StatementParser interface {
	Parse(ctx context.Context, raw []byte) ([]model.Transaction, error)
}

// RetryOptions configures retry behavior for remote operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
