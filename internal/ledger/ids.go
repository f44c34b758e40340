// Package ledger implements the id allocator, the reconciliation engine
// and the filtering/aggregation helpers over the in-memory ledger.
package ledger

import (
	"sort"

	"github.com/grosz-dev/grosz/internal/model"
)

// MaxID returns the highest identifier in the ledger, 0 when the ledger
// is empty. The sheet has no native autoincrement, so every allocation
// is seeded from this.
func MaxID(ledger []model.Transaction) int {
	max := 0
	for _, t := range ledger {
		if t.ID > max {
			max = t.ID
		}
	}
	return max
}

// Allocate returns n consecutive identifiers starting at maxID+1.
func Allocate(maxID, n int) []int {
	ids := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		ids = append(ids, maxID+i)
	}
	return ids
}

// AssignIDs gives every id-less transaction a fresh identifier seeded
// from the ledger maximum and returns the updated copy. Rows that
// already carry an id are left alone.
func AssignIDs(rows []model.Transaction, maxID int) []model.Transaction {
	out := make([]model.Transaction, len(rows))
	copy(out, rows)
	for i := range out {
		if !out[i].HasID() {
			maxID++
			out[i].ID = maxID
		}
	}
	return out
}

// Reindex reassigns identifiers 1..N in ascending date order. This is a
// repair operation for id gaps and duplicates accumulated over time; it
// rewrites every id, so the result must be persisted with a full save.
func Reindex(ledger []model.Transaction) []model.Transaction {
	out := make([]model.Transaction, len(ledger))
	copy(out, ledger)

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	for i := range out {
		out[i].ID = i + 1
	}
	return out
}
