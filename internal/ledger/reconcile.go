package ledger

import (
	"fmt"
	"sort"

	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/model"
)

// Reconcile merges an edited scope back into the full ledger.
//
// The remote store has no partial-update primitive: every save rewrites
// the whole table, yet the user only ever sees and edits a filtered
// subset. Naively saving the subset would silently delete every hidden
// row, so the merge keeps three groups apart:
//
//   - background: rows of full whose id was not in scopeBefore; the user
//     never saw them, they pass through verbatim;
//   - edited: scopeAfter as returned by the editor, with fresh ids
//     allocated for rows that have none;
//   - deleted: ids present in scopeBefore but absent from scopeAfter;
//     they end up in neither group and disappear from the result.
//
// Both scope arguments must come from the same pre-edit snapshot. An
// edited row carrying an id that was never in scopeBefore means the
// snapshot is stale, and the merge aborts before anything is saved.
//
// The merged ledger is returned background-first; callers sort for
// presentation.
func Reconcile(full, scopeBefore, scopeAfter []model.Transaction) (merged []model.Transaction, deleted []int, err error) {
	before := make(map[int]bool, len(scopeBefore))
	for _, t := range scopeBefore {
		if t.HasID() {
			before[t.ID] = true
		}
	}

	seen := make(map[int]bool, len(scopeAfter))
	after := make(map[int]bool, len(scopeAfter))
	for _, t := range scopeAfter {
		if !t.HasID() {
			continue
		}
		if seen[t.ID] {
			return nil, nil, fmt.Errorf("%w: id %d appears twice in the edited rows", common.ErrScopeConflict, t.ID)
		}
		seen[t.ID] = true
		after[t.ID] = true
		if !before[t.ID] {
			return nil, nil, fmt.Errorf("%w: id %d was not part of the edited view", common.ErrScopeConflict, t.ID)
		}
	}

	merged = make([]model.Transaction, 0, len(full)+len(scopeAfter))
	for _, t := range full {
		if !before[t.ID] {
			merged = append(merged, t)
		}
	}

	merged = append(merged, AssignIDs(scopeAfter, MaxID(full))...)

	for _, t := range scopeBefore {
		if t.HasID() && !after[t.ID] {
			deleted = append(deleted, t.ID)
		}
	}
	sort.Ints(deleted)

	return merged, deleted, nil
}

// SortByDateDesc orders a ledger newest-first for presentation. The sort
// is stable so same-day rows keep their relative order.
func SortByDateDesc(ledger []model.Transaction) {
	sort.SliceStable(ledger, func(i, j int) bool {
		return ledger[i].Date.After(ledger[j].Date)
	})
}
