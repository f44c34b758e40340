package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
)

func reindexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reindex",
		Short: "Reassign identifiers 1..N in ascending date order",
		Long: `One-time repair operation: sorts the whole ledger by ascending date and
reassigns identifiers 1..N, eliminating gaps and duplicates the sheet
accumulates without native autoincrement. Any pending edit snapshot
becomes stale and is discarded.`,
		RunE: runReindex,
	}
}

func runReindex(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	full, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	if len(full) == 0 {
		slog.Info(cli.FormatWarning("Ledger is empty, nothing to reindex"))
		return nil
	}

	reindexed := ledger.Reindex(full)
	ledger.SortByDateDesc(reindexed)

	if err := repo.SaveAll(ctx, reindexed); err != nil {
		return fmt.Errorf("failed to save reindexed ledger: %w", err)
	}

	// Old snapshots reference pre-reindex ids.
	if store, storeErr := openSnapshotStore(); storeErr == nil {
		if clearErr := store.Clear(ctx); clearErr != nil {
			slog.Warn("failed to clear snapshot after reindex", "error", clearErr)
		}
		_ = store.Close()
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Reindexed %d transactions", len(reindexed))))
	return nil
}
