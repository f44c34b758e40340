package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/snapshot"
)

func editCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Export a filtered scope to a CSV for editing",
		Long: `Export the rows matching the filter to a local CSV file and record a
pre-edit snapshot. Edit the file freely: change cells, delete rows, add
new rows with a blank or zero id. Then run "grosz save" to reconcile the
edits back into the ledger. Rows outside the exported scope are never
touched by the save.`,
		RunE: runEdit,
	}

	addFilterFlags(cmd)
	cmd.Flags().StringP("out", "o", "grosz-edit.csv", "path of the exported scope file")

	return cmd
}

func runEdit(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}
	outPath, _ := cmd.Flags().GetString("out")

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	// The exported scope anchors the later reconciliation, so it must
	// come from an authoritative load, not a degraded empty one.
	full, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	scope := filter.Apply(full)
	ledger.SortByDateDesc(scope)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create scope file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := ledger.WriteScopeFile(f, scope); err != nil {
		return fmt.Errorf("failed to write scope file: %w", err)
	}

	store, err := openSnapshotStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap := snapshot.Snapshot{
		CreatedAt: time.Now().UTC(),
		Filter:    filter,
		Scope:     scope,
		EditPath:  outPath,
	}
	if err := store.Put(ctx, snap); err != nil {
		return fmt.Errorf("failed to record pre-edit snapshot: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Exported %d rows to %s", len(scope), outPath)))
	slog.Info("Edit the file, then run: grosz save")
	return nil
}
