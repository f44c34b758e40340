package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/common"
	"github.com/grosz-dev/grosz/internal/ledger"
)

func saveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "save",
		Short: "Reconcile the edited scope back into the ledger",
		Long: `Read the edited scope file recorded by "grosz edit", merge it into the
full ledger and rewrite the sheet. Rows that were never part of the
exported scope pass through untouched; rows removed from the file are
deleted; rows without an id get fresh identifiers.`,
		RunE: runSave,
	}

	cmd.Flags().String("file", "", "edited scope file (default: the path recorded by edit)")

	return cmd
}

func runSave(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openSnapshotStore()
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	snap, err := store.Get(ctx)
	if err != nil {
		return common.NewUserError("nothing to save (run \"grosz edit\" first)", err)
	}

	editPath, _ := cmd.Flags().GetString("file")
	if editPath == "" {
		editPath = snap.EditPath
	}

	f, err := os.Open(editPath)
	if err != nil {
		return fmt.Errorf("failed to open edited scope file: %w", err)
	}
	defer func() { _ = f.Close() }()

	edited, err := ledger.ReadScopeFile(f)
	if err != nil {
		return fmt.Errorf("failed to read edited scope: %w", err)
	}

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	// Reconciliation needs the authoritative ledger; a degraded empty
	// load would turn the merge into a wholesale delete.
	full, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}

	merged, deleted, err := ledger.Reconcile(full, snap.Scope, edited)
	if err != nil {
		return fmt.Errorf("reconciliation aborted, nothing was saved: %w", err)
	}

	ledger.SortByDateDesc(merged)

	if err := repo.SaveAll(ctx, merged); err != nil {
		return fmt.Errorf("failed to save ledger: %w", err)
	}

	if err := store.Clear(ctx); err != nil {
		slog.Warn("failed to clear snapshot after save", "error", err)
	}

	added := len(merged) - len(full) + len(deleted)
	slog.Info(cli.FormatSuccess(fmt.Sprintf("Saved: %d rows total, %d added, %d deleted", len(merged), added, len(deleted))))
	if len(deleted) > 0 {
		slog.Info("Deleted ids", "ids", deleted)
	}
	return nil
}
