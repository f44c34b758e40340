package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
	"github.com/grosz-dev/grosz/internal/statement"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a bank statement export",
		Long: `Import transactions from a bank statement export.

CSV statements are matched against the known bank dialects (mBank, ING)
automatically; OFX/QFX files are detected by extension. Imported rows get
identifiers allocated above the current ledger maximum and the full
ledger is rewritten.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().Bool("dry-run", false, "Parse and preview without saving")
	_ = viper.BindPFlag("import.dry_run", cmd.Flags().Lookup("dry-run"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read statement file: %w", err)
	}

	var parsed []model.Transaction
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		parsed, err = statement.ParseOFX(ctx, bytes.NewReader(raw))
	default:
		parsed, err = statement.NewParser().Parse(ctx, raw)
	}
	if err != nil {
		return fmt.Errorf("failed to parse statement: %w", err)
	}
	if len(parsed) == 0 {
		slog.Info(cli.FormatWarning("Statement contains no transactions, nothing to do"))
		return nil
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Parsed %d transactions from %s", len(parsed), filepath.Base(path))))

	if viper.GetBool("import.dry_run") {
		slog.Info(cli.FormatWarning("Dry run mode - not saving to the sheet"))
		displayImportPreview(parsed)
		return nil
	}

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	// The import save is a full rewrite, so it needs the authoritative
	// ledger; a degraded empty load here would wipe the table.
	full, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger before import: %w", err)
	}

	parsed = ledger.AssignIDs(parsed, ledger.MaxID(full))

	bar := progressbar.Default(int64(len(parsed)), "preparing rows")
	merged := make([]model.Transaction, 0, len(full)+len(parsed))
	merged = append(merged, full...)
	for _, t := range parsed {
		t.Category = model.CoerceCategory(t.Category)
		merged = append(merged, t)
		_ = bar.Add(1)
	}

	if err := repo.SaveAll(ctx, merged); err != nil {
		return fmt.Errorf("failed to save imported transactions: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Added %d transactions, ledger now has %d rows", len(parsed), len(merged))))
	return nil
}

func displayImportPreview(parsed []model.Transaction) {
	preview := parsed
	if len(preview) > 10 {
		preview = preview[:10]
	}

	s := ledger.Summarize(parsed)
	fmt.Println(cli.RenderTransactions(preview))
	fmt.Println(cli.RenderBox("Import preview", fmt.Sprintf(`Transactions: %d
Total: %.2f PLN`, s.Count, s.Total)))
}
