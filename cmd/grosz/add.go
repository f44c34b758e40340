package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/amount"
	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a single transaction manually",
		Long: `Add one transaction to the ledger. The identifier is allocated above
the current ledger maximum and the row is appended without rewriting the
rest of the table.`,
		RunE: runAdd,
	}

	cmd.Flags().StringP("date", "d", "", "transaction date (format: 2006-01-02, default: today)")
	cmd.Flags().StringP("category", "c", model.CategoryUncategorized, "category (one of the fixed list)")
	cmd.Flags().StringP("description", "m", "", "free-text description")
	cmd.Flags().StringP("amount", "a", "", "amount, negative for spend (e.g. -42,50)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	txn := model.Transaction{}

	if raw, _ := cmd.Flags().GetString("date"); raw != "" {
		date, err := model.ParseDate(raw)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		txn.Date = date
	} else {
		now := time.Now().UTC()
		txn.Date = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}

	category, _ := cmd.Flags().GetString("category")
	if !model.ValidCategory(category) {
		return fmt.Errorf("unknown category %q (valid: %s)", category, strings.Join(model.Categories(), ", "))
	}
	txn.Category = category

	txn.Description, _ = cmd.Flags().GetString("description")

	rawAmount, _ := cmd.Flags().GetString("amount")
	txn.Amount = amount.NormalizeString(rawAmount)

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	// Appending needs a real id, and ids are seeded from the full ledger.
	full, err := repo.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load ledger: %w", err)
	}
	txn.ID = ledger.MaxID(full) + 1

	if err := repo.Append(ctx, txn); err != nil {
		return fmt.Errorf("failed to append transaction: %w", err)
	}

	slog.Info(cli.FormatSuccess(fmt.Sprintf("Added transaction %d: %s %.2f PLN", txn.ID, txn.Category, txn.Amount)))
	return nil
}
