package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
	"github.com/grosz-dev/grosz/internal/model"
	"github.com/grosz-dev/grosz/internal/service"
	"github.com/grosz-dev/grosz/internal/sheets"
	"github.com/grosz-dev/grosz/internal/snapshot"
)

// openRepository builds the sheets-backed ledger repository from config.
func openRepository(ctx context.Context) (service.LedgerRepository, error) {
	config := sheets.DefaultConfig()
	config.ServiceAccountPath = viper.GetString("sheets.service_account_path")
	config.ClientID = viper.GetString("sheets.client_id")
	config.ClientSecret = viper.GetString("sheets.client_secret")
	config.RefreshToken = viper.GetString("sheets.refresh_token")
	config.SpreadsheetID = viper.GetString("sheets.spreadsheet_id")

	if name := viper.GetString("sheets.worksheet"); name != "" {
		config.WorksheetName = name
	}
	if batch := viper.GetInt("sheets.batch_size"); batch > 0 {
		config.BatchSize = batch
	}

	repo, err := sheets.NewRepository(ctx, config, slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger repository: %w", err)
	}
	return repo, nil
}

// loadLedgerOrEmpty loads the full ledger, degrading to an empty one with
// a visible warning on transport failure. Only read-side commands use
// this; anything that rewrites the table must abort on load failure
// instead, or a degraded load would clobber the remote data.
func loadLedgerOrEmpty(ctx context.Context, repo service.LedgerRepository) []model.Transaction {
	full, err := repo.Load(ctx)
	if err != nil {
		slog.Warn(cli.FormatWarning("Ledger unavailable, showing empty view"), "error", err)
		return nil
	}
	return full
}

// openSnapshotStore opens the pre-edit snapshot database.
func openSnapshotStore() (*snapshot.Store, error) {
	dbPath := viper.GetString("snapshot.db_path")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".config", "grosz", "grosz.db")
	}
	return snapshot.NewStore(dbPath)
}

// addFilterFlags registers the scope filter flags shared by list and edit.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("from", "f", "", "start date (format: 2006-01-02)")
	cmd.Flags().StringP("to", "t", "", "end date (format: 2006-01-02)")
	cmd.Flags().StringSliceP("categories", "c", nil, "filter by categories (comma-separated)")
	cmd.Flags().String("bank", "", "filter by bank origin (ING, mBank)")
	cmd.Flags().Bool("this-month", false, "shortcut for the current calendar month")
}

// filterFromFlags builds a ledger.Filter from the shared flags.
func filterFromFlags(cmd *cobra.Command) (ledger.Filter, error) {
	var f ledger.Filter

	if thisMonth, _ := cmd.Flags().GetBool("this-month"); thisMonth {
		now := time.Now().UTC()
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		f.From = &first
		f.To = &today
	}

	if raw, _ := cmd.Flags().GetString("from"); raw != "" {
		from, err := model.ParseDate(raw)
		if err != nil {
			return f, fmt.Errorf("invalid --from date: %w", err)
		}
		f.From = &from
	}

	if raw, _ := cmd.Flags().GetString("to"); raw != "" {
		to, err := model.ParseDate(raw)
		if err != nil {
			return f, fmt.Errorf("invalid --to date: %w", err)
		}
		f.To = &to
	}

	if cats, _ := cmd.Flags().GetStringSlice("categories"); len(cats) > 0 {
		for _, c := range cats {
			if !model.ValidCategory(c) {
				return f, fmt.Errorf("unknown category %q", c)
			}
		}
		f.Categories = cats
	}

	if bank, _ := cmd.Flags().GetString("bank"); bank != "" {
		switch model.Bank(bank) {
		case model.BankING, model.BankMBank:
			f.Bank = model.Bank(bank)
		default:
			return f, fmt.Errorf("unknown bank %q (expected ING or mBank)", bank)
		}
	}

	return f, nil
}
