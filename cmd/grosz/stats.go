package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
)

func statsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show per-category totals",
		RunE:  runStats,
	}

	addFilterFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	filter, err := filterFromFlags(cmd)
	if err != nil {
		return err
	}

	repo, err := openRepository(ctx)
	if err != nil {
		return err
	}

	full := loadLedgerOrEmpty(ctx, repo)
	scope := filter.Apply(full)

	fmt.Println(cli.FormatTitle("Spending by category"))
	fmt.Println(cli.RenderCategoryTotals(ledger.TotalsByCategory(scope)))
	fmt.Println(cli.RenderSummary(ledger.Summarize(scope)))

	return nil
}
