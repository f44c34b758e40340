package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grosz-dev/grosz/internal/cli"
	"github.com/grosz-dev/grosz/internal/ledger"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show a filtered view of the ledger",
		RunE:  runList,
	}

	addFilterFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
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
	ledger.SortByDateDesc(scope)

	fmt.Println(cli.RenderTransactions(scope))
	fmt.Println(cli.RenderSummary(ledger.Summarize(scope)))

	return nil
}
