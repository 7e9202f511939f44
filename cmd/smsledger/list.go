package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/model"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show ledger entries",
		Long: `Show the newest ledger entries and the spending per category.

Examples:
  smsledger list
  smsledger list --type expense --since 2026-02-01
  smsledger list --bank hdfc --limit 100 --json`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("type", "", "Filter by type (expense, income)")
	cmd.Flags().String("bank", "", "Filter by bank id")
	cmd.Flags().String("category", "", "Filter by category id")
	cmd.Flags().String("since", "", "Only entries on or after this date (format: 2006-01-02)")
	cmd.Flags().IntP("limit", "n", 20, "Maximum entries to show (0 = all)")
	cmd.Flags().Bool("totals", true, "Show category totals for expenses")
	cmd.Flags().Bool("json", false, "Print entries as JSON")

	return cmd
}

func listFilter(cmd *cobra.Command) (service.EntryFilter, error) {
	var filter service.EntryFilter

	typ, _ := cmd.Flags().GetString("type")
	switch t := model.TransactionType(strings.ToLower(typ)); t {
	case "", model.TypeExpense, model.TypeIncome:
		filter.Type = t
	default:
		return filter, common.NewUserError(fmt.Sprintf("unknown type %q (want expense or income)", typ), nil)
	}

	filter.BankID, _ = cmd.Flags().GetString("bank")
	filter.Limit, _ = cmd.Flags().GetInt("limit")
	if filter.Limit < 0 {
		return filter, common.NewUserError("limit must not be negative", nil)
	}

	if raw, _ := cmd.Flags().GetString("category"); raw != "" {
		id, err := model.ParseCategoryID(raw)
		if err != nil {
			return filter, common.NewUserError(err.Error(), nil)
		}
		filter.Category = id
	}

	if raw, _ := cmd.Flags().GetString("since"); raw != "" {
		since, err := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if err != nil {
			return filter, common.NewUserError("since must be YYYY-MM-DD", err)
		}
		filter.Since = &since
	}

	return filter, nil
}

func runList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	filter, err := listFilter(cmd)
	if err != nil {
		return err
	}

	store, err := initStorage(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStorage(store)

	entries, err := store.ListEntries(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to list entries: %w", err)
	}

	out := cmd.OutOrStdout()
	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(out, entries)
	}

	fmt.Fprintln(out, cli.RenderEntries(entries))

	if showTotals, _ := cmd.Flags().GetBool("totals"); !showTotals || filter.Type == model.TypeIncome {
		return nil
	}

	totals, err := store.CategoryTotals(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to compute totals: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, cli.FormatTitle(cli.ChartIcon+" Spending by category"))
	fmt.Fprintln(out, cli.RenderTotals(totals))
	return nil
}
