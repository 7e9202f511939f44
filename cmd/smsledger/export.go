package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/ofx"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

func exportOFXCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export-ofx <out.ofx>",
		Short: "Export the ledger as an OFX bank statement",
		Long: `Write ledger entries as an OFX 2.0.3 file with one statement per bank
account. Use "-" to write to stdout.

Examples:
  smsledger export-ofx ledger.ofx
  smsledger export-ofx --bank hdfc --since 2026-01-01 hdfc.ofx`,
		Args: cobra.ExactArgs(1),
		RunE: runExportOFX,
	}

	cmd.Flags().String("bank", "", "Only export this bank id")
	cmd.Flags().String("since", "", "Only entries on or after this date (format: 2006-01-02)")
	cmd.Flags().String("currency", config.DefaultCurrency, "ISO 4217 statement currency")

	_ = viper.BindPFlag("export.currency", cmd.Flags().Lookup("currency"))

	return cmd
}

func runExportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	exporter, err := ofx.NewExporter(cfg.Currency)
	if err != nil {
		return err
	}

	filter := service.EntryFilter{}
	filter.BankID, _ = cmd.Flags().GetString("bank")
	if raw, _ := cmd.Flags().GetString("since"); raw != "" {
		since, parseErr := time.ParseInLocation(time.DateOnly, raw, time.Local)
		if parseErr != nil {
			return common.NewUserError("since must be YYYY-MM-DD", parseErr)
		}
		filter.Since = &since
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
	if len(entries) == 0 {
		return common.NewUserError("nothing to export", common.ErrNoTransactions)
	}

	var w io.Writer = cmd.OutOrStdout()
	if args[0] != "-" {
		f, createErr := os.Create(config.ExpandPath(args[0]))
		if createErr != nil {
			return common.NewUserError("could not create "+args[0], createErr)
		}
		defer func() {
			_ = f.Close()
		}()
		w = f
	}

	if err := exporter.Write(ctx, w, entries); err != nil {
		return err
	}

	if args[0] != "-" {
		fmt.Fprintln(cmd.OutOrStdout(), cli.FormatSuccess(fmt.Sprintf("Exported %d transactions to %s", len(entries), args[0])))
	}
	return nil
}
