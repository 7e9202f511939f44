package main

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/engine"
	"github.com/nimesh4992/Stack-sub000/internal/service"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import an SMS export into the ledger",
		Long: `Parse every message in a file and save the transactions to the ledger.

The file holds one SMS per line, or a JSON array of strings or of
{"text": ..., "receivedAt": ...} objects. Use "-" to read stdin.
Messages already in the ledger are skipped, so re-running an import is safe.`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}

	cmd.Flags().IntP("workers", "w", config.DefaultWorkers, "Number of parallel parse workers")
	cmd.Flags().Int("batch-size", engine.DefaultImportOptions().BatchSize, "Entries per database write")
	cmd.Flags().Bool("dry-run", false, "Parse and report without saving")
	cmd.Flags().Bool("quiet", false, "Hide the progress bar")

	_ = viper.BindPFlag("import.workers", cmd.Flags().Lookup("workers"))

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := buildParser(cfg)
	if err != nil {
		return err
	}

	messages, err := readImportFile(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return common.NewUserError("no messages found in "+args[0], nil)
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	quiet, _ := cmd.Flags().GetBool("quiet")

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("Importing %d messages", len(messages))))

	handler := cli.NewInterruptHandler(out, "smsledger import "+args[0])
	ctx, stop := handler.HandleInterrupts(cmd.Context())
	defer stop()

	var ledger service.Ledger
	if !dryRun {
		store, storeErr := initStorage(ctx, cfg)
		if storeErr != nil {
			return storeErr
		}
		defer closeStorage(store)
		ledger = store
	}

	var progressOut io.Writer = cmd.ErrOrStderr()
	if quiet {
		progressOut = nil
	}
	progress := cli.NewProgress(progressOut, len(messages), "Parsing messages...")

	importer := engine.NewImporter(p, ledger, engine.WithProgress(progress))
	summary, err := importer.Import(ctx, messages, engine.ImportOptions{
		Workers:   cfg.Workers,
		BatchSize: batchSize,
		DryRun:    dryRun,
	})
	progress.Finish()
	if err != nil {
		if handler.WasInterrupted() {
			return nil
		}
		return err
	}

	if dryRun {
		fmt.Fprintln(out, cli.FormatWarning("Dry run mode - not saving to database"))
	}
	fmt.Fprintln(out, cli.RenderBox("Import Complete", importSummary(summary, dryRun)))
	return nil
}

func readImportFile(stdin io.Reader, path string) ([]engine.Message, error) {
	if path == "-" {
		return engine.ReadMessages(stdin)
	}

	f, err := os.Open(config.ExpandPath(path))
	if err != nil {
		return nil, common.NewUserError("could not open "+path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	return engine.ReadMessages(f)
}

func importSummary(s *engine.ImportSummary, dryRun bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "  • Messages: %d\n", s.TotalMessages)
	fmt.Fprintf(&b, "  • Transactions: %d\n", s.Parsed)
	if !dryRun {
		fmt.Fprintf(&b, "  • Saved: %d\n", s.Saved)
	}
	fmt.Fprintf(&b, "  • Duplicates: %d\n", s.Duplicates)

	reasons := make([]string, 0, len(s.Reasons))
	for reason := range s.Reasons {
		reasons = append(reasons, reason)
	}
	sort.Strings(reasons)
	for _, reason := range reasons {
		fmt.Fprintf(&b, "  • Skipped (%s): %d\n", reason, s.Reasons[reason])
	}

	fmt.Fprintf(&b, "  • Time taken: %s", s.ProcessingTime.Round(time.Millisecond))
	return b.String()
}
