package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/common"
	"github.com/nimesh4992/Stack-sub000/internal/config"
	"github.com/nimesh4992/Stack-sub000/internal/model"
)

type parseOutput struct {
	Transaction *model.ParsedTransaction `json:"transaction,omitempty"`
	Reason      string                   `json:"reason,omitempty"`
	Success     bool                     `json:"success"`
}

func parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [sms text]",
		Short: "Parse one SMS",
		Long: `Parse a single bank or UPI SMS and show the extracted transaction.

The message is read from the arguments, or from stdin when none are given.

Examples:
  smsledger parse "HDFC Bank: INR 1,250.00 has been debited from A/c XX1234 ..."
  pbpaste | smsledger parse --json`,
		RunE: runParse,
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := buildParser(cfg)
	if err != nil {
		return err
	}

	text := strings.Join(args, " ")
	if len(args) == 0 {
		data, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		text = strings.TrimSpace(string(data))
	}

	txn, err := p.Diagnose(text)
	out := cmd.OutOrStdout()

	asJSON, _ := cmd.Flags().GetBool("json")
	if asJSON {
		result := parseOutput{Success: err == nil, Transaction: txn}
		if err != nil {
			result.Reason = common.ReasonCode(err)
		}
		return writeJSON(out, result)
	}

	if err != nil {
		fmt.Fprintln(out, cli.FormatWarning("Not a transaction: "+common.ReasonCode(err)))
		return nil
	}
	fmt.Fprintln(out, cli.RenderTransaction(txn))
	return nil
}
