package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/config"
)

func classifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify <merchant>",
		Short: "Categorize a merchant name",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runClassify,
	}

	cmd.Flags().Bool("json", false, "Print the result as JSON")

	return cmd
}

func runClassify(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	p, err := buildParser(cfg)
	if err != nil {
		return err
	}

	result := p.Classifier().Classify(strings.Join(args, " "))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}

	line := fmt.Sprintf("%s %s", cli.BoldStyle.Render(result.CategoryLabel),
		cli.SubtleStyle.Render(fmt.Sprintf("(%s, %.0f%%)", result.CategoryID, result.Confidence*100)))
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
