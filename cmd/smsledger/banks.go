package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nimesh4992/Stack-sub000/internal/cli"
	"github.com/nimesh4992/Stack-sub000/internal/config"
)

func banksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "banks",
		Short: "List bank pattern sets in detection order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			p, err := buildParser(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, cli.FormatTitle("Bank pattern sets"))
			for i, set := range p.Registry().Sets() {
				line := fmt.Sprintf("%2d. %-6s %-14s tokens: %s", i+1, set.ID, set.Name, strings.Join(set.Tokens, ", "))
				if set.Fallback {
					line += " " + cli.SubtleStyle.Render("(fallback)")
				}
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}
