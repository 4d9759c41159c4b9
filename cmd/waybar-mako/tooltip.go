package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var tooltipCmd = &cobra.Command{
	Use:   "tooltip",
	Short: "Output recent notification summaries for a tooltip",
	Long: `Output the most recent notification summaries joined with literal \n
escape sequences, suitable for embedding in a Waybar tooltip field.`,
	RunE: runTooltip,
}

func init() {
	rootCmd.AddCommand(tooltipCmd)
}

func runTooltip(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newHistoryWidget().Tooltip(ctx)
}
