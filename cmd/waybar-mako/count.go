package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"
)

var countCmd = &cobra.Command{
	Use:   "count",
	Short: "Output the history size as Waybar JSON",
	Long: `Output the number of notifications in mako's history as a Waybar
custom module payload.

With history present:   {"text":"3","tooltip":"3 notifications in history","alt":"notification"}
Empty or unreachable:   {"text":"","tooltip":"No notification history","alt":"none"}`,
	RunE: runCount,
}

func init() {
	rootCmd.AddCommand(countCmd)
}

func runCount(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return newHistoryWidget().Count(ctx)
}
