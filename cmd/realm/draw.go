package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoconquerors/realm-api/internal/orchestrators/community"
)

var (
	drawWebhookURL string
	drawDate       int64
)

var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Perform the weekly lottery draw",
	Long: `Pick a winner among the verified entries for the draw, one slot per
ticket. With --webhook-url the result is announced on Discord.`,
	RunE: runDraw,
}

func init() {
	drawCmd.Flags().StringVar(&drawWebhookURL, "webhook-url", "", "Discord webhook for the announcement")
	drawCmd.Flags().Int64Var(&drawDate, "draw-date", 0, "draw date as a Unix timestamp (default: next Friday 20:00 UTC)")
}

func runDraw(cmd *cobra.Command, args []string) error {
	svc, err := newCommunityService(drawWebhookURL)
	if err != nil {
		return err
	}

	out, err := svc.PerformDraw(cmd.Context(), &community.PerformDrawInput{DrawDate: drawDate})
	if err != nil {
		return err
	}

	fmt.Printf("Winner: %s (%d of %d tickets)\n",
		out.Winner.DiscordUsername, out.Winner.NumberOfTickets, out.TotalTickets)
	if drawWebhookURL != "" {
		fmt.Println("Announced on Discord.")
	}
	return nil
}
