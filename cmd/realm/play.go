package main

import (
	"github.com/spf13/cobra"

	"github.com/cryptoconquerors/realm-api/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Enter the realm",
	Long:  `Open an interactive session: log in with a wallet, pick a house, conquer districts.`,
	RunE:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	svc, err := newGameService()
	if err != nil {
		return err
	}
	return tui.Run(svc)
}
