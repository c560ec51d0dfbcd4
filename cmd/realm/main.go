// Package main is the entry point for the realm CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	redisAddr string
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "realm",
	Short: "Crypto Conquerors realm tools",
	Long: `Crypto Conquerors is the text adventure of the $MINE community.
The play command opens a session; the remaining commands are the
community admin surface (lottery draw, alpha call resolution, exports).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})))
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis-addr", "localhost:6379", "Redis endpoint")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drawCmd)
	rootCmd.AddCommand(resolveCallsCmd)
	rootCmd.AddCommand(exportEntriesCmd)
}
