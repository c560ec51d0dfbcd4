package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cryptoconquerors/realm-api/internal/orchestrators/community"
)

var (
	exportWheel    bool
	exportOut      string
	exportDrawDate int64
)

var exportEntriesCmd = &cobra.Command{
	Use:   "export-entries",
	Short: "Export lottery entries for a draw",
	Long: `Render a draw's entries as CSV, or with --wheel as one line per ticket
ready to paste into a spinner wheel.`,
	RunE: runExportEntries,
}

func init() {
	exportEntriesCmd.Flags().BoolVar(&exportWheel, "wheel", false, "one line per ticket instead of CSV")
	exportEntriesCmd.Flags().StringVar(&exportOut, "out", "", "write to a file instead of stdout")
	exportEntriesCmd.Flags().Int64Var(&exportDrawDate, "draw-date", 0, "draw date as a Unix timestamp (default: next Friday 20:00 UTC)")
}

func runExportEntries(cmd *cobra.Command, args []string) error {
	svc, err := newCommunityService("")
	if err != nil {
		return err
	}

	out, err := svc.ExportEntries(cmd.Context(), &community.ExportEntriesInput{
		DrawDate: exportDrawDate,
		Wheel:    exportWheel,
	})
	if err != nil {
		return err
	}

	if exportOut == "" {
		fmt.Print(out.Content)
		return nil
	}
	if err := os.WriteFile(exportOut, []byte(out.Content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", exportOut, err)
	}
	fmt.Printf("Wrote %d entries to %s\n", out.Entries, exportOut)
	return nil
}
