package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cryptoconquerors/realm-api/internal/orchestrators/community"
)

var resolveCallsCmd = &cobra.Command{
	Use:   "resolve-calls",
	Short: "Resolve pending alpha calls against current prices",
	Long: `Quote every pending alpha call's token. Calls that reached their target
are marked successful, expired ones failed; the rest stay pending.`,
	RunE: runResolveCalls,
}

func runResolveCalls(cmd *cobra.Command, args []string) error {
	svc, err := newCommunityService("")
	if err != nil {
		return err
	}

	out, err := svc.ResolveCalls(cmd.Context(), &community.ResolveCallsInput{})
	if err != nil {
		return err
	}

	fmt.Printf("Resolved: %d successful, %d failed, %d still pending\n",
		out.Successful, out.Failed, out.Pending)
	return nil
}
