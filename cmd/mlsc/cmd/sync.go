package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Trigger an immediate feed sync",
		Long:  "Triggers a feed sync that pulls modified listings from the RESO feed.",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			n, err := c.TriggerFeedSync(context.Background())
			if err != nil {
				return err
			}

			fmt.Printf("Feed sync complete: %d properties written.\n", n)
			return nil
		},
	}
}

func quotaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "quota",
		Short: "Show feed API quota status",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			q, err := c.GetQuota(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(q)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Daily Limit:\t%d\n", q.DailyLimit)
			tw.writef("Used Today:\t%d\n", q.DailyUsed)
			tw.writef("Remaining:\t%d\n", q.Remaining)
			tw.writef("Resets At:\t%s\n", q.ResetAt.Format("2006-01-02 15:04:05 MST"))
			return tw.finish()
		},
	}
}

func stateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Show aggregate system counts",
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			state, err := c.GetSystemState(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(state)
			}

			tw := newTabWriter(os.Stdout)
			tw.writef("Properties:\t%d (%d active)\n", state.PropertiesTotal, state.PropertiesActive)
			tw.writef("CMA Sessions:\t%d\n", state.CMASessionsTotal)
			tw.writef("Leads:\t%d (%d unassigned)\n", state.LeadsTotal, state.LeadsUnassigned)
			tw.writef("Active Agents:\t%d\n", state.AgentsActive)
			tw.writef("Saved Searches:\t%d\n", state.SavedSearchesTotal)
			tw.writef("Market Snapshots:\t%d\n", state.SnapshotsTotal)
			return tw.finish()
		},
	}
}
