package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func marketCmd() *cobra.Command {
	marketRoot := &cobra.Command{
		Use:   "market",
		Short: "Inspect per-city market heat",
		Long: "Inspect per-city market snapshots: the heat index and its inputs\n" +
			"(average DOM, sale-to-list ratio, months of supply, absorption rate).",
	}

	marketRoot.AddCommand(
		marketHeatCmd(),
		marketSnapshotsCmd(),
		marketCitiesCmd(),
		marketRefreshCmd(),
	)

	return marketRoot
}

func marketHeatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "heat <city>",
		Short: "Show the latest heat index for a city",
		Example: `  mlsc market heat "Fort Lauderdale"
  mlsc market heat Hollywood --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			snap, err := c.GetMarketHeat(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(snap)
			}
			return printSnapshotDetail(snap)
		},
	}
}

func marketSnapshotsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "snapshots <city>",
		Short:   "Show the snapshot history for a city",
		Example: `  mlsc market snapshots "Fort Lauderdale" --limit 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			snapshots, err := c.ListMarketSnapshots(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(snapshots)
			}
			if len(snapshots) == 0 {
				fmt.Printf("No snapshots found for %q.\n", args[0])
				return nil
			}
			return printSnapshotsTable(snapshots)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}

func marketCitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "cities",
		Short:   "List cities with stored inventory",
		Example: `  mlsc market cities`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			cities, err := c.ListCities(context.Background())
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(cities)
			}
			for _, city := range cities {
				fmt.Println(city)
			}
			return nil
		},
	}
}

func marketRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "refresh",
		Short:   "Trigger a snapshot refresh for all cities",
		Example: `  mlsc market refresh`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			n, err := c.RefreshSnapshots(context.Background())
			if err != nil {
				return err
			}
			fmt.Printf("Snapshot refresh complete: %d snapshots written.\n", n)
			return nil
		},
	}
}
