package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	jobsRoot := &cobra.Command{
		Use:   "jobs",
		Short: "View scheduler job history",
		Long: "View the execution history of scheduled jobs (feed_sync,\n" +
			"snapshot_refresh). Each run records status, rows affected, and any\n" +
			"error text.",
	}

	jobsRoot.AddCommand(jobsListCmd())

	return jobsRoot
}

func jobsListCmd() *cobra.Command {
	var (
		jobName string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent job runs",
		Example: `  mlsc jobs list
  mlsc jobs list --job feed_sync --limit 50`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			runs, err := c.ListJobs(context.Background(), jobName, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(runs)
			}
			if len(runs) == 0 {
				fmt.Println("No job runs found.")
				return nil
			}
			return printJobRunsTable(runs)
		},
	}
	cmd.Flags().StringVar(&jobName, "job", "", "filter by job name")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}
