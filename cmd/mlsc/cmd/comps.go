package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func compsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comps <property_id>",
		Short: "Rank comparables for a subject property",
		Long: "Searches closed and active listings near the subject, scores each\n" +
			"candidate on size, beds, baths, price, distance, and waterfront\n" +
			"match, and returns them ranked by similarity.",
		Example: `  mlsc comps abc123
  mlsc comps abc123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.FindComparables(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printComparablesTable(resp)
		},
	}
}
