package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	var (
		filterArgs []string
		limit      int
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Run a filter-map search",
		Long: "Run a search using raw filter key=value pairs. Keys are normalized\n" +
			"server-side, so WordPress-style aliases (zip, Bedrooms, ListPrice)\n" +
			"work as well as canonical snake_case keys.",
		Example: `  mlsc search --filter city="Fort Lauderdale" --filter beds_min=3
  mlsc search --filter zip=33316 --filter price_max=750000 --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			searchFilters, err := parseFilterArgs(filterArgs)
			if err != nil {
				return err
			}

			c := newClient()
			resp, err := c.Search(context.Background(), searchFilters, limit, offset)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Properties) == 0 {
				fmt.Println("No properties matched.")
				return nil
			}
			if err := printPropertiesTable(resp.Properties); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d properties.\n", len(resp.Properties), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringArrayVar(&filterArgs, "filter", nil, "filters (key=value)")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")

	return cmd
}

// parseFilterArgs converts key=value pairs into a filter map, parsing
// numeric and boolean values so the server sees typed JSON.
func parseFilterArgs(args []string) (map[string]any, error) {
	filters := make(map[string]any, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected key=value", arg)
		}
		filters[key] = parseFilterValue(value)
	}
	return filters, nil
}

func parseFilterValue(s string) any {
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return s
}
