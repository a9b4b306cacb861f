package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
)

func propertiesCmd() *cobra.Command {
	propsRoot := &cobra.Command{
		Use:   "properties",
		Short: "Query replicated MLS listings",
		Long: "Query the local replica of MLS listings by city, postal code,\n" +
			"price band, bed count, status, and waterfront flag.",
	}

	propsRoot.AddCommand(
		propertiesListCmd(),
		propertiesGetCmd(),
	)

	return propsRoot
}

func propertiesListCmd() *cobra.Command {
	var (
		city       string
		postalCode string
		subType    string
		status     string
		priceMin   float64
		priceMax   float64
		bedsMin    int
		waterfront bool
		limit      int
		offset     int
		orderBy    string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties matching filters",
		Example: `  mlsc properties list --city "Fort Lauderdale" --beds 3
  mlsc properties list --status closed --min-price 400000 --max-price 600000
  mlsc properties list --zip 33316 --waterfront --output json`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			resp, err := c.ListProperties(context.Background(), &apiclient.ListPropertiesParams{
				City:       city,
				PostalCode: postalCode,
				SubType:    subType,
				Status:     status,
				PriceMin:   priceMin,
				PriceMax:   priceMax,
				BedsMin:    bedsMin,
				Waterfront: waterfront,
				Limit:      limit,
				Offset:     offset,
				OrderBy:    orderBy,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Properties) == 0 {
				fmt.Println("No properties found.")
				return nil
			}
			if err := printPropertiesTable(resp.Properties); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d properties.\n", len(resp.Properties), resp.Total)
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	cmd.Flags().StringVar(&postalCode, "zip", "", "filter by postal code")
	cmd.Flags().StringVar(&subType, "sub-type", "", "filter by property sub type")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (active, pending, closed)")
	cmd.Flags().Float64Var(&priceMin, "min-price", 0, "minimum price")
	cmd.Flags().Float64Var(&priceMax, "max-price", 0, "maximum price")
	cmd.Flags().IntVar(&bedsMin, "beds", 0, "minimum bed count")
	cmd.Flags().BoolVar(&waterfront, "waterfront", false, "waterfront only")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")
	cmd.Flags().IntVar(&offset, "offset", 0, "result offset")
	cmd.Flags().StringVar(&orderBy, "order-by", "", "sort order (price_asc, price_desc, dom_asc, newest)")

	return cmd
}

func propertiesGetCmd() *cobra.Command {
	var byMLS bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show property details",
		Example: `  mlsc properties get abc123
  mlsc properties get F10412345 --mls`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			lookup := c.GetProperty
			if byMLS {
				lookup = c.GetPropertyByMLS
			}
			p, err := lookup(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(p)
			}
			return printPropertyDetail(p)
		},
	}
	cmd.Flags().BoolVar(&byMLS, "mls", false, "look up by MLS number instead of ID")

	return cmd
}
