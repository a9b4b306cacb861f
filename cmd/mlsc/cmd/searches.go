package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func searchesCmd() *cobra.Command {
	searchesRoot := &cobra.Command{
		Use:   "searches",
		Short: "Manage saved searches",
		Long: "Manage saved searches: persisted filter maps tied to a contact that\n" +
			"can be re-run against the current inventory at any time.",
	}

	searchesRoot.AddCommand(
		searchesCreateCmd(),
		searchesGetCmd(),
		searchesListCmd(),
		searchesRunCmd(),
		searchesDeleteCmd(),
	)

	return searchesRoot
}

func searchesCreateCmd() *cobra.Command {
	var (
		searchName   string
		contactEmail string
		filterArgs   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Save a search for a contact",
		Example: `  mlsc searches create --name "FTL 3BR" --email jane@example.com \
    --filter city="Fort Lauderdale" --filter beds_min=3 --filter price_max=750000`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if searchName == "" || contactEmail == "" {
				return fmt.Errorf("--name and --email are required")
			}
			searchFilters, err := parseFilterArgs(filterArgs)
			if err != nil {
				return err
			}

			c := newClient()
			search, err := c.CreateSavedSearch(context.Background(), &apiclient.CreateSavedSearchRequest{
				Name:         searchName,
				ContactEmail: contactEmail,
				Filters:      searchFilters,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(search)
			}
			fmt.Printf("Saved search created: %s (%s)\n", search.Name, search.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&searchName, "name", "", "search name")
	cmd.Flags().StringVar(&contactEmail, "email", "", "contact email")
	cmd.Flags().StringArrayVar(&filterArgs, "filter", nil, "filters (key=value)")

	return cmd
}

func searchesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show a saved search",
		Example: `  mlsc searches get search123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			search, err := c.GetSavedSearch(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(search)
			}
			return printSavedSearchDetail(search)
		},
	}
}

func searchesListCmd() *cobra.Command {
	var contactEmail string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Example: `  mlsc searches list
  mlsc searches list --email jane@example.com`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			searches, err := c.ListSavedSearches(context.Background(), contactEmail)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(searches)
			}
			if len(searches) == 0 {
				fmt.Println("No saved searches found.")
				return nil
			}
			return printSavedSearchesTable(searches)
		},
	}
	cmd.Flags().StringVar(&contactEmail, "email", "", "filter by contact email")

	return cmd
}

func searchesRunCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "run <id>",
		Short:   "Run a saved search against current inventory",
		Example: `  mlsc searches run search123 --limit 10`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.RunSavedSearch(context.Background(), args[0], limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			if len(resp.Properties) == 0 {
				fmt.Printf("No properties matched %q.\n", resp.Search.Name)
				return nil
			}
			if err := printPropertiesTable(resp.Properties); err != nil {
				return err
			}
			fmt.Printf("\n%d of %d properties matched %q.\n",
				len(resp.Properties), resp.Total, resp.Search.Name)
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}

func searchesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a saved search",
		Example: `  mlsc searches delete search123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteSavedSearch(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Saved search %s deleted.\n", args[0])
			return nil
		},
	}
}

func printSavedSearchDetail(s *domain.SavedSearch) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", s.ID)
	tw.writef("Name:\t%s\n", s.Name)
	tw.writef("Contact:\t%s\n", s.ContactEmail)
	tw.writef("Created:\t%s\n", s.CreatedAt.Format("2006-01-02 15:04"))
	for key, value := range s.Filters {
		tw.writef("Filter %s:\t%v\n", key, value)
	}
	return tw.finish()
}
