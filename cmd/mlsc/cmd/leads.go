package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
)

func leadsCmd() *cobra.Command {
	leadsRoot := &cobra.Command{
		Use:   "leads",
		Short: "Capture and list leads",
		Long: "Capture buyer or seller inquiries and list them. New leads are\n" +
			"routed to the active agent with the fewest assigned leads.",
	}

	leadsRoot.AddCommand(
		leadsCreateCmd(),
		leadsListCmd(),
	)

	return leadsRoot
}

func leadsCreateCmd() *cobra.Command {
	var (
		leadName   string
		email      string
		phone      string
		message    string
		source     string
		propertyID string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Capture a new lead",
		Example: `  mlsc leads create --name "John Doe" --email john@example.com
  mlsc leads create --name "John Doe" --email john@example.com \
    --property abc123 --source listing_page --message "Is this still available?"`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if leadName == "" || email == "" {
				return fmt.Errorf("--name and --email are required")
			}

			c := newClient()
			lead, err := c.CreateLead(context.Background(), &apiclient.CreateLeadRequest{
				Name:       leadName,
				Email:      email,
				Phone:      phone,
				Message:    message,
				Source:     source,
				PropertyID: propertyID,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(lead)
			}
			assignment := "unassigned"
			if lead.AgentID != nil {
				assignment = "assigned to agent " + *lead.AgentID
			}
			fmt.Printf("Lead created: %s (%s), %s\n", lead.Name, lead.ID, assignment)
			return nil
		},
	}
	cmd.Flags().StringVar(&leadName, "name", "", "lead name")
	cmd.Flags().StringVar(&email, "email", "", "lead email")
	cmd.Flags().StringVar(&phone, "phone", "", "lead phone")
	cmd.Flags().StringVar(&message, "message", "", "inquiry message")
	cmd.Flags().StringVar(&source, "source", "", "lead source")
	cmd.Flags().StringVar(&propertyID, "property", "", "property the inquiry is about")

	return cmd
}

func leadsListCmd() *cobra.Command {
	var (
		agentID string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List captured leads",
		Example: `  mlsc leads list
  mlsc leads list --agent agent123 --limit 20`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			leads, err := c.ListLeads(context.Background(), agentID, limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(leads)
			}
			if len(leads) == 0 {
				fmt.Println("No leads found.")
				return nil
			}
			return printLeadsTable(leads)
		},
	}
	cmd.Flags().StringVar(&agentID, "agent", "", "filter by assigned agent")
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}
