package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
	domain "github.com/harborview/mls-comps/pkg/types"
)

func agentsCmd() *cobra.Command {
	agentsRoot := &cobra.Command{
		Use:   "agents",
		Short: "Manage agents",
		Long: "Manage the agents that leads are routed to. Only active agents\n" +
			"receive new lead assignments.",
	}

	agentsRoot.AddCommand(
		agentsCreateCmd(),
		agentsGetCmd(),
		agentsListCmd(),
		agentsEnableCmd(),
		agentsDisableCmd(),
	)

	return agentsRoot
}

func agentsCreateCmd() *cobra.Command {
	var (
		agentName string
		email     string
		phone     string
		license   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a new agent",
		Example: `  mlsc agents create --name "Jane Realtor" --email jane@example.com \
    --license SL1234567`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if agentName == "" || email == "" {
				return fmt.Errorf("--name and --email are required")
			}

			c := newClient()
			agent, err := c.CreateAgent(context.Background(), &apiclient.CreateAgentRequest{
				Name:          agentName,
				Email:         email,
				Phone:         phone,
				LicenseNumber: license,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(agent)
			}
			fmt.Printf("Agent created: %s (%s)\n", agent.Name, agent.ID)
			return nil
		},
	}
	cmd.Flags().StringVar(&agentName, "name", "", "agent name")
	cmd.Flags().StringVar(&email, "email", "", "agent email")
	cmd.Flags().StringVar(&phone, "phone", "", "agent phone")
	cmd.Flags().StringVar(&license, "license", "", "license number")

	return cmd
}

func agentsGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "get <id>",
		Short:   "Show agent details",
		Example: `  mlsc agents get agent123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			agent, err := c.GetAgent(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(agent)
			}
			return printAgentsTable([]domain.Agent{*agent})
		},
	}
}

func agentsListCmd() *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agents",
		Example: `  mlsc agents list
  mlsc agents list --active`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			agents, err := c.ListAgents(context.Background(), activeOnly)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(agents)
			}
			if len(agents) == 0 {
				fmt.Println("No agents found.")
				return nil
			}
			return printAgentsTable(agents)
		},
	}
	cmd.Flags().BoolVar(&activeOnly, "active", false, "active agents only")

	return cmd
}

func agentsEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "enable <id>",
		Short:   "Mark an agent active",
		Example: `  mlsc agents enable agent123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAgentSetActive(args[0], true)
		},
	}
}

func agentsDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "disable <id>",
		Short:   "Mark an agent inactive",
		Example: `  mlsc agents disable agent123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runAgentSetActive(args[0], false)
		},
	}
}

func runAgentSetActive(id string, active bool) error {
	c := newClient()
	if err := c.SetAgentActive(context.Background(), id, active); err != nil {
		return err
	}

	action := "activated"
	if !active {
		action = "deactivated"
	}
	fmt.Printf("Agent %s %s.\n", id, action)
	return nil
}
