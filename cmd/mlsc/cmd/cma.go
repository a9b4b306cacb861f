package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
)

func cmaCmd() *cobra.Command {
	cmaRoot := &cobra.Command{
		Use:   "cma",
		Short: "Manage CMA sessions",
		Long: "Manage comparative-market-analysis sessions: create a session for a\n" +
			"subject property, regrade comparables, compute the grade-weighted\n" +
			"valuation, and finalize the report.",
	}

	cmaRoot.AddCommand(
		cmaCreateCmd(),
		cmaGetCmd(),
		cmaListCmd(),
		cmaValuateCmd(),
		cmaFinalizeCmd(),
		cmaRegradeCmd(),
		cmaDeleteCmd(),
	)

	return cmaRoot
}

func cmaCreateCmd() *cobra.Command {
	var (
		sessionName string
		subjectID   string
		contactName string
		notes       string
		compArgs    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new CMA session",
		Long: "Create a CMA session for a subject property. Without --comp flags\n" +
			"the server runs a comparable search and seeds the session with the\n" +
			"ranked results; each --comp pins an explicit property, optionally\n" +
			"with a starting grade (property_id or property_id:B).",
		Example: `  # Auto-select comparables for the subject
  mlsc cma create --name "Smith CMA" --subject abc123 --contact "Jane Smith"

  # Pin explicit comparables with grades
  mlsc cma create --name "Smith CMA" --subject abc123 \
    --comp def456:A --comp ghi789:C`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if sessionName == "" || subjectID == "" {
				return fmt.Errorf("--name and --subject are required")
			}
			comparables, err := parseCompArgs(compArgs)
			if err != nil {
				return err
			}

			c := newClient()
			resp, err := c.CreateSession(context.Background(), &apiclient.CreateSessionRequest{
				Name:        sessionName,
				SubjectID:   subjectID,
				ContactName: contactName,
				Notes:       notes,
				Comparables: comparables,
			})
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			fmt.Printf("Session created: %s (%s), %d comparables\n",
				resp.Session.Name, resp.Session.ID, len(resp.Comparables))
			return nil
		},
	}
	cmd.Flags().StringVar(&sessionName, "name", "", "session name")
	cmd.Flags().StringVar(&subjectID, "subject", "", "subject property ID")
	cmd.Flags().StringVar(&contactName, "contact", "", "client contact name")
	cmd.Flags().StringVar(&notes, "notes", "", "session notes")
	cmd.Flags().StringArrayVar(&compArgs, "comp", nil, "comparable (property_id or property_id:grade)")

	return cmd
}

func cmaGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a session with its comparables",
		Example: `  mlsc cma get sess123
  mlsc cma get sess123 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			resp, err := c.GetSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(resp)
			}
			return printSessionDetail(resp)
		},
	}
}

func cmaListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List CMA sessions",
		Example: `  mlsc cma list --limit 10`,
		RunE: func(_ *cobra.Command, _ []string) error {
			c := newClient()
			sessions, err := c.ListSessions(context.Background(), limit)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(sessions)
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions found.")
				return nil
			}
			return printSessionsTable(sessions)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "max results")

	return cmd
}

func cmaValuateCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "valuate <id>",
		Short:   "Compute the session's grade-weighted valuation",
		Example: `  mlsc cma valuate sess123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			v, err := c.ComputeValuation(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			return printValuation(v)
		},
	}
}

func cmaFinalizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "finalize <id>",
		Short:   "Finalize a session and freeze its valuation snapshot",
		Example: `  mlsc cma finalize sess123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			v, err := c.FinalizeSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			fmt.Printf("Session %s finalized.\n\n", args[0])
			return printValuation(v)
		},
	}
}

func cmaRegradeCmd() *cobra.Command {
	var (
		grade  string
		weight float64
	)

	cmd := &cobra.Command{
		Use:   "regrade <session_id> <comparable_id>",
		Short: "Change a comparable's grade or manual weight",
		Example: `  mlsc cma regrade sess123 comp456 --grade B
  mlsc cma regrade sess123 comp456 --grade A --weight 4.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if grade == "" {
				return fmt.Errorf("--grade is required")
			}
			useCustomWeight := cmd.Flags().Changed("weight")

			c := newClient()
			v, err := c.RegradeComparable(
				context.Background(),
				args[0], args[1],
				grade, useCustomWeight, weight,
			)
			if err != nil {
				return err
			}
			if jsonOutput() {
				return outputJSON(v)
			}
			return printValuation(v)
		},
	}
	cmd.Flags().StringVar(&grade, "grade", "", "grade (A, B, C, D, F)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "manual weight override")

	return cmd
}

func cmaDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Short:   "Delete a session",
		Example: `  mlsc cma delete sess123`,
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			c := newClient()
			if err := c.DeleteSession(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Session %s deleted.\n", args[0])
			return nil
		},
	}
}

func parseCompArgs(args []string) ([]apiclient.SessionComparable, error) {
	comparables := make([]apiclient.SessionComparable, 0, len(args))
	for _, arg := range args {
		propertyID, grade, _ := strings.Cut(arg, ":")
		if propertyID == "" {
			return nil, fmt.Errorf("invalid comparable %q, expected property_id[:grade]", arg)
		}
		comparables = append(comparables, apiclient.SessionComparable{
			PropertyID: propertyID,
			Grade:      strings.ToUpper(grade),
		})
	}
	return comparables, nil
}
