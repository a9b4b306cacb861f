// Package cmd implements the mlsc CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	apiclient "github.com/harborview/mls-comps/internal/api/client"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "mlsc",
		Short: "CLI client for the MLS comps API",
		Long: "mlsc is a command-line client for the MLS comps API.\n" +
			"It lets you query listings, rank comparables, manage CMA sessions,\n" +
			"inspect market heat, and route leads from the terminal.",
	}
)

// Root returns the root cobra command for documentation generation.
func Root() *cobra.Command {
	return rootCmd
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default $HOME/.mlsc.yaml)")
	rootCmd.PersistentFlags().
		String("server", "http://localhost:8080", "API server URL")
	rootCmd.PersistentFlags().
		String("output", "table", "output format (table, json)")

	cobra.CheckErr(viper.BindPFlag("server", rootCmd.PersistentFlags().Lookup("server")))
	cobra.CheckErr(viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output")))

	rootCmd.AddCommand(propertiesCmd())
	rootCmd.AddCommand(searchCmd())
	rootCmd.AddCommand(compsCmd())
	rootCmd.AddCommand(cmaCmd())
	rootCmd.AddCommand(marketCmd())
	rootCmd.AddCommand(leadsCmd())
	rootCmd.AddCommand(agentsCmd())
	rootCmd.AddCommand(searchesCmd())
	rootCmd.AddCommand(jobsCmd())
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(quotaCmd())
	rootCmd.AddCommand(stateCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".mlsc")
	}

	viper.SetEnvPrefix("MLSC")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func newClient() *apiclient.Client {
	return apiclient.New(viper.GetString("server"))
}

func jsonOutput() bool {
	return viper.GetString("output") == "json"
}
