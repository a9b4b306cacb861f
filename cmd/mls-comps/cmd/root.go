// Package cmd implements the CLI commands for the mls-comps server.
package cmd

import (
	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "mls-comps",
	Short: "MLS comparable search and CMA valuation service",
	Long: "An API-first service that replicates listings from a RESO Web API feed, " +
		"scores comparable properties against a subject, computes grade-weighted " +
		"CMA valuations, and tracks per-city market heat.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	rootCmd.AddCommand(versionCommand())
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
