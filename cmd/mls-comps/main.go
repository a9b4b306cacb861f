// Package main is the entry point for the mls-comps server.
package main

import (
	"os"

	"github.com/harborview/mls-comps/cmd/mls-comps/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
