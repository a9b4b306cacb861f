// Package main is the entry point for the mlsc CLI client.
package main

import (
	"github.com/harborview/mls-comps/cmd/mlsc/cmd"
)

func main() {
	cmd.Execute()
}
