// Package main is the main package for the treescaffold CLI.
package main

import (
	"os"

	"github.com/holonoms/treescaffold/internal/cli"
)

func main() {
	if err := cli.NewRootCmd(&cli.Options{}).Execute(); err != nil {
		os.Exit(1)
	}
}
