// Package main provides the entry point for carflow-collector.
//
// carflow-collector is the command-line client for CarFlow,
// collecting car sightings from a set of feed servers and merging
// them into a single list.
package main

import (
	"fmt"
	"os"

	"github.com/yndnr/carflow-go/internal/cli/command"
)

func main() {
	app := command.App()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
