// Package main is the entry point for the raagas CLI.
//
// Usage:
//
//	raagas [flags] <command> [args]
//
// Commands:
//
//	list     - List available compositions
//	show     - Show a composition and its octave views
//	parse    - Parse notation and print its canonical form
//	mutate   - Generate variations of a phrase within a raag
//	drill    - Build a tonic-bracketed practice run
//	play     - Render a raag or notation as a timeline
//	schema   - Print the composition file JSON schema
//	config   - Show or change settings
//	version  - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/haivivi/raagas/cmd/raagas/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
