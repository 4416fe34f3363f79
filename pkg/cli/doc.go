// Package cli provides common utilities for the raagas command-line tool.
//
// This package includes:
//   - Configuration (compositions directory, tempo, output format)
//   - Output formatting (YAML, JSON, msgpack, raw) with jq queries
//   - Request file loading (YAML/JSON)
//   - Terminal frames for composition display
//
// Configuration is stored under os.UserConfigDir()/raagas/config.yaml.
//
// Example usage:
//
//	cfg, err := cli.LoadConfig("raagas")
//
//	cli.Output(result, cli.OutputOptions{
//	    Format: cli.FormatJSON,
//	    Query:  ".blocks",
//	    File:   outputPath,
//	})
package cli
