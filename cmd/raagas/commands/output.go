package commands

import (
	"github.com/haivivi/raagas/pkg/cli"
)

// outputFormat resolves --format against the configured default.
func outputFormat() (cli.OutputFormat, error) {
	name := formatOutput
	if name == "" {
		if cfg, err := GetConfig(); err == nil && cfg.Format != "" {
			name = string(cfg.Format)
		}
	}
	if name == "" {
		return cli.FormatTable, nil
	}
	return cli.ParseFormat(name)
}

// printResult writes result in the requested structured format, or calls
// table for the human readable form. A query or an output file forces
// structured output, YAML when no format was asked for.
func printResult(result any, table func() error) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	if format == cli.FormatTable {
		if queryExpr == "" && outputFile == "" && table != nil {
			return table()
		}
		format = cli.FormatYAML
	}
	return cli.Output(result, cli.OutputOptions{
		Format: format,
		Query:  queryExpr,
		File:   outputFile,
	})
}
