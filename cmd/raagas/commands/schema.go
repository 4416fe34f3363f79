package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/composition"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the composition file JSON schema",
	Long: `Print the JSON schema of composition files, for editor validation
and completion. The default format is JSON.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := composition.Schema()
		if err != nil {
			return err
		}
		// The schema marshals itself to JSON; every other format goes
		// through the generic form.
		data, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("encode schema: %w", err)
		}
		var doc map[string]any
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("decode schema: %w", err)
		}
		return printResult(doc, func() error {
			return cli.Output(doc, cli.OutputOptions{Format: cli.FormatJSON})
		})
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
