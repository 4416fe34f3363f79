package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/cmd/raagas/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printResult(build.Get(), func() error {
			fmt.Println(build.String())
			if IsVerbose() {
				info := build.Get()
				fmt.Printf("  go:     %s\n", info.Go)
				if cfg, err := GetConfig(); err == nil {
					fmt.Printf("  config: %s\n", cfg.Path())
				} else {
					fmt.Printf("  config: (unavailable: %v)\n", err)
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
