package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
)

type configView struct {
	Path            string  `json:"path" yaml:"path"`
	CompositionsDir string  `json:"compositions_dir" yaml:"compositions_dir"`
	BeatsPerSecond  float64 `json:"beats_per_second,omitempty" yaml:"beats_per_second,omitempty"`
	Format          string  `json:"format,omitempty" yaml:"format,omitempty"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
	Long: `Show or change settings.

Keys:
  compositions_dir   directory of user composition files
  beats_per_second   playback tempo
  format             default output format

Examples:
  raagas config show
  raagas config set beats_per_second 3
  raagas config get format
  raagas config set format ""`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show all settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		v := configView{
			Path:            cfg.Path(),
			CompositionsDir: compositionsDir(),
			BeatsPerSecond:  cfg.BeatsPerSecond,
			Format:          string(cfg.Format),
		}
		return printResult(v, func() error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "config\t%s\n", v.Path)
			for _, key := range cfg.Keys() {
				val, _ := cfg.Get(key)
				if key == "compositions_dir" {
					val = v.CompositionsDir
				}
				if val == "" {
					val = "(default)"
				}
				fmt.Fprintf(w, "%s\t%s\n", key, val)
			}
			return w.Flush()
		})
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		val, err := cfg.Get(args[0])
		if err != nil {
			return err
		}
		fmt.Println(val)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change one setting; an empty value restores the default",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := GetConfig()
		if err != nil {
			return err
		}
		if err := cfg.Set(args[0], args[1]); err != nil {
			return err
		}
		cli.PrintSuccess(os.Stdout, "%s saved to %s", args[0], cfg.Path())
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
