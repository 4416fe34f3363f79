package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available compositions",
	Long: `List the compositions in the compositions directory and the ones
shipped with the binary. A user file shadows a builtin of the same name.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := catalog().List()
		if err != nil {
			return err
		}
		return printResult(entries, func() error {
			if len(entries) == 0 {
				fmt.Println("No compositions found.")
				return nil
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSOURCE")
			for _, e := range entries {
				fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Source)
			}
			return w.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
