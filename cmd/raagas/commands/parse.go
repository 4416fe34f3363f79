package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/swar"
)

type parseView struct {
	Notation string      `json:"notation" yaml:"notation"`
	Beats    int         `json:"beats" yaml:"beats"`
	Duration string      `json:"duration" yaml:"duration"`
	Blocks   []blockView `json:"blocks" yaml:"blocks"`
}

var parseCmd = &cobra.Command{
	Use:   "parse <notation>...",
	Short: "Parse notation and print its canonical form",
	Long: `Parse sargam notation. Arguments are joined with spaces; commas split
blocks.

  S R G        whole beats
  -            hold the previous swar one more beat
  S:R  S:R:G:M halves and quarters of a beat
  S:-  :R      a held half and a silent half
  D/S.         kan swar: a grace note and its complement
  .N  S.       lower and higher octave`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bs, err := swar.ParseBlocks(strings.Join(args, " "), swar.NewTable())
		if err != nil {
			return err
		}
		var beats float64
		for ev := range bs.Events() {
			beats += ev.Beats
		}
		v := parseView{
			Notation: bs.String(),
			Beats:    bs.Len(),
			Duration: cli.FormatDuration(tempo(0).Duration(beats)),
			Blocks:   newBlocksView(bs),
		}
		return printResult(v, func() error {
			fmt.Println(v.Notation)
			if IsVerbose() {
				fmt.Printf("%d blocks, %d beats, %s\n", len(bs), v.Beats, v.Duration)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
