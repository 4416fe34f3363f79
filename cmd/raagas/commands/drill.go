package commands

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/raag"
)

type drillView struct {
	Raag     string `json:"raag" yaml:"raag"`
	Tonic    string `json:"tonic" yaml:"tonic"`
	Notes    int    `json:"notes" yaml:"notes"`
	Notation string `json:"notation" yaml:"notation"`
	Beats    int    `json:"beats" yaml:"beats"`
}

var (
	drillCount int
	drillSeed  uint64
)

var drillCmd = &cobra.Command{
	Use:   "drill <raag>",
	Short: "Build a tonic-bracketed practice run",
	Long: `Draw notes from the aroha followed by the avroha, keeping their
order, and bracket them with the tonic. The tonic is held for 3 beats
and every other note for 2.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := catalog().Open(args[0])
		if err != nil {
			return err
		}
		var rng *rand.Rand
		if drillSeed != 0 {
			rng = rand.New(rand.NewPCG(drillSeed, 0))
		}
		blk, err := raag.Drill(r, drillCount, rng)
		if err != nil {
			return err
		}
		tonic, _ := r.Tonic()
		v := drillView{
			Raag:     r.Name,
			Tonic:    tonic.Pitch.Name(),
			Notes:    drillCount,
			Notation: blk.String(),
			Beats:    blk.Len(),
		}
		return printResult(v, func() error {
			fmt.Println(v.Notation)
			return nil
		})
	},
}

func init() {
	drillCmd.Flags().IntVarP(&drillCount, "count", "n", 4, "number of notes between the tonics")
	drillCmd.Flags().Uint64Var(&drillSeed, "seed", 0, "random seed (0 picks one)")
	rootCmd.AddCommand(drillCmd)
}
