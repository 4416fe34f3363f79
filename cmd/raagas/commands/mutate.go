package commands

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/swar"
)

// mutateRequest is the request file accepted by mutate -f.
type mutateRequest struct {
	Raag        string   `json:"raag" yaml:"raag"`
	Part        string   `json:"part,omitempty" yaml:"part,omitempty"`
	Phrase      string   `json:"phrase,omitempty" yaml:"phrase,omitempty"`
	Count       int      `json:"count,omitempty" yaml:"count,omitempty"`
	Seed        uint64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	Operators   []string `json:"operators,omitempty" yaml:"operators,omitempty"`
	MaxAttempts int      `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty"`
}

type mutationView struct {
	ID        string   `json:"id" yaml:"id"`
	Notation  string   `json:"notation" yaml:"notation"`
	Target    string   `json:"target" yaml:"target"`
	Direction string   `json:"direction" yaml:"direction"`
	Operator  string   `json:"operator" yaml:"operator"`
	Applied   string   `json:"applied" yaml:"applied"`
	Candidate string   `json:"candidate" yaml:"candidate"`
	Pool      []string `json:"pool" yaml:"pool"`
	Attempts  int      `json:"attempts" yaml:"attempts"`
}

type mutateView struct {
	Raag       string         `json:"raag" yaml:"raag"`
	Part       string         `json:"part" yaml:"part"`
	Source     string         `json:"source" yaml:"source"`
	Variations []mutationView `json:"variations" yaml:"variations"`
}

var (
	mutateFile        string
	mutatePart        string
	mutatePhrase      string
	mutateCount       int
	mutateSeed        uint64
	mutateOperators   []string
	mutateMaxAttempts int
)

var mutateCmd = &cobra.Command{
	Use:   "mutate [raag]",
	Short: "Generate variations of a phrase within a raag",
	Long: `Generate variations of a phrase. Each variation rewrites one swar of
the previous one: its neighbours decide whether the phrase ascends or
descends, and the replacement is drawn from the same neighbourhood of
the raag's aroha or avroha.

Operators: replace, inc_beat, dec_beat, share_beat, kan_swar.

Examples:
  raagas mutate durga --part pakad -n 4
  raagas mutate bhupali --phrase "G R S - .D S R G" --seed 7
  raagas mutate -f request.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMutate,
}

func init() {
	f := mutateCmd.Flags()
	f.StringVarP(&mutateFile, "file", "f", "", "request file (YAML or JSON, - for stdin)")
	f.StringVar(&mutatePart, "part", raag.PartPakad, "part to vary: aroha, avroha, pakad, alankars, mukra, tihayi or line:<tag>")
	f.StringVar(&mutatePhrase, "phrase", "", "notation to vary instead of a part")
	f.IntVarP(&mutateCount, "count", "n", 1, "number of chained variations")
	f.Uint64Var(&mutateSeed, "seed", 0, "random seed (0 picks one)")
	f.StringSliceVar(&mutateOperators, "operator", nil, "restrict operators (repeatable)")
	f.IntVar(&mutateMaxAttempts, "max-attempts", raag.DefaultMaxAttempts, "draws per variation before giving up")
	rootCmd.AddCommand(mutateCmd)
}

func runMutate(cmd *cobra.Command, args []string) error {
	var req mutateRequest
	if mutateFile != "" {
		if err := cli.LoadRequest(mutateFile, &req); err != nil {
			return err
		}
	}

	// Flags and arguments override the request file.
	flags := cmd.Flags()
	if len(args) == 1 {
		req.Raag = args[0]
	}
	if flags.Changed("part") || req.Part == "" {
		req.Part = mutatePart
	}
	if flags.Changed("phrase") {
		req.Phrase = mutatePhrase
	}
	if flags.Changed("count") || req.Count == 0 {
		req.Count = mutateCount
	}
	if flags.Changed("seed") {
		req.Seed = mutateSeed
	}
	if flags.Changed("operator") {
		req.Operators = mutateOperators
	}
	if flags.Changed("max-attempts") || req.MaxAttempts == 0 {
		req.MaxAttempts = mutateMaxAttempts
	}
	if req.Raag == "" {
		return errors.New("raag is required (argument or request file)")
	}

	r, err := catalog().Open(req.Raag)
	if err != nil {
		return err
	}

	part := req.Part
	var src swar.Blocks
	if req.Phrase != "" {
		part = "phrase"
		if src, err = swar.ParseBlocks(req.Phrase, swar.NewTable()); err != nil {
			return err
		}
	} else if src, err = r.Part(req.Part); err != nil {
		return err
	}

	opts := []raag.MutatorOption{
		raag.WithLogger(slog.Default().With("raag", r.Name)),
		raag.WithMaxAttempts(req.MaxAttempts),
	}
	if req.Seed != 0 {
		opts = append(opts, raag.WithRand(rand.New(rand.NewPCG(req.Seed, 0))))
	}
	if len(req.Operators) > 0 {
		ops := make([]raag.Operator, len(req.Operators))
		for i, name := range req.Operators {
			if ops[i], err = raag.ParseOperator(name); err != nil {
				return err
			}
		}
		opts = append(opts, raag.WithOperators(ops...))
	}

	muts, err := raag.NewMutator(r, opts...).Variations(src, req.Count)
	if err != nil {
		if len(muts) == 0 {
			return err
		}
		cli.PrintWarning(os.Stderr, "only %d of %d variations: %v", len(muts), req.Count, err)
	}

	v := mutateView{Raag: r.Name, Part: part, Source: src.String()}
	for _, m := range muts {
		v.Variations = append(v.Variations, newMutationView(m))
	}
	return printResult(v, func() error {
		if IsVerbose() {
			fmt.Printf("   %s\n", v.Source)
		}
		for i, m := range v.Variations {
			fmt.Printf("%2d %s\n", i+1, m.Notation)
			if IsVerbose() {
				fmt.Printf("   %s %s %s -> %s (%s)\n", m.Target, m.Direction, m.Applied, m.Candidate, m.ID)
			}
		}
		return nil
	})
}

func newMutationView(m *raag.Mutation) mutationView {
	pool := make([]string, len(m.Pool))
	for i, s := range m.Pool {
		pool[i] = s.Pitch.Name()
	}
	return mutationView{
		ID:        m.ID,
		Notation:  m.Blocks.String(),
		Target:    m.Target.String(),
		Direction: m.Direction.String(),
		Operator:  m.Operator.String(),
		Applied:   m.Applied.String(),
		Candidate: m.Candidate.Pitch.Name(),
		Pool:      pool,
		Attempts:  m.Attempts,
	}
}
