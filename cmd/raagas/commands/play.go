package commands

import (
	"bufio"
	"fmt"
	"iter"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/composition"
	"github.com/haivivi/raagas/pkg/raag"
	"github.com/haivivi/raagas/pkg/render"
	"github.com/haivivi/raagas/pkg/swar"
)

type playable interface {
	Events() iter.Seq[swar.Event]
}

type playView struct {
	Source         string        `json:"source" yaml:"source"`
	BeatsPerSecond float64       `json:"beats_per_second" yaml:"beats_per_second"`
	Beats          float64       `json:"beats" yaml:"beats"`
	Duration       string        `json:"duration" yaml:"duration"`
	Notes          []render.Note `json:"notes" yaml:"notes"`
	Clicks         []render.Note `json:"clicks,omitempty" yaml:"clicks,omitempty"`
}

var (
	playBPS       float64
	playPart      string
	playPlain     bool
	playMetronome bool
	playCycle     int
)

var playCmd = &cobra.Command{
	Use:   "play <raag|notation|file>",
	Short: "Render a raag or notation as a timeline",
	Long: `Render music as a timeline of notes. The argument is tried as a
notation file (one phrase, lines joined), then as a composition, then
as notation.

A composition plays its aroha, avroha, pakad and swarmaalika with a
pause between parts and the tihayi three times. Use --part for a single
part or --plain to skip the pauses and the tihayi.

Examples:
  raagas play durga
  raagas play durga --part line:lineB --bps 3
  raagas play "S R G - P/M G R S"
  raagas play phrase.txt --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, m, sam, err := resolvePlayable(args[0])
		if err != nil {
			return err
		}
		t := tempo(playBPS)

		var beats float64
		for ev := range m.Events() {
			beats += ev.Beats
		}
		var clicks []render.Note
		if playMetronome {
			met := render.DefaultMetronome(t, int(math.Ceil(beats)))
			met.Sam = sam
			if playCycle > 0 {
				met.Cycle = playCycle
			}
			clicks = met.Generate()
		}

		format, err := outputFormat()
		if err != nil {
			return err
		}
		if format == cli.FormatTable && queryExpr == "" && outputFile == "" {
			if err := render.NewTimeline(os.Stdout, t).Render(cmd.Context(), m.Events()); err != nil {
				return err
			}
			fmt.Printf("%s, %s at %.0f BPM\n", cli.FormatBeats(beats), cli.FormatDuration(t.Duration(beats)), t.BPM())
			if playMetronome {
				fmt.Printf("metronome: %d clicks, sam on %d\n", int(math.Ceil(beats)), sam)
			}
			return nil
		}

		c := &render.Collector{Tempo: t}
		if err := c.Render(cmd.Context(), m.Events()); err != nil {
			return err
		}
		return printResult(playView{
			Source:         name,
			BeatsPerSecond: t.BeatsPerSecond,
			Beats:          beats,
			Duration:       cli.FormatDuration(c.Duration()),
			Notes:          c.Notes,
			Clicks:         clicks,
		}, nil)
	},
}

func init() {
	f := playCmd.Flags()
	f.Float64Var(&playBPS, "bps", 0, "beats per second (default: config or 2)")
	f.StringVar(&playPart, "part", "", "play only this part of a composition")
	f.BoolVar(&playPlain, "plain", false, "play composition parts back to back")
	f.BoolVar(&playMetronome, "metronome", false, "add a click track accenting the sam")
	f.IntVar(&playCycle, "cycle", 0, "metronome cycle length in beats (default 16)")
	rootCmd.AddCommand(playCmd)
}

// resolvePlayable returns a display name, the music and its sam.
func resolvePlayable(ref string) (string, playable, int, error) {
	table := swar.NewTable()
	if info, err := os.Stat(ref); err == nil && !info.IsDir() && filepath.Ext(ref) != composition.Ext {
		blk, err := loadNotationFile(ref, table)
		if err != nil {
			return "", nil, 0, err
		}
		return filepath.Base(ref), raag.BlockMelody(blk), 1, nil
	}

	r, err := catalog().Open(ref)
	switch {
	case err == nil:
		sam := 1
		if r.Swarmaalika != nil {
			sam = r.Swarmaalika.Sam
		}
		switch {
		case playPart != "":
			bs, err := r.Part(playPart)
			if err != nil {
				return "", nil, 0, err
			}
			return r.Name + "/" + playPart, raag.BlocksMelody(bs), sam, nil
		case playPlain:
			return r.Name, raag.RaagMelody(r), sam, nil
		default:
			return r.Name, render.Plan(r), sam, nil
		}
	case !composition.IsNotFound(err):
		return "", nil, 0, err
	}

	bs, err := swar.ParseBlocks(ref, table)
	if err != nil {
		return "", nil, 0, fmt.Errorf("%q is neither a composition nor notation: %w", ref, err)
	}
	return "notation", raag.BlocksMelody(bs), 1, nil
}

// loadNotationFile reads a text file of notation lines into one block.
// Blank lines and lines starting with # are skipped.
func loadNotationFile(path string, t *swar.Table) (swar.Block, error) {
	f, err := os.Open(path)
	if err != nil {
		return swar.Block{}, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return swar.Block{}, fmt.Errorf("read %s: %w", path, err)
	}
	bs, err := swar.ParseBlocks(strings.Join(lines, " "), t)
	if err != nil {
		return swar.Block{}, fmt.Errorf("%s: %w", path, err)
	}
	return bs.Concat(), nil
}
