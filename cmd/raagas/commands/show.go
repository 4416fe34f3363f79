package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/haivivi/raagas/pkg/cli"
	"github.com/haivivi/raagas/pkg/raag"
)

const showWidth = 72

var showCmd = &cobra.Command{
	Use:   "show <raag>",
	Short: "Show a composition and its octave views",
	Long: `Show a composition by name or path. The aroha and avroha are listed
with their lower and higher octave views, which the mutation engine
uses as context near the ends of the scale.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := catalog().Open(args[0])
		if err != nil {
			return err
		}
		return printResult(newRaagView(r), func() error {
			fmt.Println(raagFrame(args[0], r).Render(showWidth))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

// raagFrame lays out r for the terminal. ref is how the user named it.
func raagFrame(ref string, r *raag.Raag) cli.Frame {
	scale := func(s *raag.Scale) []string {
		return []string{
			s.String(),
			"lower:  " + s.Lower().String(),
			"higher: " + s.Higher().String(),
		}
	}
	f := cli.Frame{
		Styles: cli.NewStyles(cli.DefaultTheme),
		Title:  r.Name,
		Sections: []cli.Section{
			{Label: raag.PartAroha, Lines: scale(r.Aroha)},
			{Label: raag.PartAvroha, Lines: scale(r.Avroha)},
		},
		Help: fmt.Sprintf("raagas mutate %s --part <part>", ref),
	}
	if tonic, err := r.Tonic(); err == nil {
		f.Status = "tonic " + tonic.Pitch.Name()
	}
	blocks := func(label string, lines []string) {
		if len(lines) > 0 {
			f.Sections = append(f.Sections, cli.Section{Label: label, Lines: lines})
		}
	}
	for _, name := range []string{raag.PartPakad, raag.PartAlankars} {
		bs, err := r.Part(name)
		if err != nil {
			continue
		}
		var lines []string
		for _, b := range bs {
			lines = append(lines, b.String())
		}
		blocks(name, lines)
	}
	if sm := r.Swarmaalika; sm != nil {
		head := []string{fmt.Sprintf("sam: %d", sm.Sam)}
		if len(sm.Mukra) > 0 {
			head = append(head, "mukra: "+sm.Mukra.String())
		}
		blocks("swarmaalika", head)
		for _, sec := range []raag.Section{sm.Sthayi, sm.Antara} {
			var lines []string
			for _, l := range sec.Lines {
				lines = append(lines, l.Tag+": "+l.Blocks.String())
			}
			blocks(sec.Name, lines)
		}
		if len(sm.Tihayi) > 0 {
			blocks(raag.PartTihayi, []string{sm.Tihayi.String()})
		}
	}
	return f
}
