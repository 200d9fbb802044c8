package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/degree"
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/inversion"
	"github.com/jsphweid/chordwheel/song"
	"github.com/jsphweid/chordwheel/util"
	"github.com/jsphweid/chordwheel/voicing"
	"github.com/jsphweid/chordwheel/wheel"
	"github.com/spf13/cobra"
)

var (
	chordKey       string
	chordInversion int
)

func init() {
	chordCmd.Flags().StringVarP(&chordKey, "key", "k", "", "major key for numerals and relative degrees")
	chordCmd.Flags().IntVarP(&chordInversion, "inversion", "i", 0, "inversion index, 0 is root position")
	rootCmd.AddCommand(chordCmd)
}

var chordCmd = &cobra.Command{
	Use:   "chord <symbol>",
	Short: "Describes a chord",
	Long:  `Spells a chord symbol such as Am7 or F#m7b5, with degrees, inversion and voicing suggestions.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return describeChord(args[0], chordKey, chordInversion)
	},
}

func describeChord(symbol string, key string, idx int) error {
	p, err := chord.Parse(symbol)
	if err != nil {
		return err
	}
	c, err := chord.New(p.Root, string(p.Quality))
	if err != nil {
		return err
	}
	if key != "" {
		c = diatonic.Annotate(key, c)
	}
	if idx == 0 {
		idx = song.BassInversion(p)
	}

	idx = util.Clamp(idx, 0, inversion.Max(c.Notes))
	notes := inversion.Invert(c.Notes, idx)

	fmt.Printf("%s (%s)\n", inversion.Symbol(c.Root, string(c.Quality), notes, idx), c.Quality)
	fmt.Printf("notes:     %s\n", strings.Join(notes, " "))
	fmt.Printf("inversion: %s\n", inversion.Name(idx))
	for _, l := range degree.Label(notes, c.Root, key) {
		fmt.Printf("  %-3s %-3s %s\n", l.Note, l.Absolute, l.Relative)
	}
	if c.Numeral != "" {
		fmt.Printf("numeral:   %s\n", c.Numeral)
	}
	if coord, ok := wheel.Place(c.Root, c.Quality); ok {
		fmt.Printf("wheel:     position %d, %s ring\n", coord.Position, coord.Ring)
	}
	if key != "" {
		v := voicing.Suggest(c, key)
		fmt.Printf("try:       %s\n", strings.Join(v.Extensions, ", "))
		fmt.Printf("           %s\n", v.Description)
	}
	return nil
}
