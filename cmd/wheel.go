package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/wheel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(wheelCmd)
}

var wheelCmd = &cobra.Command{
	Use:   "wheel [key]",
	Short: "Prints the wheel",
	Long:  `Prints every wheel position and ring. With a key, diatonic cells are marked with their numeral.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
			if note.PitchClass(key) < 0 {
				return fmt.Errorf("unknown key %q", key)
			}
		}
		printWheel(key)
		return nil
	},
}

func printWheel(key string) {
	highlights := wheel.NewHighlightSet(key)
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "POS\tMAJOR\tII\tIII\tDIM")
	for i, p := range wheel.Positions {
		fmt.Fprintf(tw, "%d", i)
		for _, r := range wheel.Rings {
			cell := p.Symbol(r)
			if st := highlights.Status(i, r); st.IsDiatonic {
				cell = fmt.Sprintf("%s [%s]", cell, st.Numeral)
			}
			fmt.Fprintf(tw, "\t%s", cell)
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()

	if key != "" {
		sig := note.KeySignatureOf(key)
		fmt.Printf("\n%s major: %d sharps, %d flats, %d of 7 chords on the wheel\n", key, sig.Sharps, sig.Flats, len(highlights))
	}
}
