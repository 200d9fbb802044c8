package cmd

import (
	"fmt"

	"github.com/jsphweid/chordwheel/midi"
	"github.com/jsphweid/chordwheel/note"
	"github.com/spf13/cobra"
)

var inspectKey string

func init() {
	inspectCmd.Flags().StringVarP(&inspectKey, "key", "k", "C", "major key for numerals")
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.mid>",
	Short: "Names the chords in a MIDI file",
	Long:  `Reads a MIDI file and prints every chord it holds with its numeral in the key and its place on the wheel.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if note.PitchClass(inspectKey) < 0 {
			return fmt.Errorf("unknown key %q", inspectKey)
		}
		return inspect(args[0], inspectKey)
	},
}

func inspect(path string, key string) error {
	s, err := midi.Read(path)
	if err != nil {
		return err
	}
	for _, snd := range midi.ExtractChords(s) {
		secs := float64(snd.Offset) / 1e6
		got, ok := identify(snd.Notes, key)
		if !ok {
			fmt.Printf("%8.2fs  %v\n", secs, snd.Notes)
			continue
		}
		fmt.Printf("%8.2fs  %-8s %-5s %s\n", secs, got.Symbol, got.Numeral, wheelLabel(got))
	}
	return nil
}

func wheelLabel(got identified) string {
	if got.Wheel == nil {
		return ""
	}
	return fmt.Sprintf("(%d, %s)", got.Wheel.Position, got.Wheel.Ring)
}
