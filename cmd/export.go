package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/midi"
	"github.com/jsphweid/chordwheel/song"
	"github.com/jsphweid/chordwheel/wav"
	"github.com/spf13/cobra"
)

var exportOpts struct {
	key    string
	format string
	out    string
	tempo  int
	octave int
	beats  int
}

func init() {
	f := exportCmd.Flags()
	f.StringVarP(&exportOpts.key, "key", "k", "C", "major key the numerals refer to")
	f.StringVarP(&exportOpts.format, "format", "f", "midi", "midi or wav")
	f.StringVarP(&exportOpts.out, "out", "o", "", "output file (defaults to OUT_DIR/<id>.mid|.wav)")
	f.IntVarP(&exportOpts.tempo, "tempo", "t", 0, "beats per minute (defaults to TEMPO)")
	f.IntVar(&exportOpts.octave, "octave", 0, "octave of the bass note (defaults to DEFAULT_OCTAVE)")
	f.IntVarP(&exportOpts.beats, "beats", "b", constants.DefaultBeatsPerChord, "beats per chord")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <progression>",
	Short: "Exports a progression",
	Long: `Renders a progression such as "I vi IV V" or "C Am:1 F G7" to a MIDI or WAV file.
A ":n" suffix picks an inversion.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := export(args[0])
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func export(progression string) (string, error) {
	tempo, octave := exportOpts.tempo, exportOpts.octave
	if tempo <= 0 {
		tempo = cfg.Tempo
	}
	if octave == 0 {
		octave = cfg.DefaultOctave
	}

	sng, err := song.FromProgression(exportOpts.key, progression, tempo, exportOpts.beats)
	if err != nil {
		return "", err
	}
	events, err := song.Events(sng, octave)
	if err != nil {
		return "", err
	}

	ext := ".mid"
	if exportOpts.format == "wav" {
		ext = ".wav"
	} else if exportOpts.format != "midi" {
		return "", fmt.Errorf("unknown format %q", exportOpts.format)
	}
	path := exportOpts.out
	if path == "" {
		path = filepath.Join(cfg.OutDir, sng.ID.String()+ext)
	}
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if ext == ".wav" {
		err = wav.Write(f, events, tempo, cfg.SampleRate)
	} else {
		err = midi.Write(f, events, tempo)
	}
	if err != nil {
		return "", err
	}
	logger.Debug("exported", logger.Fields{"path": path, "events": len(events), "song": sng.ID.String()})
	return path, nil
}
