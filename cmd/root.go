package cmd

import (
	"github.com/joho/godotenv"
	"github.com/jsphweid/chordwheel/config"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/spf13/cobra"
)

var (
	cfg   *config.Config
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "chordwheel",
	Short: "Circle-of-fifths chord wheel",
	Long: `Explore the diatonic chords of every major key on a circle-of-fifths wheel,
spell and invert chords, and export progressions as MIDI or WAV.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// no .env is fine
		_ = godotenv.Load()
		cfg = config.Load()
		if debug {
			cfg.Debug = true
		}
		logger.Init(cfg.Debug)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
