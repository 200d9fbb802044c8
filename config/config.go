package config

import (
	"os"
	"strconv"

	"github.com/jsphweid/chordwheel/constants"
)

type Config struct {
	Environment string
	Port        string
	// Where exported files land
	OutDir string

	SentryDSN string
	Debug     bool

	// Export defaults
	DefaultOctave int
	Tempo         int
	SampleRate    int

	// Index of the live MIDI input used by listen
	MIDIInPort int
}

func Load() *Config {
	return &Config{
		Environment:   getEnv("ENVIRONMENT", "development"),
		Port:          getEnv("PORT", strconv.Itoa(constants.DefaultPort)),
		OutDir:        getEnv("OUT_DIR", constants.DefaultOutDir),
		SentryDSN:     getEnv("SENTRY_DSN", ""),
		Debug:         getEnv("DEBUG", "false") == "true",
		DefaultOctave: getEnvInt("DEFAULT_OCTAVE", constants.DefaultOctave),
		Tempo:         getEnvPositiveInt("TEMPO", constants.DefaultTempo),
		SampleRate:    getEnvPositiveInt("SAMPLE_RATE", constants.DefaultSampleRate),
		MIDIInPort:    getEnvInt("MIDI_IN_PORT", 0),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt falls back to defaultValue when the variable is unset or not a
// number.
func getEnvInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

// getEnvPositiveInt is getEnvInt with zero and negative values replaced by
// defaultValue.
func getEnvPositiveInt(key string, defaultValue int) int {
	n := getEnvInt(key, defaultValue)
	if n <= 0 {
		return defaultValue
	}
	return n
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
