package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"ENVIRONMENT", "PORT", "OUT_DIR", "SENTRY_DSN", "DEBUG", "DEFAULT_OCTAVE", "TEMPO", "SAMPLE_RATE", "MIDI_IN_PORT"} {
		t.Setenv(key, "")
	}

	c := Load()
	assert := assert.New(t)
	assert.Equal("development", c.Environment)
	assert.Equal("8080", c.Port)
	assert.Equal("./out", c.OutDir)
	assert.False(c.Debug)
	assert.Equal(4, c.DefaultOctave)
	assert.Equal(120, c.Tempo)
	assert.Equal(44100, c.SampleRate)
	assert.Equal(0, c.MIDIInPort)
	assert.False(c.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("PORT", "9000")
	t.Setenv("DEBUG", "true")
	t.Setenv("TEMPO", "96")
	t.Setenv("DEFAULT_OCTAVE", "3")
	t.Setenv("SAMPLE_RATE", "not-a-number")

	c := Load()
	assert := assert.New(t)
	assert.Equal("9000", c.Port)
	assert.True(c.Debug)
	assert.Equal(96, c.Tempo)
	assert.Equal(3, c.DefaultOctave)
	assert.Equal(44100, c.SampleRate)
	assert.True(c.IsProduction())
}

func TestLoadRejectsNonPositiveRates(t *testing.T) {
	t.Setenv("TEMPO", "-40")
	t.Setenv("SAMPLE_RATE", "0")

	c := Load()
	assert.Equal(t, 120, c.Tempo)
	assert.Equal(t, 44100, c.SampleRate)
}
