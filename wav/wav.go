// Package wav renders note events as sine tones into a 16-bit mono WAV file.
package wav

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/model"
	gowav "github.com/youpy/go-wav"
)

const (
	bitsPerSample = 16
	numChannels   = 1
	// linear fade in and out, in seconds
	ramp = 0.005
	// peak level of a full chord, leaving headroom below clipping
	level = 0.6

	maxSampleRate = 192000
)

var (
	ErrInvalidTempo      = errors.New("tempo must be positive")
	ErrInvalidSampleRate = errors.New("sample rate out of range")
	ErrInvalidEvent      = errors.New("event outside the song")
)

func Frequency(midiNote uint8) float64 {
	return 440 * math.Pow(2, (float64(midiNote)-69)/12)
}

// Length returns the number of beats covered by events.
func Length(events []model.NoteEvent) int {
	end := 0
	for _, evt := range events {
		if e := evt.StartBeat + evt.Duration; e > end {
			end = e
		}
	}
	return end
}

// Render returns one sample per frame.
func Render(events []model.NoteEvent, tempo int, sampleRate int) ([]gowav.Sample, error) {
	if tempo <= 0 || tempo > constants.MaxTempo {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTempo, tempo)
	}
	if sampleRate <= 0 || sampleRate > maxSampleRate {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	for _, evt := range events {
		if evt.StartBeat < 0 || evt.Duration < 0 || evt.StartBeat > constants.MaxSongBeats-evt.Duration {
			return nil, fmt.Errorf("%w: beat %d for %d beats", ErrInvalidEvent, evt.StartBeat, evt.Duration)
		}
	}
	secondsPerBeat := 60 / float64(tempo)
	total := int(float64(Length(events)) * secondsPerBeat * float64(sampleRate))
	mix := make([]float64, total)

	for _, evt := range events {
		if len(evt.Notes) == 0 {
			continue
		}
		start := int(float64(evt.StartBeat) * secondsPerBeat * float64(sampleRate))
		n := int(float64(evt.Duration) * secondsPerBeat * float64(sampleRate))
		amp := level * float64(evt.Velocity) / 127 / float64(len(evt.Notes))
		for _, key := range evt.Notes {
			step := 2 * math.Pi * Frequency(key) / float64(sampleRate)
			for i := 0; i < n && start+i < total; i++ {
				mix[start+i] += amp * envelope(i, n, sampleRate) * math.Sin(step*float64(i))
			}
		}
	}

	samples := make([]gowav.Sample, total)
	for i, v := range mix {
		v = math.Max(-1, math.Min(1, v))
		samples[i].Values[0] = int(v * math.MaxInt16)
	}
	return samples, nil
}

func envelope(i int, n int, sampleRate int) float64 {
	r := int(ramp * float64(sampleRate))
	switch {
	case r == 0:
		return 1
	case i < r:
		return float64(i) / float64(r)
	case n-i < r:
		return float64(n-i) / float64(r)
	}
	return 1
}

func Write(w io.Writer, events []model.NoteEvent, tempo int, sampleRate int) error {
	samples, err := Render(events, tempo, sampleRate)
	if err != nil {
		return err
	}
	writer := gowav.NewWriter(w, uint32(len(samples)), numChannels, uint32(sampleRate), bitsPerSample)
	if err := writer.WriteSamples(samples); err != nil {
		return fmt.Errorf("writing wav samples: %w", err)
	}
	return nil
}
