package song

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/stretchr/testify/assert"
)

func TestParseProgressionNumerals(t *testing.T) {
	assert := assert.New(t)

	refs, err := ParseProgression("C", "I vi IV V")
	assert.Nil(err)
	assert.Equal([]model.ChordRef{
		{Root: "C", Quality: chord.Major},
		{Root: "A", Quality: chord.Minor},
		{Root: "F", Quality: chord.Major},
		{Root: "G", Quality: chord.Major},
	}, refs)

	refs, err = ParseProgression("F", "ii7, V7 | Imaj7 vii°")
	assert.Nil(err)
	assert.Equal([]model.ChordRef{
		{Root: "G", Quality: chord.Minor7},
		{Root: "C", Quality: chord.Dominant7},
		{Root: "F", Quality: chord.Major7},
		{Root: "E", Quality: chord.Diminished},
	}, refs)
}

func TestParseProgressionSymbolsAndInversions(t *testing.T) {
	assert := assert.New(t)

	refs, err := ParseProgression("C", "C/E Am:2 Fmaj7 II:1 Gsus4")
	assert.Nil(err)
	assert.Equal([]model.ChordRef{
		{Root: "C", Quality: chord.Major, Inversion: 1},
		{Root: "A", Quality: chord.Minor, Inversion: 2},
		{Root: "F", Quality: chord.Major7},
		{Root: "D", Quality: chord.Major, Inversion: 1},
		{Root: "G", Quality: chord.Sus4},
	}, refs)
}

func TestParseProgressionErrors(t *testing.T) {
	tests := []struct {
		key, text string
		want      error
	}{
		{"C", "", ErrEmptyProgression},
		{"C", "  | , ", ErrEmptyProgression},
		{"H", "I IV", note.ErrUnknownNote},
		{"C", "I Xyz", ErrInvalidToken},
		{"C", "I:x", ErrInvalidToken},
		{"C", "Ii", ErrInvalidToken},
		{"C", "Vm7", ErrInvalidToken},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			_, err := ParseProgression(tt.key, tt.text)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDescribe(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C", Describe(model.ChordRef{Root: "C", Quality: chord.Major}))
	assert.Equal("C/E", Describe(model.ChordRef{Root: "C", Quality: chord.Major, Inversion: 1}))
	assert.Equal("G7/F", Describe(model.ChordRef{Root: "G", Quality: chord.Dominant7, Inversion: 9}))
}

func TestFromProgression(t *testing.T) {
	assert := assert.New(t)

	s, err := FromProgression("G", "I V", 100, 2)
	assert.Nil(err)
	assert.NotEqual(uuid.Nil, s.ID)
	assert.Equal("G", s.Key)
	assert.Equal(100, s.Tempo)
	assert.Len(s.Sections, 1)
	assert.NotEqual(uuid.Nil, s.Sections[0].ID)
	assert.Len(s.Sections[0].Measures, 2)
	assert.Equal(4, Length(s))
	assert.Equal("D", s.Sections[0].Measures[1].Beats[1].Chord.Root)
}

func TestVoice(t *testing.T) {
	tests := []struct {
		name   string
		ref    model.ChordRef
		octave int
		want   []uint8
	}{
		{"C major", model.ChordRef{Root: "C", Quality: chord.Major}, 4, []uint8{60, 64, 67}},
		{"first inversion", model.ChordRef{Root: "C", Quality: chord.Major, Inversion: 1}, 4, []uint8{64, 67, 72}},
		{"G7", model.ChordRef{Root: "G", Quality: chord.Dominant7}, 3, []uint8{55, 59, 62, 65}},
		{"A minor", model.ChordRef{Root: "A", Quality: chord.Minor}, 3, []uint8{57, 60, 64}},
		{"Cmaj9", model.ChordRef{Root: "C", Quality: chord.Major9}, 4, []uint8{60, 64, 67, 71, 74}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Voice(tt.ref, tt.octave)
			assert.Nil(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVoiceErrors(t *testing.T) {
	_, err := Voice(model.ChordRef{Root: "X", Quality: chord.Major}, 4)
	assert.ErrorIs(t, err, note.ErrUnknownNote)

	_, err = Voice(model.ChordRef{Root: "B", Quality: chord.Major}, 9)
	assert.ErrorIs(t, err, ErrNoteRange)

	got, err := Voice(model.ChordRef{Root: "C", Quality: "mystery"}, 4)
	assert.Nil(t, err)
	assert.Equal(t, []uint8{60, 64, 67}, got)
}

func TestEvents(t *testing.T) {
	assert := assert.New(t)

	s, _ := FromProgression("C", "I IV IV V", 120, 2)
	// rest on the last beat
	s.Sections[0].Measures[3].Beats[1].Chord = nil

	events, err := Events(s, 4)
	assert.Nil(err)
	assert.Equal([]model.NoteEvent{
		{Notes: []uint8{60, 64, 67}, StartBeat: 0, Duration: 2, Velocity: 96},
		{Notes: []uint8{65, 69, 72}, StartBeat: 2, Duration: 4, Velocity: 96},
		{Notes: []uint8{67, 71, 74}, StartBeat: 6, Duration: 1, Velocity: 96},
	}, events)
}

func TestEventsEmptySong(t *testing.T) {
	events, err := Events(New("empty", "C", 120, 4), 4)
	assert.Nil(t, err)
	assert.Empty(t, events)
}

func captureLog(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	logger.InitWriter(&buf, false)
	t.Cleanup(func() { logger.Init(false) })
	return &buf
}

func TestFromProgressionLimits(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		tempo, beats int
	}{
		{"huge beats per chord", "I IV", 120, 1125899906842624},
		{"beats per chord past limit", "I", 120, constants.MaxBeatsPerChord + 1},
		{"zero beats per chord", "I", 120, 0},
		{"negative beats per chord", "I", 120, -4},
		{"zero tempo", "I", 0, 4},
		{"tempo past limit", "I", constants.MaxTempo + 1, 4},
		{"song too long", strings.Repeat("I ", constants.MaxSongBeats/4+1), 120, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromProgression("C", tt.text, tt.tempo, tt.beats)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	s, err := FromProgression("C", strings.Repeat("I ", constants.MaxSongBeats/4), 120, 4)
	assert.Nil(t, err)
	assert.Equal(t, constants.MaxSongBeats, Length(s))
}

func TestVoiceUnknownQualityWarnsOnce(t *testing.T) {
	buf := captureLog(t)

	_, err := Voice(model.ChordRef{Root: "C", Quality: "mystery"}, 4)
	assert.Nil(t, err)
	assert.Equal(t, 1, strings.Count(buf.String(), "level=WARN"))
}

func TestBassInversion(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, BassInversion(chord.Parsed{Root: "C", Quality: chord.Major}))
	assert.Equal(2, BassInversion(chord.Parsed{Root: "C", Quality: chord.Major, Bass: "G"}))
	assert.Equal(3, BassInversion(chord.Parsed{Root: "G", Quality: chord.Dominant7, Bass: "F"}))

	buf := captureLog(t)
	assert.Equal(0, BassInversion(chord.Parsed{Root: "C", Quality: chord.Major, Bass: "D"}))
	assert.Contains(buf.String(), "not a chord tone")
	assert.Contains(buf.String(), "C/D")
}
