package midi

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/chordwheel/model"
	"github.com/stretchr/testify/assert"
)

var progression = []model.NoteEvent{
	{Notes: []uint8{60, 64, 67}, StartBeat: 0, Duration: 2, Velocity: 96},
	{Notes: []uint8{57, 60, 64}, StartBeat: 2, Duration: 2, Velocity: 96},
	{Notes: []uint8{65, 69, 72}, StartBeat: 4, Duration: 1, Velocity: 80},
}

func TestWriteThenExtract(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	assert.Nil(Write(&buf, progression, 120))

	s, err := ReadFrom(&buf)
	assert.Nil(err)
	assert.Len(s.Tracks, 2)

	chords := ExtractChords(s)
	assert.Len(chords, 3)
	assert.Equal([]uint8{60, 64, 67}, chords[0].Notes)
	assert.Equal([]uint8{57, 60, 64}, chords[1].Notes)
	assert.Equal([]uint8{65, 69, 72}, chords[2].Notes)

	// two beats at 120 bpm
	assert.Equal(int64(0), chords[0].Offset)
	assert.InDelta(1000000, chords[1].Offset, 1000)
	assert.InDelta(2000000, chords[2].Offset, 1000)
}

func TestWriteTempo(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, Write(&buf, progression, 90))

	s, err := ReadFrom(&buf)
	assert.Nil(t, err)
	changes := s.TempoChanges()
	assert.NotEmpty(t, changes)
	assert.InDelta(t, 90.0, changes[0].BPM, 0.01)
}

func TestSharedNoteIsRetriggered(t *testing.T) {
	// C is held across both chords
	events := []model.NoteEvent{
		{Notes: []uint8{60, 64, 67}, StartBeat: 0, Duration: 1, Velocity: 96},
		{Notes: []uint8{60, 65, 69}, StartBeat: 1, Duration: 1, Velocity: 96},
	}
	var buf bytes.Buffer
	assert.Nil(t, Write(&buf, events, 120))

	s, err := ReadFrom(&buf)
	assert.Nil(t, err)
	chords := ExtractChords(s)
	assert.Len(t, chords, 2)
	assert.Equal(t, []uint8{60, 65, 69}, chords[1].Notes)
}

func TestWriteNoEvents(t *testing.T) {
	var buf bytes.Buffer
	assert.Nil(t, Write(&buf, nil, 120))

	s, err := ReadFrom(&buf)
	assert.Nil(t, err)
	assert.Empty(t, ExtractChords(s))
}

func TestRead(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "song.mid")
	f, err := os.Create(path)
	assert.Nil(err)
	assert.Nil(Write(f, progression, 120))
	f.Close()

	s, err := Read(path)
	assert.Nil(err)
	assert.Len(ExtractChords(s), 3)

	_, err = Read(filepath.Join(t.TempDir(), "missing.mid"))
	assert.NotNil(err)
}

func TestReadFromGarbage(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("definitely not midi")))
	assert.ErrorIs(t, err, ErrInvalidFile)
}

func TestBuildRejectsUnrepresentableTicks(t *testing.T) {
	tests := []struct {
		name  string
		event model.NoteEvent
	}{
		{"end past delta range", model.NoteEvent{Notes: []uint8{60}, StartBeat: 0, Duration: 5000000, Velocity: 96}},
		{"start past delta range", model.NoteEvent{Notes: []uint8{60}, StartBeat: 300000, Duration: 1, Velocity: 96}},
		{"negative start", model.NoteEvent{Notes: []uint8{60}, StartBeat: -1, Duration: 1, Velocity: 96}},
		{"negative duration", model.NoteEvent{Notes: []uint8{60}, StartBeat: 4, Duration: -2, Velocity: 96}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := Write(&buf, []model.NoteEvent{tt.event}, 120)
			assert.ErrorIs(t, err, ErrTickRange)
			assert.Zero(t, buf.Len())
		})
	}
}

func TestBuildLongestSong(t *testing.T) {
	assert := assert.New(t)

	// one note held for the whole of the last representable stretch
	last := maxDelta / 960
	events := []model.NoteEvent{{Notes: []uint8{60}, StartBeat: 0, Duration: last, Velocity: 96}}
	var buf bytes.Buffer
	assert.Nil(Write(&buf, events, 120))

	s, err := ReadFrom(&buf)
	assert.Nil(err)
	assert.Len(ExtractChords(s), 1)
}

func TestBuildRejectsTempo(t *testing.T) {
	_, err := Build(progression, 0)
	assert.ErrorIs(t, err, ErrInvalidTempo)
}
