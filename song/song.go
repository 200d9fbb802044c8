// Package song holds a chord timeline (song, sections, measures, beats) and
// flattens it into note events for playback and export.
package song

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/inversion"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/util"
)

var ErrNoteRange = errors.New("note outside MIDI range")

func New(title string, key string, tempo int, beatsPerMeasure int) model.Song {
	return model.Song{
		ID:              uuid.New(),
		Title:           title,
		Key:             key,
		Tempo:           tempo,
		BeatsPerMeasure: beatsPerMeasure,
		Sections:        []model.Section{},
	}
}

// AddSection appends a section with one measure per chord. Each chord fills
// its measure; the section id is returned.
func AddSection(s *model.Song, name string, refs []model.ChordRef) uuid.UUID {
	sec := model.Section{ID: uuid.New(), Name: name, Measures: make([]model.Measure, len(refs))}
	for i := range refs {
		ref := refs[i]
		beats := make([]model.Beat, util.Max(s.BeatsPerMeasure, 1))
		for b := range beats {
			beats[b].Chord = &ref
		}
		sec.Measures[i].Beats = beats
	}
	s.Sections = append(s.Sections, sec)
	return sec.ID
}

// FromProgression builds a single-section song from progression text.
// Tempo, beats per chord and the resulting length are checked against the
// export limits in constants.
func FromProgression(key string, text string, tempo int, beatsPerChord int) (model.Song, error) {
	if tempo <= 0 || tempo > constants.MaxTempo {
		return model.Song{}, fmt.Errorf("%w: tempo %d outside 1-%d", ErrInvalidToken, tempo, constants.MaxTempo)
	}
	if beatsPerChord <= 0 || beatsPerChord > constants.MaxBeatsPerChord {
		return model.Song{}, fmt.Errorf("%w: beats per chord %d outside 1-%d", ErrInvalidToken, beatsPerChord, constants.MaxBeatsPerChord)
	}
	refs, err := ParseProgression(key, text)
	if err != nil {
		return model.Song{}, err
	}
	if len(refs) > constants.MaxSongBeats/beatsPerChord {
		return model.Song{}, fmt.Errorf("%w: %d chords of %d beats is longer than %d beats", ErrInvalidToken, len(refs), beatsPerChord, constants.MaxSongBeats)
	}
	s := New("", key, tempo, beatsPerChord)
	AddSection(&s, "A", refs)
	return s, nil
}

// Length is the song's total number of beats.
func Length(s model.Song) int {
	n := 0
	for _, sec := range s.Sections {
		for _, m := range sec.Measures {
			n += len(m.Beats)
		}
	}
	return n
}

// Events flattens the song into note events. Consecutive beats holding the
// same chord sound as one event. The bass note sits in octave and every
// following tone is placed above the previous one.
func Events(s model.Song, octave int) ([]model.NoteEvent, error) {
	var events []model.NoteEvent
	var held *model.ChordRef
	beat := 0

	for _, sec := range s.Sections {
		for _, m := range sec.Measures {
			for _, b := range m.Beats {
				switch {
				case b.Chord == nil:
					held = nil
				case held != nil && *held == *b.Chord:
					events[len(events)-1].Duration++
				default:
					notes, err := Voice(*b.Chord, octave)
					if err != nil {
						return nil, fmt.Errorf("section %q beat %d: %w", sec.Name, beat, err)
					}
					events = append(events, model.NoteEvent{
						Notes:     notes,
						StartBeat: beat,
						Duration:  1,
						Velocity:  constants.DefaultVelocity,
					})
					held = b.Chord
				}
				beat++
			}
		}
	}
	return events, nil
}

// Voice turns a chord reference into ascending MIDI note numbers.
func Voice(ref model.ChordRef, octave int) ([]uint8, error) {
	// an unknown quality is already reported by chord.Notes
	names, err := chord.Notes(ref.Root, string(ref.Quality))
	if errors.Is(err, note.ErrUnknownNote) {
		return nil, err
	}
	names = inversion.Invert(names, ref.Inversion)

	res := make([]uint8, len(names))
	prev := -1
	for i, n := range names {
		pc := note.PitchClass(n)
		num := (octave+1)*12 + pc
		if prev >= 0 {
			num = prev + util.Mod(pc-prev, 12)
			if num == prev {
				num += 12
			}
		}
		if num < 0 || num > 127 {
			return nil, fmt.Errorf("%s in octave %d: %w", n, octave, ErrNoteRange)
		}
		res[i] = uint8(num)
		prev = num
	}
	return res, nil
}
