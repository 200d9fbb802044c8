package model

import "github.com/google/uuid"

// ChordRef points at a chord by root and quality. Inversion 0 is root
// position.
type ChordRef struct {
	Root      string       `json:"root"`
	Quality   ChordQuality `json:"quality"`
	Inversion int          `json:"inversion"`
}

// Beat is one slot in a measure. A nil Chord is a rest.
type Beat struct {
	Chord *ChordRef `json:"chord"`
}

type Measure struct {
	Beats []Beat `json:"beats"`
}

type Section struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Measures []Measure `json:"measures"`
}

type Song struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Key             string    `json:"key"`
	Tempo           int       `json:"tempo"`
	BeatsPerMeasure int       `json:"beatsPerMeasure"`
	Sections        []Section `json:"sections"`
}

// NoteEvent is a chord sounding over a span of beats. Notes are MIDI note
// numbers.
type NoteEvent struct {
	Notes     []uint8 `json:"notes"`
	StartBeat int     `json:"startBeat"`
	Duration  int     `json:"duration"`
	Velocity  uint8   `json:"velocity"`
}
