// Package wheel encodes the printed chord wheel: twelve positions around the
// circle of fifths, each carrying its major chord, the two minor chords that
// follow it (ii and iii) and its leading-tone diminished chord.
//
// The table is authored, not derived. The minor band repeats on purpose:
// the iii of one position is the ii of the position two steps clockwise.
package wheel

import (
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
)

const (
	RingMajor      model.Ring = "major"
	RingII         model.Ring = "ii"
	RingIII        model.Ring = "iii"
	RingDiminished model.Ring = "diminished"
)

// Rings in scan order.
var Rings = [4]model.Ring{RingMajor, RingII, RingIII, RingDiminished}

type Position struct {
	Major      string
	II         string
	III        string
	Diminished string
}

var Positions = [12]Position{
	{"C", "Dm", "Em", "B°"},
	{"G", "Am", "Bm", "F#°"},
	{"D", "Em", "F#m", "C#°"},
	{"A", "Bm", "C#m", "G#°"},
	{"E", "F#m", "G#m", "D#°"},
	{"B", "C#m", "D#m", "A#°"},
	{"F#", "G#m", "A#m", "E#°"},
	{"Db", "Ebm", "Fm", "C°"},
	{"Ab", "Bbm", "Cm", "G°"},
	{"Eb", "Fm", "Gm", "D°"},
	{"Bb", "Cm", "Dm", "A°"},
	{"F", "Gm", "Am", "E°"},
}

// Symbol returns the chord printed in ring r of p.
func (p Position) Symbol(r model.Ring) string {
	switch r {
	case RingMajor:
		return p.Major
	case RingII:
		return p.II
	case RingIII:
		return p.III
	case RingDiminished:
		return p.Diminished
	}
	return ""
}

// Band names the concentric band a ring belongs to.
func Band(r model.Ring) string {
	switch r {
	case RingII, RingIII:
		return "minor"
	}
	return string(r)
}

func ValidRing(r model.Ring) bool {
	for _, ring := range Rings {
		if ring == r {
			return true
		}
	}
	return false
}

func Cells() []model.WheelCell {
	res := make([]model.WheelCell, 0, len(Positions)*len(Rings))
	for i, p := range Positions {
		for _, r := range Rings {
			res = append(res, model.WheelCell{
				WheelCoord: model.WheelCoord{Position: i, Ring: r},
				Symbol:     p.Symbol(r),
			})
		}
	}
	return res
}

// Find locates symbol exactly as printed. Minor chords appear twice; the
// first cell in position-then-ring order wins.
func Find(symbol string) (model.WheelCoord, bool) {
	for i, p := range Positions {
		for _, r := range Rings {
			if p.Symbol(r) == symbol {
				return model.WheelCoord{Position: i, Ring: r}, true
			}
		}
	}
	return model.WheelCoord{}, false
}

// FindEnharmonic is Find with enharmonic roots accepted, so "Gb" finds the
// cell printed "F#". Exact matches still take priority.
func FindEnharmonic(symbol string) (model.WheelCoord, bool) {
	if coord, ok := Find(symbol); ok {
		return coord, true
	}
	want, err := chord.Parse(symbol)
	if err != nil {
		return model.WheelCoord{}, false
	}
	wantPC := note.PitchClass(want.Root)
	for i, p := range Positions {
		for _, r := range Rings {
			got, err := chord.Parse(p.Symbol(r))
			if err != nil {
				continue
			}
			if got.Quality == want.Quality && note.PitchClass(got.Root) == wantPC {
				return model.WheelCoord{Position: i, Ring: r}, true
			}
		}
	}
	return model.WheelCoord{}, false
}

// Place finds the cell for any chord: extended and altered chords sit on the
// cell of the triad they extend, so G7 lands on G. Enharmonic roots are
// accepted.
func Place(root string, quality model.ChordQuality) (model.WheelCoord, bool) {
	return FindEnharmonic(chord.Symbol(root, string(chord.Triad(quality))))
}

// Highlights lists the wheel cells of key's diatonic chords in degree order.
// Degrees whose spelling is not printed on the wheel are left out.
func Highlights(key string) []model.Highlight {
	var res []model.Highlight
	for _, c := range diatonic.Chords(key) {
		symbol := chord.Symbol(c.Root, string(c.Quality))
		coord, ok := Find(symbol)
		if !ok {
			continue
		}
		res = append(res, model.Highlight{
			WheelCoord: coord,
			ChordRoot:  c.Root,
			Numeral:    c.Numeral,
			Symbol:     symbol,
		})
	}
	return res
}

// HighlightSet is Highlights indexed by cell. Build it once per key and reuse
// it for every cell drawn.
type HighlightSet map[model.WheelCoord]string

func NewHighlightSet(key string) HighlightSet {
	s := make(HighlightSet)
	for _, h := range Highlights(key) {
		s[h.WheelCoord] = h.Numeral
	}
	return s
}

func (s HighlightSet) Status(position int, ring model.Ring) model.SegmentStatus {
	numeral, ok := s[model.WheelCoord{Position: position, Ring: ring}]
	if !ok {
		return model.SegmentStatus{}
	}
	return model.SegmentStatus{IsDiatonic: true, Numeral: numeral}
}

// IsSegmentDiatonic tests one cell against key. Callers drawing the whole
// wheel should use a HighlightSet instead.
func IsSegmentDiatonic(position int, ring model.Ring, key string) model.SegmentStatus {
	return NewHighlightSet(key).Status(position, ring)
}
