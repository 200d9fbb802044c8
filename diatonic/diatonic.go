// Package diatonic derives the seven scale-degree chords of a major key. It
// is the one place the rest of the module learns which chord sits on which
// degree.
package diatonic

import (
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/scale"
)

var Qualities = [7]chord.Quality{
	chord.Major,
	chord.Minor,
	chord.Minor,
	chord.Major,
	chord.Major,
	chord.Minor,
	chord.Diminished,
}

var Numerals = [7]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}

// Secondary dominants: major chords built on degrees 2 and 3.
var secondary = map[int]string{1: "II", 2: "III"}

// Chords returns the diatonic triads of the major key on key, I through
// vii°. An unrecognised key yields nil.
func Chords(key string) []model.Chord {
	degrees := scale.Major(key)
	if degrees == nil {
		return nil
	}
	res := make([]model.Chord, len(degrees))
	for i, root := range degrees {
		// roots come from the scale, so Notes cannot fail here
		c, _ := chord.New(root, string(Qualities[i]))
		c.Numeral = Numerals[i]
		res[i] = c
	}
	return res
}

// NumeralOf labels c within key. Sevenths and other extensions are labelled
// by the triad they extend, so G7 in C is V. Major chords on the second and
// third degrees get the secondary-dominant numerals II and III. Anything
// else is outside the key and returns "".
func NumeralOf(key string, c model.Chord) string {
	pc := note.PitchClass(c.Root)
	if pc < 0 {
		return ""
	}
	triad := chord.Triad(c.Quality)
	for i, d := range Chords(key) {
		if note.PitchClass(d.Root) != pc {
			continue
		}
		if triad == d.Quality {
			return d.Numeral
		}
		if numeral, ok := secondary[i]; ok && triad == chord.Major {
			return numeral
		}
	}
	return ""
}

// Annotate returns c with its numeral in key filled in.
func Annotate(key string, c model.Chord) model.Chord {
	c.Numeral = NumeralOf(key, c)
	return c
}
