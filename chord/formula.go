package chord

import (
	"github.com/jsphweid/chordwheel/model"
)

type Quality = model.ChordQuality

const (
	Major           Quality = "major"
	Minor           Quality = "minor"
	Diminished      Quality = "diminished"
	Augmented       Quality = "augmented"
	Sus2            Quality = "sus2"
	Sus4            Quality = "sus4"
	Major6          Quality = "major6"
	Minor6          Quality = "minor6"
	Major7          Quality = "major7"
	Minor7          Quality = "minor7"
	Dominant7       Quality = "dominant7"
	HalfDiminished7 Quality = "halfDiminished7"
	Diminished7     Quality = "diminished7"
	MinorMajor7     Quality = "minorMajor7"
	Augmented7      Quality = "augmented7"
	Dominant7Sus4   Quality = "dominant7sus4"
	Add9            Quality = "add9"
	Dominant9       Quality = "dominant9"
	Major9          Quality = "major9"
	Minor9          Quality = "minor9"
	Dominant7Flat9  Quality = "dominant7b9"
	Dominant7Sharp9 Quality = "dominant7#9"
	Dominant11      Quality = "dominant11"
	Minor11         Quality = "minor11"
	Dominant13      Quality = "dominant13"
	Major13         Quality = "major13"
)

// Interval is one chord tone: its distance from the root and the chord degree
// it spells (3 for a third, 9 for a ninth...).
type Interval struct {
	Semitones int
	Degree    int
}

type Formula struct {
	Quality   Quality
	Suffix    string
	Intervals []Interval
}

var (
	unison   = Interval{0, 1}
	min3     = Interval{3, 3}
	maj3     = Interval{4, 3}
	dim5     = Interval{6, 5}
	perf5    = Interval{7, 5}
	aug5     = Interval{8, 5}
	maj2     = Interval{2, 2}
	perf4    = Interval{5, 4}
	maj6     = Interval{9, 6}
	dim7     = Interval{9, 7}
	min7     = Interval{10, 7}
	maj7     = Interval{11, 7}
	flat9    = Interval{13, 9}
	maj9     = Interval{14, 9}
	sharp9   = Interval{15, 9}
	perf11   = Interval{17, 11}
	maj13    = Interval{21, 13}
	triadMaj = []Interval{unison, maj3, perf5}
	triadMin = []Interval{unison, min3, perf5}
)

func with(base []Interval, extra ...Interval) []Interval {
	res := make([]Interval, 0, len(base)+len(extra))
	res = append(res, base...)
	return append(res, extra...)
}

// formulas is ordered by preference: Identify reports the first match.
var formulas = []Formula{
	{Major, "", triadMaj},
	{Minor, "m", triadMin},
	{Diminished, "°", []Interval{unison, min3, dim5}},
	{Augmented, "+", []Interval{unison, maj3, aug5}},
	{Dominant7, "7", with(triadMaj, min7)},
	{Major7, "maj7", with(triadMaj, maj7)},
	{Minor7, "m7", with(triadMin, min7)},
	{HalfDiminished7, "m7b5", []Interval{unison, min3, dim5, min7}},
	{Diminished7, "dim7", []Interval{unison, min3, dim5, dim7}},
	{Sus2, "sus2", []Interval{unison, maj2, perf5}},
	{Sus4, "sus4", []Interval{unison, perf4, perf5}},
	{Major6, "6", with(triadMaj, maj6)},
	{Minor6, "m6", with(triadMin, maj6)},
	{MinorMajor7, "mMaj7", with(triadMin, maj7)},
	{Augmented7, "+7", []Interval{unison, maj3, aug5, min7}},
	{Dominant7Sus4, "7sus4", []Interval{unison, perf4, perf5, min7}},
	{Add9, "add9", with(triadMaj, maj9)},
	{Dominant9, "9", with(triadMaj, min7, maj9)},
	{Major9, "maj9", with(triadMaj, maj7, maj9)},
	{Minor9, "m9", with(triadMin, min7, maj9)},
	{Dominant7Flat9, "7b9", with(triadMaj, min7, flat9)},
	{Dominant7Sharp9, "7#9", with(triadMaj, min7, sharp9)},
	{Dominant11, "11", with(triadMaj, min7, maj9, perf11)},
	{Minor11, "m11", with(triadMin, min7, maj9, perf11)},
	{Dominant13, "13", with(triadMaj, min7, maj9, maj13)},
	{Major13, "maj13", with(triadMaj, maj7, maj9, maj13)},
}

// aliases maps short symbols onto canonical qualities. Canonical names and
// every formula suffix resolve as well.
var aliases = map[string]Quality{
	"maj":    Major,
	"M":      Major,
	"min":    Minor,
	"-":      Minor,
	"dim":    Diminished,
	"o":      Diminished,
	"aug":    Augmented,
	"sus":    Sus4,
	"maj6":   Major6,
	"min6":   Minor6,
	"M7":     Major7,
	"Δ":      Major7,
	"Δ7":     Major7,
	"min7":   Minor7,
	"-7":     Minor7,
	"dom7":   Dominant7,
	"ø":      HalfDiminished7,
	"ø7":     HalfDiminished7,
	"min7b5": HalfDiminished7,
	"°7":     Diminished7,
	"o7":     Diminished7,
	"mM7":    MinorMajor7,
	"aug7":   Augmented7,
	"7sus":   Dominant7Sus4,
	"M9":     Major9,
	"min9":   Minor9,
	"M13":    Major13,
}

var byQuality = func() map[Quality]Formula {
	m := make(map[Quality]Formula, len(formulas))
	for _, f := range formulas {
		m[f.Quality] = f
	}
	return m
}()

var bySymbol = func() map[string]Quality {
	m := make(map[string]Quality, len(formulas)*2+len(aliases))
	for _, f := range formulas {
		m[string(f.Quality)] = f.Quality
		m[f.Suffix] = f.Quality
	}
	for k, q := range aliases {
		m[k] = q
	}
	return m
}()

// Resolve maps a quality name or symbol suffix onto its canonical quality.
func Resolve(quality string) (Quality, bool) {
	q, ok := bySymbol[quality]
	return q, ok
}

// Lookup returns the formula for a quality name or alias.
func Lookup(quality string) (Formula, bool) {
	q, ok := Resolve(quality)
	if !ok {
		return Formula{}, false
	}
	return byQuality[q], true
}

// Qualities lists every canonical quality in preference order.
func Qualities() []Quality {
	res := make([]Quality, len(formulas))
	for i, f := range formulas {
		res[i] = f.Quality
	}
	return res
}

func Suffix(q Quality) string {
	return byQuality[q].Suffix
}

// Triad reduces a quality to the triad it is built on: dominant7 and major7
// are major, m7b5 is diminished. Suspended chords have no third and map to
// themselves.
func Triad(q Quality) Quality {
	f, ok := byQuality[q]
	if !ok || len(f.Intervals) < 3 {
		return q
	}
	third := f.Intervals[1].Semitones
	fifth := f.Intervals[2].Semitones
	switch {
	case third == 4 && fifth == 7:
		return Major
	case third == 3 && fifth == 7:
		return Minor
	case third == 3 && fifth == 6:
		return Diminished
	case third == 4 && fifth == 8:
		return Augmented
	}
	return q
}
