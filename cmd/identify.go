package cmd

import (
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/scale"
	"github.com/jsphweid/chordwheel/wheel"
)

type identified struct {
	Symbol  string
	Numeral string
	Wheel   *model.WheelCoord
}

// spellIn names pc the way key writes it, falling back to the key's
// accidental direction for chromatic notes.
func spellIn(pc int, key string) string {
	for _, n := range scale.Major(key) {
		if note.PitchClass(n) == pc {
			return n
		}
	}
	return note.Name(pc, note.PrefersFlats(key))
}

// identify names a set of sounding MIDI notes, lowest first.
func identify(notes []uint8, key string) (identified, bool) {
	pcs := make([]int, len(notes))
	for i, n := range notes {
		pcs[i] = int(n) % 12
	}
	m, ok := chord.Identify(pcs)
	if !ok {
		return identified{}, false
	}

	p := chord.Parsed{Root: spellIn(m.RootPC, key), Quality: m.Quality}
	if m.BassPC != m.RootPC {
		p.Bass = spellIn(m.BassPC, key)
	}
	c, _ := chord.New(p.Root, string(p.Quality))

	res := identified{Symbol: p.String(), Numeral: diatonic.NumeralOf(key, c)}
	if coord, ok := wheel.Place(c.Root, c.Quality); ok {
		res.Wheel = &coord
	}
	return res, true
}
