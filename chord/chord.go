package chord

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/util"
)

var (
	ErrUnknownQuality = errors.New("unknown chord quality")
	ErrInvalidSymbol  = errors.New("invalid chord symbol")
)

// Notes builds the note names of root+quality in formula order, root first,
// without octaves. Extensions past the octave still map onto their pitch
// class.
//
// An unrecognised quality yields the major triad on root together with an
// error wrapping ErrUnknownQuality; the notes are still usable. An
// unrecognised root yields no notes and an error wrapping note.ErrUnknownNote.
func Notes(root string, quality string) ([]string, error) {
	if note.PitchClass(root) < 0 {
		logger.Warn("chord root not recognised", logger.Fields{"root": root, "quality": quality})
		return nil, fmt.Errorf("%w: %q", note.ErrUnknownNote, root)
	}

	f, ok := Lookup(quality)
	if !ok {
		logger.Warn("unknown chord quality, substituting major triad", logger.Fields{
			"root":    root,
			"quality": quality,
		})
		return Spell(root, byQuality[Major].Intervals), fmt.Errorf("%w: %q", ErrUnknownQuality, quality)
	}
	return Spell(root, f.Intervals), nil
}

// Spell names each interval above root from the letter of its chord degree,
// so C7 reads C E G Bb. Tones that would need a double accidental fall back
// to the chromatic table in root's direction.
func Spell(root string, intervals []Interval) []string {
	rootPC := note.PitchClass(root)
	if rootPC < 0 {
		return nil
	}
	letter, _ := note.Letter(root)
	flats := note.PrefersFlats(root)

	res := make([]string, 0, len(intervals))
	for _, iv := range intervals {
		pc := util.Mod(rootPC+iv.Semitones, 12)
		if name, ok := note.SpellAs(pc, letter+iv.Degree-1); ok {
			res = append(res, name)
			continue
		}
		res = append(res, note.Name(pc, flats))
	}
	return res
}

// PitchClasses is Notes reduced to pitch classes.
func PitchClasses(root string, quality string) []int {
	names, _ := Notes(root, quality)
	res := make([]int, len(names))
	for i, n := range names {
		res[i] = note.PitchClass(n)
	}
	return res
}

// Symbol renders root plus the quality's suffix: C, Dm, B°, G7. Unknown
// qualities render as the bare root.
func Symbol(root string, quality string) string {
	q, ok := Resolve(quality)
	if !ok {
		return root
	}
	return root + Suffix(q)
}

// New builds a chord value. The error is the one from Notes.
func New(root string, quality string) (model.Chord, error) {
	notes, err := Notes(root, quality)
	q, ok := Resolve(quality)
	if !ok {
		q = Major
	}
	return model.Chord{
		Root:    root,
		Quality: q,
		Notes:   notes,
		Symbol:  root + Suffix(q),
	}, err
}

type Parsed struct {
	Root    string
	Quality Quality
	// Empty unless written as a slash chord.
	Bass string
}

func (p Parsed) String() string {
	s := p.Root + Suffix(p.Quality)
	if p.Bass != "" {
		s += "/" + p.Bass
	}
	return s
}

// Parse reads a chord symbol such as "F#m7", "Bb", "C/E" or "Am7b5".
func Parse(symbol string) (Parsed, error) {
	var p Parsed
	body := strings.TrimSpace(symbol)
	if i := strings.LastIndex(body, "/"); i >= 0 {
		bass, rest, ok := note.SplitRoot(body[i+1:])
		if !ok || rest != "" || note.PitchClass(bass) < 0 {
			return p, fmt.Errorf("%w: bad bass note in %q", ErrInvalidSymbol, symbol)
		}
		p.Bass = bass
		body = body[:i]
	}

	root, rest, ok := note.SplitRoot(body)
	if !ok || note.PitchClass(root) < 0 {
		return p, fmt.Errorf("%w: bad root in %q", ErrInvalidSymbol, symbol)
	}
	q, ok := Resolve(rest)
	if !ok {
		return p, fmt.Errorf("%w: %q in %q", ErrUnknownQuality, rest, symbol)
	}
	p.Root = root
	p.Quality = q
	return p, nil
}

type Match struct {
	RootPC  int
	Quality Quality
	BassPC  int
}

// Identify names a set of sounding pitch classes. The first entry is taken as
// the bass; it is tried as the root first, then the remaining classes in
// ascending order, so inverted triads come back as slash chords.
func Identify(pitchClasses []int) (Match, bool) {
	set := make(map[int]bool)
	var ordered []int
	for _, pc := range pitchClasses {
		pc = util.Mod(pc, 12)
		if !set[pc] {
			set[pc] = true
			ordered = append(ordered, pc)
		}
	}
	if len(ordered) < 2 {
		return Match{}, false
	}

	bass := ordered[0]
	candidates := append([]int{bass}, sortedRest(ordered[1:])...)
	for _, r := range candidates {
		for _, f := range formulas {
			if sameClasses(set, r, f.Intervals) {
				return Match{RootPC: r, Quality: f.Quality, BassPC: bass}, true
			}
		}
	}
	return Match{}, false
}

func sortedRest(pcs []int) []int {
	res := append([]int{}, pcs...)
	sort.Ints(res)
	return res
}

func sameClasses(set map[int]bool, root int, intervals []Interval) bool {
	want := make(map[int]bool, len(intervals))
	for _, iv := range intervals {
		want[util.Mod(root+iv.Semitones, 12)] = true
	}
	if len(want) != len(set) {
		return false
	}
	for pc := range want {
		if !set[pc] {
			return false
		}
	}
	return true
}
