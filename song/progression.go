package song

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/inversion"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/scale"
	"github.com/jsphweid/chordwheel/util"
)

var (
	ErrEmptyProgression = errors.New("empty progression")
	ErrInvalidToken     = errors.New("invalid progression token")
)

// longest first so "vii" wins over "vi" and "v"
var romans = []struct {
	text   string
	degree int
}{
	{"vii", 7}, {"iii", 3}, {"vi", 6}, {"iv", 4}, {"ii", 2}, {"v", 5}, {"i", 1},
}

// ParseProgression reads a whitespace, comma or bar separated list of chords.
// Each token is a Roman numeral relative to key ("I", "vi", "V7", "vii°") or
// a chord symbol ("Am", "F/A"), optionally followed by ":n" to pick an
// inversion.
func ParseProgression(key string, text string) ([]model.ChordRef, error) {
	if note.PitchClass(key) < 0 {
		return nil, fmt.Errorf("key %q: %w", key, note.ErrUnknownNote)
	}
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == ',' || r == '|'
	})
	if len(tokens) == 0 {
		return nil, ErrEmptyProgression
	}

	refs := make([]model.ChordRef, 0, len(tokens))
	for _, tok := range tokens {
		ref, err := parseToken(key, tok)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func parseToken(key string, tok string) (model.ChordRef, error) {
	body, inv := tok, -1
	if i := strings.LastIndex(tok, ":"); i >= 0 {
		n, err := strconv.Atoi(tok[i+1:])
		if err != nil || n < 0 {
			return model.ChordRef{}, fmt.Errorf("%w: bad inversion in %q", ErrInvalidToken, tok)
		}
		body, inv = tok[:i], n
	}

	ref, ok := parseNumeral(key, body)
	if !ok {
		p, err := chord.Parse(body)
		if err != nil {
			return model.ChordRef{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
		}
		ref = model.ChordRef{Root: p.Root, Quality: p.Quality}
		if p.Bass != "" {
			ref.Inversion = BassInversion(p)
		}
	}
	if inv >= 0 {
		ref.Inversion = inv
	}
	return ref, nil
}

// BassInversion finds the chord tone matching a slash bass. A bass outside
// the chord is dropped with a warning.
func BassInversion(p chord.Parsed) int {
	if p.Bass == "" {
		return 0
	}
	bass := note.PitchClass(p.Bass)
	for i, pc := range chord.PitchClasses(p.Root, string(p.Quality)) {
		if pc == bass {
			return i
		}
	}
	logger.Warn("slash bass is not a chord tone, ignoring", logger.Fields{"chord": p.String()})
	return 0
}

func parseNumeral(key string, tok string) (model.ChordRef, bool) {
	degree, upper, rest := 0, false, ""
	lower := strings.ToLower(tok)
	for _, r := range romans {
		if !strings.HasPrefix(lower, r.text) {
			continue
		}
		head := tok[:len(r.text)]
		switch head {
		case strings.ToUpper(r.text):
			upper = true
		case r.text:
		default:
			// mixed case such as "Ii" is not a numeral
			return model.ChordRef{}, false
		}
		degree, rest = r.degree, tok[len(r.text):]
		break
	}
	if degree == 0 {
		return model.ChordRef{}, false
	}

	var q chord.Quality
	switch {
	case strings.HasPrefix(rest, "°"), strings.HasPrefix(rest, "o"):
		rest = strings.TrimPrefix(strings.TrimPrefix(rest, "°"), "o")
		q = chord.Diminished
		if rest == "7" {
			q, rest = chord.Diminished7, ""
		}
	case strings.HasPrefix(rest, "ø"):
		q, rest = chord.HalfDiminished7, strings.TrimPrefix(strings.TrimPrefix(rest, "ø"), "7")
	case strings.HasPrefix(rest, "+"):
		q, rest = chord.Augmented, rest[1:]
	case upper:
		q = chord.Major
	default:
		q = chord.Minor
	}

	if rest != "" {
		ext, ok := extend(q, rest)
		if !ok {
			return model.ChordRef{}, false
		}
		q = ext
	}

	degrees := scale.Major(key)
	if len(degrees) < degree {
		return model.ChordRef{}, false
	}
	return model.ChordRef{Root: degrees[degree-1], Quality: q}, true
}

// extend applies a suffix such as "7" or "maj7" to a numeral's triad.
func extend(triad chord.Quality, suffix string) (chord.Quality, bool) {
	if triad == chord.Minor {
		if q, ok := chord.Resolve("m" + suffix); ok {
			return q, true
		}
	}
	if triad == chord.Augmented {
		if q, ok := chord.Resolve("+" + suffix); ok {
			return q, true
		}
	}
	q, ok := chord.Resolve(suffix)
	if !ok {
		return "", false
	}
	// suspended chords carry no third to contradict the numeral's case
	if t := chord.Triad(q); t != triad && t != q {
		return "", false
	}
	return q, true
}

// Describe renders a chord reference as a slash symbol when inverted.
func Describe(ref model.ChordRef) string {
	notes, _ := chord.Notes(ref.Root, string(ref.Quality))
	idx := util.Clamp(ref.Inversion, 0, inversion.Max(notes))
	return inversion.Symbol(ref.Root, string(ref.Quality), inversion.Invert(notes, idx), idx)
}
