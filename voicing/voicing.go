// Package voicing suggests chord extensions by a chord's role in the key.
package voicing

import (
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/model"
)

const fallbackDescription = "Outside the key. Try different extensions to find a color that fits the progression."

var suggestions = map[string]model.Voicing{
	"I": {
		Extensions:  []string{"maj7", "6", "add9", "maj9", "sus2"},
		Description: "Home base. Major sevenths and sixths keep it settled; add9 opens it up.",
	},
	"ii": {
		Extensions:  []string{"m7", "m9", "m11", "sus4"},
		Description: "Pre-dominant. The m7 and m9 lead smoothly into V.",
	},
	"iii": {
		Extensions:  []string{"m7", "m11", "sus4"},
		Description: "A softer stand-in for I. Keep extensions light; the m7 works best.",
	},
	"IV": {
		Extensions:  []string{"maj7", "6", "add9", "maj9", "sus2"},
		Description: "Lifts away from home. maj7 gives the lydian shimmer.",
	},
	"V": {
		Extensions:  []string{"7", "9", "13", "sus4", "7sus4", "7b9"},
		Description: "Dominant. The 7th adds the pull back to I; sus4 delays it.",
	},
	"vi": {
		Extensions:  []string{"m7", "m9", "m11", "add9"},
		Description: "Relative minor. m7 and m9 sound warm without leaving the key.",
	},
	"vii°": {
		Extensions:  []string{"m7b5", "dim7"},
		Description: "Leading-tone chord. m7b5 stays diatonic; dim7 adds tension toward I.",
	},
	"II": {
		Extensions:  []string{"7", "9", "7sus4"},
		Description: "Secondary dominant of V. Play it as a 7 chord and resolve to V.",
	},
	"III": {
		Extensions:  []string{"7", "7b9", "7#9"},
		Description: "Secondary dominant of vi. The 7 chord pulls strongly to vi.",
	},
}

// ForNumeral looks up a numeral. Numerals outside the table get an empty
// extension list and a generic description.
func ForNumeral(numeral string) model.Voicing {
	if v, ok := suggestions[numeral]; ok {
		return model.Voicing{
			Extensions:  append([]string{}, v.Extensions...),
			Description: v.Description,
		}
	}
	return model.Voicing{Extensions: []string{}, Description: fallbackDescription}
}

// Suggest picks suggestions for c by its numeral in key. Without a key the
// chord's own numeral is used.
func Suggest(c model.Chord, key string) model.Voicing {
	numeral := c.Numeral
	if key != "" {
		numeral = diatonic.NumeralOf(key, c)
	}
	return ForNumeral(numeral)
}
