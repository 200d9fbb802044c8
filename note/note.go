// Package note holds the twelve-tone pitch-class table and the enharmonic
// rules every other package spells notes with.
package note

import (
	"errors"
	"strings"

	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/util"
)

var ErrUnknownNote = errors.New("unknown note name")

// Names is the canonical pitch-class table. Index == pitch class.
var Names = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var flatNames = [12]string{"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B"}

var flatToSharp = map[string]string{
	"Db": "C#",
	"Eb": "D#",
	"Gb": "F#",
	"Ab": "G#",
	"Bb": "A#",
	"Cb": "B",
	"Fb": "E",
	"E#": "F",
	"B#": "C",
}

const letters = "CDEFGAB"

var naturals = [7]int{0, 2, 4, 5, 7, 9, 11}

var sharpKeys = []string{"G", "D", "A", "E", "B", "F#", "C#"}
var flatKeys = []string{"F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}

// Normalize maps flat spellings (and the white-key enharmonics Cb, Fb, E#,
// B#) onto the canonical sharp table. Anything else is returned unchanged.
func Normalize(n string) string {
	n = strings.NewReplacer("♭", "b", "♯", "#").Replace(strings.TrimSpace(n))
	if sharp, ok := flatToSharp[n]; ok {
		return sharp
	}
	return n
}

// PitchClass returns the index of n in Names, or -1 when n is not a note.
func PitchClass(n string) int {
	n = Normalize(n)
	for i, name := range Names {
		if name == n {
			return i
		}
	}
	return -1
}

// Name spells a pitch class from the chromatic table.
func Name(pc int, flats bool) string {
	pc = util.Mod(pc, 12)
	if flats {
		return flatNames[pc]
	}
	return Names[pc]
}

// Transpose moves n by semitones, spelling the result from the chromatic
// table. Unknown notes come back unchanged.
func Transpose(n string, semitones int, flats bool) string {
	pc := PitchClass(n)
	if pc < 0 {
		return n
	}
	return Name(pc+semitones, flats)
}

// Letter returns the position of the note's letter in C D E F G A B.
func Letter(n string) (int, bool) {
	if n == "" {
		return 0, false
	}
	i := strings.IndexByte(letters, strings.ToUpper(n[:1])[0])
	return i, i >= 0
}

// SpellAs names pitch class pc using the given letter, with at most one
// accidental. ok is false when a double accidental would be required.
func SpellAs(pc int, letter int) (string, bool) {
	letter = util.Mod(letter, 7)
	acc := util.Mod(pc-naturals[letter]+6, 12) - 6
	name := letters[letter : letter+1]
	switch acc {
	case 0:
		return name, true
	case 1:
		return name + "#", true
	case -1:
		return name + "b", true
	}
	return "", false
}

// PrefersFlats reports whether names relative to n read best with flats:
// flat keys, flat-spelled notes, and F.
func PrefersFlats(n string) bool {
	n = strings.TrimSpace(n)
	for _, k := range flatKeys {
		if k == n {
			return true
		}
	}
	return len(n) > 1 && (n[1] == 'b' || strings.HasPrefix(n[1:], "♭"))
}

// IsStandardKey reports whether root appears in the sharp or flat key tables
// (or is C).
func IsStandardKey(root string) bool {
	ks := KeySignatureOf(root)
	return root == "C" || ks.Sharps > 0 || ks.Flats > 0
}

func KeySignatureOf(root string) model.KeySignature {
	root = strings.TrimSpace(root)
	for i, k := range sharpKeys {
		if k == root {
			return model.KeySignature{Sharps: i + 1}
		}
	}
	for i, k := range flatKeys {
		if k == root {
			return model.KeySignature{Flats: i + 1}
		}
	}
	return model.KeySignature{}
}

// Keys lists the fifteen standard major keys around the circle of fifths,
// from seven flats to seven sharps.
func Keys() []string {
	res := make([]string, 0, 15)
	for i := len(flatKeys) - 1; i >= 0; i-- {
		res = append(res, flatKeys[i])
	}
	res = append(res, "C")
	res = append(res, sharpKeys...)
	return res
}

// SplitRoot separates a leading note name from the rest of a chord symbol:
// "F#m7" -> ("F#", "m7").
func SplitRoot(symbol string) (string, string, bool) {
	symbol = strings.TrimSpace(symbol)
	if _, ok := Letter(symbol); !ok {
		return "", symbol, false
	}
	root := strings.ToUpper(symbol[:1])
	rest := symbol[1:]
	switch {
	case strings.HasPrefix(rest, "#"), strings.HasPrefix(rest, "b"):
		root += rest[:1]
		rest = rest[1:]
	case strings.HasPrefix(rest, "♯"):
		root += "#"
		rest = strings.TrimPrefix(rest, "♯")
	case strings.HasPrefix(rest, "♭"):
		root += "b"
		rest = strings.TrimPrefix(rest, "♭")
	}
	return root, rest, true
}
