package degree

import (
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/util"
)

// Unknown is returned when either note is not recognised.
const Unknown = "-"

var absolute = [12]string{"R", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♭6", "6", "♭7", "7"}

var fromKey = [12]string{"1", "♭2", "2", "♭3", "3", "4", "♭5", "5", "♭6", "6", "♭7", "7"}

func semitonesAbove(n string, root string) int {
	pc := note.PitchClass(n)
	rootPC := note.PitchClass(root)
	if pc < 0 || rootPC < 0 {
		return -1
	}
	return util.Mod(pc-rootPC, 12)
}

// Absolute labels n by its distance above the chord root: R, ♭3, 5...
func Absolute(n string, chordRoot string) string {
	d := semitonesAbove(n, chordRoot)
	if d < 0 {
		return Unknown
	}
	return absolute[d]
}

// FromKey labels n by its distance above the key's tonic. The tonic is "1";
// use Relative for the R form shown next to chord tones.
func FromKey(key string, n string) string {
	d := semitonesAbove(n, key)
	if d < 0 {
		return Unknown
	}
	return fromKey[d]
}

func Relative(key string, n string) string {
	label := FromKey(key, n)
	if label == "1" {
		return "R"
	}
	return label
}

// Labels pairs every note with its absolute and key-relative label.
type Labels = model.DegreeLabel

func Label(notes []string, chordRoot string, key string) []Labels {
	res := make([]Labels, len(notes))
	for i, n := range notes {
		res[i] = Labels{Note: n, Absolute: Absolute(n, chordRoot), Relative: Relative(key, n)}
	}
	return res
}
