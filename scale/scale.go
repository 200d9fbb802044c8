package scale

import (
	"github.com/jsphweid/chordwheel/note"
)

// W-W-H-W-W-W-H
var MajorSteps = [7]int{2, 2, 1, 2, 2, 2, 1}

// PitchClasses returns the seven pitch classes of the major scale on root, or
// nil when root is not a note.
func PitchClasses(root string) []int {
	pc := note.PitchClass(root)
	if pc < 0 {
		return nil
	}
	res := make([]int, 0, len(MajorSteps))
	for _, step := range MajorSteps {
		res = append(res, pc%12)
		pc += step
	}
	return res
}

// Major spells the major scale on root. Standard keys (those with a key
// signature) give each degree its own letter, so flat keys read in flats and
// sharp keys in sharps. Any other root is spelled from the chromatic table.
func Major(root string) []string {
	pcs := PitchClasses(root)
	if pcs == nil {
		return nil
	}

	res := make([]string, len(pcs))
	letter, _ := note.Letter(root)
	standard := note.IsStandardKey(root)
	flats := note.PrefersFlats(root)
	for i, pc := range pcs {
		if standard {
			if name, ok := note.SpellAs(pc, letter+i); ok {
				res[i] = name
				continue
			}
		}
		res[i] = note.Name(pc, flats && standard)
	}
	return res
}

// Degree returns the zero-based scale degree of n in the major key on root,
// or -1 when n is outside the key.
func Degree(root string, n string) int {
	pc := note.PitchClass(n)
	if pc < 0 {
		return -1
	}
	for i, p := range PitchClasses(root) {
		if p == pc {
			return i
		}
	}
	return -1
}
