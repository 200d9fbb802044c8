package inversion

import (
	"fmt"

	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/util"
)

var names = []string{"Root", "1st", "2nd", "3rd"}

// Max is the highest usable inversion index: 2 for a triad, 3 for a seventh.
func Max(notes []string) int {
	return util.Max(0, len(notes)-1)
}

// Invert moves the first index notes to the end so notes[index] sounds in the
// bass. index is clamped to [0, Max(notes)].
func Invert(notes []string, index int) []string {
	return util.Rotate(notes, util.Clamp(index, 0, Max(notes)))
}

func Name(index int) string {
	if index >= 0 && index < len(names) {
		return names[index]
	}
	return ordinal(index)
}

func ordinal(n int) string {
	suffix := "th"
	switch {
	case n%100 >= 11 && n%100 <= 13:
	case n%10 == 1:
		suffix = "st"
	case n%10 == 2:
		suffix = "nd"
	case n%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", n, suffix)
}

// Symbol renders the chord symbol for an inverted voicing. inverted is the
// already-inverted note list; its first note becomes the slash bass.
func Symbol(root string, quality string, inverted []string, index int) string {
	symbol := chord.Symbol(root, quality)
	if index <= 0 || len(inverted) == 0 {
		return symbol
	}
	return symbol + "/" + inverted[0]
}
