package inversion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvert(t *testing.T) {
	triad := []string{"C", "E", "G"}
	assert := assert.New(t)
	assert.Equal([]string{"C", "E", "G"}, Invert(triad, 0))
	assert.Equal([]string{"E", "G", "C"}, Invert(triad, 1))
	assert.Equal([]string{"G", "C", "E"}, Invert(triad, 2))
	assert.Equal([]string{"C", "E", "G"}, triad)
}

func TestInvertClamps(t *testing.T) {
	triad := []string{"C", "E", "G"}
	assert := assert.New(t)
	assert.Equal([]string{"G", "C", "E"}, Invert(triad, 7))
	assert.Equal([]string{"C", "E", "G"}, Invert(triad, -1))
	assert.Empty(Invert(nil, 2))
	assert.Equal([]string{"C"}, Invert([]string{"C"}, 1))
}

func TestInvertRoundTrip(t *testing.T) {
	for _, notes := range [][]string{
		{"C", "E", "G"},
		{"G", "B", "D", "F"},
		{"C", "E", "G", "Bb", "D"},
	} {
		got := notes
		for i := 0; i < len(notes); i++ {
			got = Invert(got, 1)
		}
		assert.Equal(t, notes, got)
	}
}

func TestMax(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(2, Max([]string{"C", "E", "G"}))
	assert.Equal(3, Max([]string{"C", "E", "G", "B"}))
	assert.Equal(0, Max([]string{"C"}))
	assert.Equal(0, Max(nil))
}

func TestName(t *testing.T) {
	for index, want := range map[int]string{
		0:  "Root",
		1:  "1st",
		2:  "2nd",
		3:  "3rd",
		4:  "4th",
		11: "11th",
		21: "21st",
	} {
		if got := Name(index); got != want {
			t.Errorf("Name(%d) = %q want %q", index, got, want)
		}
	}
}

func TestSymbol(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("C/E", Symbol("C", "major", []string{"E", "G", "C"}, 1))
	assert.Equal("C", Symbol("C", "major", []string{"C", "E", "G"}, 0))
	assert.Equal("Am7/G", Symbol("A", "minor7", Invert([]string{"A", "C", "E", "G"}, 3), 3))
}
