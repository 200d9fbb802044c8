package note

import (
	"testing"

	"github.com/jsphweid/chordwheel/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	for _, tc := range []struct {
		in, want string
	}{
		{"Bb", "A#"},
		{"Db", "C#"},
		{"C#", "C#"},
		{"E", "E"},
		{"Cb", "B"},
		{"E#", "F"},
		{"B♭", "A#"},
		{"H", "H"},
	} {
		if got := Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPitchClass(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, PitchClass("C"))
	assert.Equal(10, PitchClass("Bb"))
	assert.Equal(10, PitchClass("A#"))
	assert.Equal(11, PitchClass("Cb"))
	assert.Equal(-1, PitchClass("X"))
	assert.Equal(-1, PitchClass(""))
}

func TestName(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("A#", Name(10, false))
	assert.Equal("Bb", Name(10, true))
	assert.Equal("C", Name(12, false))
	assert.Equal("B", Name(-1, true))
}

func TestTranspose(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("G", Transpose("C", 7, false))
	assert.Equal("Eb", Transpose("C", 3, true))
	assert.Equal("nope", Transpose("nope", 3, true))
}

func TestSpellAs(t *testing.T) {
	assert := assert.New(t)

	name, ok := SpellAs(10, 6) // B
	assert.True(ok)
	assert.Equal("Bb", name)

	name, ok = SpellAs(5, 2) // E
	assert.True(ok)
	assert.Equal("E#", name)

	name, ok = SpellAs(11, 0) // C
	assert.True(ok)
	assert.Equal("Cb", name)

	_, ok = SpellAs(9, 6) // Bbb
	assert.False(ok)
}

func TestKeySignatureOf(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(model.KeySignature{}, KeySignatureOf("C"))
	assert.Equal(model.KeySignature{Sharps: 1}, KeySignatureOf("G"))
	assert.Equal(model.KeySignature{Sharps: 6}, KeySignatureOf("F#"))
	assert.Equal(model.KeySignature{Flats: 1}, KeySignatureOf("F"))
	assert.Equal(model.KeySignature{Flats: 7}, KeySignatureOf("Cb"))
	assert.Equal(model.KeySignature{}, KeySignatureOf("A#"))

	for _, k := range Keys() {
		ks := KeySignatureOf(k)
		assert.False(ks.Sharps > 0 && ks.Flats > 0, k)
	}
}

func TestKeys(t *testing.T) {
	keys := Keys()
	assert := assert.New(t)
	assert.Len(keys, 15)
	assert.Equal("Cb", keys[0])
	assert.Equal("C", keys[7])
	assert.Equal("C#", keys[14])
}

func TestPrefersFlats(t *testing.T) {
	assert := assert.New(t)
	assert.True(PrefersFlats("F"))
	assert.True(PrefersFlats("Bb"))
	assert.True(PrefersFlats("Gb"))
	assert.False(PrefersFlats("C"))
	assert.False(PrefersFlats("F#"))
	assert.False(PrefersFlats("B"))
}

func TestSplitRoot(t *testing.T) {
	for _, tc := range []struct {
		symbol, root, rest string
		ok                 bool
	}{
		{"F#m7", "F#", "m7", true},
		{"Bb", "Bb", "", true},
		{"cmaj7", "C", "maj7", true},
		{"E♭m", "Eb", "m", true},
		{"m7", "", "m7", false},
	} {
		root, rest, ok := SplitRoot(tc.symbol)
		if root != tc.root || rest != tc.rest || ok != tc.ok {
			t.Errorf("SplitRoot(%q) = %q, %q, %v want %q, %q, %v",
				tc.symbol, root, rest, ok, tc.root, tc.rest, tc.ok)
		}
	}
}
