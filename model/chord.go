package model

type ChordQuality string

// Chord is a value: derived views (inversions, voicings) build new note lists
// instead of mutating one.
type Chord struct {
	Root    string       `json:"root"`
	Quality ChordQuality `json:"quality"`
	// Empty for chords outside the selected key.
	Numeral string   `json:"numeral"`
	Notes   []string `json:"notes"`
	Symbol  string   `json:"symbol"`
}

type Voicing struct {
	Extensions  []string `json:"extensions"`
	Description string   `json:"description"`
}
