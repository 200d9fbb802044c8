package model

// Ring is one cell band of a wheel position. The minor band holds two cells,
// "ii" and "iii".
type Ring string

type WheelCoord struct {
	Position int  `json:"position"`
	Ring     Ring `json:"ring"`
}

type WheelCell struct {
	WheelCoord
	Symbol string `json:"symbol"`
}

type Highlight struct {
	WheelCoord
	ChordRoot string `json:"chordRoot"`
	Numeral   string `json:"numeral"`
	Symbol    string `json:"symbol"`
}

type SegmentStatus struct {
	IsDiatonic bool   `json:"isDiatonic"`
	Numeral    string `json:"numeral,omitempty"`
}
