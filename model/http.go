package model

type ErrorResponse struct {
	Error string `json:"detail"`
}

type ExportRequest struct {
	Key           string `json:"key"`
	Progression   string `json:"progression"`
	Tempo         int    `json:"tempo"`
	Octave        int    `json:"octave"`
	BeatsPerChord int    `json:"beatsPerChord"`
}

type ChordResponse struct {
	Chord Chord `json:"chord"`
	// Slash symbol when inverted
	Symbol         string        `json:"symbol"`
	Inversion      string        `json:"inversion"`
	InversionIndex int           `json:"inversionIndex"`
	MaxInversion   int           `json:"maxInversion"`
	Notes          []string      `json:"notes"`
	Degrees        []DegreeLabel `json:"degrees"`
	Voicing        Voicing       `json:"voicing"`
	Wheel          *WheelCoord   `json:"wheel"`
}

type DegreeLabel struct {
	Note     string `json:"note"`
	Absolute string `json:"absolute"`
	Relative string `json:"relative"`
}

type FindResponse struct {
	Symbol string      `json:"symbol"`
	Found  bool        `json:"found"`
	Coord  *WheelCoord `json:"coord,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
