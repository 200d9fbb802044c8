package model

// KeySignature counts the accidentals of a major key. At most one of the two
// is non-zero.
type KeySignature struct {
	Sharps int `json:"sharps"`
	Flats  int `json:"flats"`
}

type KeyInfo struct {
	Root      string       `json:"root"`
	Signature KeySignature `json:"signature"`
	Scale     []string     `json:"scale"`
}
