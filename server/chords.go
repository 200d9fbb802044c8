package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordwheel/chord"
	"github.com/jsphweid/chordwheel/degree"
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/inversion"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/util"
	"github.com/jsphweid/chordwheel/voicing"
	"github.com/jsphweid/chordwheel/wheel"
)

// handleChord describes one chord: its notes in the requested inversion,
// degree labels, voicing ideas and where it sits on the wheel. The optional
// key query fills in the numeral and key-relative degrees.
func handleChord(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	root, quality := vars["root"], vars["quality"]
	key := r.URL.Query().Get("key")
	if key != "" && note.PitchClass(key) < 0 {
		writeError(w, http.StatusNotFound, "unknown key: "+key)
		return
	}

	idx := 0
	if s := r.URL.Query().Get("inversion"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "inversion must be a non-negative integer")
			return
		}
		idx = n
	}

	c, err := chord.New(root, quality)
	switch {
	case errors.Is(err, note.ErrUnknownNote):
		writeError(w, http.StatusNotFound, "unknown root: "+root)
		return
	case errors.Is(err, chord.ErrUnknownQuality):
		writeError(w, http.StatusBadRequest, "unknown quality: "+quality)
		return
	}
	if key != "" {
		c = diatonic.Annotate(key, c)
	}

	idx = util.Clamp(idx, 0, inversion.Max(c.Notes))
	notes := inversion.Invert(c.Notes, idx)
	res := model.ChordResponse{
		Chord:          c,
		Symbol:         inversion.Symbol(c.Root, string(c.Quality), notes, idx),
		Inversion:      inversion.Name(idx),
		InversionIndex: idx,
		MaxInversion:   inversion.Max(c.Notes),
		Notes:          notes,
		Degrees:        degree.Label(notes, c.Root, key),
		Voicing:        voicing.Suggest(c, key),
	}
	if coord, ok := wheel.Place(c.Root, c.Quality); ok {
		res.Wheel = &coord
	}
	writeJSON(w, http.StatusOK, res)
}
