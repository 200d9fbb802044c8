package server

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordwheel/diatonic"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/scale"
	"github.com/jsphweid/chordwheel/wheel"
)

func keyInfo(key string) model.KeyInfo {
	return model.KeyInfo{
		Root:      key,
		Signature: note.KeySignatureOf(key),
		Scale:     scale.Major(key),
	}
}

// pathKey reads {key} and writes a 404 when it is not a note name.
func pathKey(w http.ResponseWriter, r *http.Request) (string, bool) {
	key := mux.Vars(r)["key"]
	if note.PitchClass(key) < 0 {
		writeError(w, http.StatusNotFound, "unknown key: "+key)
		return "", false
	}
	return key, true
}

func handleKeys(w http.ResponseWriter, r *http.Request) {
	keys := note.Keys()
	res := make([]model.KeyInfo, len(keys))
	for i, k := range keys {
		res[i] = keyInfo(k)
	}
	writeJSON(w, http.StatusOK, res)
}

func handleScale(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, keyInfo(key))
}

func handleKeyChords(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, diatonic.Chords(key))
}

func handleHighlights(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	res := wheel.Highlights(key)
	if res == nil {
		res = []model.Highlight{}
	}
	writeJSON(w, http.StatusOK, res)
}

func handleSegment(w http.ResponseWriter, r *http.Request) {
	key, ok := pathKey(w, r)
	if !ok {
		return
	}
	vars := mux.Vars(r)
	position, err := strconv.Atoi(vars["position"])
	if err != nil || position < 0 || position >= len(wheel.Positions) {
		writeError(w, http.StatusBadRequest, "position must be 0-11")
		return
	}
	ring := model.Ring(vars["ring"])
	if !wheel.ValidRing(ring) {
		writeError(w, http.StatusBadRequest, "unknown ring: "+vars["ring"])
		return
	}
	writeJSON(w, http.StatusOK, wheel.IsSegmentDiatonic(position, ring, key))
}

func handleWheel(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, wheel.Cells())
}

func handleFind(w http.ResponseWriter, r *http.Request) {
	symbol := r.URL.Query().Get("symbol")
	if symbol == "" {
		writeError(w, http.StatusBadRequest, "symbol is required")
		return
	}
	find := wheel.Find
	if r.URL.Query().Get("enharmonic") == "true" {
		find = wheel.FindEnharmonic
	}
	res := model.FindResponse{Symbol: symbol}
	if coord, ok := find(symbol); ok {
		res.Found = true
		res.Coord = &coord
	}
	writeJSON(w, http.StatusOK, res)
}
