package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/jsphweid/chordwheel/constants"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/midi"
	"github.com/jsphweid/chordwheel/model"
	"github.com/jsphweid/chordwheel/note"
	"github.com/jsphweid/chordwheel/song"
)

func (s *Server) exportDefaults(req *model.ExportRequest) {
	if req.Tempo <= 0 {
		req.Tempo = s.cfg.Tempo
	}
	if req.Octave == 0 {
		req.Octave = s.cfg.DefaultOctave
	}
	if req.BeatsPerChord <= 0 {
		req.BeatsPerChord = constants.DefaultBeatsPerChord
	}
}

func (s *Server) handleExportMidi(w http.ResponseWriter, r *http.Request) {
	var req model.ExportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "could not parse request body: "+err.Error())
		return
	}
	s.exportDefaults(&req)

	sng, err := song.FromProgression(req.Key, req.Progression, req.Tempo, req.BeatsPerChord)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, note.ErrUnknownNote) {
			status = http.StatusNotFound
		}
		writeError(w, status, err.Error())
		return
	}
	events, err := song.Events(sng, req.Octave)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var buf bytes.Buffer
	if err := midi.Write(&buf, events, req.Tempo); err != nil {
		logger.Error("midi export failed", err, logger.Fields{"song": sng.ID.String()})
		writeError(w, http.StatusInternalServerError, "could not render midi")
		return
	}

	logger.Debug("exported midi", logger.Fields{"song": sng.ID.String(), "events": len(events)})
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sng.ID.String()+".mid"))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
