// Package server exposes the wheel, key and chord queries as a JSON API.
package server

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jsphweid/chordwheel/config"
	"github.com/jsphweid/chordwheel/logger"
	"github.com/jsphweid/chordwheel/model"
	"github.com/rs/cors"
)

type Server struct {
	cfg *config.Config
}

func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg}
}

func (s *Server) Router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", handleHealth).Methods("GET")

	router.HandleFunc("/keys", handleKeys).Methods("GET")
	router.HandleFunc("/keys/{key}/scale", handleScale).Methods("GET")
	router.HandleFunc("/keys/{key}/chords", handleKeyChords).Methods("GET")
	router.HandleFunc("/keys/{key}/highlights", handleHighlights).Methods("GET")
	router.HandleFunc("/keys/{key}/segments/{position}/{ring}", handleSegment).Methods("GET")

	router.HandleFunc("/wheel", handleWheel).Methods("GET")
	router.HandleFunc("/wheel/find", handleFind).Methods("GET")

	router.HandleFunc("/chords/{root}/{quality}", handleChord).Methods("GET")

	router.HandleFunc("/export/midi", s.handleExportMidi).Methods("POST")
	return router
}

// Handler is the router behind a permissive CORS policy for browser clients.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.Router())
}

func (s *Server) ListenAndServe() error {
	addr := ":" + s.cfg.Port
	logger.Info("listening", logger.Fields{"addr": addr, "environment": s.cfg.Environment})
	return http.ListenAndServe(addr, s.Handler())
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not encode response", err, nil)
	}
}

func writeError(w http.ResponseWriter, status int, detail string) {
	if status >= http.StatusInternalServerError {
		logger.Warn("request failed", logger.Fields{"status": status, "detail": detail})
	}
	writeJSON(w, status, model.ErrorResponse{Error: detail})
}
