package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/litescript/ls-cosmos/internal/scene"
	"github.com/litescript/ls-cosmos/internal/version"
)

const maxBodyBytes = 64 << 10

// planetDataRequest is the wire form of a scene request. Absent fields keep
// their defaults.
type planetDataRequest struct {
	Datum          string   `json:"datum" validate:"max=64"`
	ZoomLevel      *float64 `json:"zoom_level"`
	OffsetX        float64  `json:"offset_x"`
	OffsetY        float64  `json:"offset_y"`
	SelectedPlanet string   `json:"selected_planet" validate:"max=64"`
}

func (p planetDataRequest) toScene() scene.Request {
	req := scene.NewRequest()
	req.Timestamp = p.Datum
	if p.ZoomLevel != nil {
		req.ZoomLevel = *p.ZoomLevel
	}
	req.OffsetX = p.OffsetX
	req.OffsetY = p.OffsetY
	req.Selected = p.SelectedPlanet
	return req
}

func (s *Server) handlePlanetData(w http.ResponseWriter, r *http.Request) {
	var body planetDataRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("malformed request: %v", err))
		return
	}
	if err := s.validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	sc, err := s.engine.Compute(r.Context(), body.toScene())
	if err != nil {
		s.log.Error("%s compute: %v", RequestID(r.Context()), err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

type healthResponse struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Ephemeris string `json:"ephemeris"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Version:   version.Version,
		Ephemeris: s.engine.OracleName(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
