package adapthttp

import (
	"net/http"

	"ergzones/internal/zonecfg"
)

type hrZoneRequest struct {
	MaxHR  int    `json:"max_hr"`
	Config string `json:"config"`
}

type paceZoneRequest struct {
	DistanceMeters int     `json:"distance_meters"`
	TimeSeconds    float64 `json:"time_seconds"`
	Config         string  `json:"config"`
}

func (s *Server) handleHRZones(w http.ResponseWriter, r *http.Request) {
	var body hrZoneRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	configName := body.Config
	if configName == "" {
		configName = zonecfg.DefaultHRName
	}

	report, err := s.zones.HRZones(configName, body.MaxHR)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handlePaceZones(w http.ResponseWriter, r *http.Request) {
	var body paceZoneRequest
	if err := parseJSON(r, &body); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	configName := body.Config
	if configName == "" {
		configName = zonecfg.DefaultPaceName
	}

	report, err := s.zones.PaceZones(configName, body.DistanceMeters, body.TimeSeconds)
	if err != nil {
		s.respondDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
