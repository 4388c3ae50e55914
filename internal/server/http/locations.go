package http

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
)

type locationReadRequest struct {
	LocationID string `json:"locationId"`
}

func (s *HTTPServer) handleCreateLocation(w http.ResponseWriter, r *http.Request) {

	var location models.Location
	if !s.decodeJSON(w, r, &location) {
		return
	}

	if _, err := s.locations.Create(r.Context(), &location); err != nil {
		s.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, M{"msg": "Location created!"})
}

func (s *HTTPServer) handleLocationByID(w http.ResponseWriter, r *http.Request) {

	var req locationReadRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	location, err := s.locations.GetByID(r.Context(), req.LocationID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, M{"msg": "Location not found"})
			return
		}
		s.writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, location)
}

func (s *HTTPServer) handleListLocations(w http.ResponseWriter, r *http.Request) {

	locations, err := s.locations.List(r.Context())
	if err != nil {
		s.writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, locations)
}
