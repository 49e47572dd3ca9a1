package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, degraded, err := s.planner.ListTrips(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	writeData(w, http.StatusOK, trips, degraded)
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	trip, degraded, err := s.planner.GetTrip(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, trip, degraded)
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var trip domain.Trip
	if err := json.NewDecoder(r.Body).Decode(&trip); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.planner.CreateTrip(r.Context(), trip)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		if errors.Is(err, domain.ErrStorageQuota) {
			writeJSON(w, http.StatusInternalServerError, storageBody("local storage is full"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusCreated, created, false)
}

// UpdateTrip handles PUT /api/trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	var update domain.TripUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	updated, err := s.planner.UpdateTrip(r.Context(), id, update)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		if errors.Is(err, domain.ErrStorageQuota) {
			writeJSON(w, http.StatusInternalServerError, storageBody("local storage is full"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, updated, false)
}

// DeleteTrip handles DELETE /api/trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := tripID(w, r)
	if !ok {
		return
	}

	if err := s.planner.DeleteTrip(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, notFoundBody("trip not found"))
			return
		}
		s.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// tripID parses the {id} path parameter, writing a 422 on failure.
func tripID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid trip id"))
		return uuid.Nil, false
	}
	return id, true
}
