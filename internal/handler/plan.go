package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// GeneratePlan handles POST /api/plan.
// The response is always a complete plan; degraded=true tells the UI the
// plan came from the offline generator rather than the AI backend.
func (s *Server) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	var req domain.TripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	plan, degraded, err := s.planner.GeneratePlan(r.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeJSON(w, http.StatusUnprocessableEntity, validationBody(err))
			return
		}
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, plan, degraded)
}
