package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/asharma/yatra-planner/backend/internal/domain"
)

// ListReviews handles GET /api/reviews.
// With a ?destination= query parameter the result is the local
// case-insensitive substring match; without it, the full (arbitrated) list.
func (s *Server) ListReviews(w http.ResponseWriter, r *http.Request) {
	if destination := r.URL.Query().Get("destination"); destination != "" {
		reviews := s.planner.ReviewsForDestination(r.Context(), destination)
		writeData(w, http.StatusOK, reviews, false)
		return
	}

	reviews, degraded, err := s.planner.ListReviews(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeData(w, http.StatusOK, reviews, degraded)
}

// CreateReview handles POST /api/reviews.
func (s *Server) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, requestBody("invalid request body"))
		return
	}

	created, err := s.planner.CreateReview(r.Context(), review)
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
