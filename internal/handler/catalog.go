package handler

import "net/http"

// ListDestinations handles GET /api/destinations.
func (s *Server) ListDestinations(w http.ResponseWriter, r *http.Request) {
	destinations, degraded, err := s.planner.ListDestinations(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, destinations, degraded)
}

// ListPackages handles GET /api/packages.
func (s *Server) ListPackages(w http.ResponseWriter, r *http.Request) {
	packages, degraded, err := s.planner.ListPackages(r.Context())
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, packages, degraded)
}
