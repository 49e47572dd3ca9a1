package handler

import (
	"log/slog"
	"net/http"
)

// GetHealth handles GET /healthz.
// It returns HTTP 200 with {"status":"ok"} when the server is running.
func (s *Server) GetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Reconcile handles POST /api/reconcile: an on-demand replay of the
// mutation log against the remote entity service.
func (s *Server) Reconcile(w http.ResponseWriter, r *http.Request) {
	replayed, err := s.recon.Replay(r.Context())
	if err != nil {
		slog.WarnContext(r.Context(), "on-demand reconciliation failed",
			"replayed", replayed, "error", err)
		writeData(w, http.StatusOK, map[string]any{"replayed": replayed, "pending": true}, true)
		return
	}
	writeData(w, http.StatusOK, map[string]any{"replayed": replayed, "pending": false}, false)
}

// internalError logs err and writes a generic 500 body.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "handler error", "path", r.URL.Path, "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{
		Error: errorDetail{Code: "internal_error", Message: "internal server error"},
	})
}
