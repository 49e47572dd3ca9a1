package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// envelope is the success body for every data-carrying response. The
// degraded flag tells the UI to show its offline indicator; the operation
// itself always appears to succeed.
type envelope struct {
	Data     any  `json:"data"`
	Degraded bool `json:"degraded"`
}

// errorBody is the error response shape shared by all endpoints.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. Serialization failures are
// swallowed — the status line has already been written by then.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeData writes the standard success envelope.
func writeData(w http.ResponseWriter, status int, data any, degraded bool) {
	writeJSON(w, status, envelope{Data: data, Degraded: degraded})
}

// notFoundBody returns an errorBody for a missing resource.
// The caller supplies the human-readable message (e.g. "trip not found")
// because the handler is the layer that knows what was being looked up.
func notFoundBody(message string) errorBody {
	return errorBody{Error: errorDetail{Code: "not_found", Message: message}}
}

// validationBody returns an errorBody for a domain validation failure,
// extracting the human-readable part from the wrapped sentinel error.
func validationBody(err error) errorBody {
	return errorBody{Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)}}
}

// requestBody returns an errorBody for a bad request rejected before
// reaching the service layer (e.g. missing or malformed body).
func requestBody(message string) errorBody {
	return errorBody{Error: errorDetail{Code: "validation_error", Message: message}}
}

// storageBody returns an errorBody for a backing-store write failure —
// the one failure with no offline fallback.
func storageBody(message string) errorBody {
	return errorBody{Error: errorDetail{Code: "storage_error", Message: message}}
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel
// error, e.g. "service.Planner.CreateTrip: validation error: name is
// required" → "name is required".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	const marker = "validation error: "
	if i := strings.LastIndex(msg, marker); i != -1 {
		return msg[i+len(marker):]
	}
	return msg
}
