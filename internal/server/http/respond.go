package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/reportvault/internal/common"
)

// M is a shorthand for ad-hoc JSON payloads.
type M map[string]any

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeServiceError translates the error taxonomy into an HTTP
// response. Handlers intercept the kinds whose message the API pins
// per resource (not-found, forbidden) before falling through to here.
func (s *HTTPServer) writeServiceError(w http.ResponseWriter, err error) {
	var verr *common.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, M{"errors": verr.Messages})
	case errors.Is(err, common.ErrorDuplicateEmail):
		writeJSON(w, http.StatusBadRequest, M{"error": "Email already in use"})
	case errors.Is(err, common.ErrorInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, M{"msg": "Invalid email or password"})
	case errors.Is(err, common.ErrorUnauthenticated), errors.Is(err, common.ErrorInvalidToken):
		writeJSON(w, http.StatusUnauthorized, M{"msg": "User not logged in"})
	case errors.Is(err, common.ErrorForbidden):
		writeJSON(w, http.StatusForbidden, M{"msg": "Forbidden"})
	case errors.Is(err, common.ErrorNotFound):
		writeJSON(w, http.StatusNotFound, M{"msg": "Not found"})
	default:
		s.writeInternalError(w, err)
	}
}

// writeInternalError reports an unexpected failure. The concrete error
// text is suppressed in production.
func (s *HTTPServer) writeInternalError(w http.ResponseWriter, err error) {
	msg := "Internal Server Error"
	if !s.production && err != nil {
		msg = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, M{"error": msg})
}

// decodeJSON decodes a request body into dst, reporting a 400 on
// malformed input. Returns false when a response was already written.
func (s *HTTPServer) decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, M{"error": "Invalid JSON body"})
		return false
	}
	return true
}
