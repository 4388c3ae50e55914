package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/reportvault/internal/common"
	"github.com/dmitrijs2005/reportvault/internal/server/models"
	"github.com/gorilla/mux"
)

// uploadRequest is the inbound report document. The raw snapshot rides
// alongside the structured fields and never reaches the database.
type uploadRequest struct {
	models.Report
	Snapshot json.RawMessage `json:"snapshot,omitempty"`
}

func (s *HTTPServer) handleUploadReport(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, M{"msg": "User not logged in"})
		return
	}

	var req uploadRequest
	if !s.decodeJSON(w, r, &req) {
		return
	}

	saved, err := s.reports.Upload(r.Context(), userID, &req.Report, req.Snapshot)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	s.logger.Info(r.Context(), "Report saved", "report_id", saved.ID, "user_id", userID)

	writeJSON(w, http.StatusOK, M{"msg": "Saved file successfully", "file": saved})
}

func (s *HTTPServer) handleReportByID(w http.ResponseWriter, r *http.Request) {

	id := mux.Vars(r)["id"]

	report, err := s.reports.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			writeJSON(w, http.StatusNotFound, M{"msg": "File not found"})
			return
		}
		s.writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (s *HTTPServer) handleUserReports(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, M{"msg": "User not logged in"})
		return
	}

	reports, err := s.reports.ListForUser(r.Context(), userID)
	if err != nil {
		s.writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, M{"files": reports})
}

func (s *HTTPServer) handleDeleteReport(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, M{"msg": "User not logged in"})
		return
	}

	id := mux.Vars(r)["id"]

	err := s.reports.Delete(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, M{"msg": "File not found"})
		case errors.Is(err, common.ErrorForbidden):
			writeJSON(w, http.StatusForbidden, M{"msg": "Unauthorized to delete this file"})
		default:
			s.writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, M{"msg": "File deleted successfully"})
}

func (s *HTTPServer) handleReportSnapshot(w http.ResponseWriter, r *http.Request) {

	userID, ok := userIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, M{"msg": "User not logged in"})
		return
	}

	if !s.reports.SnapshotArchiveEnabled() {
		writeJSON(w, http.StatusNotFound, M{"msg": "Snapshot archive is not configured"})
		return
	}

	id := mux.Vars(r)["id"]

	url, err := s.reports.SnapshotURL(r.Context(), userID, id)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			writeJSON(w, http.StatusNotFound, M{"msg": "File not found"})
		case errors.Is(err, common.ErrorForbidden):
			writeJSON(w, http.StatusForbidden, M{"msg": "Unauthorized to access this file"})
		default:
			s.writeInternalError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, M{"url": url})
}
