package api

import (
	"net/http"
	"strconv"

	"github.com/sinagolchin/SYNTHIUM/internal/validation"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// HistoryResponse lists a user's recent states oldest first
type HistoryResponse struct {
	UserID  string               `json:"user_id"`
	Total   int                  `json:"total"`
	Records []models.StateRecord `json:"records"`
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	userID := s.userID(r, r.URL.Query().Get("user_id"))

	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	records, err := s.store.Recent(r.Context(), userID, limit)
	if err != nil {
		s.logger.Error("history read failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	respondJSON(w, http.StatusOK, HistoryResponse{
		UserID:  userID,
		Total:   len(records),
		Records: records,
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	userID := s.userID(r, r.URL.Query().Get("user_id"))

	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "json"
	}
	if format != "json" && format != "csv" {
		respondError(w, http.StatusBadRequest, "format must be json or csv")
		return
	}

	records, err := s.store.Recent(r.Context(), userID, limit)
	if err != nil {
		s.logger.Error("history read failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	switch format {
	case "csv":
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="synthium_history.csv"`)
		err = validation.ExportCSV(w, records)
	default:
		w.Header().Set("Content-Type", "application/json")
		err = validation.ExportJSON(w, records)
	}
	if err != nil {
		s.logger.Error("export failed", "user_id", userID, "format", format, "error", err)
	}
}

// queryLimit parses an optional non-negative limit query parameter. On
// a bad value it writes the error response and reports false.
func queryLimit(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		respondError(w, http.StatusBadRequest, "invalid limit")
		return 0, false
	}
	return limit, true
}
