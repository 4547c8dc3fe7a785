package api

import (
	"net/http"
)

// defaultTrendWindow is how many recent states feed the trend analysis
// when the caller does not ask for a specific window
const defaultTrendWindow = 10

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request) {
	userID := s.userID(r, r.URL.Query().Get("user_id"))

	limit, ok := queryLimit(w, r)
	if !ok {
		return
	}
	if limit == 0 {
		limit = defaultTrendWindow
	}

	count, err := s.store.Count(r.Context(), userID)
	if err != nil {
		s.logger.Error("history count failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read history")
		return
	}
	if count == 0 {
		respondError(w, http.StatusNotFound, "no history found for user "+userID)
		return
	}

	records, err := s.store.Recent(r.Context(), userID, limit)
	if err != nil {
		s.logger.Error("history read failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to read history")
		return
	}

	report, err := s.engine.Trends(records)
	if err != nil {
		s.respondServiceError(w, err, "trend analysis failed")
		return
	}
	report.TotalStates = count

	respondJSON(w, http.StatusOK, report)
}
