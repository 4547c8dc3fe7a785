package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/sinagolchin/SYNTHIUM/internal/engine"
	"github.com/sinagolchin/SYNTHIUM/internal/storage"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// AnalyzeRequest carries a natural-language state description
type AnalyzeRequest struct {
	Text   string `json:"text"`
	UserID string `json:"user_id,omitempty"`
	TopK   int    `json:"top_k,omitempty"`
}

// AnalyzeResponse wraps the analysis with the request context. When the
// store can rank history by distance, SimilarPast holds the nearest
// previously recorded states.
type AnalyzeResponse struct {
	UserID      string               `json:"user_id"`
	Input       string               `json:"input"`
	Analysis    models.StateAnalysis `json:"analysis"`
	Timestamp   time.Time            `json:"timestamp"`
	SimilarPast []models.StateRecord `json:"similar_past,omitempty"`
}

// handleAnalyze projects the description, analyzes it, appends the
// resulting state to the user's history and pushes the analysis to
// websocket subscribers.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if strings.TrimSpace(req.Text) == "" {
		respondError(w, http.StatusBadRequest, "text is required")
		return
	}

	analysis, err := s.engine.AnalyzeText(r.Context(), req.Text, req.TopK)
	if err != nil {
		s.respondServiceError(w, err, "analysis failed")
		return
	}

	userID := s.userID(r, req.UserID)
	resp := AnalyzeResponse{
		UserID:    userID,
		Input:     req.Text,
		Analysis:  analysis,
		Timestamp: time.Now().UTC(),
	}

	// Look up similar past states before the new record lands, so the
	// current state does not match itself.
	if searcher, ok := s.store.(storage.VectorSearcher); ok {
		past, err := searcher.Nearest(r.Context(), userID, analysis.Vector, engine.DefaultTopK)
		if err != nil {
			s.logger.Error("vector search failed", "user_id", userID, "error", err)
		} else {
			resp.SimilarPast = past
		}
	}

	record := &models.StateRecord{
		UserID:    userID,
		Text:      req.Text,
		Vector:    analysis.Vector,
		Wellbeing: analysis.WellbeingScore,
		Phase:     analysis.Phase,
	}
	if err := s.store.Append(r.Context(), record); err != nil {
		s.logger.Error("history append failed", "user_id", userID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to store state")
		return
	}

	s.hub.broadcast(wsFrame{
		Type:      "new_analysis",
		UserID:    userID,
		Data:      &analysis,
		Timestamp: resp.Timestamp,
	})

	respondJSON(w, http.StatusOK, resp)
}
