package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// TransformRequest describes the current state either as text or as a
// vector, and the target either by catalog/predefined name or as a
// vector.
type TransformRequest struct {
	CurrentDescription string         `json:"current_description,omitempty"`
	CurrentVector      *models.Vector `json:"current_vector,omitempty"`
	TargetState        string         `json:"target_state,omitempty"`
	TargetVector       *models.Vector `json:"target_vector,omitempty"`
	UserID             string         `json:"user_id,omitempty"`
}

// TransformResponse wraps the plan with the request context
type TransformResponse struct {
	UserID             string                    `json:"user_id"`
	CurrentDescription string                    `json:"current_description,omitempty"`
	TargetState        string                    `json:"target_state,omitempty"`
	Plan               models.TransformationPlan `json:"plan"`
	Timestamp          time.Time                 `json:"timestamp"`
}

func (s *Server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var req TransformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var current models.Vector
	switch {
	case req.CurrentVector != nil:
		current = *req.CurrentVector
	case req.CurrentDescription != "":
		vec, err := s.engine.Vectorize(r.Context(), req.CurrentDescription)
		if err != nil {
			s.respondServiceError(w, err, "failed to vectorize current state")
			return
		}
		current = vec
	default:
		respondError(w, http.StatusBadRequest, "current_description or current_vector is required")
		return
	}

	var (
		plan models.TransformationPlan
		err  error
	)
	switch {
	case req.TargetVector != nil:
		plan, err = s.engine.PlanVector(current, *req.TargetVector)
	case req.TargetState != "":
		plan, err = s.engine.Plan(current, req.TargetState)
	default:
		respondError(w, http.StatusBadRequest, "target_state or target_vector is required")
		return
	}
	if err != nil {
		s.respondServiceError(w, err, "transformation failed")
		return
	}

	respondJSON(w, http.StatusOK, TransformResponse{
		UserID:             s.userID(r, req.UserID),
		CurrentDescription: req.CurrentDescription,
		TargetState:        req.TargetState,
		Plan:               plan,
		Timestamp:          time.Now().UTC(),
	})
}
