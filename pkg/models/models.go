package models

import (
	"time"
)

// Phases of consciousness evolution, from first contact to full dissolution
const (
	PhaseAwakening     = "awakening"
	PhaseIntegration   = "integration"
	PhaseTranscendence = "transcendence"
	PhaseDissolution   = "dissolution"
)

// Phases lists all valid phase names
var Phases = []string{PhaseAwakening, PhaseIntegration, PhaseTranscendence, PhaseDissolution}

// User represents a registered user
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Phenomenon is a named consciousness state with its prototype vector
type Phenomenon struct {
	ID          int      `json:"id"`
	Term        string   `json:"term"`
	Description string   `json:"description"`
	Vector      Vector   `json:"vector"`
	Phase       string   `json:"phase"`
	Tags        []string `json:"tags"`
	RelatedTo   []int    `json:"related_to"`
}

// StateRecord is one recorded state in a user's history
type StateRecord struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text,omitempty"`
	Vector    Vector    `json:"vector"`
	Wellbeing float64   `json:"wellbeing"`
	Phase     string    `json:"phase"`
	CreatedAt time.Time `json:"created_at"`
}

// SimilarPhenomenon pairs a catalog entry with its similarity to an analyzed vector
type SimilarPhenomenon struct {
	Phenomenon  string  `json:"phenomenon"`
	Similarity  float64 `json:"similarity"`
	Description string  `json:"description"`
}

// StateAnalysis is the full analysis of a single state
type StateAnalysis struct {
	Vector           Vector              `json:"vector"`
	WellbeingScore   float64             `json:"wellbeing_score"`
	Phase            string              `json:"phase"`
	Stability        float64             `json:"stability"`
	SimilarPhenomena []SimilarPhenomenon `json:"similar_phenomena"`
	Insights         []string            `json:"insights"`
	Recommendations  []string            `json:"recommendations"`
}

// TransformationStep is one concrete move along a single dimension
type TransformationStep struct {
	Dimension string  `json:"dimension"`
	Change    float64 `json:"change"`
	Action    string  `json:"action"`
}

// Waypoint is an intermediate state on a transformation path
type Waypoint struct {
	Vector   Vector  `json:"vector"`
	Focus    string  `json:"focus"`
	Progress float64 `json:"progress"`
}

// TransformationPlan describes a staged path between two states
type TransformationPlan struct {
	CurrentState        Vector               `json:"current_state"`
	TargetState         Vector               `json:"target_state"`
	Delta               map[string]float64   `json:"delta"`
	Distance            float64              `json:"distance"`
	EstimatedDifficulty string               `json:"estimated_difficulty"`
	Steps               []TransformationStep `json:"steps"`
	Waypoints           []Waypoint           `json:"waypoints"`
	Note                string               `json:"note,omitempty"`
}

// TrendReport summarizes a user's trajectory over recent states
type TrendReport struct {
	UserID              string             `json:"user_id"`
	TotalStates         int                `json:"total_states"`
	AnalyzedStates      int                `json:"analyzed_states"`
	CurrentWellbeing    float64            `json:"current_wellbeing"`
	WellbeingTrend      float64            `json:"wellbeing_trend"`
	WellbeingDirection  string             `json:"wellbeing_direction"`
	DimensionTrends     map[string]float64 `json:"dimension_trends"`
	DimensionDirections map[string]string  `json:"dimension_directions"`
	Insights            []string           `json:"insights"`
	Trajectory          []Vector           `json:"trajectory"`
}
