package engine

import (
	"context"
	"fmt"
	"sort"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/internal/embeddings"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// DefaultTopK is the number of nearest phenomena returned when the
// caller does not ask for a specific count
const DefaultTopK = 3

// Phase thresholds, checked in priority order: dissolution, then
// transcendence, then integration, then awakening as the default
const (
	dissolutionMaxVelocity   = 0.2
	dissolutionMaxResistance = 0.2
	dissolutionMinResonance  = 0.8

	transcendenceMaxEntropy   = 0.3
	transcendenceMinCapacity  = 0.7
	transcendenceMinResonance = 0.7

	integrationMaxEntropy   = 0.5
	integrationMinCapacity  = 0.5
	integrationMinResonance = 0.5
)

// Single-dimension outlier thresholds for insight templates
const (
	highVelocity   = 0.8
	lowVelocity    = 0.2
	highResistance = 0.7
	lowResistance  = 0.3
	highResonance  = 0.7
	lowResonance   = 0.3
	lowCapacity    = 0.3
	highCapacity   = 0.8
	highEntropy    = 0.7
	lowEntropy     = 0.3
)

// Vectorizer turns a state description into a consciousness vector
type Vectorizer interface {
	Project(ctx context.Context, text string) (models.Vector, error)
}

// Service analyzes consciousness vectors against the phenomenon catalog
type Service struct {
	catalog    *catalog.Catalog
	vectorizer Vectorizer
}

// NewService creates an analysis service
func NewService(cat *catalog.Catalog, vectorizer Vectorizer) *Service {
	return &Service{catalog: cat, vectorizer: vectorizer}
}

// Catalog returns the catalog the service analyzes against
func (s *Service) Catalog() *catalog.Catalog {
	return s.catalog
}

// Analyze scores a vector and relates it to the catalog. topK caps the
// similar-phenomena list; values <= 0 fall back to DefaultTopK.
func (s *Service) Analyze(vec models.Vector, topK int) (models.StateAnalysis, error) {
	if err := vec.Validate(); err != nil {
		return models.StateAnalysis{}, err
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	return models.StateAnalysis{
		Vector:           vec,
		WellbeingScore:   models.Round3(vec.Wellbeing()),
		Phase:            DeterminePhase(vec),
		Stability:        models.Round3(vec.Stability()),
		SimilarPhenomena: s.nearest(vec, topK),
		Insights:         insights(vec),
		Recommendations:  recommendations(vec),
	}, nil
}

// Vectorize projects a description into a consciousness vector
func (s *Service) Vectorize(ctx context.Context, text string) (models.Vector, error) {
	if s.vectorizer == nil {
		return models.Vector{}, fmt.Errorf("%w: no vectorizer configured", embeddings.ErrUnavailable)
	}
	return s.vectorizer.Project(ctx, text)
}

// AnalyzeText projects a description and analyzes the result
func (s *Service) AnalyzeText(ctx context.Context, text string, topK int) (models.StateAnalysis, error) {
	vec, err := s.Vectorize(ctx, text)
	if err != nil {
		return models.StateAnalysis{}, err
	}
	return s.Analyze(vec, topK)
}

// DeterminePhase classifies a vector into its evolution phase. The
// first matching rule wins.
func DeterminePhase(vec models.Vector) string {
	// Near-zero movement and resistance with high resonance
	if vec.Velocity < dissolutionMaxVelocity &&
		vec.Resistance < dissolutionMaxResistance &&
		vec.Resonance > dissolutionMinResonance {
		return models.PhaseDissolution
	}

	// Low entropy, high capacity and resonance
	if vec.Entropy < transcendenceMaxEntropy &&
		vec.Capacity > transcendenceMinCapacity &&
		vec.Resonance > transcendenceMinResonance {
		return models.PhaseTranscendence
	}

	// Balanced, moderate chaos, decent capacity
	if vec.Entropy < integrationMaxEntropy &&
		vec.Capacity > integrationMinCapacity &&
		vec.Resonance > integrationMinResonance {
		return models.PhaseIntegration
	}

	return models.PhaseAwakening
}

// nearest ranks catalog entries by Euclidean distance ascending; equal
// distances keep catalog insertion order.
func (s *Service) nearest(vec models.Vector, k int) []models.SimilarPhenomenon {
	entries := s.catalog.All()

	type scored struct {
		entry    models.Phenomenon
		distance float64
	}
	ranked := make([]scored, len(entries))
	for i, p := range entries {
		ranked[i] = scored{entry: p, distance: vec.DistanceTo(p.Vector)}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]models.SimilarPhenomenon, k)
	for i := 0; i < k; i++ {
		out[i] = models.SimilarPhenomenon{
			Phenomenon:  ranked[i].entry.Term,
			Similarity:  models.Round3(vec.SimilarityTo(ranked[i].entry.Vector)),
			Description: ranked[i].entry.Description,
		}
	}
	return out
}

func insights(vec models.Vector) []string {
	var out []string

	if vec.Velocity > highVelocity {
		out = append(out, "High velocity detected - you may be rushing or in urgency mode")
	} else if vec.Velocity < lowVelocity {
		out = append(out, "Very low velocity - experiencing stuckness or paralysis")
	}

	if vec.Resistance > highResistance {
		out = append(out, "Significant resistance present - friction or trauma blocking flow")
	} else if vec.Resistance < lowResistance {
		out = append(out, "Low resistance - experiencing ease and acceptance")
	}

	if vec.Resonance > highResonance {
		out = append(out, "Strong resonance - feeling connected and in tune")
	} else if vec.Resonance < lowResonance {
		out = append(out, "Low resonance - experiencing disconnection or isolation")
	}

	if vec.Capacity < lowCapacity {
		out = append(out, "Depleted capacity - need for rest and restoration")
	} else if vec.Capacity > highCapacity {
		out = append(out, "High capacity - energized and ready for action")
	}

	if vec.Entropy > highEntropy {
		out = append(out, "High entropy - experiencing confusion or chaos")
	} else if vec.Entropy < lowEntropy {
		out = append(out, "Low entropy - clarity and order present")
	}

	return out
}

func recommendations(vec models.Vector) []string {
	var out []string

	// Rushing against resistance creates friction
	if vec.Velocity > 0.7 && vec.Resistance > 0.6 {
		out = append(out, "Consider slowing down - rushing against resistance creates friction")
	}

	// Low capacity plus high entropy needs stabilization
	if vec.Capacity < 0.4 && vec.Entropy > 0.6 {
		out = append(out, "Focus on rest and simplification to restore capacity")
	}

	if vec.Resonance < 0.4 {
		out = append(out, "Seek connection - reach out, share, or practice self-compassion")
	}

	if vec.Entropy > 0.7 {
		out = append(out, "Create structure - write, organize, or clarify priorities")
	}

	// Idle capacity
	if vec.Velocity < 0.3 && vec.Capacity > 0.7 {
		out = append(out, "You have capacity available - consider what you're avoiding")
	}

	if vec.Entropy < transcendenceMaxEntropy &&
		vec.Capacity > transcendenceMinCapacity &&
		vec.Resonance > transcendenceMinResonance {
		out = append(out, "You're in a powerful state - this is a moment for deep work or presence")
	}

	if len(out) == 0 {
		out = append(out, "Continue current path - system is balanced")
	}

	return out
}
