package engine

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/internal/embeddings"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

type stubVectorizer struct {
	vec models.Vector
	err error
}

func (s stubVectorizer) Project(ctx context.Context, text string) (models.Vector, error) {
	return s.vec, s.err
}

func newService() *Service {
	return NewService(catalog.New(), nil)
}

func TestAnalyzeExample(t *testing.T) {
	svc := newService()

	vec := models.Vector{Velocity: 0.7, Resistance: 0.7, Resonance: 0.3, Capacity: 0.2, Entropy: 0.9}
	analysis, err := svc.Analyze(vec, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.WellbeingScore != 0.23 {
		t.Errorf("wellbeing = %v, want 0.23", analysis.WellbeingScore)
	}
	if analysis.Phase != models.PhaseAwakening {
		t.Errorf("phase = %q, want awakening", analysis.Phase)
	}
}

func TestAnalyzeInvalidVector(t *testing.T) {
	svc := newService()

	_, err := svc.Analyze(models.Vector{Velocity: -1}, 0)
	if !errors.Is(err, models.ErrInvalidVector) {
		t.Errorf("error = %v, want ErrInvalidVector", err)
	}
}

func TestDeterminePhase(t *testing.T) {
	tests := []struct {
		name string
		vec  models.Vector
		want string
	}{
		{"dissolution", models.Vector{Velocity: 0.1, Resistance: 0.1, Resonance: 0.9, Capacity: 1.0, Entropy: 0.0}, models.PhaseDissolution},
		{"transcendence", models.Vector{Velocity: 0.3, Resistance: 0.1, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1}, models.PhaseTranscendence},
		{"integration", models.Vector{Velocity: 0.5, Resistance: 0.3, Resonance: 0.6, Capacity: 0.6, Entropy: 0.4}, models.PhaseIntegration},
		{"awakening", models.Vector{Velocity: 0.7, Resistance: 0.7, Resonance: 0.3, Capacity: 0.2, Entropy: 0.9}, models.PhaseAwakening},
		// Dissolution wins over transcendence when both rule sets match
		{"priority", models.Vector{Velocity: 0.1, Resistance: 0.1, Resonance: 0.9, Capacity: 0.9, Entropy: 0.1}, models.PhaseDissolution},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DeterminePhase(tt.vec); got != tt.want {
				t.Errorf("DeterminePhase() = %q, want %q", got, tt.want)
			}
			// Pure function: repeat classification must agree
			if again := DeterminePhase(tt.vec); again != tt.want {
				t.Errorf("repeat DeterminePhase() = %q, want %q", again, tt.want)
			}
		})
	}
}

func TestNearestRankingStable(t *testing.T) {
	svc := newService()

	flow := models.Vector{Velocity: 0.7, Resistance: 0.2, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1}
	analysis, err := svc.Analyze(flow, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if len(analysis.SimilarPhenomena) != 5 {
		t.Fatalf("similar = %d entries, want 5", len(analysis.SimilarPhenomena))
	}
	if analysis.SimilarPhenomena[0].Phenomenon != "Flow State" {
		t.Errorf("nearest = %q, want Flow State", analysis.SimilarPhenomena[0].Phenomenon)
	}
	if analysis.SimilarPhenomena[0].Similarity != 1 {
		t.Errorf("self-similarity = %v, want 1", analysis.SimilarPhenomena[0].Similarity)
	}
	for i := 1; i < len(analysis.SimilarPhenomena); i++ {
		if analysis.SimilarPhenomena[i].Similarity > analysis.SimilarPhenomena[i-1].Similarity {
			t.Errorf("similarity not non-increasing at %d", i)
		}
	}
}

func TestNearestTieBreakInsertionOrder(t *testing.T) {
	svc := newService()

	// Sakshatakara and This share the same vector; catalog order decides
	vec := models.Vector{Velocity: 0, Resistance: 0, Resonance: 1, Capacity: 1, Entropy: 0}
	analysis, err := svc.Analyze(vec, 2)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	if analysis.SimilarPhenomena[0].Phenomenon != "Sakshatakara" {
		t.Errorf("first = %q, want Sakshatakara", analysis.SimilarPhenomena[0].Phenomenon)
	}
	if analysis.SimilarPhenomena[1].Phenomenon != "This" {
		t.Errorf("second = %q, want This", analysis.SimilarPhenomena[1].Phenomenon)
	}
}

func TestAnalyzeTopK(t *testing.T) {
	svc := newService()
	vec := models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5}

	analysis, err := svc.Analyze(vec, 0)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analysis.SimilarPhenomena) != DefaultTopK {
		t.Errorf("default topK = %d entries, want %d", len(analysis.SimilarPhenomena), DefaultTopK)
	}

	analysis, err = svc.Analyze(vec, 100)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if len(analysis.SimilarPhenomena) != svc.Catalog().Len() {
		t.Errorf("oversized topK = %d entries, want %d", len(analysis.SimilarPhenomena), svc.Catalog().Len())
	}
}

func TestInsights(t *testing.T) {
	got := insights(models.Vector{Velocity: 0.9, Resistance: 0.8, Resonance: 0.2, Capacity: 0.2, Entropy: 0.8})

	want := []string{
		"High velocity detected - you may be rushing or in urgency mode",
		"Significant resistance present - friction or trauma blocking flow",
		"Low resonance - experiencing disconnection or isolation",
		"Depleted capacity - need for rest and restoration",
		"High entropy - experiencing confusion or chaos",
	}
	if len(got) != len(want) {
		t.Fatalf("insights = %v, want %d lines", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("insight %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestInsightsNeutralVector(t *testing.T) {
	if got := insights(models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5}); len(got) != 0 {
		t.Errorf("neutral vector insights = %v, want none", got)
	}
}

func TestRecommendationsBalanced(t *testing.T) {
	got := recommendations(models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5})

	if len(got) != 1 || got[0] != "Continue current path - system is balanced" {
		t.Errorf("recommendations = %v, want balanced fallback only", got)
	}
}

func TestRecommendationsCombos(t *testing.T) {
	got := recommendations(models.Vector{Velocity: 0.8, Resistance: 0.7, Resonance: 0.3, Capacity: 0.3, Entropy: 0.8})

	want := []string{
		"Consider slowing down - rushing against resistance creates friction",
		"Focus on rest and simplification to restore capacity",
		"Seek connection - reach out, share, or practice self-compassion",
		"Create structure - write, organize, or clarify priorities",
	}
	if len(got) != len(want) {
		t.Fatalf("recommendations = %v, want %d lines", got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recommendation %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRecommendationPowerfulState(t *testing.T) {
	got := recommendations(models.Vector{Velocity: 0.3, Resistance: 0.1, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1})

	if len(got) != 1 {
		t.Fatalf("recommendations = %v, want exactly 1", got)
	}
	if got[0] != "You're in a powerful state - this is a moment for deep work or presence" {
		t.Errorf("recommendation = %q", got[0])
	}
}

func TestAnalyzeText(t *testing.T) {
	vec := models.Vector{Velocity: 0.7, Resistance: 0.2, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1}
	svc := NewService(catalog.New(), stubVectorizer{vec: vec})

	analysis, err := svc.AnalyzeText(context.Background(), "in the zone", 3)
	if err != nil {
		t.Fatalf("AnalyzeText: %v", err)
	}
	if analysis.Vector != vec {
		t.Errorf("vector = %v, want %v", analysis.Vector, vec)
	}
	if math.Abs(analysis.WellbeingScore-0.85) > 1e-9 {
		t.Errorf("wellbeing = %v, want 0.85", analysis.WellbeingScore)
	}
}

func TestAnalyzeTextProjectionFailure(t *testing.T) {
	wantErr := errors.New("embedder down")
	svc := NewService(catalog.New(), stubVectorizer{err: wantErr})

	_, err := svc.AnalyzeText(context.Background(), "anything", 3)
	if !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestVectorizeWithoutVectorizer(t *testing.T) {
	svc := newService()

	_, err := svc.Vectorize(context.Background(), "anything")
	if !errors.Is(err, embeddings.ErrUnavailable) {
		t.Errorf("error = %v, want ErrUnavailable", err)
	}
}
