package catalog

import "github.com/sinagolchin/SYNTHIUM/pkg/models"

// CorePhenomena returns the built-in phenomenon library. Entry order is
// stable and ids are permanent; new entries append.
func CorePhenomena() []models.Phenomenon {
	return []models.Phenomenon{
		{
			ID:          1,
			Term:        "Flow State",
			Description: "Complete absorption in present activity, effortless action",
			Vector:      models.Vector{Velocity: 0.7, Resistance: 0.2, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"peak_experience", "performance", "presence"},
			RelatedTo:   []int{15, 20},
		},
		{
			ID:          2,
			Term:        "Burnout",
			Description: "Exhaustion from prolonged stress, depleted capacity",
			Vector:      models.Vector{Velocity: 0.9, Resistance: 0.8, Resonance: 0.3, Capacity: 0.1, Entropy: 0.8},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"crisis", "depletion", "stress"},
			RelatedTo:   []int{3, 6},
		},
		{
			ID:          3,
			Term:        "Depression",
			Description: "Low energy, disconnection, loss of meaning",
			Vector:      models.Vector{Velocity: 0.1, Resistance: 0.7, Resonance: 0.2, Capacity: 0.2, Entropy: 0.6},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"mental_health", "low_energy", "disconnection"},
			RelatedTo:   []int{2, 7},
		},
		{
			ID:          4,
			Term:        "Anxiety",
			Description: "High mental velocity, future-focused worry, chaos",
			Vector:      models.Vector{Velocity: 0.8, Resistance: 0.6, Resonance: 0.4, Capacity: 0.5, Entropy: 0.8},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"mental_health", "worry", "chaos"},
			RelatedTo:   []int{2, 11},
		},
		{
			ID:          5,
			Term:        "Inner Peace",
			Description: "Deep calm, low resistance, present-centered awareness",
			Vector:      models.Vector{Velocity: 0.3, Resistance: 0.1, Resonance: 0.7, Capacity: 0.8, Entropy: 0.1},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"peace", "meditation", "presence"},
			RelatedTo:   []int{1, 16},
		},
		{
			ID:          6,
			Term:        "Grief",
			Description: "Processing loss, high resistance, low capacity",
			Vector:      models.Vector{Velocity: 0.2, Resistance: 0.8, Resonance: 0.3, Capacity: 0.3, Entropy: 0.7},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"emotion", "loss", "healing"},
			RelatedTo:   []int{3, 8},
		},
		{
			ID:          7,
			Term:        "Apathy",
			Description: "Emotional numbness, disconnection, low velocity",
			Vector:      models.Vector{Velocity: 0.1, Resistance: 0.5, Resonance: 0.1, Capacity: 0.3, Entropy: 0.5},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"disconnection", "numbness"},
			RelatedTo:   []int{3, 6},
		},
		{
			ID:          8,
			Term:        "Anger",
			Description: "High energy directed at resistance, friction",
			Vector:      models.Vector{Velocity: 0.8, Resistance: 0.9, Resonance: 0.4, Capacity: 0.6, Entropy: 0.7},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"emotion", "energy", "resistance"},
			RelatedTo:   []int{4, 6},
		},
		{
			ID:          9,
			Term:        "Joy",
			Description: "High resonance, open flow, elevated energy",
			Vector:      models.Vector{Velocity: 0.6, Resistance: 0.1, Resonance: 0.8, Capacity: 0.9, Entropy: 0.2},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"emotion", "positive", "connection"},
			RelatedTo:   []int{1, 5, 10},
		},
		{
			ID:          10,
			Term:        "Love",
			Description: "Deep resonance, acceptance, connection",
			Vector:      models.Vector{Velocity: 0.5, Resistance: 0.1, Resonance: 0.9, Capacity: 0.8, Entropy: 0.2},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"emotion", "connection", "transcendence"},
			RelatedTo:   []int{5, 9, 16},
		},
		{
			ID:          11,
			Term:        "Confusion",
			Description: "High entropy, unclear direction, scattered energy",
			Vector:      models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.4, Capacity: 0.5, Entropy: 0.9},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"chaos", "uncertainty"},
			RelatedTo:   []int{4, 12},
		},
		{
			ID:          12,
			Term:        "Clarity",
			Description: "Low entropy, clear seeing, organized thought",
			Vector:      models.Vector{Velocity: 0.4, Resistance: 0.2, Resonance: 0.6, Capacity: 0.8, Entropy: 0.1},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"insight", "order", "understanding"},
			RelatedTo:   []int{1, 5, 16},
		},
		{
			ID:          13,
			Term:        "Overwhelm",
			Description: "Capacity exceeded, high chaos, system overload",
			Vector:      models.Vector{Velocity: 0.7, Resistance: 0.7, Resonance: 0.3, Capacity: 0.2, Entropy: 0.9},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"crisis", "chaos", "depletion"},
			RelatedTo:   []int{2, 4, 11},
		},
		{
			ID:          14,
			Term:        "Boredom",
			Description: "Low velocity, disconnection, excess capacity",
			Vector:      models.Vector{Velocity: 0.2, Resistance: 0.3, Resonance: 0.3, Capacity: 0.7, Entropy: 0.4},
			Phase:       models.PhaseAwakening,
			Tags:        []string{"low_energy", "disconnection"},
			RelatedTo:   []int{7, 15},
		},
		{
			ID:          15,
			Term:        "Curiosity",
			Description: "Moderate velocity, openness, seeking resonance",
			Vector:      models.Vector{Velocity: 0.6, Resistance: 0.3, Resonance: 0.6, Capacity: 0.7, Entropy: 0.3},
			Phase:       models.PhaseIntegration,
			Tags:        []string{"exploration", "growth", "openness"},
			RelatedTo:   []int{1, 9, 12},
		},
		{
			ID:          16,
			Term:        "Presence",
			Description: "Here-now awareness, low resistance, harmony",
			Vector:      models.Vector{Velocity: 0.3, Resistance: 0.1, Resonance: 0.7, Capacity: 0.8, Entropy: 0.1},
			Phase:       models.PhaseTranscendence,
			Tags:        []string{"awareness", "meditation", "transcendence"},
			RelatedTo:   []int{5, 10, 12, 17},
		},
		{
			ID:          17,
			Term:        "Witness Consciousness",
			Description: "Pure awareness, observing without attachment",
			Vector:      models.Vector{Velocity: 0.1, Resistance: 0.0, Resonance: 0.8, Capacity: 0.9, Entropy: 0.0},
			Phase:       models.PhaseTranscendence,
			Tags:        []string{"awareness", "meditation", "transcendence", "mystical"},
			RelatedTo:   []int{16, 18, 19},
		},
		{
			ID:          18,
			Term:        "Sakshatakara",
			Description: "Direct realization, dissolution of seeker",
			Vector:      models.Vector{Velocity: 0.0, Resistance: 0.0, Resonance: 1.0, Capacity: 1.0, Entropy: 0.0},
			Phase:       models.PhaseDissolution,
			Tags:        []string{"mystical", "enlightenment", "transcendence"},
			RelatedTo:   []int{17, 19, 20},
		},
		{
			ID:          19,
			Term:        "The Void",
			Description: "Emptiness, no-self, pure potential",
			Vector:      models.Vector{Velocity: 0.0, Resistance: 0.0, Resonance: 0.5, Capacity: 1.0, Entropy: 0.0},
			Phase:       models.PhaseDissolution,
			Tags:        []string{"mystical", "emptiness", "transcendence"},
			RelatedTo:   []int{17, 18},
		},
		{
			ID:          20,
			Term:        "This",
			Description: "The eternal present, only what is",
			Vector:      models.Vector{Velocity: 0.0, Resistance: 0.0, Resonance: 1.0, Capacity: 1.0, Entropy: 0.0},
			Phase:       models.PhaseTranscendence,
			Tags:        []string{"mystical", "presence", "absolute"},
			RelatedTo:   []int{16, 17, 18},
		},
	}
}
