package engine

import (
	"math"
	"sort"
	"strings"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// Difficulty labels bucketed by distance
const (
	DifficultyEasy        = "easy"
	DifficultyModerate    = "moderate"
	DifficultyChallenging = "challenging"
	DifficultyProfound    = "profound"
)

// Distance thresholds for difficulty buckets
const (
	easyMaxDistance        = 0.5
	moderateMaxDistance    = 1.0
	challengingMaxDistance = 1.5
)

// minStepChange filters out negligible per-dimension moves
const minStepChange = 0.1

// trivialTolerance below which current and target count as the same state
const trivialTolerance = 1e-9

// waypointCount maps difficulty to the number of interpolated waypoints
var waypointCount = map[string]int{
	DifficultyEasy:        3,
	DifficultyModerate:    4,
	DifficultyChallenging: 5,
	DifficultyProfound:    7,
}

// dimensionActions maps a dimension key and direction to a concrete practice
var dimensionActions = map[string]map[string]string{
	"v": {
		"increase": "Engage in energizing activity, set deadlines, create momentum",
		"decrease": "Practice slowing down, meditation, intentional pauses",
	},
	"R": {
		"increase": "Engage with challenging material, face fears",
		"decrease": "Release resistance through acceptance, breathwork, or somatic practices",
	},
	"r": {
		"increase": "Connect with others, practice empathy, find your tribe",
		"decrease": "Create boundaries, practice solitude, disconnect from draining relationships",
	},
	"C": {
		"increase": "Rest, restore energy, eat well, sleep, reduce commitments",
		"decrease": "Engage capacity through challenge and growth",
	},
	"S": {
		"increase": "Embrace uncertainty, explore chaos, try new things",
		"decrease": "Organize, clarify, create systems, write things down",
	},
}

// ResolveTarget maps a state name to its vector. Predefined state names
// are checked first, then catalog terms; both are case-insensitive.
func (s *Service) ResolveTarget(name string) (models.Vector, error) {
	if vec, ok := models.PredefinedVectors[strings.ToLower(name)]; ok {
		return vec, nil
	}
	entry, err := s.catalog.Get(name)
	if err != nil {
		return models.Vector{}, err
	}
	return entry.Vector, nil
}

// Plan builds a transformation plan from the current state toward a
// named target state
func (s *Service) Plan(current models.Vector, targetName string) (models.TransformationPlan, error) {
	target, err := s.ResolveTarget(targetName)
	if err != nil {
		return models.TransformationPlan{}, err
	}
	return s.PlanVector(current, target)
}

// PlanVector builds a transformation plan between two explicit vectors
func (s *Service) PlanVector(current, target models.Vector) (models.TransformationPlan, error) {
	if err := current.Validate(); err != nil {
		return models.TransformationPlan{}, err
	}
	if err := target.Validate(); err != nil {
		return models.TransformationPlan{}, err
	}

	distance := current.DistanceTo(target)
	delta := deltaMap(current, target)

	if distance < trivialTolerance {
		return models.TransformationPlan{
			CurrentState:        current,
			TargetState:         target,
			Delta:               delta,
			Distance:            0,
			EstimatedDifficulty: DifficultyEasy,
			Waypoints: []models.Waypoint{
				{Vector: target, Progress: 1},
			},
			Note: "already at target state - no transformation needed",
		}, nil
	}

	difficulty := estimateDifficulty(distance)

	return models.TransformationPlan{
		CurrentState:        current,
		TargetState:         target,
		Delta:               delta,
		Distance:            models.Round3(distance),
		EstimatedDifficulty: difficulty,
		Steps:               transformationSteps(current, target),
		Waypoints:           interpolate(current, target, waypointCount[difficulty]),
	}, nil
}

func deltaMap(current, target models.Vector) map[string]float64 {
	cur, tgt := current.Components(), target.Components()
	delta := make(map[string]float64, len(models.ComponentKeys))
	for i, key := range models.ComponentKeys {
		delta[key] = models.Round3(tgt[i] - cur[i])
	}
	return delta
}

func estimateDifficulty(distance float64) string {
	switch {
	case distance < easyMaxDistance:
		return DifficultyEasy
	case distance < moderateMaxDistance:
		return DifficultyModerate
	case distance < challengingMaxDistance:
		return DifficultyChallenging
	default:
		return DifficultyProfound
	}
}

// transformationSteps orders per-dimension moves by impact, dropping
// changes below minStepChange
func transformationSteps(current, target models.Vector) []models.TransformationStep {
	cur, tgt := current.Components(), target.Components()

	type change struct {
		key   string
		delta float64
	}
	changes := make([]change, len(models.ComponentKeys))
	for i, key := range models.ComponentKeys {
		changes[i] = change{key: key, delta: tgt[i] - cur[i]}
	}

	// Stable sort keeps canonical key order for equal magnitudes
	sort.SliceStable(changes, func(i, j int) bool {
		return math.Abs(changes[i].delta) > math.Abs(changes[j].delta)
	})

	var steps []models.TransformationStep
	for _, ch := range changes {
		if math.Abs(ch.delta) < minStepChange {
			continue
		}
		direction := "increase"
		if ch.delta < 0 {
			direction = "decrease"
		}
		steps = append(steps, models.TransformationStep{
			Dimension: ch.key,
			Change:    models.Round3(ch.delta),
			Action:    dimensionActions[ch.key][direction],
		})
	}
	return steps
}

// interpolate produces n waypoints on the straight line from current to
// target. The final waypoint is the target itself; every waypoint is
// tagged with the dimension shifting most on each leg.
func interpolate(current, target models.Vector, n int) []models.Waypoint {
	if n < 1 {
		n = 1
	}

	cur, tgt := current.Components(), target.Components()
	focus := dominantShift(cur, tgt)

	waypoints := make([]models.Waypoint, n)
	for i := 1; i <= n; i++ {
		var vec models.Vector
		if i == n {
			vec = target
		} else {
			t := float64(i) / float64(n)
			var comps [5]float64
			for j := range cur {
				comps[j] = cur[j] + t*(tgt[j]-cur[j])
			}
			vec = models.FromComponents(comps)
		}
		waypoints[i-1] = models.Waypoint{
			Vector:   vec,
			Focus:    focus,
			Progress: models.Round3(float64(i) / float64(n)),
		}
	}
	return waypoints
}

// dominantShift names the dimension with the largest absolute move
func dominantShift(cur, tgt [5]float64) string {
	best, bestAbs := models.ComponentKeys[0], 0.0
	for i, key := range models.ComponentKeys {
		if abs := math.Abs(tgt[i] - cur[i]); abs > bestAbs {
			best, bestAbs = key, abs
		}
	}
	return best
}
