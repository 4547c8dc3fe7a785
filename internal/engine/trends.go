package engine

import (
	"errors"
	"fmt"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// ErrInsufficientHistory indicates fewer than 2 records were available
var ErrInsufficientHistory = errors.New("insufficient history")

// Movement classification labels
const (
	TrendRising  = "rising"
	TrendFalling = "falling"
	TrendStable  = "stable"

	WellbeingImproving = "improving"
	WellbeingDeclining = "declining"
	WellbeingSteady    = "steady"
)

// trendDeadZone is the half-width around zero inside which a slope
// counts as stable
const trendDeadZone = 0.1

// trendInsightThreshold gates the entropy and resonance insight lines
const trendInsightThreshold = 0.2

// trajectoryTail is how many recent vectors the report echoes back
const trajectoryTail = 5

// Trends computes per-dimension and wellbeing movement over a
// chronological slice of records (oldest first). The slope is the last
// value minus the first; callers control the window they pass in.
func (s *Service) Trends(records []models.StateRecord) (models.TrendReport, error) {
	if len(records) < 2 {
		return models.TrendReport{}, fmt.Errorf("%w: need at least 2 records, have %d", ErrInsufficientHistory, len(records))
	}

	first := records[0].Vector
	last := records[len(records)-1].Vector

	firstComps, lastComps := first.Components(), last.Components()
	trends := make(map[string]float64, len(models.ComponentKeys))
	directions := make(map[string]string, len(models.ComponentKeys))
	for i, key := range models.ComponentKeys {
		slope := lastComps[i] - firstComps[i]
		trends[key] = models.Round3(slope)
		directions[key] = classify(slope, TrendRising, TrendFalling, TrendStable)
	}

	currentWellbeing := last.Wellbeing()
	wellbeingTrend := currentWellbeing - first.Wellbeing()

	report := models.TrendReport{
		UserID:              records[0].UserID,
		TotalStates:         len(records),
		AnalyzedStates:      len(records),
		CurrentWellbeing:    models.Round3(currentWellbeing),
		WellbeingTrend:      models.Round3(wellbeingTrend),
		WellbeingDirection:  classify(wellbeingTrend, WellbeingImproving, WellbeingDeclining, WellbeingSteady),
		DimensionTrends:     trends,
		DimensionDirections: directions,
		Insights:            trendInsights(wellbeingTrend, trends),
		Trajectory:          tailVectors(records, trajectoryTail),
	}
	return report, nil
}

func classify(slope float64, up, down, flat string) string {
	switch {
	case slope > trendDeadZone:
		return up
	case slope < -trendDeadZone:
		return down
	default:
		return flat
	}
}

func trendInsights(wellbeingTrend float64, trends map[string]float64) []string {
	var out []string

	if wellbeingTrend > trendDeadZone {
		out = append(out, "Overall wellbeing is improving")
	} else if wellbeingTrend < -trendDeadZone {
		out = append(out, "Overall wellbeing is declining - may need intervention")
	}

	if trends["S"] > trendInsightThreshold {
		out = append(out, "Entropy increasing - life becoming more chaotic")
	} else if trends["S"] < -trendInsightThreshold {
		out = append(out, "Entropy decreasing - finding more clarity and order")
	}

	if trends["r"] > trendInsightThreshold {
		out = append(out, "Connection/resonance improving")
	} else if trends["r"] < -trendInsightThreshold {
		out = append(out, "Becoming more disconnected - may need social support")
	}

	return out
}

func tailVectors(records []models.StateRecord, n int) []models.Vector {
	start := len(records) - n
	if start < 0 {
		start = 0
	}
	vectors := make([]models.Vector, 0, len(records)-start)
	for _, rec := range records[start:] {
		vectors = append(vectors, rec.Vector)
	}
	return vectors
}
