package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

func historyOf(vecs ...models.Vector) []models.StateRecord {
	base := time.Date(2026, time.January, 1, 8, 0, 0, 0, time.UTC)
	records := make([]models.StateRecord, len(vecs))
	for i, vec := range vecs {
		records[i] = models.StateRecord{
			UserID:    "u-1",
			Vector:    vec,
			Wellbeing: vec.Wellbeing(),
			Phase:     DeterminePhase(vec),
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}
	return records
}

func TestTrendsInsufficientHistory(t *testing.T) {
	svc := newService()

	if _, err := svc.Trends(nil); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("no records: error = %v", err)
	}

	one := historyOf(models.PredefinedVectors["flow"])
	if _, err := svc.Trends(one); !errors.Is(err, ErrInsufficientHistory) {
		t.Errorf("single record: error = %v", err)
	}
}

func TestTrendsImproving(t *testing.T) {
	svc := newService()

	records := historyOf(models.PredefinedVectors["burnout"], models.PredefinedVectors["flow"])
	report, err := svc.Trends(records)
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if report.UserID != "u-1" {
		t.Errorf("user = %q", report.UserID)
	}
	if report.TotalStates != 2 || report.AnalyzedStates != 2 {
		t.Errorf("counts = %d/%d, want 2/2", report.TotalStates, report.AnalyzedStates)
	}
	if report.CurrentWellbeing != 0.85 {
		t.Errorf("current wellbeing = %v, want 0.85", report.CurrentWellbeing)
	}
	if report.WellbeingTrend != 0.65 {
		t.Errorf("wellbeing trend = %v, want 0.65", report.WellbeingTrend)
	}
	if report.WellbeingDirection != WellbeingImproving {
		t.Errorf("direction = %q, want improving", report.WellbeingDirection)
	}

	wantDirections := map[string]string{
		"v": TrendFalling,
		"R": TrendFalling,
		"r": TrendRising,
		"C": TrendRising,
		"S": TrendFalling,
	}
	for key, want := range wantDirections {
		if got := report.DimensionDirections[key]; got != want {
			t.Errorf("direction[%s] = %q, want %q", key, got, want)
		}
	}
	if report.DimensionTrends["C"] != 0.8 {
		t.Errorf("trend[C] = %v, want 0.8", report.DimensionTrends["C"])
	}

	wantInsights := []string{
		"Overall wellbeing is improving",
		"Entropy decreasing - finding more clarity and order",
		"Connection/resonance improving",
	}
	if len(report.Insights) != len(wantInsights) {
		t.Fatalf("insights = %v", report.Insights)
	}
	for i := range wantInsights {
		if report.Insights[i] != wantInsights[i] {
			t.Errorf("insight %d = %q, want %q", i, report.Insights[i], wantInsights[i])
		}
	}
}

func TestTrendsDeclining(t *testing.T) {
	svc := newService()

	records := historyOf(models.PredefinedVectors["flow"], models.PredefinedVectors["burnout"])
	report, err := svc.Trends(records)
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if report.WellbeingDirection != WellbeingDeclining {
		t.Errorf("direction = %q, want declining", report.WellbeingDirection)
	}
	wantInsights := []string{
		"Overall wellbeing is declining - may need intervention",
		"Entropy increasing - life becoming more chaotic",
		"Becoming more disconnected - may need social support",
	}
	if len(report.Insights) != len(wantInsights) {
		t.Fatalf("insights = %v", report.Insights)
	}
	for i := range wantInsights {
		if report.Insights[i] != wantInsights[i] {
			t.Errorf("insight %d = %q, want %q", i, report.Insights[i], wantInsights[i])
		}
	}
}

func TestTrendsStable(t *testing.T) {
	svc := newService()

	flow := models.PredefinedVectors["flow"]
	report, err := svc.Trends(historyOf(flow, flow))
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if report.WellbeingDirection != WellbeingSteady {
		t.Errorf("direction = %q, want steady", report.WellbeingDirection)
	}
	for _, key := range models.ComponentKeys {
		if got := report.DimensionDirections[key]; got != TrendStable {
			t.Errorf("direction[%s] = %q, want stable", key, got)
		}
	}
	if len(report.Insights) != 0 {
		t.Errorf("insights = %v, want none", report.Insights)
	}
}

func TestTrendsDeadZone(t *testing.T) {
	svc := newService()

	// A 0.1 move sits inside the dead zone; 0.15 does not
	first := models.Vector{Velocity: 0.4, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5}
	last := models.Vector{Velocity: 0.5, Resistance: 0.5, Resonance: 0.65, Capacity: 0.5, Entropy: 0.5}
	report, err := svc.Trends(historyOf(first, last))
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if got := report.DimensionDirections["v"]; got != TrendStable {
		t.Errorf("direction[v] = %q, want stable", got)
	}
	if got := report.DimensionDirections["r"]; got != TrendRising {
		t.Errorf("direction[r] = %q, want rising", got)
	}
}

func TestTrendsSlopeIgnoresMiddle(t *testing.T) {
	svc := newService()

	mk := func(v float64) models.Vector {
		return models.Vector{Velocity: v, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5}
	}
	report, err := svc.Trends(historyOf(mk(0.5), mk(0.9), mk(0.55)))
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if report.DimensionTrends["v"] != 0.05 {
		t.Errorf("trend[v] = %v, want 0.05", report.DimensionTrends["v"])
	}
	if report.DimensionDirections["v"] != TrendStable {
		t.Errorf("direction[v] = %q, want stable", report.DimensionDirections["v"])
	}
}

func TestTrajectoryTail(t *testing.T) {
	svc := newService()

	var vecs []models.Vector
	for i := 1; i <= 7; i++ {
		vecs = append(vecs, models.Vector{Velocity: float64(i) / 10, Resistance: 0.5, Resonance: 0.5, Capacity: 0.5, Entropy: 0.5})
	}
	report, err := svc.Trends(historyOf(vecs...))
	if err != nil {
		t.Fatalf("Trends: %v", err)
	}

	if len(report.Trajectory) != trajectoryTail {
		t.Fatalf("trajectory = %d vectors, want %d", len(report.Trajectory), trajectoryTail)
	}
	if report.Trajectory[0] != vecs[2] {
		t.Errorf("trajectory starts at %v, want %v", report.Trajectory[0], vecs[2])
	}
	if report.Trajectory[4] != vecs[6] {
		t.Errorf("trajectory ends at %v, want %v", report.Trajectory[4], vecs[6])
	}
}
