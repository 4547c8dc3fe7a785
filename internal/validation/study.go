package validation

import (
	"fmt"
	"math"
	"time"

	"github.com/sinagolchin/SYNTHIUM/internal/catalog"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// Success criteria for a phenomenon validation
const (
	MinVectorCorrelation    = 0.7
	MinPhaseAccuracy        = 0.8
	MinWellbeingCorrelation = 0.6
)

// reviewThreshold flags phenomena whose mapping needs another look
const reviewThreshold = 0.6

// maxFlaggedPhenomena caps how many IDs a recommendation names
const maxFlaggedPhenomena = 5

// Observation is one empirical data point gathered for a phenomenon.
// Any field may be absent; metrics use whatever is present.
type Observation struct {
	Vector    *models.Vector `json:"vector,omitempty"`
	Phase     string         `json:"phase,omitempty"`
	Wellbeing *float64       `json:"wellbeing,omitempty"`
}

// Metrics are the agreement scores between a catalog entry and
// empirical observations
type Metrics struct {
	VectorCorrelation    float64 `json:"vector_correlation"`
	PhaseAccuracy        float64 `json:"phase_accuracy"`
	WellbeingCorrelation float64 `json:"wellbeing_correlation"`
}

// Result is the outcome of validating one phenomenon
type Result struct {
	PhenomenonID int           `json:"phenomenon_id"`
	Term         string        `json:"phenomenon_name"`
	Predicted    models.Vector `json:"predicted_vector"`
	Metrics      Metrics       `json:"validation_metrics"`
	Passed       bool          `json:"validation_passed"`
	SampleSize   int           `json:"sample_size"`
	Timestamp    time.Time     `json:"timestamp"`
}

// Summary aggregates a study's pass/fail counts
type Summary struct {
	TotalPhenomena int     `json:"total_phenomena"`
	Passed         int     `json:"passed"`
	Failed         int     `json:"failed"`
	SuccessRate    float64 `json:"success_rate"`
}

// StudyReport is the result of validating a set of phenomena
type StudyReport struct {
	Summary         Summary        `json:"summary"`
	Results         map[int]Result `json:"detailed_results"`
	Recommendations []string       `json:"recommendations"`
}

// Validator scores catalog entries against empirical observations
type Validator struct {
	catalog *catalog.Catalog
}

// NewValidator creates a validator over a catalog
func NewValidator(cat *catalog.Catalog) *Validator {
	return &Validator{catalog: cat}
}

// ValidatePhenomenon compares a catalog entry's vector, phase and
// wellbeing against observations and scores the agreement
func (v *Validator) ValidatePhenomenon(id int, observations []Observation) (Result, error) {
	entry, ok := v.catalog.GetByID(id)
	if !ok {
		return Result{}, fmt.Errorf("%w: id %d", catalog.ErrUnknownPhenomenon, id)
	}

	metrics := Metrics{
		VectorCorrelation:    vectorCorrelation(entry.Vector, observations),
		PhaseAccuracy:        phaseAccuracy(entry.Phase, observations),
		WellbeingCorrelation: wellbeingCorrelation(entry.Vector, observations),
	}

	return Result{
		PhenomenonID: entry.ID,
		Term:         entry.Term,
		Predicted:    entry.Vector,
		Metrics:      metrics,
		Passed:       passes(metrics),
		SampleSize:   len(observations),
		Timestamp:    time.Now().UTC(),
	}, nil
}

// RunStudy validates several phenomena and aggregates the outcomes.
// Unknown IDs are skipped.
func (v *Validator) RunStudy(ids []int, observations map[int][]Observation) StudyReport {
	results := make(map[int]Result, len(ids))
	passed := 0
	for _, id := range ids {
		result, err := v.ValidatePhenomenon(id, observations[id])
		if err != nil {
			continue
		}
		results[id] = result
		if result.Passed {
			passed++
		}
	}

	total := len(results)
	rate := 0.0
	if total > 0 {
		rate = models.Round3(float64(passed) / float64(total))
	}

	return StudyReport{
		Summary: Summary{
			TotalPhenomena: total,
			Passed:         passed,
			Failed:         total - passed,
			SuccessRate:    rate,
		},
		Results:         results,
		Recommendations: recommendations(ids, results),
	}
}

func passes(m Metrics) bool {
	return m.VectorCorrelation >= MinVectorCorrelation &&
		m.PhaseAccuracy >= MinPhaseAccuracy &&
		m.WellbeingCorrelation >= MinWellbeingCorrelation
}

// vectorCorrelation scores each dimension as 1/(1+|predicted-observed|)
// against the mean observed vector, then averages the five scores
func vectorCorrelation(predicted models.Vector, observations []Observation) float64 {
	var sum [5]float64
	n := 0
	for _, obs := range observations {
		if obs.Vector == nil {
			continue
		}
		comps := obs.Vector.Components()
		for i := range comps {
			sum[i] += comps[i]
		}
		n++
	}
	if n == 0 {
		return 0
	}

	pred := predicted.Components()
	total := 0.0
	for i := range pred {
		avg := sum[i] / float64(n)
		total += 1.0 / (1.0 + math.Abs(pred[i]-avg))
	}
	return models.Round3(total / float64(len(pred)))
}

// phaseAccuracy is the fraction of phase-bearing observations matching
// the predicted phase
func phaseAccuracy(predicted string, observations []Observation) float64 {
	matches, total := 0, 0
	for _, obs := range observations {
		if obs.Phase == "" {
			continue
		}
		total++
		if obs.Phase == predicted {
			matches++
		}
	}
	if total == 0 {
		return 0
	}
	return models.Round3(float64(matches) / float64(total))
}

// wellbeingCorrelation compares predicted wellbeing with the mean
// observed wellbeing, deriving it from the vector when absent
func wellbeingCorrelation(predicted models.Vector, observations []Observation) float64 {
	sum := 0.0
	n := 0
	for _, obs := range observations {
		switch {
		case obs.Wellbeing != nil:
			sum += *obs.Wellbeing
			n++
		case obs.Vector != nil:
			sum += obs.Vector.Wellbeing()
			n++
		}
	}
	if n == 0 {
		return 0
	}

	avg := sum / float64(n)
	return models.Round3(1.0 / (1.0 + math.Abs(predicted.Wellbeing()-avg)))
}

func recommendations(ids []int, results map[int]Result) []string {
	var lowCorrelation []int
	for _, id := range ids {
		result, ok := results[id]
		if !ok {
			continue
		}
		if result.Metrics.VectorCorrelation < reviewThreshold {
			lowCorrelation = append(lowCorrelation, id)
		}
	}

	var out []string
	if len(lowCorrelation) > 0 {
		if len(lowCorrelation) > maxFlaggedPhenomena {
			lowCorrelation = lowCorrelation[:maxFlaggedPhenomena]
		}
		out = append(out, fmt.Sprintf("Re-evaluate vector mappings for phenomena: %v", lowCorrelation))
	}
	return out
}
