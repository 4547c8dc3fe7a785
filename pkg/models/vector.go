package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// ErrInvalidVector indicates a component is non-finite or outside [0, 1]
var ErrInvalidVector = errors.New("invalid vector")

// ComponentKeys lists the dimension keys in canonical order
var ComponentKeys = [5]string{"v", "R", "r", "C", "S"}

// maxDistance is the diagonal of the 5D unit hypercube
var maxDistance = math.Sqrt(5)

// Vector is a point in 5-dimensional consciousness space.
//
// Dimensions:
//   - v: velocity of movement (0=stuck, 1=rushing)
//   - R: resistance encountered (0=smooth, 1=blocked)
//   - r: resonance/connection (0=isolated, 1=connected)
//   - C: capacity to act (0=depleted, 1=full)
//   - S: entropy/chaos (0=ordered, 1=chaotic)
type Vector struct {
	Velocity   float64 `json:"v"`
	Resistance float64 `json:"R"`
	Resonance  float64 `json:"r"`
	Capacity   float64 `json:"C"`
	Entropy    float64 `json:"S"`
}

// NewVector creates a vector with every component clamped to [0, 1]
func NewVector(v, R, r, C, S float64) Vector {
	return Vector{
		Velocity:   clamp01(v),
		Resistance: clamp01(R),
		Resonance:  clamp01(r),
		Capacity:   clamp01(C),
		Entropy:    clamp01(S),
	}
}

// FromComponents creates a vector from components in canonical key order
func FromComponents(c [5]float64) Vector {
	return NewVector(c[0], c[1], c[2], c[3], c[4])
}

func clamp01(x float64) float64 {
	return math.Max(0.0, math.Min(1.0, x))
}

// Components returns the components in canonical key order
func (v Vector) Components() [5]float64 {
	return [5]float64{v.Velocity, v.Resistance, v.Resonance, v.Capacity, v.Entropy}
}

// Clamped returns a copy with every component clamped to [0, 1]
func (v Vector) Clamped() Vector {
	return NewVector(v.Velocity, v.Resistance, v.Resonance, v.Capacity, v.Entropy)
}

// Validate checks that every component is finite and within [0, 1]
func (v Vector) Validate() error {
	comps := v.Components()
	for i, x := range comps {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < 0 || x > 1 {
			return fmt.Errorf("%w: component %s=%v", ErrInvalidVector, ComponentKeys[i], x)
		}
	}
	return nil
}

// DistanceTo returns the Euclidean distance to another vector
func (v Vector) DistanceTo(other Vector) float64 {
	a, b := v.Components(), other.Components()
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// SimilarityTo returns 1 - distance/sqrt(5), where sqrt(5) is the
// maximum possible distance in the 5D unit hypercube
func (v Vector) SimilarityTo(other Vector) float64 {
	return 1.0 - v.DistanceTo(other)/maxDistance
}

// Magnitude returns the vector's Euclidean norm
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, x := range v.Components() {
		sum += x * x
	}
	return math.Sqrt(sum)
}

// Wellbeing scores overall wellbeing in [0, 1]. Higher resonance and
// capacity raise it, higher resistance and entropy lower it.
func (v Vector) Wellbeing() float64 {
	w := v.Resonance*0.3 +
		v.Capacity*0.3 +
		(1-v.Resistance)*0.2 +
		(1-v.Entropy)*0.2
	return clamp01(w)
}

// Stability scores system stability in [0, 1]. Stable states have low
// entropy, adequate capacity, and low resistance.
func (v Vector) Stability() float64 {
	s := (1-v.Entropy)*0.4 +
		v.Capacity*0.4 +
		(1-v.Resistance)*0.2
	return clamp01(s)
}

// Round3 rounds a value to 3 decimal places
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// MarshalJSON emits components rounded to 3 decimal places
func (v Vector) MarshalJSON() ([]byte, error) {
	type alias Vector
	rounded := alias{
		Velocity:   Round3(v.Velocity),
		Resistance: Round3(v.Resistance),
		Resonance:  Round3(v.Resonance),
		Capacity:   Round3(v.Capacity),
		Entropy:    Round3(v.Entropy),
	}
	return json.Marshal(rounded)
}

// UnmarshalJSON fills missing components with the neutral value 0.5
func (v *Vector) UnmarshalJSON(data []byte) error {
	var raw struct {
		Velocity   *float64 `json:"v"`
		Resistance *float64 `json:"R"`
		Resonance  *float64 `json:"r"`
		Capacity   *float64 `json:"C"`
		Entropy    *float64 `json:"S"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Velocity = orNeutral(raw.Velocity)
	v.Resistance = orNeutral(raw.Resistance)
	v.Resonance = orNeutral(raw.Resonance)
	v.Capacity = orNeutral(raw.Capacity)
	v.Entropy = orNeutral(raw.Entropy)
	return nil
}

func orNeutral(x *float64) float64 {
	if x == nil {
		return 0.5
	}
	return *x
}

// PredefinedVectors maps common state names to their canonical vectors.
// Lookup keys are lowercase.
var PredefinedVectors = map[string]Vector{
	"flow":       {Velocity: 0.7, Resistance: 0.2, Resonance: 0.8, Capacity: 0.9, Entropy: 0.1},
	"burnout":    {Velocity: 0.9, Resistance: 0.8, Resonance: 0.3, Capacity: 0.1, Entropy: 0.8},
	"depression": {Velocity: 0.1, Resistance: 0.7, Resonance: 0.2, Capacity: 0.2, Entropy: 0.6},
	"anxiety":    {Velocity: 0.8, Resistance: 0.6, Resonance: 0.4, Capacity: 0.5, Entropy: 0.8},
	"peace":      {Velocity: 0.3, Resistance: 0.1, Resonance: 0.7, Capacity: 0.8, Entropy: 0.1},
	"love":       {Velocity: 0.5, Resistance: 0.1, Resonance: 0.9, Capacity: 0.8, Entropy: 0.2},
	"grief":      {Velocity: 0.2, Resistance: 0.8, Resonance: 0.3, Capacity: 0.3, Entropy: 0.7},
	"joy":        {Velocity: 0.6, Resistance: 0.1, Resonance: 0.8, Capacity: 0.9, Entropy: 0.2},
	"confusion":  {Velocity: 0.5, Resistance: 0.5, Resonance: 0.4, Capacity: 0.5, Entropy: 0.9},
	"clarity":    {Velocity: 0.4, Resistance: 0.2, Resonance: 0.6, Capacity: 0.8, Entropy: 0.1},
}
