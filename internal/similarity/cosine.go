// Package similarity scores embedding vectors against each other. The
// projection layer uses it to compare input embeddings with anchor-phrase
// embeddings.
package similarity

import (
	"gonum.org/v1/gonum/floats"
)

// CosineSimilarity returns the cosine of the angle between a and b, in
// [-1, 1]. Mismatched lengths, empty slices and zero-norm inputs all
// score 0: such vectors carry no direction to compare.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	wa := widen(a)
	wb := widen(b)

	na := floats.Norm(wa, 2)
	nb := floats.Norm(wb, 2)
	if na == 0 || nb == 0 {
		return 0
	}

	return floats.Dot(wa, wb) / (na * nb)
}

// CosineDistance returns 1 - CosineSimilarity(a, b), in [0, 2].
func CosineDistance(a, b []float32) float64 {
	return 1 - CosineSimilarity(a, b)
}

// widen converts an embedding to float64 for gonum.
func widen(v []float32) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = float64(x)
	}
	return out
}
