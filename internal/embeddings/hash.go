package embeddings

import (
	"context"
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

const hashDimension = 256

// HashProvider is a deterministic bag-of-words embedder for offline and
// test use. Token hashes are bucketed into a fixed-size vector and the
// result is unit-normalized, so texts sharing words land near each other.
type HashProvider struct {
	dimension int
}

// NewHashProvider creates a hash-based embedding provider
func NewHashProvider() *HashProvider {
	return &HashProvider{dimension: hashDimension}
}

// EmbedText generates a deterministic embedding for the text
func (p *HashProvider) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return p.embed(text), nil
}

// GetDimension returns the embedding dimension
func (p *HashProvider) GetDimension() int {
	return p.dimension
}

func (p *HashProvider) embed(text string) []float32 {
	vec := make([]float32, p.dimension)

	for _, tok := range tokenize(text) {
		h := fnv.New64a()
		h.Write([]byte(tok))
		vec[int(h.Sum64()%uint64(p.dimension))]++
	}

	var norm float64
	for _, x := range vec {
		norm += float64(x) * float64(x)
	}
	if norm > 0 {
		inv := float32(1 / math.Sqrt(norm))
		for i := range vec {
			vec[i] *= inv
		}
	}

	return vec
}

func tokenize(text string) []string {
	var toks []string
	for _, field := range strings.Fields(strings.ToLower(text)) {
		tok := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if tok != "" {
			toks = append(toks, tok)
		}
	}
	return toks
}
