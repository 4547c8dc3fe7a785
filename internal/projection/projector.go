package projection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/sinagolchin/SYNTHIUM/internal/similarity"
	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// ErrEmptyInput indicates there was no text to project
var ErrEmptyInput = errors.New("empty input")

// Sigmoid steepness bounds. Higher values snap dimensions toward the
// poles faster as the anchor similarity gap widens.
const (
	defaultSteepness = 10.0
	minSteepness     = 8.0
	maxSteepness     = 12.0
)

// EmbeddingProvider generates embeddings for anchor and input texts
type EmbeddingProvider interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Projector translates natural language into consciousness vectors by
// comparing input embeddings against anchor pole embeddings
type Projector struct {
	embedder  EmbeddingProvider
	anchors   []AnchorPair
	steepness float64

	mu    sync.Mutex
	poles []polePair
}

type polePair struct {
	dimension string
	high      []float32
	low       []float32
}

// Option configures the Projector
type Option func(*Projector)

// WithAnchors overrides the default anchor pairs. Pairs must cover all
// five dimensions; a dimension with no pair projects to neutral 0.5.
func WithAnchors(anchors []AnchorPair) Option {
	return func(p *Projector) {
		p.anchors = anchors
	}
}

// WithSteepness sets the sigmoid steepness, clamped to [8, 12]
func WithSteepness(k float64) Option {
	return func(p *Projector) {
		p.steepness = math.Max(minSteepness, math.Min(maxSteepness, k))
	}
}

// NewProjector creates a projector. Anchor embeddings are computed
// lazily on first use and reused afterwards.
func NewProjector(embedder EmbeddingProvider, opts ...Option) *Projector {
	p := &Projector{
		embedder:  embedder,
		anchors:   DefaultAnchors(),
		steepness: defaultSteepness,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Project maps a state description onto a consciousness vector. Each
// dimension is the sigmoid-squashed gap between the input's similarity
// to the high pole and to the low pole.
func (p *Projector) Project(ctx context.Context, text string) (models.Vector, error) {
	if strings.TrimSpace(text) == "" {
		return models.Vector{}, fmt.Errorf("%w: description required", ErrEmptyInput)
	}

	poles, err := p.embeddedAnchors(ctx)
	if err != nil {
		return models.Vector{}, err
	}

	input, err := p.embedder.EmbedText(ctx, text)
	if err != nil {
		return models.Vector{}, fmt.Errorf("embed input: %w", err)
	}

	// Neutral midpoint for dimensions without an anchor pair
	comps := [5]float64{0.5, 0.5, 0.5, 0.5, 0.5}
	for _, pole := range poles {
		idx, ok := componentIndex(pole.dimension)
		if !ok {
			continue
		}
		delta := similarity.CosineSimilarity(input, pole.high) -
			similarity.CosineSimilarity(input, pole.low)
		comps[idx] = sigmoid(p.steepness * delta)
	}

	return models.FromComponents(comps), nil
}

// Anchors returns the anchor pairs in use
func (p *Projector) Anchors() []AnchorPair {
	return p.anchors
}

func (p *Projector) embeddedAnchors(ctx context.Context) ([]polePair, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.poles != nil {
		return p.poles, nil
	}

	poles := make([]polePair, len(p.anchors))
	for i, a := range p.anchors {
		high, err := p.embedder.EmbedText(ctx, a.High)
		if err != nil {
			return nil, fmt.Errorf("embed anchor %s/high: %w", a.Dimension, err)
		}
		low, err := p.embedder.EmbedText(ctx, a.Low)
		if err != nil {
			return nil, fmt.Errorf("embed anchor %s/low: %w", a.Dimension, err)
		}
		poles[i] = polePair{dimension: a.Dimension, high: high, low: low}
	}

	p.poles = poles
	return poles, nil
}

func componentIndex(key string) (int, bool) {
	for i, k := range models.ComponentKeys {
		if k == key {
			return i, true
		}
	}
	return 0, false
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
