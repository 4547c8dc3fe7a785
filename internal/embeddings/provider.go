package embeddings

import (
	"context"
	"errors"
)

// ErrUnavailable indicates the embedding backend could not be reached or
// returned a failure
var ErrUnavailable = errors.New("embedding service unavailable")

// Provider generates embeddings for text
type Provider interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// Config selects and configures an embedding provider
type Config struct {
	Provider string // "openai", "hash" (fallback)
	APIKey   string
	BaseURL  string
	Model    string
}

// NewProvider creates a provider from config. Unknown or empty provider
// names fall back to the deterministic hash provider so the system keeps
// working offline.
func NewProvider(cfg Config) Provider {
	switch cfg.Provider {
	case "openai":
		var opts []ClientOption
		if cfg.BaseURL != "" {
			opts = append(opts, WithBaseURL(cfg.BaseURL))
		}
		if cfg.Model != "" {
			opts = append(opts, WithModel(cfg.Model))
		}
		return NewCachedClient(NewClient(cfg.APIKey, opts...), NewMemoryCache())
	case "hash":
		fallthrough
	default:
		return NewHashProvider()
	}
}
