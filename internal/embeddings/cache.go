package embeddings

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sync"
)

// Cache stores embeddings between calls. Lookups and stores are batch
// operations because the client embeds anchor sets and request batches,
// not single strings.
type Cache interface {
	GetMulti(ctx context.Context, keys []string) (map[string][]float32, error)
	SetMulti(ctx context.Context, embeddings map[string][]float32) error
}

// CacheKey derives the cache key for a model and text pair
func CacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(model + ":" + text))
	return hex.EncodeToString(sum[:])[:16]
}

// CachedClient serves embeddings from the cache and asks the wrapped
// client only for misses
type CachedClient struct {
	client *Client
	cache  Cache
}

// NewCachedClient wraps a client with a cache
func NewCachedClient(client *Client, cache Cache) *CachedClient {
	return &CachedClient{client: client, cache: cache}
}

// EmbedTexts returns one embedding per text in input order
func (c *CachedClient) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	keys := make([]string, len(texts))
	for i, text := range texts {
		keys[i] = CacheKey(c.client.model, text)
	}

	hits, err := c.cache.GetMulti(ctx, keys)
	if err != nil {
		hits = map[string][]float32{}
	}

	results := make([][]float32, len(texts))
	var missTexts []string
	var missAt []int
	for i, key := range keys {
		if emb, ok := hits[key]; ok {
			results[i] = emb
		} else {
			missTexts = append(missTexts, texts[i])
			missAt = append(missAt, i)
		}
	}

	if len(missTexts) > 0 {
		fetched, err := c.client.EmbedTexts(ctx, missTexts)
		if err != nil {
			return nil, err
		}

		store := make(map[string][]float32, len(fetched))
		for i, emb := range fetched {
			results[missAt[i]] = emb
			if emb != nil {
				store[keys[missAt[i]]] = emb
			}
		}
		_ = c.cache.SetMulti(ctx, store)
	}

	return results, nil
}

// EmbedText returns the embedding for a single text
func (c *CachedClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	results, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(results) != 1 || results[0] == nil {
		return nil, fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return results[0], nil
}

// GetDimension returns the embedding dimension of the wrapped client
func (c *CachedClient) GetDimension() int {
	return c.client.GetDimension()
}

// MemoryCache is a process-local embedding cache
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string][]float32
}

// NewMemoryCache creates an empty in-memory cache
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{entries: make(map[string][]float32)}
}

func (c *MemoryCache) GetMulti(ctx context.Context, keys []string) (map[string][]float32, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := make(map[string][]float32)
	for _, key := range keys {
		if emb, ok := c.entries[key]; ok {
			found[key] = emb
		}
	}
	return found, nil
}

func (c *MemoryCache) SetMulti(ctx context.Context, embeddings map[string][]float32) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key, emb := range embeddings {
		c.entries[key] = emb
	}
	return nil
}
