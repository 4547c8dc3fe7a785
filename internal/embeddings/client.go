package embeddings

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

const (
	// defaultBaseURL points at an OpenAI-compatible /embeddings server,
	// e.g. text-embeddings-inference serving all-MiniLM-L6-v2.
	defaultBaseURL       = "http://localhost:8080/v1"
	defaultBatchSize     = 100
	defaultMaxConcurrent = 5
	defaultTimeout       = 30 * time.Second

	maxErrorDetail = 512
)

// Client talks to an OpenAI-compatible embeddings endpoint.
type Client struct {
	httpClient    *http.Client
	baseURL       string
	apiKey        string
	model         string
	batchSize     int
	maxConcurrent int
}

// ClientOption configures the Client.
type ClientOption func(*Client)

// WithBaseURL overrides the endpoint base URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) { c.baseURL = url }
}

// WithModel selects the embedding model.
func WithModel(model string) ClientOption {
	return func(c *Client) { c.model = model }
}

// WithBatchSize caps how many texts go into one request.
func WithBatchSize(size int) ClientOption {
	return func(c *Client) { c.batchSize = size }
}

// WithMaxConcurrent caps in-flight requests.
func WithMaxConcurrent(n int) ClientOption {
	return func(c *Client) { c.maxConcurrent = n }
}

// WithTimeout overrides the per-request timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient builds a client with defaults suitable for a local
// text-embeddings-inference deployment.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient:    &http.Client{Timeout: defaultTimeout},
		baseURL:       defaultBaseURL,
		apiKey:        apiKey,
		model:         DefaultModel,
		batchSize:     defaultBatchSize,
		maxConcurrent: defaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EmbedTexts embeds texts in batchSize chunks, at most maxConcurrent
// requests at a time. Results line up with the input order. The first
// failed chunk fails the whole call.
func (c *Client) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	type span struct{ start, end int }
	var chunks []span
	for start := 0; start < len(texts); start += c.batchSize {
		chunks = append(chunks, span{start, min(start+c.batchSize, len(texts))})
	}

	results := make([][]float32, len(texts))
	errs := make(chan error, len(chunks))
	sem := make(chan struct{}, c.maxConcurrent)
	var wg sync.WaitGroup

	for _, ch := range chunks {
		ch := ch
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			got, err := c.requestEmbeddings(ctx, texts[ch.start:ch.end])
			if err != nil {
				errs <- fmt.Errorf("texts %d..%d: %w", ch.start, ch.end, err)
				return
			}
			copy(results[ch.start:ch.end], got)
		}()
	}

	wg.Wait()
	close(errs)
	if err := <-errs; err != nil {
		return nil, err
	}
	return results, nil
}

// EmbedText embeds a single text.
func (c *Client) EmbedText(ctx context.Context, text string) ([]float32, error) {
	got, err := c.EmbedTexts(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	if len(got) != 1 || got[0] == nil {
		return nil, fmt.Errorf("%w: empty response", ErrUnavailable)
	}
	return got[0], nil
}

// GetDimension returns the embedding width for the configured model.
func (c *Client) GetDimension() int {
	return GetEmbeddingDimension(c.model)
}

func (c *Client) requestEmbeddings(ctx context.Context, texts []string) ([][]float32, error) {
	payload, err := json.Marshal(EmbeddingRequest{Model: c.model, Input: texts})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/embeddings", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorDetail))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, bytes.TrimSpace(detail))
	}

	var parsed EmbeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	out := make([][]float32, len(texts))
	for _, d := range parsed.Data {
		if d.Index >= 0 && d.Index < len(out) {
			out[d.Index] = d.Embedding
		}
	}
	return out, nil
}
