package embeddings

// Model identifiers accepted by the embeddings endpoint.
const (
	ModelAllMiniLML6v2       = "sentence-transformers/all-MiniLM-L6-v2"
	ModelTextEmbedding3Small = "openai/text-embedding-3-small"
	ModelTextEmbedding3Large = "openai/text-embedding-3-large"
)

// DefaultModel keeps the default deployment self-hostable.
const DefaultModel = ModelAllMiniLML6v2

var modelDims = map[string]int{
	ModelAllMiniLML6v2:       384,
	ModelTextEmbedding3Small: 1536,
	ModelTextEmbedding3Large: 3072,
}

// GetEmbeddingDimension reports the vector width a model produces. Unknown
// models report the DefaultModel width.
func GetEmbeddingDimension(model string) int {
	if dim, ok := modelDims[model]; ok {
		return dim
	}
	return modelDims[DefaultModel]
}

// EmbeddingRequest is the JSON body for POST /embeddings.
type EmbeddingRequest struct {
	Model string   `json:"model"`
	Input []string `json:"input"`
}

// EmbeddingResponse is the endpoint's reply. Data entries carry their
// input index and may arrive out of order.
type EmbeddingResponse struct {
	Data  []EmbeddingData `json:"data"`
	Model string          `json:"model"`
	Usage Usage           `json:"usage"`
}

// EmbeddingData is one embedding within an EmbeddingResponse.
type EmbeddingData struct {
	Object    string    `json:"object"`
	Index     int       `json:"index"`
	Embedding []float32 `json:"embedding"`
}

// Usage reports the token spend for a request.
type Usage struct {
	PromptTokens int `json:"prompt_tokens"`
	TotalTokens  int `json:"total_tokens"`
}
