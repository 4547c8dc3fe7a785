package storage

import (
	"context"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// DefaultRecentLimit caps Recent when the caller passes no limit
const DefaultRecentLimit = 50

// HistoryStore is an append-only log of analyzed states
type HistoryStore interface {
	// Append stores a record, assigning ID and CreatedAt when unset
	Append(ctx context.Context, record *models.StateRecord) error
	// Recent returns up to limit of the newest records for a user,
	// ordered oldest first
	Recent(ctx context.Context, userID string, limit int) ([]models.StateRecord, error)
	// Count reports how many records a user has
	Count(ctx context.Context, userID string) (int, error)
	Close() error
}

// VectorSearcher is implemented by stores that can rank a user's history
// by distance from a probe vector
type VectorSearcher interface {
	Nearest(ctx context.Context, userID string, vec models.Vector, k int) ([]models.StateRecord, error)
}
