package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

// MemoryStore keeps per-user history in insertion order. It is the
// default store when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string][]models.StateRecord
}

// NewMemoryStore creates an empty in-memory history store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string][]models.StateRecord)}
}

// Append stores a record, assigning ID and CreatedAt when unset
func (s *MemoryStore) Append(ctx context.Context, record *models.StateRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.UserID] = append(s.records[record.UserID], *record)
	return nil
}

// Recent returns up to limit of the newest records, oldest first
func (s *MemoryStore) Recent(ctx context.Context, userID string, limit int) ([]models.StateRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.records[userID]
	start := len(all) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.StateRecord, len(all)-start)
	copy(out, all[start:])
	return out, nil
}

// Count reports how many records a user has
func (s *MemoryStore) Count(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records[userID]), nil
}

// Nearest ranks the user's records by Euclidean distance from vec;
// equal distances keep insertion order
func (s *MemoryStore) Nearest(ctx context.Context, userID string, vec models.Vector, k int) ([]models.StateRecord, error) {
	s.mu.RLock()
	all := s.records[userID]

	type scored struct {
		record   models.StateRecord
		distance float64
	}
	ranked := make([]scored, len(all))
	for i, rec := range all {
		ranked[i] = scored{record: rec, distance: vec.DistanceTo(rec.Vector)}
	}
	s.mu.RUnlock()

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].distance < ranked[j].distance
	})

	if k <= 0 || k > len(ranked) {
		k = len(ranked)
	}
	out := make([]models.StateRecord, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].record
	}
	return out, nil
}

// Close is a no-op for the in-memory store
func (s *MemoryStore) Close() error {
	return nil
}
