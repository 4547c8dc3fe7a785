package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

const postgresSchema = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS state_history (
	id           UUID PRIMARY KEY,
	user_id      TEXT NOT NULL,
	text         TEXT NOT NULL DEFAULT '',
	state_vector vector(5) NOT NULL,
	wellbeing    DOUBLE PRECISION NOT NULL,
	phase        TEXT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_state_history_user ON state_history (user_id, created_at);
`

// PostgresStore persists history in PostgreSQL, storing vectors in a
// pgvector column so nearest-state lookups run in the database
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a history store on an existing connection
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// EnsureSchema creates the pgvector extension and history table
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, postgresSchema)
	return err
}

// Append stores a record, assigning ID and CreatedAt when unset
func (s *PostgresStore) Append(ctx context.Context, record *models.StateRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO state_history (id, user_id, text, state_vector, wellbeing, phase, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Text,
		toPgVector(record.Vector),
		record.Wellbeing,
		record.Phase,
		record.CreatedAt,
	)

	return err
}

// Recent returns up to limit of the newest records, oldest first
func (s *PostgresStore) Recent(ctx context.Context, userID string, limit int) ([]models.StateRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `
		SELECT id, user_id, text, state_vector, wellbeing, phase, created_at
		FROM state_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	records, err := s.queryRecords(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}

	// Query returned newest first; callers expect chronological order
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Count reports how many records a user has
func (s *PostgresStore) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM state_history WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

// Nearest ranks the user's records by Euclidean distance from vec using
// the pgvector <-> operator
func (s *PostgresStore) Nearest(ctx context.Context, userID string, vec models.Vector, k int) ([]models.StateRecord, error) {
	if k <= 0 {
		k = DefaultRecentLimit
	}

	query := `
		SELECT id, user_id, text, state_vector, wellbeing, phase, created_at
		FROM state_history
		WHERE user_id = $1
		ORDER BY state_vector <-> $2
		LIMIT $3
	`

	return s.queryRecords(ctx, query, userID, toPgVector(vec), k)
}

// Close closes the underlying database
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) queryRecords(ctx context.Context, query string, args ...interface{}) ([]models.StateRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.StateRecord
	for rows.Next() {
		var rec models.StateRecord
		var vec pgvector.Vector
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Text,
			&vec,
			&rec.Wellbeing,
			&rec.Phase,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		rec.Vector = fromPgVector(vec)
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func toPgVector(vec models.Vector) pgvector.Vector {
	comps := vec.Components()
	out := make([]float32, len(comps))
	for i, c := range comps {
		out[i] = float32(c)
	}
	return pgvector.NewVector(out)
}

func fromPgVector(v pgvector.Vector) models.Vector {
	var comps [5]float64
	for i, c := range v.Slice() {
		if i >= len(comps) {
			break
		}
		comps[i] = float64(c)
	}
	return models.FromComponents(comps)
}
