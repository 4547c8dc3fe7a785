package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/sinagolchin/SYNTHIUM/pkg/models"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS state_history (
	id         TEXT PRIMARY KEY,
	user_id    TEXT NOT NULL,
	text       TEXT NOT NULL DEFAULT '',
	velocity   REAL NOT NULL,
	resistance REAL NOT NULL,
	resonance  REAL NOT NULL,
	capacity   REAL NOT NULL,
	entropy    REAL NOT NULL,
	wellbeing  REAL NOT NULL,
	phase      TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_state_history_user ON state_history (user_id, created_at);
`

// SQLiteStore persists history in a local SQLite database. Used by the
// CLI so history survives between runs without a server.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures
// the schema exists
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Append stores a record, assigning ID and CreatedAt when unset
func (s *SQLiteStore) Append(ctx context.Context, record *models.StateRecord) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO state_history (id, user_id, text, velocity, resistance, resonance, capacity, entropy, wellbeing, phase, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.Text,
		record.Vector.Velocity,
		record.Vector.Resistance,
		record.Vector.Resonance,
		record.Vector.Capacity,
		record.Vector.Entropy,
		record.Wellbeing,
		record.Phase,
		record.CreatedAt.Format(time.RFC3339Nano),
	)

	return err
}

// Recent returns up to limit of the newest records, oldest first
func (s *SQLiteStore) Recent(ctx context.Context, userID string, limit int) ([]models.StateRecord, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	query := `
		SELECT id, user_id, text, velocity, resistance, resonance, capacity, entropy, wellbeing, phase, created_at
		FROM state_history
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.StateRecord
	for rows.Next() {
		var rec models.StateRecord
		var createdAt string
		err := rows.Scan(
			&rec.ID,
			&rec.UserID,
			&rec.Text,
			&rec.Vector.Velocity,
			&rec.Vector.Resistance,
			&rec.Vector.Resonance,
			&rec.Vector.Capacity,
			&rec.Vector.Entropy,
			&rec.Wellbeing,
			&rec.Phase,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}
		rec.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parse created_at: %w", err)
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	// Query returned newest first; callers expect chronological order
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// Count reports how many records a user has
func (s *SQLiteStore) Count(ctx context.Context, userID string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM state_history WHERE user_id = ?`, userID).Scan(&count)
	return count, err
}

// Close closes the underlying database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
