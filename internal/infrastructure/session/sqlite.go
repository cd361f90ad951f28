package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"portal-gateway/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id          TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	created_at  INTEGER NOT NULL,
	expires_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions(expires_at);
`

// SQLiteStore persists sessions in a local SQLite database so they survive a
// process restart. Single-node only; it is a backing-store swap, not shared
// session state.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the database at path and ensures the
// sessions table exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("session database ping failed: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create sessions table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Get retrieves a session by ID. Expired rows are reported as not found.
func (s *SQLiteStore) Get(ctx context.Context, id string) (*domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT id, customer_id, created_at, expires_at FROM sessions WHERE id = ?", id)

	var sess domain.Session
	var createdAt, expiresAt int64
	if err := row.Scan(&sess.ID, &sess.CustomerID, &createdAt, &expiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("session query failed: %w", err)
	}

	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.ExpiresAt = time.Unix(expiresAt, 0)
	if sess.Expired(time.Now()) {
		return nil, domain.ErrSessionNotFound
	}
	return &sess, nil
}

// Put stores a session, replacing any prior row with the same ID.
func (s *SQLiteStore) Put(ctx context.Context, session domain.Session) error {
	if session.CustomerID == "" {
		return domain.ErrUnauthenticated
	}

	_, err := s.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO sessions (id, customer_id, created_at, expires_at) VALUES (?, ?, ?, ?)",
		session.ID, session.CustomerID, session.CreatedAt.Unix(), session.ExpiresAt.Unix())
	if err != nil {
		return fmt.Errorf("session insert failed: %w", err)
	}
	return nil
}

// Delete removes a session. Deleting an unknown ID is not an error.
func (s *SQLiteStore) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE id = ?", id); err != nil {
		return fmt.Errorf("session delete failed: %w", err)
	}
	return nil
}

// Prune removes expired rows. Called from the server's housekeeping ticker.
func (s *SQLiteStore) Prune(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM sessions WHERE expires_at < ?", time.Now().Unix()); err != nil {
		return fmt.Errorf("session prune failed: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
