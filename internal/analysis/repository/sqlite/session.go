package sqlite

import (
	"context"
	"time"

	"gdd-roadmap/internal/analysis/repository"
)

// CreateSession inserts a new session row.
func (r *implRepository) CreateSession(ctx context.Context, id string, createdAt time.Time) error {
	const query = `INSERT INTO sessions (id, created_at) VALUES (?, ?)`
	if _, err := r.db.ExecContext(ctx, query, id, createdAt.UTC().Format(timeLayout)); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateSession"), err)
		return repository.ErrFailedToInsert
	}
	return nil
}

// SessionExists reports whether the session row is present.
func (r *implRepository) SessionExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM sessions WHERE id = ?)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SessionExists"), err)
		return false, repository.ErrFailedToGet
	}
	return exists, nil
}
