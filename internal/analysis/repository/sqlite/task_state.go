package sqlite

import (
	"context"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository"
)

// ListTaskStates returns the completion flags recorded for a session.
func (r *implRepository) ListTaskStates(ctx context.Context, sessionID string) (map[analysis.TaskRef]bool, error) {
	const query = `SELECT category, task_index, completed FROM task_states WHERE session_id = ?`

	rows, err := r.db.QueryContext(ctx, query, sessionID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTaskStates"), err)
		return nil, repository.ErrFailedToList
	}
	defer rows.Close()

	states := make(map[analysis.TaskRef]bool)
	for rows.Next() {
		var (
			ref       analysis.TaskRef
			completed bool
		)
		if err := rows.Scan(&ref.Category, &ref.Index, &completed); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTaskStates"), err)
			return nil, repository.ErrFailedToList
		}
		states[ref] = completed
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTaskStates"), err)
		return nil, repository.ErrFailedToList
	}
	return states, nil
}

// SetTaskState upserts one completion flag.
func (r *implRepository) SetTaskState(ctx context.Context, opt repository.SetTaskStateOptions) error {
	const query = `
		INSERT INTO task_states (session_id, category, task_index, completed, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(session_id, category, task_index) DO UPDATE SET
			completed = excluded.completed,
			updated_at = excluded.updated_at`

	_, err := r.db.ExecContext(ctx, query,
		opt.SessionID, opt.Category, opt.Index, opt.Completed, opt.UpdatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("SetTaskState"), err)
		return repository.ErrFailedToUpdate
	}
	return nil
}
