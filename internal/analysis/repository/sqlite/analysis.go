package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"gdd-roadmap/internal/analysis"
	"gdd-roadmap/internal/analysis/repository"
)

// SaveAnalysis replaces the session's analysis and clears its task states in one transaction.
func (r *implRepository) SaveAnalysis(ctx context.Context, opt repository.SaveAnalysisOptions) (analysis.Analysis, error) {
	schemaJSON, err := json.Marshal(opt.Schema)
	if err != nil {
		r.l.Errorf(ctx, "%s marshal: %v", r.dsn("SaveAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToInsert
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("SaveAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToInsert
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM task_states WHERE session_id = ?`, opt.SessionID); err != nil {
		r.l.Errorf(ctx, "%s clear states: %v", r.dsn("SaveAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToInsert
	}

	const upsert = `
		INSERT INTO analyses (session_id, id, file_name, provider, model, schema_json, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			id = excluded.id,
			file_name = excluded.file_name,
			provider = excluded.provider,
			model = excluded.model,
			schema_json = excluded.schema_json,
			created_at = excluded.created_at`
	_, err = tx.ExecContext(ctx, upsert,
		opt.SessionID, opt.ID, opt.FileName, opt.Provider, opt.Model,
		string(schemaJSON), opt.CreatedAt.UTC().Format(timeLayout),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s upsert: %v", r.dsn("SaveAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToInsert
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("SaveAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToInsert
	}

	return analysis.Analysis{
		ID:        opt.ID,
		SessionID: opt.SessionID,
		FileName:  opt.FileName,
		Provider:  opt.Provider,
		Model:     opt.Model,
		Schema:    opt.Schema,
		CreatedAt: opt.CreatedAt.UTC(),
	}, nil
}

// GetAnalysis returns the session's analysis, or a zero value when there is none.
func (r *implRepository) GetAnalysis(ctx context.Context, sessionID string) (analysis.Analysis, error) {
	const query = `
		SELECT id, session_id, file_name, provider, model, schema_json, created_at
		FROM analyses WHERE session_id = ?`

	var (
		a          analysis.Analysis
		schemaJSON string
		createdAt  string
	)
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(
		&a.ID, &a.SessionID, &a.FileName, &a.Provider, &a.Model, &schemaJSON, &createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return analysis.Analysis{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToGet
	}

	if err := json.Unmarshal([]byte(schemaJSON), &a.Schema); err != nil {
		r.l.Errorf(ctx, "%s decode schema: %v", r.dsn("GetAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToGet
	}
	if a.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		r.l.Errorf(ctx, "%s parse created_at: %v", r.dsn("GetAnalysis"), err)
		return analysis.Analysis{}, repository.ErrFailedToGet
	}
	return a, nil
}

// DeleteAnalysis removes the session's analysis and task states.
func (r *implRepository) DeleteAnalysis(ctx context.Context, sessionID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("DeleteAnalysis"), err)
		return repository.ErrFailedToDelete
	}
	defer tx.Rollback()

	for _, query := range []string{
		`DELETE FROM task_states WHERE session_id = ?`,
		`DELETE FROM analyses WHERE session_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, query, sessionID); err != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteAnalysis"), err)
			return repository.ErrFailedToDelete
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("DeleteAnalysis"), err)
		return repository.ErrFailedToDelete
	}
	return nil
}
