package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"gdd-roadmap/internal/analysis/repository"
	"gdd-roadmap/pkg/log"
)

const (
	memoryPath     = ":memory:"
	timeLayout     = "2006-01-02T15:04:05.000000000Z07:00"
	currentVersion = 1
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// Store is a SQLite-backed Repository that owns its database handle.
type Store interface {
	repository.Repository
	Ping(ctx context.Context) error
	Close() error
}

// New opens (or creates) the SQLite database at dbPath and runs migrations.
func New(dbPath string, l log.Logger) (Store, error) {
	if dbPath != memoryPath {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("exec pragma %q: %w", p, err)
		}
	}

	r := &implRepository{db: db, l: l}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

// NewMemory creates an in-memory store, used by the CLI and tests.
func NewMemory(l log.Logger) (Store, error) {
	return New(memoryPath, l)
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *implRepository) Close() error {
	return r.db.Close()
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("analysis/repository/sqlite.%s", method)
}

func (r *implRepository) migrate() error {
	var version int
	if err := r.db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version >= currentVersion {
		return nil
	}

	if version < 1 {
		if err := r.migrateV1(); err != nil {
			return err
		}
	}

	_, err := r.db.Exec(fmt.Sprintf("PRAGMA user_version = %d", currentVersion))
	return err
}

func (r *implRepository) migrateV1() error {
	const ddl = `
	CREATE TABLE IF NOT EXISTS sessions (
		id          TEXT PRIMARY KEY,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS analyses (
		session_id  TEXT PRIMARY KEY REFERENCES sessions(id) ON DELETE CASCADE,
		id          TEXT NOT NULL UNIQUE,
		file_name   TEXT NOT NULL DEFAULT '',
		provider    TEXT NOT NULL DEFAULT '',
		model       TEXT NOT NULL DEFAULT '',
		schema_json TEXT NOT NULL,
		created_at  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS task_states (
		session_id  TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
		category    TEXT NOT NULL,
		task_index  INTEGER NOT NULL,
		completed   INTEGER NOT NULL DEFAULT 0,
		updated_at  TEXT NOT NULL,
		PRIMARY KEY (session_id, category, task_index)
	);
	`
	_, err := r.db.Exec(ddl)
	return err
}
