package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"

	"github.com/abhisek/skillbyte/internal/errs"
)

// Store owns the SQLite connection and hands out per-entity repositories.
// Built-in catalog content is seed data held in memory by the services;
// only user-originated state lives here.
type Store struct {
	db *sqlx.DB
}

// Open connects to the SQLite database at dsn, applies recommended
// pragmas, and creates any missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer; also keeps in-memory databases on one connection.
	db.SetMaxOpenConns(1)

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sqlx.DB for raw queries.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Topics returns the topic repository backed by this store.
func (s *Store) Topics() TopicRepo { return &topicRepo{db: s.db} }

// Lessons returns the lesson repository backed by this store.
func (s *Store) Lessons() LessonRepo { return &lessonRepo{db: s.db} }

// Attempts returns the quiz attempt repository backed by this store.
func (s *Store) Attempts() AttemptRepo { return &attemptRepo{db: s.db} }

// Progress returns the user progress repository backed by this store.
func (s *Store) Progress() ProgressRepo { return &progressRepo{db: s.db} }

// Settings returns the settings repository backed by this store.
func (s *Store) Settings() SettingsRepo { return &settingsRepo{db: s.db} }

// LLMEvents returns the LLM request log repository backed by this store.
func (s *Store) LLMEvents() LLMEventRepo { return &llmEventRepo{db: s.db} }

// WipeUserData clears all learner state in one transaction: selections,
// custom content, completions, attempts and the progress record.
// Settings and the LLM event log survive a wipe.
func (s *Store) WipeUserData(ctx context.Context) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return &errs.PersistenceError{Op: "wipe user data", Err: err}
	}
	defer tx.Rollback()

	tables := []string{
		"selected_topics",
		"custom_topics",
		"custom_lessons",
		"completed_lessons",
		"quiz_attempts",
		"user_progress",
	}
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+t); err != nil {
			return &errs.PersistenceError{Op: "wipe " + t, Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &errs.PersistenceError{Op: "wipe user data", Err: err}
	}
	return nil
}

// applyPragmas configures SQLite for single-user interactive use.
func applyPragmas(db *sqlx.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// migrate creates the schema. Tables are small enough that idempotent
// CREATE IF NOT EXISTS statements cover the lifecycle.
func migrate(db *sqlx.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS selected_topics (
			topic_id TEXT PRIMARY KEY
		)`,
		`CREATE TABLE IF NOT EXISTS custom_topics (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			icon          TEXT NOT NULL DEFAULT '',
			difficulty    TEXT NOT NULL,
			total_lessons INTEGER NOT NULL DEFAULT 0,
			created_at    TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS custom_lessons (
			id           TEXT PRIMARY KEY,
			topic_id     TEXT NOT NULL,
			title        TEXT NOT NULL,
			content      TEXT NOT NULL,
			image        TEXT NOT NULL DEFAULT '',
			duration     TEXT NOT NULL DEFAULT '',
			key_points   TEXT NOT NULL DEFAULT '[]',
			generated_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS completed_lessons (
			lesson_id    TEXT PRIMARY KEY,
			completed_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS quiz_attempts (
			quiz_id      TEXT PRIMARY KEY,
			answers      TEXT NOT NULL,
			score        INTEGER NOT NULL,
			completed_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS user_progress (
			id                      INTEGER PRIMARY KEY CHECK (id = 1),
			streak                  INTEGER NOT NULL,
			total_lessons_completed INTEGER NOT NULL,
			overall_mastery         REAL NOT NULL,
			daily_goal              INTEGER NOT NULL,
			last_active_date        TEXT NOT NULL DEFAULT '',
			completed_today         TEXT NOT NULL DEFAULT '[]',
			version                 INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS settings (
			id             INTEGER PRIMARY KEY CHECK (id = 1),
			api_key        TEXT NOT NULL DEFAULT '',
			selected_model TEXT NOT NULL DEFAULT ''
		)`,
		`CREATE TABLE IF NOT EXISTS llm_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     TEXT NOT NULL,
			provider      TEXT NOT NULL,
			model         TEXT NOT NULL,
			purpose       TEXT NOT NULL,
			input_tokens  INTEGER NOT NULL,
			output_tokens INTEGER NOT NULL,
			latency_ms    INTEGER NOT NULL,
			success       INTEGER NOT NULL,
			error_message TEXT NOT NULL DEFAULT '',
			request_body  TEXT NOT NULL DEFAULT '',
			response_body TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. SKILLBYTE_DB environment variable
// 2. $XDG_DATA_HOME/skillbyte/skillbyte.db
// 3. ~/.local/share/skillbyte/skillbyte.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("SKILLBYTE_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "skillbyte", "skillbyte.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
