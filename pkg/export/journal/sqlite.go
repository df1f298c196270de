package journal

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteConfig contains configuration for the SQLite journal backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 5
	MaxOpenConns int

	// WALMode enables Write-Ahead Logging mode.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite journal configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/journal.db",
		MaxOpenConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteJournal implements the Journal interface using SQLite.
type SQLiteJournal struct {
	db     *sql.DB
	config *SQLiteConfig
	insert *sql.Stmt
	logger *slog.Logger
}

// NewSQLiteJournal opens (creating if necessary) the journal database and
// initializes its schema.
func NewSQLiteJournal(config *SQLiteConfig) (*SQLiteJournal, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}

	logger := slog.Default().With("component", "export.journal.sqlite")

	if dir := filepath.Dir(config.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, NewStorageError("sqlite", "open", err)
		}
	}

	db, err := sql.Open("sqlite3", config.Path)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	maxOpen := config.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 5
	}
	db.SetMaxOpenConns(maxOpen)

	if config.BusyTimeout > 0 {
		ms := config.BusyTimeout.Milliseconds()
		if _, err := db.Exec(fmt.Sprintf("PRAGMA busy_timeout = %d", ms)); err != nil {
			db.Close()
			return nil, NewStorageError("sqlite", "open", err)
		}
	}

	if config.WALMode {
		if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
			db.Close()
			return nil, NewStorageError("sqlite", "open", err)
		}
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, NewStorageError("sqlite", "open", fmt.Errorf("schema init: %w", err))
	}
	if _, err := db.Exec(
		"INSERT OR IGNORE INTO schema_version (version) VALUES (?)", SchemaVersion,
	); err != nil {
		db.Close()
		return nil, NewStorageError("sqlite", "open", err)
	}

	insert, err := db.Prepare(`
		INSERT INTO export_journal (
			id, run_id, server, object_name, object_kind,
			target, status, error, bytes_written, started_time, finished_time
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		db.Close()
		return nil, NewStorageError("sqlite", "open", err)
	}

	logger.Debug("journal opened", "path", config.Path, "wal", config.WALMode)

	return &SQLiteJournal{
		db:     db,
		config: config,
		insert: insert,
		logger: logger,
	}, nil
}

// Record persists one journal entry.
func (j *SQLiteJournal) Record(ctx context.Context, entry *Entry) error {
	_, err := j.insert.ExecContext(ctx,
		entry.ID, entry.RunID, entry.Server, entry.ObjectName, entry.ObjectKind,
		entry.Target, entry.Status, entry.Error, entry.BytesWritten,
		entry.StartedTime, entry.FinishedTime,
	)
	if err != nil {
		return NewStorageError("sqlite", "record", err)
	}
	return nil
}

// Query returns entries matching the query, newest first.
func (j *SQLiteJournal) Query(ctx context.Context, q *Query) ([]*Entry, error) {
	if q == nil {
		q = &Query{}
	}

	var (
		conds []string
		args  []any
	)
	if q.RunID != "" {
		conds = append(conds, "run_id = ?")
		args = append(args, q.RunID)
	}
	if q.Server != "" {
		conds = append(conds, "server = ?")
		args = append(args, q.Server)
	}
	if q.Status != "" {
		conds = append(conds, "status = ?")
		args = append(args, q.Status)
	}
	if q.Since != nil {
		conds = append(conds, "started_time >= ?")
		args = append(args, *q.Since)
	}
	if q.Until != nil {
		conds = append(conds, "started_time <= ?")
		args = append(args, *q.Until)
	}

	query := `SELECT id, run_id, server, object_name, object_kind,
		target, status, error, bytes_written, started_time, finished_time
		FROM export_journal`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY started_time DESC, id"

	limit := q.Limit
	if limit <= 0 {
		limit = 100
	}
	query += " LIMIT ?"
	args = append(args, limit)
	if q.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, q.Offset)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStorageError("sqlite", "query", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		e := &Entry{}
		if err := rows.Scan(
			&e.ID, &e.RunID, &e.Server, &e.ObjectName, &e.ObjectKind,
			&e.Target, &e.Status, &e.Error, &e.BytesWritten,
			&e.StartedTime, &e.FinishedTime,
		); err != nil {
			return nil, NewStorageError("sqlite", "query", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "query", err)
	}

	return entries, nil
}

// Close releases the prepared statement and database handle.
func (j *SQLiteJournal) Close() error {
	if j.insert != nil {
		j.insert.Close()
	}
	if err := j.db.Close(); err != nil {
		return NewStorageError("sqlite", "close", err)
	}
	return nil
}
