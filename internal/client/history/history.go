// Package history keeps a local log of dashboard poll cycles: one row of
// throughput counters per successful batch. It is purely client-side
// observability; nothing else depends on it being present.
package history

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// Entry is one recorded poll cycle.
type Entry struct {
	RecordedAt      time.Time
	ServiceStatus   string
	EmailsProcessed int64
	EmailsSent      int64
	EmailsFailed    int64
	EmailsPending   int64
}

// Log is the SQLite-backed poll history.
type Log struct {
	db *sql.DB
}

// Open opens (or creates) the history database at dbPath and applies
// migrations. Use ":memory:" in tests.
func Open(ctx context.Context, dbPath string) (*Log, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	// Single writer is enough for an append-only local log.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	log := &Log{db: db}

	if err := log.runMigrations(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return log, nil
}

// Close closes the database.
func (l *Log) Close() error {
	return l.db.Close()
}

func (l *Log) runMigrations() error {
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}
	goose.SetBaseFS(embedMigrations)
	if err := goose.Up(l.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	return nil
}

// Record appends one poll cycle.
func (l *Log) Record(ctx context.Context, entry Entry) error {
	query := `
		INSERT INTO poll_history (
			recorded_at, service_status,
			emails_processed, emails_sent, emails_failed, emails_pending
		) VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := l.db.ExecContext(ctx, query,
		entry.RecordedAt.Unix(),
		entry.ServiceStatus,
		entry.EmailsProcessed,
		entry.EmailsSent,
		entry.EmailsFailed,
		entry.EmailsPending,
	)
	if err != nil {
		return fmt.Errorf("failed to record poll: %w", err)
	}

	return nil
}

// Recent returns up to limit entries, newest first.
func (l *Log) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 {
		limit = 20
	}

	query := `
		SELECT recorded_at, service_status,
		       emails_processed, emails_sent, emails_failed, emails_pending
		FROM poll_history
		ORDER BY recorded_at DESC, id DESC
		LIMIT ?
	`

	rows, err := l.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query poll history: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var entries []Entry
	for rows.Next() {
		var entry Entry
		var recordedAt int64
		if err := rows.Scan(
			&recordedAt,
			&entry.ServiceStatus,
			&entry.EmailsProcessed,
			&entry.EmailsSent,
			&entry.EmailsFailed,
			&entry.EmailsPending,
		); err != nil {
			return nil, fmt.Errorf("failed to scan poll history row: %w", err)
		}
		entry.RecordedAt = time.Unix(recordedAt, 0)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate poll history: %w", err)
	}

	return entries, nil
}
