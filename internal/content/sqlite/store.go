// Package sqlite provides the SQLite-backed content store for notices,
// downloadable documents, and calendar events.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/brightfieldschool/site/internal/content"
	"github.com/brightfieldschool/site/internal/content/sqlite/migrations"
	sqlitemigrate "github.com/brightfieldschool/site/internal/platform/storage/sqlitemigrate"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for the site's listed content.
type Store struct {
	sqlDB *sql.DB
}

var _ content.Store = (*Store)(nil)

// Open opens and migrates a content store at path. Use ":memory:" for an
// ephemeral store in tests.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := sqlitemigrate.Apply(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// ListNotices returns published notices, pinned first, newest first within
// each group. A non-positive limit returns everything.
func (s *Store) ListNotices(ctx context.Context, limit int) ([]content.Notice, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	query := `SELECT id, title, body, pinned, published_at
		 FROM notices
		 ORDER BY pinned DESC, published_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list notices: %w", err)
	}
	defer rows.Close()

	var notices []content.Notice
	for rows.Next() {
		var notice content.Notice
		var pinned int64
		var publishedAt int64
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Body, &pinned, &publishedAt); err != nil {
			return nil, fmt.Errorf("scan notice: %w", err)
		}
		notice.Pinned = pinned != 0
		notice.PublishedAt = unixMillisToTime(publishedAt)
		notices = append(notices, notice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notices: %w", err)
	}
	return notices, nil
}

// ListDocuments returns downloadable documents grouped by category order,
// newest first within a category.
func (s *Store) ListDocuments(ctx context.Context) ([]content.Document, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, category, file_url, published_at
		 FROM documents
		 ORDER BY category ASC, published_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var documents []content.Document
	for rows.Next() {
		var document content.Document
		var publishedAt int64
		if err := rows.Scan(&document.ID, &document.Title, &document.Category, &document.FileURL, &publishedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		document.PublishedAt = unixMillisToTime(publishedAt)
		documents = append(documents, document)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate documents: %w", err)
	}
	return documents, nil
}

// ListEvents returns calendar entries ending on or after from, soonest
// first.
func (s *Store) ListEvents(ctx context.Context, from time.Time) ([]content.Event, error) {
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, title, starts_on, ends_on
		 FROM events
		 WHERE ends_on >= ?
		 ORDER BY starts_on ASC, id ASC`,
		from.UTC().UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []content.Event
	for rows.Next() {
		var event content.Event
		var startsOn, endsOn int64
		if err := rows.Scan(&event.ID, &event.Title, &startsOn, &endsOn); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event.StartsOn = unixMillisToTime(startsOn)
		event.EndsOn = unixMillisToTime(endsOn)
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate events: %w", err)
	}
	return events, nil
}

func unixMillisToTime(millis int64) time.Time {
	if millis <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(millis).UTC()
}
