package content

import (
	"context"
	"time"
)

// Notice is one announcement shown in the notices section, newest first.
type Notice struct {
	ID          int64
	Title       string
	Body        string
	Pinned      bool
	PublishedAt time.Time
}

// Document is one downloadable file listed in the downloads section.
type Document struct {
	ID          int64
	Title       string
	Category    string
	FileURL     string
	PublishedAt time.Time
}

// Event is one school calendar entry.
type Event struct {
	ID       int64
	Title    string
	StartsOn time.Time
	EndsOn   time.Time // equals StartsOn for single-day events
}

// Store is the read contract for the content that changes over the school
// year. Writes happen out of band (seed migrations or direct SQL by the
// secretariat), so the site only lists.
type Store interface {
	Close() error
	ListNotices(ctx context.Context, limit int) ([]Notice, error)
	ListDocuments(ctx context.Context) ([]Document, error)
	ListEvents(ctx context.Context, from time.Time) ([]Event, error)
}
