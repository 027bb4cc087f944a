package web

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/brightfieldschool/site/internal/platform/timeouts"
	"github.com/brightfieldschool/site/internal/suggestion"
)

// SessionCookieName keys a visitor to their suggestion form.
const SessionCookieName = "bf_suggest"

// FormFactory builds a fresh suggestion form for a new visitor session.
type FormFactory func() (*suggestion.Form, error)

// sessionEntry pairs a form with its last access time for idle expiry.
type sessionEntry struct {
	form     *suggestion.Form
	lastSeen time.Time
}

// Sessions maps visitor cookies to live suggestion forms. Forms hold reset
// timers, so entries are closed when they expire or the registry shuts down.
type Sessions struct {
	mu      sync.Mutex
	factory FormFactory
	idleTTL time.Duration
	entries map[string]*sessionEntry
	closed  bool
}

// NewSessions builds a registry. A non-positive idleTTL falls back to the
// shared session idle timeout.
func NewSessions(factory FormFactory, idleTTL time.Duration) (*Sessions, error) {
	if factory == nil {
		return nil, errors.New("web: form factory is required")
	}
	if idleTTL <= 0 {
		idleTTL = timeouts.SuggestionSessionIdle
	}
	return &Sessions{
		factory: factory,
		idleTTL: idleTTL,
		entries: make(map[string]*sessionEntry),
	}, nil
}

// Form returns the visitor's suggestion form, creating a session and setting
// the cookie when none exists yet.
func (s *Sessions) Form(w http.ResponseWriter, r *http.Request) (*suggestion.Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, errors.New("web: session registry closed")
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil {
		if entry, ok := s.entries[cookie.Value]; ok {
			entry.lastSeen = time.Now()
			return entry.form, nil
		}
	}

	id, err := newSessionID()
	if err != nil {
		return nil, err
	}
	form, err := s.factory()
	if err != nil {
		return nil, err
	}
	s.entries[id] = &sessionEntry{form: form, lastSeen: time.Now()}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   r != nil && r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	return form, nil
}

// Sweep closes and removes sessions idle past the TTL, returning how many
// were evicted.
func (s *Sessions) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, entry := range s.entries {
		if now.Sub(entry.lastSeen) < s.idleTTL {
			continue
		}
		entry.form.Close()
		delete(s.entries, id)
		evicted++
	}
	return evicted
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor sweeps expired sessions until the context ends.
func (s *Sessions) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = s.idleTTL / 2
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if evicted := s.Sweep(time.Now()); evicted > 0 {
					log.Printf("web sessions: evicted %d idle sessions", evicted)
				}
			}
		}
	}()
}

// Close tears down every live form and rejects further use.
func (s *Sessions) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	for id, entry := range s.entries {
		entry.form.Close()
		delete(s.entries, id)
	}
}

func newSessionID() (string, error) {
	var buf [16]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf[:]), nil
}
