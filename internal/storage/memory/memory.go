// Package memory provides an in-process implementation of storage.Store.
// Sessions live only as long as the server process.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/invoicemaker/internal/models"
	"github.com/mmynk/invoicemaker/internal/storage"
)

// Ensure Store implements storage.Store
var _ storage.Store = (*Store)(nil)

// Store keeps sessions in a map guarded by a read/write mutex.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]storage.Session
	now      func() time.Time
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		sessions: make(map[string]storage.Session),
		now:      time.Now,
	}
}

// CreateSession stores a new session for inv under a fresh ID.
func (s *Store) CreateSession(ctx context.Context, inv models.Invoice) (storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return storage.Session{}, err
	}
	now := s.now()
	sess := storage.Session{
		ID:        uuid.New().String(),
		Invoice:   inv.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess.Clone(), nil
}

// GetSession returns a copy of the session with the given ID.
func (s *Store) GetSession(ctx context.Context, id string) (storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return storage.Session{}, err
	}
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return storage.Session{}, fmt.Errorf("%s: %w", id, storage.ErrNotFound)
	}
	return sess.Clone(), nil
}

// UpdateSession runs fn on a copy of the session and stores it if fn succeeds.
func (s *Store) UpdateSession(ctx context.Context, id string, fn func(*storage.Session) error) (storage.Session, error) {
	if err := ctx.Err(); err != nil {
		return storage.Session{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.sessions[id]
	if !ok {
		return storage.Session{}, fmt.Errorf("%s: %w", id, storage.ErrNotFound)
	}
	next := current.Clone()
	if err := fn(&next); err != nil {
		return storage.Session{}, err
	}
	next.ID = current.ID
	next.CreatedAt = current.CreatedAt
	next.UpdatedAt = s.now()
	s.sessions[id] = next
	return next.Clone(), nil
}

// DeleteSession removes the session with the given ID.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}

// EvictIdle removes sessions not updated since cutoff and returns how many
// were removed.
func (s *Store) EvictIdle(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for id, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			n++
		}
	}
	return n
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close drops all sessions.
func (s *Store) Close() error {
	s.mu.Lock()
	clear(s.sessions)
	s.mu.Unlock()
	return nil
}
