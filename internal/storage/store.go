// Package storage provides abstractions for editing-session storage.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/mmynk/invoicemaker/internal/export"
	"github.com/mmynk/invoicemaker/internal/models"
)

// ErrNotFound is returned when a session does not exist.
var ErrNotFound = errors.New("session not found")

// Session is one editing session: the current document plus the UI state
// the preview and export flows depend on.
type Session struct {
	ID      string
	Invoice models.Invoice

	// PreviewMounted is set once the preview has been rendered. Exports
	// find no target before that.
	PreviewMounted bool
	Menu           export.Menu

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a copy that shares no mutable state with s.
func (s Session) Clone() Session {
	s.Invoice = s.Invoice.Clone()
	return s
}

// Store defines the interface for session storage operations.
// Implementations hand out copies; changes go through UpdateSession.
type Store interface {
	// CreateSession stores a new session and returns it with its ID set.
	CreateSession(ctx context.Context, inv models.Invoice) (Session, error)

	// GetSession retrieves a session by its ID.
	// Returns ErrNotFound if the session does not exist.
	GetSession(ctx context.Context, id string) (Session, error)

	// UpdateSession applies fn to the session under a write lock and stores
	// the result. Nothing is stored if fn returns an error.
	UpdateSession(ctx context.Context, id string, fn func(*Session) error) (Session, error)

	// DeleteSession removes a session. Deleting a missing session is not an error.
	DeleteSession(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
