// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"github.com/fweigt/tslabel/schema"
)

// SessionStore defines the persistence boundary for label assignments between
// CLI invocations of the same editing session. The engine core never touches
// it; orchestration merges stored assignments before acting and persists new
// ones after. This allows the store to be mocked for testing.
type SessionStore interface {
	// SaveAssignments upserts the given assignments for a session key.
	// Last write wins per (session, row index); no history is kept.
	SaveAssignments(session string, assignments []schema.LabelAssignment) error

	// LoadAssignments returns every current assignment for a session key.
	LoadAssignments(session string) ([]schema.LabelAssignment, error)

	// ClearSession removes all assignments for a session key.
	ClearSession(session string) error

	// GetStatus returns status information about the session store.
	GetStatus() (schema.SessionStatus, error)

	// Close closes the underlying connection.
	Close() error
}
