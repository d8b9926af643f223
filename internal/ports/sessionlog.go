package ports

import (
	"time"

	"spyglass/internal/domain"
)

// SessionInfo summarizes one recorded traversal session.
type SessionInfo struct {
	ID        int64
	Label     string
	Events    int
	CreatedAt time.Time
}

// SessionLog persists traversal event streams for later replay and
// comparison. Events are stored in emission order per session.
type SessionLog interface {
	// BeginSession opens a new session and returns its ID.
	BeginSession(label string) (int64, error)

	// Append stores the event at the given sequence number.
	Append(sessionID int64, seq int, ev domain.Event) error

	// Sessions lists all recorded sessions, newest first.
	Sessions() ([]SessionInfo, error)

	// Replay returns a session's events in emission order.
	Replay(sessionID int64) ([]domain.Event, error)

	// Close releases the underlying storage.
	Close() error
}
