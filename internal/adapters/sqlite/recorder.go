// Package sqlite persists traversal sessions so event streams can be
// replayed and compared after the fact.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"spyglass/internal/domain"
	"spyglass/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

// Recorder implements ports.SessionLog on a SQLite database.
type Recorder struct {
	db     *sql.DB
	dbPath string
}

var _ ports.SessionLog = (*Recorder)(nil)

// Open creates or opens the session database at path. Use ":memory:" for
// an ephemeral log.
func Open(path string) (*Recorder, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("failed to create session directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open session database: %w", err)
	}

	// Pragmas + schema in a single batch (reduces round-trips)
	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			label TEXT NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS events (
			session_id INTEGER NOT NULL,
			seq INTEGER NOT NULL,
			kind TEXT NOT NULL,
			payload TEXT NOT NULL,
			PRIMARY KEY (session_id, seq)
		);
		CREATE INDEX IF NOT EXISTS idx_events_session ON events(session_id);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup session database: %w", err)
	}

	return &Recorder{db: db, dbPath: path}, nil
}

// Close releases the database
func (r *Recorder) Close() error {
	return r.db.Close()
}

// BeginSession opens a new session and returns its ID.
func (r *Recorder) BeginSession(label string) (int64, error) {
	res, err := r.db.Exec(
		`INSERT INTO sessions (label, created_at) VALUES (?, ?)`,
		label, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to create session: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read session id: %w", err)
	}
	return id, nil
}

// Append stores one event at the given sequence number.
func (r *Recorder) Append(sessionID int64, seq int, ev domain.Event) error {
	kind, payload, err := domain.EncodeEvent(ev)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(
		`INSERT INTO events (session_id, seq, kind, payload) VALUES (?, ?, ?, ?)`,
		sessionID, seq, kind, string(payload),
	)
	if err != nil {
		return fmt.Errorf("failed to append event %d to session %d: %w", seq, sessionID, err)
	}
	return nil
}

// Sessions lists recorded sessions, newest first.
func (r *Recorder) Sessions() ([]ports.SessionInfo, error) {
	rows, err := r.db.Query(`
		SELECT s.id, s.label, s.created_at, COUNT(e.seq)
		FROM sessions s
		LEFT JOIN events e ON e.session_id = s.id
		GROUP BY s.id
		ORDER BY s.id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var infos []ports.SessionInfo
	for rows.Next() {
		var info ports.SessionInfo
		var created int64
		if err := rows.Scan(&info.ID, &info.Label, &created, &info.Events); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		info.CreatedAt = time.Unix(created, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Replay returns a session's events in emission order.
func (r *Recorder) Replay(sessionID int64) ([]domain.Event, error) {
	rows, err := r.db.Query(
		`SELECT kind, payload FROM events WHERE session_id = ? ORDER BY seq`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to read session %d: %w", sessionID, err)
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var kind, payload string
		if err := rows.Scan(&kind, &payload); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		ev, err := domain.DecodeEvent(kind, []byte(payload))
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}
