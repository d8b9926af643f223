package commands

import (
	"context"
	"fmt"

	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// ReplayResult carries a recorded session's event stream
type ReplayResult struct {
	Events  []domain.Event
	Message string
}

// ReplayCommand loads a recorded session's events from the session log.
type ReplayCommand struct {
	log       ports.SessionLog
	sessionID int64
}

// NewReplayCommand creates a replay command for the given session
func NewReplayCommand(log ports.SessionLog, sessionID int64) *ReplayCommand {
	return &ReplayCommand{log: log, sessionID: sessionID}
}

// Execute loads the session's events
func (c *ReplayCommand) Execute(ctx context.Context) (*ReplayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	events, err := c.log.Replay(c.sessionID)
	if err != nil {
		return nil, err
	}
	if len(events) == 0 {
		return nil, fmt.Errorf("session %d not found or empty", c.sessionID)
	}
	return &ReplayResult{
		Events:  events,
		Message: fmt.Sprintf("session %d: %d events", c.sessionID, len(events)),
	}, nil
}
