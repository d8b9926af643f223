package commands

import (
	"context"
	"fmt"

	"spyglass/internal/application"
	"spyglass/internal/ports"
)

// RecordResult carries the outcome of a recording
type RecordResult struct {
	SessionID int64
	Events    int
	Message   string
}

// RecordCommand traverses a root value while persisting the event stream
// as a new session in the session log.
type RecordCommand struct {
	accessor ports.Accessor
	log      ports.SessionLog
	label    string
	root     any
	opts     []application.Option
}

// NewRecordCommand creates a record command for the given root
func NewRecordCommand(accessor ports.Accessor, log ports.SessionLog, label string, root any, opts ...application.Option) *RecordCommand {
	return &RecordCommand{accessor: accessor, log: log, label: label, root: root, opts: opts}
}

// Execute runs one recorded traversal pass
func (c *RecordCommand) Execute(ctx context.Context) (*RecordResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sessionID, err := c.log.BeginSession(c.label)
	if err != nil {
		return nil, err
	}

	capture := &application.CaptureSink{}
	recording := application.NewRecordingSink(c.log, sessionID, capture)
	engine := application.NewEngine(c.accessor, recording, c.opts...)
	engine.Visit(c.label, c.root)

	if err := recording.Err(); err != nil {
		return nil, fmt.Errorf("session %d incomplete: %w", sessionID, err)
	}
	return &RecordResult{
		SessionID: sessionID,
		Events:    len(capture.Events),
		Message:   fmt.Sprintf("recorded session %d (%d events)", sessionID, len(capture.Events)),
	}, nil
}
