package commands

import (
	"context"
	"fmt"

	"spyglass/internal/application"
	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// DumpResult carries the outcome of a dump
type DumpResult struct {
	Events  []domain.Event
	Message string
}

// DumpCommand traverses a root value once and captures the full event
// stream.
type DumpCommand struct {
	accessor ports.Accessor
	name     string
	root     any
	opts     []application.Option
}

// NewDumpCommand creates a dump command for the given root
func NewDumpCommand(accessor ports.Accessor, name string, root any, opts ...application.Option) *DumpCommand {
	return &DumpCommand{accessor: accessor, name: name, root: root, opts: opts}
}

// Execute runs one traversal pass
func (c *DumpCommand) Execute(ctx context.Context) (*DumpResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	capture := &application.CaptureSink{}
	engine := application.NewEngine(c.accessor, capture, c.opts...)
	engine.Visit(c.name, c.root)

	return &DumpResult{
		Events:  capture.Events,
		Message: fmt.Sprintf("inspected %q: %d events", c.name, len(capture.Events)),
	}, nil
}
