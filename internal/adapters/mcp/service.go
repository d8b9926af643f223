// Package mcp exposes the inspector over the Model Context Protocol so
// agent tooling can dump value trees and drive collection paging.
package mcp

import (
	"fmt"

	"spyglass/internal/adapters/jsonsource"
	"spyglass/internal/application"
	"spyglass/internal/ports"
)

// Service holds the long-lived inspection state behind the MCP tools: one
// engine with its page store, a capture sink reused per pass, and the
// loaded roots keyed by file path. Roots are cached so collection
// identities (and with them pagination state) survive across tool calls.
type Service struct {
	engine  *application.Engine
	capture *application.CaptureSink
	roots   map[string]any
}

// NewService creates the MCP inspection service
func NewService(accessor ports.Accessor, opts ...application.Option) *Service {
	capture := &application.CaptureSink{}
	return &Service{
		engine:  application.NewEngine(accessor, capture, opts...),
		capture: capture,
		roots:   make(map[string]any),
	}
}

// root returns the cached root for path, loading it on first use.
func (s *Service) root(path string) (any, error) {
	if root, ok := s.roots[path]; ok {
		return root, nil
	}
	root, err := jsonsource.Load(path)
	if err != nil {
		return nil, err
	}
	s.roots[path] = root
	return root, nil
}

// inspect runs one traversal pass over the file and returns the captured
// events.
func (s *Service) inspect(path string) error {
	root, err := s.root(path)
	if err != nil {
		return err
	}
	s.capture.Reset()
	s.engine.Visit(path, root)
	return nil
}

// setPage feeds a page selection back into the engine's page store.
func (s *Service) setPage(key string, page int) error {
	if key == "" {
		return fmt.Errorf("collection key must not be empty")
	}
	s.engine.Pages().SetPage(key, page)
	return nil
}
