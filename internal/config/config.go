package config

import (
	"os"
	"strconv"
)

const (
	// DefaultPageSize is the number of collection elements shown per page.
	DefaultPageSize = 5
	// DefaultMaxPageState bounds the number of per-collection pagination
	// entries kept alive at once.
	DefaultMaxPageState = 512
	// DefaultDBPath is where recorded sessions are stored.
	DefaultDBPath = "~/.cache/spyglass/sessions.db"
)

// PageSize returns the page size from SPYGLASS_PAGE_SIZE,
// falling back to DefaultPageSize.
func PageSize() int {
	return intEnv("SPYGLASS_PAGE_SIZE", DefaultPageSize)
}

// MaxPageState returns the pagination entry bound from
// SPYGLASS_MAX_PAGE_STATE, falling back to DefaultMaxPageState.
func MaxPageState() int {
	return intEnv("SPYGLASS_MAX_PAGE_STATE", DefaultMaxPageState)
}

// DBPath returns the session database path from SPYGLASS_DB,
// falling back to DefaultDBPath.
func DBPath() string {
	if env := os.Getenv("SPYGLASS_DB"); env != "" {
		return env
	}
	return DefaultDBPath
}

func intEnv(name string, fallback int) int {
	if env := os.Getenv(name); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
