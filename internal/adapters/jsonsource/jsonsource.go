// Package jsonsource turns JSON documents into inspectable root values.
// Objects decode to map[string]any (containers), arrays to []any
// (collections), everything else to scalars. A document loaded once keeps
// its instance identities, so pagination state stays attached across
// repeated traversal passes.
package jsonsource

import (
	"encoding/json"
	"fmt"
	"os"
)

// Load reads and parses the JSON document at path.
func Load(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	root, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return root, nil
}

// Parse decodes a JSON document into a root value.
func Parse(data []byte) (any, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, err
	}
	return root, nil
}
