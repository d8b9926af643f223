package jsonsource

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	root, err := Parse([]byte(`{"name":"probe","tags":["a","b"],"ratio":2.5}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	m, ok := root.(map[string]any)
	if !ok {
		t.Fatalf("root = %T, want map[string]any", root)
	}
	if m["name"] != "probe" || m["ratio"] != 2.5 {
		t.Errorf("fields = %v", m)
	}
	if !reflect.DeepEqual(m["tags"], []any{"a", "b"}) {
		t.Errorf("tags = %v, want [a b]", m["tags"])
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte(`{"name":`)); err == nil {
		t.Error("expected error for truncated document")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`[1,2,3]`), 0644); err != nil {
		t.Fatal(err)
	}

	root, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(root, []any{1.0, 2.0, 3.0}) {
		t.Errorf("root = %v", root)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
