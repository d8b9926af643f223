package reflectval

import (
	"reflect"
	"testing"

	"spyglass/internal/domain"
)

type level int

func (l level) EnumOptions() []string { return []string{"low", "high"} }
func (l level) EnumIndex() int        { return int(l) }

type docRef string

func (r docRef) RefLabel() string { return string(r) }

type sample struct {
	Name   string
	Count  int
	hidden bool
}

func TestShape(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected domain.Shape
	}{
		{
			name:     "nil is a scalar",
			value:    nil,
			expected: domain.ShapeScalar,
		},
		{
			name:     "string",
			value:    "x",
			expected: domain.ShapeScalar,
		},
		{
			name:     "int",
			value:    7,
			expected: domain.ShapeScalar,
		},
		{
			name:     "float",
			value:    1.5,
			expected: domain.ShapeScalar,
		},
		{
			name:     "struct is a container",
			value:    sample{},
			expected: domain.ShapeContainer,
		},
		{
			name:     "pointer to struct follows the pointer",
			value:    &sample{},
			expected: domain.ShapeContainer,
		},
		{
			name:     "nil struct pointer is a scalar",
			value:    (*sample)(nil),
			expected: domain.ShapeScalar,
		},
		{
			name:     "map is a container",
			value:    map[string]any{"a": 1},
			expected: domain.ShapeContainer,
		},
		{
			name:     "slice is a collection",
			value:    []int{1, 2},
			expected: domain.ShapeCollection,
		},
		{
			name:     "array is a collection",
			value:    [3]string{},
			expected: domain.ShapeCollection,
		},
		{
			name:     "enumerated value",
			value:    level(1),
			expected: domain.ShapeEnumeration,
		},
		{
			name:     "referent value",
			value:    docRef("doc#1"),
			expected: domain.ShapeReference,
		},
		{
			name:     "func is unsupported",
			value:    func() {},
			expected: domain.ShapeUnsupported,
		},
		{
			name:     "chan is unsupported",
			value:    make(chan int),
			expected: domain.ShapeUnsupported,
		},
	}

	a := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Shape(tt.value); got != tt.expected {
				t.Errorf("Shape(%v) = %v, want %v", tt.value, got, tt.expected)
			}
		})
	}
}

func TestStructProperties(t *testing.T) {
	a := New()
	s := &sample{Name: "probe", Count: 3, hidden: true}

	props := a.Properties(s)
	if len(props) != 2 {
		t.Fatalf("got %d properties, want 2 (unexported field must be skipped)", len(props))
	}
	if props[0].Name != "Name" || props[1].Name != "Count" {
		t.Errorf("field order = %s, %s; want declaration order Name, Count", props[0].Name, props[1].Name)
	}
	if got := props[0].Get(); got != "probe" {
		t.Errorf("Name = %v, want probe", got)
	}
	if props[0].ReadOnly {
		t.Error("fields of an addressable struct should be settable")
	}

	if err := props[1].Set(9); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if s.Count != 9 {
		t.Errorf("Count after Set = %d, want 9", s.Count)
	}

	if err := props[1].Set("not an int"); err == nil {
		t.Error("expected assignability error")
	}
}

func TestStructByValueIsReadOnly(t *testing.T) {
	a := New()
	props := a.Properties(sample{Name: "copy"})
	if len(props) != 2 {
		t.Fatalf("got %d properties, want 2", len(props))
	}
	for _, p := range props {
		if !p.ReadOnly {
			t.Errorf("property %s of a value copy should be read-only", p.Name)
		}
	}
}

func TestMapProperties(t *testing.T) {
	a := New()
	m := map[string]any{"zeta": 1, "alpha": 2, "mid": 3}

	props := a.Properties(m)
	if len(props) != 3 {
		t.Fatalf("got %d properties, want 3", len(props))
	}
	got := []string{props[0].Name, props[1].Name, props[2].Name}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("key order = %v, want %v", got, want)
	}

	if err := props[0].Set(42); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if m["alpha"] != 42 {
		t.Errorf("alpha after Set = %v, want 42", m["alpha"])
	}
}

func TestCountAndElement(t *testing.T) {
	a := New()
	s := []string{"a", "b", "c"}

	if got := a.Count(s); got != 3 {
		t.Errorf("Count = %d, want 3", got)
	}

	name, val := a.Element(s, 1)
	if name != "[1]" || val != "b" {
		t.Errorf("Element(1) = %q, %v; want [1], b", name, val)
	}

	name, val = a.Element(s, 5)
	if name != "[5]" || val != nil {
		t.Errorf("out-of-range Element = %q, %v; want [5], nil", name, val)
	}

	if got := a.Count(42); got != 0 {
		t.Errorf("Count of non-collection = %d, want 0", got)
	}
}

func TestIdentity(t *testing.T) {
	a := New()

	s := make([]int, 3, 10)
	k1 := a.Identity(s)
	k2 := a.Identity(s)
	if k1 != k2 {
		t.Errorf("same slice produced different keys: %q vs %q", k1, k2)
	}

	// Re-slicing the same array to the same length keeps the key.
	if k3 := a.Identity(s[:3]); k3 != k1 {
		t.Errorf("equivalent reslice changed the key: %q vs %q", k3, k1)
	}

	// A distinct backing array is a distinct collection.
	other := make([]int, 3)
	if ko := a.Identity(other); ko == k1 {
		t.Errorf("distinct slices share key %q", ko)
	}

	// Appending within capacity changes the visible length and the key,
	// so the page store re-clamps against the new count.
	grown := append(s, 4)
	if kg := a.Identity(grown); kg == k1 {
		t.Errorf("grown slice kept key %q", kg)
	}

	arr := &[4]int{}
	ka1 := a.Identity(arr)
	ka2 := a.Identity(arr)
	if ka1 != ka2 {
		t.Errorf("same array pointer produced different keys: %q vs %q", ka1, ka2)
	}

	if kn := a.Identity([]int(nil)); kn == "" {
		t.Error("nil slice should still produce a key")
	}
}
