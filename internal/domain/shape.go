package domain

import "reflect"

// Shape classifies a value for traversal purposes. The set is sealed: every
// value the engine encounters resolves to exactly one shape, and dispatch
// happens on the shape tag rather than on open-ended type introspection.
type Shape int

const (
	// ShapeUnsupported marks values that match no traversable shape
	// (channels, functions). They fall back to a best-effort label.
	ShapeUnsupported Shape = iota
	// ShapeScalar is a plain leaf value: numbers, strings, booleans, nil.
	ShapeScalar
	// ShapeEnumeration is a leaf with a closed set of named values.
	ShapeEnumeration
	// ShapeContainer is a record of named properties.
	ShapeContainer
	// ShapeCollection is an ordered, indexable sequence of elements.
	ShapeCollection
	// ShapeReference is a handle to an entity that lives outside the
	// inspected value graph.
	ShapeReference
)

// String returns the shape name for diagnostics
func (s Shape) String() string {
	switch s {
	case ShapeScalar:
		return "scalar"
	case ShapeEnumeration:
		return "enumeration"
	case ShapeContainer:
		return "container"
	case ShapeCollection:
		return "collection"
	case ShapeReference:
		return "reference"
	default:
		return "unsupported"
	}
}

// Node is one step of a traversal: a named value together with its resolved
// shape. Nodes are built on the stack per step and never retained.
type Node struct {
	// Name identifies the node within its owner: a property name for
	// container children, "[i]" for collection elements, or the root label.
	Name string
	// Value is the node's value as observed through the accessor.
	Value any
	// Type is the runtime type tag used for adapter resolution.
	Type reflect.Type
	// Shape is the value's traversal classification.
	Shape Shape
	// ReadOnly marks nodes whose value cannot be written back through the
	// accessor. It propagates down from read-only owners.
	ReadOnly bool
}

// Enumerated is implemented by leaf values with a closed set of named
// options. Such values emit a Choice event instead of a plain label.
type Enumerated interface {
	// EnumOptions returns all named values, in declaration order.
	EnumOptions() []string
	// EnumIndex returns the index of the current value within EnumOptions.
	EnumIndex() int
}

// Referent is implemented by values that denote a handle into an external
// store rather than inline data. They emit a ReferenceValue event carrying
// the label instead of being descended into.
type Referent interface {
	// RefLabel returns an identifying label for the referenced entity.
	RefLabel() string
}
