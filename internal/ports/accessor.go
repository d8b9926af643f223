package ports

import "spyglass/internal/domain"

// Property describes one named field of a container value, with typed
// access to read and (when permitted) write it.
type Property struct {
	Name     string
	ReadOnly bool
	Get      func() any
	Set      func(v any) error
}

// Accessor is the property-accessor boundary the engine reads the
// inspected data through. The engine never touches stored values directly;
// classification, enumeration of properties, and element access all go
// through this interface.
type Accessor interface {
	// Shape classifies a value into its traversal shape.
	Shape(v any) domain.Shape

	// Properties returns a container's properties in declaration order.
	Properties(container any) []Property

	// Count returns a collection's total element count.
	Count(collection any) int

	// Element returns the element at the given index along with its
	// display name.
	Element(collection any, index int) (name string, value any)

	// Identity returns a stable key for a collection instance. Keys are
	// derived from the instance's identity, never its contents, so two
	// distinct collections never share pagination state.
	Identity(collection any) string
}
