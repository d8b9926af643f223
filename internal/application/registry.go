package application

import (
	"reflect"

	"spyglass/internal/domain"
)

// Outcome is an adapter's verdict after inspecting a node.
type Outcome int

const (
	// Handled means the node was fully processed; nothing further is
	// needed from the engine.
	Handled Outcome = iota
	// Override means the adapter performed whatever descent it wanted
	// and the engine must not apply its own default descent. Only
	// meaningful for container- or collection-shaped nodes.
	Override
)

// Adapter intercepts traversal for the value types it claims. Adapters are
// registered once at engine construction and are immutable afterwards.
type Adapter interface {
	// Claims returns the type this adapter handles. Resolution uses
	// assignability, so an interface type claims all its implementations.
	Claims() reflect.Type

	// Inspect processes a matching node. The Visit handle gives access to
	// the sink and to recursive descent for adapters that take over.
	Inspect(v *Visit, node domain.Node) Outcome
}

// AdapterFunc adapts a plain function to the Adapter interface.
type AdapterFunc struct {
	Type reflect.Type
	Fn   func(v *Visit, node domain.Node) Outcome
}

// Claims returns the claimed type
func (a AdapterFunc) Claims() reflect.Type { return a.Type }

// Inspect invokes the wrapped function
func (a AdapterFunc) Inspect(v *Visit, node domain.Node) Outcome { return a.Fn(v, node) }

// Registry is the ordered adapter list consulted once per node. The first
// registered adapter whose claimed type is assignable from the node's type
// wins; caller-supplied adapters precede built-in ones, so callers can
// override default behavior for any type they claim.
type Registry struct {
	adapters []Adapter
}

func (r *Registry) register(a Adapter) {
	r.adapters = append(r.adapters, a)
}

// Resolve returns the first adapter claiming t, or nil. Linear scan:
// adapter counts stay in the single digits and traversal width dominates.
func (r *Registry) Resolve(t reflect.Type) Adapter {
	if t == nil {
		return nil
	}
	for _, a := range r.adapters {
		if claimed := a.Claims(); claimed != nil && t.AssignableTo(claimed) {
			return a
		}
	}
	return nil
}

// Len returns the number of registered adapters
func (r *Registry) Len() int { return len(r.adapters) }
