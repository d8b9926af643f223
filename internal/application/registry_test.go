package application

import (
	"reflect"
	"testing"

	"spyglass/internal/domain"
)

type claimedConcrete struct{}

type claimedIface interface {
	marker()
}

type ifaceImpl struct{}

func (ifaceImpl) marker() {}

func noopAdapter(t reflect.Type) Adapter {
	return AdapterFunc{Type: t, Fn: func(*Visit, domain.Node) Outcome { return Handled }}
}

func TestRegistryResolve(t *testing.T) {
	t.Run("returns nil when nothing claims the type", func(t *testing.T) {
		var r Registry
		r.register(noopAdapter(reflect.TypeOf(claimedConcrete{})))
		if got := r.Resolve(reflect.TypeOf(42)); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("returns nil for nil type", func(t *testing.T) {
		var r Registry
		r.register(noopAdapter(reflect.TypeOf(claimedConcrete{})))
		if got := r.Resolve(nil); got != nil {
			t.Errorf("expected nil, got %v", got)
		}
	})

	t.Run("matches the exact concrete type", func(t *testing.T) {
		var r Registry
		a := noopAdapter(reflect.TypeOf(claimedConcrete{}))
		r.register(a)
		if got := r.Resolve(reflect.TypeOf(claimedConcrete{})); got == nil {
			t.Error("expected a match")
		}
	})

	t.Run("an interface claim matches implementations", func(t *testing.T) {
		var r Registry
		r.register(noopAdapter(reflect.TypeOf((*claimedIface)(nil)).Elem()))
		if got := r.Resolve(reflect.TypeOf(ifaceImpl{})); got == nil {
			t.Error("expected assignability match")
		}
	})
}

func TestRegistryPrecedence(t *testing.T) {
	// Two adapters claim the same type; the earlier registration wins.
	var fired string
	first := AdapterFunc{
		Type: reflect.TypeOf(claimedConcrete{}),
		Fn: func(*Visit, domain.Node) Outcome {
			fired = "first"
			return Handled
		},
	}
	second := AdapterFunc{
		Type: reflect.TypeOf(claimedConcrete{}),
		Fn: func(*Visit, domain.Node) Outcome {
			fired = "second"
			return Handled
		},
	}

	var r Registry
	r.register(first)
	r.register(second)

	a := r.Resolve(reflect.TypeOf(claimedConcrete{}))
	if a == nil {
		t.Fatal("expected a match")
	}
	a.Inspect(nil, domain.Node{})
	if fired != "first" {
		t.Errorf("fired = %q, want first", fired)
	}
}

func TestRegistrySpecificBeforeGeneric(t *testing.T) {
	// A specific claim registered ahead of a generic interface claim
	// shadows it for the specific type only.
	var fired string
	specific := AdapterFunc{
		Type: reflect.TypeOf(ifaceImpl{}),
		Fn: func(*Visit, domain.Node) Outcome {
			fired = "specific"
			return Handled
		},
	}
	generic := AdapterFunc{
		Type: reflect.TypeOf((*claimedIface)(nil)).Elem(),
		Fn: func(*Visit, domain.Node) Outcome {
			fired = "generic"
			return Handled
		},
	}

	var r Registry
	r.register(specific)
	r.register(generic)

	r.Resolve(reflect.TypeOf(ifaceImpl{})).Inspect(nil, domain.Node{})
	if fired != "specific" {
		t.Errorf("fired = %q, want specific", fired)
	}
}
