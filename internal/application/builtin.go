package application

import (
	"reflect"
	"time"

	"spyglass/internal/domain"
)

// Built-in adapters registered behind any caller-supplied ones, so a
// caller claiming the same type always wins.
func builtinAdapters() []Adapter {
	return []Adapter{
		AdapterFunc{Type: reflect.TypeOf(time.Time{}), Fn: inspectTime},
		AdapterFunc{Type: reflect.TypeOf((*error)(nil)).Elem(), Fn: inspectError},
	}
}

// inspectTime renders time.Time as a single RFC 3339 label instead of
// descending into its unexported fields.
func inspectTime(v *Visit, n domain.Node) Outcome {
	t := n.Value.(time.Time)
	v.Sink().LabeledValue(n.Name, t.Format(time.RFC3339))
	return Handled
}

// inspectError renders any error value as its message.
func inspectError(v *Visit, n domain.Node) Outcome {
	err := n.Value.(error)
	v.Sink().LabeledValue(n.Name, err.Error())
	return Handled
}
