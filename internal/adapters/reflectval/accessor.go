// Package reflectval implements the property-accessor port over arbitrary
// Go values using the reflect package. All runtime type introspection in
// the program is confined to this adapter; the engine itself only sees the
// sealed shape tags.
package reflectval

import (
	"fmt"
	"reflect"
	"sort"

	"spyglass/internal/domain"
	"spyglass/internal/ports"
)

// Accessor inspects Go values: structs and maps are containers, slices and
// arrays are collections, values implementing domain.Enumerated or
// domain.Referent are enumeration and reference leaves.
type Accessor struct{}

var _ ports.Accessor = (*Accessor)(nil)

// New creates a reflection accessor
func New() *Accessor { return &Accessor{} }

// Shape classifies v. Pointers and interfaces are followed to their
// target; nil values of any kind are scalars.
func (a *Accessor) Shape(v any) domain.Shape {
	switch v.(type) {
	case domain.Enumerated:
		return domain.ShapeEnumeration
	case domain.Referent:
		return domain.ShapeReference
	}

	rv, ok := settle(v)
	if !ok {
		return domain.ShapeScalar
	}
	switch rv.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return domain.ShapeScalar
	case reflect.Slice, reflect.Array:
		return domain.ShapeCollection
	case reflect.Struct, reflect.Map:
		return domain.ShapeContainer
	default:
		return domain.ShapeUnsupported
	}
}

// Properties returns a container's properties: struct fields in
// declaration order (exported only), or map entries sorted by key.
func (a *Accessor) Properties(container any) []ports.Property {
	rv, ok := settle(container)
	if !ok {
		return nil
	}
	switch rv.Kind() {
	case reflect.Struct:
		return structProperties(rv)
	case reflect.Map:
		return mapProperties(rv)
	default:
		return nil
	}
}

// Count returns a collection's element count.
func (a *Accessor) Count(collection any) int {
	rv, ok := settle(collection)
	if !ok {
		return 0
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return rv.Len()
	default:
		return 0
	}
}

// Element returns the indexed element, named "[i]".
func (a *Accessor) Element(collection any, index int) (string, any) {
	name := fmt.Sprintf("[%d]", index)
	rv, ok := settle(collection)
	if !ok || index < 0 || index >= rv.Len() {
		return name, nil
	}
	return name, rv.Index(index).Interface()
}

// Identity returns a reference-exact key for a collection instance. Slices
// key on their element array's address, pointers to arrays on the pointer,
// so distinct instances never share pagination state. A bare array copied
// into an interface has no instance identity; it keys on its type, which
// is the best a copy admits.
func (a *Accessor) Identity(collection any) string {
	rv := reflect.ValueOf(collection)
	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return "nil"
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return "nil"
		}
		return fmt.Sprintf("%s@%#x", rv.Type(), rv.Pointer())
	}
	if rv.Kind() == reflect.Slice {
		if rv.IsNil() {
			return fmt.Sprintf("%s@nil", rv.Type())
		}
		return fmt.Sprintf("%s@%#x+%d", rv.Type(), rv.Pointer(), rv.Len())
	}
	return rv.Type().String()
}

func structProperties(rv reflect.Value) []ports.Property {
	t := rv.Type()
	props := make([]ports.Property, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		fv := rv.Field(i)
		prop := ports.Property{
			Name:     field.Name,
			ReadOnly: !fv.CanSet(),
			Get:      func() any { return fv.Interface() },
		}
		if fv.CanSet() {
			prop.Set = func(v any) error {
				nv := reflect.ValueOf(v)
				if !nv.Type().AssignableTo(fv.Type()) {
					return fmt.Errorf("cannot assign %s to field %s of type %s", nv.Type(), field.Name, fv.Type())
				}
				fv.Set(nv)
				return nil
			}
		}
		props = append(props, prop)
	}
	return props
}

func mapProperties(rv reflect.Value) []ports.Property {
	keys := rv.MapKeys()
	names := make([]string, len(keys))
	byName := make(map[string]reflect.Value, len(keys))
	for i, k := range keys {
		name := fmt.Sprintf("%v", k.Interface())
		names[i] = name
		byName[name] = k
	}
	sort.Strings(names)

	mv := rv
	props := make([]ports.Property, 0, len(names))
	for _, name := range names {
		key := byName[name]
		props = append(props, ports.Property{
			Name: name,
			Get:  func() any { return mv.MapIndex(key).Interface() },
			Set: func(v any) error {
				nv := reflect.ValueOf(v)
				if !nv.Type().AssignableTo(mv.Type().Elem()) {
					return fmt.Errorf("cannot assign %s to map value of type %s", nv.Type(), mv.Type().Elem())
				}
				mv.SetMapIndex(key, nv)
				return nil
			},
		})
	}
	return props
}

// settle follows pointers and interfaces to the underlying value. The
// second return is false for nil at any level.
func settle(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	return rv, true
}
