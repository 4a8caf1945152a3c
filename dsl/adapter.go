package dsl

import (
	skemadef "github.com/reoring/skemadef"
	js "github.com/reoring/skemadef/jsonschema"
)

// AnyComponent adapts a Component[T] to an any-typed wrapper so
// heterogeneous fields can share one builder surface. It keeps the original
// component for advanced integrations.
type AnyComponent struct {
	schemaValue func() js.Value
	parse       func(skemadef.Value) skemadef.Result[any]
	orig        any
}

// ComponentOf wraps a strongly typed Component[T] as an AnyComponent for
// field builders.
func ComponentOf[T any](c skemadef.Component[T]) AnyComponent {
	return AnyComponent{
		schemaValue: c.SchemaValue,
		parse: func(v skemadef.Value) skemadef.Result[any] {
			return skemadef.MapResult(c.Parse(v), func(t T) any { return t })
		},
		orig: c,
	}
}

// SchemaValue produces the wrapped component's schema fragment.
func (a AnyComponent) SchemaValue() js.Value {
	if a.schemaValue == nil {
		return js.Object(map[string]js.Value{})
	}
	return a.schemaValue()
}

// Parse delegates to the wrapped component.
func (a AnyComponent) Parse(v skemadef.Value) skemadef.Result[any] {
	if a.parse == nil {
		return skemadef.Valid[any](v.Interface())
	}
	return a.parse(v)
}

// Orig returns the original component used to create this adapter.
func (a AnyComponent) Orig() any { return a.orig }

var _ skemadef.Component[any] = AnyComponent{}
