package skemadef

import (
	js "github.com/reoring/skemadef/jsonschema"
)

// Component pairs a schema-document generator with a parser for the same
// shape. SchemaValue is total: it never fails for a well-formed component
// tree. Parse never panics; every failure is returned as issues inside the
// Result. Both sides must accept exactly the same set of Value shapes for a
// fixed Configuration snapshot.
type Component[T any] interface {
	// SchemaValue produces a fresh schema-document fragment on every call.
	// Components are stateless generators; callers memoize if they need to.
	SchemaValue() js.Value
	// Parse validates and transforms a Value tree into T, accumulating all
	// issues from independent sub-checks.
	Parse(v Value) Result[T]
}

// Optional is the designated absence value for optional fields and
// null-accepting wrappers: absent (missing key or accepted null) versus
// present with a value.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] { return Optional[T]{Value: v, Present: true} }

// None returns the absent value.
func None[T any]() Optional[T] { return Optional[T]{} }
