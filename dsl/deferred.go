package dsl

import (
	"sync"

	skemadef "github.com/reoring/skemadef"
	js "github.com/reoring/skemadef/jsonschema"
)

// Deferred builds a component whose definition is resolved lazily, which
// lets recursive structures reference themselves by name. The schema side
// emits a $defs reference; install the resolved fragment on the final
// document with WithDefinitions so the reference resolves.
func Deferred[T any](name string, fn func() skemadef.Component[T]) *DeferredComponent[T] {
	return &DeferredComponent[T]{name: name, fn: fn}
}

// DeferredComponent is the lazy reference built by Deferred.
type DeferredComponent[T any] struct {
	name string
	fn   func() skemadef.Component[T]

	once     sync.Once
	resolved skemadef.Component[T]
}

func (d *DeferredComponent[T]) resolve() skemadef.Component[T] {
	d.once.Do(func() {
		d.resolved = d.fn()
	})
	return d.resolved
}

func (d *DeferredComponent[T]) SchemaValue() js.Value {
	return js.Ref(d.name)
}

func (d *DeferredComponent[T]) Parse(v skemadef.Value) skemadef.Result[T] {
	return d.resolve().Parse(v)
}

// DefinitionName returns the $defs key the emitted reference points at.
func (d *DeferredComponent[T]) DefinitionName() string { return d.name }

// DefinitionValue returns the resolved component's schema fragment. The
// fragment may embed the reference itself; a $defs entry referring to its
// own name is well-formed.
func (d *DeferredComponent[T]) DefinitionValue() js.Value {
	return d.resolve().SchemaValue()
}

// SchemaDefinition is a named schema fragment that must be present under
// $defs for a referencing document to resolve.
type SchemaDefinition interface {
	DefinitionName() string
	DefinitionValue() js.Value
}

// WithDefinitions installs each fragment under $defs on the document root,
// keeping entries already present. A document that embeds deferred
// references needs this before validation or encoding; parsing does not,
// because the component resolves its thunk directly.
func WithDefinitions(root js.Value, defs ...SchemaDefinition) js.Value {
	if len(defs) == 0 {
		return root
	}
	out := map[string]js.Value{}
	if existing, ok := root.Keyword(js.KeywordDefs); ok && existing.Kind() == js.KindObject {
		for name, def := range existing.Keywords() {
			out[name] = def
		}
	}
	for _, d := range defs {
		out[d.DefinitionName()] = d.DefinitionValue()
	}
	return root.WithKeyword(js.KeywordDefs, js.Object(out))
}
