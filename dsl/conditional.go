package dsl

import (
	skemadef "github.com/reoring/skemadef"
	js "github.com/reoring/skemadef/jsonschema"
)

// NullRenderStyle selects how an accepted-null schema is rendered. The
// difference is purely cosmetic; both styles validate the same inputs.
type NullRenderStyle int

const (
	// NullAnyOf renders anyOf: [wrapped, {type: "null"}]. Used for
	// composite fragments whose type keyword cannot be widened.
	NullAnyOf NullRenderStyle = iota
	// NullTypeUnion widens the type keyword to [..., "null"]. Used for
	// schema-primitive leaves.
	NullTypeUnion
)

// WhenNullAllowed wraps a component so that null acceptance is decided at
// the moment of use by the configuration store, not at construction. The
// output type is Optional regardless of which path is taken, so callers see
// one stable shape.
//
// Both SchemaValue and Parse resolve the effective setting independently on
// every call; a configuration change takes effect on the next call without
// rebuilding the component. A nil cfg resolves against the process default.
func WhenNullAllowed[T any](c skemadef.Component[T], scope string, style NullRenderStyle, cfg *skemadef.Configuration) skemadef.Component[skemadef.Optional[T]] {
	return conditionalComponent[T]{c: c, scope: scope, style: style, cfg: cfg}
}

type conditionalComponent[T any] struct {
	c     skemadef.Component[T]
	scope string
	style NullRenderStyle
	cfg   *skemadef.Configuration
}

func (cc conditionalComponent[T]) config() *skemadef.Configuration {
	if cc.cfg != nil {
		return cc.cfg
	}
	return skemadef.Default()
}

func (cc conditionalComponent[T]) SchemaValue() js.Value {
	base := cc.c.SchemaValue()
	if !cc.config().Resolve(cc.scope).AcceptNull {
		return base
	}
	return renderWithNull(base, cc.style)
}

func (cc conditionalComponent[T]) Parse(v skemadef.Value) skemadef.Result[skemadef.Optional[T]] {
	if cc.config().Resolve(cc.scope).AcceptNull && v.IsNull() {
		return skemadef.Valid(skemadef.None[T]())
	}
	return skemadef.MapResult(cc.c.Parse(v), skemadef.Some[T])
}

// renderWithNull unions a fragment with the null type per the given style.
// When the type keyword cannot be widened the anyOf rendering is used
// regardless of style, keeping generation total.
func renderWithNull(base js.Value, style NullRenderStyle) js.Value {
	if style == NullTypeUnion {
		if t, ok := base.Keyword(js.KeywordType); ok {
			switch t.Kind() {
			case js.KindString:
				if t.StringValue() == "null" {
					return base
				}
				return base.WithKeyword(js.KeywordType, js.Array(t, js.Str("null")))
			case js.KindArray:
				for _, name := range t.Items() {
					if name.Kind() == js.KindString && name.StringValue() == "null" {
						return base
					}
				}
				return base.WithKeyword(js.KeywordType, js.Array(append(t.Items(), js.Str("null"))...))
			}
		}
	}
	return js.Object(map[string]js.Value{
		js.KeywordAnyOf: js.Array(base, js.Object(map[string]js.Value{js.KeywordType: js.Str("null")})),
	})
}
