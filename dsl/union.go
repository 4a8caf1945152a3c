package dsl

import (
	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/i18n"
	js "github.com/reoring/skemadef/jsonschema"
)

// AnyOf returns a choice component that tries branches in declaration order
// and succeeds on the first branch that parses without issues.
func AnyOf[T any](branches ...skemadef.Component[T]) skemadef.Component[T] {
	return choiceComponent[T]{branches: branches, keyword: js.KeywordAnyOf}
}

// OneOf returns a choice component that requires exactly one branch to
// succeed; more than one is ambiguous, none is no match.
func OneOf[T any](branches ...skemadef.Component[T]) skemadef.Component[T] {
	return choiceComponent[T]{branches: branches, keyword: js.KeywordOneOf, exclusive: true}
}

type choiceComponent[T any] struct {
	branches  []skemadef.Component[T]
	keyword   string
	exclusive bool
}

func (c choiceComponent[T]) SchemaValue() js.Value {
	frags := make([]js.Value, 0, len(c.branches))
	for _, b := range c.branches {
		frags = append(frags, b.SchemaValue())
	}
	return js.Object(map[string]js.Value{c.keyword: js.Array(frags...)})
}

func (c choiceComponent[T]) Parse(v skemadef.Value) skemadef.Result[T] {
	if !c.exclusive {
		for _, b := range c.branches {
			if r := b.Parse(v); r.IsValid() {
				return r
			}
		}
		return skemadef.Invalid[T](skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeNoMatch,
			Message: i18n.T(skemadef.CodeNoMatch, nil),
			Hint:    "no anyOf branch matched",
		})
	}

	var hit skemadef.Result[T]
	matches := 0
	for _, b := range c.branches {
		if r := b.Parse(v); r.IsValid() {
			if matches == 0 {
				hit = r
			}
			matches++
		}
	}
	switch matches {
	case 1:
		return hit
	case 0:
		return skemadef.Invalid[T](skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeNoMatch,
			Message: i18n.T(skemadef.CodeNoMatch, nil),
			Hint:    "no oneOf branch matched",
		})
	default:
		return skemadef.Invalid[T](skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeAmbiguousMatch,
			Message: i18n.T(skemadef.CodeAmbiguousMatch, nil),
			Params:  map[string]any{"matches": matches},
		})
	}
}
