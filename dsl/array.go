package dsl

import (
	"strconv"

	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/i18n"
	js "github.com/reoring/skemadef/jsonschema"
)

// ArrayComponent is an array schema with optional length bounds rendered as
// minItems/maxItems keywords and enforced during parse.
type ArrayComponent[E any] struct {
	elem   skemadef.Component[E]
	minLen int
	maxLen int
}

// Array returns an array component with the given element component.
func Array[E any](elem skemadef.Component[E]) *ArrayComponent[E] {
	return &ArrayComponent[E]{elem: elem, minLen: -1, maxLen: -1}
}

// ArrayOf adapts Array[E] to AnyComponent for use in object builders.
func ArrayOf[E any](elem skemadef.Component[E]) AnyComponent {
	return ComponentOf[[]E](Array(elem))
}

// Min sets the minimum length.
func (a *ArrayComponent[E]) Min(n int) *ArrayComponent[E] { a.minLen = n; return a }

// Max sets the maximum length.
func (a *ArrayComponent[E]) Max(n int) *ArrayComponent[E] { a.maxLen = n; return a }

func (a *ArrayComponent[E]) SchemaValue() js.Value {
	kw := map[string]js.Value{
		js.KeywordType:  js.Str("array"),
		js.KeywordItems: a.elem.SchemaValue(),
	}
	if a.minLen >= 0 {
		kw[js.KeywordMinItems] = js.Int(a.minLen)
	}
	if a.maxLen >= 0 {
		kw[js.KeywordMaxItems] = js.Int(a.maxLen)
	}
	return js.Object(kw)
}

func (a *ArrayComponent[E]) Parse(v skemadef.Value) skemadef.Result[[]E] {
	if v.Kind() != skemadef.KindArray {
		return skemadef.Invalid[[]E](typeMismatch("array"))
	}
	items := v.Items()
	var iss skemadef.Issues
	out := make([]E, 0, len(items))
	for i, it := range items {
		er := a.elem.Parse(it)
		if !er.IsValid() {
			iss = skemadef.AppendIssues(iss, skemadef.RebaseIssues("/"+strconv.Itoa(i), er.Issues())...)
			continue
		}
		out = append(out, er.Value())
	}
	iss = skemadef.AppendIssues(iss, a.countIssues(len(items))...)
	if len(iss) > 0 {
		return skemadef.InvalidIssues[[]E](iss)
	}
	return skemadef.Valid(out)
}

func (a *ArrayComponent[E]) countIssues(n int) skemadef.Issues {
	var iss skemadef.Issues
	if a.minLen >= 0 && n < a.minLen {
		iss = skemadef.AppendIssues(iss, skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeCountMismatch,
			Message: i18n.T(skemadef.CodeCountMismatch, nil),
			Hint:    "array is shorter than minItems",
			Params:  map[string]any{"min": a.minLen, "got": n},
		})
	}
	if a.maxLen >= 0 && n > a.maxLen {
		iss = skemadef.AppendIssues(iss, skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeCountMismatch,
			Message: i18n.T(skemadef.CodeCountMismatch, nil),
			Hint:    "array is longer than maxItems",
			Params:  map[string]any{"max": a.maxLen, "got": n},
		})
	}
	return iss
}

// Tuple returns a fixed-length positional component. The items keyword is
// rendered as a list of per-position fragments with pinned minItems and
// maxItems.
func Tuple(items ...AnyComponent) skemadef.Component[[]any] {
	return tupleComponent{items: items}
}

type tupleComponent struct {
	items []AnyComponent
}

func (t tupleComponent) SchemaValue() js.Value {
	frags := make([]js.Value, 0, len(t.items))
	for _, it := range t.items {
		frags = append(frags, it.SchemaValue())
	}
	return js.Object(map[string]js.Value{
		js.KeywordType:     js.Str("array"),
		js.KeywordItems:    js.Array(frags...),
		js.KeywordMinItems: js.Int(len(t.items)),
		js.KeywordMaxItems: js.Int(len(t.items)),
	})
}

func (t tupleComponent) Parse(v skemadef.Value) skemadef.Result[[]any] {
	if v.Kind() != skemadef.KindArray {
		return skemadef.Invalid[[]any](typeMismatch("array"))
	}
	items := v.Items()
	var iss skemadef.Issues
	if len(items) != len(t.items) {
		iss = skemadef.AppendIssues(iss, skemadef.Issue{
			Path:    "/",
			Code:    skemadef.CodeCountMismatch,
			Message: i18n.T(skemadef.CodeCountMismatch, nil),
			Params:  map[string]any{"min": len(t.items), "max": len(t.items), "got": len(items)},
		})
	}
	out := make([]any, 0, len(t.items))
	for i, it := range t.items {
		if i >= len(items) {
			break
		}
		er := it.Parse(items[i])
		if !er.IsValid() {
			iss = skemadef.AppendIssues(iss, skemadef.RebaseIssues("/"+strconv.Itoa(i), er.Issues())...)
			continue
		}
		out = append(out, er.Value())
	}
	if len(iss) > 0 {
		return skemadef.InvalidIssues[[]any](iss)
	}
	return skemadef.Valid(out)
}
