package dsl

import (
	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/i18n"
	js "github.com/reoring/skemadef/jsonschema"
)

// Map transforms a successful parse. It always succeeds when the wrapped
// parse succeeded; the schema fragment is unchanged.
func Map[A, B any](c skemadef.Component[A], fn func(A) B) skemadef.Component[B] {
	return mapComponent[A, B]{c: c, fn: fn}
}

type mapComponent[A, B any] struct {
	c  skemadef.Component[A]
	fn func(A) B
}

func (m mapComponent[A, B]) SchemaValue() js.Value { return m.c.SchemaValue() }

func (m mapComponent[A, B]) Parse(v skemadef.Value) skemadef.Result[B] {
	return skemadef.MapResult(m.c.Parse(v), m.fn)
}

// CompactMap transforms a successful parse and may reject the value. A
// rejection surfaces as a constraint_violation issue tagged with the rule
// name; this is the mechanism for whole-value invariants that keyword
// constraints cannot express.
func CompactMap[A, B any](c skemadef.Component[A], rule string, fn func(A) (B, error)) skemadef.Component[B] {
	return compactMapComponent[A, B]{c: c, rule: rule, fn: fn}
}

type compactMapComponent[A, B any] struct {
	c    skemadef.Component[A]
	rule string
	fn   func(A) (B, error)
}

func (m compactMapComponent[A, B]) SchemaValue() js.Value { return m.c.SchemaValue() }

func (m compactMapComponent[A, B]) Parse(v skemadef.Value) skemadef.Result[B] {
	return skemadef.ThenResult(m.c.Parse(v), func(a A) skemadef.Result[B] {
		b, err := m.fn(a)
		if err != nil {
			if iss, ok := skemadef.AsIssues(err); ok {
				return skemadef.InvalidIssues[B](iss)
			}
			return skemadef.Invalid[B](skemadef.Issue{
				Path:    "/",
				Code:    skemadef.CodeConstraintViolation,
				Message: i18n.T(skemadef.CodeConstraintViolation, nil),
				Hint:    err.Error(),
				Rule:    m.rule,
			})
		}
		return skemadef.Valid(b)
	})
}

// annotated adds metadata keywords to a fragment without altering parse
// behavior.
type annotated[T any] struct {
	c       skemadef.Component[T]
	keyword string
	value   js.Value
}

func (a annotated[T]) SchemaValue() js.Value {
	return a.c.SchemaValue().WithKeyword(a.keyword, a.value)
}

func (a annotated[T]) Parse(v skemadef.Value) skemadef.Result[T] { return a.c.Parse(v) }

// Describe adds a description keyword.
func Describe[T any](c skemadef.Component[T], description string) skemadef.Component[T] {
	return annotated[T]{c: c, keyword: js.KeywordDescription, value: js.Str(description)}
}

// Title adds a title keyword. Titles also serve as suggested names when
// the deduplication pass extracts a repeated fragment.
func Title[T any](c skemadef.Component[T], title string) skemadef.Component[T] {
	return annotated[T]{c: c, keyword: js.KeywordTitle, value: js.Str(title)}
}

// Anchor adds a $anchor keyword. The last dot-separated component of the
// identifier is the fallback naming hint for deduplication.
func Anchor[T any](c skemadef.Component[T], anchor string) skemadef.Component[T] {
	return annotated[T]{c: c, keyword: js.KeywordAnchor, value: js.Str(anchor)}
}

// WithDefault adds a default keyword. The default is documentation only;
// parse behavior is unchanged.
func WithDefault[T any](c skemadef.Component[T], dv js.Value) skemadef.Component[T] {
	return annotated[T]{c: c, keyword: js.KeywordDefault, value: dv}
}

// WithExamples adds an examples keyword.
func WithExamples[T any](c skemadef.Component[T], examples ...js.Value) skemadef.Component[T] {
	return annotated[T]{c: c, keyword: js.KeywordExamples, value: js.Array(examples...)}
}

// Bounds carries optional numeric limits. Nil means unset.
type Bounds struct {
	Minimum *float64
	Maximum *float64
}

// FloatPtr is a convenience for building Bounds literals.
func FloatPtr(v float64) *float64 { return &v }

// Constrain adds minimum/maximum keywords. By contract this is pure
// annotation: the keywords document the constraint, parse behavior is
// unchanged. Use CompactMap when the constraint must be enforced.
func Constrain[T any](c skemadef.Component[T], b Bounds) skemadef.Component[T] {
	return constrained[T]{c: c, bounds: b}
}

type constrained[T any] struct {
	c      skemadef.Component[T]
	bounds Bounds
}

func (cc constrained[T]) SchemaValue() js.Value {
	out := cc.c.SchemaValue()
	if cc.bounds.Minimum != nil {
		out = out.WithKeyword(js.KeywordMinimum, js.Num(*cc.bounds.Minimum))
	}
	if cc.bounds.Maximum != nil {
		out = out.WithKeyword(js.KeywordMaximum, js.Num(*cc.bounds.Maximum))
	}
	return out
}

func (cc constrained[T]) Parse(v skemadef.Value) skemadef.Result[T] { return cc.c.Parse(v) }

// Nullable wraps a component to accept null unconditionally, producing the
// absent Optional for null input. Schema rendering follows the given style.
func Nullable[T any](c skemadef.Component[T], style NullRenderStyle) skemadef.Component[skemadef.Optional[T]] {
	return nullableComponent[T]{c: c, style: style}
}

type nullableComponent[T any] struct {
	c     skemadef.Component[T]
	style NullRenderStyle
}

func (n nullableComponent[T]) SchemaValue() js.Value {
	return renderWithNull(n.c.SchemaValue(), n.style)
}

func (n nullableComponent[T]) Parse(v skemadef.Value) skemadef.Result[skemadef.Optional[T]] {
	if v.IsNull() {
		return skemadef.Valid(skemadef.None[T]())
	}
	return skemadef.MapResult(n.c.Parse(v), skemadef.Some[T])
}
