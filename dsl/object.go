package dsl

import (
	"fmt"

	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/i18n"
	js "github.com/reoring/skemadef/jsonschema"
)

type objectField struct {
	name     string
	comp     AnyComponent
	required bool
}

type objectBuilder struct {
	fields []objectField
	scope  string
	cfg    *skemadef.Configuration
	err    error
}

type fieldStep struct {
	b   *objectBuilder
	idx int
}

// Object creates a new object builder. Fields keep declaration order for
// both the properties map and the required list.
func Object() *objectBuilder {
	return &objectBuilder{}
}

// Field registers a field with its component. Fields are optional until
// marked Required.
func (b *objectBuilder) Field(name string, c AnyComponent) *fieldStep {
	for _, f := range b.fields {
		if f.name == name {
			if b.err == nil {
				b.err = fmt.Errorf("dsl: duplicate field %q", name)
			}
			return &fieldStep{b: b, idx: -1}
		}
	}
	b.fields = append(b.fields, objectField{name: name, comp: c})
	return &fieldStep{b: b, idx: len(b.fields) - 1}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	if f.idx >= 0 {
		f.b.fields[f.idx].required = true
	}
	return f.b
}

// Optional marks the field as optional (the default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	if f.idx >= 0 {
		f.b.fields[f.idx].required = false
	}
	return f.b
}

func (f *fieldStep) Field(name string, c AnyComponent) *fieldStep { return f.b.Field(name, c) }
func (f *fieldStep) Scope(name string) *objectBuilder             { return f.b.Scope(name) }
func (f *fieldStep) Config(cfg *skemadef.Configuration) *objectBuilder {
	return f.b.Config(cfg)
}
func (f *fieldStep) Build() (skemadef.Component[map[string]any], error) { return f.b.Build() }
func (f *fieldStep) MustBuild() skemadef.Component[map[string]any]      { return f.b.MustBuild() }

// Scope binds the object to a named configuration scope; the key-naming
// strategy is resolved through it at every SchemaValue/Parse call.
func (b *objectBuilder) Scope(name string) *objectBuilder {
	b.scope = name
	return b
}

// Config injects an explicit configuration store. Without it the object
// resolves against the process-wide default.
func (b *objectBuilder) Config(cfg *skemadef.Configuration) *objectBuilder {
	b.cfg = cfg
	return b
}

// Build validates the builder and returns the component. Builder misuse
// (duplicate field names) is a construction-time defect surfaced here, not
// a parse-time issue.
func (b *objectBuilder) Build() (skemadef.Component[map[string]any], error) {
	if b.err != nil {
		return nil, b.err
	}
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)
	return &objectComponent{fields: fields, scope: b.scope, cfg: b.cfg}, nil
}

// MustBuild is like Build but panics on error.
func (b *objectBuilder) MustBuild() skemadef.Component[map[string]any] {
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return c
}

type objectComponent struct {
	fields []objectField
	scope  string
	cfg    *skemadef.Configuration
}

var _ skemadef.Component[map[string]any] = (*objectComponent)(nil)

func (o *objectComponent) config() *skemadef.Configuration {
	if o.cfg != nil {
		return o.cfg
	}
	return skemadef.Default()
}

func (o *objectComponent) SchemaValue() js.Value {
	r := o.config().Resolve(o.scope)
	props := make(map[string]js.Value, len(o.fields))
	var required []js.Value
	for _, f := range o.fields {
		key := skemadef.EncodeKey(f.name, r.KeyNaming)
		props[key] = f.comp.SchemaValue()
		if f.required {
			required = append(required, js.Str(key))
		}
	}
	kw := map[string]js.Value{
		js.KeywordType:       js.Str("object"),
		js.KeywordProperties: js.Object(props),
	}
	if len(required) > 0 {
		kw[js.KeywordRequired] = js.Array(required...)
	}
	return js.Object(kw)
}

func (o *objectComponent) Parse(v skemadef.Value) skemadef.Result[map[string]any] {
	if v.Kind() != skemadef.KindObject {
		return skemadef.Invalid[map[string]any](typeMismatch("object"))
	}
	r := o.config().Resolve(o.scope)
	out := make(map[string]any, len(o.fields))
	var iss skemadef.Issues
	for _, f := range o.fields {
		key := skemadef.EncodeKey(f.name, r.KeyNaming)
		mv, exists := v.Member(key)
		if !exists {
			if f.required {
				iss = skemadef.AppendIssues(iss, skemadef.Issue{
					Path:    "/" + key,
					Code:    skemadef.CodeMissingRequired,
					Message: i18n.T(skemadef.CodeMissingRequired, nil),
					Hint:    "required property missing",
				})
			}
			// missing optional: the field is simply absent from the output
			continue
		}
		fr := f.comp.Parse(mv)
		if !fr.IsValid() {
			iss = skemadef.AppendIssues(iss, skemadef.RebaseIssues("/"+key, fr.Issues())...)
			continue
		}
		out[f.name] = fr.Value()
	}
	if len(iss) > 0 {
		return skemadef.InvalidIssues[map[string]any](iss)
	}
	return skemadef.Valid(out)
}
