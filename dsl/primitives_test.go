package dsl_test

import (
	"testing"

	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/dsl"
	js "github.com/reoring/skemadef/jsonschema"
)

func fragmentType(t *testing.T, v js.Value) string {
	t.Helper()
	tv, ok := v.Keyword(js.KeywordType)
	if !ok {
		t.Fatalf("fragment has no type keyword: %v", v.Interface())
	}
	return tv.StringValue()
}

func TestString_SchemaAndParse(t *testing.T) {
	c := dsl.String()
	if got := fragmentType(t, c.SchemaValue()); got != "string" {
		t.Fatalf("unexpected type keyword %q", got)
	}

	r := c.Parse(skemadef.String("hello"))
	if !r.IsValid() || r.Value() != "hello" {
		t.Fatalf("expected hello, got %v (%v)", r.Value(), r.Issues())
	}

	bad := c.Parse(skemadef.Int(1))
	if bad.IsValid() || bad.Issues()[0].Code != skemadef.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch, got %v", bad.Issues())
	}
}

func TestBool_SchemaAndParse(t *testing.T) {
	c := dsl.Bool()
	if got := fragmentType(t, c.SchemaValue()); got != "boolean" {
		t.Fatalf("unexpected type keyword %q", got)
	}
	if r := c.Parse(skemadef.Bool(true)); !r.IsValid() || !r.Value() {
		t.Fatalf("expected true, got %v", r.Issues())
	}
	if r := c.Parse(skemadef.String("true")); r.IsValid() {
		t.Fatalf("strings must not coerce to bool")
	}
}

func TestNumber_AcceptsAnyNumber(t *testing.T) {
	c := dsl.Number()
	if r := c.Parse(skemadef.Number(1.5)); !r.IsValid() || r.Value() != 1.5 {
		t.Fatalf("expected 1.5, got %v", r.Issues())
	}
	if r := c.Parse(skemadef.Null()); r.IsValid() {
		t.Fatalf("null must not parse as number")
	}
}

func TestInt_RejectsFractional(t *testing.T) {
	c := dsl.Int()
	if got := fragmentType(t, c.SchemaValue()); got != "integer" {
		t.Fatalf("unexpected type keyword %q", got)
	}
	if r := c.Parse(skemadef.Number(4)); !r.IsValid() || r.Value() != 4 {
		t.Fatalf("whole numbers must parse, got %v", r.Issues())
	}
	if r := c.Parse(skemadef.Number(4.5)); r.IsValid() {
		t.Fatalf("fractional numbers must be rejected")
	}
}

func TestNull_Component(t *testing.T) {
	c := dsl.Null()
	if r := c.Parse(skemadef.Null()); !r.IsValid() {
		t.Fatalf("null must parse: %v", r.Issues())
	}
	if r := c.Parse(skemadef.Bool(false)); r.IsValid() {
		t.Fatalf("non-null must be rejected")
	}
}

func TestAnyComponent_WrapsTypedComponent(t *testing.T) {
	a := dsl.ComponentOf(dsl.Int())
	if got := fragmentType(t, a.SchemaValue()); got != "integer" {
		t.Fatalf("adapter must forward the schema, got %q", got)
	}
	r := a.Parse(skemadef.Int(9))
	if !r.IsValid() {
		t.Fatalf("adapter must forward parsing: %v", r.Issues())
	}
	if n, ok := r.Value().(int64); !ok || n != 9 {
		t.Fatalf("expected int64 9, got %#v", r.Value())
	}
	if _, ok := a.Orig().(skemadef.Component[int64]); !ok {
		t.Fatalf("Orig must return the wrapped component")
	}
}
