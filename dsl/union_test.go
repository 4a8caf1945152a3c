package dsl_test

import (
	"testing"

	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/dsl"
	js "github.com/reoring/skemadef/jsonschema"
)

func TestAnyOf_SchemaValue(t *testing.T) {
	c := dsl.AnyOf(
		dsl.Map(dsl.Int(), func(n int64) any { return n }),
		dsl.Map(dsl.String(), func(s string) any { return s }),
	)
	branches, ok := c.SchemaValue().Keyword(js.KeywordAnyOf)
	if !ok || branches.Len() != 2 {
		t.Fatalf("expected two anyOf branches, got %v", branches.Interface())
	}
}

func TestAnyOf_FirstMatchWins(t *testing.T) {
	c := dsl.AnyOf(
		dsl.Map(dsl.Number(), func(float64) string { return "number" }),
		dsl.Map(dsl.Int(), func(int64) string { return "integer" }),
	)
	// 3 parses under both branches; declaration order decides.
	got, err := skemadef.Parse(c, skemadef.Int(3))
	if err != nil || got != "number" {
		t.Fatalf("expected first branch, got %q (%v)", got, err)
	}
}

func TestAnyOf_NoMatch(t *testing.T) {
	c := dsl.AnyOf(
		dsl.Map(dsl.Int(), func(int64) string { return "" }),
		dsl.Map(dsl.Bool(), func(bool) string { return "" }),
	)
	_, err := skemadef.Parse(c, skemadef.String("x"))
	iss, ok := skemadef.AsIssues(err)
	if !ok || iss[0].Code != skemadef.CodeNoMatch {
		t.Fatalf("expected no_match, got %v", err)
	}
}

func TestOneOf_ExactlyOne(t *testing.T) {
	c := dsl.OneOf(
		dsl.Map(dsl.Int(), func(n int64) any { return n }),
		dsl.Map(dsl.String(), func(s string) any { return s }),
	)
	branches, ok := c.SchemaValue().Keyword(js.KeywordOneOf)
	if !ok || branches.Len() != 2 {
		t.Fatalf("expected two oneOf branches, got %v", branches.Interface())
	}

	got, err := skemadef.Parse(c, skemadef.String("x"))
	if err != nil || got != "x" {
		t.Fatalf("expected the string branch, got %v (%v)", got, err)
	}

	_, err = skemadef.Parse(c, skemadef.Null())
	iss, ok := skemadef.AsIssues(err)
	if !ok || iss[0].Code != skemadef.CodeNoMatch {
		t.Fatalf("expected no_match, got %v", err)
	}
}

func TestOneOf_Ambiguous(t *testing.T) {
	c := dsl.OneOf(
		dsl.Map(dsl.Number(), func(float64) any { return nil }),
		dsl.Map(dsl.Int(), func(int64) any { return nil }),
	)
	_, err := skemadef.Parse(c, skemadef.Int(3))
	iss, ok := skemadef.AsIssues(err)
	if !ok || iss[0].Code != skemadef.CodeAmbiguousMatch {
		t.Fatalf("expected ambiguous_match, got %v", err)
	}
	if iss[0].Params["matches"] != 2 {
		t.Fatalf("expected match count in params, got %v", iss[0].Params)
	}
}
