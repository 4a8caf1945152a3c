package dsl_test

import (
	"testing"

	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/dsl"
	js "github.com/reoring/skemadef/jsonschema"
)

// treeComponent builds a self-referential node: a value plus children of the
// same shape. It returns the node and the deferred reference so documents
// can register the shared definition.
func treeComponent() (skemadef.Component[map[string]any], *dsl.DeferredComponent[map[string]any]) {
	var node skemadef.Component[map[string]any]
	ref := dsl.Deferred("Node", func() skemadef.Component[map[string]any] {
		return node
	})
	node = dsl.Object().
		Field("value", dsl.ComponentOf(dsl.Int())).Required().
		Field("children", dsl.ComponentOf[[]map[string]any](dsl.Array[map[string]any](ref))).Optional().
		Config(skemadef.NewConfiguration()).
		MustBuild()
	return node, ref
}

func TestDeferred_SchemaIsReference(t *testing.T) {
	c := dsl.Deferred("Node", func() skemadef.Component[int64] { return dsl.Int() })
	sv := c.SchemaValue()
	if !sv.IsRef() {
		t.Fatalf("deferred schema must be a reference, got %v", sv.Interface())
	}
	if kv, _ := sv.Keyword(js.KeywordRef); kv.StringValue() != "#/$defs/Node" {
		t.Fatalf("unexpected reference target %q", kv.StringValue())
	}
	if c.DefinitionName() != "Node" {
		t.Fatalf("unexpected definition name %q", c.DefinitionName())
	}
}

func TestDeferred_ResolvesLazily(t *testing.T) {
	calls := 0
	c := dsl.Deferred("N", func() skemadef.Component[int64] {
		calls++
		return dsl.Int()
	})
	if calls != 0 {
		t.Fatalf("thunk must not run at construction")
	}
	for i := 0; i < 3; i++ {
		if r := c.Parse(skemadef.Int(7)); !r.IsValid() || r.Value() != 7 {
			t.Fatalf("parse %d failed: %v", i, r.Issues())
		}
	}
	if calls != 1 {
		t.Fatalf("thunk must run exactly once, ran %d times", calls)
	}
}

func TestDeferred_RecursiveParse(t *testing.T) {
	c, _ := treeComponent()
	got, err := skemadef.Parse(c, skemadef.Object(map[string]skemadef.Value{
		"value": skemadef.Int(1),
		"children": skemadef.Array(
			skemadef.Object(map[string]skemadef.Value{"value": skemadef.Int(2)}),
		),
	}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got["value"] != int64(1) {
		t.Fatalf("unexpected root value: %#v", got)
	}

	// A bad grandchild surfaces with the full nested pointer.
	_, err = skemadef.Parse(c, skemadef.Object(map[string]skemadef.Value{
		"value": skemadef.Int(1),
		"children": skemadef.Array(
			skemadef.Object(map[string]skemadef.Value{"value": skemadef.String("x")}),
		),
	}))
	iss, ok := skemadef.AsIssues(err)
	if !ok || iss[0].Path != "/children/0/value" {
		t.Fatalf("expected nested pointer, got %v", err)
	}
}

// The generated document must resolve its own reference: parse accepting a
// value while document validation dangles would let schema and parser
// diverge.
func TestDeferred_RegisteredDocumentValidates(t *testing.T) {
	node, ref := treeComponent()
	doc := dsl.WithDefinitions(node.SchemaValue(), ref)

	defs, ok := doc.Keyword(js.KeywordDefs)
	if !ok {
		t.Fatalf("expected $defs on the registered document")
	}
	if _, ok := defs.Keyword("Node"); !ok {
		t.Fatalf("expected the deferred fragment under its name, got %v", defs.Keywords())
	}

	good := map[string]any{
		"value": 1.0,
		"children": []any{
			map[string]any{
				"value":    2.0,
				"children": []any{map[string]any{"value": 3.0}},
			},
		},
	}
	if err := js.Validate(doc, good); err != nil {
		t.Fatalf("recursive document must validate its own shape: %v", err)
	}

	bad := map[string]any{
		"value":    1.0,
		"children": []any{map[string]any{}},
	}
	if err := js.Validate(doc, bad); err == nil {
		t.Fatalf("nested required violation must fail through the reference")
	}
}

func TestWithDefinitions_KeepsExistingEntries(t *testing.T) {
	ref := dsl.Deferred("N", func() skemadef.Component[int64] { return dsl.Int() })
	root := js.Object(map[string]js.Value{
		js.KeywordType: js.Str("object"),
		js.KeywordDefs: js.Object(map[string]js.Value{
			"Kept": js.Object(map[string]js.Value{js.KeywordType: js.Str("string")}),
		}),
	})

	doc := dsl.WithDefinitions(root, ref)
	defs, _ := doc.Keyword(js.KeywordDefs)
	if _, ok := defs.Keyword("Kept"); !ok {
		t.Fatalf("pre-existing definitions must survive, got %v", defs.Keywords())
	}
	if n, ok := defs.Keyword("N"); !ok || fragmentType(t, n) != "integer" {
		t.Fatalf("deferred fragment must be installed, got %v", defs.Keywords())
	}
}
