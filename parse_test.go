package skemadef_test

import (
	"testing"

	skemadef "github.com/reoring/skemadef"
	js "github.com/reoring/skemadef/jsonschema"
)

// upperString is a stub component: accepts strings, uppercases ASCII.
type upperString struct{}

func (upperString) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("string")})
}

func (upperString) Parse(v skemadef.Value) skemadef.Result[string] {
	if v.Kind() != skemadef.KindString {
		return skemadef.Invalid[string](skemadef.Issue{Path: "/", Code: skemadef.CodeTypeMismatch})
	}
	s := v.StringValue()
	out := make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return skemadef.Valid(string(out))
}

func TestParse_DelegatesToComponent(t *testing.T) {
	got, err := skemadef.Parse[string](upperString{}, skemadef.String("abc"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != "ABC" {
		t.Fatalf("expected transformed value, got %q", got)
	}

	_, err = skemadef.Parse[string](upperString{}, skemadef.Int(1))
	iss, ok := skemadef.AsIssues(err)
	if !ok || iss[0].Code != skemadef.CodeTypeMismatch {
		t.Fatalf("expected type_mismatch, got %v", err)
	}
}

func TestParse_NilComponent(t *testing.T) {
	_, err := skemadef.Parse[string](nil, skemadef.String("x"))
	if err == nil {
		t.Fatalf("expected error for nil component")
	}
}

func TestParseJSON(t *testing.T) {
	got, err := skemadef.ParseJSON[string](upperString{}, []byte(`"hi"`))
	if err != nil || got != "HI" {
		t.Fatalf("expected HI, got %q (%v)", got, err)
	}
	if _, err := skemadef.ParseJSON[string](upperString{}, []byte(`{`)); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestSafeParseAndIs(t *testing.T) {
	if v, ok := skemadef.SafeParse[string](upperString{}, skemadef.String("a")); !ok || v != "A" {
		t.Fatalf("SafeParse success path failed: %q %v", v, ok)
	}
	if _, ok := skemadef.SafeParse[string](upperString{}, skemadef.Bool(true)); ok {
		t.Fatalf("SafeParse must report failure")
	}
	if !skemadef.Is[string](upperString{}, skemadef.String("a")) || skemadef.Is[string](upperString{}, skemadef.Null()) {
		t.Fatalf("Is must mirror Parse success")
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	skemadef.MustParse[string](upperString{}, skemadef.Int(1))
}
