package dsl

import (
	skemadef "github.com/reoring/skemadef"
	"github.com/reoring/skemadef/i18n"
	js "github.com/reoring/skemadef/jsonschema"
)

// String returns the string leaf component.
func String() skemadef.Component[string] { return stringComponent{} }

// Bool returns the boolean leaf component.
func Bool() skemadef.Component[bool] { return boolComponent{} }

// Number returns the numeric leaf component (accepts any JSON number).
func Number() skemadef.Component[float64] { return numberComponent{} }

// Int returns the integer leaf component; numbers with a fractional part
// are rejected as a type mismatch.
func Int() skemadef.Component[int64] { return intComponent{} }

// Null returns the null leaf component. Its parsed output carries no
// information; it exists for choice branches and tuple positions.
func Null() skemadef.Component[struct{}] { return nullComponent{} }

func typeMismatch(expected string) skemadef.Issue {
	return skemadef.Issue{
		Path:    "/",
		Code:    skemadef.CodeTypeMismatch,
		Message: i18n.T(skemadef.CodeTypeMismatch, nil),
		Hint:    "expected " + expected,
	}
}

type stringComponent struct{}

func (stringComponent) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("string")})
}

func (stringComponent) Parse(v skemadef.Value) skemadef.Result[string] {
	if v.Kind() != skemadef.KindString {
		return skemadef.Invalid[string](typeMismatch("string"))
	}
	return skemadef.Valid(v.StringValue())
}

type boolComponent struct{}

func (boolComponent) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("boolean")})
}

func (boolComponent) Parse(v skemadef.Value) skemadef.Result[bool] {
	if v.Kind() != skemadef.KindBool {
		return skemadef.Invalid[bool](typeMismatch("boolean"))
	}
	return skemadef.Valid(v.BoolValue())
}

type numberComponent struct{}

func (numberComponent) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("number")})
}

func (numberComponent) Parse(v skemadef.Value) skemadef.Result[float64] {
	if v.Kind() != skemadef.KindNumber {
		return skemadef.Invalid[float64](typeMismatch("number"))
	}
	return skemadef.Valid(v.NumberValue())
}

type intComponent struct{}

func (intComponent) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("integer")})
}

func (intComponent) Parse(v skemadef.Value) skemadef.Result[int64] {
	if v.Kind() != skemadef.KindNumber || !v.IsInteger() {
		return skemadef.Invalid[int64](typeMismatch("integer"))
	}
	return skemadef.Valid(int64(v.NumberValue()))
}

type nullComponent struct{}

func (nullComponent) SchemaValue() js.Value {
	return js.Object(map[string]js.Value{js.KeywordType: js.Str("null")})
}

func (nullComponent) Parse(v skemadef.Value) skemadef.Result[struct{}] {
	if !v.IsNull() {
		return skemadef.Invalid[struct{}](typeMismatch("null"))
	}
	return skemadef.Valid(struct{}{})
}
