package skemadef

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	gojson "github.com/goccy/go-json"
)

// Kind identifies a Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable JSON-like data tree. Construct values through the
// typed constructors; callers must not mutate slices or maps obtained from
// accessors.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null Value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number returns a numeric Value.
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric Value holding an integer.
func Int(i int64) Value { return Value{kind: KindNumber, num: float64(i)} }

// String returns a string Value.
func String(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array Value over the given items.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object returns an object Value over the given member map.
func Object(members map[string]Value) Value { return Value{kind: KindObject, obj: members} }

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// BoolValue returns the boolean payload; false for non-bool values.
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload; 0 for non-number values.
func (v Value) NumberValue() float64 { return v.num }

// IsInteger reports whether the value is a number with no fractional part.
func (v Value) IsInteger() bool {
	return v.kind == KindNumber && !math.IsInf(v.num, 0) && !math.IsNaN(v.num) && math.Trunc(v.num) == v.num
}

// StringValue returns the string payload; "" for non-string values.
func (v Value) StringValue() string { return v.str }

// Items returns the array payload; nil for non-array values.
func (v Value) Items() []Value { return v.arr }

// Members returns the object payload; nil for non-object values.
func (v Value) Members() map[string]Value { return v.obj }

// Member looks up an object member by name.
func (v Value) Member(name string) (Value, bool) {
	m, ok := v.obj[name]
	return m, ok
}

// Len returns the item count for arrays and the member count for objects.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Equal reports deep structural equality. Object member order is irrelevant.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNumber:
		return v.num == o.num
	case KindString:
		return v.str == o.str
	case KindArray:
		if len(v.arr) != len(o.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(o.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(o.obj) {
			return false
		}
		for k, mv := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !mv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Interface projects the value into the plain any tree produced by JSON
// decoding (nil/bool/float64/string/[]any/map[string]any).
func (v Value) Interface() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindNumber:
		return v.num
	case KindString:
		return v.str
	case KindArray:
		out := make([]any, len(v.arr))
		for i := range v.arr {
			out[i] = v.arr[i].Interface()
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.obj))
		for k, mv := range v.obj {
			out[k] = mv.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON serializes the value tree. Object keys are emitted in sorted
// order so equal values always serialize identically.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf := []byte{'{'}
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, err := gojson.Marshal(k)
			if err != nil {
				return nil, err
			}
			vb, err := gojson.Marshal(v.obj[k])
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
			buf = append(buf, vb...)
		}
		return append(buf, '}'), nil
	case KindArray:
		if v.arr == nil {
			return []byte("[]"), nil
		}
		return gojson.Marshal(v.arr)
	default:
		return gojson.Marshal(v.Interface())
	}
}

// FromJSON decodes a JSON document into a Value tree using goccy/go-json.
func FromJSON(data []byte) (Value, error) {
	var raw any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return Value{}, Issues{{Path: "/", Code: CodeParseError, Message: err.Error()}}
	}
	return FromAny(raw)
}

// FromAny converts a decoded any tree (nil/bool/float64/json.Number/string/
// []any/map[string]any) into a Value tree.
func FromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Number(t), nil
	case int:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, Issues{{Path: "/", Code: CodeParseError, Message: err.Error()}}
		}
		return Number(f), nil
	case string:
		return String(t), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				if iss, ok := AsIssues(err); ok {
					return Value{}, RebaseIssues(fmt.Sprintf("/%d", i), iss)
				}
				return Value{}, err
			}
			items = append(items, ev)
		}
		return Array(items...), nil
	case map[string]any:
		members := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := FromAny(e)
			if err != nil {
				if iss, ok := AsIssues(err); ok {
					return Value{}, RebaseIssues("/"+k, iss)
				}
				return Value{}, err
			}
			members[k] = ev
		}
		return Object(members), nil
	default:
		return Value{}, Issues{{Path: "/", Code: CodeParseError, Message: fmt.Sprintf("unsupported value of type %T", raw)}}
	}
}
