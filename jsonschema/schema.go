// Package jsonschema models schema documents as a generic keyword tree and
// provides deduplication of repeated sub-schemas into shared $defs
// references. Keep the modeled keyword set small and extend incrementally.
package jsonschema

// Keyword names understood by this package.
const (
	KeywordType                 = "type"
	KeywordProperties           = "properties"
	KeywordRequired             = "required"
	KeywordItems                = "items"
	KeywordMinItems             = "minItems"
	KeywordMaxItems             = "maxItems"
	KeywordAdditionalProperties = "additionalProperties"
	KeywordAnyOf                = "anyOf"
	KeywordOneOf                = "oneOf"
	KeywordEnum                 = "enum"
	KeywordConst                = "const"
	KeywordMinimum              = "minimum"
	KeywordMaximum              = "maximum"
	KeywordRef                  = "$ref"
	KeywordDynamicRef           = "$dynamicRef"
	KeywordDefs                 = "$defs"
	KeywordAnchor               = "$anchor"
	KeywordTitle                = "title"
	KeywordDescription          = "description"
	KeywordExamples             = "examples"
	KeywordDefault              = "default"
)

// Kind identifies a document node variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is a schema-document fragment: objects keyed by keyword name, plus
// the scalar and array nodes keyword values are built from. Treat values as
// immutable; builders copy on write.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	arr  []Value
	obj  map[string]Value
}

// Null returns the null node.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean node.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Num returns a numeric node.
func Num(f float64) Value { return Value{kind: KindNumber, num: f} }

// Int returns a numeric node holding an integer.
func Int(i int) Value { return Value{kind: KindNumber, num: float64(i)} }

// Str returns a string node.
func Str(s string) Value { return Value{kind: KindString, str: s} }

// Array returns an array node over the given items.
func Array(items ...Value) Value { return Value{kind: KindArray, arr: items} }

// Object returns an object node over the given keyword map.
func Object(keywords map[string]Value) Value { return Value{kind: KindObject, obj: keywords} }

// Ref returns a reference fragment pointing at a shared definition.
func Ref(name string) Value {
	return Object(map[string]Value{KeywordRef: Str("#/$defs/" + name)})
}

// Kind reports the variant tag.
func (v Value) Kind() Kind { return v.kind }

// BoolValue returns the boolean payload; false for non-bool nodes.
func (v Value) BoolValue() bool { return v.b }

// NumberValue returns the numeric payload; 0 for non-number nodes.
func (v Value) NumberValue() float64 { return v.num }

// StringValue returns the string payload; "" for non-string nodes.
func (v Value) StringValue() string { return v.str }

// Items returns the array payload; nil for non-array nodes.
func (v Value) Items() []Value { return v.arr }

// Keywords returns the object payload; nil for non-object nodes.
func (v Value) Keywords() map[string]Value { return v.obj }

// Len returns the item count for arrays and the keyword count for objects.
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

// Keyword looks up a keyword on an object node.
func (v Value) Keyword(name string) (Value, bool) {
	kv, ok := v.obj[name]
	return kv, ok
}

// WithKeyword returns a copy of an object node with one keyword set. On a
// non-object node it returns a fresh object carrying only that keyword.
func (v Value) WithKeyword(name string, kv Value) Value {
	out := make(map[string]Value, len(v.obj)+1)
	for k, e := range v.obj {
		out[k] = e
	}
	out[name] = kv
	return Object(out)
}

// IsRef reports whether the fragment is already a reference. Reference
// fragments are never descended into or extracted again.
func (v Value) IsRef() bool {
	if v.kind != KindObject {
		return false
	}
	if _, ok := v.obj[KeywordRef]; ok {
		return true
	}
	_, ok := v.obj[KeywordDynamicRef]
	return ok
}

// Equal reports deep structural equality. Keyword order is irrelevant.
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
		for k, kv := range v.obj {
			ov, ok := o.obj[k]
			if !ok || !kv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
