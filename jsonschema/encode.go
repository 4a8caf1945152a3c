package jsonschema

import (
	"encoding/json"
	"fmt"
	"sort"

	gojson "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Interface projects the document into a plain any tree
// (nil/bool/float64/string/[]any/map[string]any).
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
		for k, kv := range v.obj {
			out[k] = kv.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON serializes the document. Object keys are emitted in sorted
// order, so structurally equal documents always serialize identically; the
// deduplication engine relies on this canonical form for its signatures.
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

// EncodeJSON renders the document as indented JSON.
func EncodeJSON(v Value) ([]byte, error) {
	return gojson.MarshalIndent(v, "", "  ")
}

// EncodeYAML renders the document as YAML.
func EncodeYAML(v Value) ([]byte, error) {
	return yaml.Marshal(v.Interface())
}

// DecodeDocument parses a JSON schema document into a Value tree.
func DecodeDocument(data []byte) (Value, error) {
	var raw any
	if err := gojson.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return fromAny(raw)
}

// DecodeYAMLDocument parses a YAML schema document into a Value tree.
func DecodeYAMLDocument(data []byte) (Value, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Value{}, err
	}
	return fromAny(raw)
}

func fromAny(raw any) (Value, error) {
	switch t := raw.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case float64:
		return Num(t), nil
	case int:
		return Num(float64(t)), nil
	case int64:
		return Num(float64(t)), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}, err
		}
		return Num(f), nil
	case string:
		return Str(t), nil
	case []any:
		items := make([]Value, 0, len(t))
		for _, e := range t {
			ev, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			items = append(items, ev)
		}
		return Array(items...), nil
	case map[string]any:
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			ev, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			obj[k] = ev
		}
		return Object(obj), nil
	case map[any]any:
		// yaml.v3 may produce any-keyed maps for untyped documents
		obj := make(map[string]Value, len(t))
		for k, e := range t {
			ks, ok := k.(string)
			if !ok {
				return Value{}, fmt.Errorf("jsonschema: non-string document key %v", k)
			}
			ev, err := fromAny(e)
			if err != nil {
				return Value{}, err
			}
			obj[ks] = ev
		}
		return Object(obj), nil
	default:
		return Value{}, fmt.Errorf("jsonschema: unsupported document node of type %T", raw)
	}
}
