package jsonschema

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strings"
)

// Validate checks a decoded value tree (nil/bool/float64/string/[]any/
// map[string]any) against a schema document using the keyword subset this
// package models, resolving #/$defs/<name> references through the document
// root. It exists so deduplicated and inlined documents can be proven to
// accept the same inputs; it is intentionally not a full draft validator.
func Validate(doc Value, v any) error {
	var errs []string
	validateFragment(doc, doc, v, "", 0, &errs)
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("jsonschema: %s", strings.Join(errs, "; "))
}

const maxRefDepth = 256

func validateFragment(root, frag Value, v any, path string, depth int, errs *[]string) {
	if depth > maxRefDepth {
		*errs = append(*errs, fmt.Sprintf("%s: reference depth exceeded", ptr(path)))
		return
	}
	if frag.Kind() == KindBool {
		if !frag.BoolValue() {
			*errs = append(*errs, fmt.Sprintf("%s: schema false accepts nothing", ptr(path)))
		}
		return
	}
	if frag.Kind() != KindObject {
		return
	}

	if ref, ok := frag.Keyword(KeywordRef); ok && ref.Kind() == KindString {
		target, ok := resolveRef(root, ref.StringValue())
		if !ok {
			*errs = append(*errs, fmt.Sprintf("%s: unresolvable reference %q", ptr(path), ref.StringValue()))
			return
		}
		validateFragment(root, target, v, path, depth+1, errs)
		return
	}

	if t, ok := frag.Keyword(KeywordType); ok {
		if !typeAllowed(t, v) {
			*errs = append(*errs, fmt.Sprintf("%s: type mismatch", ptr(path)))
			return
		}
	}

	if cv, ok := frag.Keyword(KeywordConst); ok {
		if !reflect.DeepEqual(cv.Interface(), v) {
			*errs = append(*errs, fmt.Sprintf("%s: const mismatch", ptr(path)))
		}
	}
	if ev, ok := frag.Keyword(KeywordEnum); ok && ev.Kind() == KindArray {
		hit := false
		for _, cand := range ev.Items() {
			if reflect.DeepEqual(cand.Interface(), v) {
				hit = true
				break
			}
		}
		if !hit {
			*errs = append(*errs, fmt.Sprintf("%s: not in enum", ptr(path)))
		}
	}

	if n, ok := v.(float64); ok {
		if min, ok := frag.Keyword(KeywordMinimum); ok && min.Kind() == KindNumber && n < min.NumberValue() {
			*errs = append(*errs, fmt.Sprintf("%s: below minimum", ptr(path)))
		}
		if max, ok := frag.Keyword(KeywordMaximum); ok && max.Kind() == KindNumber && n > max.NumberValue() {
			*errs = append(*errs, fmt.Sprintf("%s: above maximum", ptr(path)))
		}
	}

	if branches, ok := frag.Keyword(KeywordAnyOf); ok && branches.Kind() == KindArray {
		if countPassing(root, branches.Items(), v, depth) == 0 {
			*errs = append(*errs, fmt.Sprintf("%s: no anyOf branch matched", ptr(path)))
		}
	}
	if branches, ok := frag.Keyword(KeywordOneOf); ok && branches.Kind() == KindArray {
		if n := countPassing(root, branches.Items(), v, depth); n != 1 {
			*errs = append(*errs, fmt.Sprintf("%s: %d oneOf branches matched", ptr(path), n))
		}
	}

	if arr, ok := v.([]any); ok {
		validateArray(root, frag, arr, path, depth, errs)
	}
	if obj, ok := v.(map[string]any); ok {
		validateObject(root, frag, obj, path, depth, errs)
	}
}

func validateArray(root, frag Value, arr []any, path string, depth int, errs *[]string) {
	if min, ok := frag.Keyword(KeywordMinItems); ok && min.Kind() == KindNumber && float64(len(arr)) < min.NumberValue() {
		*errs = append(*errs, fmt.Sprintf("%s: fewer than minItems", ptr(path)))
	}
	if max, ok := frag.Keyword(KeywordMaxItems); ok && max.Kind() == KindNumber && float64(len(arr)) > max.NumberValue() {
		*errs = append(*errs, fmt.Sprintf("%s: more than maxItems", ptr(path)))
	}
	items, ok := frag.Keyword(KeywordItems)
	if !ok {
		return
	}
	switch items.Kind() {
	case KindObject, KindBool:
		for i, e := range arr {
			validateFragment(root, items, e, fmt.Sprintf("%s/%d", path, i), depth, errs)
		}
	case KindArray:
		for i, e := range arr {
			if i >= len(items.Items()) {
				break
			}
			validateFragment(root, items.Items()[i], e, fmt.Sprintf("%s/%d", path, i), depth, errs)
		}
	}
}

func validateObject(root, frag Value, obj map[string]any, path string, depth int, errs *[]string) {
	if req, ok := frag.Keyword(KeywordRequired); ok && req.Kind() == KindArray {
		for _, r := range req.Items() {
			if r.Kind() != KindString {
				continue
			}
			if _, present := obj[r.StringValue()]; !present {
				*errs = append(*errs, fmt.Sprintf("%s/%s: required property missing", path, r.StringValue()))
			}
		}
	}
	props, hasProps := frag.Keyword(KeywordProperties)
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if hasProps {
			if ps, ok := props.Keyword(k); ok {
				validateFragment(root, ps, obj[k], path+"/"+k, depth, errs)
				continue
			}
		}
		if ap, ok := frag.Keyword(KeywordAdditionalProperties); ok {
			switch ap.Kind() {
			case KindBool:
				if !ap.BoolValue() {
					*errs = append(*errs, fmt.Sprintf("%s/%s: unexpected property", path, k))
				}
			case KindObject:
				validateFragment(root, ap, obj[k], path+"/"+k, depth, errs)
			}
		}
	}
}

func countPassing(root Value, branches []Value, v any, depth int) int {
	n := 0
	for _, b := range branches {
		var scratch []string
		validateFragment(root, b, v, "", depth+1, &scratch)
		if len(scratch) == 0 {
			n++
		}
	}
	return n
}

func typeAllowed(t Value, v any) bool {
	switch t.Kind() {
	case KindString:
		return typeMatches(t.StringValue(), v)
	case KindArray:
		for _, name := range t.Items() {
			if name.Kind() == KindString && typeMatches(name.StringValue(), v) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

func typeMatches(name string, v any) bool {
	switch name {
	case "null":
		return v == nil
	case "boolean":
		_, ok := v.(bool)
		return ok
	case "number":
		_, ok := v.(float64)
		return ok
	case "integer":
		f, ok := v.(float64)
		return ok && math.Trunc(f) == f
	case "string":
		_, ok := v.(string)
		return ok
	case "array":
		_, ok := v.([]any)
		return ok
	case "object":
		_, ok := v.(map[string]any)
		return ok
	default:
		return false
	}
}

func resolveRef(root Value, ref string) (Value, bool) {
	const prefix = "#/$defs/"
	if !strings.HasPrefix(ref, prefix) {
		return Value{}, false
	}
	defs, ok := root.Keyword(KeywordDefs)
	if !ok || defs.Kind() != KindObject {
		return Value{}, false
	}
	return defs.Keyword(strings.TrimPrefix(ref, prefix))
}

func ptr(path string) string {
	if path == "" {
		return "/"
	}
	return path
}
