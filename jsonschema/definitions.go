package jsonschema

import (
	"sort"
	"strconv"
	"strings"
)

// DefinitionOption configures Definition.
type DefinitionOption func(*definitionConfig)

type definitionConfig struct {
	dedup bool
}

// NoDedup disables deduplication; Definition returns the tree unmodified.
// Callers needing stable, fully-inlined output for diffing use this.
func NoDedup() DefinitionOption {
	return func(c *definitionConfig) { c.dedup = false }
}

// Definition rewrites a schema document so that structurally repeated
// object sub-schemas appear once under $defs and every occurrence
// (including the first, excluding the document root) becomes a $ref.
// Validation semantics are unchanged. The pass is idempotent: after one
// run, repeated fragments exist only inside $defs and as references,
// neither of which is a candidate again.
func Definition(root Value, opts ...DefinitionOption) Value {
	cfg := definitionConfig{dedup: true}
	for _, o := range opts {
		o(&cfg)
	}
	if !cfg.dedup {
		return root
	}

	c := &collector{seen: map[string]*occurrence{}}
	c.collect(root)

	var dups []*occurrence
	for _, sig := range c.order {
		if occ := c.seen[sig]; occ.count >= 2 {
			dups = append(dups, occ)
		}
	}
	if len(dups) == 0 {
		return root
	}

	// Reserve names already present under $defs so a second pass (or a
	// caller-provided definitions map) never collides.
	used := map[string]bool{}
	existing := map[string]Value{}
	if defs, ok := root.Keyword(KeywordDefs); ok && defs.Kind() == KindObject {
		for name, def := range defs.Keywords() {
			used[name] = true
			existing[name] = def
		}
	}

	bySig := make(map[string]string, len(dups))
	for _, d := range dups {
		bySig[d.sig] = resolveName(d.hint, used)
	}

	out := rewriteFragment(root, bySig, true)

	defsObj := make(map[string]Value, len(existing)+len(dups))
	for name, def := range existing {
		defsObj[name] = def
	}
	// Definitions themselves pass through the rewrite so nested
	// duplicates-of-duplicates collapse too.
	for _, d := range dups {
		defsObj[bySig[d.sig]] = rewriteFragment(d.rep, bySig, true)
	}
	return out.WithKeyword(KeywordDefs, Object(defsObj))
}

type occurrence struct {
	sig   string
	rep   Value
	count int
	hint  string
	paths []string
}

type collector struct {
	seen  map[string]*occurrence
	order []string
}

// collect walks the tree depth-first, descending only through
// structurally-meaningful keywords, and records qualifying object-type
// fragments by normalized signature.
func (c *collector) collect(v Value, path ...string) {
	if v.Kind() != KindObject || v.IsRef() {
		return
	}
	if qualifies(v) {
		sig := signature(v)
		occ := c.seen[sig]
		if occ == nil {
			occ = &occurrence{sig: sig, rep: v, hint: nameHint(v)}
			c.seen[sig] = occ
			c.order = append(c.order, sig)
		}
		occ.count++
		occ.paths = append(occ.paths, strings.Join(path, "/"))
	}
	if props, ok := v.Keyword(KeywordProperties); ok && props.Kind() == KindObject {
		names := make([]string, 0, len(props.Keywords()))
		for name := range props.Keywords() {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			pv, _ := props.Keyword(name)
			c.collect(pv, append(path, KeywordProperties, name)...)
		}
	}
	if items, ok := v.Keyword(KeywordItems); ok {
		switch items.Kind() {
		case KindObject:
			c.collect(items, append(path, KeywordItems)...)
		case KindArray:
			for i, it := range items.Items() {
				c.collect(it, append(path, KeywordItems, strconv.Itoa(i))...)
			}
		}
	}
	if ap, ok := v.Keyword(KeywordAdditionalProperties); ok && ap.Kind() == KindObject {
		c.collect(ap, append(path, KeywordAdditionalProperties)...)
	}
}

// qualifies reports whether a fragment is a candidate for extraction:
// an object-type schema with a non-empty properties map.
func qualifies(v Value) bool {
	t, ok := v.Keyword(KeywordType)
	if !ok || t.Kind() != KindString || t.StringValue() != "object" {
		return false
	}
	props, ok := v.Keyword(KeywordProperties)
	return ok && props.Kind() == KindObject && len(props.Keywords()) > 0
}

var cosmeticKeywords = map[string]bool{
	KeywordTitle:       true,
	KeywordDescription: true,
	KeywordExamples:    true,
	KeywordDefault:     true,
	KeywordAnchor:      true,
}

// signature produces the canonical serialized form of a fragment with
// cosmetic metadata stripped at every depth, so two structurally identical
// fragments always compare equal regardless of titles or descriptions.
func signature(v Value) string {
	data, err := stripMeta(v).MarshalJSON()
	if err != nil {
		// MarshalJSON over the closed Value variant cannot fail in practice;
		// an unmatchable signature keeps the fragment inline if it ever does.
		return "\x00unserializable"
	}
	return string(data)
}

func stripMeta(v Value) Value {
	switch v.Kind() {
	case KindObject:
		out := make(map[string]Value, len(v.Keywords()))
		for k, kv := range v.Keywords() {
			if cosmeticKeywords[k] {
				continue
			}
			out[k] = stripMeta(kv)
		}
		return Object(out)
	case KindArray:
		items := make([]Value, 0, len(v.Items()))
		for _, it := range v.Items() {
			items = append(items, stripMeta(it))
		}
		return Array(items...)
	default:
		return v
	}
}

// nameHint derives a suggested definition name from naming metadata: a
// title keyword, or the last dot-separated component of an anchor.
func nameHint(v Value) string {
	if t, ok := v.Keyword(KeywordTitle); ok && t.Kind() == KindString {
		return t.StringValue()
	}
	if a, ok := v.Keyword(KeywordAnchor); ok && a.Kind() == KindString {
		parts := strings.Split(a.StringValue(), ".")
		return parts[len(parts)-1]
	}
	return ""
}

// resolveName sanitizes a hint and resolves collisions by appending the
// smallest non-negative integer suffix not already used: bare name first,
// then name0, name1, and so on.
func resolveName(hint string, used map[string]bool) string {
	base := sanitizeName(hint)
	if base == "" {
		base = "Schema"
	}
	if !used[base] {
		used[base] = true
		return base
	}
	for i := 0; ; i++ {
		cand := base + strconv.Itoa(i)
		if !used[cand] {
			used[cand] = true
			return cand
		}
	}
}

func sanitizeName(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// rewriteFragment replaces every non-top fragment whose signature matches a
// duplicate with a reference, then descends through the structural keywords.
func rewriteFragment(v Value, bySig map[string]string, top bool) Value {
	if v.Kind() != KindObject || v.IsRef() {
		return v
	}
	if !top && qualifies(v) {
		if name, ok := bySig[signature(v)]; ok {
			return Ref(name)
		}
	}
	out := make(map[string]Value, len(v.Keywords()))
	for k, kv := range v.Keywords() {
		out[k] = kv
	}
	if props, ok := v.Keyword(KeywordProperties); ok && props.Kind() == KindObject {
		np := make(map[string]Value, len(props.Keywords()))
		for name, pv := range props.Keywords() {
			np[name] = rewriteFragment(pv, bySig, false)
		}
		out[KeywordProperties] = Object(np)
	}
	if items, ok := v.Keyword(KeywordItems); ok {
		switch items.Kind() {
		case KindObject:
			out[KeywordItems] = rewriteFragment(items, bySig, false)
		case KindArray:
			ni := make([]Value, 0, len(items.Items()))
			for _, it := range items.Items() {
				ni = append(ni, rewriteFragment(it, bySig, false))
			}
			out[KeywordItems] = Array(ni...)
		}
	}
	if ap, ok := v.Keyword(KeywordAdditionalProperties); ok && ap.Kind() == KindObject {
		out[KeywordAdditionalProperties] = rewriteFragment(ap, bySig, false)
	}
	return Object(out)
}
