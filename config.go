package skemadef

import "sync"

// KeyNamingStrategy selects how declared field names are rendered into
// schema property keys and matched during parsing.
type KeyNamingStrategy int

const (
	KeyNamingDefault   KeyNamingStrategy = iota // Use declared names as-is.
	KeyNamingSnakeCase                          // Convert camelCase names to snake_case.
)

// ModuleConfig is a per-scope override record. Fields are pointers so
// "unset" is distinguishable from "explicitly default" and falls through to
// the global setting.
type ModuleConfig struct {
	AcceptNull *bool
	KeyNaming  *KeyNamingStrategy
}

// Resolved is the effective settings for one scope after applying
// precedence: scope override (if set), then global default.
type Resolved struct {
	AcceptNull bool
	KeyNaming  KeyNamingStrategy
}

// Configuration is the single source of truth for cross-cutting schema
// generation defaults. All reads and writes are serialized behind one lock;
// no accessor holds the lock across a callback into user code.
//
// Resolution happens per call, so a configuration change takes effect on the
// very next schema-generation or parse call. A single multi-field generation
// is not guaranteed to observe one atomic snapshot across all its accessor
// calls if configuration changes mid-generation; the store is intended for
// startup-time or test-time use, not hot-path toggling.
type Configuration struct {
	mu         sync.Mutex
	acceptNull bool
	keyNaming  KeyNamingStrategy
	scopes     map[string]ModuleConfig
}

// NewConfiguration returns a store with construction-time defaults:
// accept-null false, KeyNamingDefault, no scope overrides.
func NewConfiguration() *Configuration {
	return &Configuration{scopes: map[string]ModuleConfig{}}
}

var (
	defaultConfigOnce sync.Once
	defaultConfig     *Configuration
)

// Default returns the lazily created process-wide Configuration. Components
// constructed without an explicit store resolve against it.
func Default() *Configuration {
	defaultConfigOnce.Do(func() { defaultConfig = NewConfiguration() })
	return defaultConfig
}

// AcceptNull reports the global accept-null default.
func (c *Configuration) AcceptNull() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.acceptNull
}

// SetAcceptNull sets the global accept-null default.
func (c *Configuration) SetAcceptNull(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acceptNull = v
}

// KeyNaming reports the global key-naming default.
func (c *Configuration) KeyNaming() KeyNamingStrategy {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.keyNaming
}

// SetKeyNaming sets the global key-naming default.
func (c *Configuration) SetKeyNaming(s KeyNamingStrategy) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.keyNaming = s
}

// Configure creates or updates the override record for a scope. The mutator
// runs on a copy outside the lock, so re-entrant configuration from within
// the callback cannot deadlock.
func (c *Configuration) Configure(scope string, fn func(*ModuleConfig)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	mc := c.scopes[scope]
	c.mu.Unlock()

	fn(&mc)

	c.mu.Lock()
	c.scopes[scope] = mc
	c.mu.Unlock()
}

// Scope returns the raw override record for a scope, if any.
func (c *Configuration) Scope(scope string) (ModuleConfig, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mc, ok := c.scopes[scope]
	return mc, ok
}

// Resolve computes the effective settings for a scope: the scope's override
// where set, otherwise the global default.
func (c *Configuration) Resolve(scope string) Resolved {
	c.mu.Lock()
	defer c.mu.Unlock()
	r := Resolved{AcceptNull: c.acceptNull, KeyNaming: c.keyNaming}
	if mc, ok := c.scopes[scope]; ok {
		if mc.AcceptNull != nil {
			r.AcceptNull = *mc.AcceptNull
		}
		if mc.KeyNaming != nil {
			r.KeyNaming = *mc.KeyNaming
		}
	}
	return r
}

// Reset restores construction-time defaults and drops all scope overrides.
// Intended for test isolation.
func (c *Configuration) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acceptNull = false
	c.keyNaming = KeyNamingDefault
	c.scopes = map[string]ModuleConfig{}
}

// EncodeKey renders a declared field name under the given strategy.
func EncodeKey(name string, s KeyNamingStrategy) string {
	if s != KeyNamingSnakeCase {
		return name
	}
	out := make([]byte, 0, len(name)+4)
	for i := 0; i < len(name); i++ {
		ch := name[i]
		if ch >= 'A' && ch <= 'Z' {
			if i > 0 {
				out = append(out, '_')
			}
			out = append(out, ch-'A'+'a')
			continue
		}
		out = append(out, ch)
	}
	return string(out)
}
