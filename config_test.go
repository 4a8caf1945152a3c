package skemadef_test

import (
	"sync"
	"testing"

	skemadef "github.com/reoring/skemadef"
)

func TestConfiguration_Defaults(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	r := cfg.Resolve("anything")
	if r.AcceptNull {
		t.Fatalf("accept-null must default to false")
	}
	if r.KeyNaming != skemadef.KeyNamingDefault {
		t.Fatalf("key naming must default to declared names")
	}
}

func TestConfiguration_ScopeOverridesGlobal(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	cfg.SetAcceptNull(true)
	cfg.Configure("strict", func(mc *skemadef.ModuleConfig) {
		f := false
		mc.AcceptNull = &f
	})

	if !cfg.Resolve("other").AcceptNull {
		t.Fatalf("unconfigured scope must see the global setting")
	}
	if cfg.Resolve("strict").AcceptNull {
		t.Fatalf("scope override must win over the global setting")
	}
}

func TestConfiguration_UnsetScopeFieldFallsThrough(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	cfg.SetKeyNaming(skemadef.KeyNamingSnakeCase)
	cfg.Configure("api", func(mc *skemadef.ModuleConfig) {
		v := true
		mc.AcceptNull = &v
		// KeyNaming intentionally left unset.
	})

	r := cfg.Resolve("api")
	if !r.AcceptNull {
		t.Fatalf("set field must apply")
	}
	if r.KeyNaming != skemadef.KeyNamingSnakeCase {
		t.Fatalf("unset field must fall through to global")
	}
}

func TestConfiguration_ChangesVisibleOnNextResolve(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	if cfg.Resolve("s").AcceptNull {
		t.Fatalf("precondition failed")
	}
	cfg.SetAcceptNull(true)
	if !cfg.Resolve("s").AcceptNull {
		t.Fatalf("change must be visible on the very next resolve")
	}
}

// The mutator runs outside the lock, so configuring another scope from
// within a Configure callback must not deadlock.
func TestConfiguration_ReentrantConfigure(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	done := make(chan struct{})
	go func() {
		defer close(done)
		cfg.Configure("outer", func(mc *skemadef.ModuleConfig) {
			cfg.Configure("inner", func(imc *skemadef.ModuleConfig) {
				v := true
				imc.AcceptNull = &v
			})
			v := true
			mc.AcceptNull = &v
		})
	}()
	<-done
	if !cfg.Resolve("outer").AcceptNull || !cfg.Resolve("inner").AcceptNull {
		t.Fatalf("both scopes must be configured")
	}
}

func TestConfiguration_ConcurrentAccess(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			cfg.SetAcceptNull(true)
			cfg.Configure("s", func(mc *skemadef.ModuleConfig) {
				v := true
				mc.AcceptNull = &v
			})
		}()
		go func() {
			defer wg.Done()
			_ = cfg.Resolve("s")
			_ = cfg.AcceptNull()
		}()
	}
	wg.Wait()
}

func TestConfiguration_Reset(t *testing.T) {
	cfg := skemadef.NewConfiguration()
	cfg.SetAcceptNull(true)
	cfg.SetKeyNaming(skemadef.KeyNamingSnakeCase)
	cfg.Configure("s", func(mc *skemadef.ModuleConfig) {
		v := true
		mc.AcceptNull = &v
	})

	cfg.Reset()
	r := cfg.Resolve("s")
	if r.AcceptNull || r.KeyNaming != skemadef.KeyNamingDefault {
		t.Fatalf("reset must restore construction-time defaults, got %+v", r)
	}
	if _, ok := cfg.Scope("s"); ok {
		t.Fatalf("reset must drop scope overrides")
	}
}

func TestDefault_ReturnsSameStore(t *testing.T) {
	if skemadef.Default() != skemadef.Default() {
		t.Fatalf("process default must be a singleton")
	}
}

func TestEncodeKey(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"userName", "user_name"},
		{"ID", "i_d"},
		{"already_snake", "already_snake"},
		{"x", "x"},
	}
	for _, c := range cases {
		if got := skemadef.EncodeKey(c.in, skemadef.KeyNamingSnakeCase); got != c.want {
			t.Fatalf("EncodeKey(%q) = %q, want %q", c.in, got, c.want)
		}
		if got := skemadef.EncodeKey(c.in, skemadef.KeyNamingDefault); got != c.in {
			t.Fatalf("default strategy must not change %q, got %q", c.in, got)
		}
	}
}
