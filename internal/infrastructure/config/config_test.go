package config

import "testing"

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("UPLOAD_URL", "/media/")
	t.Setenv("MAX_UPLOAD_MB", "not-a-number")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
	if cfg.UploadURL != "/media" {
		t.Fatalf("trailing slash should be trimmed, got %q", cfg.UploadURL)
	}
	if cfg.MaxUploadMB != 8 {
		t.Fatalf("invalid numbers fall back to the default, got %d", cfg.MaxUploadMB)
	}
	if !cfg.UsesMemoryStore() {
		t.Fatalf("empty DATABASE_URL selects the memory store")
	}
}

func TestValidate(t *testing.T) {
	base := Config{Addr: ":8080", Env: "production", JWTSecret: "s3cret", MaxUploadMB: 8}
	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	cases := map[string]func(c *Config){
		"empty addr":        func(c *Config) { c.Addr = "" },
		"zero upload limit": func(c *Config) { c.MaxUploadMB = 0 },
		"dev secret":        func(c *Config) { c.JWTSecret = devJWTSecret },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := base
			mutate(&c)
			if err := c.Validate(); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}

	dev := base
	dev.Env = "development"
	dev.JWTSecret = devJWTSecret
	if err := dev.Validate(); err != nil {
		t.Fatalf("dev secret is fine in development: %v", err)
	}
}
