package config

import (
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg == nil {
		t.Fatal("Default() returned nil")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default() does not validate: %v", err)
	}
}

func TestDefaultCounterConfig(t *testing.T) {
	cfg := Default()

	if cfg.Counter.Limit != 10 {
		t.Errorf("Counter.Limit = %d, want 10", cfg.Counter.Limit)
	}
}

func TestDefaultAdvisorConfig(t *testing.T) {
	cfg := Default()

	if cfg.Advisor.CatalogFile != "" {
		t.Errorf("Advisor.CatalogFile = %q, want empty string", cfg.Advisor.CatalogFile)
	}

	if cfg.Advisor.Examples == nil {
		t.Error("Advisor.Examples is nil, want empty slice")
	}

	if len(cfg.Advisor.Examples) != 0 {
		t.Errorf("Advisor.Examples has %d elements, want 0", len(cfg.Advisor.Examples))
	}
}

func TestDefaultPathsConfig(t *testing.T) {
	cfg := Default()

	if cfg.Paths.Log != ".gadgets/gadgets-debug.log" {
		t.Errorf("Paths.Log = %q, want %q", cfg.Paths.Log, ".gadgets/gadgets-debug.log")
	}
}

func TestDefaultLogRotationConfig(t *testing.T) {
	cfg := Default()

	if cfg.LogRotation.MaxSizeMB != 10 {
		t.Errorf("LogRotation.MaxSizeMB = %d, want 10", cfg.LogRotation.MaxSizeMB)
	}
	if cfg.LogRotation.MaxBackups != 3 {
		t.Errorf("LogRotation.MaxBackups = %d, want 3", cfg.LogRotation.MaxBackups)
	}
	if cfg.LogRotation.MaxAgeDays != 7 {
		t.Errorf("LogRotation.MaxAgeDays = %d, want 7", cfg.LogRotation.MaxAgeDays)
	}
	if !cfg.LogRotation.Compress {
		t.Error("LogRotation.Compress = false, want true")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero limit", func(c *Config) { c.Counter.Limit = 0 }, "counter.limit"},
		{"negative limit", func(c *Config) { c.Counter.Limit = -1 }, "counter.limit"},
		{"blank example", func(c *Config) { c.Advisor.Examples = []string{"ok", "  "} }, "advisor.examples[1]"},
		{"negative rotation", func(c *Config) { c.LogRotation.MaxBackups = -1 }, "log_rotation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want substring %q", err, tt.wantErr)
			}
		})
	}
}
