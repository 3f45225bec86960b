package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.QuietWindow() != 50*time.Millisecond {
		t.Errorf("QuietWindow() = %v, want 50ms", cfg.QuietWindow())
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.yaml")
	content := `
hardware_addr: "aa:bb:cc:4a:7f:02"
pin: 3
quiet_window_ms: 75
port: 9000
pop: "abcd1234"
state_dir: /var/lib/prov-device
log_level: debug
advertise: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.HardwareAddr != "aa:bb:cc:4a:7f:02" {
		t.Errorf("HardwareAddr = %q", cfg.HardwareAddr)
	}
	if cfg.Pin != 3 {
		t.Errorf("Pin = %d, want 3", cfg.Pin)
	}
	if cfg.QuietWindow() != 75*time.Millisecond {
		t.Errorf("QuietWindow() = %v, want 75ms", cfg.QuietWindow())
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want 9000", cfg.Port)
	}
	if !cfg.Advertise {
		t.Error("Advertise = false, want true")
	}
	// Values absent from the file keep their defaults.
	if cfg.Address != "192.168.4.2" {
		t.Errorf("Address = %q, want default", cfg.Address)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative pin", func(c *Config) { c.Pin = -1 }},
		{"zero quiet window", func(c *Config) { c.QuietWindowMS = 0 }},
		{"bad log level", func(c *Config) { c.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
