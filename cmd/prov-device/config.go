package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the device configuration, assembled from defaults, an
// optional YAML file, and command-line flags (highest precedence).
type Config struct {
	// HardwareAddr is the MAC the service name is derived from. Empty
	// means the first available hardware interface is used.
	HardwareAddr string `yaml:"hardware_addr"`

	// Pin is the GPIO pin the reset button is attached to.
	Pin int `yaml:"pin"`

	// QuietWindowMS is the debounce quiet window in milliseconds.
	QuietWindowMS int `yaml:"quiet_window_ms"`

	// Port is the provisioning service port advertised over mDNS.
	Port uint16 `yaml:"port"`

	// PoP is the proof-of-possession secret. Empty means one is derived
	// from FactorySecret, or generated when that is empty too.
	PoP string `yaml:"pop"`

	// FactorySecret seeds PoP derivation so a fleet shares no secret.
	FactorySecret string `yaml:"factory_secret"`

	// StateDir is where credentials are persisted.
	StateDir string `yaml:"state_dir"`

	// LifecycleLog is an optional path for the binary lifecycle log.
	LifecycleLog string `yaml:"lifecycle_log"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Advertise enables real mDNS advertising alongside the simulated
	// transport.
	Advertise bool `yaml:"advertise"`

	// Interface restricts mDNS advertising to one network interface.
	Interface string `yaml:"interface"`

	// Address is the address the simulated station reports.
	Address string `yaml:"address"`
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Pin:           9,
		QuietWindowMS: 50,
		Port:          8443,
		StateDir:      ".",
		LogLevel:      "info",
		Address:       "192.168.4.2",
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for values the device cannot run with.
func (c *Config) Validate() error {
	if c.Pin < 0 {
		return fmt.Errorf("pin must be non-negative, got %d", c.Pin)
	}
	if c.QuietWindowMS <= 0 {
		return fmt.Errorf("quiet window must be positive, got %d ms", c.QuietWindowMS)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level: %s (use: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// QuietWindow returns the debounce window as a duration.
func (c *Config) QuietWindow() time.Duration {
	return time.Duration(c.QuietWindowMS) * time.Millisecond
}
