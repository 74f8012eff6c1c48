// Package config loads and validates eof1validate's runtime configuration,
// grounded on the reference client's node.Config pattern (defaults +
// Validate()) but backed by YAML instead of flat CLI flags alone.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/eof2030/eof1validate/eof"
)

// Config holds the settings shared by the CLI and the HTTP server.
type Config struct {
	// ListenAddr is the internal/api HTTP server's bind address.
	ListenAddr string `yaml:"listen_addr"`

	// Revision is the default EVM revision new validation requests use
	// when the caller does not specify one explicitly.
	Revision string `yaml:"revision"`

	// RecursionDepthCap bounds §5's "configurable depth cap" for nested
	// container-section recursion.
	RecursionDepthCap int `yaml:"recursion_depth_cap"`

	// Metrics toggles the HTTP server's prometheus /metrics endpoint.
	Metrics bool `yaml:"metrics"`
}

// Default returns the zero-config defaults.
func Default() Config {
	return Config{
		ListenAddr:        ":8585",
		Revision:          "cancun",
		RecursionDepthCap: 256,
		Metrics:           false,
	}
}

// Load reads and unmarshals a YAML config file on top of Default(), so any
// field the file does not set keeps its default value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Validate rejects out-of-range configuration before the server/CLI starts.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if _, ok := eof.ParseRevision(c.Revision); !ok {
		return fmt.Errorf("unknown revision %q", c.Revision)
	}
	if c.RecursionDepthCap <= 0 {
		return fmt.Errorf("recursion_depth_cap must be positive, got %d", c.RecursionDepthCap)
	}
	return nil
}

// ParsedRevision resolves Revision to its eof.Revision value. Callers must
// have already run Validate successfully.
func (c *Config) ParsedRevision() eof.Revision {
	r, _ := eof.ParseRevision(c.Revision)
	return r
}
