package server

import (
	"strings"
	"time"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Address is the listen address (host:port).
	// Default: ":3000".
	Address string

	// ShutdownTimeout bounds how long Run waits for in-flight requests
	// once its context is canceled.
	// Default: 10 seconds.
	ShutdownTimeout time.Duration

	// ReadHeaderTimeout is the http.Server ReadHeaderTimeout.
	// Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// StaticDir is served under StaticPrefix. Empty disables static files.
	StaticDir string

	// StaticPrefix is the URL prefix for static files.
	// Default: "/static/".
	StaticPrefix string

	// MetricsPath exposes Prometheus metrics when a gatherer is set.
	// Empty disables the endpoint.
	// Default: "/metrics".
	MetricsPath string

	// Pretty enables indented HTML output.
	Pretty bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           ":3000",
		ShutdownTimeout:   10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		StaticPrefix:      "/static/",
		MetricsPath:       "/metrics",
	}
}

// Clone returns a copy of the Config.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// withDefaults fills zero fields from DefaultConfig.
func (c *Config) withDefaults() *Config {
	out := DefaultConfig()
	if c == nil {
		return out
	}
	merged := c.Clone()
	if merged.Address == "" {
		merged.Address = out.Address
	}
	if merged.ShutdownTimeout <= 0 {
		merged.ShutdownTimeout = out.ShutdownTimeout
	}
	if merged.ReadHeaderTimeout <= 0 {
		merged.ReadHeaderTimeout = out.ReadHeaderTimeout
	}
	if merged.StaticPrefix == "" {
		merged.StaticPrefix = out.StaticPrefix
	}
	if !strings.HasSuffix(merged.StaticPrefix, "/") {
		merged.StaticPrefix += "/"
	}
	return merged
}
