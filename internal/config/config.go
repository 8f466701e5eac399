// Package config reads server configuration from the environment. Every
// option has a safe default so the server boots with zero configuration.
package config

import (
	"os"
	"strconv"
	"strings"
)

const (
	envDescriptorDir    = "HTTPTOOLS_DESCRIPTOR_DIR"
	envBaseURL          = "HTTPTOOLS_BASE_URL"
	envTenantID         = "HTTPTOOLS_TENANT_ID"
	envReadOnly         = "HTTPTOOLS_READ_ONLY"
	envDisableTelemetry = "HTTPTOOLS_DISABLE_TELEMETRY"

	defaultDescriptorDir = "config"
)

// Config holds the resolved server configuration.
type Config struct {
	// DescriptorDir is the directory holding tenant descriptor YAML files.
	// Relative paths are resolved against the embedded filesystem first.
	DescriptorDir string
	// BaseURL resolves relative url_template values. Empty means descriptors
	// must use absolute URLs.
	BaseURL string
	// TenantID restricts the exposed tool set to a single tenant when set.
	TenantID string
	// ReadOnly exposes only tools whose descriptors perform GET requests.
	ReadOnly bool
	// DisableTelemetry turns off anonymous usage events.
	DisableTelemetry bool
}

// Load builds a Config from the environment.
func Load() *Config {
	return &Config{
		DescriptorDir:    getEnvOrDefault(envDescriptorDir, defaultDescriptorDir),
		BaseURL:          os.Getenv(envBaseURL),
		TenantID:         os.Getenv(envTenantID),
		ReadOnly:         getEnvBool(envReadOnly),
		DisableTelemetry: getEnvBool(envDisableTelemetry),
	}
}

func getEnvOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
