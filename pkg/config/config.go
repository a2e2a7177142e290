// Package config holds the process-wide immutable configuration. Loaded
// once at startup and passed by reference into the components; no write
// path exists after that.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"

	"github.com/fraudguard-ai/fraudguard/pkg/logging"
)

// Config is the full service configuration.
type Config struct {
	// ListenAddr is the HTTP bind address
	ListenAddr string
	// APIKey is the shared secret for protected dispatch shapes
	APIKey string
	// RulesDir is the directory searched for rules.yaml
	RulesDir string
	// StaticDir is the directory holding the frontend index.html
	StaticDir string
	// AllowOrigins is the CORS allow-list; "*" mirrors the reference behavior
	AllowOrigins string
	// AITextURL points at a real AI-text detection backend; empty keeps the mock
	AITextURL string
	// LogLevel is the minimum log level
	LogLevel string
	// LogFormat is json or console
	LogFormat string
}

// NewDefaultConfig returns the configuration defaults.
func NewDefaultConfig() *Config {
	return &Config{
		ListenAddr:   ":8000",
		RulesDir:     "config",
		StaticDir:    ".",
		AllowOrigins: "*",
		LogLevel:     "info",
		LogFormat:    "json",
	}
}

// FromEnv builds the configuration from defaults overridden by
// FRAUDGUARD_* environment variables. The API key always resolves to a
// non-empty value: the env secret when set, otherwise a generated one.
func FromEnv() *Config {
	cfg := NewDefaultConfig()

	if v := os.Getenv("FRAUDGUARD_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("FRAUDGUARD_RULES_DIR"); v != "" {
		cfg.RulesDir = v
	}
	if v := os.Getenv("FRAUDGUARD_STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("FRAUDGUARD_ALLOW_ORIGINS"); v != "" {
		cfg.AllowOrigins = v
	}
	if v := os.Getenv("FRAUDGUARD_AITEXT_URL"); v != "" {
		cfg.AITextURL = v
	}
	if v := os.Getenv("FRAUDGUARD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("FRAUDGUARD_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	cfg.APIKey = getAPIKey()

	return cfg
}

// getAPIKey returns the shared secret from FRAUDGUARD_API_KEY, or generates
// a random one when unset. A generated key changes on every restart, so
// protected endpoints are effectively private until a real key is set.
func getAPIKey() string {
	if key := os.Getenv("FRAUDGUARD_API_KEY"); key != "" {
		return key
	}

	log := logging.With("config")
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		log.Error().Err(err).Msg("random API key generation failed")
		return ""
	}
	key := hex.EncodeToString(buf)
	log.Warn().
		Msg("FRAUDGUARD_API_KEY not set, generated a random key for this run")
	return key
}
