// Package config handles resolving configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// LogLevel mirrors the teacher's proto enum as a plain string type.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// Config is the converter's ambient configuration: logging, storage, and
// service bind addresses. It never carries conversion semantics (tab width,
// hrule_min, and the rest of spec.md §6 live on convert.Options instead,
// set per invocation or per HTTP request).
type Config struct {
	LogLevel LogLevel `yaml:"log_level"`
	DevMode  bool     `yaml:"dev_mode"`

	// DictionaryStorePath is the SQLite file backing the Conversion Store.
	DictionaryStorePath string `yaml:"dictionary_store_path"`

	// WebAddress is the serve command's bind address. RPCAddress is
	// loaded but not read by any command: the JSON API is served on
	// WebAddress. Both are named to match the teacher's
	// rpc_address/web_address fields.
	RPCAddress string `yaml:"rpc_address"`
	WebAddress string `yaml:"web_address"`

	// APIPasswordHash, when set, gates the HTTP service behind Basic Auth
	// (internal/sec). Empty means open access, matching the teacher's
	// dev-mode-bypasses-auth convention.
	APIPasswordHash string `yaml:"api_password_hash"`
}

// Default returns a Config with every field populated to a usable value.
func Default() *Config {
	return &Config{
		LogLevel:            LogLevelInfo,
		RPCAddress:          "localhost:9998",
		WebAddress:          "localhost:9999",
		DictionaryStorePath: filepath.Join(xdg.DataHome, "txt2html", "db.sqlite"),
	}
}

// Load reads a YAML configuration file from path, merges it onto Default,
// and validates the result.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path) //nolint:gosec // config file may live anywhere the operator points at
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate reports whether cfg is complete enough to run the converter's
// ambient services.
func (cfg *Config) Validate() error {
	switch cfg.LogLevel {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
	default:
		return fmt.Errorf("log_level %q is not one of debug, info, warn, error", cfg.LogLevel)
	}
	if cfg.DictionaryStorePath == "" {
		return fmt.Errorf("dictionary_store_path must not be empty")
	}
	return nil
}
