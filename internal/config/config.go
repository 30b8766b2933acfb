package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the persistent application configuration
type Config struct {
	// Root URL of the analysis service, without the /api/v1 prefix
	BaseURL string `json:"base_url"`

	// Client-side request pacing. RateLimit is requests per second;
	// 0 means unlimited.
	RateLimit float64 `json:"rate_limit"`
	Burst     int     `json:"burst"`

	Log LogConfig `json:"log"`
}

// LogConfig holds logging preferences
type LogConfig struct {
	Level string `json:"level"` // debug, info, warn, error
	File  string `json:"file"`  // used by the viewer so logs stay off the terminal
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		BaseURL:   "http://localhost:8000",
		RateLimit: 0,
		Burst:     1,
		Log: LogConfig{
			Level: "info",
			File:  filepath.Join(dataDir(), "logs", "atlas.log"),
		},
	}
}

func dataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".atlas")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(dataDir(), "config.json")
}

// Load resolves configuration from defaults, the config file, a .env file
// in the working directory and the environment, later sources winning.
func Load() (*Config, error) {
	// Missing .env is normal.
	_ = godotenv.Load()
	return LoadFrom(ConfigPath())
}

// LoadFrom is Load with an explicit config file path and without .env
// handling. A missing file yields defaults.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
		}
	}

	cfg.ApplyEnv()
	return cfg, nil
}

// LoadEnvFile loads KEY=value pairs from the given files into the process
// environment without overriding variables that are already set.
func LoadEnvFile(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from ATLAS_* environment variables. Values
// that fail to parse are ignored.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("ATLAS_BASE_URL")); v != "" {
		c.BaseURL = v
	}
	if v, ok := os.LookupEnv("ATLAS_RATE_LIMIT"); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil && f >= 0 {
			c.RateLimit = f
		}
	}
	if v, ok := os.LookupEnv("ATLAS_BURST"); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			c.Burst = n
		}
	}
	if v := os.Getenv("ATLAS_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("ATLAS_LOG_FILE"); v != "" {
		c.Log.File = v
	}
}

// Save writes config to path
func (c *Config) Save(path string) error {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
