package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// API
	API struct {
		Port int    `toml:"port"`
		Host string `toml:"host"`
	} `toml:"api"`

	// Pipeline
	Pipeline struct {
		FetchTimeoutSeconds   int   `toml:"fetch_timeout"`   // fetch stage budget in seconds
		RequestTimeoutSeconds int   `toml:"request_timeout"` // overall pipeline budget in seconds
		MaxBodyBytes          int64 `toml:"max_body_bytes"`  // cap on fetched resource size, 0 = unbounded
	} `toml:"pipeline"`

	// Log
	Log struct {
		File  string `toml:"file"`
		Level string `toml:"level"`
	} `toml:"log"`

	// CLI
	CLI struct {
		BaseURL string `toml:"base_url"` // API base URL for the CLI client
	} `toml:"cli"`
}

// DefaultConfig returns a config with default values.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.API.Port = 8000
	cfg.API.Host = "0.0.0.0"
	cfg.Pipeline.FetchTimeoutSeconds = 30
	cfg.Pipeline.RequestTimeoutSeconds = 60
	cfg.Pipeline.MaxBodyBytes = 50 << 20
	cfg.Log.File = "logs/url2md.log"
	cfg.Log.Level = "info"
	cfg.CLI.BaseURL = "http://localhost:8000"
	return cfg
}

// FetchTimeout returns the fetch stage budget as a duration.
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Pipeline.FetchTimeoutSeconds) * time.Second
}

// RequestTimeout returns the overall pipeline budget as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.Pipeline.RequestTimeoutSeconds) * time.Second
}

// ConfigPath returns the path to the config file.
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "url2md", "config.toml"), nil
}

// Load reads configuration from ~/.config/url2md/config.toml, creating
// the file with defaults if it doesn't exist. Environment variables
// override file values.
func Load() (*Config, error) {
	configPath, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		cfg := DefaultConfig()
		applyEnv(cfg)
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Merge with defaults for any missing values
	defaultCfg := DefaultConfig()
	if cfg.API.Port == 0 {
		cfg.API.Port = defaultCfg.API.Port
	}
	if cfg.API.Host == "" {
		cfg.API.Host = defaultCfg.API.Host
	}
	if cfg.Pipeline.FetchTimeoutSeconds == 0 {
		cfg.Pipeline.FetchTimeoutSeconds = defaultCfg.Pipeline.FetchTimeoutSeconds
	}
	if cfg.Pipeline.RequestTimeoutSeconds == 0 {
		cfg.Pipeline.RequestTimeoutSeconds = defaultCfg.Pipeline.RequestTimeoutSeconds
	}
	if cfg.Pipeline.MaxBodyBytes == 0 {
		cfg.Pipeline.MaxBodyBytes = defaultCfg.Pipeline.MaxBodyBytes
	}
	if cfg.Log.File == "" {
		cfg.Log.File = defaultCfg.Log.File
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultCfg.Log.Level
	}
	if cfg.CLI.BaseURL == "" {
		cfg.CLI.BaseURL = defaultCfg.CLI.BaseURL
	}

	applyEnv(&cfg)

	return &cfg, nil
}

// applyEnv overrides config values from the environment (useful for
// Docker).
func applyEnv(cfg *Config) {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.API.Port = p
		}
	}
	if host := os.Getenv("HOST"); host != "" {
		cfg.API.Host = host
	}
	if v := os.Getenv("FETCH_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Pipeline.FetchTimeoutSeconds = n
		}
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Pipeline.RequestTimeoutSeconds = n
		}
	}
	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("BASE_URL"); v != "" {
		cfg.CLI.BaseURL = v
	}
}

// Save writes the configuration to the config file.
func Save(cfg *Config) error {
	configPath, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
