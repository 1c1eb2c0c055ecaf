package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Storage   StorageConfig   `yaml:"storage"`
	Latency   LatencyConfig   `yaml:"latency"`
	Seed      SeedConfig      `yaml:"seed"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// TransportConfig selects how the server speaks MCP. Mode is "stdio" or
// "http".
type TransportConfig struct {
	Mode string `yaml:"mode"`
}

// StorageConfig selects the repository backend. Backend is "memory" or
// "sqlite"; Path is the SQLite DSN and is ignored by the memory backend.
type StorageConfig struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path"`
}

// LatencyConfig toggles the simulated store latency. Disable it for tests.
type LatencyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// SeedConfig toggles loading the demo dataset at startup.
type SeedConfig struct {
	Enabled bool `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "stdio",
		},
		Storage: StorageConfig{
			Backend: "memory",
			Path:    ":memory:",
		},
		Latency: LatencyConfig{
			Enabled: true,
		},
		Seed: SeedConfig{
			Enabled: true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("ATELIER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("ATELIER_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("ATELIER_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("ATELIER_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if backend := os.Getenv("ATELIER_STORAGE_BACKEND"); backend != "" {
		cfg.Storage.Backend = backend
	}
	if path := os.Getenv("ATELIER_STORAGE_PATH"); path != "" {
		cfg.Storage.Path = path
	}
	if latency := os.Getenv("ATELIER_LATENCY_ENABLED"); latency != "" {
		enabled, err := strconv.ParseBool(latency)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_LATENCY_ENABLED: %w", err)
		}
		cfg.Latency.Enabled = enabled
	}
	if seedEnv := os.Getenv("ATELIER_SEED_ENABLED"); seedEnv != "" {
		enabled, err := strconv.ParseBool(seedEnv)
		if err != nil {
			return Config{}, fmt.Errorf("invalid ATELIER_SEED_ENABLED: %w", err)
		}
		cfg.Seed.Enabled = enabled
	}
	if level := os.Getenv("ATELIER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport.Mode {
	case "stdio", "http":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Storage.Backend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("invalid storage backend %q", c.Storage.Backend)
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
