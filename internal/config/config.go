// Package config loads service configuration from yaml.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the calculator service.
type Config struct {
	// Network
	ListenAddr string `yaml:"listen_addr"`

	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	Simulation SimulationConfig `yaml:"simulation"`
	Catalog    CatalogConfig    `yaml:"catalog"`
}

// SimulationConfig caps and defaults the Monte Carlo parameters. The
// engine itself needs no timeouts: duration and trial count bound the
// work deterministically, so latency is controlled by capping both
// before the engine runs.
type SimulationConfig struct {
	DefaultDuration    float64 `yaml:"default_duration"`
	DefaultSimulations int     `yaml:"default_simulations"`
	MaxDuration        float64 `yaml:"max_duration"`
	MaxSimulations     int     `yaml:"max_simulations"`
}

// CatalogConfig selects the mod catalog source.
type CatalogConfig struct {
	// Source: embedded, file or postgres.
	Source string `yaml:"source"`
	// Path to a yaml catalog when Source is file.
	Path string `yaml:"path"`
	// Database connection when Source is postgres.
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// Default returns a Config with sensible defaults.
func Default() Config {
	return Config{
		ListenAddr: ":8080",
		LogLevel:   "info",
		Simulation: SimulationConfig{
			DefaultDuration:    10,
			DefaultSimulations: 100,
			MaxDuration:        300,
			MaxSimulations:     20000,
		},
		Catalog: CatalogConfig{
			Source: "embedded",
		},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Catalog.Source {
	case "embedded", "file", "postgres":
	default:
		return fmt.Errorf("unknown catalog source %q", c.Catalog.Source)
	}
	if c.Catalog.Source == "file" && c.Catalog.Path == "" {
		return fmt.Errorf("catalog source is file but no path given")
	}
	if c.Simulation.MaxDuration <= 0 || c.Simulation.MaxSimulations <= 0 {
		return fmt.Errorf("simulation caps must be positive")
	}
	return nil
}
