// Package config loads the application configuration from a YAML file,
// falling back to built-in defaults for anything unset.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"takeabite/internal/seed"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig      `yaml:"server"`
	Metrics  MetricsConfig     `yaml:"metrics"`
	Database DatabaseConfig    `yaml:"database"`
	Orders   OrdersConfig      `yaml:"orders"`
	Business seed.BusinessInfo `yaml:"business"`
	Log      LogConfig         `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

type DatabaseConfig struct {
	Path string `yaml:"path"`
}

type OrdersConfig struct {
	PickupLeadMinutes   int  `yaml:"pickup_lead_minutes"`
	DeliveryLeadMinutes int  `yaml:"delivery_lead_minutes"`
	StrictTransitions   bool `yaml:"strict_transitions"`
	UUIDIdentifiers     bool `yaml:"uuid_identifiers"`
}

type LogConfig struct {
	Development bool `yaml:"development"`
}

// Default returns the configuration used when no file is provided.
func Default() Config {
	return Config{
		Server:   ServerConfig{Port: 8080},
		Metrics:  MetricsConfig{Enabled: true, Port: 9090},
		Database: DatabaseConfig{Path: "takeabite.db"},
		Orders: OrdersConfig{
			PickupLeadMinutes:   15,
			DeliveryLeadMinutes: 30,
		},
		Business: seed.DefaultBusinessInfo(),
	}
}

// Load reads the YAML file at path over the defaults. A missing file is not
// an error; the defaults are returned as-is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
