// Package config handles loading and parsing application configuration.
// It supports two sources:
//  1. A YAML file named by the environment variable CONFIG_PATH
//  2. Plain environment variables (always applied, and the only source
//     when CONFIG_PATH is unset)
//
// The roster program takes no command-line flags: everything it needs
// has a sensible default, so it runs with no configuration at all.
package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Backend names accepted in Config.Backend.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config is the root configuration structure.
// Every field maps to a key in the YAML file AND can be overridden
// by the corresponding environment variable (env:"...").
//
// env-default:"..." is used when neither source sets the value.
type Config struct {
	// Env controls log format and verbosity.
	// Valid values: "dev", "staging", "prod"
	Env string `yaml:"env" env:"ENV" env-default:"dev"`

	// StoragePath is the roster file (file backend) or the SQLite .db
	// file (sqlite backend). Ignored by the memory backend.
	StoragePath string `yaml:"storage_path" env:"STORAGE_PATH" env-default:"data/roster.txt"`

	// Backend selects the storage implementation: file, memory or sqlite.
	Backend string `yaml:"backend" env:"STORAGE_BACKEND" env-default:"file"`
}

// Load reads the configuration. If CONFIG_PATH is set the file must
// exist; environment variables override values from the file.
func Load() (*Config, error) {
	var cfg Config

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		// cleanenv.ReadEnv fills the struct from env vars and defaults.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config.Load: read env: %w", err)
		}
		return &cfg, nil
	}

	// Give a clear message rather than a cryptic "open: no such file".
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config.Load: config file does not exist: %s", configPath)
	}

	// cleanenv.ReadConfig reads the YAML file, then applies env:"..."
	// overrides and env-default values.
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: read %s: %w", configPath, err)
	}
	return &cfg, nil
}

// MustLoad is Load for main: it exits the process on failure, so if it
// returns the config is usable.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot load config: %s", err.Error())
	}
	return cfg
}
