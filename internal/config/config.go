// Package config loads tracker settings from an optional YAML file,
// with environment variables taking precedence over file values.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `yaml:"addr"`

	// DataDir holds the sqlite database (issues.db).
	DataDir string `yaml:"data_dir"`

	// BaseURL is the externally visible URL, used in log output only.
	BaseURL string `yaml:"base_url"`
}

func Default() Config {
	return Config{
		Addr:    ":8080",
		DataDir: "data",
		BaseURL: "http://localhost:8080",
	}
}

// Load reads the config file at path on top of the defaults. A missing
// file is not an error: defaults plus environment apply.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.Addr = getEnv("ISSUES_ADDR", cfg.Addr)
	cfg.DataDir = getEnv("ISSUES_DATA_DIR", cfg.DataDir)
	cfg.BaseURL = getEnv("ISSUES_BASE_URL", cfg.BaseURL)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
