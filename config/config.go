// Package config loads the signup service settings from defaults, an
// optional YAML file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr            string        `yaml:"addr"`
	MongoURI        string        `yaml:"mongo_uri"`
	Database        string        `yaml:"database"`
	Collection      string        `yaml:"collection"`
	BcryptCost      int           `yaml:"bcrypt_cost"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// LoadDefaults fills c with development values.
func (c *Config) LoadDefaults() {
	c.Addr = ":5050"
	c.MongoURI = "mongodb://127.0.0.1:27017"
	c.Database = "signup"
	c.Collection = "accounts"
	c.BcryptCost = 12
	c.ShutdownTimeout = 10 * time.Second
}

// Load applies defaults then overlays the YAML file at path. A missing file
// is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// LoadFromEnv is Load followed by environment overrides. A .env file in the
// working directory is read first if present.
func LoadFromEnv(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("SIGNUP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MONGO_URL"); v != "" {
		cfg.MongoURI = v
	}
	if v := os.Getenv("SIGNUP_DB"); v != "" {
		cfg.Database = v
	}
	if v := os.Getenv("SIGNUP_COLLECTION"); v != "" {
		cfg.Collection = v
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}
