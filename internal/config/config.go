package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

// DefaultPath is where LoadConfig looks when APP_CONFIG is not set.
var DefaultPath = filepath.Join("configs", "app.yaml")

type Config struct {
	App       AppConfig       `yaml:"app"`
	Listings  ListingsConfig  `yaml:"listings"`
	Static    StaticConfig    `yaml:"static"`
	Templates TemplatesConfig `yaml:"templates"`
}

type AppConfig struct {
	Name            string        `yaml:"name"`
	Env             string        `yaml:"env"`
	Debug           bool          `yaml:"debug"`
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	Root            string        `yaml:"root"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

type ListingsConfig struct {
	// MaxAge is the freshness, in seconds, sent with /api/apartments.
	MaxAge int `yaml:"max_age"`
}

type StaticConfig struct {
	Dir    string `yaml:"dir"`
	MaxAge int    `yaml:"max_age"`
}

type TemplatesConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the configuration used when neither a file nor the
// environment say otherwise.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:            "apartment-finder",
			Env:             "production",
			Host:            "0.0.0.0",
			Port:            5000,
			Root:            ".",
			ShutdownTimeout: 5 * time.Second,
		},
		Listings:  ListingsConfig{MaxAge: 300},
		Static:    StaticConfig{Dir: "static", MaxAge: 31536000},
		Templates: TemplatesConfig{Dir: "templates"},
	}
}

// LoadConfig reads the YAML file at path over the defaults and then applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	// Carrega arquivo YAML base
	yamlFile, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if raw, ok := os.LookupEnv("PORT"); ok && raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", raw, err)
		}
		c.App.Port = port
	}
	if raw, ok := os.LookupEnv("FLASK_DEBUG"); ok {
		c.App.Debug = raw == "1"
	}
	if root := os.Getenv("APP_ROOT"); root != "" {
		c.App.Root = root
	}
	return nil
}

func (c *Config) validate() error {
	if c.App.Port < 1 || c.App.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.App.Port)
	}
	if c.Listings.MaxAge < 0 || c.Static.MaxAge < 0 {
		return errors.New("cache max_age must not be negative")
	}
	if c.App.Root == "" {
		c.App.Root = "."
	}
	return nil
}

// Addr is the listen address, host:port.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.App.Host, strconv.Itoa(c.App.Port))
}

// DataPath is the fixed location of apartments.json under the app root.
func (c *Config) DataPath() string {
	return filepath.Join(c.App.Root, "data", "apartments.json")
}

func (c *Config) StaticDir() string {
	return c.resolve(c.Static.Dir)
}

func (c *Config) TemplatesDir() string {
	return c.resolve(c.Templates.Dir)
}

func (c *Config) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(c.App.Root, dir)
}
