// Package config loads the YAML runtime configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigPath is where the server looks for its config file.
const DefaultConfigPath = "./config.yaml"

// AppConfig holds runtime startup configuration loaded from YAML.
type AppConfig struct {
	Port           int         `yaml:"port"`
	Env            string      `yaml:"env"` // "development" | "production"
	JWTSecret      string      `yaml:"jwt_secret"`
	AllowedOrigins []string    `yaml:"allowed_origins"`
	Store          StoreConfig `yaml:"store"`
	AI             AIProvider  `yaml:"ai"`
	S3             S3Options   `yaml:"s3"`
}

// StoreConfig selects the kv backend holding the snapshot blobs.
type StoreConfig struct {
	Driver   string `yaml:"driver"` // "badger" | "redis" | "memory"
	Path     string `yaml:"path"`
	RedisURL string `yaml:"redis_url"`
}

// AIProvider configures the summarization collaborator.
type AIProvider struct {
	Type         string `yaml:"type"` // "openai" | "anthropic" | "openai-compatible"
	Endpoint     string `yaml:"endpoint"`
	APIKey       string `yaml:"api_key"`
	DefaultModel string `yaml:"model"`
}

// S3Options configures optional backup uploads.
type S3Options struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PathStyleAccess bool   `yaml:"path_style_access"`
}

// Configured reports whether the S3 options are complete enough to upload.
func (o S3Options) Configured() bool {
	return o.Bucket != "" && o.Region != "" && o.AccessKeyID != "" && o.SecretAccessKey != ""
}

// Load reads and normalizes the config file. A missing file yields defaults.
func Load(path string) (*AppConfig, error) {
	cfg := defaultAppConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port: 2323,
		Env:  "production",
		Store: StoreConfig{
			Driver: "badger",
			Path:   "./data",
		},
	}
}

func (c *AppConfig) normalize() {
	if c.Port <= 0 || c.Port > 65535 {
		c.Port = 2323
	}
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	if c.Env != "development" && c.Env != "dev" {
		c.Env = "production"
	}
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	if c.Store.Driver == "" {
		c.Store.Driver = "badger"
	}
	if strings.TrimSpace(c.Store.Path) == "" {
		c.Store.Path = "./data"
	}

	origins := make([]string, 0, len(c.AllowedOrigins))
	for _, o := range c.AllowedOrigins {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	c.AllowedOrigins = origins
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool {
	return c.Env == "development" || c.Env == "dev"
}
