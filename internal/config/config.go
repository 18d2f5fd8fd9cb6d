// Package config loads familytree settings from YAML and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables overriding file settings.
const (
	EnvInput         = "FAMILYTREE_INPUT"
	EnvLogLevel      = "FAMILYTREE_LOG_LEVEL"
	EnvLogFormat     = "FAMILYTREE_LOG_FORMAT"
	EnvSourceTable   = "FAMILYTREE_SOURCE_TABLE"
	EnvS3Region      = "FAMILYTREE_S3_REGION"
	EnvS3Endpoint    = "FAMILYTREE_S3_ENDPOINT"
	EnvS3PathStyle   = "FAMILYTREE_S3_PATH_STYLE"
	EnvMetricsListen = "FAMILYTREE_METRICS_LISTEN"
)

// Config is the complete familytree configuration.
type Config struct {
	// Input is the data location; empty means prompt for it.
	Input   string        `yaml:"input"`
	Log     LogConfig     `yaml:"log"`
	Source  SourceConfig  `yaml:"source"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig configures the stderr logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// SourceConfig configures record sources.
type SourceConfig struct {
	// Table is the person table read from SQL locations.
	Table string   `yaml:"table"`
	S3    S3Config `yaml:"s3"`
}

// S3Config configures s3:// locations. Credentials come from the AWS chain.
type S3Config struct {
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	// Listen is the address serving /metrics; empty disables it.
	Listen string `yaml:"listen"`
}

// DefaultConfig returns a Config with defaults applied.
func DefaultConfig() *Config {
	return &Config{
		Log:    LogConfig{Level: "warn", Format: "auto"},
		Source: SourceConfig{Table: "persons", S3: S3Config{Region: "us-east-1"}},
	}
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from non-empty environment variables.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	set := func(dst *string, key string) {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			*dst = v
		}
	}
	set(&c.Input, EnvInput)
	set(&c.Log.Level, EnvLogLevel)
	set(&c.Log.Format, EnvLogFormat)
	set(&c.Source.Table, EnvSourceTable)
	set(&c.Source.S3.Region, EnvS3Region)
	set(&c.Source.S3.Endpoint, EnvS3Endpoint)
	set(&c.Metrics.Listen, EnvMetricsListen)
	if v := strings.TrimSpace(getenv(EnvS3PathStyle)); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvS3PathStyle, err)
		}
		c.Source.S3.PathStyle = b
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level %q must be debug, info, warn or error", c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json", "auto":
	default:
		return fmt.Errorf("log.format %q must be text, json or auto", c.Log.Format)
	}
	if c.Source.Table == "" {
		return fmt.Errorf("source.table is required")
	}
	if c.Source.S3.Region == "" {
		return fmt.Errorf("source.s3.region is required")
	}
	return nil
}
