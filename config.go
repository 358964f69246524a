package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Addr          string     `yaml:"addr,omitempty"`
	Timezone      string     `yaml:"timezone,omitempty"`     // IANA name; empty means the system zone
	DateBuckets   BucketMode `yaml:"date_buckets,omitempty"` // local, utc or place
	Locale        string     `yaml:"locale,omitempty"`       // default display language
	DefaultCenter *GeoPoint  `yaml:"default_center,omitempty"`
	MaxUploadMB   int64      `yaml:"max_upload_mb,omitempty"`
	DayCacheSize  int        `yaml:"day_cache_size,omitempty"`
	LogLevel      string     `yaml:"log_level,omitempty"`
}

// defaults for anything the config file leaves out
const (
	defaultAddr         = "127.0.0.1:8080"
	defaultLocale       = "ja"
	defaultMaxUploadMB  = 500
	defaultDayCacheSize = 64
)

// map center when no day is selected (Tokyo Station)
var defaultCenter = GeoPoint{Lat: 35.68, Lng: 139.76}

// DefaultConfigPath returns the default config file path following XDG spec
func DefaultConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configDir = filepath.Join(home, ".config")
	}
	return filepath.Join(configDir, "dayline", "config.yaml")
}

// LoadConfig loads configuration from the specified path and fills in
// defaults. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	var cfg Config
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Config file is optional
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Addr == "" {
		c.Addr = defaultAddr
	}
	if c.DateBuckets == "" {
		c.DateBuckets = BucketLocal
	}
	if c.Locale == "" {
		c.Locale = defaultLocale
	}
	if c.DefaultCenter == nil {
		center := defaultCenter
		c.DefaultCenter = &center
	}
	if c.MaxUploadMB <= 0 {
		c.MaxUploadMB = defaultMaxUploadMB
	}
	if c.DayCacheSize <= 0 {
		c.DayCacheSize = defaultDayCacheSize
	}
}

func (c *Config) validate() error {
	if !c.DateBuckets.valid() {
		return fmt.Errorf("date_buckets must be local, utc or place, got %q", c.DateBuckets)
	}
	if _, err := c.Location(); err != nil {
		return err
	}
	return nil
}

// Location returns the zone used for local date buckets.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("unknown timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// MaxUploadBytes is the upload size limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}
