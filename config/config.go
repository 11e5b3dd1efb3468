package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the overall application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	API      APIConfig      `yaml:"api"`
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the server-related configuration.
type ServerConfig struct {
	Port            int     `yaml:"port"`
	RateLimitPerSec float64 `yaml:"rate_limit_per_sec"`
	RateLimitBurst  int     `yaml:"rate_limit_burst"`
	CacheTTLSeconds int     `yaml:"cache_ttl_seconds"`
	MetricsEnabled  bool    `yaml:"metrics_enabled"`
}

// Endpoint styles understood by the API client.
const (
	EndpointStyleAdmin = "admin"
	EndpointStyleREST  = "rest"
)

// APIConfig describes how the frontend reaches the Bookit backend.
type APIConfig struct {
	BaseURL        string        `yaml:"base_url"`
	AdminPrefix    string        `yaml:"admin_prefix"`
	ManagerPrefix  string        `yaml:"manager_prefix"`
	EndpointStyle  string        `yaml:"endpoint_style"`
	UseSampleData  bool          `yaml:"use_sample_data"`
	TimeoutSeconds int           `yaml:"timeout_seconds"`
	Timeout        time.Duration `yaml:"-"`

	// ProbeIntervalSeconds is how often the frontend checks that the backend
	// answers. Zero disables the probe.
	ProbeIntervalSeconds int           `yaml:"probe_interval_seconds"`
	ProbeInterval        time.Duration `yaml:"-"`
}

// DatabaseConfig holds the dev backend's database connection configuration.
type DatabaseConfig struct {
	Driver                 string `yaml:"driver"`
	DSN                    string `yaml:"dsn"`
	MaxOpenConns           int    `yaml:"max_open_conns"`
	MaxIdleConns           int    `yaml:"max_idle_conns"`
	ConnMaxLifetimeMinutes int    `yaml:"conn_max_lifetime_minutes"`
	Seed                   bool   `yaml:"seed"`
}

// LogConfig selects the zap logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads the configuration from the given path, fills defaults and
// applies BOOKIT_* environment overrides.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration with every default filled in. It is what
// Load produces for an empty file.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Server.Port <= 0 {
		c.Server.Port = 8080
	}
	if c.Server.RateLimitPerSec <= 0 {
		c.Server.RateLimitPerSec = 10
	}
	if c.Server.RateLimitBurst <= 0 {
		c.Server.RateLimitBurst = 5
	}
	if c.Server.CacheTTLSeconds <= 0 {
		c.Server.CacheTTLSeconds = 300
	}

	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://localhost:8081/api"
	}
	if c.API.AdminPrefix == "" {
		c.API.AdminPrefix = "/admin"
	}
	if c.API.ManagerPrefix == "" {
		c.API.ManagerPrefix = "/manager"
	}
	if c.API.EndpointStyle == "" {
		c.API.EndpointStyle = EndpointStyleAdmin
	}
	if c.API.TimeoutSeconds <= 0 {
		c.API.TimeoutSeconds = 10
	}
	c.API.Timeout = time.Duration(c.API.TimeoutSeconds) * time.Second
	if c.API.ProbeIntervalSeconds < 0 {
		c.API.ProbeIntervalSeconds = 0
	}
	c.API.ProbeInterval = time.Duration(c.API.ProbeIntervalSeconds) * time.Second

	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.DSN == "" && c.Database.Driver == "sqlite" {
		c.Database.DSN = "file:bookit.db?cache=shared"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("BOOKIT_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("BOOKIT_USE_SAMPLE_DATA"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid BOOKIT_USE_SAMPLE_DATA %q: %w", v, err)
		}
		c.API.UseSampleData = b
	}
	if v := os.Getenv("BOOKIT_SERVER_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid BOOKIT_SERVER_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("BOOKIT_DATABASE_DSN"); v != "" {
		c.Database.DSN = v
	}
	return nil
}
