package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Environments
const (
	EnvProd = "prod"
	EnvDev  = "dev"
)

// Defaults
const DEFAULT_PORT = 8080
const DEFAULT_API_BASE_URL = "http://localhost:8000"
const DEFAULT_API_TIMEOUT_SECONDS = 30
const DEFAULT_API_RETRY_COUNT = 2
const DEFAULT_ANALYTICS_MEASUREMENT_ID = "G-45P4BQ6XJR"
const DEFAULT_RECENT_LEAGUES_LIMIT = 20
const DEFAULT_RECENT_LEAGUES_PRUNE_MINUTES = 60

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"

// CONFIG_FILE_ENV names the optional YAML config file.
const CONFIG_FILE_ENV = "FANTASY_STATS_CONFIG"

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	RetryCount     int    `yaml:"retry_count"`
	Verbose        bool   `yaml:"verbose"`
}

// RedisConfig points at the Redis server. An empty Address keeps the recently
// viewed leagues in memory.
type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type AnalyticsConfig struct {
	Enabled       bool   `yaml:"enabled"`
	MeasurementID string `yaml:"measurement_id"`
}

type RecentLeaguesConfig struct {
	Limit        int `yaml:"limit"`
	PruneMinutes int `yaml:"prune_minutes"`
}

// Config is the application configuration.
type Config struct {
	Env           string              `yaml:"env"`
	Port          int                 `yaml:"port"`
	LogLevel      string              `yaml:"log_level"`
	ResourcesDir  string              `yaml:"resources_dir"`
	API           APIConfig           `yaml:"api"`
	Redis         RedisConfig         `yaml:"redis"`
	Analytics     AnalyticsConfig     `yaml:"analytics"`
	RecentLeagues RecentLeaguesConfig `yaml:"recent_leagues"`
	// Notices are Markdown snippets shown on the pages, keyed by name.
	Notices map[string]string `yaml:"notices"`

	// File is the YAML file the config was read from, if any.
	File string `yaml:"-"`
}

// Default returns the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		Env:          EnvDev,
		Port:         DEFAULT_PORT,
		LogLevel:     "INFO",
		ResourcesDir: filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX),
		API: APIConfig{
			BaseURL:        DEFAULT_API_BASE_URL,
			TimeoutSeconds: DEFAULT_API_TIMEOUT_SECONDS,
			RetryCount:     DEFAULT_API_RETRY_COUNT,
		},
		Analytics: AnalyticsConfig{
			MeasurementID: DEFAULT_ANALYTICS_MEASUREMENT_ID,
		},
		RecentLeagues: RecentLeaguesConfig{
			Limit:        DEFAULT_RECENT_LEAGUES_LIMIT,
			PruneMinutes: DEFAULT_RECENT_LEAGUES_PRUNE_MINUTES,
		},
	}
}

// Load builds the configuration from the defaults, then the YAML file named
// by FANTASY_STATS_CONFIG, then environment variables.
func Load() (*Config, error) {
	cfg := Default()
	if path := os.Getenv(CONFIG_FILE_ENV); path != "" {
		if err := cfg.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile overlays the YAML file at path on cfg.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	c.File = path
	return nil
}

// ApplyEnv overlays the environment variables that are set.
func (c *Config) ApplyEnv() error {
	c.Env = getEnvOrDefault("ENV", c.Env)
	c.LogLevel = getEnvOrDefault("LOG_LEVEL", c.LogLevel)
	c.ResourcesDir = getEnvOrDefault("RESOURCES_DIR", c.ResourcesDir)
	c.API.BaseURL = getEnvOrDefault("API_BASE_URL", c.API.BaseURL)
	c.Redis.Address = getEnvOrDefault("REDIS_ADDRESS", c.Redis.Address)
	c.Redis.Password = getEnvOrDefault("REDIS_PASSWORD", c.Redis.Password)
	c.Analytics.MeasurementID = getEnvOrDefault("ANALYTICS_MEASUREMENT_ID", c.Analytics.MeasurementID)

	var err error
	if c.Port, err = getEnvIntOrDefault("PORT", c.Port); err != nil {
		return err
	}
	if c.API.TimeoutSeconds, err = getEnvIntOrDefault("API_TIMEOUT_SECONDS", c.API.TimeoutSeconds); err != nil {
		return err
	}
	if c.API.RetryCount, err = getEnvIntOrDefault("API_RETRY_COUNT", c.API.RetryCount); err != nil {
		return err
	}
	if c.API.Verbose, err = getEnvBoolOrDefault("API_VERBOSE", c.API.Verbose); err != nil {
		return err
	}
	if c.Redis.DB, err = getEnvIntOrDefault("REDIS_DB", c.Redis.DB); err != nil {
		return err
	}
	if c.Analytics.Enabled, err = getEnvBoolOrDefault("ANALYTICS_ENABLED", c.Analytics.Enabled); err != nil {
		return err
	}
	if c.RecentLeagues.Limit, err = getEnvIntOrDefault("RECENT_LEAGUES_LIMIT", c.RecentLeagues.Limit); err != nil {
		return err
	}
	if c.RecentLeagues.PruneMinutes, err = getEnvIntOrDefault("RECENT_LEAGUES_PRUNE_MINUTES", c.RecentLeagues.PruneMinutes); err != nil {
		return err
	}
	return nil
}

// Validate rejects values the server cannot run with.
func (c *Config) Validate() error {
	if c.Env != EnvProd && c.Env != EnvDev {
		return fmt.Errorf("ENV must be %q or %q, got %q", EnvProd, EnvDev, c.Env)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("API_BASE_URL is required")
	}
	if c.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("API_TIMEOUT_SECONDS must be positive, got %d", c.API.TimeoutSeconds)
	}
	if c.API.RetryCount < 0 {
		return fmt.Errorf("API_RETRY_COUNT must be >= 0, got %d", c.API.RetryCount)
	}
	if c.RecentLeagues.Limit < 0 {
		return fmt.Errorf("RECENT_LEAGUES_LIMIT must be >= 0, got %d", c.RecentLeagues.Limit)
	}
	if c.RecentLeagues.PruneMinutes <= 0 {
		return fmt.Errorf("RECENT_LEAGUES_PRUNE_MINUTES must be positive, got %d", c.RecentLeagues.PruneMinutes)
	}
	return nil
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}

func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) APITimeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c *Config) PruneInterval() time.Duration {
	return time.Duration(c.RecentLeagues.PruneMinutes) * time.Minute
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	// Default to the current working directory
	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	return wd
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvIntOrDefault(key string, fallback int) (int, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return n, nil
}

func getEnvBoolOrDefault(key string, fallback bool) (bool, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fallback, fmt.Errorf("invalid %s %q: %w", key, value, err)
	}
	return b, nil
}
