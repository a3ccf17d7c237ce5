package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds everything tunable at startup. Defaults are overridden by
// an optional YAML file (STILLPAGE_CONFIG) and then by environment
// variables. Invalid values are fatal at process initialization, never at
// request time.
type Config struct {
	Port string `yaml:"port"`

	StorageBackend string `yaml:"storage_backend"` // "memory" or "sqlite"
	SQLitePath     string `yaml:"sqlite_path"`

	// Classification thresholds. The neutral band keeps flat or mixed
	// text out of polarity-only classification; the positive threshold
	// keeps mildly positive text at baseline.
	NeutralBand       float64 `yaml:"neutral_band"`
	PositiveThreshold float64 `yaml:"positive_threshold"`

	// EngagementWindow is the maximum gap between consecutive entries
	// for the session to still read as a consistent rhythm.
	EngagementWindow time.Duration `yaml:"engagement_window"`

	// SummaryWindow is how many recent entries the pattern aggregator
	// looks at.
	SummaryWindow int `yaml:"summary_window"`
}

func Default() *Config {
	return &Config{
		Port:              "8080",
		StorageBackend:    "memory",
		SQLitePath:        "stillpage.db",
		NeutralBand:       0.10,
		PositiveThreshold: 0.25,
		EngagementWindow:  48 * time.Hour,
		SummaryWindow:     3,
	}
}

// Load builds the config from defaults, optional YAML file and env vars.
func Load() (*Config, error) {
	cfg := Default()

	if path := os.Getenv("STILLPAGE_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	cfg.Port = getEnv("STILLPAGE_PORT", cfg.Port)
	cfg.StorageBackend = getEnv("STILLPAGE_STORAGE_BACKEND", cfg.StorageBackend)
	cfg.SQLitePath = getEnv("STILLPAGE_SQLITE_PATH", cfg.SQLitePath)

	var err error
	if cfg.NeutralBand, err = getFloatEnv("STILLPAGE_NEUTRAL_BAND", cfg.NeutralBand); err != nil {
		return nil, err
	}
	if cfg.PositiveThreshold, err = getFloatEnv("STILLPAGE_POSITIVE_THRESHOLD", cfg.PositiveThreshold); err != nil {
		return nil, err
	}
	if cfg.EngagementWindow, err = getDurationEnv("STILLPAGE_ENGAGEMENT_WINDOW", cfg.EngagementWindow); err != nil {
		return nil, err
	}
	if cfg.SummaryWindow, err = getIntEnv("STILLPAGE_SUMMARY_WINDOW", cfg.SummaryWindow); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case "memory", "sqlite":
	default:
		return fmt.Errorf("unknown storage backend %q", c.StorageBackend)
	}
	if c.StorageBackend == "sqlite" && c.SQLitePath == "" {
		return fmt.Errorf("sqlite_path is required for the sqlite backend")
	}
	if c.NeutralBand <= 0 || c.NeutralBand >= 1 {
		return fmt.Errorf("neutral_band must be in (0, 1), got %v", c.NeutralBand)
	}
	if c.PositiveThreshold <= 0 || c.PositiveThreshold > 1 {
		return fmt.Errorf("positive_threshold must be in (0, 1], got %v", c.PositiveThreshold)
	}
	if c.EngagementWindow <= 0 {
		return fmt.Errorf("engagement_window must be positive, got %v", c.EngagementWindow)
	}
	if c.SummaryWindow < 2 {
		return fmt.Errorf("summary_window must be at least 2, got %d", c.SummaryWindow)
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloatEnv(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func getIntEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func getDurationEnv(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}
