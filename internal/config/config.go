// Package config handles loading and validating the application configuration
// from YAML files with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the top-level application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Feed     FeedConfig     `yaml:"feed"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ServerConfig defines the Echo HTTP server settings.
type ServerConfig struct {
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
}

// DatabaseConfig defines PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"sslmode"`
	PoolSize int    `yaml:"pool_size"`
}

// DSN returns a PostgreSQL connection string.
func (d *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode,
	)
}

// FeedConfig defines RESO Web API feed settings.
type FeedConfig struct {
	Enabled           bool            `yaml:"enabled"`
	TokenURL          string          `yaml:"token_url"`
	BaseURL           string          `yaml:"base_url"`
	ClientID          string          `yaml:"client_id"`
	ClientSecret      string          `yaml:"client_secret"`
	OriginatingSystem string          `yaml:"originating_system"`
	PageSize          int             `yaml:"page_size"`
	MaxPagesPerSync   int             `yaml:"max_pages_per_sync"`
	RateLimit         RateLimitConfig `yaml:"rate_limit"`
}

// RateLimitConfig defines feed API rate limiting settings.
type RateLimitConfig struct {
	PerSecond  float64 `yaml:"per_second"`
	Burst      int     `yaml:"burst"`
	DailyLimit int64   `yaml:"daily_limit"`
}

// ScoringConfig defines comparable search and valuation parameters.
type ScoringConfig struct {
	GradeWeights     map[string]float64 `yaml:"grade_weights"`
	HeatWeights      HeatWeightsConfig  `yaml:"heat_weights"`
	SearchRadius     float64            `yaml:"search_radius_miles"`
	PriceBandPct     float64            `yaml:"price_band_pct"`
	MaxComparables   int                `yaml:"max_comparables"`
	MinComparables   int                `yaml:"min_comparables"`
	ClosedWindowDays int                `yaml:"closed_window_days"`
}

// HeatWeightsConfig defines the relative weight of each heat component.
type HeatWeightsConfig struct {
	DOM        float64 `yaml:"dom"`
	SPLP       float64 `yaml:"sp_lp"`
	Inventory  float64 `yaml:"inventory"`
	Absorption float64 `yaml:"absorption"`
}

// ScheduleConfig defines cron intervals.
type ScheduleConfig struct {
	FeedSyncInterval time.Duration `yaml:"feed_sync_interval"`
	SnapshotInterval time.Duration `yaml:"snapshot_interval"`
	StaggerOffset    time.Duration `yaml:"stagger_offset"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// Load reads and parses a YAML config file, performing environment variable
// substitution and validation. A .env file in the working directory is
// loaded first so its values are available for substitution.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the YAML content.
	expanded := os.ExpandEnv(string(data))

	cfg := &Config{}
	if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func applyDefaults(cfg *Config) {
	applyServerDefaults(&cfg.Server)
	applyDatabaseDefaults(&cfg.Database)
	applyFeedDefaults(&cfg.Feed)
	applyScoringDefaults(&cfg.Scoring)
	applyScheduleDefaults(&cfg.Schedule)
	applyLoggingDefaults(&cfg.Logging)
}

func applyServerDefaults(s *ServerConfig) {
	if s.Host == "" {
		s.Host = "0.0.0.0"
	}
	if s.Port == 0 {
		s.Port = 8080
	}
	if s.ReadTimeout == 0 {
		s.ReadTimeout = 30 * time.Second
	}
	if s.WriteTimeout == 0 {
		s.WriteTimeout = 30 * time.Second
	}
}

func applyDatabaseDefaults(d *DatabaseConfig) {
	if d.Port == 0 {
		d.Port = 5432
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}
	if d.PoolSize == 0 {
		d.PoolSize = 10
	}
}

func applyFeedDefaults(f *FeedConfig) {
	if f.PageSize == 0 {
		f.PageSize = 200
	}
	if f.MaxPagesPerSync == 0 {
		f.MaxPagesPerSync = 25
	}
	applyRateLimitDefaults(&f.RateLimit)
}

func applyRateLimitDefaults(r *RateLimitConfig) {
	if r.PerSecond == 0 {
		r.PerSecond = 2.0
	}
	if r.Burst == 0 {
		r.Burst = 5
	}
	if r.DailyLimit == 0 {
		r.DailyLimit = 10000
	}
}

func applyScoringDefaults(s *ScoringConfig) {
	if s.GradeWeights == nil {
		s.GradeWeights = map[string]float64{
			"A": 2.0, "B": 1.5, "C": 1.0, "D": 0.5, "F": 0.25,
		}
	}
	zero := HeatWeightsConfig{}
	if s.HeatWeights == zero {
		s.HeatWeights = HeatWeightsConfig{
			DOM: 0.25, SPLP: 0.30, Inventory: 0.25, Absorption: 0.20,
		}
	}
	if s.SearchRadius == 0 {
		s.SearchRadius = 2.0
	}
	if s.PriceBandPct == 0 {
		s.PriceBandPct = 30
	}
	if s.MaxComparables == 0 {
		s.MaxComparables = 25
	}
	if s.MinComparables == 0 {
		s.MinComparables = 3
	}
	if s.ClosedWindowDays == 0 {
		s.ClosedWindowDays = 180
	}
}

func applyScheduleDefaults(s *ScheduleConfig) {
	if s.FeedSyncInterval == 0 {
		s.FeedSyncInterval = 30 * time.Minute
	}
	if s.SnapshotInterval == 0 {
		s.SnapshotInterval = 12 * time.Hour
	}
	if s.StaggerOffset == 0 {
		s.StaggerOffset = 15 * time.Second
	}
}

func applyLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func validate(cfg *Config) error {
	var errs []error

	if cfg.Database.Host == "" {
		errs = append(errs, fmt.Errorf("database.host is required"))
	}
	if cfg.Database.Name == "" {
		errs = append(errs, fmt.Errorf("database.name is required"))
	}
	if cfg.Database.User == "" {
		errs = append(errs, fmt.Errorf("database.user is required"))
	}

	if cfg.Feed.Enabled {
		if cfg.Feed.BaseURL == "" {
			errs = append(errs, fmt.Errorf("feed.base_url is required when the feed is enabled"))
		}
		if cfg.Feed.TokenURL == "" {
			errs = append(errs, fmt.Errorf("feed.token_url is required when the feed is enabled"))
		}
		if cfg.Feed.ClientID == "" || cfg.Feed.ClientSecret == "" {
			errs = append(errs, fmt.Errorf("feed.client_id and feed.client_secret are required when the feed is enabled"))
		}
	}

	for grade, w := range cfg.Scoring.GradeWeights {
		if w < 0 {
			errs = append(errs, fmt.Errorf("scoring.grade_weights[%s] must be non-negative (got %v)", grade, w))
		}
	}

	hw := cfg.Scoring.HeatWeights
	if sum := hw.DOM + hw.SPLP + hw.Inventory + hw.Absorption; sum < 0.99 || sum > 1.01 {
		errs = append(errs, fmt.Errorf("scoring.heat_weights must sum to 1.0 (got %v)", sum))
	}

	return errors.Join(errs...)
}
