// Package config loads application configuration from YAML files with
// environment-variable overrides. Defaults are suitable for embedding the
// search server without any configuration at all.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Adithya-Monish-Kumar-K/Text-Search-Server/internal/tokenizer"
)

// Config is the top-level application configuration.
type Config struct {
	Search    SearchConfig    `yaml:"search"`
	StopWords StopWordsConfig `yaml:"stopWords"`
	Redis     RedisConfig     `yaml:"redis"`
	Logging   LoggingConfig   `yaml:"logging"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// SearchConfig controls ranking limits and parallel execution width.
type SearchConfig struct {
	// MaxResults caps the number of documents a single query returns.
	MaxResults int `yaml:"maxResults"`
	// RelevanceTolerance is the score difference below which two results
	// are tied and ordered by rating.
	RelevanceTolerance float64 `yaml:"relevanceTolerance"`
	// Parallelism bounds worker fan-out; 0 means GOMAXPROCS.
	Parallelism int `yaml:"parallelism"`
}

// StopWordsConfig supplies the stop-word set inline and/or from a file of
// space-separated words.
type StopWordsConfig struct {
	Words []string `yaml:"words"`
	File  string   `yaml:"file"`
}

// Load returns the combined stop-word list from the inline words and the
// configured file.
func (s StopWordsConfig) Load() ([]string, error) {
	words := append([]string(nil), s.Words...)
	if s.File != "" {
		data, err := os.ReadFile(s.File)
		if err != nil {
			return nil, fmt.Errorf("reading stop-word file %s: %w", s.File, err)
		}
		for word := range tokenizer.SplitWords(string(data)) {
			words = append(words, word)
		}
	}
	return words, nil
}

// RedisConfig holds connection and TTL parameters for the optional query
// cache.
type RedisConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Addr     string        `yaml:"addr"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	PoolSize int           `yaml:"poolSize"`
	CacheTTL time.Duration `yaml:"cacheTTL"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus scrape listener.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if path is non-empty) over the defaults
// and then applies TS_* environment-variable overrides.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			MaxResults:         5,
			RelevanceTolerance: 1e-6,
			Parallelism:        0,
		},
		Redis: RedisConfig{
			Enabled:  false,
			Addr:     "localhost:6379",
			Password: "",
			DB:       0,
			PoolSize: 10,
			CacheTTL: 60 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads TS_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("TS_SEARCH_MAX_RESULTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.MaxResults = n
		}
	}
	if v := os.Getenv("TS_SEARCH_PARALLELISM"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Search.Parallelism = n
		}
	}
	if v := os.Getenv("TS_STOPWORDS_FILE"); v != "" {
		cfg.StopWords.File = v
	}
	if v := os.Getenv("TS_REDIS_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Redis.Enabled = b
		}
	}
	if v := os.Getenv("TS_REDIS_ADDR"); v != "" {
		cfg.Redis.Addr = v
	}
	if v := os.Getenv("TS_REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("TS_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TS_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("TS_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = n
		}
	}
}
