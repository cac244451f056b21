// Package common provides configuration and shared helpers for the crawler
package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// CrawlerConfig holds configuration for the YouTube metadata crawler
type CrawlerConfig struct {
	// Credential configuration
	APIKeys []string `yaml:"api_keys" json:"api_keys"` // Ordered quota-key pool, consumed on 403

	// Worker configuration
	Concurrency int `yaml:"concurrency" json:"concurrency"` // Max concurrent per-channel tasks
	BatchSize   int `yaml:"batch_size" json:"batch_size"`   // API batch limit for id lists (max 50)

	// Retry configuration
	MaxRetryAttempts    int           `yaml:"max_retry_attempts" json:"max_retry_attempts"`       // Attempts per request, including the first
	RetryInitialBackoff time.Duration `yaml:"retry_initial_backoff" json:"retry_initial_backoff"` // First backoff duration
	RetryMaxBackoff     time.Duration `yaml:"retry_max_backoff" json:"retry_max_backoff"`         // Backoff ceiling

	// Pagination configuration
	MaxPages int `yaml:"max_pages" json:"max_pages"` // Cap on pages per playlist walk

	// Request configuration
	RequestTimeout time.Duration `yaml:"request_timeout" json:"request_timeout"` // Per-request HTTP timeout
}

// DefaultCrawlerConfig returns a configuration with sensible defaults
func DefaultCrawlerConfig() CrawlerConfig {
	return CrawlerConfig{
		Concurrency:         10,
		BatchSize:           50,
		MaxRetryAttempts:    3,
		RetryInitialBackoff: 1 * time.Second,
		RetryMaxBackoff:     30 * time.Second,
		MaxPages:            1000,
		RequestTimeout:      30 * time.Second,
	}
}

// Validate checks if the configuration is valid
func (c *CrawlerConfig) Validate() error {
	if len(c.APIKeys) == 0 {
		return fmt.Errorf("at least one API key is required")
	}

	for i, key := range c.APIKeys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("api key at index %d is empty", i)
		}
	}

	if c.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1")
	}

	if c.BatchSize < 1 || c.BatchSize > 50 {
		return fmt.Errorf("batch_size must be between 1 and 50 (API limit)")
	}

	if c.MaxRetryAttempts < 1 {
		return fmt.Errorf("max_retry_attempts must be at least 1")
	}

	if c.RetryInitialBackoff <= 0 {
		return fmt.Errorf("retry_initial_backoff must be positive")
	}

	if c.RetryMaxBackoff < c.RetryInitialBackoff {
		return fmt.Errorf("retry_max_backoff must be >= retry_initial_backoff")
	}

	if c.MaxPages < 1 {
		return fmt.Errorf("max_pages must be at least 1")
	}

	return nil
}

// LoadCrawlerConfig reads configuration from an optional YAML file and the
// environment. Environment variables use the YTCRAWLER_ prefix, e.g.
// YTCRAWLER_CONCURRENCY=4 or YTCRAWLER_API_KEYS="key1,key2".
func LoadCrawlerConfig(path string) (CrawlerConfig, error) {
	cfg := DefaultCrawlerConfig()

	v := viper.New()
	v.SetDefault("concurrency", cfg.Concurrency)
	v.SetDefault("batch_size", cfg.BatchSize)
	v.SetDefault("max_retry_attempts", cfg.MaxRetryAttempts)
	v.SetDefault("retry_initial_backoff", cfg.RetryInitialBackoff)
	v.SetDefault("retry_max_backoff", cfg.RetryMaxBackoff)
	v.SetDefault("max_pages", cfg.MaxPages)
	v.SetDefault("request_timeout", cfg.RequestTimeout)

	v.SetEnvPrefix("YTCRAWLER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return CrawlerConfig{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.APIKeys = readKeyList(v)
	cfg.Concurrency = v.GetInt("concurrency")
	cfg.BatchSize = v.GetInt("batch_size")
	cfg.MaxRetryAttempts = v.GetInt("max_retry_attempts")
	cfg.RetryInitialBackoff = v.GetDuration("retry_initial_backoff")
	cfg.RetryMaxBackoff = v.GetDuration("retry_max_backoff")
	cfg.MaxPages = v.GetInt("max_pages")
	cfg.RequestTimeout = v.GetDuration("request_timeout")

	if err := cfg.Validate(); err != nil {
		return CrawlerConfig{}, err
	}

	return cfg, nil
}

// readKeyList accepts api_keys either as a YAML list or as a comma-separated
// string (the environment variable form).
func readKeyList(v *viper.Viper) []string {
	keys := v.GetStringSlice("api_keys")
	if len(keys) == 1 && strings.Contains(keys[0], ",") {
		keys = strings.Split(keys[0], ",")
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		k = strings.TrimSpace(k)
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
