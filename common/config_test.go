package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrawlerConfigValidate(t *testing.T) {
	valid := DefaultCrawlerConfig()
	valid.APIKeys = []string{"key-a", "key-b"}

	tests := []struct {
		name    string
		modify  func(*CrawlerConfig)
		wantErr string
	}{
		{
			name:   "valid defaults",
			modify: func(c *CrawlerConfig) {},
		},
		{
			name:    "no api keys",
			modify:  func(c *CrawlerConfig) { c.APIKeys = nil },
			wantErr: "at least one API key",
		},
		{
			name:    "blank api key",
			modify:  func(c *CrawlerConfig) { c.APIKeys = []string{"key-a", "  "} },
			wantErr: "is empty",
		},
		{
			name:    "zero concurrency",
			modify:  func(c *CrawlerConfig) { c.Concurrency = 0 },
			wantErr: "concurrency",
		},
		{
			name:    "batch size above API limit",
			modify:  func(c *CrawlerConfig) { c.BatchSize = 51 },
			wantErr: "batch_size",
		},
		{
			name:    "zero retry attempts",
			modify:  func(c *CrawlerConfig) { c.MaxRetryAttempts = 0 },
			wantErr: "max_retry_attempts",
		},
		{
			name:    "max backoff below initial",
			modify:  func(c *CrawlerConfig) { c.RetryMaxBackoff = c.RetryInitialBackoff / 2 },
			wantErr: "retry_max_backoff",
		},
		{
			name:    "zero max pages",
			modify:  func(c *CrawlerConfig) { c.MaxPages = 0 },
			wantErr: "max_pages",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			cfg.APIKeys = append([]string(nil), valid.APIKeys...)
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestLoadCrawlerConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crawler.yaml")
	content := `
api_keys:
  - key-a
  - key-b
concurrency: 4
max_retry_attempts: 5
retry_initial_backoff: 2s
max_pages: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadCrawlerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"key-a", "key-b"}, cfg.APIKeys)
	assert.Equal(t, 4, cfg.Concurrency)
	assert.Equal(t, 5, cfg.MaxRetryAttempts)
	assert.Equal(t, 2*time.Second, cfg.RetryInitialBackoff)
	assert.Equal(t, 10, cfg.MaxPages)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultCrawlerConfig().BatchSize, cfg.BatchSize)
}

func TestLoadCrawlerConfigFromEnv(t *testing.T) {
	t.Setenv("YTCRAWLER_API_KEYS", "key-a,key-b,key-c")
	t.Setenv("YTCRAWLER_CONCURRENCY", "2")

	cfg, err := LoadCrawlerConfig("")
	require.NoError(t, err)

	assert.Equal(t, []string{"key-a", "key-b", "key-c"}, cfg.APIKeys)
	assert.Equal(t, 2, cfg.Concurrency)
}

func TestLoadCrawlerConfigWithoutKeysFails(t *testing.T) {
	_, err := LoadCrawlerConfig("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key")
}
